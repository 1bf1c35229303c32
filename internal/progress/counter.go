// Package progress holds the pure execution-count and completion
// transitions. Functions here never touch the task they are given;
// applying the result and persisting it is the caller's job, so a count
// update can be batched with the gateway call that records it.
package progress

import "shopfloor-tasks/internal/model"

// Increment returns the task's next execution count. Completed tasks are
// frozen; active tasks never count past their target.
func Increment(t model.Task) int {
	if t.IsCompleted {
		return t.ExecutionCount
	}
	if t.ExecutionCount+1 > t.TargetCount {
		return t.TargetCount
	}
	return t.ExecutionCount + 1
}

// Decrement returns the task's previous execution count. Completed tasks
// are frozen; the count never goes below zero.
func Decrement(t model.Task) int {
	if t.IsCompleted {
		return t.ExecutionCount
	}
	if t.ExecutionCount-1 < 0 {
		return 0
	}
	return t.ExecutionCount - 1
}
