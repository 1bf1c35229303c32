package progress

import "shopfloor-tasks/internal/model"

// ShouldPromptCompletion reports whether the UI should ask the worker to
// confirm completion. It is evaluated right after Increment, with the
// pre-increment task and the post-increment count.
func ShouldPromptCompletion(t model.Task, newCount int) bool {
	return !t.IsCompleted && newCount == t.TargetCount
}

// ConfirmCompletion returns a copy of the task marked completed, but only
// when its execution count is still at target. A stale confirmation (the
// count changed since the prompt fired) returns the task unchanged.
func ConfirmCompletion(t model.Task) model.Task {
	if t.ExecutionCount != t.TargetCount {
		return t
	}
	t.IsCompleted = true
	return t
}

// DeclineCompletion returns a copy of the task explicitly left active.
// Idempotent: safe to call on a task that was never pending.
func DeclineCompletion(t model.Task) model.Task {
	t.IsCompleted = false
	return t
}
