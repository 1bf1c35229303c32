package usecase

import (
	"sort"

	"shopfloor-tasks/internal/model"
	"shopfloor-tasks/internal/priority"
)

// sortTasks produces the display order: active tasks first, ascending by
// priority, then all completed tasks in their original order. The sort is
// stable, so equal-priority active tasks and all completed tasks keep
// their relative input order. The input slice is never touched.
func sortTasks(tasks []model.Task) []model.Task {
	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.IsCompleted != b.IsCompleted {
			return !a.IsCompleted
		}
		if a.IsCompleted {
			// Completed tasks keep input order, no secondary key.
			return false
		}
		return sortPriority(a) < sortPriority(b)
	})

	return sorted
}

// sortPriority is the comparison key only. A task missing its derived
// priority compares as the default without being mutated.
func sortPriority(t model.Task) int {
	if t.Priority == 0 {
		return priority.DefaultPriority
	}
	return t.Priority
}
