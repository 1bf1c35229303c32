package usecase

import (
	"fmt"
	"math"

	"shopfloor-tasks/internal/model"
	"shopfloor-tasks/internal/priority"
	"shopfloor-tasks/internal/task"
)

// buildTaskView projects a task into its presentation contract.
// Active tasks carry progress text and a priority color; completed tasks
// carry a full bar and the success marker instead.
func buildTaskView(t model.Task) task.TaskView {
	view := task.TaskView{
		ID:          t.ID,
		Name:        t.Name,
		TeamName:    t.TeamName,
		HasConflict: t.HasConflict,
		Completed:   t.IsCompleted,
	}

	if t.IsCompleted {
		view.ProgressPercent = 100
		view.SuccessMark = true
		return view
	}

	view.ProgressText = fmt.Sprintf("%d / %d", t.ExecutionCount, t.TargetCount)
	view.ProgressPercent = progressPercent(t)
	view.PriorityColor = priority.Classify(t.Priority).Color()
	return view
}

// progressPercent computes the progress-bar width. A zero target is a
// valid degenerate case and renders as zero progress, never a division.
func progressPercent(t model.Task) int {
	if t.TargetCount == 0 {
		return 0
	}
	return int(math.Round(float64(t.ExecutionCount) / float64(t.TargetCount) * 100))
}
