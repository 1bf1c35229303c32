package usecase

import (
	"context"

	"shopfloor-tasks/internal/model"
	"shopfloor-tasks/internal/progress"
	"shopfloor-tasks/internal/task"
)

// Confirm resolves a completion prompt by marking the task completed.
// The transition is guarded: if the execution count moved away from the
// target since the prompt fired, nothing happens and the response says so.
func (uc *implUseCase) Confirm(ctx context.Context, sc model.Scope, input task.CompletionInput) (task.CompletionOutput, error) {
	if input.TaskID == "" {
		return task.CompletionOutput{}, task.ErrEmptyTaskID
	}

	current, err := uc.repo.GetTask(ctx, sc, input.TaskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Confirm GetTask %s: %v", input.TaskID, err)
		return task.CompletionOutput{}, err
	}

	confirmed := progress.ConfirmCompletion(current)
	if !confirmed.IsCompleted {
		// Stale confirmation: silent no-op, task stays active.
		uc.l.Warnf(ctx, "uc.Confirm: stale confirmation for task %s (count %d, target %d)",
			input.TaskID, current.ExecutionCount, current.TargetCount)
		return task.CompletionOutput{Completed: false, Task: buildTaskView(current)}, nil
	}

	if !current.IsCompleted {
		if err := uc.repo.MarkCompleted(ctx, sc, input.TaskID); err != nil {
			uc.l.Errorf(ctx, "uc.Confirm MarkCompleted %s: %v", input.TaskID, err)
			return task.CompletionOutput{}, err
		}
	}

	return task.CompletionOutput{Completed: true, Task: buildTaskView(confirmed)}, nil
}

// Decline resolves a completion prompt by leaving the task active. The
// execution count recorded by the preceding increment stays as it is; no
// gateway call is needed.
func (uc *implUseCase) Decline(ctx context.Context, sc model.Scope, input task.CompletionInput) (task.CompletionOutput, error) {
	if input.TaskID == "" {
		return task.CompletionOutput{}, task.ErrEmptyTaskID
	}

	current, err := uc.repo.GetTask(ctx, sc, input.TaskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Decline GetTask %s: %v", input.TaskID, err)
		return task.CompletionOutput{}, err
	}

	declined := progress.DeclineCompletion(current)
	return task.CompletionOutput{Completed: false, Task: buildTaskView(declined)}, nil
}
