package usecase

import (
	"context"

	"shopfloor-tasks/internal/model"
	"shopfloor-tasks/internal/progress"
	"shopfloor-tasks/internal/task"
)

// Increment records one more execution. The new count is computed from
// the current task, persisted through the gateway, and returned together
// with the completion-prompt decision. Nothing is kept locally, so a
// gateway failure simply surfaces as an error with no state to revert.
func (uc *implUseCase) Increment(ctx context.Context, sc model.Scope, input task.ExecutionInput) (task.ExecutionOutput, error) {
	if input.TaskID == "" {
		return task.ExecutionOutput{}, task.ErrEmptyTaskID
	}

	current, err := uc.repo.GetTask(ctx, sc, input.TaskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Increment GetTask %s: %v", input.TaskID, err)
		return task.ExecutionOutput{}, err
	}

	newCount := progress.Increment(current)
	if newCount != current.ExecutionCount {
		if err := uc.repo.UpdateExecutionCount(ctx, sc, input.TaskID, newCount); err != nil {
			uc.l.Errorf(ctx, "uc.Increment UpdateExecutionCount %s: %v", input.TaskID, err)
			return task.ExecutionOutput{}, err
		}
	}

	// Prompt decision uses the pre-increment task and post-increment count.
	return task.ExecutionOutput{
		TaskID:           input.TaskID,
		ExecutionCount:   newCount,
		PromptCompletion: progress.ShouldPromptCompletion(current, newCount),
	}, nil
}

// Decrement takes back one recorded execution. Decrementing never fires
// the completion prompt.
func (uc *implUseCase) Decrement(ctx context.Context, sc model.Scope, input task.ExecutionInput) (task.ExecutionOutput, error) {
	if input.TaskID == "" {
		return task.ExecutionOutput{}, task.ErrEmptyTaskID
	}

	current, err := uc.repo.GetTask(ctx, sc, input.TaskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Decrement GetTask %s: %v", input.TaskID, err)
		return task.ExecutionOutput{}, err
	}

	newCount := progress.Decrement(current)
	if newCount != current.ExecutionCount {
		if err := uc.repo.UpdateExecutionCount(ctx, sc, input.TaskID, newCount); err != nil {
			uc.l.Errorf(ctx, "uc.Decrement UpdateExecutionCount %s: %v", input.TaskID, err)
			return task.ExecutionOutput{}, err
		}
	}

	return task.ExecutionOutput{
		TaskID:         input.TaskID,
		ExecutionCount: newCount,
	}, nil
}
