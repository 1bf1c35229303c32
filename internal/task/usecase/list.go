package usecase

import (
	"context"

	"shopfloor-tasks/internal/model"
	"shopfloor-tasks/internal/task"
	repo "shopfloor-tasks/internal/task/repository"
)

// List returns the worker's assigned tasks as ordered view models.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	tasks, err := uc.repo.ListAssigned(ctx, sc, repo.ListAssignedOptions{
		Team: input.Team,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListAssigned: %v", err)
		return task.ListOutput{}, err
	}

	ordered := sortTasks(tasks)

	views := make([]task.TaskView, 0, len(ordered))
	for _, t := range ordered {
		views = append(views, buildTaskView(t))
	}

	return task.ListOutput{
		Tasks: views,
		Count: len(views),
	}, nil
}
