package remote

import (
	"context"
	"errors"
	"net/http"

	"shopfloor-tasks/internal/model"
	"shopfloor-tasks/internal/priority"
	"shopfloor-tasks/internal/task/repository"
	pkgLog "shopfloor-tasks/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new remote task repository.
func New(client *Client, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListAssigned(ctx context.Context, sc model.Scope, opt repository.ListAssignedOptions) ([]model.Task, error) {
	records, err := r.client.ListTasks(ctx, sc.AccessToken, opt.Team)
	if err != nil {
		r.l.Errorf(ctx, "remote repository: failed to list tasks for worker %s: %v", sc.WorkerID, err)
		return nil, mapAPIError(err)
	}

	tasks := make([]model.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, recordToTask(rec))
	}
	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	record, err := r.client.GetTask(ctx, sc.AccessToken, id)
	if err != nil {
		return model.Task{}, mapAPIError(err)
	}
	return recordToTask(*record), nil
}

func (r *implRepository) UpdateExecutionCount(ctx context.Context, sc model.Scope, id string, count int) error {
	if err := r.client.UpdateExecutions(ctx, sc.AccessToken, id, count); err != nil {
		r.l.Errorf(ctx, "remote repository: failed to update executions for task %s: %v", id, err)
		return mapAPIError(err)
	}
	return nil
}

func (r *implRepository) MarkCompleted(ctx context.Context, sc model.Scope, id string) error {
	if err := r.client.CompleteTask(ctx, sc.AccessToken, id); err != nil {
		r.l.Errorf(ctx, "remote repository: failed to complete task %s: %v", id, err)
		return mapAPIError(err)
	}
	return nil
}

// recordToTask converts a raw API record to the internal model.Task.
// Priority is never taken from the wire: it is re-derived from the
// comment annotations on every materialization.
func recordToTask(rec TaskRecord) model.Task {
	return model.Task{
		ID:             rec.ID,
		Name:           rec.Name,
		ExecutionCount: rec.ExecutionCount,
		TargetCount:    rec.TargetCount,
		IsCompleted:    rec.IsCompleted,
		Priority:       priority.FromComments(rec.Comments),
		Comments:       rec.Comments,
		TeamName:       rec.TeamName,
		HasConflict:    rec.HasConflict,
	}
}

// mapAPIError maps gateway status codes onto repository errors.
func mapAPIError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusNotFound:
			return repository.ErrNotFound
		case http.StatusUnauthorized, http.StatusForbidden:
			return repository.ErrUnauthorized
		}
	}
	return err
}
