package repository

import (
	"context"

	"shopfloor-tasks/internal/model"
)

// TaskRepository is the interface for the remote task-management gateway.
// Every call carries the worker's scope; the repository holds no session
// state of its own.
type TaskRepository interface {
	// ListAssigned returns the worker's tasks with priorities already
	// derived from their comment annotations.
	ListAssigned(ctx context.Context, sc model.Scope, opt ListAssignedOptions) ([]model.Task, error)

	// GetTask fetches a single task by id.
	GetTask(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// UpdateExecutionCount persists a new execution count for the task.
	UpdateExecutionCount(ctx context.Context, sc model.Scope, id string, count int) error

	// MarkCompleted persists the completed flag for the task.
	MarkCompleted(ctx context.Context, sc model.Scope, id string) error
}
