package task

import (
	"context"

	"shopfloor-tasks/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// List fetches the worker's assigned tasks, derives priorities,
	// orders active-before-completed by urgency and projects them into
	// view models.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Increment records one more execution of the task and reports
	// whether the completion prompt should fire.
	Increment(ctx context.Context, sc model.Scope, input ExecutionInput) (ExecutionOutput, error)

	// Decrement takes back one recorded execution of the task.
	Decrement(ctx context.Context, sc model.Scope, input ExecutionInput) (ExecutionOutput, error)

	// Confirm resolves a completion prompt by marking the task completed,
	// unless the count went stale since the prompt fired.
	Confirm(ctx context.Context, sc model.Scope, input CompletionInput) (CompletionOutput, error)

	// Decline resolves a completion prompt by leaving the task active.
	Decline(ctx context.Context, sc model.Scope, input CompletionInput) (CompletionOutput, error)
}
