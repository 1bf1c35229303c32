package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTaskID  = errors.New("task id is empty")
	ErrTaskNotFound = errors.New("task not found")
	ErrGateway      = errors.New("task gateway unavailable")
)
