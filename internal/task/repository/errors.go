package repository

import "errors"

var (
	// ErrNotFound is returned when the gateway does not know the task id.
	ErrNotFound = errors.New("task not found in gateway")

	// ErrUnauthorized is returned when the worker's session is rejected
	// by the gateway (expired or revoked token).
	ErrUnauthorized = errors.New("gateway rejected the session")
)
