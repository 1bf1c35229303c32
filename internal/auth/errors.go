package auth

import "errors"

// Domain-specific errors for the auth package.
var (
	ErrEmptyCredentials   = errors.New("employee id and password are required")
	ErrInvalidCredentials = errors.New("invalid employee id or password")
	ErrGatewayUnavailable = errors.New("authentication service unavailable")
)
