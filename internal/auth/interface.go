package auth

import "context"

// UseCase defines the business logic interface for the auth domain.
type UseCase interface {
	// Login exchanges worker credentials for a session token at the
	// remote task-management API.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
}
