package usecase

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/oauth2"

	"shopfloor-tasks/internal/auth"
)

// Login performs the password-credentials grant against the gateway's
// token endpoint and returns the resulting session.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	if input.EmployeeID == "" || input.Password == "" {
		return auth.LoginOutput{}, auth.ErrEmptyCredentials
	}

	uc.l.Infof(ctx, "Login: worker=%s", input.EmployeeID)

	token, err := uc.oauth.PasswordCredentialsToken(ctx, input.EmployeeID, input.Password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			switch retrieveErr.Response.StatusCode {
			case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
				uc.l.Warnf(ctx, "Login: rejected credentials for worker %s", input.EmployeeID)
				return auth.LoginOutput{}, auth.ErrInvalidCredentials
			}
		}
		uc.l.Errorf(ctx, "Login: token endpoint failed: %v", err)
		return auth.LoginOutput{}, auth.ErrGatewayUnavailable
	}

	return auth.LoginOutput{
		Session: auth.Session{
			WorkerID:    input.EmployeeID,
			AccessToken: token.AccessToken,
			TokenType:   token.Type(),
			ExpiresAt:   token.Expiry,
		},
	}, nil
}
