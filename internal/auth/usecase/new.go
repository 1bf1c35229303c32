package usecase

import (
	"golang.org/x/oauth2"

	pkgLog "shopfloor-tasks/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	oauth oauth2.Config
}

// New creates a new auth UseCase. The token endpoint belongs to the
// remote task-management API; this service never issues tokens itself.
func New(l pkgLog.Logger, tokenURL, clientID string) *implUseCase {
	return &implUseCase{
		l: l,
		oauth: oauth2.Config{
			ClientID: clientID,
			Endpoint: oauth2.Endpoint{TokenURL: tokenURL},
		},
	}
}
