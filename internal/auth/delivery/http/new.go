package http

import (
	"github.com/gin-gonic/gin"

	"shopfloor-tasks/internal/auth"
	"shopfloor-tasks/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// RegisterRoutes maps the auth routes. Login is the only route that
// works without a session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/auth/login", h.Login)
}
