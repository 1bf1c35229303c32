package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"shopfloor-tasks/internal/model"
	"shopfloor-tasks/pkg/response"
)

const (
	// scopeKey is the gin context key holding the request's model.Scope.
	scopeKey = "worker_scope"

	// workerIDHeader optionally identifies the worker for logging; the
	// gateway resolves the actual identity from the bearer token.
	workerIDHeader = "X-Worker-Id"
)

// Auth extracts the worker session from the Authorization header into a
// model.Scope and aborts unauthenticated requests. The token is never
// stored anywhere: each request carries its own credentials downstream.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			WorkerID:    c.GetHeader(workerIDHeader),
			AccessToken: token,
		})
		c.Next()
	}
}

// GetScope returns the request's worker scope, or a zero scope on routes
// that skipped the Auth middleware.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
