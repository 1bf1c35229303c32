package http

import (
	"github.com/gin-gonic/gin"

	"shopfloor-tasks/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All task routes require an authenticated worker session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", mw.Auth(), h.List)
		tasks.POST("/:id/increment", mw.Auth(), h.Increment)
		tasks.POST("/:id/decrement", mw.Auth(), h.Decrement)
		tasks.POST("/:id/complete", mw.Auth(), h.Confirm)
		tasks.POST("/:id/decline", mw.Auth(), h.Decline)
	}
}
