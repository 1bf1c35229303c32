package http

import (
	"github.com/gin-gonic/gin"

	"shopfloor-tasks/internal/task"
	"shopfloor-tasks/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Increment(c *gin.Context)
	Decrement(c *gin.Context)
	Confirm(c *gin.Context)
	Decline(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
