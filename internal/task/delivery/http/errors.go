package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shopfloor-tasks/internal/task"
	"shopfloor-tasks/internal/task/repository"
	"shopfloor-tasks/pkg/response"
)

// respondError translates domain and gateway errors into the HTTP
// envelope. Unknown errors are treated as upstream gateway failures: the
// core itself never errors, so anything unexpected came over the wire.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrEmptyTaskID):
		response.Error(c, err, nil)
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c)
	case errors.Is(err, repository.ErrUnauthorized):
		response.Unauthorized(c)
	default:
		response.BadGateway(c)
	}
}
