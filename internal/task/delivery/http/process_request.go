package http

import (
	"github.com/gin-gonic/gin"

	"shopfloor-tasks/internal/task"
)

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processTaskIDReq extracts the task id URI param.
func (h *handler) processTaskIDReq(c *gin.Context) (taskIDReq, error) {
	req := taskIDReq{ID: c.Param("id")}
	if req.ID == "" {
		return req, task.ErrEmptyTaskID
	}
	return req, nil
}
