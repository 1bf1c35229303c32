package http

import (
	"github.com/gin-gonic/gin"

	"shopfloor-tasks/internal/middleware"
	"shopfloor-tasks/pkg/response"
)

// List godoc
// @Summary     List assigned tasks
// @Description Returns the worker's tasks as ordered view models: active tasks by urgency, completed tasks last.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       team query string false "Filter by team name"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Gateway unavailable"
// @Security    BearerAuth
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListResp(output))
}

// Increment godoc
// @Summary     Record one execution
// @Description Increments the task's execution counter, capped at the target. Reports whether the completion prompt should fire.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} executionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Gateway unavailable"
// @Security    BearerAuth
// @Router      /api/v1/tasks/{id}/increment [POST]
func (h *handler) Increment(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processTaskIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Increment(ctx, sc, req.toExecutionInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Increment: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newExecutionResp(output))
}

// Decrement godoc
// @Summary     Take back one execution
// @Description Decrements the task's execution counter, floored at zero.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} executionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Gateway unavailable"
// @Security    BearerAuth
// @Router      /api/v1/tasks/{id}/decrement [POST]
func (h *handler) Decrement(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processTaskIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Decrement(ctx, sc, req.toExecutionInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Decrement: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newExecutionResp(output))
}

// Confirm godoc
// @Summary     Confirm task completion
// @Description Marks the task completed if its count is still at target; a stale confirmation is reported as not completed.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} completionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Gateway unavailable"
// @Security    BearerAuth
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processTaskIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Confirm(ctx, sc, req.toCompletionInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Confirm: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newCompletionResp(output))
}

// Decline godoc
// @Summary     Decline task completion
// @Description Keeps the task active after a completion prompt. The recorded execution count is left untouched.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} completionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Gateway unavailable"
// @Security    BearerAuth
// @Router      /api/v1/tasks/{id}/decline [POST]
func (h *handler) Decline(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processTaskIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Decline(ctx, sc, req.toCompletionInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Decline: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newCompletionResp(output))
}
