package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shopfloor-tasks/internal/auth"
	"shopfloor-tasks/pkg/response"
)

type loginReq struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Password   string `json:"password"    binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		EmployeeID: r.EmployeeID,
		Password:   r.Password,
	}
}

type loginResp struct {
	Session auth.Session `json:"session"`
}

// Login godoc
// @Summary     Worker login
// @Description Exchanges worker credentials for a session token at the remote task-management API.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Worker credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     502 {object} response.Resp "Gateway unavailable"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		switch {
		case errors.Is(err, auth.ErrEmptyCredentials):
			response.Error(c, err, nil)
		case errors.Is(err, auth.ErrInvalidCredentials):
			response.Unauthorized(c)
		default:
			response.BadGateway(c)
		}
		return
	}

	response.OK(c, loginResp{Session: output.Session})
}
