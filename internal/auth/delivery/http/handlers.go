package http

import (
	"github.com/gin-gonic/gin"

	"ppe-inventory/internal/auth"
	"ppe-inventory/internal/middleware"
	"ppe-inventory/pkg/response"
)

// Login godoc
// @Summary     Sign in
// @Description Authenticates an operator with email and password. Repeated attempts from one client are rate limited.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Missing email or password"
// @Failure     401 {object} response.Resp "Rejected credentials"
// @Failure     403 {object} response.Resp "Account disabled"
// @Failure     429 {object} response.Resp "Too many attempts"
// @Failure     503 {object} response.Resp "Identity provider unavailable"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "auth.Login bind: %v", err)
		response.Error(c, errWrongBody)
		return
	}

	session, err := h.uc.SignIn(ctx, req.toInput(c.ClientIP()))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newSessionResp(session))
}

// Logout godoc
// @Summary     Sign out
// @Description Revokes every session of the authenticated operator.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	err := h.uc.SignOut(ctx, auth.Session{UID: sc.UserID, Email: sc.Email, IDToken: sc.IDToken})
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// Me godoc
// @Summary     Current operator
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	response.OK(c, newMeResp(sc))
}
