package http

import (
	"github.com/gin-gonic/gin"

	"ppe-inventory/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/login", h.Login)
	rg.POST("/logout", mw.Auth(), h.Logout)
	rg.GET("/me", mw.Auth(), h.Me)
}
