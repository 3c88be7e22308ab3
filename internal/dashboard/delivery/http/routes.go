package http

import (
	"github.com/gin-gonic/gin"

	"ppe-inventory/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())
	rg.GET("", h.Summary)
	rg.GET("/stats", h.Stats)
	rg.GET("/activity", h.Activity)
}
