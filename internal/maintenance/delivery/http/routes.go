package http

import (
	"github.com/gin-gonic/gin"

	"ppe-inventory/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())
	rg.POST("/duplicates", h.RemoveDuplicates)
	rg.GET("/stats", h.DatabaseStats)
}
