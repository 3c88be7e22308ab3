package http

import (
	"github.com/gin-gonic/gin"

	"ppe-inventory/internal/middleware"
)

// RegisterRoutes maps /:category/items and /:category/stats. Every route
// requires authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	cat := rg.Group("/:category", mw.Auth())
	{
		cat.GET("/items", h.List)
		cat.POST("/items", h.Add)
		cat.GET("/items/:id", h.Detail)
		cat.PUT("/items/:id", h.Update)
		cat.DELETE("/items/:id", h.Delete)
		cat.GET("/stats", h.Stats)
	}
}
