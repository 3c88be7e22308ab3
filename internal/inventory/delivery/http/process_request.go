package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ppe-inventory/internal/inventory"
)

func (h *handler) processCategory(c *gin.Context) (inventory.Category, error) {
	return inventory.ParseCategory(c.Param("category"))
}

// processItemReq binds the add/update body for the path category.
func (h *handler) processItemReq(c *gin.Context) (inventory.ItemInput, error) {
	cat, err := h.processCategory(c)
	if err != nil {
		return inventory.ItemInput{}, err
	}
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return inventory.ItemInput{}, err
	}
	return req.toInput(cat)
}

// processListReq binds the list query. Query keys naming a stored field of
// the category become equality filters.
func (h *handler) processListReq(c *gin.Context) (inventory.ListInput, error) {
	cat, err := h.processCategory(c)
	if err != nil {
		return inventory.ListInput{}, err
	}
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return inventory.ListInput{}, err
	}

	filters := make(map[string]string)
	for _, field := range append([]string{inventory.FieldCodigo}, inventory.AttributeFields(cat)...) {
		if v := strings.TrimSpace(c.Query(field)); v != "" {
			filters[field] = v
		}
	}
	return req.toInput(cat, filters), nil
}
