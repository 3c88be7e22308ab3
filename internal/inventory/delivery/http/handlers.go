package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ppe-inventory/internal/inventory"
	"ppe-inventory/pkg/response"
)

// requestError renders a binding or path error. Domain errors go through
// mapError; malformed bodies are plain bad requests.
func (h *handler) requestError(c *gin.Context, err error) {
	var verr *inventory.ValidationError
	if errors.Is(err, inventory.ErrUnknownCategory) || errors.As(err, &verr) {
		response.Error(c, h.mapError(err))
		return
	}
	response.Error(c, err)
}

// List godoc
// @Summary     List items of a category
// @Description Returns the items of a category with recomputed stock. Query keys naming a field of the category (codigo, tipo, nombre, color, talla, sexo) filter by equality.
// @Tags        Inventory
// @Produce     json
// @Security    BearerAuth
// @Param       category path  string true  "Category" Enums(uniformes, botas_dialectricas, cascos, googles)
// @Param       estado   query string false "Status filter"
// @Param       q        query string false "Search over code and name"
// @Param       sort     query string false "Sort field" Enums(codigo, totalStock, estado, createdAt)
// @Param       order    query string false "Sort order" Enums(asc, desc)
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Unknown category"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/inventory/{category}/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		h.requestError(c, err)
		return
	}

	items, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(items))
}

// Add godoc
// @Summary     Add an item
// @Description Creates an item. Total stock and status are derived from the counters.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       category path string  true "Category"
// @Param       body     body itemReq true "Item"
// @Success     201 {object} detailResp
// @Failure     400 {object} response.Resp "Validation failure"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/inventory/{category}/items [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processItemReq(c)
	if err != nil {
		h.requestError(c, err)
		return
	}

	item, err := h.uc.Add(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newDetailResp(item))
}

// Detail godoc
// @Summary     Get an item
// @Tags        Inventory
// @Produce     json
// @Security    BearerAuth
// @Param       category path string true "Category"
// @Param       id       path string true "Item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/inventory/{category}/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	cat, err := h.processCategory(c)
	if err != nil {
		h.requestError(c, err)
		return
	}

	item, err := h.uc.Detail(ctx, cat, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(item))
}

// Update godoc
// @Summary     Replace an item
// @Description Replaces every operator field of an item. The creation time is kept.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       category path string  true "Category"
// @Param       id       path string  true "Item ID"
// @Param       body     body itemReq true "Item"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Validation failure"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/inventory/{category}/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processItemReq(c)
	if err != nil {
		h.requestError(c, err)
		return
	}

	item, err := h.uc.Update(ctx, c.Param("id"), input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(item))
}

// Delete godoc
// @Summary     Delete an item
// @Description Deleting an id that does not exist is a 404, also on repeat.
// @Tags        Inventory
// @Produce     json
// @Security    BearerAuth
// @Param       category path string true "Category"
// @Param       id       path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/inventory/{category}/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	cat, err := h.processCategory(c)
	if err != nil {
		h.requestError(c, err)
		return
	}

	if err := h.uc.Delete(ctx, cat, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Stats godoc
// @Summary     Collection statistics
// @Description Record count and number of distinct codes of a category.
// @Tags        Inventory
// @Produce     json
// @Security    BearerAuth
// @Param       category path string true "Category"
// @Success     200 {object} statsResp
// @Failure     404 {object} response.Resp "Unknown category"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/inventory/{category}/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	cat, err := h.processCategory(c)
	if err != nil {
		h.requestError(c, err)
		return
	}

	stats, err := h.uc.Stats(ctx, cat)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(stats))
}
