package http

import (
	"github.com/gin-gonic/gin"

	"ppe-inventory/pkg/response"
)

// Summary godoc
// @Summary     Dashboard
// @Description Aggregate stats and the recent-activity feed from a single read of every category.
// @Tags        Dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} summaryResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/dashboard [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.uc.Summary(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newSummaryResp(summary))
}

// Stats godoc
// @Summary     Dashboard stats
// @Tags        Dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} statsResp
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/dashboard/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newStatsResp(stats))
}

// Activity godoc
// @Summary     Recent activity
// @Description Low-stock advisories per category followed by the inventory total, at most five entries.
// @Tags        Dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  activityResp
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/dashboard/activity [GET]
func (h *handler) Activity(c *gin.Context) {
	ctx := c.Request.Context()

	feed, err := h.uc.RecentActivity(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.RecentActivity: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newActivityResp(feed))
}
