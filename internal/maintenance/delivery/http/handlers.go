package http

import (
	"github.com/gin-gonic/gin"

	"ppe-inventory/pkg/response"
)

// RemoveDuplicates godoc
// @Summary     Remove duplicate codes
// @Description Keeps the first record of every code in each category and deletes the rest. A sweep interrupted by a failed delete answers 500 with the partial report.
// @Tags        Maintenance
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} reportResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Partial purge, data holds the partial report"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/maintenance/duplicates [POST]
func (h *handler) RemoveDuplicates(c *gin.Context) {
	ctx := c.Request.Context()

	report, err := h.uc.RemoveDuplicates(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.RemoveDuplicates: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.l.Infof(ctx, "duplicate sweep removed %d records", report.TotalRemoved)
	response.OK(c, newReportResp(report))
}

// DatabaseStats godoc
// @Summary     Database statistics
// @Description Record and distinct-code counts for every collection.
// @Tags        Maintenance
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} statsResp
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/maintenance/stats [GET]
func (h *handler) DatabaseStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.DatabaseStats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.DatabaseStats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newStatsResp(stats))
}
