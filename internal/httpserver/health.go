package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "ppe-inventory/pkg/errors"
	"ppe-inventory/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "PPE inventory API"
	HealthVersion = "1.0.0"
	ServiceName   = "ppe-inventory"
)

const pingTimeout = 3 * time.Second

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready only while the store answers.
// @Summary Readiness Check
// @Description Check if the API and its store are ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Store unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if err := srv.pingStore(c.Request.Context()); err != nil {
		srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "store unreachable"))
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

type storeDiag struct {
	Driver    string `json:"driver"`
	Reachable bool   `json:"reachable"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latencyMs"`
}

type diagnosticsResp struct {
	Environment string          `json:"environment"`
	Config      map[string]bool `json:"config"`
	Store       storeDiag       `json:"store"`
}

// diagnostics reports which configuration keys are present and whether the
// store is reachable. Configuration values are never echoed.
// @Summary Diagnostics
// @Description Configuration presence and store reachability
// @Tags Health
// @Produce json
// @Success 200 {object} diagnosticsResp
// @Router /diagnostics [get]
func (srv HTTPServer) diagnostics(c *gin.Context) {
	start := time.Now()
	err := srv.pingStore(c.Request.Context())

	store := storeDiag{
		Driver:    srv.storeDriver,
		Reachable: err == nil,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		store.Error = err.Error()
	}

	response.OK(c, diagnosticsResp{
		Environment: srv.environment,
		Config:      srv.presence,
		Store:       store,
	})
}

func (srv HTTPServer) pingStore(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return srv.store.Ping(ctx)
}
