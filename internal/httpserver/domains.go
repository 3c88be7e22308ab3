package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "ppe-inventory/internal/auth/delivery/http"
	dashboardHTTP "ppe-inventory/internal/dashboard/delivery/http"
	inventoryHTTP "ppe-inventory/internal/inventory/delivery/http"
	maintenanceHTTP "ppe-inventory/internal/maintenance/delivery/http"
	"ppe-inventory/internal/middleware"
)

// Each domain follows the same steps: build the handler from its usecase,
// then mount it on its own group.

func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := authHTTP.New(srv.l, srv.authUC)
	authHTTP.RegisterRoutes(api.Group("/auth"), h, mw)
	srv.l.Infof(ctx, "Auth domain registered")
}

func (srv HTTPServer) setupInventoryDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := inventoryHTTP.New(srv.l, srv.inventoryUC)
	inventoryHTTP.RegisterRoutes(api.Group("/inventory"), h, mw)
	srv.l.Infof(ctx, "Inventory domain registered")
}

func (srv HTTPServer) setupDashboardDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := dashboardHTTP.New(srv.l, srv.dashboardUC)
	dashboardHTTP.RegisterRoutes(api.Group("/dashboard"), h, mw)
	srv.l.Infof(ctx, "Dashboard domain registered")
}

func (srv HTTPServer) setupMaintenanceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := maintenanceHTTP.New(srv.l, srv.maintenanceUC)
	maintenanceHTTP.RegisterRoutes(api.Group("/maintenance"), h, mw)
	srv.l.Infof(ctx, "Maintenance domain registered")
}
