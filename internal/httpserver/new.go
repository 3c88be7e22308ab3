package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"ppe-inventory/internal/auth"
	"ppe-inventory/internal/dashboard"
	"ppe-inventory/internal/inventory"
	"ppe-inventory/internal/maintenance"
	"ppe-inventory/pkg/log"
)

// Pinger reports whether the backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Diagnostics
	store       Pinger
	storeDriver string
	presence    map[string]bool

	// Domains
	authUC        auth.UseCase
	inventoryUC   inventory.UseCase
	dashboardUC   dashboard.UseCase
	maintenanceUC maintenance.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Store is pinged by /ready and /diagnostics.
	Store       Pinger
	StoreDriver string
	// Presence lists which configuration keys are set, never their values.
	Presence map[string]bool

	AuthUC        auth.UseCase
	InventoryUC   inventory.UseCase
	DashboardUC   dashboard.UseCase
	MaintenanceUC maintenance.UseCase
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		store:         cfg.Store,
		storeDriver:   cfg.StoreDriver,
		presence:      cfg.Presence,
		authUC:        cfg.AuthUC,
		inventoryUC:   cfg.InventoryUC,
		dashboardUC:   cfg.DashboardUC,
		maintenanceUC: cfg.MaintenanceUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.store == nil {
		return errors.New("store is required")
	}
	if srv.authUC == nil {
		return errors.New("auth usecase is required")
	}
	if srv.inventoryUC == nil || srv.dashboardUC == nil || srv.maintenanceUC == nil {
		return errors.New("inventory, dashboard and maintenance usecases are required")
	}
	return nil
}
