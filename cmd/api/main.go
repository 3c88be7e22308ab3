package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ppe-inventory/config"
	_ "ppe-inventory/docs" // Swagger docs
	"ppe-inventory/internal/auth"
	authUC "ppe-inventory/internal/auth/usecase"
	dashboardUC "ppe-inventory/internal/dashboard/usecase"
	"ppe-inventory/internal/httpserver"
	inventoryUC "ppe-inventory/internal/inventory/usecase"
	maintenanceUC "ppe-inventory/internal/maintenance/usecase"
	"ppe-inventory/pkg/gcloud"
	"ppe-inventory/pkg/log"

	"google.golang.org/api/option"
)

// @title       PPE Inventory API
// @description Inventory of personal protective equipment: uniforms, dielectric boots, helmets and goggles.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting PPE inventory...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store driver: %s", cfg.Store.Driver)

	// 3. Google credentials, only when something talks to Google
	var opts []option.ClientOption
	if cfg.Store.Driver == config.StoreDriverFirestore || cfg.UseFirebaseAuth() {
		opts, err = gcloud.ClientOptions(ctx, cfg.Firebase.CredentialsFile)
		if err != nil {
			logger.Error(ctx, "Failed to resolve Google credentials: ", err)
			return
		}
	}

	// 4. Store
	store, closeStore, err := newStore(ctx, logger, cfg, opts)
	if err != nil {
		logger.Error(ctx, "Failed to initialize store: ", err)
		return
	}
	defer closeStore()

	// 5. Domains
	inventory := inventoryUC.New(store, logger)
	maintenance := maintenanceUC.New(logger, inventory, cfg.Maintenance.OrderByCreation)
	dashboard := dashboardUC.New(logger, inventory)

	// 6. Identity provider
	provider, err := newIdentityProvider(ctx, logger, cfg, opts)
	if err != nil {
		logger.Error(ctx, "Failed to initialize identity provider: ", err)
		return
	}
	authentication := authUC.New(logger, provider, cfg.Auth.LoginRateLimitPerMin)
	unsubscribe := authentication.OnAuthChange(func(s *auth.Session) {
		if s == nil {
			logger.Info(context.Background(), "Auth state changed: signed out")
			return
		}
		logger.Infof(context.Background(), "Auth state changed: %s signed in", s.UID)
	})
	defer unsubscribe()

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		Store:         store,
		StoreDriver:   cfg.Store.Driver,
		Presence:      cfg.Presence(),
		AuthUC:        authentication,
		InventoryUC:   inventory,
		DashboardUC:   dashboard,
		MaintenanceUC: maintenance,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
