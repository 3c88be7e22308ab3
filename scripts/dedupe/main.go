package main

import (
	"context"
	"fmt"
	"os"

	"ppe-inventory/config"
	inventoryRepo "ppe-inventory/internal/inventory/repository/firestore"
	inventoryUC "ppe-inventory/internal/inventory/usecase"
	"ppe-inventory/internal/maintenance"
	maintenanceUC "ppe-inventory/internal/maintenance/usecase"
	"ppe-inventory/pkg/gcloud"
	"ppe-inventory/pkg/log"
)

func main() {
	if len(os.Args) < 2 || (os.Args[1] != "stats" && os.Args[1] != "purge") {
		fmt.Println("Usage: go run scripts/dedupe/main.go <stats|purge>")
		fmt.Println("  stats  print record and distinct-code counts per collection")
		fmt.Println("  purge  delete every record whose code repeats, keeping the first")
		os.Exit(1)
	}
	action := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Store.Driver != config.StoreDriverFirestore {
		fmt.Println("store.driver must be firestore for this script")
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	opts, err := gcloud.ClientOptions(ctx, cfg.Firebase.CredentialsFile)
	if err != nil {
		logger.Fatalf(ctx, "Failed to resolve credentials: %v", err)
	}
	fc, err := gcloud.NewFirestoreClient(ctx, cfg.Firebase.ProjectID, opts...)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Firestore: %v", err)
	}
	defer fc.Close()

	inv := inventoryUC.New(inventoryRepo.New(fc.Client, logger), logger)
	uc := maintenanceUC.New(logger, inv, cfg.Maintenance.OrderByCreation)

	stats, err := uc.DatabaseStats(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read collections: %v", err)
	}
	for _, cs := range stats.Collections {
		fmt.Printf("%-20s %5d records %5d codes\n", cs.Category, cs.Count, cs.UniqueCodes)
	}
	fmt.Printf("%-20s %5d records %5d codes\n", "total", stats.TotalRecords, stats.TotalUniqueCodes)

	if action == "stats" {
		return
	}

	report, err := uc.RemoveDuplicates(ctx)
	printReport(report)
	if err != nil {
		logger.Fatalf(ctx, "Sweep stopped: %v", err)
	}
	logger.Infof(ctx, "Sweep finished, %d records removed", report.TotalRemoved)
}

func printReport(report maintenance.Report) {
	for _, cr := range report.Categories {
		for _, d := range cr.Removed {
			fmt.Printf("%s: removed %s (code %s, kept %s)\n", cr.Category, d.DuplicateID, d.Code, d.OriginalID)
		}
	}
}
