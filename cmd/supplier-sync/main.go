package main

import (
	"context"
	"flag"
	"log"
	"time"

	app "oficina/internal/application/suppliersync"
	"oficina/internal/config"
	supplierhttp "oficina/internal/infrastructure/http/supplier"
	"oficina/internal/infrastructure/persistence/postgres"
	"oficina/pkg/logger"
)

// One-shot job: pull the supplier price list and apply it to the parts
// catalog. Meant to run from cron; the window defaults to the last 24h.
func main() {
	window := flag.Duration("window", 24*time.Hour, "how far back to look for price updates")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	appLog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer appLog.Sync()

	if cfg.Supplier.APIKey == "" || cfg.Supplier.ShopID == "" {
		appLog.Fatal("SUPPLIER_API_KEY and SUPPLIER_SHOP_ID are required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		appLog.Fatal("postgres connection failed", logger.Error(err))
	}
	defer pool.Close()

	client := supplierhttp.NewClient(cfg.Supplier, appLog)
	svc := app.NewService(
		client,
		postgres.NewCatalogRepository(pool),
		postgres.NewMovementRepository(pool),
		appLog,
	)

	since := time.Now().UTC().Add(-*window)
	appLog.Info("starting supplier sync",
		logger.String("since", since.Format(time.RFC3339)),
		logger.String("shop_id", cfg.Supplier.ShopID),
	)

	report, err := svc.SyncIncremental(ctx, &since)
	if err != nil {
		appLog.Fatal("supplier sync failed", logger.Error(err))
	}

	appLog.Info("supplier sync done",
		logger.Int("fetched", report.Fetched),
		logger.Int("price_changes", report.PriceChanges),
		logger.Int("restocked", report.Restocked),
		logger.Int("skipped", report.Skipped),
	)
}
