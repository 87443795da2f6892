package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/dileepchowdary-git/geolocation/internal/config"
	"github.com/dileepchowdary-git/geolocation/internal/enrich"
	"github.com/dileepchowdary-git/geolocation/internal/geo"
	"github.com/dileepchowdary-git/geolocation/internal/logging"
	"github.com/dileepchowdary-git/geolocation/internal/repo/postgres"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.ValidateGeocode(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewLogger(cfg.LogDir, "geocode")
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	store, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("db_connect_failed", zap.Error(err))
		log.Fatal(err)
	}
	defer store.Close()

	svc := enrich.New(logger, store, geo.NewClient(cfg.GoogleAPIKey), cfg.GeocodeLimit, cfg.GeocodePause)
	stats, err := svc.Run(ctx)
	if err != nil {
		logger.Error("batch_failed", zap.Error(err))
		log.Fatal(err)
	}

	fmt.Printf("Leads processed: %d\n", stats.Processed)
	fmt.Printf("  saved:   %d\n", stats.Saved)
	fmt.Printf("  skipped: %d (already geocoded)\n", stats.Skipped)
	fmt.Printf("  failed:  %d\n", stats.Failed)
}
