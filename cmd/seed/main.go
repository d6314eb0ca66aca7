// Command seed populates an empty FitTrack database with the demo dataset:
// the workout type catalog, a demo user, sample workouts, and a beginner
// weekly plan. It is not idempotent; run it against a fresh database.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fittrack/backend/config"
	"github.com/fittrack/backend/internal/database"
	"github.com/fittrack/backend/internal/seed"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Seeding failed: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	// Release the connection on both the success and failure paths
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	ctx := context.Background()
	if err := seed.Run(ctx, db); err != nil {
		return err
	}

	// The hosting app caches the catalog; drop it so the fresh dataset is
	// served immediately. Seeding itself never depends on the cache tier.
	if !cfg.CacheEnabled() {
		log.Println("Redis not configured, skipping cache invalidation")
		return nil
	}
	client, err := database.NewRedisClient(cfg)
	if err != nil {
		return fmt.Errorf("seeded successfully but failed to reach Redis: %w", err)
	}
	defer client.Close()
	if err := database.InvalidateSeedCaches(ctx, client); err != nil {
		return fmt.Errorf("seeded successfully but failed to invalidate caches: %w", err)
	}
	log.Println("Invalidated catalog and dashboard caches")
	return nil
}
