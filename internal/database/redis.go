package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fittrack/backend/config"
	"github.com/redis/go-redis/v9"
)

// Cache key prefixes the hosting app populates; the seeder invalidates them
// after writing a fresh dataset.
const (
	CatalogCacheKey     = "fittrack:catalog"
	DashboardCacheScope = "fittrack:dashboard:*"
)

// NewRedisClient creates a Redis client for the configured cache tier.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}

	// Use Redis URL if provided (for production deployments)
	if cfg.RedisURL != "" {
		parsedOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		opts = parsedOpts
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("Successfully connected to Redis at %s", opts.Addr)
	return client, nil
}

// InvalidateSeedCaches drops the catalog entry and every dashboard key so the
// app rebuilds them from the freshly seeded store.
func InvalidateSeedCaches(ctx context.Context, client *redis.Client) error {
	if err := client.Del(ctx, CatalogCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to drop catalog cache: %w", err)
	}

	iter := client.Scan(ctx, 0, DashboardCacheScope, 0).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to drop cache key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan dashboard cache keys: %w", err)
	}
	return nil
}
