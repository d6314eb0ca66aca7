package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration the seeder's collaborators need: the
// Postgres store and the optional Redis cache tier.
type Config struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (optional; empty host disables the cache tier)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string
}

// LoadConfig creates a new Config instance from environment variables,
// falling back to Docker secrets for credentials and then to development
// defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnvOrSecret("DB_USER", "db_user", "postgres"),
		DBPassword:    getEnvOrSecret("DB_PASSWORD", "db_password", "postgres"),
		DBName:        getEnv("DB_NAME", "fittrack"),
		DBSSLMode:     getEnv("DB_SSL_MODE", "disable"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnvOrSecret("REDIS_PASSWORD", "redis_password", ""),
		RedisURL:      os.Getenv("REDIS_URL"),
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
	}
	cfg.RedisDB = redisDB

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DSN builds the Postgres connection string for the configured database.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// CacheEnabled reports whether a Redis endpoint was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// getEnv returns the environment variable value or a default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvOrSecret prefers the environment variable, then the Docker secret
// file of the given name, then the fallback.
func getEnvOrSecret(envKey, secretName, fallback string) string {
	if value := os.Getenv(envKey); value != "" {
		return value
	}
	if value := readSecret(secretName); value != "" {
		return value
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory.
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
