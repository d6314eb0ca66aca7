package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is complete enough to reach
// the database. Production refuses the development credential defaults.
func ValidateConfig(cfg *Config) error {
	var errors []string

	for field, value := range map[string]string{
		"DB_HOST": cfg.DBHost,
		"DB_PORT": cfg.DBPort,
		"DB_USER": cfg.DBUser,
		"DB_NAME": cfg.DBName,
	} {
		if value == "" {
			errors = append(errors, fmt.Sprintf("required configuration %s is not set", field))
		}
	}

	if IsProduction() && cfg.DBPassword == "postgres" {
		errors = append(errors, "db_password secret is required in production")
	}

	if len(errors) > 0 {
		return ValidationError{
			Field:   "config",
			Message: strings.Join(errors, "; "),
		}
	}

	return nil
}
