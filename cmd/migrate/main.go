// Command migrate applies the SQL migrations under migrations/ to the
// configured Postgres database. With -rollback it reverts the most recent
// migration using its *_rollback.sql companion file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fittrack/backend/config"
	"github.com/fittrack/backend/internal/database"
	"gorm.io/gorm"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	dir := flag.String("dir", "migrations", "Directory containing migration files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if *rollback {
		if err := rollbackLast(db, *dir); err != nil {
			log.Fatalf("rollback failed: %v", err)
		}
		return
	}

	if err := database.RunMigrations(db, *dir); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}

func rollbackLast(db *gorm.DB, dir string) error {
	var name string
	err := db.Raw(`
		SELECT name
		FROM migrations
		ORDER BY applied_at DESC
		LIMIT 1
	`).Scan(&name).Error
	if err != nil {
		return fmt.Errorf("failed to get last migration: %w", err)
	}
	if name == "" {
		return fmt.Errorf("no migrations to rollback")
	}

	rollbackFile := strings.TrimSuffix(name, ".sql") + "_rollback.sql"
	content, err := os.ReadFile(filepath.Join(dir, rollbackFile))
	if err != nil {
		return fmt.Errorf("failed to read rollback file %s: %w", rollbackFile, err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(string(content)).Error; err != nil {
			return fmt.Errorf("failed to execute rollback %s: %w", rollbackFile, err)
		}
		if err := tx.Exec("DELETE FROM migrations WHERE name = ?", name).Error; err != nil {
			return fmt.Errorf("failed to remove migration record: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Successfully rolled back migration: %s", name)
	return nil
}
