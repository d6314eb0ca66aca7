package seed

import (
	"context"
	"fmt"

	"github.com/fittrack/backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// TypeSpec describes one workout category to materialize in the catalog.
type TypeSpec struct {
	Name        string
	Description string
	Color       string
}

// Catalog is the materialized workout type reference set. Ordered preserves
// the input order; lookups go through Get so nothing downstream depends on
// positions.
type Catalog struct {
	Ordered []models.WorkoutType

	byName map[string]models.WorkoutType
}

// Get returns the catalog entry with the given name.
func (c *Catalog) Get(name string) (models.WorkoutType, bool) {
	wt, ok := c.byName[name]
	return wt, ok
}

// MustGet returns the id of the named entry or an error suitable for the
// composer's integrity checks.
func (c *Catalog) MustGet(name string) (uuid.UUID, error) {
	wt, ok := c.byName[name]
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, name)
	}
	return wt.ID, nil
}

// BuildCatalog creates every workout type concurrently and returns the
// catalog once all creations have persisted. Entries are independent, so the
// fan-out is purely a performance optimization; results land in input order.
// Any failed creation fails the whole batch, since a partial catalog is
// unusable downstream.
func BuildCatalog(ctx context.Context, db *gorm.DB, specs []TypeSpec) (*Catalog, error) {
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if _, dup := seen[spec.Name]; dup {
			return nil, fmt.Errorf("duplicate workout type name %q in catalog input", spec.Name)
		}
		seen[spec.Name] = struct{}{}
	}

	results := make([]models.WorkoutType, len(specs))
	g, ctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			wt := models.WorkoutType{
				ID:          uuid.New(),
				Name:        spec.Name,
				Description: spec.Description,
				Color:       spec.Color,
			}
			if err := db.WithContext(ctx).Create(&wt).Error; err != nil {
				return fmt.Errorf("failed to create workout type %q: %w", spec.Name, err)
			}
			results[i] = wt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	catalog := &Catalog{
		Ordered: results,
		byName:  make(map[string]models.WorkoutType, len(results)),
	}
	for _, wt := range results {
		catalog.byName[wt.Name] = wt
	}
	return catalog, nil
}
