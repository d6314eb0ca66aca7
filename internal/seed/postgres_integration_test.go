package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/fittrack/backend/internal/models"
	"github.com/fittrack/backend/internal/seed"
	"github.com/fittrack/backend/internal/testhelpers"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the real Postgres constraints the SQLite tests approximate:
// unique indexes on catalog names and the demo email, and the foreign keys
// from workouts and plan days to the catalog.
func TestSeedAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()

	require.NoError(t, seed.RunAt(ctx, db, time.Now()))

	var typeCount, dayCount int64
	db.Model(&models.WorkoutType{}).Count(&typeCount)
	db.Model(&models.PlanDay{}).Count(&dayCount)
	assert.EqualValues(t, 6, typeCount)
	assert.EqualValues(t, 4, dayCount)

	// Second run trips the uniqueness constraints
	err := seed.RunAt(ctx, db, time.Now())
	require.Error(t, err)

	// Foreign keys reject references outside the catalog
	var user models.User
	require.NoError(t, db.First(&user, "email = ?", seed.DemoEmail).Error)
	w := models.Workout{
		ID:            uuid.New(),
		UserID:        user.ID,
		WorkoutTypeID: uuid.New(),
		DurationMin:   20,
		Calories:      90,
		PerformedAt:   time.Now(),
	}
	assert.Error(t, db.Create(&w).Error)
}
