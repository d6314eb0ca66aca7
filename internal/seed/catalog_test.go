package seed

import (
	"context"
	"testing"

	"github.com/fittrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalog(t *testing.T) {
	db := setupTestDB(t)

	catalog, err := BuildCatalog(context.Background(), db, DefaultTypes)
	require.NoError(t, err)
	require.Len(t, catalog.Ordered, len(DefaultTypes))

	// Output order matches input order
	for i, spec := range DefaultTypes {
		assert.Equal(t, spec.Name, catalog.Ordered[i].Name)
		assert.NotZero(t, catalog.Ordered[i].ID)
	}

	// A lookup by name returns the stored description and color
	for _, spec := range DefaultTypes {
		var stored models.WorkoutType
		require.NoError(t, db.Where("name = ?", spec.Name).First(&stored).Error)
		assert.Equal(t, spec.Description, stored.Description)
		assert.Equal(t, spec.Color, stored.Color)

		got, ok := catalog.Get(spec.Name)
		require.True(t, ok)
		assert.Equal(t, stored.ID, got.ID)
	}
}

func TestBuildCatalogRejectsDuplicateInput(t *testing.T) {
	db := setupTestDB(t)

	_, err := BuildCatalog(context.Background(), db, []TypeSpec{
		{Name: "Cardio", Color: "#10b981"},
		{Name: "Cardio", Color: "#ef4444"},
	})
	assert.Error(t, err)

	var count int64
	db.Model(&models.WorkoutType{}).Count(&count)
	assert.Zero(t, count)
}

func TestBuildCatalogFailsOnExistingCatalog(t *testing.T) {
	db := setupTestDB(t)

	_, err := BuildCatalog(context.Background(), db, DefaultTypes)
	require.NoError(t, err)

	// A second run hits the unique index on name; the batch fails as a whole
	_, err = BuildCatalog(context.Background(), db, DefaultTypes)
	assert.Error(t, err)
}

func TestCatalogGetUnknownName(t *testing.T) {
	db := setupTestDB(t)

	catalog, err := BuildCatalog(context.Background(), db, DefaultTypes)
	require.NoError(t, err)

	_, ok := catalog.Get("Pilates")
	assert.False(t, ok)

	_, err = catalog.MustGet("Pilates")
	assert.ErrorIs(t, err, ErrUnknownWorkoutType)
}
