package db

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/zearom/caster/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	sqlDB, err := database.GetSQLDB()
	require.NoError(t, err)

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	migrations := "file://" + filepath.Join(filepath.Dir(file), "..", "..", "migrations")
	require.NoError(t, RunMigrations(sqlDB, migrations))

	return database
}

func TestGetByCategoryCreatesDefaultsOnMissing(t *testing.T) {
	repo := NewOverlayRepository(setupTestDB(t))
	ctx := context.Background()

	settings, err := repo.GetByCategory(ctx, "wedding")
	require.NoError(t, err)
	assert.NotZero(t, settings.ID)
	assert.Equal(t, "wedding", settings.Category)
	assert.Equal(t, "Together Forever", settings.MainText)
	assert.Equal(t, int64(1), settings.Revision)

	again, err := repo.GetByCategory(ctx, "wedding")
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID, "second access reads the provisioned row")
}

func TestGetByCategoryUnknownNameGetsFuneralPalette(t *testing.T) {
	repo := NewOverlayRepository(setupTestDB(t))

	settings, err := repo.GetByCategory(context.Background(), "memorial")
	require.NoError(t, err)
	assert.Equal(t, "memorial", settings.Category)
	assert.Equal(t, "In Loving Memory", settings.MainText)
}

func TestSavePersistsFullDocument(t *testing.T) {
	database := setupTestDB(t)
	repo := NewOverlayRepository(database)
	ctx := context.Background()

	settings, err := repo.GetByCategory(ctx, "funeral")
	require.NoError(t, err)

	settings.MainText = "Updated"
	settings.Revision = 2
	settings.IsVisible = true
	require.NoError(t, repo.Save(ctx, settings))

	stored, err := repo.GetByCategory(ctx, "funeral")
	require.NoError(t, err)
	assert.Equal(t, "Updated", stored.MainText)
	assert.Equal(t, int64(2), stored.Revision)
	assert.True(t, stored.IsVisible)
}

func TestReplaceRewritesRowTransactionally(t *testing.T) {
	database := setupTestDB(t)
	repo := NewOverlayRepository(database)
	ctx := context.Background()

	settings, err := repo.GetByCategory(ctx, "funeral")
	require.NoError(t, err)

	replacement := models.DefaultOverlaySettings("funeral")
	replacement.ID = settings.ID
	replacement.Revision = settings.Revision + 1
	replacement.MainText = "Replaced"
	require.NoError(t, repo.Replace(ctx, replacement))

	stored, err := repo.GetByCategory(ctx, "funeral")
	require.NoError(t, err)
	assert.Equal(t, "Replaced", stored.MainText)
	assert.Equal(t, settings.Revision+1, stored.Revision)
}

func TestListCategoriesSorted(t *testing.T) {
	repo := NewOverlayRepository(setupTestDB(t))
	ctx := context.Background()

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	for _, category := range []string{"wedding", "funeral", "ceremony"} {
		_, err := repo.GetByCategory(ctx, category)
		require.NoError(t, err)
	}

	categories, err = repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ceremony", "funeral", "wedding"}, categories)
}

func TestDuplicateCategoryMapsToDuplicateError(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	first := models.DefaultOverlaySettings("funeral")
	require.NoError(t, database.WithContext(ctx).Create(first).Error)

	second := models.DefaultOverlaySettings("funeral")
	err := database.WithContext(ctx).Create(second).Error
	require.Error(t, err)
	assert.True(t, IsDuplicate(MapGormError(err)))
}

func TestMapGormError(t *testing.T) {
	assert.NoError(t, MapGormError(nil))
	assert.ErrorIs(t, MapGormError(gorm.ErrRecordNotFound), ErrNotFound)

	plain := errors.New("disk I/O error")
	assert.Equal(t, plain, MapGormError(plain))
}
