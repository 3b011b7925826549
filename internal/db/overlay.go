// Package db provides database connection management and repository interfaces.
package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/zearom/caster/internal/models"
)

// OverlayRepository handles database operations for overlay settings
// documents. There is one row per category; rows are provisioned with
// category defaults on first access.
type OverlayRepository struct {
	db *DB
}

// NewOverlayRepository creates a new overlay settings repository
func NewOverlayRepository(db *DB) *OverlayRepository {
	return &OverlayRepository{db: db}
}

// GetByCategory retrieves the settings document for a category, creating it
// with category defaults if it does not exist yet.
func (r *OverlayRepository) GetByCategory(ctx context.Context, category string) (*models.OverlaySettings, error) {
	var settings models.OverlaySettings
	result := r.db.WithContext(ctx).Where("category = ?", category).First(&settings)

	if result.Error != nil {
		if errors.Is(MapGormError(result.Error), ErrNotFound) {
			defaults := models.DefaultOverlaySettings(category)
			if err := r.db.WithContext(ctx).Create(defaults).Error; err != nil {
				// A concurrent request may have provisioned the row first.
				if errors.Is(MapGormError(err), ErrDuplicate) {
					return r.getExisting(ctx, category)
				}
				return nil, fmt.Errorf("failed to create default settings: %w", MapGormError(err))
			}
			return defaults, nil
		}
		return nil, MapGormError(result.Error)
	}

	return &settings, nil
}

func (r *OverlayRepository) getExisting(ctx context.Context, category string) (*models.OverlaySettings, error) {
	var settings models.OverlaySettings
	if err := r.db.WithContext(ctx).Where("category = ?", category).First(&settings).Error; err != nil {
		return nil, MapGormError(err)
	}
	return &settings, nil
}

// Save persists the full settings document using Save semantics (all fields
// written). Callers are responsible for bumping the revision first.
func (r *OverlayRepository) Save(ctx context.Context, settings *models.OverlaySettings) error {
	result := r.db.WithContext(ctx).Save(settings)
	if result.Error != nil {
		return fmt.Errorf("failed to save settings: %w", MapGormError(result.Error))
	}
	return nil
}

// SaveTx persists the full settings document inside an existing transaction
func (r *OverlayRepository) SaveTx(tx *gorm.DB, settings *models.OverlaySettings) error {
	if err := tx.Save(settings).Error; err != nil {
		return fmt.Errorf("failed to save settings: %w", MapGormError(err))
	}
	return nil
}

// Replace persists the document inside its own transaction. Used when the
// whole row is rewritten at once, as by a reset to defaults.
func (r *OverlayRepository) Replace(ctx context.Context, settings *models.OverlaySettings) error {
	return r.db.WithTransaction(ctx, func(tx *gorm.DB) error {
		return r.SaveTx(tx, settings)
	})
}

// ListCategories returns the category names of all provisioned documents
func (r *OverlayRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	result := r.db.WithContext(ctx).
		Model(&models.OverlaySettings{}).
		Order("category ASC").
		Pluck("category", &categories)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list categories: %w", MapGormError(result.Error))
	}
	return categories, nil
}
