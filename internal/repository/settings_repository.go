package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/meubelwerk/offerte-api/internal/domain"
)

// settingsRowID pins the settings singleton to one row
const settingsRowID = 1

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings singleton, creating it with defaults on
// first access.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.OfferSettings, error) {
	var settings domain.OfferSettings
	err := r.db.WithContext(ctx).Where("id = ?", settingsRowID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = domain.DefaultOfferSettings()
		if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings *domain.OfferSettings) error {
	settings.ID = settingsRowID
	return r.db.WithContext(ctx).Save(settings).Error
}
