package repository

import (
	"errors"

	"github.com/namosistemos/namosite/app/models"
	"gorm.io/gorm"
)

// settingsRepository implements the SettingsRepository interface. Both
// settings tables hold a single row; reads of an empty table return defaults
// instead of an error so the public site never depends on seeding.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// GetSeo retrieves the SEO settings row, or an empty value when none exists
func (r *settingsRepository) GetSeo() (*models.SeoSettings, error) {
	var settings models.SeoSettings
	err := r.db.Order("id ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.SeoSettings{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpsertSeo writes the SEO settings, creating the row on first save
func (r *settingsRepository) UpsertSeo(settings *models.SeoSettings) error {
	var existing models.SeoSettings
	err := r.db.Order("id ASC").First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(settings).Error
	}
	if err != nil {
		return err
	}
	settings.ID = existing.ID
	return r.db.Save(settings).Error
}

// GetParticles retrieves the particles settings row, or the defaults when
// none exists
func (r *settingsRepository) GetParticles() (*models.ParticlesSettings, error) {
	var settings models.ParticlesSettings
	err := r.db.Order("id ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := models.DefaultParticlesSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpsertParticles writes the particles settings, creating the row on first save
func (r *settingsRepository) UpsertParticles(settings *models.ParticlesSettings) error {
	var existing models.ParticlesSettings
	err := r.db.Order("id ASC").First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(settings).Error
	}
	if err != nil {
		return err
	}
	settings.ID = existing.ID
	return r.db.Save(settings).Error
}
