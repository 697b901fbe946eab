package repository

import (
	"github.com/namosistemos/namosite/app/models"
	"gorm.io/gorm"
)

// leadRepository implements the LeadRepository interface. There is no update
// or delete: a captured lead is the record of what the visitor submitted and
// what the server priced it at, and that record stays as written.
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository instance
func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

// Create stores a new lead
func (r *leadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// GetByID retrieves a lead by its ID
func (r *leadRepository) GetByID(id uint) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetAll retrieves all leads, newest first
func (r *leadRepository) GetAll() ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.Order("created_at DESC, id DESC").Find(&leads).Error
	return leads, err
}

// Count returns the number of stored leads
func (r *leadRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Lead{}).Count(&count).Error
	return count, err
}
