package repository

import (
	"github.com/namosistemos/namosite/app/models"
	"gorm.io/gorm"
)

// pageRepository implements the PageRepository interface
type pageRepository struct {
	db *gorm.DB
}

// NewPageRepository creates a new page repository instance
func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

// Create creates a new page in the database
func (r *pageRepository) Create(page *models.CustomPage) error {
	return r.db.Create(page).Error
}

// GetByID retrieves a page by its ID
func (r *pageRepository) GetByID(id uint) (*models.CustomPage, error) {
	var page models.CustomPage
	err := r.db.First(&page, id).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetBySlug retrieves an active page by its slug
func (r *pageRepository) GetBySlug(slug string) (*models.CustomPage, error) {
	var page models.CustomPage
	err := r.db.Where("slug = ? AND is_active = ?", slug, true).First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAll retrieves all pages
func (r *pageRepository) GetAll() ([]models.CustomPage, error) {
	var pages []models.CustomPage
	err := r.db.Order("created_at DESC").Find(&pages).Error
	return pages, err
}

// GetActive retrieves all active pages
func (r *pageRepository) GetActive() ([]models.CustomPage, error) {
	var pages []models.CustomPage
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&pages).Error
	return pages, err
}

// Update updates an existing page in the database
func (r *pageRepository) Update(page *models.CustomPage) error {
	return r.db.Save(page).Error
}

// Delete soft deletes a page by its ID
func (r *pageRepository) Delete(id uint) error {
	return r.db.Delete(&models.CustomPage{}, id).Error
}

// SlugExists checks if a slug already exists
func (r *pageRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.CustomPage{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *pageRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.CustomPage{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}
