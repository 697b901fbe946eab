package repository

import (
	"errors"

	"github.com/namosistemos/namosite/app/models"
	"gorm.io/gorm"
)

// contentRepository implements the ContentRepository interface
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository instance
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// GetSiteContent retrieves all keyed site content entries
func (r *contentRepository) GetSiteContent() ([]models.SiteContent, error) {
	var entries []models.SiteContent
	err := r.db.Order("content_key ASC").Find(&entries).Error
	return entries, err
}

// GetSiteContentByKey retrieves one site content entry by its key
func (r *contentRepository) GetSiteContentByKey(key string) (*models.SiteContent, error) {
	var entry models.SiteContent
	err := r.db.Where("content_key = ?", key).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpsertSiteContent writes the entry for one key, keeping at most one row
// per key.
func (r *contentRepository) UpsertSiteContent(content *models.SiteContent) error {
	var existing models.SiteContent
	err := r.db.Where("content_key = ?", content.Key).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(content).Error
	}
	if err != nil {
		return err
	}
	existing.Heading = content.Heading
	existing.Body = content.Body
	existing.CtaLabel = content.CtaLabel
	existing.MediaURL = content.MediaURL
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}
	*content = existing
	return nil
}

// GetContentBlocks retrieves all content blocks ordered for display
func (r *contentRepository) GetContentBlocks() ([]models.ContentBlock, error) {
	var blocks []models.ContentBlock
	err := r.db.Order("sort_order ASC, id ASC").Find(&blocks).Error
	return blocks, err
}

// GetActiveContentBlocks retrieves only the blocks shown on the public site
func (r *contentRepository) GetActiveContentBlocks() ([]models.ContentBlock, error) {
	var blocks []models.ContentBlock
	err := r.db.Where("is_active = ?", true).Order("sort_order ASC, id ASC").Find(&blocks).Error
	return blocks, err
}

// GetContentBlockByID retrieves a content block by its ID
func (r *contentRepository) GetContentBlockByID(id uint) (*models.ContentBlock, error) {
	var block models.ContentBlock
	err := r.db.First(&block, id).Error
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// CountContentBlocks returns the number of stored blocks, active or not
func (r *contentRepository) CountContentBlocks() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContentBlock{}).Count(&count).Error
	return count, err
}

// CreateContentBlock creates a new content block
func (r *contentRepository) CreateContentBlock(block *models.ContentBlock) error {
	return r.db.Create(block).Error
}

// UpdateContentBlock updates an existing content block
func (r *contentRepository) UpdateContentBlock(block *models.ContentBlock) error {
	return r.db.Save(block).Error
}

// DeleteContentBlock removes a content block
func (r *contentRepository) DeleteContentBlock(id uint) error {
	return r.db.Delete(&models.ContentBlock{}, id).Error
}
