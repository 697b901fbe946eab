package repository

import (
	"github.com/namosistemos/namosite/app/models"
	"gorm.io/gorm"
)

// linkRepository implements the LinkRepository interface
type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository creates a new link repository instance
func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

// GetMenuLinks retrieves all header menu links ordered for display
func (r *linkRepository) GetMenuLinks() ([]models.MenuLink, error) {
	var links []models.MenuLink
	err := r.db.Order("sort_order ASC, id ASC").Find(&links).Error
	return links, err
}

// GetActiveMenuLinks retrieves only the menu links shown on the public site
func (r *linkRepository) GetActiveMenuLinks() ([]models.MenuLink, error) {
	var links []models.MenuLink
	err := r.db.Where("is_active = ?", true).Order("sort_order ASC, id ASC").Find(&links).Error
	return links, err
}

// GetMenuLinkByID retrieves a menu link by its ID
func (r *linkRepository) GetMenuLinkByID(id uint) (*models.MenuLink, error) {
	var link models.MenuLink
	err := r.db.First(&link, id).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// CreateMenuLink creates a new menu link
func (r *linkRepository) CreateMenuLink(link *models.MenuLink) error {
	return r.db.Create(link).Error
}

// UpdateMenuLink updates an existing menu link
func (r *linkRepository) UpdateMenuLink(link *models.MenuLink) error {
	return r.db.Save(link).Error
}

// DeleteMenuLink removes a menu link
func (r *linkRepository) DeleteMenuLink(id uint) error {
	return r.db.Delete(&models.MenuLink{}, id).Error
}

// GetFooterLinks retrieves all footer links ordered for display
func (r *linkRepository) GetFooterLinks() ([]models.FooterLink, error) {
	var links []models.FooterLink
	err := r.db.Order("sort_order ASC, id ASC").Find(&links).Error
	return links, err
}

// GetActiveFooterLinks retrieves only the footer links shown on the public site
func (r *linkRepository) GetActiveFooterLinks() ([]models.FooterLink, error) {
	var links []models.FooterLink
	err := r.db.Where("is_active = ?", true).Order("sort_order ASC, id ASC").Find(&links).Error
	return links, err
}

// GetFooterLinkByID retrieves a footer link by its ID
func (r *linkRepository) GetFooterLinkByID(id uint) (*models.FooterLink, error) {
	var link models.FooterLink
	err := r.db.First(&link, id).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// CreateFooterLink creates a new footer link
func (r *linkRepository) CreateFooterLink(link *models.FooterLink) error {
	return r.db.Create(link).Error
}

// UpdateFooterLink updates an existing footer link
func (r *linkRepository) UpdateFooterLink(link *models.FooterLink) error {
	return r.db.Save(link).Error
}

// DeleteFooterLink removes a footer link
func (r *linkRepository) DeleteFooterLink(id uint) error {
	return r.db.Delete(&models.FooterLink{}, id).Error
}
