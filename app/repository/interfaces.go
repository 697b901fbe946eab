package repository

import (
	"github.com/namosistemos/namosite/app/models"
	"gorm.io/gorm"
)

// PlanRepository defines the interface for pricing-plan database operations
type PlanRepository interface {
	Create(plan *models.Plan) error
	GetByID(id uint) (*models.Plan, error)
	GetBySlug(slug string) (*models.Plan, error)
	GetAll() ([]models.Plan, error)
	Update(plan *models.Plan) error
	Delete(id uint) error
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
}

// OptionRepository covers option groups, options and the plan visibility links
type OptionRepository interface {
	CreateGroup(group *models.OptionGroup) error
	GetGroupByID(id uint) (*models.OptionGroup, error)
	GetGroups() ([]models.OptionGroup, error)
	UpdateGroup(group *models.OptionGroup) error
	DeleteGroup(id uint) error

	CreateOption(option *models.Option) error
	GetOptionByID(id uint) (*models.Option, error)
	GetOptions() ([]models.Option, error)
	UpdateOption(option *models.Option) error
	DeleteOption(id uint) error

	GetPlanLinks() ([]models.PlanOptionGroup, error)
	GetPlanLinksByPlan(planID uint) ([]models.PlanOptionGroup, error)
	ReplacePlanLinks(planID uint, groupIDs []uint) error
}

// FeatureRepository covers feature groups, features and per-plan values
type FeatureRepository interface {
	CreateGroup(group *models.FeatureGroup) error
	GetGroupByID(id uint) (*models.FeatureGroup, error)
	GetGroups() ([]models.FeatureGroup, error)
	UpdateGroup(group *models.FeatureGroup) error
	DeleteGroup(id uint) error

	CreateFeature(feature *models.Feature) error
	GetFeatureByID(id uint) (*models.Feature, error)
	GetFeatures() ([]models.Feature, error)
	UpdateFeature(feature *models.Feature) error
	DeleteFeature(id uint) error

	GetPlanFeatures() ([]models.PlanFeature, error)
	UpsertPlanFeature(pf *models.PlanFeature) error
	DeletePlanFeature(featureID, planID uint) error
}

// ContentRepository covers keyed site content and the capped content blocks
type ContentRepository interface {
	GetSiteContent() ([]models.SiteContent, error)
	GetSiteContentByKey(key string) (*models.SiteContent, error)
	UpsertSiteContent(content *models.SiteContent) error

	GetContentBlocks() ([]models.ContentBlock, error)
	GetActiveContentBlocks() ([]models.ContentBlock, error)
	GetContentBlockByID(id uint) (*models.ContentBlock, error)
	CountContentBlocks() (int64, error)
	CreateContentBlock(block *models.ContentBlock) error
	UpdateContentBlock(block *models.ContentBlock) error
	DeleteContentBlock(id uint) error
}

// LinkRepository covers header menu links and footer links
type LinkRepository interface {
	GetMenuLinks() ([]models.MenuLink, error)
	GetActiveMenuLinks() ([]models.MenuLink, error)
	GetMenuLinkByID(id uint) (*models.MenuLink, error)
	CreateMenuLink(link *models.MenuLink) error
	UpdateMenuLink(link *models.MenuLink) error
	DeleteMenuLink(id uint) error

	GetFooterLinks() ([]models.FooterLink, error)
	GetActiveFooterLinks() ([]models.FooterLink, error)
	GetFooterLinkByID(id uint) (*models.FooterLink, error)
	CreateFooterLink(link *models.FooterLink) error
	UpdateFooterLink(link *models.FooterLink) error
	DeleteFooterLink(id uint) error
}

// LeadRepository defines the interface for captured leads (read/insert only;
// leads are immutable once stored)
type LeadRepository interface {
	Create(lead *models.Lead) error
	GetByID(id uint) (*models.Lead, error)
	GetAll() ([]models.Lead, error)
	Count() (int64, error)
}

// SettingsRepository covers the SEO and particles singleton rows
type SettingsRepository interface {
	GetSeo() (*models.SeoSettings, error)
	UpsertSeo(settings *models.SeoSettings) error
	GetParticles() (*models.ParticlesSettings, error)
	UpsertParticles(settings *models.ParticlesSettings) error
}

// PageRepository defines the interface for custom-page operations
type PageRepository interface {
	Create(page *models.CustomPage) error
	GetByID(id uint) (*models.CustomPage, error)
	GetBySlug(slug string) (*models.CustomPage, error)
	GetAll() ([]models.CustomPage, error)
	GetActive() ([]models.CustomPage, error)
	Update(page *models.CustomPage) error
	Delete(id uint) error
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Plan     PlanRepository
	Option   OptionRepository
	Feature  FeatureRepository
	Content  ContentRepository
	Link     LinkRepository
	Lead     LeadRepository
	Settings SettingsRepository
	Page     PageRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Plan:     NewPlanRepository(db),
		Option:   NewOptionRepository(db),
		Feature:  NewFeatureRepository(db),
		Content:  NewContentRepository(db),
		Link:     NewLinkRepository(db),
		Lead:     NewLeadRepository(db),
		Settings: NewSettingsRepository(db),
		Page:     NewPageRepository(db),
	}
}
