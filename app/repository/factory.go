package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetPlanRepository returns the plan repository instance
func (f *Factory) GetPlanRepository() PlanRepository {
	return f.GetRepositories().Plan
}

// GetOptionRepository returns the option repository instance
func (f *Factory) GetOptionRepository() OptionRepository {
	return f.GetRepositories().Option
}

// GetFeatureRepository returns the feature repository instance
func (f *Factory) GetFeatureRepository() FeatureRepository {
	return f.GetRepositories().Feature
}

// GetContentRepository returns the content repository instance
func (f *Factory) GetContentRepository() ContentRepository {
	return f.GetRepositories().Content
}

// GetLinkRepository returns the link repository instance
func (f *Factory) GetLinkRepository() LinkRepository {
	return f.GetRepositories().Link
}

// GetLeadRepository returns the lead repository instance
func (f *Factory) GetLeadRepository() LeadRepository {
	return f.GetRepositories().Lead
}

// GetSettingsRepository returns the settings repository instance
func (f *Factory) GetSettingsRepository() SettingsRepository {
	return f.GetRepositories().Settings
}

// GetPageRepository returns the page repository instance
func (f *Factory) GetPageRepository() PageRepository {
	return f.GetRepositories().Page
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}

// SetGlobalRepositories swaps the repository set behind the global factory.
// Handler tests use it to run against stub implementations without a database.
func SetGlobalRepositories(repos *Repositories) {
	f := &Factory{repos: repos}
	f.once.Do(func() {})
	globalFactory = f
}
