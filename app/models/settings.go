package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SeoSettings is a singleton configuration row for meta tags, analytics
// snippets and the robots.txt override.
type SeoSettings struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	MetaTitle             string    `gorm:"type:varchar(200)" json:"metaTitle" validate:"max=200"`
	MetaDescription       string    `gorm:"type:text" json:"metaDescription"`
	MetaKeywords          string    `gorm:"type:text" json:"metaKeywords"`
	OgTitle               string    `gorm:"type:varchar(200)" json:"ogTitle" validate:"max=200"`
	OgDescription         string    `gorm:"type:text" json:"ogDescription"`
	OgImage               string    `gorm:"type:text" json:"ogImage"`
	GoogleAnalyticsID     string    `gorm:"type:varchar(50)" json:"googleAnalyticsId" validate:"max=50"`
	GoogleAnalyticsScript string    `gorm:"type:text" json:"googleAnalyticsScript"`
	CustomHeadCode        string    `gorm:"type:text" json:"customHeadCode"`
	RobotsTxt             string    `gorm:"type:text" json:"robotsTxt"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *SeoSettings) Validate() error {
	v := validator.New()
	return v.Struct(s)
}

// ParticlesSettings is a singleton configuration row for the decorative
// particle animation on the landing page.
type ParticlesSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Enabled   bool      `gorm:"default:false" json:"enabled"`
	Color     string    `gorm:"type:varchar(20)" json:"color" validate:"max=20"`
	Quantity  int       `gorm:"default:50" json:"quantity" validate:"min=0,max=500"`
	Speed     int       `gorm:"default:50" json:"speed" validate:"min=0,max=100"`
	Opacity   int       `gorm:"default:30" json:"opacity" validate:"min=0,max=100"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *ParticlesSettings) Validate() error {
	v := validator.New()
	return v.Struct(p)
}

// DefaultParticlesSettings returns the values served when no row exists yet.
func DefaultParticlesSettings() ParticlesSettings {
	return ParticlesSettings{
		Enabled:  false,
		Color:    "#6366f1",
		Quantity: 50,
		Speed:    50,
		Opacity:  30,
	}
}
