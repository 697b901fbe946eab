package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Well-known site content keys edited through the admin console.
const (
	ContentKeyHero     = "hero"
	ContentKeyFooter   = "footer"
	ContentKeyContact  = "contact"
	ContentKeyThankYou = "thank_you"
)

// SiteContent is a keyed free-text content block (hero, footer, contact,
// thank-you page) looked up by its string key.
type SiteContent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:content_key;type:varchar(50);uniqueIndex;not null" json:"key" validate:"required,min=1,max=50"`
	Heading   string    `gorm:"type:text" json:"heading"`
	Body      string    `gorm:"type:text" json:"body"`
	CtaLabel  string    `gorm:"type:varchar(100)" json:"ctaLabel"`
	MediaURL  string    `gorm:"type:text" json:"mediaUrl"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SiteContent) TableName() string {
	return "site_content"
}

func (s *SiteContent) Validate() error {
	v := validator.New()
	return v.Struct(s)
}
