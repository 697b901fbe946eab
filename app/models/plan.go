package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Plan represents a purchasable pricing tier shown on the landing page.
type Plan struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Slug           string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"slug" validate:"required,min=1,max=50"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name" validate:"required,min=1,max=100"`
	Tagline        string    `gorm:"type:varchar(255)" json:"tagline"`
	Description    string    `gorm:"type:text" json:"description"`
	BasePriceCents int       `gorm:"not null;default:0" json:"basePriceCents" validate:"min=0"`
	IsHighlighted  bool      `gorm:"default:false" json:"isHighlighted"`
	SortOrder      int       `gorm:"default:0" json:"sortOrder"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Plan) Validate() error {
	v := validator.New()
	return v.Struct(p)
}
