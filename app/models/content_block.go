package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// MaxContentBlocks caps how many content blocks may exist in total,
// counting inactive rows as well.
const MaxContentBlocks = 10

// ContentBlock is an admin-authored freeform page section. A block with a
// slug becomes addressable as a section anchor for menu links and the sitemap.
type ContentBlock struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Slug      string    `gorm:"type:varchar(100)" json:"slug" validate:"max=100"`
	Title     string    `gorm:"type:varchar(150)" json:"title" validate:"max=150"`
	Content   string    `gorm:"type:text" json:"content"`
	IsHTML    bool      `gorm:"column:is_html;default:false" json:"isHtml"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	SortOrder int       `gorm:"default:0" json:"sortOrder"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *ContentBlock) Validate() error {
	v := validator.New()
	return v.Struct(b)
}
