package models

import (
	"github.com/go-playground/validator/v10"
)

// Menu link target types: an on-page section anchor or an external URL.
const (
	LinkTargetSection  = "section"
	LinkTargetExternal = "external"
)

// MenuLink is a navigation entry in the page header.
type MenuLink struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Label       string `gorm:"type:varchar(100);not null" json:"label" validate:"required,min=1,max=100"`
	TargetType  string `gorm:"type:varchar(20);not null;default:section" json:"targetType" validate:"required,oneof=section external"`
	TargetValue string `gorm:"type:varchar(200);not null" json:"targetValue" validate:"required,max=200"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`
}

func (l *MenuLink) Validate() error {
	v := validator.New()
	return v.Struct(l)
}

// FooterLink is a navigation entry in the page footer. Same shape as a
// MenuLink but managed as its own list.
type FooterLink struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Label       string `gorm:"type:varchar(100);not null" json:"label" validate:"required,min=1,max=100"`
	TargetType  string `gorm:"type:varchar(20);not null;default:section" json:"targetType" validate:"required,oneof=section external"`
	TargetValue string `gorm:"type:varchar(200);not null" json:"targetValue" validate:"required,max=200"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`
}

func (l *FooterLink) Validate() error {
	v := validator.New()
	return v.Struct(l)
}
