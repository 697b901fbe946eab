package models

import (
	"github.com/go-playground/validator/v10"
)

// Feature value types for the comparison table.
const (
	FeatureValueBoolean = "boolean"
	FeatureValueText    = "text"
)

// FeatureGroup is a section of rows in the plan comparison table.
type FeatureGroup struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Title          string `gorm:"type:varchar(100);not null" json:"title" validate:"required,min=1,max=100"`
	SortOrder      int    `gorm:"default:0" json:"sortOrder"`
	TooltipEnabled bool   `gorm:"default:false" json:"tooltipEnabled"`
	TooltipText    string `gorm:"type:text" json:"tooltipText"`
	TooltipLink    string `gorm:"type:text" json:"tooltipLink"`
	TooltipImage   string `gorm:"type:text" json:"tooltipImage"`
}

func (g *FeatureGroup) Validate() error {
	v := validator.New()
	return v.Struct(g)
}

// Feature is a single comparison-table row.
type Feature struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	GroupID        uint         `gorm:"index;not null" json:"groupId" validate:"required"`
	Group          FeatureGroup `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Label          string       `gorm:"type:varchar(150);not null" json:"label" validate:"required,min=1,max=150"`
	ValueType      string       `gorm:"type:varchar(20);not null;default:boolean" json:"valueType" validate:"required,oneof=boolean text"`
	SortOrder      int          `gorm:"default:0" json:"sortOrder"`
	TooltipEnabled bool         `gorm:"default:false" json:"tooltipEnabled"`
	TooltipText    string       `gorm:"type:text" json:"tooltipText"`
	TooltipLink    string       `gorm:"type:text" json:"tooltipLink"`
	TooltipImage   string       `gorm:"type:text" json:"tooltipImage"`
}

func (f *Feature) Validate() error {
	v := validator.New()
	return v.Struct(f)
}

// PlanFeature stores the value of a feature for one plan. At most one row
// exists per (feature, plan) pair.
type PlanFeature struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	FeatureID    uint    `gorm:"not null;uniqueIndex:idx_feature_plan" json:"featureId"`
	Feature      Feature `gorm:"foreignKey:FeatureID;constraint:OnDelete:CASCADE" json:"-"`
	PlanID       uint    `gorm:"not null;uniqueIndex:idx_feature_plan" json:"planId"`
	Plan         Plan    `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"-"`
	ValueBoolean *bool   `json:"valueBoolean"`
	ValueText    *string `gorm:"type:text" json:"valueText"`
}
