package models

import (
	"github.com/go-playground/validator/v10"
)

// Option group kinds. The kind is fixed at creation and drives how the
// configurator treats every option in the group.
const (
	GroupKindQuantity = "quantity" // independently adjustable counters
	GroupKindSwitch   = "switch"   // mutually exclusive single choice
	GroupKindAddon    = "addon"    // independent boolean toggles
)

// OptionGroup is a named bucket of configurable options.
type OptionGroup struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Kind        string `gorm:"type:varchar(50);not null" json:"kind" validate:"required,oneof=quantity switch addon"`
	Title       string `gorm:"type:varchar(100);not null" json:"title" validate:"required,min=1,max=100"`
	Description string `gorm:"type:text" json:"description"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`
}

func (g *OptionGroup) Validate() error {
	v := validator.New()
	return v.Struct(g)
}

// Option is a single purchasable add-on inside a group.
type Option struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	GroupID        uint        `gorm:"index;not null" json:"groupId" validate:"required"`
	Group          OptionGroup `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Label          string      `gorm:"type:varchar(150);not null" json:"label" validate:"required,min=1,max=150"`
	Description    string      `gorm:"type:text" json:"description"`
	UnitPriceCents int         `gorm:"not null;default:0" json:"unitPriceCents" validate:"min=0"`
	MinQty         int         `gorm:"default:1" json:"minQty"`
	MaxQty         int         `gorm:"default:100" json:"maxQty"`
	DefaultQty     int         `gorm:"default:1" json:"defaultQty"`
	IsDefault      bool        `gorm:"default:false" json:"isDefault"`
	SortOrder      int         `gorm:"default:0" json:"sortOrder"`
	TooltipEnabled bool        `gorm:"default:false" json:"tooltipEnabled"`
	TooltipText    string      `gorm:"type:text" json:"tooltipText"`
	TooltipLink    string      `gorm:"type:text" json:"tooltipLink"`
	TooltipImage   string      `gorm:"type:text" json:"tooltipImage"`
}

func (o *Option) Validate() error {
	v := validator.New()
	return v.Struct(o)
}

// PlanOptionGroup links a plan to an option group it should display.
// A plan with zero rows here shows every group (empty set means all);
// see pricing.VisibleGroups for the resolution rule.
type PlanOptionGroup struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	PlanID        uint        `gorm:"index;not null" json:"planId"`
	Plan          Plan        `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"-"`
	OptionGroupID uint        `gorm:"index;not null" json:"optionGroupId"`
	OptionGroup   OptionGroup `gorm:"foreignKey:OptionGroupID;constraint:OnDelete:CASCADE" json:"-"`
}
