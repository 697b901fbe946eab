package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SelectedOption is the denormalized snapshot of one configured option at
// submission time. Leads stay interpretable even if the catalog changes later.
type SelectedOption struct {
	OptionID   uint   `json:"optionId"`
	Label      string `json:"label"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int    `json:"unitPrice"`
	TotalPrice int    `json:"totalPrice"`
}

// Lead is an immutable record of a completed configuration request.
type Lead struct {
	ID              uint                                `gorm:"primaryKey" json:"id"`
	Reference       string                              `gorm:"type:varchar(36);uniqueIndex" json:"reference"`
	PlanID          uint                                `gorm:"index" json:"planId"`
	PlanName        string                              `gorm:"type:varchar(100)" json:"planName"`
	TotalPriceCents int                                 `gorm:"not null;default:0" json:"totalPriceCents"`
	Name            string                              `gorm:"type:varchar(100);not null" json:"name"`
	Email           string                              `gorm:"type:varchar(150);not null" json:"email"`
	Phone           string                              `gorm:"type:varchar(30)" json:"phone"`
	City            string                              `gorm:"type:varchar(100)" json:"city"`
	Comment         string                              `gorm:"type:text" json:"comment"`
	SelectedOptions datatypes.JSONSlice[SelectedOption] `json:"selectedOptions"`
	CreatedAt       time.Time                           `gorm:"autoCreateTime;index" json:"created_at"`
}

// BeforeCreate assigns the public reference code customers quote back to us.
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.Reference == "" {
		l.Reference = uuid.New().String()
	}
	return nil
}
