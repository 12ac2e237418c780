package db_models

import (
	"gorm.io/datatypes"
)

// Plan is the subscription catalog row backing the pricing page.
// Code matches the SubscriptionPlan enum ("monthly", "quarterly", "yearly").
type Plan struct {
	BaseModel
	Code            string `gorm:"uniqueIndex"`
	Name            string
	Description     *string
	BackgroundImage string
	DurationMonths  int32
	PriceMinor      int64  // 999 = $9.99
	Currency        string `gorm:"size:3"` // "USD", "BRL"
	IsActive        bool   `gorm:"default:true"`

	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
