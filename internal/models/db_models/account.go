package db_models

import (
	"gorm.io/datatypes"
)

type SubscriptionPlan string

const (
	PlanNone      SubscriptionPlan = "none"
	PlanMonthly   SubscriptionPlan = "monthly"
	PlanQuarterly SubscriptionPlan = "quarterly"
	PlanYearly    SubscriptionPlan = "yearly"
)

type SubscriptionStatus string

const (
	SubStatusInactive  SubscriptionStatus = "inactive"
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusExpired   SubscriptionStatus = "expired"
	SubStatusCancelled SubscriptionStatus = "cancelled"
)

// Account is the registered end user. Entitlement fields are denormalized
// onto the account row; IsVip==true must imply an active, unexpired
// subscription (reconciled by the entitlement layer, see services).
type Account struct {
	BaseModel
	Name            string
	Email           string `gorm:"uniqueIndex"`
	PasswordHash    string
	Role            string `gorm:"default:user"` // "user" | "admin"
	Country         string
	IsSetupComplete bool           `gorm:"default:false"`
	Preferences     datatypes.JSON `gorm:"type:jsonb;default:'{}'"` // locale etc.

	IsVip                 bool               `gorm:"default:false"`
	IsAdmin               bool               `gorm:"default:false"`
	SubscriptionPlan      SubscriptionPlan   `gorm:"default:none"`
	SubscriptionStatus    SubscriptionStatus `gorm:"default:inactive;index"`
	SubscriptionStartDate *int64
	SubscriptionEndDate   *int64
	SubscriptionRenewable bool `gorm:"default:false"`

	Playlists   []Playlist       `gorm:"foreignKey:AccountID"`
	ListEntries []MediaListEntry `gorm:"foreignKey:AccountID"`
}
