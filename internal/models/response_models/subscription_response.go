package response_models

// AccessCheckResponse is the gate decision consumed by every content surface.
// Reason: "admin", "active_subscription", "subscription_expired",
// "subscription_cancelled", "no_subscription".
type AccessCheckResponse struct {
	HasAccess bool   `json:"hasAccess"`
	Reason    string `json:"reason"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

type SubscriptionSnapshot struct {
	IsVip                 bool   `json:"isVip"`
	SubscriptionPlan      string `json:"subscriptionPlan"`
	SubscriptionStatus    string `json:"subscriptionStatus"`
	SubscriptionStartDate string `json:"subscriptionStartDate,omitempty"`
	SubscriptionEndDate   string `json:"subscriptionEndDate,omitempty"`
	SubscriptionRenewable bool   `json:"subscriptionRenewable"`
}

type SubscriptionPlan struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	BackgroundImage string  `json:"background_image,omitempty"`
	DurationMonths  int32   `json:"duration_months"`
	Price           int64   `json:"price"`
	Currency        string  `json:"currency"`
	IsActive        bool    `json:"is_active"`
}
