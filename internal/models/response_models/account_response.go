package response_models

type AccountLoginResponse struct {
	Token string `json:"token"`
	IsVip bool   `json:"is_vip"`
}

// ProfileResponse is the entitlement snapshot served by /accounts/me and
// GET /subscription (after expiry reconciliation).
type ProfileResponse struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	Country               string `json:"country,omitempty"`
	IsSetupComplete       bool   `json:"isSetupComplete"`
	IsVip                 bool   `json:"isVip"`
	IsAdmin               bool   `json:"isAdmin"`
	SubscriptionPlan      string `json:"subscriptionPlan"`
	SubscriptionStatus    string `json:"subscriptionStatus"`
	SubscriptionStartDate string `json:"subscriptionStartDate,omitempty"`
	SubscriptionEndDate   string `json:"subscriptionEndDate,omitempty"`
	SubscriptionRenewable bool   `json:"subscriptionRenewable"`
}

type SetupStatusResponse struct {
	IsSetupComplete bool `json:"isSetupComplete"`
}
