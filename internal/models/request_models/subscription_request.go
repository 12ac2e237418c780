package request_models

// Action is one of "subscribe", "renew", "cancel". Plan is required for
// subscribe/renew and ignored for cancel.
type SubscriptionRequest struct {
	Plan   string `json:"plan"`
	Action string `json:"action" binding:"required"`
}
