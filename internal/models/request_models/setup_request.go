package request_models

type SetupRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50"`
	Country  string `json:"country" binding:"required,min=2,max=60"`
	Locale   string `json:"locale" binding:"omitempty,oneof=en-US pt-BR"`
}
