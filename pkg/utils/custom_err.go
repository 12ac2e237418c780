package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	ErrInvalidPlan      = errors.New("invalid subscription plan")
	ErrInvalidAction    = errors.New("invalid subscription action")
	ErrPlanNotFound     = errors.New("plan not found")
	ErrInvalidMediaType = errors.New("invalid media type")
	ErrInvalidListKind  = errors.New("invalid list kind")
	ErrMissingFields    = errors.New("missing required fields")

	ErrPlaylistNotFound     = errors.New("playlist not found")
	ErrPlaylistItemNotFound = errors.New("playlist item not found")
	ErrForbidden            = errors.New("forbidden")

	ErrUpstreamFailure = errors.New("upstream catalog error")
	ErrDatabaseError   = errors.New("database error")
)
