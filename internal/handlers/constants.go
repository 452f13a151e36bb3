package handlers

const (
	ProfileHeaderName = "X-Profile-ID"
	GateHeaderName    = "X-Gate-Token"

	ErrInvalidRequestBody  = "Invalid request body"
	ErrUnauthorized        = "Unauthorized"
	ErrProfileNotFound     = "Profile not found"
	ErrInternalServerError = "Internal server error"
)
