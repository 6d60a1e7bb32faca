package api

import "time"

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"ana@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	AccessToken string    `json:"accessToken" example:"eyJhbGciOi..."`
	ExpiresAt   time.Time `json:"expiresAt" example:"2025-05-09T15:04:05Z"`
}
