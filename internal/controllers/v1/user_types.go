package v1

import (
	"time"
)

// RegisterRequest holds the fields for a new user registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100" example:"Jane Doe"`         // Display name
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`  // Login email, unique
	Password string `json:"password" binding:"required,min=8,max=72" example:"hunter22hunter22"` // bcrypt limits passwords to 72 bytes
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"hunter22hunter22"`
}

type LoginResponse struct {
	Token     string    `json:"token"`                                           // Bearer token for the Authorization header
	ExpiresAt time.Time `json:"expiresAt" example:"2022-04-03T19:28:44.491514Z"` // Time the token expires
}
