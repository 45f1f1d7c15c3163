package dto

import "time"

// SignupRequest is the payload for account creation.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
}

// LoginRequest is the payload for session issuance.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
}

// SessionResponse carries a freshly issued token identifier.
type SessionResponse struct {
	Token string `json:"token"`
}

// UserResponse is the wire representation of an account.
type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	SignupDate time.Time `json:"signupDate"`
}
