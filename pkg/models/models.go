package models

import "time"

// ErrorResponse is the standard error payload for all endpoints
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned on successful registration or login
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the public view of a user account
type UserResponse struct {
	ID          int        `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	PlanTier    string     `json:"planTier"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
}

// KeyActionRequest drives the API key mutation endpoint. Action selects
// the operation; KeyID is required for everything except generate.
type KeyActionRequest struct {
	Action string `json:"action" validate:"required"`
	KeyID  int    `json:"keyId"`
	Enable *bool  `json:"enable"`
}

// CheckoutRequest starts a Stripe checkout for a paid plan
type CheckoutRequest struct {
	PlanCode string `json:"planCode" validate:"required"`
}

// PlaygroundRequest proxies a request to the matching API
type PlaygroundRequest struct {
	Endpoint string                 `json:"endpoint" validate:"required"`
	Method   string                 `json:"method"`
	Params   map[string]interface{} `json:"params"`
}

// ChatRequest represents a docs chatbot message
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// ChatResponse is the chatbot's reply
type ChatResponse struct {
	Reply  string   `json:"reply"`
	Intent string   `json:"intent"`
	Links  []string `json:"links,omitempty"`
}

// UptimeDay is one day of historical availability data
type UptimeDay struct {
	Date   string  `json:"date"`
	Uptime float64 `json:"uptime"`
	Status string  `json:"status"`
}
