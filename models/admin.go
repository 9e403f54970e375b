package models

import "time"

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminSession describes a verified admin bearer token.
type AdminSession struct {
	Subject   string    `json:"subject"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
