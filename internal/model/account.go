package model

import "time"

// Account is an authenticated tenant. Every student belongs to exactly
// one account and all student-scoped queries filter by it.
type Account struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// LoginRequest is the payload for account authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}
