package domain

import "time"

// User represents an authenticated user in the system.
type User struct {
	ID             string    `json:"user_id"    db:"id"`
	Name           string    `json:"name"       db:"name"`
	Email          string    `json:"email"      db:"email"`
	HashedPassword string    `json:"-"          db:"hashed_password"` // never serialized to JSON
	IsActive       bool      `json:"is_active"  db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// UserContext is the authenticated user context injected into request handlers.
type UserContext struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// SignupRequest is the registration payload.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token is the response for a successful signup or login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
