package dto

import "github.com/fiftyvillagers/seva-portal/internal/app/models"

// RegisterRequest is the payload for student registration.
// Registration always creates a student account; admins are seeded.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the signed token and the public user fields
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
