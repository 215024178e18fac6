package models

import (
	"time"

	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto/enums"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Email     string     `json:"email" db:"email"`
	Password  string     `json:"-" db:"password_hash"` // Hashed password, excluded from JSON
	Role      enums.Role `json:"role" db:"role"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}
