package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleRestaurant UserRole = "restaurant"
	RoleCharity    UserRole = "charity"
	RoleAdmin      UserRole = "admin"
)

// Valid reports whether the role is one of the closed set. Every role
// dispatch in the handlers switches exhaustively over these three values so
// an unknown role can never fall through silently.
func (r UserRole) Valid() bool {
	switch r {
	case RoleRestaurant, RoleCharity, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null"`
	AddressText  string    `json:"address_text"`
	Lat          *float64  `json:"lat"`
	Lng          *float64  `json:"lng"`
	CreatedAt    time.Time `json:"created_at"`
}
