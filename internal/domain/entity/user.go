package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the system. Email is the login identifier.
// IsAdmin gates catalog and user management operations.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	Name         string
	MobileNo     string
	IsAdmin      bool
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Roles returns the role claims carried in this user's access tokens.
func (u *User) Roles() []string {
	roles := []string{RoleCustomer}
	if u.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}

// Role names used in token claims and route guards.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)
