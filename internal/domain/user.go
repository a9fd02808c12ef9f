package domain

import (
	"errors"
	"fmt"
	"time"
)

// UserAccount represents a cooperative staff account.
type UserAccount struct {
	ID        string
	Name      string
	Username  string
	Role      Role
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Role represents a user's access level.
type Role string

const (
	// RoleOperator can view the dashboard but cannot record transactions.
	RoleOperator Role = "operator"

	// RoleAdmin can record transactions with a capped discount.
	RoleAdmin Role = "admin"

	// RoleSuperAdmin can record transactions with any discount and manage users.
	RoleSuperAdmin Role = "super_admin"
)

var validRoles = map[Role]bool{
	RoleOperator:   true,
	RoleAdmin:      true,
	RoleSuperAdmin: true,
}

// IsValid checks if the role is a valid role.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// Authentication errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInactiveUser = errors.New("user account is inactive")
)

// UserID renders a user sequence number as a display ID.
// Same scheme as transactions, independent namespace.
func UserID(seq int) string {
	return fmt.Sprintf("U-%04d", seq)
}
