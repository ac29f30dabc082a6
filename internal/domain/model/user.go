package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role grants or restricts access to store operations.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered customer with a wallet balance.
// Balance is mutated only through wallet repository operations.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Balance      decimal.Decimal
	CreatedAt    time.Time
}

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
