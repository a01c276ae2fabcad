package domain

import (
	"errors"
	"fmt"
	"time"
)

// Role is the closed set of access tiers a user can hold. The wire-level
// tags are fixed; raw input becomes a Role only through ParseRole.
type Role string

const (
	RoleLineViewer Role = "user1"
	RoleBarViewer  Role = "user2"
	RolePieViewer  Role = "user3"
)

var ErrMissingFields = errors.New("username, password, and role are required")
var ErrInvalidRole = errors.New("invalid role")
var ErrUserExists = errors.New("username already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// ParseRole validates a raw role tag against the fixed role set.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleLineViewer, RoleBarViewer, RolePieViewer:
		return Role(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, raw)
}

// User models one registrable identity. PasswordHash is opaque above the
// hashing layer and never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
