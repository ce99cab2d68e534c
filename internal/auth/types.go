package auth

import "errors"

var (
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials covers unknown email, wrong password and
	// deactivated accounts alike, so a caller cannot probe for registered
	// emails.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned by user management operations for unknown ids.
	ErrUserNotFound = errors.New("user not found")
)

// Role distinguishes administrators from regular users.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleRegular Role = "regular"
)

// Valid reports whether r is a recognized role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleRegular
}

// User represents a registered account. The password hash never leaves the
// package boundary in API responses.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	Active       bool   `json:"active"`
	PasswordHash string `json:"-"`
}

// Session identifies an authenticated caller. It is passed explicitly to the
// operations that need to know who is calling.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}
