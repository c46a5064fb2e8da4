package domain

import "errors"

// Role is the closed set of access levels known to the system.
// Admin strictly dominates worker; there is no third level.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleWorker
}

const (
	// MaxUsernameLen is the upper bound enforced at account creation.
	MaxUsernameLen = 50
	// MinPasswordLen is the lower bound enforced at account creation.
	MinPasswordLen = 8
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidUsername    = errors.New("username must be between 1 and 50 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidRole        = errors.New("role must be admin or worker")
)

// User models an account in the user directory. Accounts are immutable once
// created; only the password hash is ever stored, never the plaintext.
type User struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"-" bson:"password_hash"`
	Role         Role   `json:"role" bson:"role"`
	CreatedAt    int64  `json:"created_at" bson:"created_at"`
}
