package ports

import (
	"context"

	"github.com/cimco/maintenance-system/internal/core/domain"
)

// AuthService implements the login and registration contract.
type AuthService interface {
	// Register creates a new account. The plaintext password is hashed and
	// discarded; it never reaches the directory.
	Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)

	// Login verifies credentials and mints a session on success. Every
	// failure mode short of an infrastructure error collapses into
	// domain.ErrInvalidCredentials so callers cannot probe for usernames.
	Login(ctx context.Context, username, password string) (*domain.Session, error)

	// Logout revokes the session for the token; unknown tokens are a no-op.
	Logout(token string)
}
