package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cimco/maintenance-system/internal/core/credentials"
	"github.com/cimco/maintenance-system/internal/core/domain"
	"github.com/cimco/maintenance-system/internal/core/ports"
	"github.com/cimco/maintenance-system/internal/core/session"
)

// dummyHash is verified against when the username does not exist, so a login
// for an unknown user takes as long as one with a wrong password. It can
// never match any password.
const dummyHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// AuthService implements registration, login, and logout on top of the user
// directory, the credential codec, and the session store.
type AuthService struct {
	users    ports.UserRepository
	sessions *session.Store
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions *session.Store, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

// Register creates a new account after validating username length, password
// length, and role. Duplicate usernames are rejected by the directory.
func (s *AuthService) Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	if len(username) == 0 || len(username) > domain.MaxUsernameLen {
		return nil, domain.ErrInvalidUsername
	}
	if len(password) < domain.MinPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := credentials.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().Unix(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and mints a session on success. A missing
// user, a wrong password, and an unreadable stored hash all surface as
// domain.ErrInvalidCredentials; the distinction is only logged server-side.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	targetHash := dummyHash
	if user != nil {
		targetHash = user.PasswordHash
	}

	valid, verifyErr := credentials.Verify(password, targetHash)
	if verifyErr != nil {
		if user != nil && errors.Is(verifyErr, credentials.ErrMalformedHash) {
			// Data-integrity signal: the stored hash is unreadable.
			s.logger.Error().Str("username", username).Msg("stored password hash is malformed")
		}
		return nil, domain.ErrInvalidCredentials
	}
	if user == nil || !valid {
		return nil, domain.ErrInvalidCredentials
	}

	sess := s.sessions.Create(user)
	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login succeeded")
	return &sess, nil
}

// Logout revokes the session. Unknown tokens are a no-op.
func (s *AuthService) Logout(token string) {
	s.sessions.Logout(token)
}
