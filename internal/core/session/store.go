// Package session owns the in-memory token→session mapping shared by every
// request handler. The Store is the sole authority for minting, validating,
// revoking, and sweeping sessions.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cimco/maintenance-system/internal/core/domain"
)

// DefaultTTL is the fixed session lifetime. Sessions are never extended.
const DefaultTTL = 24 * time.Hour

// Store maps opaque bearer tokens to active sessions. The map is guarded as
// one indivisible unit by a single mutex; the lock is held only for map
// access, never across hashing or I/O. Lookups return copies, never a
// reference into the map.
type Store struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an empty Store. A non-positive ttl falls back to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]domain.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create mints a new session for the user and inserts it into the store.
// The token is a cryptographically random 128-bit UUID; the returned value
// is the only copy handed out, so losing it means re-authenticating. The new
// session is visible to concurrent Validate calls as soon as Create returns.
func (s *Store) Create(user *domain.User) domain.Session {
	sess := domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: s.now().Add(s.ttl).Unix(),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess
}

// Validate returns the session for the token, or false when the token is
// absent or expired. The two cases are deliberately indistinguishable so a
// caller learns nothing about stale tokens. Expiry is strict: a session whose
// expires_at equals the current second is already invalid.
func (s *Store) Validate(token string) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok || sess.ExpiresAt <= s.now().Unix() {
		return domain.Session{}, false
	}
	return sess, true
}

// Logout removes the session for the token. Removing an unknown token is a
// no-op, not an error.
func (s *Store) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// HasRole reports whether the token names an active session whose role
// satisfies required. Admin satisfies every required role; any other role
// must match exactly. This is the single authorization decision point for
// privileged operations.
func (s *Store) HasRole(token string, required domain.Role) bool {
	sess, ok := s.Validate(token)
	if !ok {
		return false
	}
	if sess.Role == domain.RoleAdmin {
		return true
	}
	return sess.Role == required
}

// CleanupExpired evicts every session whose expiry has passed and returns the
// number removed. Validate re-checks expiry on every lookup, so the sweep is
// memory reclamation only and may run at any cadence, including never.
func (s *Store) CleanupExpired() int {
	now := s.now().Unix()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, sess := range s.sessions {
		if sess.ExpiresAt <= now {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

// Len returns the number of sessions currently held, including any that have
// expired but not yet been swept.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
