package session

import (
	"sync"
	"testing"
	"time"

	"github.com/cimco/maintenance-system/internal/core/domain"
)

func testUser(role domain.Role) *domain.User {
	return &domain.User{
		ID:       "user123",
		Username: "tech",
		Role:     role,
	}
}

func TestStore_CreateAndValidate(t *testing.T) {
	store := NewStore(0)

	sess := store.Create(testUser(domain.RoleWorker))
	if sess.Token == "" {
		t.Fatalf("expected non-empty token")
	}
	if sess.UserID != "user123" || sess.Username != "tech" || sess.Role != domain.RoleWorker {
		t.Fatalf("unexpected session: %+v", sess)
	}

	got, ok := store.Validate(sess.Token)
	if !ok {
		t.Fatalf("freshly created session did not validate")
	}
	if got != sess {
		t.Fatalf("validate returned %+v, want %+v", got, sess)
	}

	if _, ok := store.Validate("invalid-token"); ok {
		t.Fatalf("unknown token validated")
	}
}

func TestStore_TokensAreUnique(t *testing.T) {
	store := NewStore(0)
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		sess := store.Create(testUser(domain.RoleWorker))
		if _, dup := seen[sess.Token]; dup {
			t.Fatalf("duplicate token minted: %s", sess.Token)
		}
		seen[sess.Token] = struct{}{}
	}
}

func TestStore_ExpiryIsStrict(t *testing.T) {
	store := NewStore(time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	sess := store.Create(testUser(domain.RoleWorker))

	// Advance the clock to exactly the expiry instant: already invalid.
	store.now = func() time.Time { return now.Add(time.Hour) }
	if _, ok := store.Validate(sess.Token); ok {
		t.Fatalf("session expiring exactly now must be invalid")
	}

	// One second before expiry: still valid.
	store.now = func() time.Time { return now.Add(time.Hour - time.Second) }
	if _, ok := store.Validate(sess.Token); !ok {
		t.Fatalf("session should be valid before expiry")
	}
}

func TestStore_ExpiredIndistinguishableFromAbsent(t *testing.T) {
	store := NewStore(time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	sess := store.Create(testUser(domain.RoleAdmin))
	store.now = func() time.Time { return now.Add(2 * time.Hour) }

	expiredSess, expiredOK := store.Validate(sess.Token)
	absentSess, absentOK := store.Validate("never-existed")
	if expiredOK || absentOK {
		t.Fatalf("expired or absent token validated")
	}
	if expiredSess != absentSess {
		t.Fatalf("expired and absent lookups must return identical zero values")
	}

	if store.HasRole(sess.Token, domain.RoleAdmin) {
		t.Fatalf("expired session passed role check")
	}
}

func TestStore_Logout(t *testing.T) {
	store := NewStore(0)
	sess := store.Create(testUser(domain.RoleWorker))

	store.Logout(sess.Token)
	if _, ok := store.Validate(sess.Token); ok {
		t.Fatalf("session validated after logout")
	}

	// Idempotent: logging out again, or an unknown token, must not panic.
	store.Logout(sess.Token)
	store.Logout("unknown-token")
}

func TestStore_HasRole(t *testing.T) {
	store := NewStore(0)

	adminSess := store.Create(testUser(domain.RoleAdmin))
	workerSess := store.Create(testUser(domain.RoleWorker))

	if !store.HasRole(adminSess.Token, domain.RoleAdmin) {
		t.Fatalf("admin token denied admin access")
	}
	if !store.HasRole(adminSess.Token, domain.RoleWorker) {
		t.Fatalf("admin must dominate worker")
	}
	if !store.HasRole(workerSess.Token, domain.RoleWorker) {
		t.Fatalf("worker token denied worker access")
	}
	if store.HasRole(workerSess.Token, domain.RoleAdmin) {
		t.Fatalf("worker token granted admin access")
	}
	if store.HasRole("no-such-token", domain.RoleWorker) {
		t.Fatalf("unknown token granted access")
	}
}

func TestStore_CleanupExpired(t *testing.T) {
	store := NewStore(time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	stale := store.Create(testUser(domain.RoleWorker))

	// Mint a second session two hours later; the first is then expired.
	store.now = func() time.Time { return now.Add(2 * time.Hour) }
	fresh := store.Create(testUser(domain.RoleAdmin))

	if removed := store.CleanupExpired(); removed != 1 {
		t.Fatalf("expected 1 eviction, got %d", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 remaining session, got %d", store.Len())
	}
	if _, ok := store.Validate(stale.Token); ok {
		t.Fatalf("swept session validated")
	}
	if _, ok := store.Validate(fresh.Token); !ok {
		t.Fatalf("cleanup evicted an active session")
	}

	// Sweeping an empty store is safe.
	store.Logout(fresh.Token)
	if removed := store.CleanupExpired(); removed != 0 {
		t.Fatalf("expected 0 evictions on empty store, got %d", removed)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore(0)
	user := testUser(domain.RoleWorker)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				sess := store.Create(user)
				if _, ok := store.Validate(sess.Token); !ok {
					t.Errorf("session not visible immediately after create")
					return
				}
				store.HasRole(sess.Token, domain.RoleWorker)
				if j%2 == 0 {
					store.Logout(sess.Token)
				}
				store.CleanupExpired()
			}
		}()
	}
	wg.Wait()
}
