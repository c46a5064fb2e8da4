package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cimco/maintenance-system/internal/core/domain"
	"github.com/cimco/maintenance-system/internal/core/session"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func newTestAuthService() (*AuthService, *stubUserRepo, *session.Store) {
	repo := newStubUserRepo()
	store := session.NewStore(time.Hour)
	svc := NewAuthService(repo, store, zerolog.Nop())
	return svc, repo, store
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), "tech", "longenough", domain.RoleWorker)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "longenough" || user.PasswordHash == "" {
		t.Fatalf("expected password to be hashed, got %q", user.PasswordHash)
	}
	if user.Role != domain.RoleWorker {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "", "longenough", domain.RoleWorker); !errors.Is(err, domain.ErrInvalidUsername) {
		t.Fatalf("expected ErrInvalidUsername for empty username, got %v", err)
	}

	long := make([]byte, domain.MaxUsernameLen+1)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := svc.Register(ctx, string(long), "longenough", domain.RoleWorker); !errors.Is(err, domain.ErrInvalidUsername) {
		t.Fatalf("expected ErrInvalidUsername for 51-char username, got %v", err)
	}

	if _, err := svc.Register(ctx, "bob", "short", domain.RoleWorker); !errors.Is(err, domain.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}

	if _, err := svc.Register(ctx, "bob", "longenough", domain.Role("supervisor")); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "bob", "password1", domain.RoleWorker); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(ctx, "bob", "password2", domain.RoleWorker); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, store := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "carol", "s3cretpass", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	sess, err := svc.Login(ctx, "carol", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sess.Token == "" || sess.Username != "carol" || sess.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session: %+v", sess)
	}

	// The minted session must be immediately valid.
	if _, ok := store.Validate(sess.Token); !ok {
		t.Fatalf("minted session did not validate")
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownUserIndistinguishable(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "dave", "goodpassword", domain.RoleWorker); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPassErr := svc.Login(ctx, "dave", "badpassword")
	_, noUserErr := svc.Login(ctx, "ghost", "badpassword")

	if !errors.Is(wrongPassErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}
	if !errors.Is(noUserErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", noUserErr)
	}
	if wrongPassErr.Error() != noUserErr.Error() {
		t.Fatalf("outcomes must be indistinguishable: %q vs %q", wrongPassErr, noUserErr)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Login(ctx, "", "password"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty username: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "tech", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_MalformedStoredHash(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	ctx := context.Background()

	repo.users["broken"] = &domain.User{ID: "u1", Username: "broken", PasswordHash: "not-a-phc-string", Role: domain.RoleWorker}

	if _, err := svc.Login(ctx, "broken", "whatever-pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("malformed hash must surface as invalid credentials, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, store := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "erin", "password123", domain.RoleWorker); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	sess, err := svc.Login(ctx, "erin", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	svc.Logout(sess.Token)
	if _, ok := store.Validate(sess.Token); ok {
		t.Fatalf("session validated after logout")
	}

	// Unknown token: no error, no panic.
	svc.Logout("unknown")
}

func TestAuthService_WorkerGatedScenario(t *testing.T) {
	svc, _, store := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "tech", "password123", domain.RoleWorker); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	sess, err := svc.Login(ctx, "tech", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if !store.HasRole(sess.Token, domain.RoleWorker) {
		t.Fatalf("worker session denied worker-gated operation")
	}
	if store.HasRole(sess.Token, domain.RoleAdmin) {
		t.Fatalf("worker session allowed admin-gated operation")
	}
}
