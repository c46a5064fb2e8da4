package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cimco/maintenance-system/internal/core/domain"
)

func runGuard(t *testing.T, mw echo.MiddlewareFunc, token string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if token != "" {
		c.Set(CtxToken, token)
	}

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRequireRole_WorkerAllowsWorker(t *testing.T) {
	store, sess := newStoreWithSession(domain.RoleWorker)

	rec, called := runGuard(t, RequireRole(store, domain.RoleWorker), sess.Token)
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("worker denied worker-gated route: called=%v code=%d", called, rec.Code)
	}
}

func TestRequireRole_AdminDominatesWorker(t *testing.T) {
	store, sess := newStoreWithSession(domain.RoleAdmin)

	rec, called := runGuard(t, RequireRole(store, domain.RoleWorker), sess.Token)
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("admin denied worker-gated route: called=%v code=%d", called, rec.Code)
	}
}

func TestRequireRole_WorkerDeniedAdminRoute(t *testing.T) {
	store, sess := newStoreWithSession(domain.RoleWorker)

	rec, called := runGuard(t, RequireRole(store, domain.RoleAdmin), sess.Token)
	if called {
		t.Fatalf("guarded handler ran for denied request")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRole_MissingToken(t *testing.T) {
	store, _ := newStoreWithSession(domain.RoleAdmin)

	rec, called := runGuard(t, RequireRole(store, domain.RoleWorker), "")
	if called {
		t.Fatalf("guarded handler ran without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRole_ExpiredSessionLooksAbsent(t *testing.T) {
	store, sess := newStoreWithSession(domain.RoleAdmin)
	store.Logout(sess.Token)

	recRevoked, _ := runGuard(t, RequireRole(store, domain.RoleWorker), sess.Token)
	recUnknown, _ := runGuard(t, RequireRole(store, domain.RoleWorker), "never-existed")

	if recRevoked.Code != recUnknown.Code {
		t.Fatalf("revoked and unknown tokens must be indistinguishable: %d vs %d", recRevoked.Code, recUnknown.Code)
	}
	if recRevoked.Body.String() != recUnknown.Body.String() {
		t.Fatalf("revoked and unknown responses must match: %q vs %q", recRevoked.Body.String(), recUnknown.Body.String())
	}
}
