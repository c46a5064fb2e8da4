package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cimco/maintenance-system/internal/core/session"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxToken   = "token"
	CtxSession = "session"
)

// Auth extracts the bearer token, validates it against the session store, and
// injects the token and session into the request context. Absent, unknown,
// and expired tokens all produce the same 401.
func Auth(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			sess, ok := store.Validate(parts[1])
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			c.Set(CtxToken, parts[1])
			c.Set(CtxSession, sess)

			return next(c)
		}
	}
}
