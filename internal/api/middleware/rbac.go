package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cimco/maintenance-system/internal/core/domain"
	"github.com/cimco/maintenance-system/internal/core/session"
)

// RequireRole gates a route on the session store's role check. Every
// privileged route goes through this guard; it re-validates the token on
// every request and caches nothing. Admin sessions satisfy any required
// role. Denials carry no detail about which check failed.
func RequireRole(store *session.Store, required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, _ := c.Get(CtxToken).(string)
			if !store.HasRole(token, required) {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			return next(c)
		}
	}
}
