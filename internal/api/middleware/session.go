package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/darksignal/darksignal/internal/core/domain"
	"github.com/darksignal/darksignal/internal/core/ports"
)

const (
	sessionContextKey = "session"
	roleContextKey    = "role"

	loginPath = "/auth/login"
)

// SessionGuard redirects requests without an active session to the login
// page and injects the session into the request context otherwise. It is a
// pure presence check; session lifetime belongs to the store.
func SessionGuard(store ports.SessionStore, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, loginPath)
			}

			sess, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil || !sess.Active() {
				return c.Redirect(http.StatusFound, loginPath)
			}

			c.Set(sessionContextKey, sess)
			c.Set(roleContextKey, sess.Role)

			return next(c)
		}
	}
}

// SessionFrom returns the session placed in the context by SessionGuard, or
// nil when the request is unauthenticated.
func SessionFrom(c echo.Context) *domain.Session {
	sess, _ := c.Get(sessionContextKey).(*domain.Session)
	return sess
}
