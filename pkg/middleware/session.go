package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitsukisaiseikyo-byte/farm-manager/entities"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/auth/service"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "farm_session"
	// LoginPath is where unauthenticated requests are sent.
	LoginPath = "/login"

	userKey = "user"
)

// RequireSession lets a request through only with a valid session cookie.
// Anything else, JSON and file routes included, is redirected to the login page.
func RequireSession(auth service.AuthService, logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(SessionCookie)
			if err != nil || ck.Value == "" {
				return c.Redirect(http.StatusFound, LoginPath)
			}
			u, err := auth.Authenticate(ck.Value)
			if err != nil {
				logger.Debug("session rejected", "path", c.Request().URL.Path, "error", err)
				return c.Redirect(http.StatusFound, LoginPath)
			}
			SetUser(c, u)
			return next(c)
		}
	}
}

// SetUser stores the signed-in user on the request context.
func SetUser(c echo.Context, u entities.User) { c.Set(userKey, u) }

// CurrentUser returns the user set by RequireSession.
func CurrentUser(c echo.Context) (entities.User, bool) {
	u, ok := c.Get(userKey).(entities.User)
	return u, ok
}
