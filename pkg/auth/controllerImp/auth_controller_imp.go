package controllerImp

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/auth/controller"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/auth/service"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/auth/serviceImp"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/middleware"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/view"
)

// LoginFailedMessage is shown for any failed login.
const LoginFailedMessage = "ユーザー名またはパスワードが正しくありません"

type authCtrl struct {
	svc          service.AuthService
	secureCookie bool
	logger       *slog.Logger
}

func NewAuthController(svc service.AuthService, secureCookie bool, logger *slog.Logger) controller.AuthController {
	if logger == nil {
		logger = slog.Default()
	}
	return &authCtrl{svc: svc, secureCookie: secureCookie, logger: logger}
}

func (h *authCtrl) LoginForm(c echo.Context) error {
	if ck, err := c.Cookie(middleware.SessionCookie); err == nil && ck.Value != "" {
		if _, err := h.svc.Authenticate(ck.Value); err == nil {
			return c.Redirect(http.StatusFound, "/")
		}
	}
	return c.Render(http.StatusOK, "login.html", view.Data{"Error": "", "Username": ""})
}

func (h *authCtrl) Login(c echo.Context) error {
	username := c.FormValue("username")
	sess, err := h.svc.Login(username, c.FormValue("password"))
	if err != nil {
		if !errors.Is(err, serviceImp.ErrInvalidCredentials) {
			return err
		}
		h.logger.Info("login failed", "username", username, "ip", c.RealIP())
		return c.Render(http.StatusUnauthorized, "login.html", view.Data{"Error": LoginFailedMessage, "Username": username})
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/")
}

func (h *authCtrl) Logout(c echo.Context) error {
	if u, ok := middleware.CurrentUser(c); ok {
		h.logger.Info("logout", "user_id", u.ID, "username", u.Username)
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, middleware.LoginPath)
}
