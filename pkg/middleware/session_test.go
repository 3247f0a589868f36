package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/kitsukisaiseikyo-byte/farm-manager/entities"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/auth/service"
)

type fakeAuth struct{ valid string }

func (f fakeAuth) Login(string, string) (*service.Session, error) { return nil, errors.New("unused") }
func (f fakeAuth) EnsureDefaultUser(string, string) error { return nil }
func (f fakeAuth) Authenticate(token string) (entities.User, error) {
	if token == f.valid {
		return entities.User{ID: 7, Username: "admin"}, nil
	}
	return entities.User{}, errors.New("invalid session")
}

func newServer() *echo.Echo {
	e := echo.New()
	g := e.Group("", RequireSession(fakeAuth{valid: "good"}, nil))
	g.GET("/api/events", func(c echo.Context) error {
		u, ok := CurrentUser(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, map[string]any{"user": u.Username})
	})
	return e
}

func TestRequireSession_Redirects(t *testing.T) {
	e := newServer()
	for name, cookie := range map[string]*http.Cookie{
		"no cookie":  nil,
		"empty":      {Name: SessionCookie, Value: ""},
		"bad token":  {Name: SessionCookie, Value: "bad"},
		"other name": {Name: "session", Value: "good"},
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code, name)
		assert.Equal(t, LoginPath, rec.Header().Get(echo.HeaderLocation), name)
		assert.NotContains(t, rec.Body.String(), "admin", name)
	}
}

func TestRequireSession_PassesUser(t *testing.T) {
	e := newServer()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":"admin"}`, rec.Body.String())
}
