package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Demureaxs/weaver-final-v1/internal/infrastructure"
)

func newAuthTestServer(t *testing.T, sessions *infrastructure.SessionService) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(ResolveSession(sessions, &infrastructure.RedisService{}))
	e.GET("/open", func(c echo.Context) error {
		return c.String(http.StatusOK, CurrentUserID(c))
	})
	e.GET("/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, CurrentUserID(c))
	}, RequireAuth())
	return e
}

func TestResolveSessionAttachesUser(t *testing.T) {
	sessions := infrastructure.NewSessionService("secret", time.Hour)
	e := newAuthTestServer(t, sessions)

	token, _, err := sessions.Issue("user-7")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: infrastructure.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-7", rec.Body.String())
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	sessions := infrastructure.NewSessionService("secret", time.Hour)
	e := newAuthTestServer(t, sessions)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// A bad cookie is an anonymous request, never an error.
func TestResolveSessionBadToken(t *testing.T) {
	sessions := infrastructure.NewSessionService("secret", time.Hour)
	e := newAuthTestServer(t, sessions)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.AddCookie(&http.Cookie{Name: infrastructure.SessionCookieName, Value: "tampered.token.here"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
