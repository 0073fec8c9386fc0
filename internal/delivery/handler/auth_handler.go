package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/application/services"
	"github.com/Demureaxs/weaver-final-v1/internal/infrastructure"
)

type AuthHandler struct {
	auth     *services.AuthService
	users    *services.UserService
	sessions *infrastructure.SessionService
	redis    *infrastructure.RedisService
	log      *zap.Logger
}

func NewAuthHandler(
	auth *services.AuthService,
	users *services.UserService,
	sessions *infrastructure.SessionService,
	redis *infrastructure.RedisService,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{auth: auth, users: users, sessions: sessions, redis: redis, log: log}
}

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"displayName" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     infrastructure.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     infrastructure.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	user, err := h.auth.Register(c.Request().Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		return respondError(c, h.log, err)
	}

	token, expires, err := h.sessions.Issue(user.ID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.setSessionCookie(c, token, expires)

	return c.JSON(http.StatusCreated, echo.Map{"user": user})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}

	token, expires, err := h.sessions.Issue(user.ID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.setSessionCookie(c, token, expires)

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if token := sessionToken(c); token != "" {
		// Best-effort revocation for the token's remaining life.
		if err := h.redis.RevokeToken(c.Request().Context(), token, h.sessions.TTL()); err != nil {
			h.log.Warn("token revocation failed", zap.Error(err))
		}
	}
	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Session reports login state; always 200, even for anonymous callers.
func (h *AuthHandler) Session(c echo.Context) error {
	userID := CurrentUserID(c)
	if userID == "" {
		return c.JSON(http.StatusOK, echo.Map{"isLoggedIn": false, "user": nil})
	}

	user, err := h.users.Me(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"isLoggedIn": false, "user": nil})
	}
	return c.JSON(http.StatusOK, echo.Map{"isLoggedIn": true, "user": user})
}
