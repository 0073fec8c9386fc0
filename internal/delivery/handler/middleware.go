package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/infrastructure"
)

const (
	contextKeyUserID       = "userID"
	contextKeySessionToken = "sessionToken"
)

// CurrentUserID returns the resolved caller, or "" for anonymous requests.
func CurrentUserID(c echo.Context) string {
	id, _ := c.Get(contextKeyUserID).(string)
	return id
}

func sessionToken(c echo.Context) string {
	token, _ := c.Get(contextKeySessionToken).(string)
	return token
}

// ResolveSession reads the session cookie and, when the token unseals and is
// not revoked, attaches the user ID to the request context. A bad token is
// simply an anonymous request.
func ResolveSession(sessions *infrastructure.SessionService, redis *infrastructure.RedisService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(infrastructure.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			userID, ok := sessions.Resolve(cookie.Value)
			if !ok {
				return next(c)
			}
			if redis.IsTokenRevoked(c.Request().Context(), cookie.Value) {
				return next(c)
			}

			c.Set(contextKeyUserID, userID)
			c.Set(contextKeySessionToken, cookie.Value)
			return next(c)
		}
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUserID(c) == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}
			return next(c)
		}
	}
}

// RequestLogger logs one line per request with zap.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			log.Info("request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return err
		}
	}
}
