package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

// statusFor maps the domain error taxonomy to stable HTTP statuses.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, entities.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, entities.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, entities.ErrInsufficientCredits):
		return http.StatusForbidden, "Insufficient credits"
	case errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, entities.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, entities.ErrConflict):
		return http.StatusConflict, "Conflict"
	case errors.Is(err, entities.ErrNotConfigured):
		return http.StatusServiceUnavailable, "Service not configured"
	case errors.Is(err, entities.ErrGenerationFailed):
		return http.StatusInternalServerError, err.Error()
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

// respondError converts err into its JSON error response. Unexpected errors
// are logged with full detail and leave the client with a generic message.
func respondError(c echo.Context, log *zap.Logger, err error) error {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("path", c.Path()),
			zap.String("method", c.Request().Method),
			zap.Error(err))
	}
	return c.JSON(status, echo.Map{"error": message})
}
