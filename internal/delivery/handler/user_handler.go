package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/application/services"
)

type UserHandler struct {
	users *services.UserService
	log   *zap.Logger
}

func NewUserHandler(users *services.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

type updateKeywordsRequest struct {
	Keywords []string `json:"keywords" validate:"required"`
}

type adjustCreditsRequest struct {
	Amount int    `json:"amount" validate:"required,gt=0"`
	Type   string `json:"type" validate:"required,oneof=add deduct"`
}

func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.users.Me(c.Request().Context(), CurrentUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

func (h *UserHandler) UpdateKeywords(c echo.Context) error {
	var req updateKeywordsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	profile, err := h.users.UpdateKeywords(c.Request().Context(), CurrentUserID(c), req.Keywords)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"profile": profile})
}

func (h *UserHandler) GetCredits(c echo.Context) error {
	credits, err := h.users.GetCredits(c.Request().Context(), CurrentUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"credits": credits})
}

func (h *UserHandler) AdjustCredits(c echo.Context) error {
	var req adjustCreditsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	credits, err := h.users.AdjustCredits(c.Request().Context(), CurrentUserID(c), req.Amount, req.Type)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"credits": credits})
}
