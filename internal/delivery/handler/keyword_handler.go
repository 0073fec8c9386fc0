package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/application/services"
)

type KeywordHandler struct {
	keywords *services.KeywordService
	log      *zap.Logger
}

func NewKeywordHandler(keywords *services.KeywordService, log *zap.Logger) *KeywordHandler {
	return &KeywordHandler{keywords: keywords, log: log}
}

type suggestKeywordsRequest struct {
	Keyword string `json:"keyword" validate:"required"`
}

func (h *KeywordHandler) Suggest(c echo.Context) error {
	var req suggestKeywordsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	suggestions, err := h.keywords.Suggest(c.Request().Context(), req.Keyword)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, suggestions)
}
