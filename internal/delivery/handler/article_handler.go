package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/application/services"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

type ArticleHandler struct {
	articles *services.ArticleService
	log      *zap.Logger
}

func NewArticleHandler(articles *services.ArticleService, log *zap.Logger) *ArticleHandler {
	return &ArticleHandler{articles: articles, log: log}
}

type createArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type updateArticleRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.articles.List(c.Request().Context(), CurrentUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"articles": articles})
}

func (h *ArticleHandler) Get(c echo.Context) error {
	article, err := h.articles.Get(c.Request().Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"article": article})
}

func (h *ArticleHandler) Create(c echo.Context) error {
	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}

	article, err := h.articles.Create(c.Request().Context(), CurrentUserID(c), req.Title, req.Content)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"article": article})
}

func (h *ArticleHandler) Update(c echo.Context) error {
	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}

	input := services.UpdateArticleInput{Title: req.Title, Content: req.Content}
	if req.Status != nil {
		status := entities.ArticleStatus(*req.Status)
		input.Status = &status
	}

	article, err := h.articles.Update(c.Request().Context(), CurrentUserID(c), c.Param("id"), input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"article": article})
}

func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.articles.Delete(c.Request().Context(), CurrentUserID(c), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
