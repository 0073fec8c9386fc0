package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/application/services"
	"github.com/Demureaxs/weaver-final-v1/internal/infrastructure"
)

type GenerationHandler struct {
	generation *services.GenerationService
	limiter    *infrastructure.UserRateLimiter
	log        *zap.Logger
}

func NewGenerationHandler(generation *services.GenerationService, limiter *infrastructure.UserRateLimiter, log *zap.Logger) *GenerationHandler {
	return &GenerationHandler{generation: generation, limiter: limiter, log: log}
}

type generateArticleRequest struct {
	Keyword            string `json:"keyword" validate:"required"`
	SectionCount       int    `json:"sectionCount"`
	MinWordsPerSection int    `json:"minWordsPerSection"`
	IncludeFaq         bool   `json:"includeFaq"`
	Tone               string `json:"tone"`
	Language           string `json:"language"`
}

type refineBlockRequest struct {
	Prompt           string `json:"prompt" validate:"required"`
	Content          string `json:"content" validate:"required"`
	Context          string `json:"context"`
	PreviousContext  string `json:"previousContext"`
	NextContext      string `json:"nextContext"`
	CharacterContext string `json:"characterContext"`
}

type generateChapterRequest struct {
	IncludeCharacters      []string `json:"includeCharacters"`
	IncludeWorldItems      []string `json:"includeWorldItems"`
	IncludePreviousChapter bool     `json:"includePreviousChapter"`
	IncludeNextChapter     bool     `json:"includeNextChapter"`
}

type generateOutlinesRequest struct {
	ChapterCount     int `json:"chapterCount" validate:"required,min=1,max=50"`
	AverageWordCount int `json:"averageWordCount"`
}

// GenerateArticle streams the generated article as newline-delimited JSON.
// Failures before the first chunk are plain HTTP errors; once the stream has
// started the only channel left is a terminal error event.
func (h *GenerationHandler) GenerateArticle(c echo.Context) error {
	userID := CurrentUserID(c)
	if !h.limiter.Allow(userID) {
		return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "Too many generation requests, slow down"})
	}

	var req generateArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	resp := c.Response()
	var stream *StreamWriter

	result, err := h.generation.GenerateArticle(c.Request().Context(), userID, services.ArticleRequest{
		Keyword:            req.Keyword,
		SectionCount:       req.SectionCount,
		MinWordsPerSection: req.MinWordsPerSection,
		IncludeFaq:         req.IncludeFaq,
		Tone:               req.Tone,
		Language:           req.Language,
	}, func(chunk string) error {
		if stream == nil {
			resp.Header().Set(echo.HeaderContentType, "application/x-ndjson")
			resp.WriteHeader(http.StatusOK)
			stream = NewStreamWriter(resp)
		}
		return stream.Content(chunk)
	})

	if err != nil {
		if !resp.Committed {
			return respondError(c, h.log, err)
		}
		h.log.Error("article generation failed mid-stream", zap.Error(err))
		return stream.Error(err.Error())
	}

	if stream == nil {
		resp.Header().Set(echo.HeaderContentType, "application/x-ndjson")
		resp.WriteHeader(http.StatusOK)
		stream = NewStreamWriter(resp)
	}
	return stream.Stats(result.NewCredits, result.Article.ID)
}

func (h *GenerationHandler) RefineBlock(c echo.Context) error {
	userID := CurrentUserID(c)
	if !h.limiter.Allow(userID) {
		return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "Too many generation requests, slow down"})
	}

	var req refineBlockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	result, err := h.generation.RefineBlock(c.Request().Context(), userID, services.RefineRequest{
		Prompt:           req.Prompt,
		Content:          req.Content,
		Context:          req.Context,
		PreviousContext:  req.PreviousContext,
		NextContext:      req.NextContext,
		CharacterContext: req.CharacterContext,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"refinedText": result.RefinedText, "credits": result.Credits})
}

func (h *GenerationHandler) GenerateChapter(c echo.Context) error {
	userID := CurrentUserID(c)
	if !h.limiter.Allow(userID) {
		return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "Too many generation requests, slow down"})
	}

	var req generateChapterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}

	result, err := h.generation.GenerateChapterContent(c.Request().Context(), userID, c.Param("id"), c.Param("chapterId"), services.ChapterGenerateRequest{
		IncludeCharacters:      req.IncludeCharacters,
		IncludeWorldItems:      req.IncludeWorldItems,
		IncludePreviousChapter: req.IncludePreviousChapter,
		IncludeNextChapter:     req.IncludeNextChapter,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"chapter": result.Chapter, "credits": result.NewCredits})
}

func (h *GenerationHandler) PolishChapter(c echo.Context) error {
	userID := CurrentUserID(c)
	if !h.limiter.Allow(userID) {
		return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "Too many generation requests, slow down"})
	}

	result, err := h.generation.PolishChapter(c.Request().Context(), userID, c.Param("id"), c.Param("chapterId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"chapter": result.Chapter, "credits": result.NewCredits})
}

func (h *GenerationHandler) GenerateOutlines(c echo.Context) error {
	userID := CurrentUserID(c)
	if !h.limiter.Allow(userID) {
		return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "Too many generation requests, slow down"})
	}

	var req generateOutlinesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	chapters, err := h.generation.GenerateChapterOutlines(c.Request().Context(), userID, c.Param("id"), services.OutlineRequest{
		ChapterCount:     req.ChapterCount,
		AverageWordCount: req.AverageWordCount,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"chapters": chapters})
}
