package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/application/services"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

type BookHandler struct {
	books *services.BookService
	log   *zap.Logger
}

func NewBookHandler(books *services.BookService, log *zap.Logger) *BookHandler {
	return &BookHandler{books: books, log: log}
}

type createBookRequest struct {
	Title           string `json:"title"`
	Genre           string `json:"genre"`
	Summary         string `json:"summary"`
	StoryArc        string `json:"storyArc"`
	Tone            string `json:"tone"`
	Setting         string `json:"setting"`
	TargetWordCount int    `json:"targetWordCount"`
}

type updateBookRequest struct {
	Title           *string `json:"title"`
	Genre           *string `json:"genre"`
	Summary         *string `json:"summary"`
	StoryArc        *string `json:"storyArc"`
	Tone            *string `json:"tone"`
	Setting         *string `json:"setting"`
	TargetWordCount *int    `json:"targetWordCount"`
}

type createChapterRequest struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	Summary         string `json:"summary"`
	Order           *int   `json:"order"`
	TargetWordCount *int   `json:"targetWordCount"`
}

type updateChapterRequest struct {
	Title           *string `json:"title"`
	Content         *string `json:"content"`
	Summary         *string `json:"summary"`
	Order           *int    `json:"order"`
	TargetWordCount *int    `json:"targetWordCount"`
}

type characterRequest struct {
	Name        string   `json:"name" validate:"required"`
	Role        string   `json:"role"`
	Archetype   string   `json:"archetype"`
	Description string   `json:"description"`
	Motivation  string   `json:"motivation"`
	Flaw        string   `json:"flaw"`
	Traits      []string `json:"traits"`
	Color       string   `json:"color"`
}

type worldItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (h *BookHandler) List(c echo.Context) error {
	books, err := h.books.List(c.Request().Context(), CurrentUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"books": books})
}

func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.books.Get(c.Request().Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"book": book})
}

func (h *BookHandler) Create(c echo.Context) error {
	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}

	book, err := h.books.Create(c.Request().Context(), CurrentUserID(c), services.CreateBookInput{
		Title:           req.Title,
		Genre:           req.Genre,
		Summary:         req.Summary,
		StoryArc:        req.StoryArc,
		Tone:            req.Tone,
		Setting:         req.Setting,
		TargetWordCount: req.TargetWordCount,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"book": book})
}

func (h *BookHandler) Update(c echo.Context) error {
	var req updateBookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}

	book, err := h.books.Update(c.Request().Context(), CurrentUserID(c), c.Param("id"), services.UpdateBookInput{
		Title:           req.Title,
		Genre:           req.Genre,
		Summary:         req.Summary,
		StoryArc:        req.StoryArc,
		Tone:            req.Tone,
		Setting:         req.Setting,
		TargetWordCount: req.TargetWordCount,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"book": book})
}

func (h *BookHandler) Delete(c echo.Context) error {
	if err := h.books.Delete(c.Request().Context(), CurrentUserID(c), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *BookHandler) ListChapters(c echo.Context) error {
	chapters, err := h.books.ListChapters(c.Request().Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"chapters": chapters})
}

func (h *BookHandler) CreateChapter(c echo.Context) error {
	var req createChapterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}

	chapter, err := h.books.CreateChapter(c.Request().Context(), CurrentUserID(c), c.Param("id"), services.CreateChapterInput{
		Title:           req.Title,
		Content:         req.Content,
		Summary:         req.Summary,
		Order:           req.Order,
		TargetWordCount: req.TargetWordCount,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"chapter": chapter})
}

func (h *BookHandler) UpdateChapter(c echo.Context) error {
	var req updateChapterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}

	chapter, err := h.books.UpdateChapter(c.Request().Context(), CurrentUserID(c), c.Param("id"), c.Param("chapterId"), services.UpdateChapterInput{
		Title:           req.Title,
		Content:         req.Content,
		Summary:         req.Summary,
		Order:           req.Order,
		TargetWordCount: req.TargetWordCount,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"chapter": chapter})
}

func (h *BookHandler) DeleteChapter(c echo.Context) error {
	if err := h.books.DeleteChapter(c.Request().Context(), CurrentUserID(c), c.Param("id"), c.Param("chapterId")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *BookHandler) ListCharacters(c echo.Context) error {
	characters, err := h.books.ListCharacters(c.Request().Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"characters": characters})
}

func (h *BookHandler) CreateCharacter(c echo.Context) error {
	var req characterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	character, err := h.books.CreateCharacter(c.Request().Context(), CurrentUserID(c), c.Param("id"), characterInput(req))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"character": character})
}

func (h *BookHandler) UpdateCharacter(c echo.Context) error {
	var req characterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	character, err := h.books.UpdateCharacter(c.Request().Context(), CurrentUserID(c), c.Param("id"), c.Param("characterId"), characterInput(req))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"character": character})
}

func (h *BookHandler) DeleteCharacter(c echo.Context) error {
	if err := h.books.DeleteCharacter(c.Request().Context(), CurrentUserID(c), c.Param("id"), c.Param("characterId")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *BookHandler) ListWorldItems(c echo.Context) error {
	items, err := h.books.ListWorldItems(c.Request().Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"worldItems": items})
}

func (h *BookHandler) CreateWorldItem(c echo.Context) error {
	var req worldItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	item, err := h.books.CreateWorldItem(c.Request().Context(), CurrentUserID(c), c.Param("id"), worldItemInput(req))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"worldItem": item})
}

func (h *BookHandler) UpdateWorldItem(c echo.Context) error {
	var req worldItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	item, err := h.books.UpdateWorldItem(c.Request().Context(), CurrentUserID(c), c.Param("id"), c.Param("itemId"), worldItemInput(req))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"worldItem": item})
}

func (h *BookHandler) DeleteWorldItem(c echo.Context) error {
	if err := h.books.DeleteWorldItem(c.Request().Context(), CurrentUserID(c), c.Param("id"), c.Param("itemId")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func characterInput(req characterRequest) services.CharacterInput {
	return services.CharacterInput{
		Name:        req.Name,
		Role:        req.Role,
		Archetype:   req.Archetype,
		Description: req.Description,
		Motivation:  req.Motivation,
		Flaw:        req.Flaw,
		Traits:      req.Traits,
		Color:       req.Color,
	}
}

func worldItemInput(req worldItemRequest) services.WorldItemInput {
	return services.WorldItemInput{
		Name:        req.Name,
		Category:    entities.WorldCategory(req.Category),
		Description: req.Description,
	}
}
