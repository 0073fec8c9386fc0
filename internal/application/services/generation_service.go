package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/repositories"
)

// GenerationService runs the credit-gated flow around every provider call:
//
//	authorize -> validate -> charge -> generate -> persist or refund
//
// The charge is applied atomically before the provider call so concurrent
// requests cannot spend the same balance twice. Every failure after the
// charge attempts exactly one compensating refund; a failed refund is logged
// and not retried.
type GenerationService struct {
	profiles   repositories.ProfileRepository
	articles   repositories.ArticleRepository
	books      repositories.BookRepository
	chapters   repositories.ChapterRepository
	characters repositories.CharacterRepository
	worldItems repositories.WorldItemRepository
	sitemaps   repositories.SitemapRepository
	generator  TextGenerator
	log        *zap.Logger
}

func NewGenerationService(
	profiles repositories.ProfileRepository,
	articles repositories.ArticleRepository,
	books repositories.BookRepository,
	chapters repositories.ChapterRepository,
	characters repositories.CharacterRepository,
	worldItems repositories.WorldItemRepository,
	sitemaps repositories.SitemapRepository,
	generator TextGenerator,
	log *zap.Logger,
) *GenerationService {
	return &GenerationService{
		profiles:   profiles,
		articles:   articles,
		books:      books,
		chapters:   chapters,
		characters: characters,
		worldItems: worldItems,
		sitemaps:   sitemaps,
		generator:  generator,
		log:        log,
	}
}

// refund is the single compensating step of the saga.
func (s *GenerationService) refund(ctx context.Context, userID string, amount int) {
	if _, err := s.profiles.Credit(ctx, userID, amount); err != nil {
		s.log.Error("refund failed",
			zap.String("user_id", userID),
			zap.Int("amount", amount),
			zap.Error(err))
	}
}

// --- Article generation (streaming) ---

type ArticleRequest struct {
	Keyword            string
	SectionCount       int
	MinWordsPerSection int
	IncludeFaq         bool
	Tone               string
	Language           string
}

type ArticleResult struct {
	Article    *entities.Article
	NewCredits int
}

func (r *ArticleRequest) applyDefaults() {
	if r.SectionCount <= 0 {
		r.SectionCount = 5
	}
	if r.MinWordsPerSection <= 0 {
		r.MinWordsPerSection = 150
	}
	if r.Tone == "" {
		r.Tone = "Conversational"
	}
	if r.Language == "" {
		r.Language = "English"
	}
}

// GenerateArticle streams generated markdown through onChunk while
// accumulating it, then persists the full text as a Draft article. Internal
// link candidates come from the caller's sitemap when one exists.
func (s *GenerationService) GenerateArticle(ctx context.Context, userID string, req ArticleRequest, onChunk func(string) error) (*ArticleResult, error) {
	if strings.TrimSpace(req.Keyword) == "" {
		return nil, entities.ErrInvalidRequest
	}
	req.applyDefaults()

	sitemap, err := s.sitemaps.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, entities.ErrNotFound) {
		return nil, err
	}
	prompt := buildArticlePrompt(req, sitemap)

	cost := entities.CostArticleGeneration
	newCredits, err := s.profiles.Debit(ctx, userID, cost)
	if err != nil {
		return nil, err
	}

	full, err := s.generator.GenerateStream(ctx, prompt, onChunk)
	if err != nil {
		// Provider failure or client disconnect: either way nothing usable
		// was delivered, so the charge comes back.
		s.refund(ctx, userID, cost)
		if errors.Is(err, entities.ErrGenerationFailed) || errors.Is(err, entities.ErrNotConfigured) {
			return nil, err
		}
		return nil, entities.GenerationError(err)
	}
	if strings.TrimSpace(full) == "" {
		s.refund(ctx, userID, cost)
		return nil, entities.GenerationError(errors.New("provider returned no text, you have not been charged"))
	}

	article := entities.NewArticle(userID, req.Keyword, full)
	if err := s.articles.Create(ctx, article); err != nil {
		s.refund(ctx, userID, cost)
		return nil, err
	}

	return &ArticleResult{Article: article, NewCredits: newCredits}, nil
}

// --- Block refinement (single-shot) ---

type RefineRequest struct {
	Prompt           string
	Content          string
	Context          string
	PreviousContext  string
	NextContext      string
	CharacterContext string
}

type RefineResult struct {
	RefinedText string
	Credits     int
}

func (s *GenerationService) RefineBlock(ctx context.Context, userID string, req RefineRequest) (*RefineResult, error) {
	if strings.TrimSpace(req.Prompt) == "" || req.Content == "" {
		return nil, entities.ErrInvalidRequest
	}

	cost := entities.CostBlockRefinement
	newCredits, err := s.profiles.Debit(ctx, userID, cost)
	if err != nil {
		return nil, err
	}

	refined, err := s.generator.Generate(ctx, buildRefinePrompt(req))
	if err != nil {
		s.refund(ctx, userID, cost)
		return nil, err
	}
	if strings.TrimSpace(refined) == "" {
		s.refund(ctx, userID, cost)
		return nil, entities.GenerationError(errors.New("provider returned no text, you have not been charged"))
	}

	return &RefineResult{RefinedText: strings.TrimSpace(refined), Credits: newCredits}, nil
}

// --- Chapter content generation and polish ---

type ChapterGenerateRequest struct {
	IncludeCharacters      []string
	IncludeWorldItems      []string
	IncludePreviousChapter bool
	IncludeNextChapter     bool
}

type ChapterResult struct {
	Chapter    *entities.Chapter
	NewCredits int
}

func (s *GenerationService) ownedChapter(ctx context.Context, userID, bookID, chapterID string) (*entities.Book, *entities.Chapter, error) {
	book, err := s.books.FindByID(ctx, bookID)
	if err != nil {
		return nil, nil, err
	}
	if book.UserID != userID {
		return nil, nil, entities.ErrForbidden
	}
	chapter, err := s.chapters.FindByID(ctx, chapterID)
	if err != nil {
		return nil, nil, err
	}
	if chapter.BookID != bookID {
		return nil, nil, entities.ErrNotFound
	}
	return book, chapter, nil
}

func (s *GenerationService) GenerateChapterContent(ctx context.Context, userID, bookID, chapterID string, req ChapterGenerateRequest) (*ChapterResult, error) {
	book, chapter, err := s.ownedChapter(ctx, userID, bookID, chapterID)
	if err != nil {
		return nil, err
	}

	characters, err := s.characters.ListByIDs(ctx, bookID, req.IncludeCharacters)
	if err != nil {
		return nil, err
	}
	items, err := s.worldItems.ListByIDs(ctx, bookID, req.IncludeWorldItems)
	if err != nil {
		return nil, err
	}

	var prev, next *entities.Chapter
	if req.IncludePreviousChapter {
		prev, err = s.chapters.Previous(ctx, bookID, chapter.Order)
		if err != nil && !errors.Is(err, entities.ErrNotFound) {
			return nil, err
		}
	}
	if req.IncludeNextChapter {
		next, err = s.chapters.Next(ctx, bookID, chapter.Order)
		if err != nil && !errors.Is(err, entities.ErrNotFound) {
			return nil, err
		}
	}

	prompt := buildChapterPrompt(buildChapterContext(book, chapter, characters, items, prev, next), chapter)

	cost := entities.CostChapterGeneration
	newCredits, err := s.profiles.Debit(ctx, userID, cost)
	if err != nil {
		return nil, err
	}

	content, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.refund(ctx, userID, cost)
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		s.refund(ctx, userID, cost)
		return nil, entities.GenerationError(errors.New("provider returned no text, you have not been charged"))
	}

	chapter.Content = content
	chapter.ActualWordCount = entities.CountWords(content)
	if err := s.chapters.Save(ctx, chapter); err != nil {
		s.refund(ctx, userID, cost)
		return nil, err
	}

	return &ChapterResult{Chapter: chapter, NewCredits: newCredits}, nil
}

func (s *GenerationService) PolishChapter(ctx context.Context, userID, bookID, chapterID string) (*ChapterResult, error) {
	_, chapter, err := s.ownedChapter(ctx, userID, bookID, chapterID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(chapter.Content) == "" {
		return nil, fmt.Errorf("chapter is empty: %w", entities.ErrInvalidRequest)
	}

	cost := entities.CostChapterPolish
	newCredits, err := s.profiles.Debit(ctx, userID, cost)
	if err != nil {
		return nil, err
	}

	polished, err := s.generator.Generate(ctx, buildPolishPrompt(chapter.Content))
	if err != nil {
		s.refund(ctx, userID, cost)
		return nil, err
	}
	polished = strings.TrimSpace(polished)
	if polished == "" {
		s.refund(ctx, userID, cost)
		return nil, entities.GenerationError(errors.New("provider returned no text, you have not been charged"))
	}

	chapter.Content = polished
	chapter.ActualWordCount = entities.CountWords(polished)
	if err := s.chapters.Save(ctx, chapter); err != nil {
		s.refund(ctx, userID, cost)
		return nil, err
	}

	return &ChapterResult{Chapter: chapter, NewCredits: newCredits}, nil
}

// --- Chapter outline generation ---

type OutlineRequest struct {
	ChapterCount     int
	AverageWordCount int
}

type chapterOutline struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// GenerateChapterOutlines asks the provider for a JSON array of outlines and
// appends them as empty chapters after the book's current last chapter.
// Outline generation is uncharged.
func (s *GenerationService) GenerateChapterOutlines(ctx context.Context, userID, bookID string, req OutlineRequest) ([]entities.Chapter, error) {
	book, err := s.books.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book.UserID != userID {
		return nil, entities.ErrForbidden
	}
	if req.ChapterCount < 1 || req.ChapterCount > 50 {
		return nil, fmt.Errorf("chapter count must be between 1 and 50: %w", entities.ErrInvalidRequest)
	}

	raw, err := s.generator.Generate(ctx, buildOutlinePrompt(book, req.ChapterCount))
	if err != nil {
		return nil, err
	}

	outlines, err := parseOutlines(raw)
	if err != nil {
		return nil, err
	}

	maxOrder, err := s.chapters.MaxOrder(ctx, bookID)
	if err != nil {
		return nil, err
	}

	target := req.AverageWordCount
	if target <= 0 {
		target = 1000
	}

	chapters := make([]entities.Chapter, 0, len(outlines))
	for i, outline := range outlines {
		chapters = append(chapters, entities.Chapter{
			ID:              uuid.NewString(),
			BookID:          bookID,
			Title:           outline.Title,
			Summary:         outline.Summary,
			Order:           maxOrder + 1 + i,
			TargetWordCount: target,
		})
	}
	if err := s.chapters.CreateBatch(ctx, chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

// parseOutlines tolerates providers that wrap the JSON in markdown fences.
func parseOutlines(raw string) ([]chapterOutline, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```JSON")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var outlines []chapterOutline
	if err := json.Unmarshal([]byte(text), &outlines); err != nil {
		return nil, entities.GenerationError(fmt.Errorf("invalid JSON outline: %v", err))
	}
	if len(outlines) == 0 {
		return nil, entities.GenerationError(errors.New("empty outline"))
	}
	return outlines, nil
}
