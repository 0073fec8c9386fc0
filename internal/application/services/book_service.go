package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/repositories"
)

// BookService owns books and their children. Every child operation checks
// ownership transitively through the owning book: a missing book is NotFound,
// a foreign one is Forbidden, and the same policy applies everywhere.
type BookService struct {
	books      repositories.BookRepository
	chapters   repositories.ChapterRepository
	characters repositories.CharacterRepository
	worldItems repositories.WorldItemRepository
}

func NewBookService(
	books repositories.BookRepository,
	chapters repositories.ChapterRepository,
	characters repositories.CharacterRepository,
	worldItems repositories.WorldItemRepository,
) *BookService {
	return &BookService{
		books:      books,
		chapters:   chapters,
		characters: characters,
		worldItems: worldItems,
	}
}

// ownedBook loads the book without children and enforces ownership.
func (s *BookService) ownedBook(ctx context.Context, userID, bookID string) (*entities.Book, error) {
	book, err := s.books.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book.UserID != userID {
		return nil, entities.ErrForbidden
	}
	return book, nil
}

// --- Books ---

type CreateBookInput struct {
	Title           string
	Genre           string
	Summary         string
	StoryArc        string
	Tone            string
	Setting         string
	TargetWordCount int
}

type UpdateBookInput struct {
	Title           *string
	Genre           *string
	Summary         *string
	StoryArc        *string
	Tone            *string
	Setting         *string
	TargetWordCount *int
}

func (s *BookService) List(ctx context.Context, userID string) ([]entities.Book, error) {
	return s.books.ListByUser(ctx, userID)
}

func (s *BookService) Get(ctx context.Context, userID, bookID string) (*entities.Book, error) {
	if _, err := s.ownedBook(ctx, userID, bookID); err != nil {
		return nil, err
	}
	return s.books.FindByIDFull(ctx, bookID)
}

func (s *BookService) Create(ctx context.Context, userID string, input CreateBookInput) (*entities.Book, error) {
	book := entities.NewBook(userID, input.Title, input.Genre, input.Summary)
	book.StoryArc = input.StoryArc
	book.Tone = input.Tone
	book.Setting = input.Setting
	book.TargetWordCount = input.TargetWordCount

	if err := s.books.Create(ctx, book); err != nil {
		return nil, err
	}
	book.Chapters = []entities.Chapter{}
	book.Characters = []entities.Character{}
	book.WorldItems = []entities.WorldItem{}
	return book, nil
}

func (s *BookService) Update(ctx context.Context, userID, bookID string, input UpdateBookInput) (*entities.Book, error) {
	book, err := s.ownedBook(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Genre != nil {
		book.Genre = *input.Genre
	}
	if input.Summary != nil {
		book.Summary = *input.Summary
	}
	if input.StoryArc != nil {
		book.StoryArc = *input.StoryArc
	}
	if input.Tone != nil {
		book.Tone = *input.Tone
	}
	if input.Setting != nil {
		book.Setting = *input.Setting
	}
	if input.TargetWordCount != nil {
		book.TargetWordCount = *input.TargetWordCount
	}

	if err := s.books.Save(ctx, book); err != nil {
		return nil, err
	}
	return s.books.FindByIDFull(ctx, bookID)
}

func (s *BookService) Delete(ctx context.Context, userID, bookID string) error {
	if _, err := s.ownedBook(ctx, userID, bookID); err != nil {
		return err
	}
	return s.books.Delete(ctx, bookID)
}

// --- Chapters ---

type CreateChapterInput struct {
	Title           string
	Content         string
	Summary         string
	Order           *int
	TargetWordCount *int
}

type UpdateChapterInput struct {
	Title           *string
	Content         *string
	Summary         *string
	Order           *int
	TargetWordCount *int
}

func (s *BookService) ListChapters(ctx context.Context, userID, bookID string) ([]entities.Chapter, error) {
	if _, err := s.ownedBook(ctx, userID, bookID); err != nil {
		return nil, err
	}
	return s.chapters.ListByBook(ctx, bookID)
}

func (s *BookService) CreateChapter(ctx context.Context, userID, bookID string, input CreateChapterInput) (*entities.Chapter, error) {
	if _, err := s.ownedBook(ctx, userID, bookID); err != nil {
		return nil, err
	}

	order := 0
	if input.Order != nil {
		order = *input.Order
	} else {
		max, err := s.chapters.MaxOrder(ctx, bookID)
		if err != nil {
			return nil, err
		}
		order = max + 1
	}

	target := 1000
	if input.TargetWordCount != nil {
		target = *input.TargetWordCount
	}

	title := input.Title
	if title == "" {
		title = "New Chapter"
	}

	chapter := &entities.Chapter{
		ID:              uuid.NewString(),
		BookID:          bookID,
		Title:           title,
		Order:           order,
		Summary:         input.Summary,
		Content:         input.Content,
		TargetWordCount: target,
		ActualWordCount: entities.CountWords(input.Content),
	}
	if err := s.chapters.Create(ctx, chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

// ownedChapter enforces the ownership chain chapter -> book -> user.
func (s *BookService) ownedChapter(ctx context.Context, userID, bookID, chapterID string) (*entities.Chapter, error) {
	if _, err := s.ownedBook(ctx, userID, bookID); err != nil {
		return nil, err
	}
	chapter, err := s.chapters.FindByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	if chapter.BookID != bookID {
		return nil, entities.ErrNotFound
	}
	return chapter, nil
}

func (s *BookService) UpdateChapter(ctx context.Context, userID, bookID, chapterID string, input UpdateChapterInput) (*entities.Chapter, error) {
	chapter, err := s.ownedChapter(ctx, userID, bookID, chapterID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		chapter.Title = *input.Title
	}
	if input.Content != nil {
		chapter.Content = *input.Content
		chapter.ActualWordCount = entities.CountWords(*input.Content)
	}
	if input.Summary != nil {
		chapter.Summary = *input.Summary
	}
	if input.Order != nil {
		chapter.Order = *input.Order
	}
	if input.TargetWordCount != nil {
		chapter.TargetWordCount = *input.TargetWordCount
	}

	if err := s.chapters.Save(ctx, chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *BookService) DeleteChapter(ctx context.Context, userID, bookID, chapterID string) error {
	if _, err := s.ownedChapter(ctx, userID, bookID, chapterID); err != nil {
		return err
	}
	return s.chapters.Delete(ctx, chapterID)
}

// --- Characters ---

type CharacterInput struct {
	Name        string
	Role        string
	Archetype   string
	Description string
	Motivation  string
	Flaw        string
	Traits      []string
	Color       string
}

func (s *BookService) ListCharacters(ctx context.Context, userID, bookID string) ([]entities.Character, error) {
	if _, err := s.ownedBook(ctx, userID, bookID); err != nil {
		return nil, err
	}
	return s.characters.ListByBook(ctx, bookID)
}

func (s *BookService) CreateCharacter(ctx context.Context, userID, bookID string, input CharacterInput) (*entities.Character, error) {
	if _, err := s.ownedBook(ctx, userID, bookID); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, entities.ErrInvalidRequest
	}

	character := &entities.Character{
		ID:          uuid.NewString(),
		BookID:      bookID,
		Name:        input.Name,
		Role:        input.Role,
		Archetype:   input.Archetype,
		Description: input.Description,
		Motivation:  input.Motivation,
		Flaw:        input.Flaw,
		Traits:      input.Traits,
		Color:       input.Color,
	}
	if err := s.characters.Create(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

func (s *BookService) UpdateCharacter(ctx context.Context, userID, bookID, characterID string, input CharacterInput) (*entities.Character, error) {
	if _, err := s.ownedBook(ctx, userID, bookID); err != nil {
		return nil, err
	}
	character, err := s.characters.FindByID(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if character.BookID != bookID {
		return nil, entities.ErrNotFound
	}

	if input.Name != "" {
		character.Name = input.Name
	}
	character.Role = input.Role
	character.Archetype = input.Archetype
	character.Description = input.Description
	character.Motivation = input.Motivation
	character.Flaw = input.Flaw
	if input.Traits != nil {
		character.Traits = input.Traits
	}
	if input.Color != "" {
		character.Color = input.Color
	}

	if err := s.characters.Save(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

func (s *BookService) DeleteCharacter(ctx context.Context, userID, bookID, characterID string) error {
	if _, err := s.ownedBook(ctx, userID, bookID); err != nil {
		return err
	}
	character, err := s.characters.FindByID(ctx, characterID)
	if err != nil {
		return err
	}
	if character.BookID != bookID {
		return entities.ErrNotFound
	}
	return s.characters.Delete(ctx, characterID)
}

// --- World items ---

type WorldItemInput struct {
	Name        string
	Category    entities.WorldCategory
	Description string
}

func (s *BookService) ListWorldItems(ctx context.Context, userID, bookID string) ([]entities.WorldItem, error) {
	if _, err := s.ownedBook(ctx, userID, bookID); err != nil {
		return nil, err
	}
	return s.worldItems.ListByBook(ctx, bookID)
}

func (s *BookService) CreateWorldItem(ctx context.Context, userID, bookID string, input WorldItemInput) (*entities.WorldItem, error) {
	if _, err := s.ownedBook(ctx, userID, bookID); err != nil {
		return nil, err
	}
	if input.Name == "" || !entities.ValidWorldCategory(input.Category) {
		return nil, entities.ErrInvalidRequest
	}

	item := &entities.WorldItem{
		ID:          uuid.NewString(),
		BookID:      bookID,
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
	}
	if err := s.worldItems.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *BookService) UpdateWorldItem(ctx context.Context, userID, bookID, itemID string, input WorldItemInput) (*entities.WorldItem, error) {
	if _, err := s.ownedBook(ctx, userID, bookID); err != nil {
		return nil, err
	}
	item, err := s.worldItems.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.BookID != bookID {
		return nil, entities.ErrNotFound
	}

	if input.Name != "" {
		item.Name = input.Name
	}
	if input.Category != "" {
		if !entities.ValidWorldCategory(input.Category) {
			return nil, entities.ErrInvalidRequest
		}
		item.Category = input.Category
	}
	item.Description = input.Description

	if err := s.worldItems.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *BookService) DeleteWorldItem(ctx context.Context, userID, bookID, itemID string) error {
	if _, err := s.ownedBook(ctx, userID, bookID); err != nil {
		return err
	}
	item, err := s.worldItems.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.BookID != bookID {
		return entities.ErrNotFound
	}
	return s.worldItems.Delete(ctx, itemID)
}
