package repositories

import (
	"context"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

type BookRepository interface {
	Create(ctx context.Context, book *entities.Book) error
	// FindByID loads the book without children; FindByIDFull preloads
	// chapters (ordered), characters and world items.
	FindByID(ctx context.Context, id string) (*entities.Book, error)
	FindByIDFull(ctx context.Context, id string) (*entities.Book, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Book, error)
	Save(ctx context.Context, book *entities.Book) error
	// Delete cascades to chapters, characters and world items.
	Delete(ctx context.Context, id string) error
}

type ChapterRepository interface {
	Create(ctx context.Context, chapter *entities.Chapter) error
	CreateBatch(ctx context.Context, chapters []entities.Chapter) error
	FindByID(ctx context.Context, id string) (*entities.Chapter, error)
	ListByBook(ctx context.Context, bookID string) ([]entities.Chapter, error)
	// MaxOrder returns 0 for a book with no chapters.
	MaxOrder(ctx context.Context, bookID string) (int, error)
	// Previous and Next return the nearest chapter by order, or ErrNotFound.
	Previous(ctx context.Context, bookID string, order int) (*entities.Chapter, error)
	Next(ctx context.Context, bookID string, order int) (*entities.Chapter, error)
	Save(ctx context.Context, chapter *entities.Chapter) error
	Delete(ctx context.Context, id string) error
}

type CharacterRepository interface {
	Create(ctx context.Context, character *entities.Character) error
	FindByID(ctx context.Context, id string) (*entities.Character, error)
	ListByBook(ctx context.Context, bookID string) ([]entities.Character, error)
	ListByIDs(ctx context.Context, bookID string, ids []string) ([]entities.Character, error)
	Save(ctx context.Context, character *entities.Character) error
	Delete(ctx context.Context, id string) error
}

type WorldItemRepository interface {
	Create(ctx context.Context, item *entities.WorldItem) error
	FindByID(ctx context.Context, id string) (*entities.WorldItem, error)
	ListByBook(ctx context.Context, bookID string) ([]entities.WorldItem, error)
	ListByIDs(ctx context.Context, bookID string, ids []string) ([]entities.WorldItem, error)
	Save(ctx context.Context, item *entities.WorldItem) error
	Delete(ctx context.Context, id string) error
}
