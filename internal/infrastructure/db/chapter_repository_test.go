package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

func seedBookWithChapters(t *testing.T, gdb *gorm.DB, userID string, orders []int) *entities.Book {
	t.Helper()
	ctx := context.Background()
	book := entities.NewBook(userID, "Saga", "Fantasy", "")
	require.NoError(t, NewBookRepository(gdb).Create(ctx, book))

	chapters := NewChapterRepository(gdb)
	for _, order := range orders {
		require.NoError(t, chapters.Create(ctx, &entities.Chapter{
			ID:     uuid.NewString(),
			BookID: book.ID,
			Title:  "Chapter",
			Order:  order,
		}))
	}
	return book
}

func TestChapterMaxOrder(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, gdb, 50)
	repo := NewChapterRepository(gdb)

	book := seedBookWithChapters(t, gdb, user.ID, nil)
	max, err := repo.MaxOrder(ctx, book.ID)
	require.NoError(t, err)
	assert.Zero(t, max)

	book2 := seedBookWithChapters(t, gdb, user.ID, []int{1, 2, 3})
	max, err = repo.MaxOrder(ctx, book2.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, max)
}

func TestChapterListOrdering(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, gdb, 50)
	repo := NewChapterRepository(gdb)

	book := seedBookWithChapters(t, gdb, user.ID, []int{3, 1, 2})
	chapters, err := repo.ListByBook(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, chapters, 3)
	assert.Equal(t, 1, chapters[0].Order)
	assert.Equal(t, 2, chapters[1].Order)
	assert.Equal(t, 3, chapters[2].Order)
}

func TestChapterPreviousNext(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, gdb, 50)
	repo := NewChapterRepository(gdb)

	book := seedBookWithChapters(t, gdb, user.ID, []int{1, 2, 3})

	prev, err := repo.Previous(ctx, book.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, prev.Order)

	next, err := repo.Next(ctx, book.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, next.Order)

	_, err = repo.Previous(ctx, book.ID, 1)
	assert.ErrorIs(t, err, entities.ErrNotFound)
	_, err = repo.Next(ctx, book.ID, 3)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestBookDeleteCascades(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, gdb, 50)

	book := seedBookWithChapters(t, gdb, user.ID, []int{1, 2})
	require.NoError(t, NewBookRepository(gdb).Delete(ctx, book.ID))

	chapters, err := NewChapterRepository(gdb).ListByBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, chapters)
}
