package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/infrastructure/db"
)

func newBookService(t *testing.T) *BookService {
	t.Helper()
	gdb := newServiceDB(t)
	return NewBookService(
		db.NewBookRepository(gdb),
		db.NewChapterRepository(gdb),
		db.NewCharacterRepository(gdb),
		db.NewWorldItemRepository(gdb),
	)
}

func TestBookOwnershipMatrix(t *testing.T) {
	svc := newBookService(t)
	ctx := context.Background()

	book, err := svc.Create(ctx, "owner", CreateBookInput{Title: "Mine"})
	require.NoError(t, err)

	// Missing rows read as not found for everyone.
	_, err = svc.Get(ctx, "owner", "missing")
	assert.ErrorIs(t, err, entities.ErrNotFound)

	// Existing rows owned by someone else read as forbidden.
	_, err = svc.Get(ctx, "intruder", book.ID)
	assert.ErrorIs(t, err, entities.ErrForbidden)
	err = svc.Delete(ctx, "intruder", book.ID)
	assert.ErrorIs(t, err, entities.ErrForbidden)
	_, err = svc.Update(ctx, "intruder", book.ID, UpdateBookInput{})
	assert.ErrorIs(t, err, entities.ErrForbidden)

	got, err := svc.Get(ctx, "owner", book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Title)
}

func TestCreateChapterAppendsOrder(t *testing.T) {
	svc := newBookService(t)
	ctx := context.Background()

	book, err := svc.Create(ctx, "owner", CreateBookInput{Title: "Saga"})
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		order := i
		_, err := svc.CreateChapter(ctx, "owner", book.ID, CreateChapterInput{Title: "Ch", Order: &order})
		require.NoError(t, err)
	}

	// Omitting the order appends after the current last chapter.
	chapter, err := svc.CreateChapter(ctx, "owner", book.ID, CreateChapterInput{})
	require.NoError(t, err)
	assert.Equal(t, 4, chapter.Order)
	assert.Equal(t, "New Chapter", chapter.Title)
	assert.Equal(t, 1000, chapter.TargetWordCount)
}

func TestChapterBelongsToBook(t *testing.T) {
	svc := newBookService(t)
	ctx := context.Background()

	bookA, err := svc.Create(ctx, "owner", CreateBookInput{Title: "A"})
	require.NoError(t, err)
	bookB, err := svc.Create(ctx, "owner", CreateBookInput{Title: "B"})
	require.NoError(t, err)

	chapter, err := svc.CreateChapter(ctx, "owner", bookA.ID, CreateChapterInput{Title: "One"})
	require.NoError(t, err)

	// Reaching a chapter through the wrong book is a not found, the chapter
	// does not exist under that book.
	_, err = svc.UpdateChapter(ctx, "owner", bookB.ID, chapter.ID, UpdateChapterInput{})
	assert.ErrorIs(t, err, entities.ErrNotFound)
	err = svc.DeleteChapter(ctx, "owner", bookB.ID, chapter.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestUpdateChapterRecountsWords(t *testing.T) {
	svc := newBookService(t)
	ctx := context.Background()

	book, err := svc.Create(ctx, "owner", CreateBookInput{Title: "Saga"})
	require.NoError(t, err)
	chapter, err := svc.CreateChapter(ctx, "owner", book.ID, CreateChapterInput{Title: "One"})
	require.NoError(t, err)

	content := "five little words right here"
	updated, err := svc.UpdateChapter(ctx, "owner", book.ID, chapter.ID, UpdateChapterInput{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.ActualWordCount)
}

func TestWorldItemCategoryValidation(t *testing.T) {
	svc := newBookService(t)
	ctx := context.Background()

	book, err := svc.Create(ctx, "owner", CreateBookInput{Title: "Saga"})
	require.NoError(t, err)

	_, err = svc.CreateWorldItem(ctx, "owner", book.ID, WorldItemInput{Name: "Storm", Category: "Weather"})
	assert.ErrorIs(t, err, entities.ErrInvalidRequest)

	item, err := svc.CreateWorldItem(ctx, "owner", book.ID, WorldItemInput{Name: "The Citadel", Category: entities.WorldCategoryLocation})
	require.NoError(t, err)
	assert.Equal(t, entities.WorldCategoryLocation, item.Category)
}

func TestCharacterRequiresName(t *testing.T) {
	svc := newBookService(t)
	ctx := context.Background()

	book, err := svc.Create(ctx, "owner", CreateBookInput{Title: "Saga"})
	require.NoError(t, err)

	_, err = svc.CreateCharacter(ctx, "owner", book.ID, CharacterInput{})
	assert.ErrorIs(t, err, entities.ErrInvalidRequest)

	character, err := svc.CreateCharacter(ctx, "owner", book.ID, CharacterInput{
		Name:   "Mara",
		Role:   "Protagonist",
		Traits: []string{"stubborn", "loyal"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"stubborn", "loyal"}, []string(character.Traits))
}
