package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   \n\t  "))
	assert.Equal(t, 5, CountWords("the quick  brown\nfox jumps"))
}

func TestNewBookDefaults(t *testing.T) {
	book := NewBook("user-1", "", "", "a summary")
	assert.Equal(t, "Untitled Book", book.Title)
	assert.Equal(t, "General", book.Genre)
	assert.Equal(t, "a summary", book.Summary)
}

func TestValidWorldCategory(t *testing.T) {
	for _, c := range []WorldCategory{
		WorldCategoryLocation, WorldCategoryLore, WorldCategoryMagic,
		WorldCategoryTech, WorldCategoryFaction,
	} {
		assert.True(t, ValidWorldCategory(c))
	}
	assert.False(t, ValidWorldCategory("Weather"))
	assert.False(t, ValidWorldCategory(""))
}
