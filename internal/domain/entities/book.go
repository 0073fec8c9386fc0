package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Book struct {
	ID              string    `json:"id" gorm:"primaryKey;size:36"`
	UserID          string    `json:"userId" gorm:"index;size:36;not null"`
	Title           string    `json:"title" gorm:"size:512;not null"`
	Genre           string    `json:"genre" gorm:"size:128"`
	Summary         string    `json:"summary" gorm:"type:text"`
	StoryArc        string    `json:"storyArc" gorm:"type:text"`
	Tone            string    `json:"tone" gorm:"size:128"`
	Setting         string    `json:"setting" gorm:"type:text"`
	TargetWordCount int       `json:"targetWordCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	Chapters   []Chapter   `json:"chapters" gorm:"constraint:OnDelete:CASCADE"`
	Characters []Character `json:"characters" gorm:"constraint:OnDelete:CASCADE"`
	WorldItems []WorldItem `json:"worldBible" gorm:"constraint:OnDelete:CASCADE"`
}

type Chapter struct {
	ID              string    `json:"id" gorm:"primaryKey;size:36"`
	BookID          string    `json:"bookId" gorm:"index;size:36;not null"`
	Title           string    `json:"title" gorm:"size:512;not null"`
	Order           int       `json:"order" gorm:"column:sort_order;not null"`
	Summary         string    `json:"summary" gorm:"type:text"`
	Content         string    `json:"content" gorm:"type:text"`
	TargetWordCount int       `json:"targetWordCount"`
	ActualWordCount int       `json:"actualWordCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Character struct {
	ID          string                      `json:"id" gorm:"primaryKey;size:36"`
	BookID      string                      `json:"bookId" gorm:"index;size:36;not null"`
	Name        string                      `json:"name" gorm:"size:255;not null"`
	Role        string                      `json:"role" gorm:"size:128"`
	Archetype   string                      `json:"archetype" gorm:"size:128"`
	Description string                      `json:"description" gorm:"type:text"`
	Motivation  string                      `json:"motivation" gorm:"type:text"`
	Flaw        string                      `json:"flaw" gorm:"type:text"`
	Traits      datatypes.JSONSlice[string] `json:"traits"`
	Color       string                      `json:"color" gorm:"size:32"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

type WorldCategory string

const (
	WorldCategoryLocation WorldCategory = "Location"
	WorldCategoryLore     WorldCategory = "Lore"
	WorldCategoryMagic    WorldCategory = "Magic"
	WorldCategoryTech     WorldCategory = "Tech"
	WorldCategoryFaction  WorldCategory = "Faction"
)

// ValidWorldCategory reports whether c is one of the fixed categories.
func ValidWorldCategory(c WorldCategory) bool {
	switch c {
	case WorldCategoryLocation, WorldCategoryLore, WorldCategoryMagic,
		WorldCategoryTech, WorldCategoryFaction:
		return true
	}
	return false
}

type WorldItem struct {
	ID          string        `json:"id" gorm:"primaryKey;size:36"`
	BookID      string        `json:"bookId" gorm:"index;size:36;not null"`
	Name        string        `json:"name" gorm:"size:255;not null"`
	Category    WorldCategory `json:"category" gorm:"size:32;not null"`
	Description string        `json:"description" gorm:"type:text"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func NewBook(userID, title, genre, summary string) *Book {
	if title == "" {
		title = "Untitled Book"
	}
	if genre == "" {
		genre = "General"
	}
	return &Book{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   title,
		Genre:   genre,
		Summary: summary,
	}
}

// CountWords tokenizes on whitespace, the same metric the editor shows.
func CountWords(content string) int {
	return len(strings.Fields(content))
}
