package entities

import (
	"time"

	"github.com/google/uuid"
)

type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "Draft"
	ArticleStatusPublished ArticleStatus = "Published"
)

const snippetLength = 100

type Article struct {
	ID        string        `json:"id" gorm:"primaryKey;size:36"`
	UserID    string        `json:"userId" gorm:"index;size:36;not null"`
	Title     string        `json:"title" gorm:"size:512;not null"`
	Content   string        `json:"content" gorm:"type:text"`
	Snippet   string        `json:"snippet" gorm:"size:512"`
	Status    ArticleStatus `json:"status" gorm:"size:32;not null;default:'Draft'"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func NewArticle(userID, title, content string) *Article {
	if title == "" {
		title = "Untitled Article"
	}
	return &Article{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   title,
		Content: content,
		Snippet: MakeSnippet(content),
		Status:  ArticleStatusDraft,
	}
}

// MakeSnippet derives the stored preview from article content.
func MakeSnippet(content string) string {
	runes := []rune(content)
	if len(runes) <= snippetLength {
		return content
	}
	return string(runes[:snippetLength]) + "..."
}
