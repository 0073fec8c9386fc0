package entities

import (
	"time"

	"github.com/google/uuid"
)

type Sitemap struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"userId" gorm:"uniqueIndex;size:36;not null"`
	BaseURL   string    `json:"baseUrl" gorm:"size:1024"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Links []SitemapLink `json:"links" gorm:"constraint:OnDelete:CASCADE"`
}

type SitemapLink struct {
	ID           string     `json:"id" gorm:"primaryKey;size:36"`
	SitemapID    string     `json:"sitemapId" gorm:"index;size:36;not null"`
	URL          string     `json:"url" gorm:"size:2048;not null"`
	Text         string     `json:"text" gorm:"size:512"`
	LastModified *time.Time `json:"lastModified,omitempty"`
	Position     int        `json:"position" gorm:"not null"`
}

func NewSitemap(userID, baseURL string) *Sitemap {
	return &Sitemap{
		ID:      uuid.NewString(),
		UserID:  userID,
		BaseURL: baseURL,
	}
}

func NewSitemapLink(sitemapID, url, text string, position int) SitemapLink {
	return SitemapLink{
		ID:        uuid.NewString(),
		SitemapID: sitemapID,
		URL:       url,
		Text:      text,
		Position:  position,
	}
}
