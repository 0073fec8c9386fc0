package repositories

import (
	"context"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *entities.Article) error
	FindByID(ctx context.Context, id string) (*entities.Article, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Article, error)
	Save(ctx context.Context, article *entities.Article) error
	Delete(ctx context.Context, id string) error
}

type SitemapRepository interface {
	// FindByUserID returns entities.ErrNotFound when the user has no sitemap.
	FindByUserID(ctx context.Context, userID string) (*entities.Sitemap, error)
	// Create returns entities.ErrConflict when the user already has one.
	Create(ctx context.Context, sitemap *entities.Sitemap) error
	// Replace swaps the sitemap's base URL and full link list.
	Replace(ctx context.Context, sitemap *entities.Sitemap) error
	Delete(ctx context.Context, id string) error
}

// PaymentRepository applies webhook credit grants exactly once.
type PaymentRepository interface {
	// GrantCheckoutCredits records eventID and increments the user's balance
	// in one transaction. A redelivered event is acknowledged with
	// granted=false and no balance change.
	GrantCheckoutCredits(ctx context.Context, eventID, eventType, userID string, credits int) (granted bool, err error)
}
