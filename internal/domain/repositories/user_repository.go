package repositories

import (
	"context"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

// UserRepository persists users and their profiles. Lookups return
// entities.ErrNotFound when no row matches.
type UserRepository interface {
	// Create inserts the user and its profile in one transaction.
	// Returns entities.ErrConflict when the email is already registered.
	Create(ctx context.Context, user *entities.User, profile *entities.Profile) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}

// ProfileRepository is the balance primitive. Debit and Credit must be
// atomic at the storage level; callers never do read-then-write on credits.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*entities.Profile, error)
	UpdateKeywords(ctx context.Context, userID string, keywords []string) (*entities.Profile, error)

	// Debit subtracts amount (> 0) and returns the new balance. Fails with
	// entities.ErrInsufficientCredits when the balance would go negative and
	// entities.ErrNotFound when the profile row is missing.
	Debit(ctx context.Context, userID string, amount int) (int, error)
	// Credit adds amount (> 0) and returns the new balance.
	Credit(ctx context.Context, userID string, amount int) (int, error)
}
