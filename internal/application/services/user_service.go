package services

import (
	"context"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/repositories"
)

type UserService struct {
	users    repositories.UserRepository
	profiles repositories.ProfileRepository
}

func NewUserService(users repositories.UserRepository, profiles repositories.ProfileRepository) *UserService {
	return &UserService{users: users, profiles: profiles}
}

func (s *UserService) Me(ctx context.Context, userID string) (*entities.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) UpdateKeywords(ctx context.Context, userID string, keywords []string) (*entities.Profile, error) {
	return s.profiles.UpdateKeywords(ctx, userID, keywords)
}

func (s *UserService) GetCredits(ctx context.Context, userID string) (int, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return profile.Credits, nil
}

// AdjustCredits applies a manual add or deduct. Deducts go through the same
// atomic primitive as the generation charge, so the balance can never be
// driven negative.
func (s *UserService) AdjustCredits(ctx context.Context, userID string, amount int, kind string) (int, error) {
	if amount <= 0 {
		return 0, entities.ErrInvalidRequest
	}
	switch kind {
	case "add":
		return s.profiles.Credit(ctx, userID, amount)
	case "deduct":
		return s.profiles.Debit(ctx, userID, amount)
	default:
		return 0, entities.ErrInvalidRequest
	}
}
