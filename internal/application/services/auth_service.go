package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/repositories"
)

type AuthService struct {
	users  repositories.UserRepository
	mailer WelcomeMailer
	log    *zap.Logger
}

func NewAuthService(users repositories.UserRepository, mailer WelcomeMailer, log *zap.Logger) *AuthService {
	return &AuthService{users: users, mailer: mailer, log: log}
}

// Register creates the user and its profile with the starting balance.
// Duplicate emails surface as entities.ErrConflict without creating either
// row. The welcome email is best-effort and never fails the registration.
func (s *AuthService) Register(ctx context.Context, email, password, displayName string) (*entities.User, error) {
	user, err := entities.NewUser(email, password, displayName)
	if err != nil {
		return nil, err
	}
	profile := entities.NewProfile(user.ID)

	if err := s.users.Create(ctx, user, profile); err != nil {
		return nil, err
	}
	user.Profile = profile

	if err := s.mailer.SendWelcome(user.Email, user.DisplayName); err != nil {
		s.log.Warn("welcome email failed", zap.String("user_id", user.ID), zap.Error(err))
	}

	return user, nil
}

// Login verifies credentials. Unknown email and wrong password are both
// entities.ErrUnauthorized; the caller learns nothing else.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.User, error) {
	if email == "" || password == "" {
		return nil, entities.ErrInvalidRequest
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, entities.ErrNotFound) {
		return nil, entities.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	if err := user.CheckPassword(password); err != nil {
		return nil, entities.ErrUnauthorized
	}
	return user, nil
}
