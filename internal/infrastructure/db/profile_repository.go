package db

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/repositories"
)

// ProfileRepository implements the balance primitive. Debit is a single
// conditional UPDATE so two concurrent charges can never drive the balance
// negative from a stale read.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(gdb *gorm.DB) repositories.ProfileRepository {
	return &ProfileRepository{db: gdb}
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	var profile entities.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) UpdateKeywords(ctx context.Context, userID string, keywords []string) (*entities.Profile, error) {
	if keywords == nil {
		keywords = []string{}
	}
	res := r.db.WithContext(ctx).Model(&entities.Profile{}).
		Where("user_id = ?", userID).
		Update("keywords", datatypes.NewJSONSlice(keywords))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, entities.ErrNotFound
	}
	return r.FindByUserID(ctx, userID)
}

func (r *ProfileRepository) Debit(ctx context.Context, userID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, entities.ErrInvalidRequest
	}

	res := r.db.WithContext(ctx).Model(&entities.Profile{}).
		Where("user_id = ? AND credits >= ?", userID, amount).
		UpdateColumn("credits", gorm.Expr("credits - ?", amount))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		profile, err := r.FindByUserID(ctx, userID)
		if err != nil {
			return 0, err
		}
		return profile.Credits, entities.ErrInsufficientCredits
	}

	profile, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return profile.Credits, nil
}

func (r *ProfileRepository) Credit(ctx context.Context, userID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, entities.ErrInvalidRequest
	}

	res := r.db.WithContext(ctx).Model(&entities.Profile{}).
		Where("user_id = ?", userID).
		UpdateColumn("credits", gorm.Expr("credits + ?", amount))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, entities.ErrNotFound
	}

	profile, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return profile.Credits, nil
}
