package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/repositories"
)

type CharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(gdb *gorm.DB) repositories.CharacterRepository {
	return &CharacterRepository{db: gdb}
}

func (r *CharacterRepository) Create(ctx context.Context, character *entities.Character) error {
	return r.db.WithContext(ctx).Create(character).Error
}

func (r *CharacterRepository) FindByID(ctx context.Context, id string) (*entities.Character, error) {
	var character entities.Character
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&character).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &character, nil
}

func (r *CharacterRepository) ListByBook(ctx context.Context, bookID string) ([]entities.Character, error) {
	characters := []entities.Character{}
	err := r.db.WithContext(ctx).Where("book_id = ?", bookID).Find(&characters).Error
	return characters, err
}

func (r *CharacterRepository) ListByIDs(ctx context.Context, bookID string, ids []string) ([]entities.Character, error) {
	characters := []entities.Character{}
	if len(ids) == 0 {
		return characters, nil
	}
	err := r.db.WithContext(ctx).
		Where("book_id = ? AND id IN ?", bookID, ids).
		Find(&characters).Error
	return characters, err
}

func (r *CharacterRepository) Save(ctx context.Context, character *entities.Character) error {
	return r.db.WithContext(ctx).Save(character).Error
}

func (r *CharacterRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.Character{}, "id = ?", id).Error
}
