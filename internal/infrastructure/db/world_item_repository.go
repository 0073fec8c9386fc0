package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/repositories"
)

type WorldItemRepository struct {
	db *gorm.DB
}

func NewWorldItemRepository(gdb *gorm.DB) repositories.WorldItemRepository {
	return &WorldItemRepository{db: gdb}
}

func (r *WorldItemRepository) Create(ctx context.Context, item *entities.WorldItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *WorldItemRepository) FindByID(ctx context.Context, id string) (*entities.WorldItem, error) {
	var item entities.WorldItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *WorldItemRepository) ListByBook(ctx context.Context, bookID string) ([]entities.WorldItem, error) {
	items := []entities.WorldItem{}
	err := r.db.WithContext(ctx).Where("book_id = ?", bookID).Find(&items).Error
	return items, err
}

func (r *WorldItemRepository) ListByIDs(ctx context.Context, bookID string, ids []string) ([]entities.WorldItem, error) {
	items := []entities.WorldItem{}
	if len(ids) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).
		Where("book_id = ? AND id IN ?", bookID, ids).
		Find(&items).Error
	return items, err
}

func (r *WorldItemRepository) Save(ctx context.Context, item *entities.WorldItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *WorldItemRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.WorldItem{}, "id = ?", id).Error
}
