package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/repositories"
)

type ChapterRepository struct {
	db *gorm.DB
}

func NewChapterRepository(gdb *gorm.DB) repositories.ChapterRepository {
	return &ChapterRepository{db: gdb}
}

func (r *ChapterRepository) Create(ctx context.Context, chapter *entities.Chapter) error {
	return r.db.WithContext(ctx).Create(chapter).Error
}

func (r *ChapterRepository) CreateBatch(ctx context.Context, chapters []entities.Chapter) error {
	if len(chapters) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&chapters).Error
}

func (r *ChapterRepository) FindByID(ctx context.Context, id string) (*entities.Chapter, error) {
	var chapter entities.Chapter
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&chapter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *ChapterRepository) ListByBook(ctx context.Context, bookID string) ([]entities.Chapter, error) {
	chapters := []entities.Chapter{}
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("sort_order ASC").
		Find(&chapters).Error
	return chapters, err
}

func (r *ChapterRepository) MaxOrder(ctx context.Context, bookID string) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&entities.Chapter{}).
		Where("book_id = ?", bookID).
		Select("MAX(sort_order)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *ChapterRepository) Previous(ctx context.Context, bookID string, order int) (*entities.Chapter, error) {
	var chapter entities.Chapter
	err := r.db.WithContext(ctx).
		Where("book_id = ? AND sort_order < ?", bookID, order).
		Order("sort_order DESC").
		First(&chapter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *ChapterRepository) Next(ctx context.Context, bookID string, order int) (*entities.Chapter, error) {
	var chapter entities.Chapter
	err := r.db.WithContext(ctx).
		Where("book_id = ? AND sort_order > ?", bookID, order).
		Order("sort_order ASC").
		First(&chapter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *ChapterRepository) Save(ctx context.Context, chapter *entities.Chapter) error {
	return r.db.WithContext(ctx).Save(chapter).Error
}

func (r *ChapterRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.Chapter{}, "id = ?", id).Error
}
