package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/repositories"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(gdb *gorm.DB) repositories.BookRepository {
	return &BookRepository{db: gdb}
}

func (r *BookRepository) Create(ctx context.Context, book *entities.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *BookRepository) FindByID(ctx context.Context, id string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *BookRepository) FindByIDFull(ctx context.Context, id string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).
		Preload("Chapters", func(tx *gorm.DB) *gorm.DB { return tx.Order("sort_order ASC") }).
		Preload("Characters").
		Preload("WorldItems").
		Where("id = ?", id).
		First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *BookRepository) ListByUser(ctx context.Context, userID string) ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.db.WithContext(ctx).
		Preload("Chapters", func(tx *gorm.DB) *gorm.DB { return tx.Order("sort_order ASC") }).
		Preload("Characters").
		Preload("WorldItems").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&books).Error
	return books, err
}

func (r *BookRepository) Save(ctx context.Context, book *entities.Book) error {
	return r.db.WithContext(ctx).Omit("Chapters", "Characters", "WorldItems").Save(book).Error
}

// Delete removes the book and all of its children. The cascade is done in
// one transaction so sqlite behaves the same as postgres with FK cascades.
func (r *BookRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entities.Chapter{}, "book_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entities.Character{}, "book_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entities.WorldItem{}, "book_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Book{}, "id = ?", id).Error
	})
}
