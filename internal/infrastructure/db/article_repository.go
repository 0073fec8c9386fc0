package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/repositories"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(gdb *gorm.DB) repositories.ArticleRepository {
	return &ArticleRepository{db: gdb}
}

func (r *ArticleRepository) Create(ctx context.Context, article *entities.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*entities.Article, error) {
	var article entities.Article
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepository) ListByUser(ctx context.Context, userID string) ([]entities.Article, error) {
	articles := []entities.Article{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&articles).Error
	return articles, err
}

func (r *ArticleRepository) Save(ctx context.Context, article *entities.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.Article{}, "id = ?", id).Error
}
