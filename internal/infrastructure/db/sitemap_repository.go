package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/repositories"
)

type SitemapRepository struct {
	db *gorm.DB
}

func NewSitemapRepository(gdb *gorm.DB) repositories.SitemapRepository {
	return &SitemapRepository{db: gdb}
}

func (r *SitemapRepository) FindByUserID(ctx context.Context, userID string) (*entities.Sitemap, error) {
	var sitemap entities.Sitemap
	err := r.db.WithContext(ctx).
		Preload("Links", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Where("user_id = ?", userID).
		First(&sitemap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sitemap, nil
}

func (r *SitemapRepository) Create(ctx context.Context, sitemap *entities.Sitemap) error {
	err := r.db.WithContext(ctx).Create(sitemap).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entities.ErrConflict
	}
	return err
}

// Replace rewrites the sitemap row and its full link list in one
// transaction. Links carry fresh IDs; the old set is dropped first.
func (r *SitemapRepository) Replace(ctx context.Context, sitemap *entities.Sitemap) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entities.SitemapLink{}, "sitemap_id = ?", sitemap.ID).Error; err != nil {
			return err
		}
		return tx.Save(sitemap).Error
	})
}

func (r *SitemapRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entities.SitemapLink{}, "sitemap_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Sitemap{}, "id = ?", id).Error
	})
}
