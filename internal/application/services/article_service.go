package services

import (
	"context"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/repositories"
)

type ArticleService struct {
	articles repositories.ArticleRepository
}

func NewArticleService(articles repositories.ArticleRepository) *ArticleService {
	return &ArticleService{articles: articles}
}

// UpdateArticleInput carries a partial merge; nil fields are untouched.
type UpdateArticleInput struct {
	Title   *string
	Content *string
	Status  *entities.ArticleStatus
}

func (s *ArticleService) List(ctx context.Context, userID string) ([]entities.Article, error) {
	return s.articles.ListByUser(ctx, userID)
}

func (s *ArticleService) Get(ctx context.Context, userID, articleID string) (*entities.Article, error) {
	article, err := s.articles.FindByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article.UserID != userID {
		return nil, entities.ErrForbidden
	}
	return article, nil
}

func (s *ArticleService) Create(ctx context.Context, userID, title, content string) (*entities.Article, error) {
	article := entities.NewArticle(userID, title, content)
	if err := s.articles.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) Update(ctx context.Context, userID, articleID string, input UpdateArticleInput) (*entities.Article, error) {
	article, err := s.Get(ctx, userID, articleID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		article.Title = *input.Title
	}
	if input.Content != nil {
		article.Content = *input.Content
		article.Snippet = entities.MakeSnippet(*input.Content)
	}
	if input.Status != nil {
		if *input.Status != entities.ArticleStatusDraft && *input.Status != entities.ArticleStatusPublished {
			return nil, entities.ErrInvalidRequest
		}
		article.Status = *input.Status
	}

	if err := s.articles.Save(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) Delete(ctx context.Context, userID, articleID string) error {
	if _, err := s.Get(ctx, userID, articleID); err != nil {
		return err
	}
	return s.articles.Delete(ctx, articleID)
}
