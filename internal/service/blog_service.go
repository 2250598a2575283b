package service

import (
	"context"

	"github.com/legaldeck/backend/internal/model"
	"github.com/legaldeck/backend/internal/repository"
)

// BlogService exposes the read-only blog catalog.
type BlogService interface {
	// List returns up to MaxListSize articles, most recently published first.
	List(ctx context.Context) ([]*model.BlogArticle, error)
	// Get returns repository.ErrNotFound for an unknown id.
	Get(ctx context.Context, id string) (*model.BlogArticle, error)
}

type blogService struct {
	repo repository.ArticleRepository
}

// NewBlogService creates a BlogService.
func NewBlogService(repo repository.ArticleRepository) BlogService {
	return &blogService{repo: repo}
}

func (s *blogService) List(ctx context.Context) ([]*model.BlogArticle, error) {
	return s.repo.List(ctx, MaxListSize)
}

func (s *blogService) Get(ctx context.Context, id string) (*model.BlogArticle, error) {
	return s.repo.FindByID(ctx, id)
}
