package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/legaldeck/backend/internal/model"
	"github.com/legaldeck/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogService_Get(t *testing.T) {
	repo := &memArticleRepository{articles: SampleArticles(time.Now())}
	svc := NewBlogService(repo)

	want := repo.articles[1]
	got, err := svc.Get(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.Get(context.Background(), "non-existent-article-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBlogService_List_CapsAtMaxListSize(t *testing.T) {
	repo := &memArticleRepository{}
	for i := 0; i < MaxListSize+20; i++ {
		repo.articles = append(repo.articles, &model.BlogArticle{ID: fmt.Sprintf("article-%d", i)})
	}
	svc := NewBlogService(repo)

	articles, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, articles, MaxListSize)
}
