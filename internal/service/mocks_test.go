package service

import (
	"context"

	"github.com/legaldeck/backend/internal/model"
	"github.com/legaldeck/backend/internal/repository"
)

type mockContactRepository struct {
	saveFunc func(ctx context.Context, msg *model.ContactMessage) error
	listFunc func(ctx context.Context, limit int) ([]*model.ContactMessage, error)
}

func (m *mockContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context, limit int) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return nil, nil
}

type mockAppointmentRepository struct {
	saveFunc func(ctx context.Context, req *model.AppointmentRequest) error
	listFunc func(ctx context.Context, limit int) ([]*model.AppointmentRequest, error)
}

func (m *mockAppointmentRepository) Save(ctx context.Context, req *model.AppointmentRequest) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, req)
	}
	return nil
}

func (m *mockAppointmentRepository) List(ctx context.Context, limit int) ([]*model.AppointmentRequest, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return nil, nil
}

// memArticleRepository keeps articles in memory so seeding can be exercised end to end.
type memArticleRepository struct {
	articles  []*model.BlogArticle
	countErr  error
	insertErr error
	inserts   int
}

func (m *memArticleRepository) List(ctx context.Context, limit int) ([]*model.BlogArticle, error) {
	if len(m.articles) > limit {
		return m.articles[:limit], nil
	}
	return m.articles, nil
}

func (m *memArticleRepository) FindByID(ctx context.Context, id string) (*model.BlogArticle, error) {
	for _, a := range m.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memArticleRepository) Count(ctx context.Context) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.articles)), nil
}

func (m *memArticleRepository) InsertMany(ctx context.Context, articles []*model.BlogArticle) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserts++
	m.articles = append(m.articles, articles...)
	return nil
}

type mockDB struct {
	pingFunc func(ctx context.Context) error
	calls    int
}

func (m *mockDB) Ping(ctx context.Context) error {
	m.calls++
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}
