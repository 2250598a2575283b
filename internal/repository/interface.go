package repository

import (
	"context"

	"github.com/legaldeck/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	// List returns at most limit messages, newest first.
	List(ctx context.Context, limit int) ([]*model.ContactMessage, error)
}

// AppointmentRepository persists appointment requests.
type AppointmentRepository interface {
	Save(ctx context.Context, req *model.AppointmentRequest) error
	// List returns at most limit requests, newest first.
	List(ctx context.Context, limit int) ([]*model.AppointmentRequest, error)
}

// ArticleRepository reads the blog catalog. InsertMany and Count exist for
// seeding only; the API never writes articles.
type ArticleRepository interface {
	// List returns at most limit articles ordered by published_date descending.
	List(ctx context.Context, limit int) ([]*model.BlogArticle, error)
	// FindByID returns ErrNotFound when no article has the given id.
	FindByID(ctx context.Context, id string) (*model.BlogArticle, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, articles []*model.BlogArticle) error
}

// Store is an opened storage backend. It is created once at startup, shared
// by every request, and closed at shutdown.
type Store interface {
	DB
	Contacts() ContactRepository
	Appointments() AppointmentRepository
	Articles() ArticleRepository
	Close(ctx context.Context) error
}
