package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/legaldeck/backend/internal/model"
)

// PgArticleRepository is the PostgreSQL implementation of ArticleRepository.
type PgArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPgArticleRepository creates a PgArticleRepository backed by the given pool.
func NewPgArticleRepository(pool *pgxpool.Pool) *PgArticleRepository {
	return &PgArticleRepository{pool: pool}
}

var _ ArticleRepository = (*PgArticleRepository)(nil)

const articleColumns = `id, title, excerpt, content, category, author, published_date, read_time`

func scanArticle(row pgx.Row) (*model.BlogArticle, error) {
	var a model.BlogArticle
	if err := row.Scan(&a.ID, &a.Title, &a.Excerpt, &a.Content, &a.Category, &a.Author, &a.PublishedDate, &a.ReadTime); err != nil {
		return nil, err
	}
	a.PublishedDate = a.PublishedDate.UTC()
	a.ApplyDefaults()
	return &a, nil
}

func (r *PgArticleRepository) List(ctx context.Context, limit int) ([]*model.BlogArticle, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+articleColumns+`
		 FROM blog_articles
		 ORDER BY published_date DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := []*model.BlogArticle{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// FindByID returns ErrNotFound when no row matches id.
func (r *PgArticleRepository) FindByID(ctx context.Context, id string) (*model.BlogArticle, error) {
	a, err := scanArticle(r.pool.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM blog_articles WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find article %s: %w", id, err)
	}
	return a, nil
}

func (r *PgArticleRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blog_articles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

// InsertMany writes all articles in one transaction.
func (r *PgArticleRepository) InsertMany(ctx context.Context, articles []*model.BlogArticle) error {
	if len(articles) == 0 {
		return nil
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, a := range articles {
		batch.Queue(`INSERT INTO blog_articles (`+articleColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			a.ID, a.Title, a.Excerpt, a.Content, a.Category, a.Author, a.PublishedDate, a.ReadTime)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert articles: %w", err)
	}
	return tx.Commit(ctx)
}
