package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/legaldeck/backend/internal/repository/migrations"
	"github.com/pressly/goose/v3"
)

// NewPool は PostgreSQL 接続プールを生成する
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// PgStore is the PostgreSQL implementation of Store.
type PgStore struct {
	pool         *pgxpool.Pool
	contacts     *PgContactRepository
	appointments *PgAppointmentRepository
	articles     *PgArticleRepository
}

var _ Store = (*PgStore)(nil)

// OpenPostgres applies pending migrations and opens a pool on dsn.
func OpenPostgres(ctx context.Context, dsn string) (*PgStore, error) {
	if err := Migrate(ctx, dsn, "up"); err != nil {
		return nil, err
	}
	pool, err := NewPool(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	return NewPgStore(pool), nil
}

// NewPgStore wraps an existing pool.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{
		pool:         pool,
		contacts:     NewPgContactRepository(pool),
		appointments: NewPgAppointmentRepository(pool),
		articles:     NewPgArticleRepository(pool),
	}
}

func (s *PgStore) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

func (s *PgStore) Contacts() ContactRepository         { return s.contacts }
func (s *PgStore) Appointments() AppointmentRepository { return s.appointments }
func (s *PgStore) Articles() ArticleRepository         { return s.articles }

func (s *PgStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}

// Migrate runs a goose command ("up", "down" or "status") with the embedded
// migrations against dsn.
func Migrate(ctx context.Context, dsn, command string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		err = goose.UpContext(ctx, db, ".")
	case "down":
		err = goose.DownContext(ctx, db, ".")
	case "status":
		err = goose.StatusContext(ctx, db, ".")
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}
