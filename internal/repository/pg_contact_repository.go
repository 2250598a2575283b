package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/legaldeck/backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a contact_messages row. ID and Timestamp are assigned by the caller.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, message, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.Name, msg.Email, msg.Message, msg.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// List returns the newest contact messages, at most limit of them.
func (r *PgContactRepository) List(ctx context.Context, limit int) ([]*model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, message, created_at
		 FROM contact_messages
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query contact messages: %w", err)
	}
	defer rows.Close()

	messages := []*model.ContactMessage{}
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Timestamp); err != nil {
			return nil, err
		}
		m.Timestamp = m.Timestamp.UTC()
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}
