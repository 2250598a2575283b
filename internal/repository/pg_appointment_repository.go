package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/legaldeck/backend/internal/model"
)

// PgAppointmentRepository is the PostgreSQL implementation of AppointmentRepository.
type PgAppointmentRepository struct {
	pool *pgxpool.Pool
}

// NewPgAppointmentRepository creates a PgAppointmentRepository backed by the given pool.
func NewPgAppointmentRepository(pool *pgxpool.Pool) *PgAppointmentRepository {
	return &PgAppointmentRepository{pool: pool}
}

var _ AppointmentRepository = (*PgAppointmentRepository)(nil)

func (r *PgAppointmentRepository) Save(ctx context.Context, req *model.AppointmentRequest) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO appointments
		   (id, name, email, phone, appointment_date, appointment_time, message, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		req.ID, req.Name, req.Email, req.Phone, req.Date, req.Time, req.Message, req.Status, req.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *PgAppointmentRepository) List(ctx context.Context, limit int) ([]*model.AppointmentRequest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, appointment_date, appointment_time, message, status, created_at
		 FROM appointments
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query appointments: %w", err)
	}
	defer rows.Close()

	requests := []*model.AppointmentRequest{}
	for rows.Next() {
		var a model.AppointmentRequest
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.Date, &a.Time, &a.Message, &a.Status, &a.Timestamp); err != nil {
			return nil, err
		}
		a.Timestamp = a.Timestamp.UTC()
		requests = append(requests, &a)
	}
	return requests, rows.Err()
}
