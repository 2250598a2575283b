package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/legaldeck/backend/internal/model"
	"github.com/legaldeck/backend/internal/repository"
	"github.com/legaldeck/backend/internal/validate"
)

// AppointmentService handles appointment requests.
type AppointmentService interface {
	// Submit validates in and stores it with status "pending".
	Submit(ctx context.Context, in model.AppointmentRequestCreate) (*model.AppointmentRequest, error)
	List(ctx context.Context) ([]*model.AppointmentRequest, error)
}

type appointmentService struct {
	repo repository.AppointmentRepository
}

// NewAppointmentService creates an AppointmentService.
func NewAppointmentService(repo repository.AppointmentRepository) AppointmentService {
	return &appointmentService{repo: repo}
}

func (s *appointmentService) Submit(ctx context.Context, in model.AppointmentRequestCreate) (*model.AppointmentRequest, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	req := &model.AppointmentRequest{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Date:      in.Date,
		Time:      in.Time,
		Message:   in.Message,
		Status:    model.AppointmentStatusPending,
		Timestamp: now(),
	}
	if err := s.repo.Save(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *appointmentService) List(ctx context.Context) ([]*model.AppointmentRequest, error) {
	return s.repo.List(ctx, MaxListSize)
}
