package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/legaldeck/backend/internal/model"
	"github.com/legaldeck/backend/internal/repository"
	"github.com/legaldeck/backend/internal/validate"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit assigns a fresh id and the current UTC time before persisting.
// Duplicate submissions produce duplicate records.
func (s *contactServiceImpl) Submit(ctx context.Context, in model.ContactMessageCreate) (*model.ContactMessage, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	msg := &model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		Timestamp: now(),
	}
	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx, MaxListSize)
}
