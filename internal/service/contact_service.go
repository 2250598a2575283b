package service

import (
	"context"
	"time"

	"github.com/legaldeck/backend/internal/model"
)

// MaxListSize caps every list endpoint.
const MaxListSize = 100

// now is the record timestamp. Millisecond precision is what MongoDB keeps,
// so a created record reads back with the same value it was returned with.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates in and stores it as a new contact message. It returns
	// validate.Errors when in is invalid.
	Submit(ctx context.Context, in model.ContactMessageCreate) (*model.ContactMessage, error)

	// List returns up to MaxListSize stored messages, newest first.
	List(ctx context.Context) ([]*model.ContactMessage, error)
}
