package handler

import (
	"net/http"

	"github.com/legaldeck/backend/internal/model"
	"github.com/legaldeck/backend/internal/service"
)

// ContactHandler handles contact form submission and listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact.
// name, email and message are required; email must be well-formed.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.ContactMessageCreate
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	msg, err := h.contactService.Submit(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "contact submit", err)
		return
	}

	writeJSON(w, http.StatusOK, msg)
}

// List handles GET /api/contact.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "contact list", err)
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}
