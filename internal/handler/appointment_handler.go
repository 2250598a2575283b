package handler

import (
	"net/http"

	"github.com/legaldeck/backend/internal/model"
	"github.com/legaldeck/backend/internal/service"
)

// AppointmentHandler handles appointment requests.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Submit handles POST /api/appointments. The created request always has status "pending".
func (h *AppointmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.AppointmentRequestCreate
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	appt, err := h.appointmentService.Submit(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "appointment submit", err)
		return
	}

	writeJSON(w, http.StatusOK, appt)
}

// List handles GET /api/appointments.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.appointmentService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "appointment list", err)
		return
	}
	if requests == nil {
		requests = []*model.AppointmentRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}
