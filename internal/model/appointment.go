package model

import "time"

// AppointmentStatusPending is the status every new appointment request starts in.
const AppointmentStatusPending = "pending"

// AppointmentRequest is a consultation request. Date and Time are kept as the
// client sent them; the office confirms the slot out of band.
type AppointmentRequest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Message   *string   `json:"message"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// AppointmentRequestCreate is the client-supplied part of an AppointmentRequest.
type AppointmentRequestCreate struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   string  `json:"phone" validate:"required"`
	Date    string  `json:"date" validate:"required"`
	Time    string  `json:"time" validate:"required"`
	Message *string `json:"message"`
}
