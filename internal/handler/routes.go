package handler

import (
	"net/http"

	"github.com/legaldeck/backend/internal/service"
)

// Services bundles what the router needs to serve the API.
type Services struct {
	Contacts     service.ContactService
	Appointments service.AppointmentService
	Blog         service.BlogService
}

// NewRouter registers every /api route and wraps the mux with CORS,
// security headers and request logging. limiter guards the POST intake
// routes; pass nil to disable it.
func NewRouter(h *Handler, svc Services, limiter *RateLimiter) http.Handler {
	contactHandler := NewContactHandler(svc.Contacts)
	appointmentHandler := NewAppointmentHandler(svc.Appointments)
	blogHandler := NewBlogHandler(svc.Blog)

	limit := func(next http.HandlerFunc) http.Handler {
		if limiter == nil {
			return next
		}
		return limiter.Middleware(next)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api", h.Root)
	mux.HandleFunc("GET /api/{$}", h.Root)
	mux.HandleFunc("GET /api/health", h.Health)

	mux.Handle("POST /api/contact", limit(contactHandler.Submit))
	mux.HandleFunc("GET /api/contact", contactHandler.List)

	mux.Handle("POST /api/appointments", limit(appointmentHandler.Submit))
	mux.HandleFunc("GET /api/appointments", appointmentHandler.List)

	mux.HandleFunc("GET /api/blog", blogHandler.List)
	mux.HandleFunc("GET /api/blog/{id}", blogHandler.Get)

	return RequestLogger(SecurityHeaders(h.CORS(mux)))
}
