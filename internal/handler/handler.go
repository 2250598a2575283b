package handler

import (
	"net/http"
	"slices"

	"github.com/legaldeck/backend/internal/repository"
)

const apiName = "Legal Professional Website API"

type Handler struct {
	db             repository.DB
	allowedOrigins []string
}

// New creates the Handler serving the root, health and CORS concerns.
// allowedOrigins may be ["*"] to allow every origin.
func New(db repository.DB, allowedOrigins []string) *Handler {
	return &Handler{db: db, allowedOrigins: allowedOrigins}
}

// Root handles GET /api/.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": apiName})
}

func (h *Handler) allowAny() bool {
	return slices.Contains(h.allowedOrigins, "*")
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if h.allowAny() {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			// The response depends on Origin whether or not it matched.
			w.Header().Add("Vary", "Origin")
			if origin != "" && slices.Contains(h.allowedOrigins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
