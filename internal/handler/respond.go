package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/legaldeck/backend/internal/validate"
)

// maxBodyBytes bounds request bodies on the intake endpoints.
const maxBodyBytes = 64 << 10

type errorResponse struct {
	Error   string                `json:"error"`
	Message string                `json:"message,omitempty"`
	Details []validate.FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorResponse{Error: code})
}

// writeServiceError maps a service error to a response. Validation failures
// become 422; anything else is logged and reported as a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verrs validate.Errors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Details: verrs,
		})
		return
	}
	slog.ErrorContext(r.Context(), op+" failed", "error", err, "path", r.URL.Path)
	writeError(w, http.StatusInternalServerError, "internal_error")
}

// decodeJSON reads exactly one JSON object from the request body into dst.
// Unknown fields, trailing data, and oversized bodies are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("request body must contain a single JSON object")
	}
	return nil
}

// writeDecodeError reports a body that could not be decoded as 422, the same
// status used for field validation failures.
func writeDecodeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error:   "invalid_json",
		Message: err.Error(),
	})
}
