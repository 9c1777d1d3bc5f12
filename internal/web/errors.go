package web

// errors.go provides unified response helpers for the API. Technical
// errors are logged server-side with the request id; clients get a stable
// JSON shape.

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/mfgdata/masterdata/internal/core"
	"github.com/mfgdata/masterdata/internal/logging"
	"github.com/mfgdata/masterdata/internal/store"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// respondError logs the technical error and writes a JSON error response.
// Known sentinel errors map to specific status codes.
func respondError(w http.ResponseWriter, r *http.Request, err error, status int) {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, core.ErrSessionNotFound):
		status = http.StatusNotFound
	}

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"request_id", middleware.GetReqID(r.Context()),
	)

	respondJSON(w, status, ErrorResponse{Error: err.Error()})
}
