// Package api exposes the tutoring service over HTTP.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/learnloop/learnloop/internal/store"
	"github.com/learnloop/learnloop/internal/tutor"
)

// Handler holds the shared dependencies of the HTTP endpoints.
type Handler struct {
	sessions  *store.SessionRepo
	content   *store.ContentRepo
	orch      *tutor.Orchestrator
	studentID string
	logger    *slog.Logger
}

// NewHandler creates a Handler. studentID is attached to sessions created
// without an explicit student.
func NewHandler(st *store.Store, orch *tutor.Orchestrator, studentID string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		sessions:  st.Sessions(),
		content:   st.Content(),
		orch:      orch,
		studentID: studentID,
		logger:    logger,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "learnloop",
	})
}
