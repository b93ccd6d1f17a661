package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/learnloop/learnloop/internal/store"
	"github.com/learnloop/learnloop/internal/tutor"
)

type createSessionRequest struct {
	Subject   string `json:"subject"`
	StudentID string `json:"student_id"`
}

type createSessionResponse struct {
	SessionID      string        `json:"session_id"`
	Subject        tutor.Subject `json:"subject"`
	WelcomeMessage string        `json:"welcome_message"`
}

// CreateSession starts a new tutoring session and returns the welcome
// message, which is also recorded as the first assistant turn.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	subject, err := tutor.ParseSubject(req.Subject)
	if err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	studentID := req.StudentID
	if studentID == "" {
		studentID = h.studentID
	}

	sess, err := h.sessions.Create(r.Context(), studentID, subject)
	if err != nil {
		h.logger.Error("creating session failed", "error", err)
		Error(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	welcome := h.orch.WelcomeMessage(r.Context(), subject)
	sess.Messages = append(sess.Messages, tutor.Message{Role: tutor.RoleAssistant, Content: welcome})
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		h.logger.Error("saving welcome message failed", "session", sess.ID, "error", err)
	}

	JSON(w, http.StatusCreated, createSessionResponse{
		SessionID:      sess.ID,
		Subject:        sess.Subject,
		WelcomeMessage: welcome,
	})
}

type sessionResponse struct {
	ID                  string        `json:"id"`
	StudentID           string        `json:"student_id"`
	Subject             tutor.Subject `json:"subject"`
	TopicID             string        `json:"topic_id,omitempty"`
	Phase               tutor.Phase   `json:"phase"`
	Grade               tutor.Grade   `json:"grade"`
	ConsecutiveFailures int           `json:"consecutive_failures"`
	MessageCount        int           `json:"message_count"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// GetSession returns a session's progress without its conversation log.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	JSON(w, http.StatusOK, sessionResponse{
		ID:                  sess.ID,
		StudentID:           sess.StudentID,
		Subject:             sess.Subject,
		TopicID:             sess.TopicID,
		Phase:               sess.Phase,
		Grade:               sess.Grade,
		ConsecutiveFailures: sess.ConsecutiveFailures,
		MessageCount:        len(sess.Messages),
		CreatedAt:           sess.CreatedAt,
		UpdatedAt:           sess.UpdatedAt,
	})
}

// GetMessages returns a session's full conversation log.
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"session_id": sess.ID,
		"messages":   sess.Messages,
	})
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	*tutor.TurnResult
}

// Chat runs one tutoring turn.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SessionID == "" || req.Message == "" {
		Error(w, http.StatusBadRequest, "session_id and message are required")
		return
	}

	result, err := h.orch.HandleTurn(r.Context(), req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			Error(w, http.StatusNotFound, "session not found")
			return
		}
		h.logger.Error("handling turn failed", "session", req.SessionID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	JSON(w, http.StatusOK, chatResponse{SessionID: req.SessionID, TurnResult: result})
}

// loadSession resolves the {id} path param, writing the error response itself.
func (h *Handler) loadSession(w http.ResponseWriter, r *http.Request) (*tutor.Session, bool) {
	id := chi.URLParam(r, "id")
	sess, err := h.sessions.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			Error(w, http.StatusNotFound, "session not found")
		} else {
			h.logger.Error("loading session failed", "session", id, "error", err)
			Error(w, http.StatusInternalServerError, "failed to load session")
		}
		return nil, false
	}
	return sess, true
}
