package api

import (
	"encoding/json"
	"net/http"

	"github.com/learnloop/learnloop/internal/tutor"
)

// ListQuestions returns the question bank for a subject, optionally narrowed
// to one topic. Transfer questions are included and carry the transfer flag.
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	subject, err := tutor.ParseSubject(r.URL.Query().Get("subject"))
	if err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}
	topicID := r.URL.Query().Get("topic_id")

	var regular []tutor.Question
	if topicID != "" {
		regular, err = h.content.QuestionsByTopic(r.Context(), subject, topicID)
	} else {
		regular, err = h.content.QuestionsBySubject(r.Context(), subject)
	}
	if err != nil {
		h.logger.Error("listing questions failed", "subject", subject, "error", err)
		Error(w, http.StatusInternalServerError, "failed to list questions")
		return
	}

	transfer, err := h.content.TransferQuestions(r.Context(), subject, topicID)
	if err != nil {
		h.logger.Error("listing transfer questions failed", "subject", subject, "error", err)
		Error(w, http.StatusInternalServerError, "failed to list questions")
		return
	}

	questions := append(regular, transfer...)
	JSON(w, http.StatusOK, map[string]interface{}{
		"subject":   subject,
		"questions": questions,
		"count":     len(questions),
	})
}

// CreateQuestion stores an authored question.
func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var q tutor.Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if q.ID == "" || q.Content == "" || q.Answer == "" {
		Error(w, http.StatusBadRequest, "id, content and answer are required")
		return
	}
	if _, err := tutor.ParseSubject(string(q.Subject)); err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if q.Difficulty == 0 {
		q.Difficulty = 1
	}

	if err := h.content.CreateQuestion(r.Context(), q); err != nil {
		h.logger.Error("creating question failed", "id", q.ID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to create question")
		return
	}
	JSON(w, http.StatusCreated, map[string]string{"id": q.ID})
}

// ListKnowledge returns the knowledge base for a subject.
func (h *Handler) ListKnowledge(w http.ResponseWriter, r *http.Request) {
	subject, err := tutor.ParseSubject(r.URL.Query().Get("subject"))
	if err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.content.KnowledgeBySubject(r.Context(), subject)
	if err != nil {
		h.logger.Error("listing knowledge failed", "subject", subject, "error", err)
		Error(w, http.StatusInternalServerError, "failed to list knowledge")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"subject":   subject,
		"knowledge": items,
		"count":     len(items),
	})
}

// CreateKnowledge stores an authored knowledge item.
func (h *Handler) CreateKnowledge(w http.ResponseWriter, r *http.Request) {
	var k tutor.KnowledgeItem
	if err := json.NewDecoder(r.Body).Decode(&k); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if k.ID == "" || k.Title == "" || k.Content == "" {
		Error(w, http.StatusBadRequest, "id, title and content are required")
		return
	}
	if _, err := tutor.ParseSubject(string(k.Subject)); err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.content.CreateKnowledge(r.Context(), k); err != nil {
		h.logger.Error("creating knowledge item failed", "id", k.ID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to create knowledge item")
		return
	}
	JSON(w, http.StatusCreated, map[string]string{"id": k.ID})
}
