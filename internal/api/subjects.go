package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/learnloop/learnloop/internal/tutor"
)

// subjectMeta carries the display decoration the frontend uses for each
// subject card.
var subjectMeta = map[tutor.Subject]struct {
	Icon  string
	Color string
}{
	tutor.SubjectChinese:  {"📖", "#ef4444"},
	tutor.SubjectMath:     {"📐", "#3b82f6"},
	tutor.SubjectEnglish:  {"🌍", "#22c55e"},
	tutor.SubjectHistory:  {"🏛️", "#f59e0b"},
	tutor.SubjectPolitics: {"⚖️", "#8b5cf6"},
}

type subjectInfo struct {
	ID             tutor.Subject `json:"id"`
	Name           string        `json:"name"`
	Icon           string        `json:"icon"`
	Color          string        `json:"color"`
	QuestionCount  int           `json:"question_count"`
	KnowledgeCount int           `json:"knowledge_count"`
}

// ListSubjects returns every subject with its content counts.
func (h *Handler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects := make([]subjectInfo, 0, len(tutor.AllSubjects()))
	for _, s := range tutor.AllSubjects() {
		regular, err := h.content.QuestionsBySubject(r.Context(), s)
		if err != nil {
			h.logger.Error("counting questions failed", "subject", s, "error", err)
			Error(w, http.StatusInternalServerError, "failed to list subjects")
			return
		}
		transfer, err := h.content.TransferQuestions(r.Context(), s, "")
		if err != nil {
			h.logger.Error("counting transfer questions failed", "subject", s, "error", err)
			Error(w, http.StatusInternalServerError, "failed to list subjects")
			return
		}
		knowledge, err := h.content.KnowledgeBySubject(r.Context(), s)
		if err != nil {
			h.logger.Error("counting knowledge failed", "subject", s, "error", err)
			Error(w, http.StatusInternalServerError, "failed to list subjects")
			return
		}

		meta := subjectMeta[s]
		subjects = append(subjects, subjectInfo{
			ID:             s,
			Name:           s.DisplayName(),
			Icon:           meta.Icon,
			Color:          meta.Color,
			QuestionCount:  len(regular) + len(transfer),
			KnowledgeCount: len(knowledge),
		})
	}

	JSON(w, http.StatusOK, map[string]interface{}{"subjects": subjects})
}

// ListTopics returns the topic list for one subject.
func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	subject, err := tutor.ParseSubject(chi.URLParam(r, "subject"))
	if err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	topics, err := h.content.TopicsBySubject(r.Context(), subject)
	if err != nil {
		h.logger.Error("listing topics failed", "subject", subject, "error", err)
		Error(w, http.StatusInternalServerError, "failed to list topics")
		return
	}
	if topics == nil {
		topics = []tutor.Topic{}
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"subject": subject,
		"topics":  topics,
	})
}
