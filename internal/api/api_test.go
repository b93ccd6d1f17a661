package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/learnloop/learnloop/internal/grading"
	"github.com/learnloop/learnloop/internal/llm"
	"github.com/learnloop/learnloop/internal/store"
	"github.com/learnloop/learnloop/internal/teaching"
	"github.com/learnloop/learnloop/internal/tutor"
)

// newTestAPI wires the full stack against a throwaway database and a mock
// LLM provider.
func newTestAPI(t *testing.T) (chi.Router, *llm.MockProvider) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	require.NoError(t, store.Seed(context.Background(), st))

	provider := llm.NewMockProvider()
	orch := tutor.NewOrchestrator(
		st.Sessions(), st.Content(),
		teaching.NewService(provider), grading.NewEvaluator(provider),
		nil,
	)

	r := chi.NewRouter()
	NewHandler(st, orch, "default_student", nil).RegisterRoutes(r)
	return r, provider
}

func doJSON(t *testing.T, r chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(v))
}

func TestHealth(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got map[string]string
	decode(t, w, &got)
	if got["status"] != "ok" {
		t.Errorf("status = %q, want ok", got["status"])
	}
}

func TestCreateSession(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/sessions", map[string]string{"subject": "math"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body)
	}

	var got createSessionResponse
	decode(t, w, &got)
	if got.SessionID == "" {
		t.Error("expected a session_id")
	}
	if got.Subject != tutor.SubjectMath {
		t.Errorf("subject = %q, want math", got.Subject)
	}
	if !strings.Contains(got.WelcomeMessage, "欢迎") {
		t.Errorf("welcome message missing greeting: %q", got.WelcomeMessage)
	}
	// The seeded math topics should be offered.
	if !strings.Contains(got.WelcomeMessage, "一元二次方程") {
		t.Errorf("welcome message missing seeded topic: %q", got.WelcomeMessage)
	}

	// The welcome message is the first recorded assistant turn.
	w = doJSON(t, r, http.MethodGet, "/api/sessions/"+got.SessionID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get session status = %d", w.Code)
	}
	var sess sessionResponse
	decode(t, w, &sess)
	if sess.Phase != tutor.PhaseLearning {
		t.Errorf("phase = %q, want learning", sess.Phase)
	}
	if sess.MessageCount != 1 {
		t.Errorf("message_count = %d, want 1", sess.MessageCount)
	}
}

func TestCreateSession_UnknownSubject(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/sessions", map[string]string{"subject": "alchemy"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/sessions/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestChat_LearningTurn(t *testing.T) {
	r, provider := newTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/sessions", map[string]string{"subject": "math"})
	var created createSessionResponse
	decode(t, w, &created)

	provider.AddResponse(llm.MockResponse{Content: json.RawMessage("我们先从判别式讲起。")})

	w = doJSON(t, r, http.MethodPost, "/api/chat", map[string]string{
		"session_id": created.SessionID,
		"message":    "请给我讲讲一元二次方程",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}

	var got chatResponse
	decode(t, w, &got)
	if got.Phase != tutor.PhaseLearning {
		t.Errorf("phase = %q, want learning", got.Phase)
	}
	if !strings.Contains(got.ResponseText, "判别式") {
		t.Errorf("response = %q, want teaching text", got.ResponseText)
	}

	// Both sides of the exchange are in the log: welcome + user + assistant.
	w = doJSON(t, r, http.MethodGet, "/api/sessions/"+created.SessionID+"/messages", nil)
	var log struct {
		Messages []tutor.Message `json:"messages"`
	}
	decode(t, w, &log)
	if len(log.Messages) != 3 {
		t.Fatalf("len(messages) = %d, want 3", len(log.Messages))
	}
	if log.Messages[1].Role != tutor.RoleUser {
		t.Errorf("messages[1].Role = %q, want user", log.Messages[1].Role)
	}
}

func TestChat_StartsAssessment(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/sessions", map[string]string{"subject": "math"})
	var created createSessionResponse
	decode(t, w, &created)

	// Practice intent is served from the question bank, no LLM call needed.
	w = doJSON(t, r, http.MethodPost, "/api/chat", map[string]string{
		"session_id": created.SessionID,
		"message":    "给我出题",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}

	var got chatResponse
	decode(t, w, &got)
	if got.Phase != tutor.PhaseAssessing {
		t.Errorf("phase = %q, want assessing", got.Phase)
	}
	if !got.IsQuestionPrompt || got.LiveQuestion == nil {
		t.Error("expected a posed question")
	}
}

func TestChat_SessionNotFound(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/chat", map[string]string{
		"session_id": "nope",
		"message":    "hello",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestChat_MissingFields(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/chat", map[string]string{"message": "hello"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListSubjects(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/subjects", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got struct {
		Subjects []subjectInfo `json:"subjects"`
	}
	decode(t, w, &got)
	if len(got.Subjects) != 5 {
		t.Fatalf("len(subjects) = %d, want 5", len(got.Subjects))
	}

	var math subjectInfo
	for _, s := range got.Subjects {
		if s.ID == tutor.SubjectMath {
			math = s
		}
	}
	if math.Name != "数学" || math.Icon != "📐" {
		t.Errorf("math subject meta = %+v", math)
	}
	if math.QuestionCount == 0 || math.KnowledgeCount == 0 {
		t.Errorf("seeded math counts = %d/%d, want > 0", math.QuestionCount, math.KnowledgeCount)
	}
}

func TestListTopics(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/subjects/math/topics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got struct {
		Topics []tutor.Topic `json:"topics"`
	}
	decode(t, w, &got)
	if len(got.Topics) == 0 {
		t.Fatal("expected seeded topics")
	}

	w = doJSON(t, r, http.MethodGet, "/api/subjects/alchemy/topics", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown subject status = %d, want 400", w.Code)
	}
}

func TestListQuestions(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/questions?subject=math", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got struct {
		Questions []tutor.Question `json:"questions"`
		Count     int              `json:"count"`
	}
	decode(t, w, &got)
	if got.Count == 0 {
		t.Fatal("expected seeded questions")
	}

	// Transfer questions ride along, flagged.
	var transfer bool
	for _, q := range got.Questions {
		if q.Transfer {
			transfer = true
		}
	}
	if !transfer {
		t.Error("expected at least one transfer question in the listing")
	}

	w = doJSON(t, r, http.MethodGet, "/api/questions", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing subject status = %d, want 400", w.Code)
	}
}

func TestCreateQuestion(t *testing.T) {
	r, _ := newTestAPI(t)

	q := tutor.Question{
		ID:        "math-test-q1",
		Subject:   tutor.SubjectMath,
		TopicID:   "math-test",
		TopicName: "测试主题",
		Type:      tutor.TypeFill,
		Content:   "2 + 2 = ___",
		Answer:    "4",
	}
	w := doJSON(t, r, http.MethodPost, "/api/questions", q)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}

	w = doJSON(t, r, http.MethodGet, "/api/questions?subject=math&topic_id=math-test", nil)
	var got struct {
		Count int `json:"count"`
	}
	decode(t, w, &got)
	if got.Count != 1 {
		t.Errorf("count = %d, want 1", got.Count)
	}

	// Missing answer is rejected.
	w = doJSON(t, r, http.MethodPost, "/api/questions", tutor.Question{ID: "x", Subject: tutor.SubjectMath, Content: "?"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid question status = %d, want 400", w.Code)
	}
}

func TestCreateKnowledge(t *testing.T) {
	r, _ := newTestAPI(t)

	k := tutor.KnowledgeItem{
		ID:        "math-test-k1",
		Subject:   tutor.SubjectMath,
		TopicID:   "math-test",
		TopicName: "测试主题",
		Title:     "测试知识点",
		Content:   "这是测试内容。",
		KeyPoints: []string{"要点一"},
	}
	w := doJSON(t, r, http.MethodPost, "/api/knowledge", k)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}

	w = doJSON(t, r, http.MethodGet, "/api/knowledge?subject=math", nil)
	var got struct {
		Knowledge []tutor.KnowledgeItem `json:"knowledge"`
	}
	decode(t, w, &got)

	var found bool
	for _, item := range got.Knowledge {
		if item.ID == "math-test-k1" {
			found = true
		}
	}
	if !found {
		t.Error("created knowledge item not listed")
	}
}

func TestJSONHelpers(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusTeapot, map[string]string{"foo": "bar"})

	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	w = httptest.NewRecorder()
	Error(w, http.StatusBadRequest, "boom")
	var got map[string]string
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["error"] != "boom" {
		t.Errorf("error = %q, want boom", got["error"])
	}
}
