package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/learnloop/learnloop/internal/tutor"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionCreateLoadSave(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	sess, err := repo.Create(ctx, "student-1", tutor.SubjectMath)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("expected session ID to be assigned")
	}
	if sess.Phase != tutor.PhaseLearning {
		t.Fatalf("new session phase = %q, want learning", sess.Phase)
	}
	if sess.Grade != tutor.GradeC {
		t.Fatalf("new session grade = %q, want C", sess.Grade)
	}

	sess.Phase = tutor.PhaseAssessing
	sess.Grade = tutor.GradeB
	sess.TopicID = "math_quadratic"
	sess.ConsecutiveFailures = 2
	sess.Messages = []tutor.Message{
		{Role: tutor.RoleUser, Content: "出题"},
		{Role: tutor.RoleAssistant, Content: "来做一道题"},
	}
	if err := repo.Save(ctx, sess); err != nil {
		t.Fatalf("save session: %v", err)
	}

	loaded, err := repo.Load(ctx, sess.ID)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if loaded.Phase != tutor.PhaseAssessing {
		t.Errorf("phase = %q, want assessing", loaded.Phase)
	}
	if loaded.Grade != tutor.GradeB {
		t.Errorf("grade = %q, want B", loaded.Grade)
	}
	if loaded.TopicID != "math_quadratic" {
		t.Errorf("topic = %q, want math_quadratic", loaded.TopicID)
	}
	if loaded.ConsecutiveFailures != 2 {
		t.Errorf("failures = %d, want 2", loaded.ConsecutiveFailures)
	}
	if len(loaded.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(loaded.Messages))
	}
	if loaded.Messages[0].Role != tutor.RoleUser || loaded.Messages[0].Content != "出题" {
		t.Errorf("unexpected first message: %+v", loaded.Messages[0])
	}
}

func TestSessionCreateDefaultsStudent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sess, err := s.Sessions().Create(ctx, "", tutor.SubjectEnglish)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if sess.StudentID != "default_student" {
		t.Fatalf("student = %q, want default_student", sess.StudentID)
	}
}

func TestSessionLoadMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Sessions().Load(context.Background(), "no-such-id")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got: %v", err)
	}
}

func TestSessionSaveMissing(t *testing.T) {
	s := openTestStore(t)

	err := s.Sessions().Save(context.Background(), &tutor.Session{ID: "no-such-id"})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got: %v", err)
	}
}

func TestSeedIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := Seed(ctx, s); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	n1, err := s.Content().CountQuestions(ctx)
	if err != nil {
		t.Fatalf("count questions: %v", err)
	}
	if n1 == 0 {
		t.Fatal("expected seeded questions")
	}

	if err := Seed(ctx, s); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	n2, err := s.Content().CountQuestions(ctx)
	if err != nil {
		t.Fatalf("count questions: %v", err)
	}
	if n2 != n1 {
		t.Fatalf("second seed changed question count: %d -> %d", n1, n2)
	}
}

func TestContentQueriesSeparateTransfer(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := Seed(ctx, s); err != nil {
		t.Fatalf("seed: %v", err)
	}
	content := s.Content()

	regular, err := content.QuestionsByTopic(ctx, tutor.SubjectMath, "math_quadratic")
	if err != nil {
		t.Fatalf("questions by topic: %v", err)
	}
	if len(regular) == 0 {
		t.Fatal("expected regular questions for math_quadratic")
	}
	for _, q := range regular {
		if q.Transfer {
			t.Errorf("transfer question %s leaked into regular pool", q.ID)
		}
	}

	transfer, err := content.TransferQuestions(ctx, tutor.SubjectMath, "math_quadratic")
	if err != nil {
		t.Fatalf("transfer questions: %v", err)
	}
	if len(transfer) == 0 {
		t.Fatal("expected transfer questions for math_quadratic")
	}
	for _, q := range transfer {
		if !q.Transfer {
			t.Errorf("regular question %s leaked into transfer pool", q.ID)
		}
	}
}

func TestTopicsBySubject(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := Seed(ctx, s); err != nil {
		t.Fatalf("seed: %v", err)
	}

	topics, err := s.Content().TopicsBySubject(ctx, tutor.SubjectChinese)
	if err != nil {
		t.Fatalf("topics by subject: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("expected 2 chinese topics, got %d", len(topics))
	}

	seen := make(map[string]bool)
	for _, topic := range topics {
		if topic.Name == "" {
			t.Errorf("topic %s has empty name", topic.ID)
		}
		if seen[topic.ID] {
			t.Errorf("duplicate topic %s", topic.ID)
		}
		seen[topic.ID] = true
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Events().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "grading",
		InputTokens:  100,
		OutputTokens: 50,
		LatencyMs:    12,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	n, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count events: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 event, got %d", n)
	}
}

func TestListLLMRequests(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	for _, purpose := range []string{"teaching", "grading", "hints"} {
		err := events.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: purpose,
			InputTokens: 10, OutputTokens: 5, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	listed, err := events.ListLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 events with limit 2, got %d", len(listed))
	}
	// Newest first.
	if listed[0].Purpose != "hints" {
		t.Errorf("first listed purpose = %q, want hints", listed[0].Purpose)
	}

	all, err := events.ListLLMRequests(ctx, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	for i := 0; i < 2; i++ {
		err := events.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "grading",
			InputTokens: 100, OutputTokens: 40, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := events.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("expected 1 purpose row, got %d", len(usage))
	}
	u := usage[0]
	if u.Purpose != "grading" || u.Calls != 2 {
		t.Errorf("usage row = %+v, want 2 grading calls", u)
	}
	if u.InputTokens != 200 || u.OutputTokens != 80 {
		t.Errorf("token sums = %d/%d, want 200/80", u.InputTokens, u.OutputTokens)
	}
}
