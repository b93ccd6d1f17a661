package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/learnloop/learnloop/internal/store"
)

// recordingEventRepo captures appended events in memory.
type recordingEventRepo struct {
	events []store.LLMRequestEventData
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func (r *recordingEventRepo) ListLLMRequests(_ context.Context, _ int) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func (r *recordingEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func TestLogging_RecordsBackendAndModel(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage("你好"),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	repo := &recordingEventRepo{}
	p := WithLogging(mock, repo, "anthropic")

	ctx := WithPurpose(context.Background(), "teaching")
	if _, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "anthropic" {
		t.Errorf("provider = %q, want the backend name", ev.Provider)
	}
	if ev.Model != "mock" {
		t.Errorf("model = %q, want the model id", ev.Model)
	}
	if ev.Purpose != "teaching" {
		t.Errorf("purpose = %q, want teaching", ev.Purpose)
	}
	if !ev.Success || ev.InputTokens != 12 || ev.OutputTokens != 7 {
		t.Errorf("event = %+v, want successful call with usage recorded", ev)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	repo := &recordingEventRepo{}
	p := WithLogging(mock, repo, "openai")

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error from provider")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("failed call must be recorded as unsuccessful")
	}
	if ev.ErrorMessage == "" {
		t.Error("failed call should carry the error message")
	}
	if ev.Provider != "openai" {
		t.Errorf("provider = %q, want openai", ev.Provider)
	}
}
