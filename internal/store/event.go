package store

import (
	"context"
	"fmt"
	"time"

	"github.com/learnloop/learnloop/ent"
	"github.com/learnloop/learnloop/ent/llmrequestevent"
)

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored event with its assigned ID and timestamp.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates token usage for one request purpose.
type PurposeUsage struct {
	Purpose      string `json:"purpose"`
	Calls        int    `json:"count"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// EventRepo records and reports on LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns the most recent events, newest first.
	ListLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates calls and token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
}

type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) ListLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldTimestamp), ent.Desc(llmrequestevent.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list LLM request events: %w", err)
	}

	out := make([]LLMRequestEvent, len(rows))
	for i, row := range rows {
		out[i] = LLMRequestEvent{
			ID:        row.ID,
			Timestamp: row.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     row.Provider,
				Model:        row.Model,
				Purpose:      row.Purpose,
				InputTokens:  row.InputTokens,
				OutputTokens: row.OutputTokens,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
			},
		}
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	var rows []PurposeUsage
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.Count(),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage: %w", err)
	}
	return rows, nil
}
