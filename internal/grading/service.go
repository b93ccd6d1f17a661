package grading

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/learnloop/learnloop/internal/llm"
	"github.com/learnloop/learnloop/internal/tutor"
)

const evaluateTimeout = 30 * time.Second

// Evaluator grades student answers against a question's reference answer.
type Evaluator struct {
	provider llm.Provider
}

// NewEvaluator creates an Evaluator backed by the given provider.
func NewEvaluator(provider llm.Provider) *Evaluator {
	return &Evaluator{provider: provider}
}

// Evaluate grades one answer. It never fails: when the model returns prose
// instead of a verdict the raw output is scanned for an embedded JSON block,
// and when no verdict can be salvaged a deterministic check takes over.
func (e *Evaluator) Evaluate(ctx context.Context, q tutor.Question, answer string) tutor.GradedAnswer {
	ctx = llm.WithPurpose(ctx, "grading")
	ctx, cancel := context.WithTimeout(ctx, evaluateTimeout)
	defer cancel()

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(q, answer)},
		},
		Schema:      resultSchema,
		MaxTokens:   1000,
		Temperature: 0.3,
	})
	if err == nil {
		var rr rawResult
		if jsonErr := json.Unmarshal(resp.Content, &rr); jsonErr == nil && rr.complete() {
			return rr.toVerdict()
		}
		return e.fallback(q, answer, resp.Content)
	}

	// Salvage a verdict from whatever raw output the error carries.
	raw := errContent(err)
	if len(raw) > 0 {
		if result, ok := scanResult(raw); ok {
			return result
		}
	}

	return e.fallback(q, answer, raw)
}

// fallback applies the deterministic check. Raw model output, when present
// and non-JSON prose, still reaches the student as feedback.
func (e *Evaluator) fallback(q tutor.Question, answer string, raw json.RawMessage) tutor.GradedAnswer {
	correct := simpleCheck(q, answer)
	grade := tutor.GradeC
	if correct {
		grade = tutor.GradeA
	}

	feedback := strings.TrimSpace(string(raw))
	if feedback == "" {
		feedback = Feedback(q, correct, grade)
	}

	return tutor.GradedAnswer{IsCorrect: correct, Grade: grade, Feedback: feedback}
}

// errContent extracts raw model output from provider errors that carry it.
func errContent(err error) json.RawMessage {
	var invErr *llm.ErrInvalidResponse
	if errors.As(err, &invErr) {
		return invErr.Content
	}
	var maxTok *llm.ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return maxTok.Content
	}
	return nil
}
