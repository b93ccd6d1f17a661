// Package grading turns a student's free-form answer into a correctness
// verdict and a three-tier grade. It asks the LLM for a structured verdict
// and falls back to deterministic checks when the model misbehaves.
package grading

import "github.com/learnloop/learnloop/internal/tutor"

// rawResult is the wire form before grade normalization. IsCorrect is a
// pointer so a salvaged JSON block missing the field can be rejected.
type rawResult struct {
	IsCorrect             *bool  `json:"is_correct"`
	Grade                 string `json:"grade"`
	Feedback              string `json:"feedback"`
	Explanation           string `json:"explanation"`
	ErrorCategory         string `json:"error_category"`
	ErrorDescription      string `json:"error_description"`
	ImprovementSuggestion string `json:"improvement_suggestion"`
}

func (r rawResult) complete() bool {
	return r.IsCorrect != nil
}

func (r rawResult) toVerdict() tutor.GradedAnswer {
	out := tutor.GradedAnswer{
		Grade:                 tutor.NormalizeGrade(r.Grade),
		Feedback:              r.Feedback,
		Explanation:           r.Explanation,
		ErrorCategory:         r.ErrorCategory,
		ErrorDescription:      r.ErrorDescription,
		ImprovementSuggestion: r.ImprovementSuggestion,
	}
	if r.IsCorrect != nil {
		out.IsCorrect = *r.IsCorrect
	}
	if out.Feedback == "" {
		out.Feedback = "评估完成"
	}
	return out
}
