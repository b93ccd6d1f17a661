package grading

import "github.com/learnloop/learnloop/internal/llm"

// resultSchema constrains the model to the evaluation verdict shape.
var resultSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Verdict for a student's answer to one question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer is substantively correct",
			},
			"grade": map[string]any{
				"type":        "string",
				"enum":        []any{"A", "B", "C"},
				"description": "A: correct with deep understanding; B: basically correct; C: needs relearning",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Encouraging feedback for the student, in the student's language",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why this grade was given",
			},
			"error_category": map[string]any{
				"type":        "string",
				"description": "For wrong answers: the kind of mistake, e.g. concept confusion, calculation slip, incomplete answer",
			},
			"error_description": map[string]any{
				"type":        "string",
				"description": "For wrong answers: what exactly went wrong",
			},
			"improvement_suggestion": map[string]any{
				"type":        "string",
				"description": "For wrong answers: one concrete thing to try next",
			},
		},
		"required": []any{"is_correct", "grade", "feedback"},
	},
}
