package grading

import (
	"strings"

	"github.com/learnloop/learnloop/internal/tutor"
)

var (
	affirmWords = []string{"正确", "对", "true", "yes", "√"}
	negateWords = []string{"错误", "错", "false", "no", "×"}
)

// simpleCheck is the deterministic last-resort grader used when no verdict
// could be obtained from the model.
func simpleCheck(q tutor.Question, answer string) bool {
	correct := strings.ToLower(strings.TrimSpace(q.Answer))
	student := strings.ToLower(strings.TrimSpace(answer))

	switch q.Type {
	case tutor.TypeChoice:
		if correct == "" || student == "" {
			return false
		}
		return strings.Contains(student, correct) || strings.Contains(correct, student)

	case tutor.TypeJudgment:
		if isAffirmative(correct) {
			return containsAnyOf(student, affirmWords)
		}
		return containsAnyOf(student, negateWords)
	}

	// Open-ended and fill-in answers pass when at least half of the
	// reference answer's tokens appear in the student's text.
	keywords := strings.Fields(correct)
	if len(keywords) == 0 {
		return false
	}
	matches := 0
	for _, k := range keywords {
		if strings.Contains(student, k) {
			matches++
		}
	}
	return float64(matches) >= float64(len(keywords))*0.5
}

// isAffirmative reports whether the reference answer itself is one of the
// affirmative markers. "不正确" must not count, so this is an exact match.
func isAffirmative(correct string) bool {
	for _, w := range affirmWords {
		if correct == w {
			return true
		}
	}
	return false
}

func containsAnyOf(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
