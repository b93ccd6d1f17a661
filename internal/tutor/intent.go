package tutor

import "strings"

// IntentClassifier detects the two conversational intents the state machine
// branches on. Detection is literal keyword matching over the lowercased
// message; the keyword lists are injectable so they can be swapped or
// localized without touching phase-handler logic.
type IntentClassifier struct {
	practiceKeywords []string
	hintKeywords     []string
}

// NewIntentClassifier returns a classifier with the default bilingual keyword sets.
func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{
		practiceKeywords: []string{
			"练习", "做题", "测试", "出题", "考考我",
			"quiz", "test", "practice",
		},
		hintKeywords: []string{
			"给我提示", "提示", "给点提示", "来点提示", "不会", "思路", "怎么做",
			"hint", "stuck", "how do i",
		},
	}
}

// NewIntentClassifierWithKeywords builds a classifier from custom keyword sets.
func NewIntentClassifierWithKeywords(practice, hint []string) *IntentClassifier {
	return &IntentClassifier{practiceKeywords: practice, hintKeywords: hint}
}

// WantsPractice reports whether the message asks to start practicing.
func (c *IntentClassifier) WantsPractice(message string) bool {
	return containsAny(message, c.practiceKeywords)
}

// WantsHint reports whether the message asks for help with the live question.
// In the assessing and transfer-test phases this takes precedence over
// grading: hint requests are never passed to the grading interpreter.
func (c *IntentClassifier) WantsHint(message string) bool {
	return containsAny(message, c.hintKeywords)
}

func containsAny(message string, keywords []string) bool {
	m := strings.ToLower(message)
	for _, k := range keywords {
		if strings.Contains(m, k) {
			return true
		}
	}
	return false
}
