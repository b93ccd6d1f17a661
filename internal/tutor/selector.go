package tutor

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

var typeNames = map[QuestionType]string{
	TypeChoice:      "选择题",
	TypeJudgment:    "判断题",
	TypeQA:          "问答题",
	TypeFill:        "填空题",
	TypeApplication: "应用题",
}

// pickQuestion selects uniformly from a non-empty pool.
func pickQuestion(pool []Question) Question {
	return pool[rand.IntN(len(pool))]
}

// formatQuestion renders a question for display: type tag, star difficulty,
// content and any options in authored order.
func formatQuestion(q Question) string {
	name, ok := typeNames[q.Type]
	if !ok {
		name = "题目"
	}
	difficulty := q.Difficulty
	if difficulty < 1 {
		difficulty = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "【%s】难度：%s\n\n", name, strings.Repeat("⭐", difficulty))
	b.WriteString(q.Content)
	b.WriteString("\n")

	if len(q.Options) > 0 {
		b.WriteString("\n")
		for _, opt := range q.Options {
			b.WriteString(opt)
			b.WriteString("\n")
		}
	}

	return b.String()
}
