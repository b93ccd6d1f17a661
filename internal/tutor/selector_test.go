package tutor

import (
	"strings"
	"testing"
)

func TestFormatQuestion_ChoiceWithOptions(t *testing.T) {
	q := Question{
		Type:       TypeChoice,
		Difficulty: 3,
		Content:    "方程 x² - 5x + 6 = 0 的解是？",
		Options:    []string{"A. x=2 或 x=3", "B. x=-2 或 x=-3"},
	}

	got := formatQuestion(q)
	if !strings.Contains(got, "【选择题】") {
		t.Error("expected type tag")
	}
	if !strings.Contains(got, "⭐⭐⭐") {
		t.Error("expected three difficulty stars")
	}
	if strings.Contains(got, "⭐⭐⭐⭐") {
		t.Error("expected exactly three stars")
	}
	// Options must appear in authored order.
	a := strings.Index(got, "A. x=2")
	b := strings.Index(got, "B. x=-2")
	if a < 0 || b < 0 || a > b {
		t.Errorf("options missing or out of order:\n%s", got)
	}
}

func TestFormatQuestion_DefaultsDifficulty(t *testing.T) {
	got := formatQuestion(Question{Type: TypeQA, Content: "说说看法"})
	if !strings.Contains(got, "⭐") {
		t.Error("zero difficulty should render one star")
	}
	if !strings.Contains(got, "【问答题】") {
		t.Error("expected type tag")
	}
}

func TestFormatQuestion_UnknownType(t *testing.T) {
	got := formatQuestion(Question{Type: "essay", Difficulty: 1, Content: "写一篇作文"})
	if !strings.Contains(got, "【题目】") {
		t.Errorf("unknown type should fall back to generic tag:\n%s", got)
	}
}

func TestPickQuestion_CoversPool(t *testing.T) {
	pool := []Question{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[pickQuestion(pool).ID] = true
	}
	if len(seen) != len(pool) {
		t.Errorf("expected all pool members to be selectable, saw %d of %d", len(seen), len(pool))
	}
}
