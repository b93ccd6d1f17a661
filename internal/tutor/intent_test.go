package tutor

import "testing"

func TestWantsPractice(t *testing.T) {
	c := NewIntentClassifier()

	tests := []struct {
		message string
		want    bool
	}{
		{"我想做题", true},
		{"给我出题吧", true},
		{"考考我", true},
		{"let's do a QUIZ", true},
		{"I want more practice", true},
		{"请给我讲讲函数", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := c.WantsPractice(tt.message); got != tt.want {
			t.Errorf("WantsPractice(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestWantsHint(t *testing.T) {
	c := NewIntentClassifier()

	tests := []struct {
		message string
		want    bool
	}{
		{"给我提示", true},
		{"来点提示吧", true},
		{"我不会", true},
		{"有什么思路吗", true},
		{"这题怎么做", true},
		{"give me a HINT", true},
		{"I'm stuck", true},
		{"how do I solve this", true},
		{"答案是A", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := c.WantsHint(tt.message); got != tt.want {
			t.Errorf("WantsHint(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestCustomKeywords(t *testing.T) {
	c := NewIntentClassifierWithKeywords([]string{"üben"}, []string{"tipp"})
	if !c.WantsPractice("ich will üben") {
		t.Error("custom practice keyword not matched")
	}
	if !c.WantsHint("gib mir einen Tipp") {
		t.Error("custom hint keyword not matched (case-insensitive)")
	}
	if c.WantsPractice("quiz") {
		t.Error("default keywords must not apply with custom sets")
	}
}
