package grading

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/learnloop/learnloop/internal/llm"
	"github.com/learnloop/learnloop/internal/tutor"
)

func choiceQuestion() tutor.Question {
	return tutor.Question{
		ID:          "q1",
		Subject:     tutor.SubjectMath,
		TopicID:     "math_quadratic",
		Type:        tutor.TypeChoice,
		Difficulty:  2,
		Content:     "方程 x² - 5x + 6 = 0 的解是？",
		Options:     []string{"A. x=2 或 x=3", "B. x=-2 或 x=-3"},
		Answer:      "A",
		Explanation: "因式分解：(x-2)(x-3)=0",
	}
}

func judgmentQuestion(answer string) tutor.Question {
	return tutor.Question{
		ID:      "q2",
		Subject: tutor.SubjectChinese,
		Type:    tutor.TypeJudgment,
		Content: "这句话使用了拟人手法。",
		Answer:  answer,
	}
}

func TestEvaluate_StructuredVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":true,"grade":"A","feedback":"完全正确","explanation":"理解深刻"}`),
	})
	e := NewEvaluator(mock)

	result := e.Evaluate(context.Background(), choiceQuestion(), "A")
	if !result.IsCorrect {
		t.Error("expected correct verdict")
	}
	if result.Grade != tutor.GradeA {
		t.Errorf("grade = %q, want A", result.Grade)
	}
	if result.Feedback != "完全正确" {
		t.Errorf("feedback = %q", result.Feedback)
	}
}

func TestEvaluate_CarriesDiagnosticFields(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":false,"grade":"C","feedback":"再想想",` +
			`"error_category":"概念混淆","error_description":"把判别式符号记反了",` +
			`"improvement_suggestion":"先写出 b²-4ac 再代入"}`),
	})
	e := NewEvaluator(mock)

	result := e.Evaluate(context.Background(), choiceQuestion(), "B")
	if result.ErrorCategory != "概念混淆" {
		t.Errorf("error category = %q", result.ErrorCategory)
	}
	if result.ErrorDescription == "" || result.ImprovementSuggestion == "" {
		t.Errorf("diagnostic fields missing: %+v", result)
	}
}

func TestEvaluate_TagsPurpose(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":true,"grade":"B","feedback":"ok"}`),
	})
	e := NewEvaluator(mock)

	e.Evaluate(context.Background(), choiceQuestion(), "A")

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].Schema == nil {
		t.Error("expected structured output schema on the request")
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "方程 x² - 5x + 6 = 0") {
		t.Error("expected question content in the prompt")
	}
}

func TestEvaluate_GradeNormalizedToC(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":false,"grade":"D","feedback":"嗯"}`),
	})
	e := NewEvaluator(mock)

	result := e.Evaluate(context.Background(), choiceQuestion(), "B")
	if result.Grade != tutor.GradeC {
		t.Errorf("out-of-range grade should normalize to C, got %q", result.Grade)
	}
}

func TestEvaluate_SalvagesVerdictFromProse(t *testing.T) {
	raw := json.RawMessage("好的，我来评估。\n\n{\"is_correct\": false, \"grade\": \"C\", \"feedback\": \"答案不对\"}\n\n希望有帮助！")
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: raw, Err: errors.New("prose around JSON")},
	})
	e := NewEvaluator(mock)

	result := e.Evaluate(context.Background(), choiceQuestion(), "B")
	if result.IsCorrect {
		t.Error("expected incorrect verdict")
	}
	if result.Grade != tutor.GradeC {
		t.Errorf("grade = %q, want C", result.Grade)
	}
	if result.Feedback != "答案不对" {
		t.Errorf("feedback = %q", result.Feedback)
	}
}

func TestEvaluate_SkipsNonVerdictJSONBlocks(t *testing.T) {
	raw := json.RawMessage(`{"note":"thinking"} then the verdict {"is_correct":true,"grade":"B","feedback":"不错"}`)
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: raw, Err: errors.New("prose")},
	})
	e := NewEvaluator(mock)

	result := e.Evaluate(context.Background(), choiceQuestion(), "A")
	if !result.IsCorrect || result.Grade != tutor.GradeB {
		t.Errorf("expected salvaged B verdict, got %+v", result)
	}
}

func TestEvaluate_FallbackChoiceBidirectional(t *testing.T) {
	e := NewEvaluator(llm.NewMockProvider()) // empty queue: provider unavailable

	// Student wrote the full option text containing the answer letter.
	result := e.Evaluate(context.Background(), choiceQuestion(), "我选a")
	if !result.IsCorrect {
		t.Error("expected substring match to count as correct")
	}
	if result.Grade != tutor.GradeA {
		t.Errorf("fallback correct grade = %q, want A", result.Grade)
	}

	result = e.Evaluate(context.Background(), choiceQuestion(), "选B")
	if result.IsCorrect {
		t.Error("expected wrong choice to be incorrect")
	}
	if result.Grade != tutor.GradeC {
		t.Errorf("fallback incorrect grade = %q, want C", result.Grade)
	}
}

func TestEvaluate_FallbackJudgment(t *testing.T) {
	e := NewEvaluator(llm.NewMockProvider())

	tests := []struct {
		name    string
		q       tutor.Question
		answer  string
		correct bool
	}{
		{"affirmative reference matched", judgmentQuestion("正确"), "我觉得是对的", true},
		{"affirmative reference english", judgmentQuestion("正确"), "yes", true},
		{"affirmative reference missed", judgmentQuestion("正确"), "错误", false},
		{"negative reference matched", judgmentQuestion("错误"), "这是错的", true},
		{"negative reference missed", judgmentQuestion("错误"), "正确", false},
		{"unrelated text incorrect", judgmentQuestion("错误"), "不知道呢", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.Evaluate(context.Background(), tt.q, tt.answer)
			if result.IsCorrect != tt.correct {
				t.Errorf("IsCorrect = %v, want %v", result.IsCorrect, tt.correct)
			}
		})
	}
}

func TestEvaluate_FallbackKeywordCoverage(t *testing.T) {
	e := NewEvaluator(llm.NewMockProvider())
	q := tutor.Question{
		Type:    tutor.TypeFill,
		Content: "While I ____(read) a book, my phone ____(ring).",
		Answer:  "was reading, rang",
	}

	// Two of three tokens present: 2 >= 3*0.5.
	result := e.Evaluate(context.Background(), q, "was reading, ringed")
	if !result.IsCorrect {
		t.Error("expected half keyword coverage to pass")
	}

	result = e.Evaluate(context.Background(), q, "no idea")
	if result.IsCorrect {
		t.Error("expected zero coverage to fail")
	}
}

func TestEvaluate_FallbackEmptyReferenceIncorrect(t *testing.T) {
	e := NewEvaluator(llm.NewMockProvider())
	q := tutor.Question{Type: tutor.TypeQA, Content: "说说看法", Answer: "   "}

	result := e.Evaluate(context.Background(), q, "任何回答")
	if result.IsCorrect {
		t.Error("expected empty reference answer to grade incorrect")
	}
}

func TestEvaluate_FallbackUsesRawOutputAsFeedback(t *testing.T) {
	raw := json.RawMessage("这道题你答错了，再想想判别式。")
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: raw, Err: errors.New("no JSON at all")},
	})
	e := NewEvaluator(mock)

	result := e.Evaluate(context.Background(), choiceQuestion(), "B")
	if result.Feedback != string(raw) {
		t.Errorf("feedback = %q, want raw model output", result.Feedback)
	}
}

func TestFeedback_Canned(t *testing.T) {
	q := choiceQuestion()

	if fb := Feedback(q, true, tutor.GradeA); !strings.Contains(fb, "解析") {
		t.Errorf("A feedback missing explanation: %q", fb)
	}
	if fb := Feedback(q, true, tutor.GradeB); !strings.Contains(fb, "答对了") {
		t.Errorf("unexpected B feedback: %q", fb)
	}
	fb := Feedback(q, false, tutor.GradeC)
	if !strings.Contains(fb, q.Answer) || !strings.Contains(fb, q.Explanation) {
		t.Errorf("incorrect feedback should include answer and explanation: %q", fb)
	}
}

func TestScanResult_NoJSON(t *testing.T) {
	if _, ok := scanResult([]byte("没有任何结构化内容")); ok {
		t.Error("expected no verdict in plain prose")
	}
}

func TestScanResult_BracesInsideStrings(t *testing.T) {
	raw := []byte(`{"feedback":"用 {配方法} 试试","is_correct":false,"grade":"C"}`)
	result, ok := scanResult(raw)
	if !ok {
		t.Fatal("expected verdict")
	}
	if result.Feedback != "用 {配方法} 试试" {
		t.Errorf("feedback = %q", result.Feedback)
	}
}
