package teaching

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/learnloop/learnloop/internal/llm"
	"github.com/learnloop/learnloop/internal/tutor"
)

var mathKnowledge = []tutor.KnowledgeItem{
	{
		Title:          "一元二次方程的解法",
		TopicName:      "一元二次方程",
		Content:        "公式法：x = (-b ± √(b²-4ac)) / 2a",
		KeyPoints:      []string{"公式法是万能方法"},
		CommonMistakes: []string{"公式中符号错误"},
		IntuitionPumps: []string{"先看能否因式分解"},
	},
}

func TestTeach_BuildsPersonaAndHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("好的，我们先从判别式说起。")})
	s := NewService(mock)

	history := []tutor.Message{
		{Role: tutor.RoleUser, Content: "什么是判别式？"},
		{Role: tutor.RoleAssistant, Content: "判别式是 b²-4ac。"},
	}
	got := s.Teach(context.Background(), tutor.SubjectMath, mathKnowledge, history, "再讲讲根的情况")

	if got != "好的，我们先从判别式说起。" {
		t.Fatalf("unexpected response: %q", got)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.System, "数学") {
		t.Error("system prompt should name the subject")
	}
	if !strings.Contains(req.System, "一元二次方程的解法") {
		t.Error("system prompt should inline the knowledge base")
	}
	if len(req.Messages) != 3 {
		t.Fatalf("expected history + current message, got %d messages", len(req.Messages))
	}
	if req.Messages[2].Content != "再讲讲根的情况" {
		t.Errorf("last message should be the current turn, got %q", req.Messages[2].Content)
	}
}

func TestTeach_TrimsHistoryWindow(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("ok")})
	s := NewService(mock)

	var history []tutor.Message
	for i := 0; i < 25; i++ {
		history = append(history, tutor.Message{Role: tutor.RoleUser, Content: "问题"})
	}
	s.Teach(context.Background(), tutor.SubjectMath, nil, history, "现在呢")

	// 10 history entries plus the current turn.
	if got := len(mock.Calls[0].Messages); got != 11 {
		t.Fatalf("expected 11 messages, got %d", got)
	}
}

func TestTeach_DropsUnknownRoles(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("ok")})
	s := NewService(mock)

	history := []tutor.Message{
		{Role: tutor.RoleSystem, Content: "internal"},
		{Role: "garbage", Content: "junk"},
		{Role: tutor.RoleUser, Content: "你好"},
	}
	s.Teach(context.Background(), tutor.SubjectMath, nil, history, "继续")

	if got := len(mock.Calls[0].Messages); got != 2 {
		t.Fatalf("expected only user history + current turn, got %d messages", got)
	}
}

func TestTeach_ProviderDownDegrades(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	s := NewService(mock)

	got := s.Teach(context.Background(), tutor.SubjectMath, nil, nil, "你好")
	if !strings.Contains(got, "AI 服务暂时不可用") {
		t.Fatalf("expected degraded notice, got %q", got)
	}
}

func TestHintsFor_DoesNotLeakAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("【解题提示】\n提示1（思路引导）: 想想因式分解")})
	s := NewService(mock)

	q := tutor.Question{
		Type:    tutor.TypeChoice,
		Content: "方程 x² - 5x + 6 = 0 的解是？",
		Options: []string{"A. x=2 或 x=3", "B. x=-2 或 x=-3"},
		Answer:  "A",
	}
	got := s.HintsFor(context.Background(), tutor.SubjectMath, mathKnowledge, q)
	if !strings.Contains(got, "解题提示") {
		t.Fatalf("unexpected hints: %q", got)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "不能直接给出最终答案") {
		t.Error("hint prompt should forbid revealing the answer")
	}
	if !strings.Contains(prompt, q.Content) {
		t.Error("hint prompt should include the question")
	}
}

func TestRemediation_NamesTopicAndFailures(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("我们换个角度理解。")})
	s := NewService(mock)

	s.Remediation(context.Background(), tutor.SubjectMath, mathKnowledge, "一元二次方程", "", 3)

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "一元二次方程") {
		t.Error("remediation prompt should name the topic")
	}
	if !strings.Contains(prompt, "3次") {
		t.Error("remediation prompt should include the failure count")
	}
	if strings.Contains(prompt, "错误类型") {
		t.Error("prompt must not mention an error category when none was diagnosed")
	}
}

func TestRemediation_IncludesErrorCategory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("我们换个角度理解。")})
	s := NewService(mock)

	s.Remediation(context.Background(), tutor.SubjectMath, mathKnowledge, "一元二次方程", "概念理解错误", 3)

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "概念理解错误") {
		t.Error("remediation prompt should carry the diagnosed error category")
	}
}
