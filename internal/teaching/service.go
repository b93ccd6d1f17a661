// Package teaching generates tutoring prose: explanations, tiered hints and
// remediation content. Every call degrades to a friendly notice when the
// provider is unreachable, so a broken API key never breaks the session.
package teaching

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/learnloop/learnloop/internal/llm"
	"github.com/learnloop/learnloop/internal/tutor"
)

const (
	generateTimeout = 60 * time.Second
	maxTokens       = 2000
	temperature     = 0.7

	// historyWindow bounds how much conversation is replayed to the model.
	historyWindow = 10
)

// Service generates teaching content through an LLM provider.
type Service struct {
	provider llm.Provider
}

// NewService creates a teaching Service.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Teach answers a student message in the subject's tutor persona, replaying
// the most recent conversation turns for continuity.
func (s *Service) Teach(ctx context.Context, subject tutor.Subject, knowledge []tutor.KnowledgeItem, history []tutor.Message, userMessage string) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	msgs := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		role, ok := mapRole(m.Role)
		if !ok {
			continue
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Content})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: userMessage})

	return s.generate(llm.WithPurpose(ctx, "teaching"), systemPrompt(subject, knowledge), msgs)
}

// HintsFor produces three tiers of hints for the live question without
// revealing the answer.
func (s *Service) HintsFor(ctx context.Context, subject tutor.Subject, knowledge []tutor.KnowledgeItem, q tutor.Question) string {
	msgs := []llm.Message{{Role: llm.RoleUser, Content: hintPrompt(q)}}
	return s.generate(llm.WithPurpose(ctx, "hints"), systemPrompt(subject, knowledge), msgs)
}

// Remediation re-explains a topic with a simpler strategy after the student
// has failed repeatedly. errorCategory, when the grader supplied one, steers
// the new explanation toward the diagnosed weakness; it may be empty.
func (s *Service) Remediation(ctx context.Context, subject tutor.Subject, knowledge []tutor.KnowledgeItem, topicName, errorCategory string, failures int) string {
	msgs := []llm.Message{{Role: llm.RoleUser, Content: remediationPrompt(topicName, errorCategory, failures)}}
	return s.generate(llm.WithPurpose(ctx, "remediation"), systemPrompt(subject, knowledge), msgs)
}

func (s *Service) generate(ctx context.Context, system string, msgs []llm.Message) string {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    msgs,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return fmt.Sprintf("AI 服务暂时不可用，请检查配置。错误信息：%s", err)
	}

	return strings.TrimSpace(string(resp.Content))
}

func mapRole(r tutor.Role) (llm.Role, bool) {
	switch r {
	case tutor.RoleUser:
		return llm.RoleUser, true
	case tutor.RoleAssistant:
		return llm.RoleAssistant, true
	default:
		// System entries in the log are dropped, the persona prompt
		// already covers them.
		return "", false
	}
}
