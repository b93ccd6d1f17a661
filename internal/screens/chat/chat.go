// Package chat renders the tutoring conversation for one subject.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnloop/learnloop/internal/screen"
	"github.com/learnloop/learnloop/internal/tutor"
	"github.com/learnloop/learnloop/internal/ui/components"
	"github.com/learnloop/learnloop/internal/ui/layout"
	"github.com/learnloop/learnloop/internal/ui/theme"
)

// turnTimeout bounds one round trip through the orchestrator, including the
// LLM call behind it.
const turnTimeout = 90 * time.Second

// SessionStarter creates and persists sessions.
type SessionStarter interface {
	Create(ctx context.Context, studentID string, subject tutor.Subject) (*tutor.Session, error)
	Save(ctx context.Context, s *tutor.Session) error
}

type sessionStartedMsg struct {
	sessionID string
	welcome   string
}

type turnDoneMsg struct {
	result *tutor.TurnResult
}

type turnFailedMsg struct {
	err error
}

// phaseLabels maps phases to the badge shown in the header.
var phaseLabels = map[tutor.Phase]string{
	tutor.PhaseLearning:     "学习中",
	tutor.PhaseAssessing:    "练习中",
	tutor.PhaseTransferTest: "迁移测试",
	tutor.PhaseRemediation:  "巩固中",
	tutor.PhaseMastered:     "已掌握",
}

// ChatScreen is the conversation view for one tutoring session.
type ChatScreen struct {
	sessions  SessionStarter
	orch      *tutor.Orchestrator
	studentID string
	subject   tutor.Subject

	sessionID  string
	transcript []tutor.Message
	input      components.ChatInput
	thinking   bool
	phase      tutor.Phase
	grade      tutor.Grade
	err        error
}

// New creates a chat screen. The session itself is created on Init.
func New(sessions SessionStarter, orch *tutor.Orchestrator, studentID string, subject tutor.Subject) *ChatScreen {
	return &ChatScreen{
		sessions:  sessions,
		orch:      orch,
		studentID: studentID,
		subject:   subject,
		input:     components.NewChatInput("输入消息，回车发送"),
		phase:     tutor.PhaseLearning,
		grade:     tutor.GradeC,
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return tea.Batch(c.input.Init(), c.startSession())
}

func (c *ChatScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
		defer cancel()

		sess, err := c.sessions.Create(ctx, c.studentID, c.subject)
		if err != nil {
			return turnFailedMsg{err: err}
		}

		welcome := c.orch.WelcomeMessage(ctx, c.subject)
		sess.Messages = append(sess.Messages, tutor.Message{Role: tutor.RoleAssistant, Content: welcome})
		if err := c.sessions.Save(ctx, sess); err != nil {
			return turnFailedMsg{err: err}
		}

		return sessionStartedMsg{sessionID: sess.ID, welcome: welcome}
	}
}

func (c *ChatScreen) sendMessage(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
		defer cancel()

		result, err := c.orch.HandleTurn(ctx, c.sessionID, text)
		if err != nil {
			return turnFailedMsg{err: err}
		}
		return turnDoneMsg{result: result}
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		c.sessionID = msg.sessionID
		c.transcript = append(c.transcript, tutor.Message{Role: tutor.RoleAssistant, Content: msg.welcome})
		return c, nil

	case turnDoneMsg:
		c.thinking = false
		c.err = nil
		c.transcript = append(c.transcript, tutor.Message{Role: tutor.RoleAssistant, Content: msg.result.ResponseText})
		c.phase = msg.result.Phase
		c.grade = msg.result.Grade
		return c, nil

	case turnFailedMsg:
		c.thinking = false
		c.err = msg.err
		return c, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			text := strings.TrimSpace(c.input.Value())
			if text == "" || c.thinking || c.sessionID == "" {
				return c, nil
			}
			c.transcript = append(c.transcript, tutor.Message{Role: tutor.RoleUser, Content: text})
			c.input.Reset()
			c.thinking = true
			c.err = nil
			return c, c.sendMessage(text)
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) View(width, height int) string {
	textWidth := width - 4
	if textWidth < 10 {
		textWidth = 10
	}

	wrap := lipgloss.NewStyle().Width(textWidth)

	var lines []string
	for _, m := range c.transcript {
		label := theme.TutorLabel.Render("导师")
		if m.Role == tutor.RoleUser {
			label = theme.StudentLabel.Render("你")
		}
		block := label + "\n" + wrap.Render(m.Content)
		lines = append(lines, strings.Split(block, "\n")...)
		lines = append(lines, "")
	}

	if c.thinking {
		lines = append(lines, theme.Hint.Render("⏳ 导师思考中..."))
	}
	if c.err != nil {
		lines = append(lines, theme.Incorrect.Render(fmt.Sprintf("出错了：%v", c.err)))
	}

	// Keep the tail of the transcript, the composer takes the last two rows.
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	transcript := strings.Join(lines, "\n")
	composer := theme.Body.Render("> ") + c.input.View()

	gap := height - lipgloss.Height(transcript) - lipgloss.Height(composer)
	if gap < 0 {
		gap = 0
	}

	return transcript + strings.Repeat("\n", gap+1) + composer
}

func (c *ChatScreen) Title() string {
	return c.subject.DisplayName()
}

// Status renders the phase badge for the header.
func (c *ChatScreen) Status() string {
	label, ok := phaseLabels[c.phase]
	if !ok {
		label = string(c.phase)
	}
	return fmt.Sprintf("%s · %s", label, c.grade)
}

// KeyHints provides the footer hints.
func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "发送"},
		{Key: "Esc", Description: "返回"},
		{Key: "Ctrl+C", Description: "退出"},
	}
}
