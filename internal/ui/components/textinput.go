package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// ChatInput wraps bubbles/textinput as the message composer.
type ChatInput struct {
	Model textinput.Model
}

// NewChatInput creates a focused single-line input.
func NewChatInput(placeholder string) ChatInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 500
	ti.Focus()
	return ChatInput{Model: ti}
}

// Init returns the initial command.
func (c ChatInput) Init() tea.Cmd {
	return c.Model.Focus()
}

// Update handles messages.
func (c ChatInput) Update(msg tea.Msg) (ChatInput, tea.Cmd) {
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the input.
func (c ChatInput) View() string {
	return c.Model.View()
}

// Value returns the current input value.
func (c ChatInput) Value() string {
	return c.Model.Value()
}

// Reset clears the input after a message is sent.
func (c *ChatInput) Reset() {
	c.Model.SetValue("")
}
