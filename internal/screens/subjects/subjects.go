// Package subjects is the entry screen: pick a subject to start a session.
package subjects

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnloop/learnloop/internal/router"
	"github.com/learnloop/learnloop/internal/screen"
	"github.com/learnloop/learnloop/internal/screens/chat"
	"github.com/learnloop/learnloop/internal/tutor"
	"github.com/learnloop/learnloop/internal/ui/components"
	"github.com/learnloop/learnloop/internal/ui/theme"
)

var subjectIcons = map[tutor.Subject]string{
	tutor.SubjectChinese:  "📖",
	tutor.SubjectMath:     "📐",
	tutor.SubjectEnglish:  "🌍",
	tutor.SubjectHistory:  "🏛️",
	tutor.SubjectPolitics: "⚖️",
}

// SubjectsScreen lets the student choose which subject to study.
type SubjectsScreen struct {
	menu components.Menu
}

// New creates the subject picker.
func New(sessions chat.SessionStarter, orch *tutor.Orchestrator, studentID string) *SubjectsScreen {
	items := make([]components.MenuItem, 0, len(tutor.AllSubjects()))
	for _, s := range tutor.AllSubjects() {
		subj := s
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s  %s", subjectIcons[subj], subj.DisplayName()),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: chat.New(sessions, orch, studentID, subj),
					}
				}
			},
		})
	}

	return &SubjectsScreen{menu: components.NewMenu(items)}
}

func (s *SubjectsScreen) Init() tea.Cmd {
	return nil
}

func (s *SubjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SubjectsScreen) View(width, height int) string {
	title := theme.Title.Render("今天想学什么？")
	hint := theme.Hint.Render("↑↓ 选择科目，回车开始")

	card := theme.Card.Render(title + "\n\n" + s.menu.View() + "\n" + hint)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *SubjectsScreen) Title() string {
	return "选择科目"
}
