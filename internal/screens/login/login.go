// Package login shows the mock user roster and records the selection
// as the persisted session.
package login

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/identity"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// LoginScreen is the entry screen: pick who you are.
type LoginScreen struct {
	session          *identity.Session
	menu             components.Menu
	dashboardFactory func() screen.Screen
	errMsg           string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen. Selecting a user logs them in and
// replaces this screen with the dashboard produced by dashboardFactory.
func New(session *identity.Session, dashboardFactory func() screen.Screen) *LoginScreen {
	s := &LoginScreen{
		session:          session,
		dashboardFactory: dashboardFactory,
	}

	items := make([]components.MenuItem, 0, len(identity.Users()))
	for _, u := range identity.Users() {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s  (%s)", u.Name, roleLabel(u.Role)),
			Action: s.loginAction(u.ID),
		})
	}
	s.menu = components.NewMenu(items)

	return s
}

func roleLabel(r quiz.Role) string {
	if r == quiz.RoleTeacher {
		return "Teacher"
	}
	return "Student"
}

func (s *LoginScreen) loginAction(userID string) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			if err := s.session.Login(context.Background(), userID); err != nil {
				return loginFailedMsg{err: err}
			}
			return router.ReplaceScreenMsg{Screen: s.dashboardFactory()}
		}
	}
}

type loginFailedMsg struct{ err error }

func (s *LoginScreen) Title() string {
	return "Sign In"
}

func (s *LoginScreen) Init() tea.Cmd {
	return nil
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Sign in"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if failed, ok := msg.(loginFailedMsg); ok {
		s.errMsg = failed.err.Error()
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LoginScreen) View(width, height int) string {
	title := theme.Title.Render("Who is using QuizDeck?")
	body := title + "\n\n" + s.menu.View()

	if s.errMsg != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
