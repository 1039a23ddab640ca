package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	dashsvc "github.com/quizdeck/quizdeck/internal/dashboard"
	"github.com/quizdeck/quizdeck/internal/identity"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/quizgen"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/dashboard"
	"github.com/quizdeck/quizdeck/internal/screens/editor"
	"github.com/quizdeck/quizdeck/internal/screens/login"
	"github.com/quizdeck/quizdeck/internal/screens/results"
	"github.com/quizdeck/quizdeck/internal/screens/taking"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
)

// Options carries everything the TUI needs.
type Options struct {
	Quizzes  store.QuizRepo
	Attempts store.AttemptRepo
	Session  *identity.Session

	// Generator is nil when no LLM provider is configured; the editor
	// then disables AI generation.
	Generator quizgen.Generator
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel starting on the login screen, or on
// the dashboard when a persisted session survives restarts.
func newAppModel(opts Options) AppModel {
	m := AppModel{opts: opts}

	var initial screen.Screen
	if opts.Session.Current() != nil {
		initial = m.dashboardScreen()
	} else {
		initial = m.loginScreen()
	}

	m.router = router.New(initial)
	return m
}

// Screen factories. They are mutually recursive (the dashboard links to
// the editor, which links back), so screens receive them as closures.

func (m AppModel) loginScreen() screen.Screen {
	return login.New(m.opts.Session, m.dashboardScreen)
}

func (m AppModel) dashboardScreen() screen.Screen {
	svc := dashsvc.New(m.opts.Quizzes, m.opts.Attempts)
	return dashboard.New(svc, m.opts.Session, dashboard.Factories{
		Login:   m.loginScreen,
		Editor:  m.editorScreen,
		Taking:  m.takingScreen,
		Results: m.resultsScreen,
		Refresh: m.dashboardScreen,
	})
}

func (m AppModel) editorScreen(existing *quiz.Quiz) screen.Screen {
	createdBy := ""
	if u := m.opts.Session.Current(); u != nil {
		createdBy = u.ID
	}
	return editor.New(existing, createdBy, m.opts.Quizzes, m.opts.Generator, m.dashboardScreen)
}

func (m AppModel) takingScreen(quizID string) screen.Screen {
	studentID := ""
	if u := m.opts.Session.Current(); u != nil {
		studentID = u.ID
	}
	return taking.New(quizID, studentID, m.opts.Quizzes, m.opts.Attempts,
		m.dashboardScreen, m.resultsScreen)
}

func (m AppModel) resultsScreen(attemptID string) screen.Screen {
	return results.New(attemptID, m.opts.Quizzes, m.opts.Attempts, m.dashboardScreen)
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	user := ""
	if u := m.opts.Session.Current(); u != nil {
		role := "Student"
		if u.Role == quiz.RoleTeacher {
			role = "Teacher"
		}
		user = fmt.Sprintf("%s · %s", u.Name, role)
	}

	header := layout.RenderHeader(title, user, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(provider.KeyHints(), footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
