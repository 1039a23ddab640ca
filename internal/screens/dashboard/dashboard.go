// Package dashboard renders the role-specific home screen: teachers
// manage quizzes, students pick one to take or review.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	dashsvc "github.com/quizdeck/quizdeck/internal/dashboard"
	"github.com/quizdeck/quizdeck/internal/identity"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// Factories produce the screens the dashboard can navigate to. The app
// wires them up so screen packages stay decoupled from each other.
type Factories struct {
	Login   func() screen.Screen
	Editor  func(existing *quiz.Quiz) screen.Screen // nil for a new quiz
	Taking  func(quizID string) screen.Screen
	Results func(attemptID string) screen.Screen
	Refresh func() screen.Screen // a fresh dashboard
}

type loadedMsg struct {
	teacher []dashsvc.TeacherQuiz
	student *dashsvc.StudentView
	err     error
}

type deletedMsg struct{ err error }

// DashboardScreen is the home screen after login.
type DashboardScreen struct {
	svc       *dashsvc.Service
	session   *identity.Session
	user      quiz.User
	factories Factories

	teacher []dashsvc.TeacherQuiz
	student *dashsvc.StudentView

	selected      int
	loaded        bool
	errMsg        string
	confirmDelete bool
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen for the logged-in user.
func New(svc *dashsvc.Service, session *identity.Session, factories Factories) *DashboardScreen {
	user := quiz.User{}
	if u := session.Current(); u != nil {
		user = *u
	}
	return &DashboardScreen{
		svc:       svc,
		session:   session,
		user:      user,
		factories: factories,
	}
}

func (s *DashboardScreen) Title() string {
	if s.user.Role == quiz.RoleTeacher {
		return "Teacher Dashboard"
	}
	return "Student Dashboard"
}

func (s *DashboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if s.user.Role == quiz.RoleTeacher {
			rows, err := s.svc.TeacherView(ctx, s.user.ID)
			return loadedMsg{teacher: rows, err: err}
		}
		view, err := s.svc.StudentView(ctx, s.user.ID)
		return loadedMsg{student: view, err: err}
	}
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	if s.confirmDelete {
		return []layout.KeyHint{
			{Key: "y", Description: "Delete"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.user.Role == quiz.RoleTeacher {
		return []layout.KeyHint{
			{Key: "n", Description: "New quiz"},
			{Key: "e", Description: "Edit"},
			{Key: "d", Description: "Delete"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "l", Description: "Log out"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "l", Description: "Log out"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.teacher = msg.teacher
			s.student = msg.student
		}
		s.loaded = true
		s.clampSelection()
		return s, nil

	case deletedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: s.factories.Refresh()}
		}

	case tea.KeyMsg:
		if s.confirmDelete {
			return s.updateConfirm(msg)
		}
		return s.updateKeys(msg)
	}
	return s, nil
}

func (s *DashboardScreen) updateConfirm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y":
		s.confirmDelete = false
		row, ok := s.selectedTeacherRow()
		if !ok {
			return s, nil
		}
		quizID := row.Quiz.ID
		return s, func() tea.Msg {
			return deletedMsg{err: s.svc.DeleteQuiz(context.Background(), quizID)}
		}
	case "esc", "n":
		s.confirmDelete = false
	}
	return s, nil
}

func (s *DashboardScreen) updateKeys(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < s.rowCount()-1 {
			s.selected++
		}
	case "l":
		return s, func() tea.Msg {
			if err := s.session.Logout(context.Background()); err != nil {
				return loadedMsg{err: err}
			}
			return router.ReplaceScreenMsg{Screen: s.factories.Login()}
		}
	}

	if s.user.Role == quiz.RoleTeacher {
		return s.updateTeacherKeys(msg)
	}
	return s.updateStudentKeys(msg)
}

func (s *DashboardScreen) updateTeacherKeys(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "n":
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: s.factories.Editor(nil)}
		}
	case "e":
		row, ok := s.selectedTeacherRow()
		if !ok {
			return s, nil
		}
		q := row.Quiz
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: s.factories.Editor(&q)}
		}
	case "d":
		if _, ok := s.selectedTeacherRow(); ok {
			s.confirmDelete = true
		}
	}
	return s, nil
}

func (s *DashboardScreen) updateStudentKeys(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() != "enter" || s.student == nil {
		return s, nil
	}

	if s.selected < len(s.student.Available) {
		quizID := s.student.Available[s.selected].ID
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: s.factories.Taking(quizID)}
		}
	}

	idx := s.selected - len(s.student.Available)
	if idx < len(s.student.Completed) {
		attemptID := s.student.Completed[idx].Attempt.ID
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: s.factories.Results(attemptID)}
		}
	}
	return s, nil
}

func (s *DashboardScreen) selectedTeacherRow() (dashsvc.TeacherQuiz, bool) {
	if s.selected < 0 || s.selected >= len(s.teacher) {
		return dashsvc.TeacherQuiz{}, false
	}
	return s.teacher[s.selected], true
}

func (s *DashboardScreen) rowCount() int {
	if s.user.Role == quiz.RoleTeacher {
		return len(s.teacher)
	}
	if s.student == nil {
		return 0
	}
	return len(s.student.Available) + len(s.student.Completed)
}

func (s *DashboardScreen) clampSelection() {
	if n := s.rowCount(); s.selected >= n {
		s.selected = n - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *DashboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}

	if s.user.Role == quiz.RoleTeacher {
		return s.viewTeacher(width)
	}
	return s.viewStudent(width)
}

func (s *DashboardScreen) viewTeacher(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	greeting := fmt.Sprintf("Welcome back, %s", s.user.Name)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(greeting)))
	b.WriteString("\n\n")

	if len(s.teacher) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No quizzes yet. Press n to create one.")))
		return b.String()
	}

	for i, row := range s.teacher {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		attempts := fmt.Sprintf("%d attempt", row.Attempts)
		if row.Attempts != 1 {
			attempts += "s"
		}

		line := fmt.Sprintf("%s%-36s  %d questions  %d min  %s",
			prefix, truncate(row.Quiz.Title, 36), len(row.Quiz.Questions),
			row.Quiz.DurationMinutes, attempts)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.confirmDelete {
		if row, ok := s.selectedTeacherRow(); ok {
			b.WriteString("\n")
			warning := fmt.Sprintf("Delete %q? Student attempts are kept. (y/esc)", row.Quiz.Title)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(warning)))
		}
	}

	return b.String()
}

func (s *DashboardScreen) viewStudent(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	greeting := fmt.Sprintf("Hi %s, pick a quiz", s.user.Name)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(greeting)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Available")))
	b.WriteString("\n")

	if len(s.student.Available) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Nothing new right now.")))
		b.WriteString("\n")
	}
	for i, q := range s.student.Available {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%-36s  %d questions  %d min",
			prefix, truncate(q.Title, 36), len(q.Questions), q.DurationMinutes)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Completed")))
	b.WriteString("\n")

	if len(s.student.Completed) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No results yet.")))
		b.WriteString("\n")
	}
	for i, c := range s.student.Completed {
		idx := len(s.student.Available) + i
		prefix := "  "
		if idx == s.selected {
			prefix = "> "
		}

		title := c.QuizTitle
		if !c.QuizFound {
			title = "(quiz removed)"
		}
		line := fmt.Sprintf("%s%-36s  %d/%d  %s",
			prefix, truncate(title, 36), c.Attempt.Score, c.Attempt.TotalQuestions,
			c.Attempt.CompletedAt.Format("Jan 02, 2006"))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if idx == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
