// Package taking renders an in-progress quiz run: one question at a
// time, a countdown clock, and submission on the last question or when
// time runs out.
package taking

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/store"
	runpkg "github.com/quizdeck/quizdeck/internal/taking"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// urgentThresholdSecs is when the clock turns red.
const urgentThresholdSecs = 60

type quizLoadedMsg struct {
	quiz *quiz.Quiz
	err  error
}

type timerTickMsg time.Time

type submittedMsg struct {
	attemptID string
	err       error
}

// TakingScreen runs one quiz for the logged-in student.
type TakingScreen struct {
	quizzes   store.QuizRepo
	attempts  store.AttemptRepo
	studentID string
	quizID    string

	runner  *runpkg.Runner
	options components.OptionList

	loaded     bool
	notFound   bool
	submitting bool
	errMsg     string

	dashboardFactory func() screen.Screen
	resultsFactory   func(attemptID string) screen.Screen
}

var _ screen.Screen = (*TakingScreen)(nil)
var _ screen.KeyHintProvider = (*TakingScreen)(nil)

// New creates a TakingScreen for the given quiz.
func New(quizID, studentID string, quizzes store.QuizRepo, attempts store.AttemptRepo,
	dashboardFactory func() screen.Screen, resultsFactory func(attemptID string) screen.Screen) *TakingScreen {
	return &TakingScreen{
		quizzes:          quizzes,
		attempts:         attempts,
		studentID:        studentID,
		quizID:           quizID,
		dashboardFactory: dashboardFactory,
		resultsFactory:   resultsFactory,
	}
}

func (s *TakingScreen) Title() string {
	if s.runner != nil {
		return s.runner.Quiz().Title
	}
	return "Quiz"
}

func (s *TakingScreen) Init() tea.Cmd {
	return func() tea.Msg {
		q, err := s.quizzes.Get(context.Background(), s.quizID)
		return quizLoadedMsg{quiz: q, err: err}
	}
}

func (s *TakingScreen) KeyHints() []layout.KeyHint {
	if s.notFound {
		return []layout.KeyHint{{Key: "Any key", Description: "Back to dashboard"}}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Choose"},
		{Key: "←→", Description: "Question"},
	}
	if s.runner != nil && s.runner.OnLast() {
		hints = append(hints, layout.KeyHint{Key: "s", Description: "Submit"})
	}
	return hints
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (s *TakingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			s.loaded = true
			return s, nil
		}
		if msg.quiz == nil {
			// Deleted between dashboard load and selection.
			s.notFound = true
			s.loaded = true
			return s, nil
		}
		s.runner = runpkg.NewRunner(msg.quiz, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
		s.loaded = true
		s.syncOptions()
		return s, tick()

	case timerTickMsg:
		if s.runner == nil || s.runner.State() != runpkg.StateInProgress {
			return s, nil
		}
		if s.runner.Tick() {
			return s, s.submit()
		}
		return s, tick()

	case submittedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: s.resultsFactory(msg.attemptID)}
		}

	case tea.KeyMsg:
		return s.updateKeys(msg)
	}
	return s, nil
}

func (s *TakingScreen) updateKeys(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.notFound || s.errMsg != "" {
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: s.dashboardFactory()}
		}
	}
	if s.runner == nil || s.submitting {
		return s, nil
	}

	switch msg.String() {
	case "left", "h":
		s.runner.Prev()
		s.syncOptions()
		return s, nil
	case "right", "l":
		s.runner.Next()
		s.syncOptions()
		return s, nil
	case "s":
		if s.runner.OnLast() {
			return s, s.submit()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	if sel := s.options.Selection(); sel != "" {
		s.runner.Select(sel)
	}
	return s, cmd
}

// syncOptions rebuilds the option list for the question at the cursor,
// restoring any previously recorded answer.
func (s *TakingScreen) syncOptions() {
	q := s.runner.Current()
	chosen := -1
	if answer := s.runner.Answer(q.ID); answer != "" {
		for i, opt := range q.Options {
			if opt == answer {
				chosen = i
				break
			}
		}
	}
	s.options = components.NewOptionList(q.Text, q.Options, chosen)
}

func (s *TakingScreen) submit() tea.Cmd {
	attempt, ok := s.runner.Submit(s.studentID, time.Now())
	if !ok {
		return nil
	}
	s.submitting = true
	return func() tea.Msg {
		ctx := context.Background()
		taken, err := s.attempts.ExistsForStudent(ctx, s.studentID, s.quizID)
		if err != nil {
			return submittedMsg{err: err}
		}
		if taken {
			return submittedMsg{err: errors.New("you have already submitted this quiz")}
		}
		if err := s.attempts.Append(ctx, attempt); err != nil {
			return submittedMsg{err: err}
		}
		return submittedMsg{attemptID: attempt.ID}
	}
}

func (s *TakingScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading quiz...")
	}
	if s.notFound {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
				Render("This quiz is no longer available.")+"\n\n"+
				theme.Hint.Render("press any key to go back"))
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}

	var b strings.Builder
	b.WriteString("\n")

	// Clock and position row.
	remaining := s.runner.Remaining()
	clock := fmt.Sprintf("%d:%02d", remaining/60, remaining%60)
	clockStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if remaining < urgentThresholdSecs {
		clockStyle = theme.Urgent
	}

	position := fmt.Sprintf("Question %d of %d", s.runner.Cursor()+1, s.runner.Len())
	statusLine := fmt.Sprintf("%s        %s        %d answered",
		clockStyle.Render("⏱ "+clock),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(position),
		s.runner.Answered())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, statusLine))
	b.WriteString("\n")

	// Progress over the run.
	bar := components.NewProgressBar("", float64(s.runner.Answered())/float64(s.runner.Len()), false, width/2)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))

	if s.runner.OnLast() {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.ButtonActive.Render("  s — Submit quiz  ")))
	}

	if s.submitting {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("Submitting...")))
	}

	return b.String()
}
