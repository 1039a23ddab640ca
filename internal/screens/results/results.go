// Package results shows a finished attempt: the score, and every
// question with the student's pick and the correct answer marked.
package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/results"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

type reviewLoadedMsg struct {
	review *results.Review
	err    error
}

// ResultsScreen displays the review for one attempt.
type ResultsScreen struct {
	quizzes   store.QuizRepo
	attempts  store.AttemptRepo
	attemptID string

	review *results.Review
	loaded bool
	errMsg string
	scroll int

	dashboardFactory func() screen.Screen
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for the given attempt.
func New(attemptID string, quizzes store.QuizRepo, attempts store.AttemptRepo,
	dashboardFactory func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		quizzes:          quizzes,
		attempts:         attempts,
		attemptID:        attemptID,
		dashboardFactory: dashboardFactory,
	}
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		review, err := results.BuildFromRepos(context.Background(), s.quizzes, s.attempts, s.attemptID)
		return reviewLoadedMsg{review: review, err: err}
	}
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Dashboard"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reviewLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.review = msg.review
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: s.dashboardFactory()}
			}
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading results...")
	}
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
				Render("Results unavailable: "+s.errMsg)+"\n\n"+
				theme.Hint.Render("press esc to go back"))
	}

	var b strings.Builder
	b.WriteString("\n")

	pct := s.review.Percentage()
	headline := fmt.Sprintf("%s — %d/%d (%d%%)",
		s.review.Quiz.Title, s.review.Attempt.Score, s.review.Attempt.TotalQuestions, pct)

	headStyle := theme.Correct
	if pct < 50 {
		headStyle = theme.Incorrect
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, headStyle.Render(headline)))
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(pct)/100, true, width/2)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	lines := s.questionLines(width)

	// Viewport scroll over the question review.
	visible := layout.ContentHeight(height) - 5
	if visible < 3 {
		visible = 3
	}
	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := s.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	b.WriteString(strings.Join(lines[s.scroll:end], "\n"))

	return b.String()
}

func (s *ResultsScreen) questionLines(width int) []string {
	var lines []string
	for i, qr := range s.review.Questions {
		mark := theme.Correct.Render("✓")
		if !qr.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		header := fmt.Sprintf("%s %d. %s", mark, i+1, qr.Question.Text)
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(header)))

		for _, opt := range qr.Options {
			prefix := "   "
			style := lipgloss.NewStyle().Foreground(theme.TextDim)
			switch {
			case opt.Correct && opt.Selected:
				prefix = " ✓ "
				style = theme.Correct
			case opt.Correct:
				prefix = " ✓ "
				style = lipgloss.NewStyle().Foreground(theme.Success)
			case opt.Selected:
				prefix = " ✗ "
				style = theme.Incorrect
			}
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center,
				style.Render(prefix+opt.Text)))
		}

		if !qr.Answered {
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render("   not answered")))
		}
		lines = append(lines, "")
	}
	return lines
}
