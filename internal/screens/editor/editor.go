// Package editor is the teacher's quiz builder: quiz settings, an
// AI generation form, and the accumulated question list.
package editor

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/authoring"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/quizgen"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// Input focus order.
const (
	focusTitle = iota
	focusDuration
	focusTopic
	focusCount
	focusKind
	focusQuestions
	focusMax
)

type generatedMsg struct {
	questions []quiz.Question
	err       error
}

type savedMsg struct{ err error }

// EditorScreen builds or edits one quiz draft.
type EditorScreen struct {
	draft     *authoring.Draft
	quizzes   store.QuizRepo
	generator quizgen.Generator

	title    components.TextInput
	duration components.TextInput
	topic    components.TextInput
	count    components.TextInput
	kind     quiz.Kind

	focus      int
	selectedQ  int
	generating bool
	statusMsg  string
	errMsg     string

	dashboardFactory func() screen.Screen
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)

// New creates an EditorScreen. existing is nil for a new quiz; a
// non-nil quiz opens for editing. generator may be nil when no LLM
// provider is configured; generation is then disabled.
func New(existing *quiz.Quiz, createdBy string, quizzes store.QuizRepo, generator quizgen.Generator, dashboardFactory func() screen.Screen) *EditorScreen {
	var draft *authoring.Draft
	if existing != nil {
		draft = authoring.FromQuiz(existing)
	} else {
		draft = authoring.NewDraft(createdBy)
	}

	s := &EditorScreen{
		draft:            draft,
		quizzes:          quizzes,
		generator:        generator,
		kind:             quiz.KindMultipleChoice,
		dashboardFactory: dashboardFactory,
	}

	s.title = components.NewTextInput("Quiz title", false, 80)
	s.title.Model.SetValue(draft.Title)
	s.duration = components.NewTextInput("Minutes", true, 3)
	s.duration.Model.SetValue(fmt.Sprintf("%d", draft.DurationMinutes))
	s.topic = components.NewTextInput("Topic for AI questions", false, 80)
	s.count = components.NewTextInput("How many (1-10)", true, 2)
	s.count.Model.SetValue("3")

	s.setFocus(focusTitle)
	return s
}

func (s *EditorScreen) Title() string {
	if s.draft.Editing() {
		return "Edit Quiz"
	}
	return "New Quiz"
}

func (s *EditorScreen) Init() tea.Cmd {
	return s.title.Init()
}

func (s *EditorScreen) KeyHints() []layout.KeyHint {
	if s.focus == focusQuestions {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "x", Description: "Remove question"},
			{Key: "g", Description: "Generate"},
			{Key: "s", Description: "Save"},
			{Key: "Esc", Description: "Discard"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "g", Description: "Generate"},
		{Key: "s", Description: "Save"},
		{Key: "Esc", Description: "Discard"},
	}
}

func (s *EditorScreen) setFocus(f int) {
	s.focus = f
	s.title.Model.Blur()
	s.duration.Model.Blur()
	s.topic.Model.Blur()
	s.count.Model.Blur()

	switch f {
	case focusTitle:
		s.title.Model.Focus()
	case focusDuration:
		s.duration.Model.Focus()
	case focusTopic:
		s.topic.Model.Focus()
	case focusCount:
		s.count.Model.Focus()
	}
}

func (s *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		s.generating = false
		if msg.err != nil {
			s.errMsg = fmt.Sprintf("Generation failed: %v", msg.err)
			return s, nil
		}
		s.errMsg = ""
		s.draft.Append(msg.questions...)
		s.statusMsg = fmt.Sprintf("Added %d generated question(s)", len(msg.questions))
		return s, nil

	case savedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: s.dashboardFactory()}
		}

	case tea.KeyMsg:
		return s.updateKeys(msg)
	}
	return s, nil
}

func (s *EditorScreen) updateKeys(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: s.dashboardFactory()}
		}

	case "tab":
		s.setFocus((s.focus + 1) % focusMax)
		return s, nil

	case "shift+tab":
		s.setFocus((s.focus + focusMax - 1) % focusMax)
		return s, nil
	}

	// Field-independent actions. Single letters only fire outside text
	// inputs so typing a title containing "g" or "s" still works.
	if s.focus == focusKind || s.focus == focusQuestions {
		switch msg.String() {
		case "g":
			return s, s.generate()
		case "s":
			return s, s.save()
		}
	}

	switch s.focus {
	case focusTitle:
		var cmd tea.Cmd
		s.title, cmd = s.title.Update(msg)
		s.draft.Title = strings.TrimSpace(s.title.Value())
		return s, cmd

	case focusDuration:
		var cmd tea.Cmd
		s.duration, cmd = s.duration.Update(msg)
		if mins, err := s.duration.NumericValue(); err == nil {
			s.draft.DurationMinutes = mins
		}
		return s, cmd

	case focusTopic:
		var cmd tea.Cmd
		s.topic, cmd = s.topic.Update(msg)
		return s, cmd

	case focusCount:
		var cmd tea.Cmd
		s.count, cmd = s.count.Update(msg)
		return s, cmd

	case focusKind:
		switch msg.String() {
		case "left", "right", "h", "l", "enter", " ":
			if s.kind == quiz.KindMultipleChoice {
				s.kind = quiz.KindTrueFalse
			} else {
				s.kind = quiz.KindMultipleChoice
			}
		}
		return s, nil

	case focusQuestions:
		switch msg.String() {
		case "up", "k":
			if s.selectedQ > 0 {
				s.selectedQ--
			}
		case "down", "j":
			if s.selectedQ < len(s.draft.Questions)-1 {
				s.selectedQ++
			}
		case "x":
			if s.selectedQ < len(s.draft.Questions) {
				s.draft.Remove(s.draft.Questions[s.selectedQ].ID)
				if s.selectedQ >= len(s.draft.Questions) && s.selectedQ > 0 {
					s.selectedQ--
				}
			}
		}
		return s, nil
	}

	return s, nil
}

func (s *EditorScreen) generate() tea.Cmd {
	if s.generating {
		return nil
	}
	if s.generator == nil {
		s.errMsg = "AI generation is not configured. Set an API key and restart."
		return nil
	}

	topic := strings.TrimSpace(s.topic.Value())
	if topic == "" {
		s.errMsg = "Enter a topic before generating."
		return nil
	}
	count, err := s.count.NumericValue()
	if err != nil {
		count = 3
	}

	s.generating = true
	s.errMsg = ""
	s.statusMsg = "Generating questions..."

	input := quizgen.Input{
		Topic:    topic,
		Count:    count,
		Kind:     s.kind,
		Existing: s.draft.QuestionTexts(),
	}
	return func() tea.Msg {
		questions, err := s.generator.Generate(context.Background(), input)
		return generatedMsg{questions: questions, err: err}
	}
}

func (s *EditorScreen) save() tea.Cmd {
	s.draft.Title = strings.TrimSpace(s.title.Value())
	if mins, err := s.duration.NumericValue(); err == nil {
		s.draft.DurationMinutes = mins
	}

	return func() tea.Msg {
		_, err := s.draft.Save(context.Background(), s.quizzes)
		return savedMsg{err: err}
	}
}

func (s *EditorScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	label := func(text string, focused bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if focused {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return style.Render(text)
	}

	b.WriteString("  " + label("Title:    ", s.focus == focusTitle) + s.title.View() + "\n")
	b.WriteString("  " + label("Duration: ", s.focus == focusDuration) + s.duration.View() + " minutes\n")
	b.WriteString("\n")

	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render("AI question generator") + "\n")
	b.WriteString("  " + label("Topic:    ", s.focus == focusTopic) + s.topic.View() + "\n")
	b.WriteString("  " + label("Count:    ", s.focus == focusCount) + s.count.View() + "\n")

	kindLabel := "Multiple choice"
	if s.kind == quiz.KindTrueFalse {
		kindLabel = "True / False"
	}
	b.WriteString("  " + label("Format:   ", s.focus == focusKind) + "< " + kindLabel + " >\n")
	b.WriteString("\n")

	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("Questions (%d)", len(s.draft.Questions))) + "\n")

	if len(s.draft.Questions) == 0 {
		b.WriteString("  " + theme.Hint.Render("None yet. Generate some above.") + "\n")
	}
	for i, q := range s.draft.Questions {
		prefix := "    "
		if s.focus == focusQuestions && i == s.selectedQ {
			prefix = "  > "
		}
		line := fmt.Sprintf("%s%d. %s", prefix, i+1, truncate(q.Text, width-20))
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if s.focus == focusQuestions && i == s.selectedQ {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line) + "\n")

		detail := fmt.Sprintf("%s   answer: %s", strings.Repeat(" ", len(prefix)), q.CorrectAnswer)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail) + "\n")
	}

	if s.generating {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Accent).Render("Generating..."))
	} else if s.statusMsg != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Success).Render(s.statusMsg))
	}
	if s.errMsg != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	return b.String()
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
