package quizgen

import (
	"fmt"
	"strings"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

const systemPrompt = `You are an assistant helping a teacher write quiz questions.

Rules:
- Generate exactly the requested number of questions on the given topic.
- Each question must be clear, self-contained, and factually correct.
- For multiple choice, provide exactly 4 options where exactly one is correct. Distractors should be plausible, not random.
- For true/false, the options must be exactly ["True", "False"] and the question must be a statement that is unambiguously true or false.
- Options must be distinct. The correct_answer_index must point at the correct option.
- Do not repeat any question from the "already in this quiz" list.
- Use plain text. No markdown, no numbering in the question text itself.`

// buildUserMessage constructs the user message from Input and Config limits.
func buildUserMessage(input Input, cfg Config) string {
	format := "multiple choice (4 options)"
	if input.Kind == quiz.KindTrueFalse {
		format = `true/false (options exactly ["True", "False"])`
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Number of questions: %d\n", input.Count)
	fmt.Fprintf(&b, "Format: %s\n", format)

	b.WriteString("\nAlready in this quiz:\n")
	b.WriteString(buildDedup(input.Existing, cfg.MaxExisting))

	return b.String()
}

// buildDedup formats existing question texts for the prompt, respecting
// the max limit. Returns "None" if the draft is empty.
func buildDedup(existing []string, max int) string {
	if len(existing) == 0 {
		return "None"
	}

	if max > 0 && len(existing) > max {
		existing = existing[len(existing)-max:]
	}

	var b strings.Builder
	for i, q := range existing {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
