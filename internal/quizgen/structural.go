package quizgen

import (
	"slices"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

// StructuralValidator checks that a generated question has the right
// shape for its format: text present and bounded, options distinct and
// correctly counted, correct answer among the options.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *quiz.Question, input Input) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 500 characters",
			Retryable: true,
		}
	}

	switch input.Kind {
	case quiz.KindMultipleChoice:
		if len(q.Options) != 4 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "multiple choice questions need exactly 4 options",
				Retryable: true,
			}
		}
	case quiz.KindTrueFalse:
		if len(q.Options) != 2 || q.Options[0] != "True" || q.Options[1] != "False" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   `true/false options must be exactly ["True", "False"]`,
				Retryable: true,
			}
		}
	}

	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if opt == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "option text is empty",
				Retryable: true,
			}
		}
		if seen[opt] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "options contain duplicates",
				Retryable: true,
			}
		}
		seen[opt] = true
	}

	if !slices.Contains(q.Options, q.CorrectAnswer) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct answer is not one of the options",
			Retryable: true,
		}
	}

	return nil
}
