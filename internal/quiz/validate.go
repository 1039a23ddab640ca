package quiz

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNoTitle blocks saving a quiz without a title.
	ErrNoTitle = errors.New("quiz title is required")

	// ErrNoQuestions blocks saving a quiz with an empty question list.
	ErrNoQuestions = errors.New("quiz needs at least one question")

	// ErrAnswerNotInOptions indicates a question whose correct answer is
	// not one of its options.
	ErrAnswerNotInOptions = errors.New("correct answer must be one of the options")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the question's structural fields and the
// answer-membership invariant.
func (q Question) Validate() error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("question %q: %w", q.ID, err)
	}
	if !slices.Contains(q.Options, q.CorrectAnswer) {
		return fmt.Errorf("question %q: %w", q.ID, ErrAnswerNotInOptions)
	}
	return nil
}

// Validate checks the quiz as a whole. The title and question-list
// checks come first so the authoring flow can surface them as blocking
// messages before any structural noise.
func (q Quiz) Validate() error {
	if q.Title == "" {
		return ErrNoTitle
	}
	if len(q.Questions) == 0 {
		return ErrNoQuestions
	}
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("quiz %q: %w", q.Title, err)
	}
	for _, question := range q.Questions {
		if err := question.Validate(); err != nil {
			return err
		}
	}
	return nil
}
