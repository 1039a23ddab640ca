// Package authoring holds the teacher-side quiz draft: an in-progress
// quiz being built or edited before it is saved.
package authoring

import (
	"context"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/store"
)

// DefaultDurationMinutes is the time limit a new draft starts with.
const DefaultDurationMinutes = 10

// Draft is a quiz under construction. Questions accumulate from manual
// entry and AI generation alike; nothing touches storage until Save.
type Draft struct {
	ID              string
	Title           string
	DurationMinutes int
	Questions       []quiz.Question
	CreatedBy       string

	editing bool
}

// NewDraft starts an empty draft owned by the given teacher.
func NewDraft(createdBy string) *Draft {
	return &Draft{
		ID:              uuid.NewString(),
		DurationMinutes: DefaultDurationMinutes,
		CreatedBy:       createdBy,
	}
}

// FromQuiz opens an existing quiz for editing. Saving the draft
// replaces the stored quiz in place.
func FromQuiz(q *quiz.Quiz) *Draft {
	questions := make([]quiz.Question, len(q.Questions))
	copy(questions, q.Questions)
	return &Draft{
		ID:              q.ID,
		Title:           q.Title,
		DurationMinutes: q.DurationMinutes,
		Questions:       questions,
		CreatedBy:       q.CreatedBy,
		editing:         true,
	}
}

// Editing reports whether the draft wraps an existing quiz.
func (d *Draft) Editing() bool { return d.editing }

// Append adds questions to the end of the draft.
func (d *Draft) Append(questions ...quiz.Question) {
	d.Questions = append(d.Questions, questions...)
}

// Remove deletes the question with the given ID. Unknown IDs are
// ignored.
func (d *Draft) Remove(questionID string) {
	for i, q := range d.Questions {
		if q.ID == questionID {
			d.Questions = append(d.Questions[:i], d.Questions[i+1:]...)
			return
		}
	}
}

// QuestionTexts returns the text of every question in the draft, used
// for generation dedup.
func (d *Draft) QuestionTexts() []string {
	texts := make([]string, len(d.Questions))
	for i, q := range d.Questions {
		texts[i] = q.Text
	}
	return texts
}

// Build validates the draft and produces the final quiz. Validation
// failures (no title, no questions, malformed questions) block the
// build.
func (d *Draft) Build() (*quiz.Quiz, error) {
	q := &quiz.Quiz{
		ID:              d.ID,
		Title:           d.Title,
		DurationMinutes: d.DurationMinutes,
		Questions:       d.Questions,
		CreatedBy:       d.CreatedBy,
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// Save builds the draft and writes it through the repository, creating
// a new quiz or replacing the one being edited.
func (d *Draft) Save(ctx context.Context, repo store.QuizRepo) (*quiz.Quiz, error) {
	q, err := d.Build()
	if err != nil {
		return nil, err
	}
	if d.editing {
		if err := repo.Replace(ctx, *q); err != nil {
			return nil, err
		}
		return q, nil
	}
	if err := repo.Save(ctx, *q); err != nil {
		return nil, err
	}
	return q, nil
}
