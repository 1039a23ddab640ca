// Package results builds the post-attempt review: per-question marks
// and the overall percentage score.
package results

import (
	"context"
	"fmt"
	"math"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/store"
)

// OptionReview describes one option row in the review display.
type OptionReview struct {
	Text     string
	Correct  bool // this option is the correct answer
	Selected bool // the student picked this option
}

// QuestionReview is the review of a single question.
type QuestionReview struct {
	Question quiz.Question
	Options  []OptionReview
	Answered bool
	Correct  bool
}

// Review is the full result view for one attempt.
type Review struct {
	Quiz      *quiz.Quiz
	Attempt   *quiz.Attempt
	Questions []QuestionReview
}

// Percentage returns the score as a whole-number percentage, rounded
// to the nearest integer. A zero-question attempt scores 0.
func (r *Review) Percentage() int {
	if r.Attempt.TotalQuestions == 0 {
		return 0
	}
	return int(math.Round(100 * float64(r.Attempt.Score) / float64(r.Attempt.TotalQuestions)))
}

// Build assembles the review for an attempt against its quiz.
// Questions appear in the quiz's original order.
func Build(q *quiz.Quiz, attempt *quiz.Attempt) *Review {
	questions := make([]QuestionReview, len(q.Questions))
	for i, question := range q.Questions {
		selected := attempt.Answers[question.ID]
		qr := QuestionReview{
			Question: question,
			Answered: selected != "",
			Correct:  selected == question.CorrectAnswer,
		}
		qr.Options = make([]OptionReview, len(question.Options))
		for j, opt := range question.Options {
			qr.Options[j] = OptionReview{
				Text:     opt,
				Correct:  opt == question.CorrectAnswer,
				Selected: opt == selected,
			}
		}
		questions[i] = qr
	}
	return &Review{Quiz: q, Attempt: attempt, Questions: questions}
}

// BuildFromRepos loads the attempt and its quiz and assembles the
// review. A missing quiz (deleted after the attempt) or missing
// attempt is an error; callers show a fallback view.
func BuildFromRepos(ctx context.Context, quizzes store.QuizRepo, attempts store.AttemptRepo, attemptID string) (*Review, error) {
	attempt, err := attempts.Get(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("load attempt: %w", err)
	}
	if attempt == nil {
		return nil, fmt.Errorf("attempt %s not found", attemptID)
	}

	q, err := quizzes.Get(ctx, attempt.QuizID)
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	if q == nil {
		return nil, fmt.Errorf("quiz %s no longer exists", attempt.QuizID)
	}

	return Build(q, attempt), nil
}
