package taking

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

// State represents the phase of a quiz run.
type State int

const (
	StateInProgress State = iota // Answering questions, timer running
	StateSubmitted               // Attempt recorded, run finished
)

// Runner tracks the runtime state of a single quiz-taking session.
// Questions and their options are shuffled once at construction; the
// answer map and the final score are keyed by question ID and answer
// text, so they are independent of display order.
type Runner struct {
	quiz      *quiz.Quiz
	shuffled  []quiz.Question
	answers   map[string]string
	cursor    int
	remaining int // seconds left on the clock
	state     State
}

// NewRunner starts a run of the given quiz. The rng drives the one-time
// question and option shuffle; tests pass a seeded source.
func NewRunner(q *quiz.Quiz, rng *rand.Rand) *Runner {
	return &Runner{
		quiz:      q,
		shuffled:  shuffleQuestions(q.Questions, rng),
		answers:   make(map[string]string),
		remaining: q.DurationMinutes * 60,
	}
}

// Quiz returns the quiz being taken.
func (r *Runner) Quiz() *quiz.Quiz { return r.quiz }

// State returns the current run phase.
func (r *Runner) State() State { return r.state }

// Len returns the number of questions in the run.
func (r *Runner) Len() int { return len(r.shuffled) }

// Cursor returns the zero-based index of the displayed question.
func (r *Runner) Cursor() int { return r.cursor }

// Current returns the question at the cursor in display order.
func (r *Runner) Current() quiz.Question { return r.shuffled[r.cursor] }

// OnLast reports whether the cursor is on the final question.
func (r *Runner) OnLast() bool { return r.cursor == len(r.shuffled)-1 }

// Next advances the cursor, clamped at the last question.
func (r *Runner) Next() {
	if r.cursor < len(r.shuffled)-1 {
		r.cursor++
	}
}

// Prev moves the cursor back, clamped at the first question.
func (r *Runner) Prev() {
	if r.cursor > 0 {
		r.cursor--
	}
}

// Select records the student's answer for the current question.
// Re-selecting overwrites the previous choice.
func (r *Runner) Select(option string) {
	if r.state != StateInProgress {
		return
	}
	r.answers[r.Current().ID] = option
}

// Answer returns the recorded answer for a question ID, or "" if the
// question is unanswered.
func (r *Runner) Answer(questionID string) string { return r.answers[questionID] }

// Answered returns how many questions have a recorded answer.
func (r *Runner) Answered() int { return len(r.answers) }

// Remaining returns the seconds left on the clock.
func (r *Runner) Remaining() int { return r.remaining }

// Tick counts down one second and reports whether time has run out.
// The caller submits the run when Tick returns true.
func (r *Runner) Tick() (expired bool) {
	if r.state != StateInProgress {
		return false
	}
	if r.remaining > 0 {
		r.remaining--
	}
	return r.remaining == 0
}

// Submit finalizes the run, scoring against the quiz's original
// question order. The second return is false if the run was already
// submitted; the runner records at most one attempt.
func (r *Runner) Submit(studentID string, now time.Time) (quiz.Attempt, bool) {
	if r.state == StateSubmitted {
		return quiz.Attempt{}, false
	}
	r.state = StateSubmitted

	answers := make(map[string]string, len(r.answers))
	for k, v := range r.answers {
		answers[k] = v
	}

	return quiz.Attempt{
		ID:             uuid.NewString(),
		QuizID:         r.quiz.ID,
		StudentID:      studentID,
		Answers:        answers,
		Score:          Score(r.quiz, answers),
		TotalQuestions: len(r.quiz.Questions),
		CompletedAt:    now,
	}, true
}

// Questions returns the questions in display order.
func (r *Runner) Questions() []quiz.Question { return r.shuffled }
