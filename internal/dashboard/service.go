// Package dashboard assembles the role-specific home views: the
// teacher's quiz list with attempt counts and the student's split of
// available versus completed quizzes.
package dashboard

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/store"
)

// Service answers dashboard queries over the quiz and attempt repos.
type Service struct {
	quizzes  store.QuizRepo
	attempts store.AttemptRepo
}

// New creates a dashboard service.
func New(quizzes store.QuizRepo, attempts store.AttemptRepo) *Service {
	return &Service{quizzes: quizzes, attempts: attempts}
}

// TeacherQuiz is one row of the teacher dashboard.
type TeacherQuiz struct {
	Quiz     quiz.Quiz
	Attempts int
}

// TeacherView lists the quizzes created by teacherID with their
// attempt counts, in creation order. Quizzes owned by other teachers
// are excluded.
func (s *Service) TeacherView(ctx context.Context, teacherID string) ([]TeacherQuiz, error) {
	all, err := s.quizzes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}

	var rows []TeacherQuiz
	for _, q := range all {
		if q.CreatedBy != teacherID {
			continue
		}
		count, err := s.attempts.CountByQuiz(ctx, q.ID)
		if err != nil {
			return nil, fmt.Errorf("count attempts for %s: %w", q.ID, err)
		}
		rows = append(rows, TeacherQuiz{Quiz: q, Attempts: count})
	}
	return rows, nil
}

// DeleteQuiz removes a quiz. Attempts referencing it survive so
// students keep their results.
func (s *Service) DeleteQuiz(ctx context.Context, quizID string) error {
	return s.quizzes.Delete(ctx, quizID)
}

// CompletedAttempt is one row of the student's completed list.
type CompletedAttempt struct {
	Attempt   quiz.Attempt
	QuizTitle string
	QuizFound bool // false when the quiz was deleted after the attempt
}

// StudentView splits quizzes for one student: quizzes they have never
// attempted, and their past attempts.
type StudentView struct {
	Available []quiz.Quiz
	Completed []CompletedAttempt
}

// StudentView builds the student dashboard. A quiz is available until
// the student has an attempt for it; one attempt per quiz.
func (s *Service) StudentView(ctx context.Context, studentID string) (*StudentView, error) {
	all, err := s.quizzes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}

	attempts, err := s.attempts.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	titles := make(map[string]string, len(all))
	for _, q := range all {
		titles[q.ID] = q.Title
	}

	taken := make(map[string]bool, len(attempts))
	view := &StudentView{}

	for _, a := range attempts {
		taken[a.QuizID] = true
		title, found := titles[a.QuizID]
		view.Completed = append(view.Completed, CompletedAttempt{
			Attempt:   a,
			QuizTitle: title,
			QuizFound: found,
		})
	}

	for _, q := range all {
		if !taken[q.ID] {
			view.Available = append(view.Available, q)
		}
	}

	return view, nil
}
