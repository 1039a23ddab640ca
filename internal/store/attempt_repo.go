package store

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck/ent"
	entattempt "github.com/quizdeck/quizdeck/ent/attempt"
	"github.com/quizdeck/quizdeck/internal/quiz"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Append(ctx context.Context, a quiz.Attempt) error {
	answers := a.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	_, err := r.client.Attempt.Create().
		SetID(a.ID).
		SetQuizID(a.QuizID).
		SetStudentID(a.StudentID).
		SetAnswers(answers).
		SetScore(a.Score).
		SetTotalQuestions(a.TotalQuestions).
		SetCompletedAt(a.CompletedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append attempt %s: %w", a.ID, err)
	}
	return nil
}

func (r *attemptRepo) Get(ctx context.Context, id string) (*quiz.Attempt, error) {
	row, err := r.client.Attempt.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attempt %s: %w", id, err)
	}
	a := entAttemptToAttempt(row)
	return &a, nil
}

func (r *attemptRepo) ListByStudent(ctx context.Context, studentID string) ([]quiz.Attempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(entattempt.StudentID(studentID)).
		Order(ent.Asc(entattempt.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts for student %s: %w", studentID, err)
	}

	out := make([]quiz.Attempt, 0, len(rows))
	for _, row := range rows {
		out = append(out, entAttemptToAttempt(row))
	}
	return out, nil
}

func (r *attemptRepo) CountByQuiz(ctx context.Context, quizID string) (int, error) {
	n, err := r.client.Attempt.Query().
		Where(entattempt.QuizID(quizID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts for quiz %s: %w", quizID, err)
	}
	return n, nil
}

func (r *attemptRepo) ExistsForStudent(ctx context.Context, studentID, quizID string) (bool, error) {
	exists, err := r.client.Attempt.Query().
		Where(entattempt.StudentID(studentID), entattempt.QuizID(quizID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check attempt for student %s quiz %s: %w", studentID, quizID, err)
	}
	return exists, nil
}

// entAttemptToAttempt converts an ent row to the domain type.
func entAttemptToAttempt(row *ent.Attempt) quiz.Attempt {
	return quiz.Attempt{
		ID:             row.ID,
		QuizID:         row.QuizID,
		StudentID:      row.StudentID,
		Answers:        row.Answers,
		Score:          row.Score,
		TotalQuestions: row.TotalQuestions,
		CompletedAt:    row.CompletedAt,
	}
}
