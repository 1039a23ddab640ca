package store

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck/ent"
	entquiz "github.com/quizdeck/quizdeck/ent/quiz"
	"github.com/quizdeck/quizdeck/ent/schema"
	"github.com/quizdeck/quizdeck/internal/quiz"
)

// quizRepo implements QuizRepo using the ent client.
type quizRepo struct {
	client *ent.Client
}

func (r *quizRepo) List(ctx context.Context) ([]quiz.Quiz, error) {
	rows, err := r.client.Quiz.Query().
		Order(ent.Asc(entquiz.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}

	out := make([]quiz.Quiz, 0, len(rows))
	for _, row := range rows {
		out = append(out, entQuizToQuiz(row))
	}
	return out, nil
}

func (r *quizRepo) Get(ctx context.Context, id string) (*quiz.Quiz, error) {
	row, err := r.client.Quiz.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quiz %s: %w", id, err)
	}
	q := entQuizToQuiz(row)
	return &q, nil
}

func (r *quizRepo) Save(ctx context.Context, q quiz.Quiz) error {
	_, err := r.client.Quiz.Create().
		SetID(q.ID).
		SetTitle(q.Title).
		SetDurationMinutes(q.DurationMinutes).
		SetQuestions(questionsToJSON(q.Questions)).
		SetCreatedBy(q.CreatedBy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz %s: %w", q.ID, err)
	}
	return nil
}

func (r *quizRepo) Replace(ctx context.Context, q quiz.Quiz) error {
	_, err := r.client.Quiz.UpdateOneID(q.ID).
		SetTitle(q.Title).
		SetDurationMinutes(q.DurationMinutes).
		SetQuestions(questionsToJSON(q.Questions)).
		SetCreatedBy(q.CreatedBy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("replace quiz %s: %w", q.ID, err)
	}
	return nil
}

func (r *quizRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Quiz.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("delete quiz %s: %w", id, err)
	}
	return nil
}

// questionsToJSON converts domain questions to the stored JSON form.
func questionsToJSON(qs []quiz.Question) []schema.QuestionJSON {
	out := make([]schema.QuestionJSON, len(qs))
	for i, q := range qs {
		out[i] = schema.QuestionJSON{
			ID:            q.ID,
			Text:          q.Text,
			Kind:          string(q.Kind),
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	return out
}

// entQuizToQuiz converts an ent row to the domain type.
func entQuizToQuiz(row *ent.Quiz) quiz.Quiz {
	questions := make([]quiz.Question, len(row.Questions))
	for i, q := range row.Questions {
		questions[i] = quiz.Question{
			ID:            q.ID,
			Text:          q.Text,
			Kind:          quiz.Kind(q.Kind),
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	return quiz.Quiz{
		ID:              row.ID,
		Title:           row.Title,
		DurationMinutes: row.DurationMinutes,
		Questions:       questions,
		CreatedBy:       row.CreatedBy,
	}
}
