package authoring

import (
	"context"
	"errors"
	"testing"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

func validQuestion(id string) quiz.Question {
	return quiz.Question{
		ID:            id,
		Text:          "What is the capital of France?",
		Kind:          quiz.KindMultipleChoice,
		Options:       []string{"Paris", "Rome", "Berlin", "Madrid"},
		CorrectAnswer: "Paris",
	}
}

func TestNewDraft_Defaults(t *testing.T) {
	d := NewDraft("teacher1")

	if d.ID == "" {
		t.Error("expected generated draft ID")
	}
	if d.DurationMinutes != DefaultDurationMinutes {
		t.Errorf("expected default duration %d, got %d", DefaultDurationMinutes, d.DurationMinutes)
	}
	if d.CreatedBy != "teacher1" {
		t.Errorf("expected owner teacher1, got %q", d.CreatedBy)
	}
	if d.Editing() {
		t.Error("new draft must not be in editing mode")
	}
}

func TestDraft_BuildRequiresTitleAndQuestions(t *testing.T) {
	d := NewDraft("teacher1")

	if _, err := d.Build(); !errors.Is(err, quiz.ErrNoTitle) {
		t.Errorf("expected ErrNoTitle, got %v", err)
	}

	d.Title = "Capitals"
	if _, err := d.Build(); !errors.Is(err, quiz.ErrNoQuestions) {
		t.Errorf("expected ErrNoQuestions, got %v", err)
	}

	d.Append(validQuestion("q1"))
	q, err := d.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Title != "Capitals" || len(q.Questions) != 1 {
		t.Errorf("unexpected built quiz: %+v", q)
	}
}

func TestDraft_AppendAndRemove(t *testing.T) {
	d := NewDraft("teacher1")
	d.Append(validQuestion("q1"), validQuestion("q2"), validQuestion("q3"))

	d.Remove("q2")
	if len(d.Questions) != 3-1 {
		t.Fatalf("expected 2 questions after removal, got %d", len(d.Questions))
	}
	if d.Questions[0].ID != "q1" || d.Questions[1].ID != "q3" {
		t.Errorf("removal changed order: %v", d.QuestionTexts())
	}

	// Unknown ID is ignored.
	d.Remove("q9")
	if len(d.Questions) != 2 {
		t.Errorf("expected removal of unknown ID to be a no-op")
	}
}

func TestFromQuiz_EditsInPlace(t *testing.T) {
	orig := &quiz.Quiz{
		ID:              "quiz-1",
		Title:           "Capitals",
		DurationMinutes: 15,
		Questions:       []quiz.Question{validQuestion("q1")},
		CreatedBy:       "teacher1",
	}

	d := FromQuiz(orig)
	if !d.Editing() {
		t.Fatal("expected editing mode")
	}
	if d.ID != "quiz-1" || d.DurationMinutes != 15 {
		t.Errorf("draft did not carry quiz fields: %+v", d)
	}

	// Mutating the draft must not touch the source quiz.
	d.Append(validQuestion("q2"))
	if len(orig.Questions) != 1 {
		t.Error("draft mutation leaked into source quiz")
	}
}

type fakeQuizRepo struct {
	saved    *quiz.Quiz
	replaced *quiz.Quiz
}

func (f *fakeQuizRepo) List(ctx context.Context) ([]quiz.Quiz, error) { return nil, nil }
func (f *fakeQuizRepo) Get(ctx context.Context, id string) (*quiz.Quiz, error) {
	return nil, nil
}
func (f *fakeQuizRepo) Save(ctx context.Context, q quiz.Quiz) error {
	f.saved = &q
	return nil
}
func (f *fakeQuizRepo) Replace(ctx context.Context, q quiz.Quiz) error {
	f.replaced = &q
	return nil
}
func (f *fakeQuizRepo) Delete(ctx context.Context, id string) error { return nil }

func TestDraft_SaveCreatesNewQuiz(t *testing.T) {
	repo := &fakeQuizRepo{}
	d := NewDraft("teacher1")
	d.Title = "Capitals"
	d.Append(validQuestion("q1"))

	q, err := d.Save(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.saved == nil || repo.saved.ID != q.ID {
		t.Error("expected Save to create the quiz")
	}
	if repo.replaced != nil {
		t.Error("expected no replacement for a new draft")
	}
}

func TestDraft_SaveReplacesEditedQuiz(t *testing.T) {
	repo := &fakeQuizRepo{}
	d := FromQuiz(&quiz.Quiz{
		ID:              "quiz-1",
		Title:           "Capitals",
		DurationMinutes: 10,
		Questions:       []quiz.Question{validQuestion("q1")},
		CreatedBy:       "teacher1",
	})
	d.Title = "Capitals of Europe"

	q, err := d.Save(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.replaced == nil || repo.replaced.Title != "Capitals of Europe" {
		t.Error("expected Save to replace the edited quiz")
	}
	if repo.saved != nil {
		t.Error("expected no create for an edited draft")
	}
	if q.ID != "quiz-1" {
		t.Errorf("expected stable quiz ID, got %q", q.ID)
	}
}

func TestDraft_SaveBlockedByValidation(t *testing.T) {
	repo := &fakeQuizRepo{}
	d := NewDraft("teacher1")

	if _, err := d.Save(context.Background(), repo); err == nil {
		t.Fatal("expected validation error")
	}
	if repo.saved != nil || repo.replaced != nil {
		t.Error("expected no writes on validation failure")
	}
}
