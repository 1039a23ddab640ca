package taking

import (
	"context"
	"testing"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/screen"
)

type fakeQuizRepo struct {
	quiz *quiz.Quiz
}

func (f *fakeQuizRepo) List(ctx context.Context) ([]quiz.Quiz, error) { return nil, nil }
func (f *fakeQuizRepo) Get(ctx context.Context, id string) (*quiz.Quiz, error) {
	if f.quiz != nil && f.quiz.ID == id {
		return f.quiz, nil
	}
	return nil, nil
}
func (f *fakeQuizRepo) Save(ctx context.Context, q quiz.Quiz) error    { return nil }
func (f *fakeQuizRepo) Replace(ctx context.Context, q quiz.Quiz) error { return nil }
func (f *fakeQuizRepo) Delete(ctx context.Context, id string) error    { return nil }

type fakeAttemptRepo struct {
	attempts []quiz.Attempt
	appended []quiz.Attempt
}

func (f *fakeAttemptRepo) Append(ctx context.Context, a quiz.Attempt) error {
	f.appended = append(f.appended, a)
	return nil
}
func (f *fakeAttemptRepo) Get(ctx context.Context, id string) (*quiz.Attempt, error) {
	return nil, nil
}
func (f *fakeAttemptRepo) ListByStudent(ctx context.Context, studentID string) ([]quiz.Attempt, error) {
	return nil, nil
}
func (f *fakeAttemptRepo) CountByQuiz(ctx context.Context, quizID string) (int, error) {
	return 0, nil
}
func (f *fakeAttemptRepo) ExistsForStudent(ctx context.Context, studentID, quizID string) (bool, error) {
	for _, a := range f.attempts {
		if a.StudentID == studentID && a.QuizID == quizID {
			return true, nil
		}
	}
	return false, nil
}

func testQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:              "quiz-1",
		Title:           "Capitals",
		DurationMinutes: 5,
		CreatedBy:       "teacher1",
		Questions: []quiz.Question{
			{
				ID: "q1", Text: "Capital of France?", Kind: quiz.KindMultipleChoice,
				Options: []string{"Paris", "Lyon"}, CorrectAnswer: "Paris",
			},
		},
	}
}

func loadedScreen(t *testing.T, quizzes *fakeQuizRepo, attempts *fakeAttemptRepo) *TakingScreen {
	t.Helper()
	s := New("quiz-1", "student1", quizzes, attempts,
		func() screen.Screen { return nil },
		func(attemptID string) screen.Screen { return nil })
	next, _ := s.Update(quizLoadedMsg{quiz: quizzes.quiz})
	loaded, ok := next.(*TakingScreen)
	if !ok || loaded.runner == nil {
		t.Fatalf("screen did not start the run: %+v", next)
	}
	return loaded
}

func TestSubmit_RecordsAttempt(t *testing.T) {
	quizzes := &fakeQuizRepo{quiz: testQuiz()}
	attempts := &fakeAttemptRepo{}
	s := loadedScreen(t, quizzes, attempts)

	cmd := s.submit()
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	raw := cmd()
	msg, ok := raw.(submittedMsg)
	if !ok {
		t.Fatalf("expected submittedMsg, got %T", raw)
	}
	if msg.err != nil {
		t.Fatalf("unexpected error: %v", msg.err)
	}
	if len(attempts.appended) != 1 {
		t.Fatalf("expected 1 recorded attempt, got %d", len(attempts.appended))
	}
	if attempts.appended[0].QuizID != "quiz-1" || attempts.appended[0].StudentID != "student1" {
		t.Errorf("unexpected attempt: %+v", attempts.appended[0])
	}
}

func TestSubmit_RejectsSecondAttempt(t *testing.T) {
	quizzes := &fakeQuizRepo{quiz: testQuiz()}
	attempts := &fakeAttemptRepo{
		attempts: []quiz.Attempt{{ID: "att-1", QuizID: "quiz-1", StudentID: "student1"}},
	}
	s := loadedScreen(t, quizzes, attempts)

	cmd := s.submit()
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	raw := cmd()
	msg, ok := raw.(submittedMsg)
	if !ok {
		t.Fatalf("expected submittedMsg, got %T", raw)
	}
	if msg.err == nil {
		t.Fatal("expected a duplicate-submission error")
	}
	if len(attempts.appended) != 0 {
		t.Fatalf("expected no recorded attempt, got %d", len(attempts.appended))
	}

	// The error lands on screen and any key returns to the dashboard.
	next, _ := s.Update(msg)
	if next.(*TakingScreen).errMsg == "" {
		t.Error("expected the error to be shown")
	}
}
