package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

type fakeQuizRepo struct {
	quizzes []quiz.Quiz
	deleted []string
}

func (f *fakeQuizRepo) List(ctx context.Context) ([]quiz.Quiz, error) { return f.quizzes, nil }
func (f *fakeQuizRepo) Get(ctx context.Context, id string) (*quiz.Quiz, error) {
	for _, q := range f.quizzes {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, nil
}
func (f *fakeQuizRepo) Save(ctx context.Context, q quiz.Quiz) error    { return nil }
func (f *fakeQuizRepo) Replace(ctx context.Context, q quiz.Quiz) error { return nil }
func (f *fakeQuizRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAttemptRepo struct {
	attempts []quiz.Attempt
}

func (f *fakeAttemptRepo) Append(ctx context.Context, a quiz.Attempt) error { return nil }
func (f *fakeAttemptRepo) Get(ctx context.Context, id string) (*quiz.Attempt, error) {
	return nil, nil
}
func (f *fakeAttemptRepo) ListByStudent(ctx context.Context, studentID string) ([]quiz.Attempt, error) {
	var out []quiz.Attempt
	for _, a := range f.attempts {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeAttemptRepo) CountByQuiz(ctx context.Context, quizID string) (int, error) {
	n := 0
	for _, a := range f.attempts {
		if a.QuizID == quizID {
			n++
		}
	}
	return n, nil
}
func (f *fakeAttemptRepo) ExistsForStudent(ctx context.Context, studentID, quizID string) (bool, error) {
	for _, a := range f.attempts {
		if a.StudentID == studentID && a.QuizID == quizID {
			return true, nil
		}
	}
	return false, nil
}

func testData() (*fakeQuizRepo, *fakeAttemptRepo) {
	quizzes := &fakeQuizRepo{
		quizzes: []quiz.Quiz{
			{ID: "quiz-1", Title: "Capitals", DurationMinutes: 10, CreatedBy: "teacher1"},
			{ID: "quiz-2", Title: "Rivers", DurationMinutes: 5, CreatedBy: "teacher1"},
		},
	}
	attempts := &fakeAttemptRepo{
		attempts: []quiz.Attempt{
			{
				ID: "att-1", QuizID: "quiz-1", StudentID: "student1",
				Score: 1, TotalQuestions: 2,
				CompletedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
			},
			{
				ID: "att-2", QuizID: "quiz-1", StudentID: "student2",
				Score: 2, TotalQuestions: 2,
				CompletedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			},
			{
				ID: "att-3", QuizID: "quiz-gone", StudentID: "student1",
				Score: 0, TotalQuestions: 3,
				CompletedAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
			},
		},
	}
	return quizzes, attempts
}

func TestTeacherView(t *testing.T) {
	quizzes, attempts := testData()
	quizzes.quizzes = append(quizzes.quizzes, quiz.Quiz{
		ID: "quiz-other", Title: "Oceans", DurationMinutes: 5, CreatedBy: "teacher2",
	})
	svc := New(quizzes, attempts)

	rows, err := svc.TeacherView(context.Background(), "teacher1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Quiz.ID != "quiz-1" || rows[0].Attempts != 2 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Quiz.ID != "quiz-2" || rows[1].Attempts != 0 {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
	for _, r := range rows {
		if r.Quiz.CreatedBy != "teacher1" {
			t.Errorf("listed a quiz owned by %s: %+v", r.Quiz.CreatedBy, r.Quiz)
		}
	}
}

func TestTeacherView_OnlyOwnQuizzes(t *testing.T) {
	quizzes, attempts := testData()
	quizzes.quizzes = append(quizzes.quizzes, quiz.Quiz{
		ID: "quiz-other", Title: "Oceans", DurationMinutes: 5, CreatedBy: "teacher2",
	})
	svc := New(quizzes, attempts)

	rows, err := svc.TeacherView(context.Background(), "teacher2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Quiz.ID != "quiz-other" {
		t.Fatalf("expected only quiz-other, got %+v", rows)
	}
}

func TestStudentView_SplitsAvailableAndCompleted(t *testing.T) {
	quizzes, attempts := testData()
	svc := New(quizzes, attempts)

	view, err := svc.StudentView(context.Background(), "student1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(view.Available) != 1 || view.Available[0].ID != "quiz-2" {
		t.Errorf("expected only quiz-2 available, got %+v", view.Available)
	}
	if len(view.Completed) != 2 {
		t.Fatalf("expected 2 completed attempts, got %d", len(view.Completed))
	}

	// The attempt on a live quiz carries its title.
	if view.Completed[0].QuizTitle != "Capitals" || !view.Completed[0].QuizFound {
		t.Errorf("unexpected completed row: %+v", view.Completed[0])
	}
	// The attempt on a deleted quiz survives without a title.
	if view.Completed[1].QuizFound {
		t.Errorf("expected deleted quiz to be flagged: %+v", view.Completed[1])
	}
}

func TestStudentView_FreshStudentSeesEverything(t *testing.T) {
	quizzes, attempts := testData()
	svc := New(quizzes, attempts)

	view, err := svc.StudentView(context.Background(), "student3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Available) != 2 {
		t.Errorf("expected all quizzes available, got %d", len(view.Available))
	}
	if len(view.Completed) != 0 {
		t.Errorf("expected no completed attempts, got %d", len(view.Completed))
	}
}

func TestDeleteQuiz_LeavesAttempts(t *testing.T) {
	quizzes, attempts := testData()
	svc := New(quizzes, attempts)

	if err := svc.DeleteQuiz(context.Background(), "quiz-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quizzes.deleted) != 1 || quizzes.deleted[0] != "quiz-1" {
		t.Errorf("expected quiz-1 deleted, got %v", quizzes.deleted)
	}
	if len(attempts.attempts) != 3 {
		t.Errorf("expected attempts untouched, got %d", len(attempts.attempts))
	}
}
