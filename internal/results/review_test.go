package results

import (
	"context"
	"testing"
	"time"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

func capitalsQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:              "quiz-1",
		Title:           "European Capitals",
		DurationMinutes: 10,
		CreatedBy:       "teacher1",
		Questions: []quiz.Question{
			{
				ID:            "q1",
				Text:          "What is the capital of France?",
				Kind:          quiz.KindMultipleChoice,
				Options:       []string{"Paris", "Rome", "Berlin", "Madrid"},
				CorrectAnswer: "Paris",
			},
			{
				ID:            "q2",
				Text:          "The Seine flows through Paris.",
				Kind:          quiz.KindTrueFalse,
				Options:       []string{"True", "False"},
				CorrectAnswer: "True",
			},
		},
	}
}

func attemptFor(q *quiz.Quiz, answers map[string]string, score int) *quiz.Attempt {
	return &quiz.Attempt{
		ID:             "att-1",
		QuizID:         q.ID,
		StudentID:      "student1",
		Answers:        answers,
		Score:          score,
		TotalQuestions: len(q.Questions),
		CompletedAt:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestBuild_MarksOptions(t *testing.T) {
	q := capitalsQuiz()
	att := attemptFor(q, map[string]string{"q1": "Rome", "q2": "True"}, 1)

	r := Build(q, att)
	if len(r.Questions) != 2 {
		t.Fatalf("expected 2 question reviews, got %d", len(r.Questions))
	}

	// q1: wrong answer, both the pick and the truth are marked.
	q1 := r.Questions[0]
	if q1.Correct {
		t.Error("q1 should be marked wrong")
	}
	if !q1.Answered {
		t.Error("q1 should be marked answered")
	}
	for _, opt := range q1.Options {
		switch opt.Text {
		case "Paris":
			if !opt.Correct || opt.Selected {
				t.Errorf("Paris marks wrong: %+v", opt)
			}
		case "Rome":
			if opt.Correct || !opt.Selected {
				t.Errorf("Rome marks wrong: %+v", opt)
			}
		default:
			if opt.Correct || opt.Selected {
				t.Errorf("%s should carry no marks: %+v", opt.Text, opt)
			}
		}
	}

	// q2: correct answer.
	q2 := r.Questions[1]
	if !q2.Correct || !q2.Answered {
		t.Errorf("q2 should be answered and correct: %+v", q2)
	}
}

func TestBuild_UnansweredQuestion(t *testing.T) {
	q := capitalsQuiz()
	att := attemptFor(q, map[string]string{"q2": "True"}, 1)

	r := Build(q, att)
	q1 := r.Questions[0]
	if q1.Answered {
		t.Error("q1 should be unanswered")
	}
	if q1.Correct {
		t.Error("unanswered question must not count as correct")
	}
	for _, opt := range q1.Options {
		if opt.Selected {
			t.Errorf("no option should be selected: %+v", opt)
		}
	}
}

func TestPercentage_Rounding(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{0, 2, 0},
		{1, 2, 50},
		{2, 2, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 6, 17},
		{0, 0, 0},
	}

	for _, tt := range tests {
		r := &Review{Attempt: &quiz.Attempt{Score: tt.score, TotalQuestions: tt.total}}
		if got := r.Percentage(); got != tt.want {
			t.Errorf("%d/%d: Percentage() = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

type fakeQuizRepo struct {
	quizzes map[string]*quiz.Quiz
}

func (f *fakeQuizRepo) List(ctx context.Context) ([]quiz.Quiz, error) { return nil, nil }
func (f *fakeQuizRepo) Get(ctx context.Context, id string) (*quiz.Quiz, error) {
	return f.quizzes[id], nil
}
func (f *fakeQuizRepo) Save(ctx context.Context, q quiz.Quiz) error    { return nil }
func (f *fakeQuizRepo) Replace(ctx context.Context, q quiz.Quiz) error { return nil }
func (f *fakeQuizRepo) Delete(ctx context.Context, id string) error    { return nil }

type fakeAttemptRepo struct {
	attempts map[string]*quiz.Attempt
}

func (f *fakeAttemptRepo) Append(ctx context.Context, a quiz.Attempt) error { return nil }
func (f *fakeAttemptRepo) Get(ctx context.Context, id string) (*quiz.Attempt, error) {
	return f.attempts[id], nil
}
func (f *fakeAttemptRepo) ListByStudent(ctx context.Context, studentID string) ([]quiz.Attempt, error) {
	return nil, nil
}
func (f *fakeAttemptRepo) CountByQuiz(ctx context.Context, quizID string) (int, error) {
	return 0, nil
}
func (f *fakeAttemptRepo) ExistsForStudent(ctx context.Context, studentID, quizID string) (bool, error) {
	return false, nil
}

func TestBuildFromRepos(t *testing.T) {
	q := capitalsQuiz()
	att := attemptFor(q, map[string]string{"q1": "Paris", "q2": "True"}, 2)

	quizzes := &fakeQuizRepo{quizzes: map[string]*quiz.Quiz{q.ID: q}}
	attempts := &fakeAttemptRepo{attempts: map[string]*quiz.Attempt{att.ID: att}}

	r, err := BuildFromRepos(context.Background(), quizzes, attempts, "att-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Percentage() != 100 {
		t.Errorf("expected 100%%, got %d", r.Percentage())
	}
}

func TestBuildFromRepos_QuizDeleted(t *testing.T) {
	q := capitalsQuiz()
	att := attemptFor(q, nil, 0)

	quizzes := &fakeQuizRepo{quizzes: map[string]*quiz.Quiz{}}
	attempts := &fakeAttemptRepo{attempts: map[string]*quiz.Attempt{att.ID: att}}

	if _, err := BuildFromRepos(context.Background(), quizzes, attempts, "att-1"); err == nil {
		t.Fatal("expected error for deleted quiz")
	}
}

func TestBuildFromRepos_AttemptMissing(t *testing.T) {
	quizzes := &fakeQuizRepo{quizzes: map[string]*quiz.Quiz{}}
	attempts := &fakeAttemptRepo{attempts: map[string]*quiz.Attempt{}}

	if _, err := BuildFromRepos(context.Background(), quizzes, attempts, "nope"); err == nil {
		t.Fatal("expected error for missing attempt")
	}
}
