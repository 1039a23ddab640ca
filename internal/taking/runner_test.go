package taking

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

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

func TestRunner_ShufflePreservesContent(t *testing.T) {
	q := capitalsQuiz()
	r := NewRunner(q, testRNG(42))

	if r.Len() != 2 {
		t.Fatalf("expected 2 questions, got %d", r.Len())
	}

	// Same questions, possibly reordered.
	seen := make(map[string]quiz.Question)
	for _, sq := range r.Questions() {
		seen[sq.ID] = sq
	}
	for _, orig := range q.Questions {
		got, ok := seen[orig.ID]
		if !ok {
			t.Fatalf("question %s missing after shuffle", orig.ID)
		}
		if got.Text != orig.Text || got.CorrectAnswer != orig.CorrectAnswer {
			t.Errorf("question %s content changed by shuffle", orig.ID)
		}
		opts := make(map[string]bool)
		for _, o := range got.Options {
			opts[o] = true
		}
		if len(opts) != len(orig.Options) {
			t.Errorf("question %s option set changed by shuffle", orig.ID)
		}
		for _, o := range orig.Options {
			if !opts[o] {
				t.Errorf("question %s lost option %q", orig.ID, o)
			}
		}
	}

	// The original quiz must be untouched.
	if q.Questions[0].Options[0] != "Paris" {
		t.Error("shuffle mutated the original quiz")
	}
}

func TestRunner_CursorClamped(t *testing.T) {
	r := NewRunner(capitalsQuiz(), testRNG(1))

	r.Prev()
	if r.Cursor() != 0 {
		t.Errorf("expected cursor clamped at 0, got %d", r.Cursor())
	}

	r.Next()
	if r.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", r.Cursor())
	}
	if !r.OnLast() {
		t.Error("expected OnLast on final question")
	}

	r.Next()
	if r.Cursor() != 1 {
		t.Errorf("expected cursor clamped at 1, got %d", r.Cursor())
	}
}

func TestRunner_SelectAndRechoose(t *testing.T) {
	r := NewRunner(capitalsQuiz(), testRNG(7))

	first := r.Current()
	r.Select(first.Options[0])
	if r.Answer(first.ID) != first.Options[0] {
		t.Errorf("expected answer recorded")
	}

	r.Select(first.Options[1])
	if r.Answer(first.ID) != first.Options[1] {
		t.Errorf("expected re-selection to overwrite")
	}
	if r.Answered() != 1 {
		t.Errorf("expected 1 answered question, got %d", r.Answered())
	}
}

func TestRunner_SubmitScoresOriginalOrder(t *testing.T) {
	q := capitalsQuiz()
	r := NewRunner(q, testRNG(99))

	// Answer q1 correctly and q2 incorrectly, navigating display order.
	for i := 0; i < r.Len(); i++ {
		cur := r.Current()
		switch cur.ID {
		case "q1":
			r.Select("Paris")
		case "q2":
			r.Select("False")
		}
		r.Next()
	}

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	att, ok := r.Submit("student1", now)
	if !ok {
		t.Fatal("expected submit to succeed")
	}
	if att.Score != 1 {
		t.Errorf("expected score 1, got %d", att.Score)
	}
	if att.TotalQuestions != 2 {
		t.Errorf("expected 2 total questions, got %d", att.TotalQuestions)
	}
	if att.QuizID != "quiz-1" || att.StudentID != "student1" {
		t.Errorf("unexpected attempt identity: %+v", att)
	}
	if !att.CompletedAt.Equal(now) {
		t.Errorf("unexpected completion time: %v", att.CompletedAt)
	}
	if att.ID == "" {
		t.Error("expected attempt ID")
	}
	if r.State() != StateSubmitted {
		t.Error("expected submitted state")
	}
}

func TestRunner_SubmitOnlyOnce(t *testing.T) {
	r := NewRunner(capitalsQuiz(), testRNG(3))

	_, ok := r.Submit("student1", time.Now())
	if !ok {
		t.Fatal("expected first submit to succeed")
	}
	if _, ok := r.Submit("student1", time.Now()); ok {
		t.Fatal("expected second submit to be rejected")
	}

	// Selection after submit is ignored.
	before := r.Answered()
	r.Select(r.Current().Options[0])
	if r.Answered() != before {
		t.Error("expected selection after submit to be ignored")
	}
}

func TestRunner_UnansweredCountAsWrong(t *testing.T) {
	r := NewRunner(capitalsQuiz(), testRNG(5))

	att, ok := r.Submit("student2", time.Now())
	if !ok {
		t.Fatal("expected submit to succeed")
	}
	if att.Score != 0 {
		t.Errorf("expected score 0 with no answers, got %d", att.Score)
	}
	if len(att.Answers) != 0 {
		t.Errorf("expected empty answers map, got %v", att.Answers)
	}
}

func TestRunner_TimerCountsDownAndExpires(t *testing.T) {
	q := capitalsQuiz()
	q.DurationMinutes = 1
	r := NewRunner(q, testRNG(11))

	if r.Remaining() != 60 {
		t.Fatalf("expected 60 seconds, got %d", r.Remaining())
	}

	expired := false
	for i := 0; i < 60; i++ {
		expired = r.Tick()
	}
	if !expired {
		t.Fatal("expected timer to expire after 60 ticks")
	}
	if r.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", r.Remaining())
	}

	// Ticking a submitted run is a no-op.
	r.Submit("student1", time.Now())
	if r.Tick() {
		t.Error("expected no expiry signal after submit")
	}
}

func TestScore_AllCombinations(t *testing.T) {
	q := capitalsQuiz()

	tests := []struct {
		name    string
		answers map[string]string
		want    int
	}{
		{"both correct", map[string]string{"q1": "Paris", "q2": "True"}, 2},
		{"one correct", map[string]string{"q1": "Paris", "q2": "False"}, 1},
		{"none correct", map[string]string{"q1": "Rome", "q2": "False"}, 0},
		{"partial answers", map[string]string{"q2": "True"}, 1},
		{"no answers", map[string]string{}, 0},
		{"unknown question id ignored", map[string]string{"q9": "Paris"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(q, tt.answers); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}
