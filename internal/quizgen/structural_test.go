package quizgen

import (
	"strings"
	"testing"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

func mcQuestion() quiz.Question {
	return quiz.Question{
		ID:            "q1",
		Text:          "What is the capital of France?",
		Kind:          quiz.KindMultipleChoice,
		Options:       []string{"Paris", "Rome", "Berlin", "Madrid"},
		CorrectAnswer: "Paris",
	}
}

func TestStructural_ValidMultipleChoice(t *testing.T) {
	v := &StructuralValidator{}
	q := mcQuestion()
	if err := v.Validate(&q, Input{Kind: quiz.KindMultipleChoice}); err != nil {
		t.Fatalf("expected pass, got: %v", err)
	}
}

func TestStructural_ValidTrueFalse(t *testing.T) {
	v := &StructuralValidator{}
	q := quiz.Question{
		ID:            "q1",
		Text:          "The Seine flows through Paris.",
		Kind:          quiz.KindTrueFalse,
		Options:       []string{"True", "False"},
		CorrectAnswer: "True",
	}
	if err := v.Validate(&q, Input{Kind: quiz.KindTrueFalse}); err != nil {
		t.Fatalf("expected pass, got: %v", err)
	}
}

func TestStructural_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*quiz.Question)
		kind   quiz.Kind
	}{
		{
			name:   "empty text",
			mutate: func(q *quiz.Question) { q.Text = "" },
			kind:   quiz.KindMultipleChoice,
		},
		{
			name:   "text too long",
			mutate: func(q *quiz.Question) { q.Text = strings.Repeat("x", 501) },
			kind:   quiz.KindMultipleChoice,
		},
		{
			name:   "wrong option count",
			mutate: func(q *quiz.Question) { q.Options = []string{"Paris", "Rome"} },
			kind:   quiz.KindMultipleChoice,
		},
		{
			name: "duplicate options",
			mutate: func(q *quiz.Question) {
				q.Options = []string{"Paris", "Paris", "Berlin", "Madrid"}
			},
			kind: quiz.KindMultipleChoice,
		},
		{
			name: "empty option",
			mutate: func(q *quiz.Question) {
				q.Options = []string{"Paris", "", "Berlin", "Madrid"}
			},
			kind: quiz.KindMultipleChoice,
		},
		{
			name:   "answer not in options",
			mutate: func(q *quiz.Question) { q.CorrectAnswer = "London" },
			kind:   quiz.KindMultipleChoice,
		},
		{
			name: "true/false with wrong options",
			mutate: func(q *quiz.Question) {
				q.Options = []string{"Yes", "No"}
				q.CorrectAnswer = "Yes"
			},
			kind: quiz.KindTrueFalse,
		},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mcQuestion()
			tt.mutate(&q)
			if err := v.Validate(&q, Input{Kind: tt.kind}); err == nil {
				t.Fatal("expected rejection")
			}
		})
	}
}
