package quiz

import (
	"errors"
	"testing"
)

func validQuestion() Question {
	return Question{
		ID:            "q1",
		Text:          "What is the capital of France?",
		Kind:          KindMultipleChoice,
		Options:       []string{"Paris", "Rome", "Berlin", "Madrid"},
		CorrectAnswer: "Paris",
	}
}

func validQuiz() Quiz {
	return Quiz{
		ID:              "quiz1",
		Title:           "Capitals",
		DurationMinutes: 10,
		Questions:       []Question{validQuestion()},
		CreatedBy:       "teacher1",
	}
}

func TestQuestionValidate(t *testing.T) {
	if err := validQuestion().Validate(); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}
}

func TestQuestionAnswerMustBeAnOption(t *testing.T) {
	q := validQuestion()
	q.CorrectAnswer = "London"
	err := q.Validate()
	if !errors.Is(err, ErrAnswerNotInOptions) {
		t.Fatalf("expected ErrAnswerNotInOptions, got %v", err)
	}
}

func TestQuestionRequiresText(t *testing.T) {
	q := validQuestion()
	q.Text = ""
	if q.Validate() == nil {
		t.Fatal("expected error for empty question text")
	}
}

func TestQuizValidate(t *testing.T) {
	if err := validQuiz().Validate(); err != nil {
		t.Fatalf("valid quiz rejected: %v", err)
	}
}

func TestQuizRejectsEmptyTitle(t *testing.T) {
	q := validQuiz()
	q.Title = ""
	if err := q.Validate(); !errors.Is(err, ErrNoTitle) {
		t.Fatalf("expected ErrNoTitle, got %v", err)
	}
}

func TestQuizRejectsNoQuestions(t *testing.T) {
	q := validQuiz()
	q.Questions = nil
	if err := q.Validate(); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestQuizRejectsZeroDuration(t *testing.T) {
	q := validQuiz()
	q.DurationMinutes = 0
	if q.Validate() == nil {
		t.Fatal("expected error for zero duration")
	}
}

func TestQuizSurfacesBadQuestion(t *testing.T) {
	q := validQuiz()
	q.Questions[0].CorrectAnswer = "nope"
	if err := q.Validate(); !errors.Is(err, ErrAnswerNotInOptions) {
		t.Fatalf("expected ErrAnswerNotInOptions, got %v", err)
	}
}
