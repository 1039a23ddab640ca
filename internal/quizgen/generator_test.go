package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/quizdeck/quizdeck/internal/llm"
	"github.com/quizdeck/quizdeck/internal/quiz"
)

func validBatchJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"question_text": "What is the capital of France?",
				"options": ["Paris", "Rome", "Berlin", "Madrid"],
				"correct_answer_index": 0
			},
			{
				"question_text": "Which river flows through Paris?",
				"options": ["Thames", "Seine", "Danube", "Rhine"],
				"correct_answer_index": 1
			}
		]
	}`)
}

func trueFalseBatchJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"question_text": "The Seine flows through Paris.",
				"options": ["True", "False"],
				"correct_answer_index": 0
			}
		]
	}`)
}

func TestGenerate_MultipleChoice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), Input{
		Topic: "European Capitals",
		Count: 2,
		Kind:  quiz.KindMultipleChoice,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if qs[0].Text != "What is the capital of France?" {
		t.Errorf("unexpected text: %q", qs[0].Text)
	}
	if qs[0].CorrectAnswer != "Paris" {
		t.Errorf("expected correct answer Paris, got %q", qs[0].CorrectAnswer)
	}
	if qs[1].CorrectAnswer != "Seine" {
		t.Errorf("expected correct answer Seine, got %q", qs[1].CorrectAnswer)
	}
	for _, q := range qs {
		if q.ID == "" {
			t.Error("expected generated question to have an ID")
		}
		if q.Kind != quiz.KindMultipleChoice {
			t.Errorf("expected multiple choice kind, got %q", q.Kind)
		}
	}
}

func TestGenerate_TrueFalse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: trueFalseBatchJSON()})
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), Input{
		Topic: "Rivers of Europe",
		Count: 1,
		Kind:  quiz.KindTrueFalse,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	if qs[0].Kind != quiz.KindTrueFalse {
		t.Errorf("expected true/false kind, got %q", qs[0].Kind)
	}
	if qs[0].CorrectAnswer != "True" {
		t.Errorf("expected correct answer True, got %q", qs[0].CorrectAnswer)
	}
}

func TestGenerate_CountOutOfRange(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	for _, count := range []int{0, -1, 11} {
		_, err := gen.Generate(context.Background(), Input{
			Topic: "Anything",
			Count: count,
			Kind:  quiz.KindMultipleChoice,
		})
		if err == nil {
			t.Errorf("count %d: expected error", count)
		}
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no provider calls for invalid counts, got %d", mock.CallCount())
	}
}

func TestGenerate_IndexOutOfRange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"questions": [
				{
					"question_text": "What is the capital of France?",
					"options": ["Paris", "Rome", "Berlin", "Madrid"],
					"correct_answer_index": 4
				}
			]
		}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{
		Topic: "European Capitals",
		Count: 1,
		Kind:  quiz.KindMultipleChoice,
	})
	if err == nil {
		t.Fatal("expected error for out-of-range index")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerate_StructuralRejection(t *testing.T) {
	// Three options for a multiple choice batch.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"questions": [
				{
					"question_text": "What is the capital of France?",
					"options": ["Paris", "Rome", "Berlin"],
					"correct_answer_index": 0
				}
			]
		}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{
		Topic: "European Capitals",
		Count: 1,
		Kind:  quiz.KindMultipleChoice,
	})
	if err == nil {
		t.Fatal("expected structural validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got: %T", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("expected structural validator, got %q", verr.Validator)
	}
}

func TestGenerate_EmptyBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": []}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{
		Topic: "Anything",
		Count: 3,
		Kind:  quiz.KindMultipleChoice,
	})
	if err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{
		Topic: "Anything",
		Count: 1,
		Kind:  quiz.KindMultipleChoice,
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerate_PromptIncludesExisting(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: trueFalseBatchJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{
		Topic:    "Rivers of Europe",
		Count:    1,
		Kind:     quiz.KindTrueFalse,
		Existing: []string{"The Danube flows through Vienna."},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "The Danube flows through Vienna.") {
		t.Errorf("expected existing question in prompt, got:\n%s", userMsg)
	}
	if !strings.Contains(userMsg, "Rivers of Europe") {
		t.Errorf("expected topic in prompt, got:\n%s", userMsg)
	}
}
