package quizgen

import (
	"context"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

// Generator produces quiz questions using an LLM provider.
type Generator interface {
	// Generate produces a batch of questions on the given topic.
	// All configured validators run before returning; the returned
	// questions are ready to insert into a quiz draft.
	Generate(ctx context.Context, input Input) ([]quiz.Question, error)
}

// Input holds all context needed to generate questions.
type Input struct {
	// Topic is the subject matter for the questions, as entered by
	// the quiz author, e.g. "The Solar System" or "French Revolution".
	Topic string

	// Count is the number of questions to generate (1-10).
	Count int

	// Kind selects the question format for the whole batch.
	Kind quiz.Kind

	// Existing contains the text of questions already in the draft,
	// so the model does not repeat them.
	Existing []string
}
