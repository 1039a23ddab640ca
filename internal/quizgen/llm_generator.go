package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck/internal/llm"
	"github.com/quizdeck/quizdeck/internal/quiz"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is one raw LLM question before validation.
type questionOutput struct {
	QuestionText       string   `json:"question_text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
}

// batchOutput is the raw LLM response envelope.
type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

// Generate produces a validated batch of questions for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) ([]quiz.Question, error) {
	if input.Count < 1 || input.Count > 10 {
		return nil, fmt.Errorf("question count must be between 1 and 10, got %d", input.Count)
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(raw.Questions) == 0 {
		return nil, fmt.Errorf("LLM returned no questions")
	}

	questions := make([]quiz.Question, 0, len(raw.Questions))
	for i, out := range raw.Questions {
		if out.CorrectAnswerIndex < 0 || out.CorrectAnswerIndex >= len(out.Options) {
			return nil, fmt.Errorf("question %d: correct_answer_index %d out of range for %d options",
				i+1, out.CorrectAnswerIndex, len(out.Options))
		}

		q := quiz.Question{
			ID:            uuid.NewString(),
			Text:          out.QuestionText,
			Kind:          input.Kind,
			Options:       out.Options,
			CorrectAnswer: out.Options[out.CorrectAnswerIndex],
		}

		for _, v := range g.config.Validators {
			if verr := v.Validate(&q, input); verr != nil {
				return nil, fmt.Errorf("question %d: %w", i+1, verr)
			}
		}

		questions = append(questions, q)
	}

	return questions, nil
}
