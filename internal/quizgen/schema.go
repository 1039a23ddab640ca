package quizgen

import "github.com/quizdeck/quizdeck/internal/llm"

// QuestionsSchema defines the JSON schema for LLM question generation
// responses. The root is an object wrapping the questions array so that
// strict structured-output modes accept it.
var QuestionsSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A batch of quiz questions on a single topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the student, in plain text",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "The answer options. Exactly 4 for multiple choice; exactly [\"True\", \"False\"] for true/false.",
						},
						"correct_answer_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"description": "Zero-based index into options of the correct answer",
						},
					},
					"required":             []any{"question_text", "options", "correct_answer_index"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
