package quizgen

import (
	"fmt"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, used in
	// error messages, e.g. "structural".
	Name() string

	// Validate checks the question and returns nil if it passes.
	// The validator receives the full Input for context (e.g. to know
	// which format the batch was generated for).
	Validate(q *quiz.Question, input Input) *ValidationError
}

// ValidationError describes why a generated question was rejected.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
