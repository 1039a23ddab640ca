package store

import (
	"context"
	"time"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

// QuizRepo manages the quiz collection. Callers invoke it imperatively
// at transaction boundaries (save, delete), never as a side effect of
// rendering.
type QuizRepo interface {
	// List returns all quizzes in creation order.
	List(ctx context.Context) ([]quiz.Quiz, error)

	// Get returns the quiz with the given id, or nil if it does not exist.
	Get(ctx context.Context, id string) (*quiz.Quiz, error)

	// Save stores a newly created quiz.
	Save(ctx context.Context, q quiz.Quiz) error

	// Replace overwrites the stored quiz with the same id wholesale.
	Replace(ctx context.Context, q quiz.Quiz) error

	// Delete removes a quiz. Attempts referencing it are left in place.
	Delete(ctx context.Context, id string) error
}

// AttemptRepo manages the append-only attempt collection.
type AttemptRepo interface {
	// Append stores a new attempt.
	Append(ctx context.Context, a quiz.Attempt) error

	// Get returns the attempt with the given id, or nil if it does not exist.
	Get(ctx context.Context, id string) (*quiz.Attempt, error)

	// ListByStudent returns a student's attempts, oldest first.
	ListByStudent(ctx context.Context, studentID string) ([]quiz.Attempt, error)

	// CountByQuiz returns how many attempts exist for a quiz.
	CountByQuiz(ctx context.Context, quizID string) (int, error)

	// ExistsForStudent reports whether the student has any attempt for the quiz.
	ExistsForStudent(ctx context.Context, studentID, quizID string) (bool, error)
}

// SessionRepo persists the currently logged-in user id.
type SessionRepo interface {
	// Current returns the persisted user id, or "" if nobody is logged in.
	Current(ctx context.Context) (string, error)

	// Set records userID as the logged-in user, replacing any prior value.
	Set(ctx context.Context, userID string) error

	// Clear removes the persisted login.
	Clear(ctx context.Context) error
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates token usage for one purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event by id, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose returns aggregated token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel returns aggregated token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
