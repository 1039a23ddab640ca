package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records one completed (or timed-out) run of a student through
// a quiz. Attempts are append-only and never updated; deleting a quiz
// does not cascade to its attempts.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("UUID assigned at submission"),
		field.String("quiz_id").
			Immutable().
			Comment("Quiz this attempt was taken against (may dangle after quiz deletion)"),
		field.String("student_id").
			Immutable(),
		field.JSON("answers", map[string]string{}).
			Comment("Question ID to selected option; skipped questions are absent"),
		field.Int("score").
			NonNegative(),
		field.Int("total_questions").
			Positive(),
		field.Time("completed_at").
			Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("student_id"),
		index.Fields("student_id", "quiz_id"),
	}
}
