package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionJSON is the stored form of a question inside the quiz's
// questions column. Questions have no table of their own: a quiz owns
// its question list wholesale and edits replace the entire list.
type QuestionJSON struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Kind          string   `json:"kind"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Quiz is a teacher-authored quiz.
type Quiz struct {
	ent.Schema
}

func (Quiz) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("UUID assigned at creation"),
		field.String("title").
			NotEmpty(),
		field.Int("duration_minutes").
			Positive(),
		field.JSON("questions", []QuestionJSON{}).
			Comment("Ordered question list as JSON"),
		field.String("created_by").
			Comment("User ID of the owning teacher"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Quiz) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_by"),
	}
}
