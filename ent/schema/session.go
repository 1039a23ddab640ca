package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Session persists the currently logged-in user between launches.
// At most one row is meaningful; login replaces it and logout clears it.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.Time("logged_in_at").
			Default(time.Now),
	}
}
