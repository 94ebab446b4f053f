package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PendingSubmission keeps the responses of a session whose submission
// could not be delivered, so they can be re-sent later.
type PendingSubmission struct {
	ent.Schema
}

func (PendingSubmission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Session UUID"),
		field.String("quiz_id").
			NotEmpty(),
		field.Text("responses").
			Comment("JSON array of {questionId, kind, value}"),
		field.Int("attempts").
			Default(0).
			Comment("Remote submission calls made so far"),
		field.String("last_error").
			Default(""),
		field.Time("created_at"),
		field.Time("updated_at"),
	}
}
