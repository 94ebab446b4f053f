package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Sequence is a named counter. Journal tables take their sequence numbers
// from one row so session events and LLM requests interleave in order.
type Sequence struct {
	ent.Schema
}

func (Sequence) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Counter name"),
		field.Int64("next_val").
			Positive().
			Comment("Value handed out by the next call"),
	}
}
