package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// JournalMixin gives an append-only table its position in the shared
// journal sequence and the time the row was written.
type JournalMixin struct {
	mixin.Schema
}

func (JournalMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Position in the journal sequence, shared across tables"),
		field.Time("timestamp").
			Default(func() time.Time { return time.Now().UTC() }).
			Immutable().
			Comment("When the row was appended, UTC"),
	}
}

// Indexes covers the time-window queries of the history and llm list views.
func (JournalMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
