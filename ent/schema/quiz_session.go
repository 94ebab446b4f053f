package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizSession is one learner attempt at one quiz. The row is written when
// the quiz loads and updated once the attempt ends.
type QuizSession struct {
	ent.Schema
}

func (QuizSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Session UUID"),
		field.String("quiz_id").
			NotEmpty(),
		field.String("quiz_title").
			Default(""),
		field.String("status").
			Comment("in_progress, completed, failed or abandoned"),
		field.String("submit_trigger").
			Default("").
			Comment("What started the final submission: manual, timer, resubmit"),
		field.Int("answered").
			Default(0),
		field.Int("total").
			Default(0),
		field.Float("score").
			Optional().
			Nillable().
			Comment("Authoritative score from the platform, 0-100"),
		field.Bool("passed").
			Optional().
			Nillable(),
		field.Time("started_at"),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

func (QuizSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("started_at"),
	}
}
