package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one scored sentence submission.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("word").
			NotEmpty().
			Comment("The practice word"),
		field.String("difficulty").
			Comment("Easy, Medium, or Hard"),
		field.String("sentence").
			NotEmpty().
			Comment("What the user wrote"),
		field.Float("score").
			Comment("Verdict score on the 0-10 scale"),
		field.String("suggestion").
			Optional().
			Comment("Feedback text from the scorer"),
		field.String("corrected_sentence").
			Optional().
			Comment("Corrected version, when the scorer provided one"),
		field.String("scored_by").
			NotEmpty().
			Comment("remote or local"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("word"),
	}
}
