package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one completed quiz attempt for a user. Rows are
// append-only: the history trend is rebuilt by reading them back in
// sequence order, never by updating them.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user").
			NotEmpty().
			Comment("Profile key the attempt belongs to"),
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID of the attempt session"),
		field.Int("score").
			Default(0).
			Comment("Questions answered correctly"),
		field.Int("total").
			Default(0).
			Comment("Questions delivered"),
		field.Int("duration_secs").
			Default(0).
			Comment("Attempt wall time in seconds"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user"),
	}
}
