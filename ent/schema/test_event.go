package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestEvent records test lifecycle events (start/end).
type TestEvent struct {
	ent.Schema
}

func (TestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID grouping events in a test attempt"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("kind").
			NotEmpty().
			Comment("standard or retry"),
		field.String("category").
			Optional().
			Comment("Bank category of the test, empty for mixed"),
		field.Int("total_questions").
			Default(0).
			Comment("Questions in the test (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on end only)"),
		field.Float("score_pct").
			Default(0).
			Comment("Score percentage (on end only)"),
		field.Int("xp_earned").
			Default(0).
			Comment("XP awarded for the test (on end only)"),
	}
}

func (TestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("action"),
		index.Fields("kind"),
		index.Fields("category"),
	}
}
