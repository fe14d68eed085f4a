package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// XPEvent records an XP award.
type XPEvent struct {
	ent.Schema
}

func (XPEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (XPEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Test attempt the award came from"),
		field.Int("amount").
			Comment("XP awarded"),
		field.String("reason").
			NotEmpty().
			Comment("test_result or perfect_bonus"),
		field.Int("total_after").
			Comment("Learner's total XP after the award"),
	}
}

func (XPEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("reason"),
	}
}
