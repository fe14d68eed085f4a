package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WrongAnswerEvent records one missed question. The table is the
// durable append-only wrong-answer pool; rows are never updated or
// deleted by a retry session.
type WrongAnswerEvent struct {
	ent.Schema
}

func (WrongAnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (WrongAnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Test attempt the miss happened in"),
		field.Int("question_id").
			Comment("Bank id of the missed question"),
		field.String("category").
			NotEmpty().
			Comment("Bank category of the question"),
		field.String("question_text").
			NotEmpty().
			Comment("The prompt shown"),
		field.JSON("option_texts", []string{}).
			Comment("Option texts in display order"),
		field.Int("selected_index").
			Comment("Option the learner chose"),
		field.Int("correct_index").
			Comment("Option that was correct"),
		field.Int("xp_reward").
			Comment("Per-correct XP in effect at the time"),
	}
}

func (WrongAnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("question_id"),
		index.Fields("category"),
	}
}
