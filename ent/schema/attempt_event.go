package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one user-question interaction: a submit or a skip.
// Immutable once written; the planning kernels consume it read-only.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.Bool("correct"),
		field.Bool("skipped"),
		field.Int("response_time_ms"),
		field.Int64("sess_seq").
			Comment("Ordinal session sequence number at serve time, used for recency windows"),
		field.String("difficulty_band").
			NotEmpty().
			Comment("Easy, Medium, or Hard"),
		field.String("subcategory").
			NotEmpty(),
		field.String("type_of_question").
			NotEmpty(),
		field.JSON("core_concepts", []string{}).
			Comment("Ordered concept labels touched by the question"),
		field.Float("pyq_frequency_score").
			Default(0).
			Comment("Precomputed historical-exam frequency relevance, 0+"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "sess_seq"),
		index.Fields("question_id"),
	}
}
