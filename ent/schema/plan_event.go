package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanEvent is the audit trail of one planning invocation: the served pack
// plus how it was assembled.
type PlanEvent struct {
	ent.Schema
}

func (PlanEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlanEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			NotEmpty().
			Unique(),
		field.String("user_id").
			NotEmpty(),
		field.JSON("question_ids", []string{}).
			Comment("Ordered question IDs of the served pack"),
		field.JSON("met", []string{}).
			Optional().
			Comment("Constraint names satisfied by the pack"),
		field.String("relaxed").
			Default("[]").
			Comment("JSON list of {name, reason} relaxation entries"),
		field.Bool("valid").
			Comment("Whether the pack passed validation"),
		field.Bool("fallback").
			Comment("Whether the deterministic fallback produced the pack"),
		field.String("reasoning").
			Default("").
			Comment("LLM one-line rationale, when available"),
	}
}

func (PlanEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
