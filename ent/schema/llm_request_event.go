package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records every LLM request for cost and latency
// monitoring.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty(),
		field.String("model").
			NotEmpty(),
		field.String("purpose").
			NotEmpty().
			Comment("What the request was for: session-plan, smoke-test, ..."),
		field.Int64("latency_ms"),
		field.Bool("success"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.String("error_message").
			Default(""),
		field.Text("request_body").
			Default(""),
		field.Text("response_body").
			Default(""),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose"),
		index.Fields("model"),
	}
}
