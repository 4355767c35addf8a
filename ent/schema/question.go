package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is one row of the question bank, as consumed by the planner and
// the study plan generator.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Unique(),
		field.String("difficulty_band").
			NotEmpty(),
		field.String("subcategory").
			NotEmpty(),
		field.String("type_of_question").
			NotEmpty(),
		field.JSON("core_concepts", []string{}),
		field.Float("pyq_frequency_score").
			Default(0),
		field.String("topic").
			Default("").
			Comment("Study-plan topic; defaults to the subcategory at import"),
		field.Bool("active").
			Default(true),
		field.Bool("excluded").
			Default(false).
			Comment("Editorially withheld from serving"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subcategory"),
		index.Fields("topic"),
		index.Fields("active", "excluded"),
	}
}
