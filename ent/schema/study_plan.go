package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudyPlan persists a generated 90-day plan. The calendar is stored as a
// JSON document; plans are replaced wholesale, never edited in place.
type StudyPlan struct {
	ent.Schema
}

func (StudyPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("track").
			NotEmpty(),
		field.Time("start_date"),
		field.Text("days").
			Comment("JSON-encoded []Day calendar"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (StudyPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
