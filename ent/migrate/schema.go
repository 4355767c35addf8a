// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "skipped", Type: field.TypeBool},
		{Name: "response_time_ms", Type: field.TypeInt},
		{Name: "sess_seq", Type: field.TypeInt64},
		{Name: "difficulty_band", Type: field.TypeString},
		{Name: "subcategory", Type: field.TypeString},
		{Name: "type_of_question", Type: field.TypeString},
		{Name: "core_concepts", Type: field.TypeJSON},
		{Name: "pyq_frequency_score", Type: field.TypeFloat64, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_user_id_sess_seq",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[8]},
			},
			{
				Name:    "attemptevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_model",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
		},
	}
	// PlanEventsColumns holds the columns for the "plan_events" table.
	PlanEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_ids", Type: field.TypeJSON},
		{Name: "met", Type: field.TypeJSON, Nullable: true},
		{Name: "relaxed", Type: field.TypeString, Default: "[]"},
		{Name: "valid", Type: field.TypeBool},
		{Name: "fallback", Type: field.TypeBool},
		{Name: "reasoning", Type: field.TypeString, Default: ""},
	}
	// PlanEventsTable holds the schema information for the "plan_events" table.
	PlanEventsTable = &schema.Table{
		Name:       "plan_events",
		Columns:    PlanEventsColumns,
		PrimaryKey: []*schema.Column{PlanEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "planevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[1]},
			},
			{
				Name:    "planevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[2]},
			},
			{
				Name:    "planevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[4]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "difficulty_band", Type: field.TypeString},
		{Name: "subcategory", Type: field.TypeString},
		{Name: "type_of_question", Type: field.TypeString},
		{Name: "core_concepts", Type: field.TypeJSON},
		{Name: "pyq_frequency_score", Type: field.TypeFloat64, Default: 0},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "excluded", Type: field.TypeBool, Default: false},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_subcategory",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[3]},
			},
			{
				Name:    "question_topic",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[7]},
			},
			{
				Name:    "question_active_excluded",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[8], QuestionsColumns[9]},
			},
		},
	}
	// StudyPlansColumns holds the columns for the "study_plans" table.
	StudyPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "track", Type: field.TypeString},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "days", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StudyPlansTable holds the schema information for the "study_plans" table.
	StudyPlansTable = &schema.Table{
		Name:       "study_plans",
		Columns:    StudyPlansColumns,
		PrimaryKey: []*schema.Column{StudyPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studyplan_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{StudyPlansColumns[1], StudyPlansColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		LlmRequestEventsTable,
		PlanEventsTable,
		QuestionsTable,
		StudyPlansTable,
	}
)

func init() {
}
