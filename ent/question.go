// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/catprep/ent/question"
)

// Question is the model entity for the Question schema.
type Question struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// DifficultyBand holds the value of the "difficulty_band" field.
	DifficultyBand string `json:"difficulty_band,omitempty"`
	// Subcategory holds the value of the "subcategory" field.
	Subcategory string `json:"subcategory,omitempty"`
	// TypeOfQuestion holds the value of the "type_of_question" field.
	TypeOfQuestion string `json:"type_of_question,omitempty"`
	// CoreConcepts holds the value of the "core_concepts" field.
	CoreConcepts []string `json:"core_concepts,omitempty"`
	// PyqFrequencyScore holds the value of the "pyq_frequency_score" field.
	PyqFrequencyScore float64 `json:"pyq_frequency_score,omitempty"`
	// Study-plan topic; defaults to the subcategory at import
	Topic string `json:"topic,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// Editorially withheld from serving
	Excluded     bool `json:"excluded,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldCoreConcepts:
			values[i] = new([]byte)
		case question.FieldActive, question.FieldExcluded:
			values[i] = new(sql.NullBool)
		case question.FieldPyqFrequencyScore:
			values[i] = new(sql.NullFloat64)
		case question.FieldID:
			values[i] = new(sql.NullInt64)
		case question.FieldQuestionID, question.FieldDifficultyBand, question.FieldSubcategory, question.FieldTypeOfQuestion, question.FieldTopic:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (_m *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case question.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case question.FieldDifficultyBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_band", values[i])
			} else if value.Valid {
				_m.DifficultyBand = value.String
			}
		case question.FieldSubcategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory", values[i])
			} else if value.Valid {
				_m.Subcategory = value.String
			}
		case question.FieldTypeOfQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type_of_question", values[i])
			} else if value.Valid {
				_m.TypeOfQuestion = value.String
			}
		case question.FieldCoreConcepts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field core_concepts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CoreConcepts); err != nil {
					return fmt.Errorf("unmarshal field core_concepts: %w", err)
				}
			}
		case question.FieldPyqFrequencyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pyq_frequency_score", values[i])
			} else if value.Valid {
				_m.PyqFrequencyScore = value.Float64
			}
		case question.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case question.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case question.FieldExcluded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field excluded", values[i])
			} else if value.Valid {
				_m.Excluded = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (_m *Question) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Question) Unwrap() *Question {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Question is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("difficulty_band=")
	builder.WriteString(_m.DifficultyBand)
	builder.WriteString(", ")
	builder.WriteString("subcategory=")
	builder.WriteString(_m.Subcategory)
	builder.WriteString(", ")
	builder.WriteString("type_of_question=")
	builder.WriteString(_m.TypeOfQuestion)
	builder.WriteString(", ")
	builder.WriteString("core_concepts=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoreConcepts))
	builder.WriteString(", ")
	builder.WriteString("pyq_frequency_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PyqFrequencyScore))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("excluded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Excluded))
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
