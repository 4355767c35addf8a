// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/catprep/ent/attemptevent"
)

// AttemptEvent is the model entity for the AttemptEvent schema.
type AttemptEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// Skipped holds the value of the "skipped" field.
	Skipped bool `json:"skipped,omitempty"`
	// ResponseTimeMs holds the value of the "response_time_ms" field.
	ResponseTimeMs int `json:"response_time_ms,omitempty"`
	// Ordinal session sequence number at serve time, used for recency windows
	SessSeq int64 `json:"sess_seq,omitempty"`
	// Easy, Medium, or Hard
	DifficultyBand string `json:"difficulty_band,omitempty"`
	// Subcategory holds the value of the "subcategory" field.
	Subcategory string `json:"subcategory,omitempty"`
	// TypeOfQuestion holds the value of the "type_of_question" field.
	TypeOfQuestion string `json:"type_of_question,omitempty"`
	// Ordered concept labels touched by the question
	CoreConcepts []string `json:"core_concepts,omitempty"`
	// Precomputed historical-exam frequency relevance, 0+
	PyqFrequencyScore float64 `json:"pyq_frequency_score,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttemptEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldCoreConcepts:
			values[i] = new([]byte)
		case attemptevent.FieldCorrect, attemptevent.FieldSkipped:
			values[i] = new(sql.NullBool)
		case attemptevent.FieldPyqFrequencyScore:
			values[i] = new(sql.NullFloat64)
		case attemptevent.FieldID, attemptevent.FieldSequence, attemptevent.FieldResponseTimeMs, attemptevent.FieldSessSeq:
			values[i] = new(sql.NullInt64)
		case attemptevent.FieldUserID, attemptevent.FieldQuestionID, attemptevent.FieldDifficultyBand, attemptevent.FieldSubcategory, attemptevent.FieldTypeOfQuestion:
			values[i] = new(sql.NullString)
		case attemptevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttemptEvent fields.
func (_m *AttemptEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attemptevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case attemptevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case attemptevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case attemptevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case attemptevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case attemptevent.FieldSkipped:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skipped", values[i])
			} else if value.Valid {
				_m.Skipped = value.Bool
			}
		case attemptevent.FieldResponseTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_time_ms", values[i])
			} else if value.Valid {
				_m.ResponseTimeMs = int(value.Int64)
			}
		case attemptevent.FieldSessSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sess_seq", values[i])
			} else if value.Valid {
				_m.SessSeq = value.Int64
			}
		case attemptevent.FieldDifficultyBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_band", values[i])
			} else if value.Valid {
				_m.DifficultyBand = value.String
			}
		case attemptevent.FieldSubcategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory", values[i])
			} else if value.Valid {
				_m.Subcategory = value.String
			}
		case attemptevent.FieldTypeOfQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type_of_question", values[i])
			} else if value.Valid {
				_m.TypeOfQuestion = value.String
			}
		case attemptevent.FieldCoreConcepts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field core_concepts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CoreConcepts); err != nil {
					return fmt.Errorf("unmarshal field core_concepts: %w", err)
				}
			}
		case attemptevent.FieldPyqFrequencyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pyq_frequency_score", values[i])
			} else if value.Valid {
				_m.PyqFrequencyScore = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttemptEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AttemptEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AttemptEvent.
// Note that you need to call AttemptEvent.Unwrap() before calling this method if this AttemptEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AttemptEvent) Update() *AttemptEventUpdateOne {
	return NewAttemptEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AttemptEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AttemptEvent) Unwrap() *AttemptEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttemptEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AttemptEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AttemptEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skipped))
	builder.WriteString(", ")
	builder.WriteString("response_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseTimeMs))
	builder.WriteString(", ")
	builder.WriteString("sess_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessSeq))
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
	builder.WriteByte(')')
	return builder.String()
}

// AttemptEvents is a parsable slice of AttemptEvent.
type AttemptEvents []*AttemptEvent
