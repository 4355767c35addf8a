// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/catprep/ent/planevent"
)

// PlanEvent is the model entity for the PlanEvent schema.
type PlanEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID string `json:"plan_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Ordered question IDs of the served pack
	QuestionIds []string `json:"question_ids,omitempty"`
	// Constraint names satisfied by the pack
	Met []string `json:"met,omitempty"`
	// JSON list of {name, reason} relaxation entries
	Relaxed string `json:"relaxed,omitempty"`
	// Whether the pack passed validation
	Valid bool `json:"valid,omitempty"`
	// Whether the deterministic fallback produced the pack
	Fallback bool `json:"fallback,omitempty"`
	// LLM one-line rationale, when available
	Reasoning    string `json:"reasoning,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlanEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case planevent.FieldQuestionIds, planevent.FieldMet:
			values[i] = new([]byte)
		case planevent.FieldValid, planevent.FieldFallback:
			values[i] = new(sql.NullBool)
		case planevent.FieldID, planevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case planevent.FieldPlanID, planevent.FieldUserID, planevent.FieldRelaxed, planevent.FieldReasoning:
			values[i] = new(sql.NullString)
		case planevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlanEvent fields.
func (_m *PlanEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case planevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case planevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case planevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case planevent.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case planevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case planevent.FieldQuestionIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field question_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuestionIds); err != nil {
					return fmt.Errorf("unmarshal field question_ids: %w", err)
				}
			}
		case planevent.FieldMet:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field met", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Met); err != nil {
					return fmt.Errorf("unmarshal field met: %w", err)
				}
			}
		case planevent.FieldRelaxed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relaxed", values[i])
			} else if value.Valid {
				_m.Relaxed = value.String
			}
		case planevent.FieldValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field valid", values[i])
			} else if value.Valid {
				_m.Valid = value.Bool
			}
		case planevent.FieldFallback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field fallback", values[i])
			} else if value.Valid {
				_m.Fallback = value.Bool
			}
		case planevent.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlanEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PlanEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PlanEvent.
// Note that you need to call PlanEvent.Unwrap() before calling this method if this PlanEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlanEvent) Update() *PlanEventUpdateOne {
	return NewPlanEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlanEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlanEvent) Unwrap() *PlanEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlanEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlanEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PlanEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("question_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionIds))
	builder.WriteString(", ")
	builder.WriteString("met=")
	builder.WriteString(fmt.Sprintf("%v", _m.Met))
	builder.WriteString(", ")
	builder.WriteString("relaxed=")
	builder.WriteString(_m.Relaxed)
	builder.WriteString(", ")
	builder.WriteString("valid=")
	builder.WriteString(fmt.Sprintf("%v", _m.Valid))
	builder.WriteString(", ")
	builder.WriteString("fallback=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fallback))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteByte(')')
	return builder.String()
}

// PlanEvents is a parsable slice of PlanEvent.
type PlanEvents []*PlanEvent
