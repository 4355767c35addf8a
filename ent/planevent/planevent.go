// Code generated by ent, DO NOT EDIT.

package planevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the planevent type in the database.
	Label = "plan_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuestionIds holds the string denoting the question_ids field in the database.
	FieldQuestionIds = "question_ids"
	// FieldMet holds the string denoting the met field in the database.
	FieldMet = "met"
	// FieldRelaxed holds the string denoting the relaxed field in the database.
	FieldRelaxed = "relaxed"
	// FieldValid holds the string denoting the valid field in the database.
	FieldValid = "valid"
	// FieldFallback holds the string denoting the fallback field in the database.
	FieldFallback = "fallback"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// Table holds the table name of the planevent in the database.
	Table = "plan_events"
)

// Columns holds all SQL columns for planevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldPlanID,
	FieldUserID,
	FieldQuestionIds,
	FieldMet,
	FieldRelaxed,
	FieldValid,
	FieldFallback,
	FieldReasoning,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	PlanIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultRelaxed holds the default value on creation for the "relaxed" field.
	DefaultRelaxed string
	// DefaultReasoning holds the default value on creation for the "reasoning" field.
	DefaultReasoning string
)

// OrderOption defines the ordering options for the PlanEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByRelaxed orders the results by the relaxed field.
func ByRelaxed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelaxed, opts...).ToFunc()
}

// ByValid orders the results by the valid field.
func ByValid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValid, opts...).ToFunc()
}

// ByFallback orders the results by the fallback field.
func ByFallback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFallback, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}
