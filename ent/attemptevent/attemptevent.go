// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldSkipped holds the string denoting the skipped field in the database.
	FieldSkipped = "skipped"
	// FieldResponseTimeMs holds the string denoting the response_time_ms field in the database.
	FieldResponseTimeMs = "response_time_ms"
	// FieldSessSeq holds the string denoting the sess_seq field in the database.
	FieldSessSeq = "sess_seq"
	// FieldDifficultyBand holds the string denoting the difficulty_band field in the database.
	FieldDifficultyBand = "difficulty_band"
	// FieldSubcategory holds the string denoting the subcategory field in the database.
	FieldSubcategory = "subcategory"
	// FieldTypeOfQuestion holds the string denoting the type_of_question field in the database.
	FieldTypeOfQuestion = "type_of_question"
	// FieldCoreConcepts holds the string denoting the core_concepts field in the database.
	FieldCoreConcepts = "core_concepts"
	// FieldPyqFrequencyScore holds the string denoting the pyq_frequency_score field in the database.
	FieldPyqFrequencyScore = "pyq_frequency_score"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldQuestionID,
	FieldCorrect,
	FieldSkipped,
	FieldResponseTimeMs,
	FieldSessSeq,
	FieldDifficultyBand,
	FieldSubcategory,
	FieldTypeOfQuestion,
	FieldCoreConcepts,
	FieldPyqFrequencyScore,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DifficultyBandValidator is a validator for the "difficulty_band" field. It is called by the builders before save.
	DifficultyBandValidator func(string) error
	// SubcategoryValidator is a validator for the "subcategory" field. It is called by the builders before save.
	SubcategoryValidator func(string) error
	// TypeOfQuestionValidator is a validator for the "type_of_question" field. It is called by the builders before save.
	TypeOfQuestionValidator func(string) error
	// DefaultPyqFrequencyScore holds the default value on creation for the "pyq_frequency_score" field.
	DefaultPyqFrequencyScore float64
)

// OrderOption defines the ordering options for the AttemptEvent queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// BySkipped orders the results by the skipped field.
func BySkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipped, opts...).ToFunc()
}

// ByResponseTimeMs orders the results by the response_time_ms field.
func ByResponseTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseTimeMs, opts...).ToFunc()
}

// BySessSeq orders the results by the sess_seq field.
func BySessSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessSeq, opts...).ToFunc()
}

// ByDifficultyBand orders the results by the difficulty_band field.
func ByDifficultyBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyBand, opts...).ToFunc()
}

// BySubcategory orders the results by the subcategory field.
func BySubcategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubcategory, opts...).ToFunc()
}

// ByTypeOfQuestion orders the results by the type_of_question field.
func ByTypeOfQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypeOfQuestion, opts...).ToFunc()
}

// ByPyqFrequencyScore orders the results by the pyq_frequency_score field.
func ByPyqFrequencyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPyqFrequencyScore, opts...).ToFunc()
}
