// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
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
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldExcluded holds the string denoting the excluded field in the database.
	FieldExcluded = "excluded"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldQuestionID,
	FieldDifficultyBand,
	FieldSubcategory,
	FieldTypeOfQuestion,
	FieldCoreConcepts,
	FieldPyqFrequencyScore,
	FieldTopic,
	FieldActive,
	FieldExcluded,
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
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultExcluded holds the default value on creation for the "excluded" field.
	DefaultExcluded bool
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
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

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByExcluded orders the results by the excluded field.
func ByExcluded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExcluded, opts...).ToFunc()
}
