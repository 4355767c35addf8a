// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/catprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionID, v))
}

// DifficultyBand applies equality check predicate on the "difficulty_band" field. It's identical to DifficultyBandEQ.
func DifficultyBand(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficultyBand, v))
}

// Subcategory applies equality check predicate on the "subcategory" field. It's identical to SubcategoryEQ.
func Subcategory(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubcategory, v))
}

// TypeOfQuestion applies equality check predicate on the "type_of_question" field. It's identical to TypeOfQuestionEQ.
func TypeOfQuestion(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// PyqFrequencyScore applies equality check predicate on the "pyq_frequency_score" field. It's identical to PyqFrequencyScoreEQ.
func PyqFrequencyScore(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPyqFrequencyScore, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTopic, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldActive, v))
}

// Excluded applies equality check predicate on the "excluded" field. It's identical to ExcludedEQ.
func Excluded(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExcluded, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestionID, v))
}

// DifficultyBandEQ applies the EQ predicate on the "difficulty_band" field.
func DifficultyBandEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficultyBand, v))
}

// DifficultyBandNEQ applies the NEQ predicate on the "difficulty_band" field.
func DifficultyBandNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDifficultyBand, v))
}

// DifficultyBandIn applies the In predicate on the "difficulty_band" field.
func DifficultyBandIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDifficultyBand, vs...))
}

// DifficultyBandNotIn applies the NotIn predicate on the "difficulty_band" field.
func DifficultyBandNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDifficultyBand, vs...))
}

// DifficultyBandGT applies the GT predicate on the "difficulty_band" field.
func DifficultyBandGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDifficultyBand, v))
}

// DifficultyBandGTE applies the GTE predicate on the "difficulty_band" field.
func DifficultyBandGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDifficultyBand, v))
}

// DifficultyBandLT applies the LT predicate on the "difficulty_band" field.
func DifficultyBandLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDifficultyBand, v))
}

// DifficultyBandLTE applies the LTE predicate on the "difficulty_band" field.
func DifficultyBandLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDifficultyBand, v))
}

// DifficultyBandContains applies the Contains predicate on the "difficulty_band" field.
func DifficultyBandContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldDifficultyBand, v))
}

// DifficultyBandHasPrefix applies the HasPrefix predicate on the "difficulty_band" field.
func DifficultyBandHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldDifficultyBand, v))
}

// DifficultyBandHasSuffix applies the HasSuffix predicate on the "difficulty_band" field.
func DifficultyBandHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldDifficultyBand, v))
}

// DifficultyBandEqualFold applies the EqualFold predicate on the "difficulty_band" field.
func DifficultyBandEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldDifficultyBand, v))
}

// DifficultyBandContainsFold applies the ContainsFold predicate on the "difficulty_band" field.
func DifficultyBandContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldDifficultyBand, v))
}

// SubcategoryEQ applies the EQ predicate on the "subcategory" field.
func SubcategoryEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubcategory, v))
}

// SubcategoryNEQ applies the NEQ predicate on the "subcategory" field.
func SubcategoryNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSubcategory, v))
}

// SubcategoryIn applies the In predicate on the "subcategory" field.
func SubcategoryIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSubcategory, vs...))
}

// SubcategoryNotIn applies the NotIn predicate on the "subcategory" field.
func SubcategoryNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSubcategory, vs...))
}

// SubcategoryGT applies the GT predicate on the "subcategory" field.
func SubcategoryGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSubcategory, v))
}

// SubcategoryGTE applies the GTE predicate on the "subcategory" field.
func SubcategoryGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSubcategory, v))
}

// SubcategoryLT applies the LT predicate on the "subcategory" field.
func SubcategoryLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSubcategory, v))
}

// SubcategoryLTE applies the LTE predicate on the "subcategory" field.
func SubcategoryLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSubcategory, v))
}

// SubcategoryContains applies the Contains predicate on the "subcategory" field.
func SubcategoryContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSubcategory, v))
}

// SubcategoryHasPrefix applies the HasPrefix predicate on the "subcategory" field.
func SubcategoryHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSubcategory, v))
}

// SubcategoryHasSuffix applies the HasSuffix predicate on the "subcategory" field.
func SubcategoryHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSubcategory, v))
}

// SubcategoryEqualFold applies the EqualFold predicate on the "subcategory" field.
func SubcategoryEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSubcategory, v))
}

// SubcategoryContainsFold applies the ContainsFold predicate on the "subcategory" field.
func SubcategoryContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSubcategory, v))
}

// TypeOfQuestionEQ applies the EQ predicate on the "type_of_question" field.
func TypeOfQuestionEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionNEQ applies the NEQ predicate on the "type_of_question" field.
func TypeOfQuestionNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionIn applies the In predicate on the "type_of_question" field.
func TypeOfQuestionIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionNotIn applies the NotIn predicate on the "type_of_question" field.
func TypeOfQuestionNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionGT applies the GT predicate on the "type_of_question" field.
func TypeOfQuestionGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionGTE applies the GTE predicate on the "type_of_question" field.
func TypeOfQuestionGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLT applies the LT predicate on the "type_of_question" field.
func TypeOfQuestionLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLTE applies the LTE predicate on the "type_of_question" field.
func TypeOfQuestionLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContains applies the Contains predicate on the "type_of_question" field.
func TypeOfQuestionContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasPrefix applies the HasPrefix predicate on the "type_of_question" field.
func TypeOfQuestionHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasSuffix applies the HasSuffix predicate on the "type_of_question" field.
func TypeOfQuestionHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionEqualFold applies the EqualFold predicate on the "type_of_question" field.
func TypeOfQuestionEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContainsFold applies the ContainsFold predicate on the "type_of_question" field.
func TypeOfQuestionContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldTypeOfQuestion, v))
}

// PyqFrequencyScoreEQ applies the EQ predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreNEQ applies the NEQ predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreNEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreIn applies the In predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPyqFrequencyScore, vs...))
}

// PyqFrequencyScoreNotIn applies the NotIn predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreNotIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPyqFrequencyScore, vs...))
}

// PyqFrequencyScoreGT applies the GT predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreGT(v float64) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreGTE applies the GTE predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreGTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreLT applies the LT predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreLT(v float64) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreLTE applies the LTE predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreLTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPyqFrequencyScore, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldTopic, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldActive, v))
}

// ExcludedEQ applies the EQ predicate on the "excluded" field.
func ExcludedEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExcluded, v))
}

// ExcludedNEQ applies the NEQ predicate on the "excluded" field.
func ExcludedNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldExcluded, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
