// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/catprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldCorrect, v))
}

// Skipped applies equality check predicate on the "skipped" field. It's identical to SkippedEQ.
func Skipped(v bool) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldSkipped, v))
}

// ResponseTimeMs applies equality check predicate on the "response_time_ms" field. It's identical to ResponseTimeMsEQ.
func ResponseTimeMs(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldResponseTimeMs, v))
}

// SessSeq applies equality check predicate on the "sess_seq" field. It's identical to SessSeqEQ.
func SessSeq(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldSessSeq, v))
}

// DifficultyBand applies equality check predicate on the "difficulty_band" field. It's identical to DifficultyBandEQ.
func DifficultyBand(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldDifficultyBand, v))
}

// Subcategory applies equality check predicate on the "subcategory" field. It's identical to SubcategoryEQ.
func Subcategory(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldSubcategory, v))
}

// TypeOfQuestion applies equality check predicate on the "type_of_question" field. It's identical to TypeOfQuestionEQ.
func TypeOfQuestion(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// PyqFrequencyScore applies equality check predicate on the "pyq_frequency_score" field. It's identical to PyqFrequencyScoreEQ.
func PyqFrequencyScore(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldPyqFrequencyScore, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldCorrect, v))
}

// SkippedEQ applies the EQ predicate on the "skipped" field.
func SkippedEQ(v bool) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldSkipped, v))
}

// SkippedNEQ applies the NEQ predicate on the "skipped" field.
func SkippedNEQ(v bool) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldSkipped, v))
}

// ResponseTimeMsEQ applies the EQ predicate on the "response_time_ms" field.
func ResponseTimeMsEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsNEQ applies the NEQ predicate on the "response_time_ms" field.
func ResponseTimeMsNEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsIn applies the In predicate on the "response_time_ms" field.
func ResponseTimeMsIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsNotIn applies the NotIn predicate on the "response_time_ms" field.
func ResponseTimeMsNotIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsGT applies the GT predicate on the "response_time_ms" field.
func ResponseTimeMsGT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldResponseTimeMs, v))
}

// ResponseTimeMsGTE applies the GTE predicate on the "response_time_ms" field.
func ResponseTimeMsGTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldResponseTimeMs, v))
}

// ResponseTimeMsLT applies the LT predicate on the "response_time_ms" field.
func ResponseTimeMsLT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldResponseTimeMs, v))
}

// ResponseTimeMsLTE applies the LTE predicate on the "response_time_ms" field.
func ResponseTimeMsLTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldResponseTimeMs, v))
}

// SessSeqEQ applies the EQ predicate on the "sess_seq" field.
func SessSeqEQ(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldSessSeq, v))
}

// SessSeqNEQ applies the NEQ predicate on the "sess_seq" field.
func SessSeqNEQ(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldSessSeq, v))
}

// SessSeqIn applies the In predicate on the "sess_seq" field.
func SessSeqIn(vs ...int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldSessSeq, vs...))
}

// SessSeqNotIn applies the NotIn predicate on the "sess_seq" field.
func SessSeqNotIn(vs ...int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldSessSeq, vs...))
}

// SessSeqGT applies the GT predicate on the "sess_seq" field.
func SessSeqGT(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldSessSeq, v))
}

// SessSeqGTE applies the GTE predicate on the "sess_seq" field.
func SessSeqGTE(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldSessSeq, v))
}

// SessSeqLT applies the LT predicate on the "sess_seq" field.
func SessSeqLT(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldSessSeq, v))
}

// SessSeqLTE applies the LTE predicate on the "sess_seq" field.
func SessSeqLTE(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldSessSeq, v))
}

// DifficultyBandEQ applies the EQ predicate on the "difficulty_band" field.
func DifficultyBandEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldDifficultyBand, v))
}

// DifficultyBandNEQ applies the NEQ predicate on the "difficulty_band" field.
func DifficultyBandNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldDifficultyBand, v))
}

// DifficultyBandIn applies the In predicate on the "difficulty_band" field.
func DifficultyBandIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldDifficultyBand, vs...))
}

// DifficultyBandNotIn applies the NotIn predicate on the "difficulty_band" field.
func DifficultyBandNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldDifficultyBand, vs...))
}

// DifficultyBandGT applies the GT predicate on the "difficulty_band" field.
func DifficultyBandGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldDifficultyBand, v))
}

// DifficultyBandGTE applies the GTE predicate on the "difficulty_band" field.
func DifficultyBandGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldDifficultyBand, v))
}

// DifficultyBandLT applies the LT predicate on the "difficulty_band" field.
func DifficultyBandLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldDifficultyBand, v))
}

// DifficultyBandLTE applies the LTE predicate on the "difficulty_band" field.
func DifficultyBandLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldDifficultyBand, v))
}

// DifficultyBandContains applies the Contains predicate on the "difficulty_band" field.
func DifficultyBandContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldDifficultyBand, v))
}

// DifficultyBandHasPrefix applies the HasPrefix predicate on the "difficulty_band" field.
func DifficultyBandHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldDifficultyBand, v))
}

// DifficultyBandHasSuffix applies the HasSuffix predicate on the "difficulty_band" field.
func DifficultyBandHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldDifficultyBand, v))
}

// DifficultyBandEqualFold applies the EqualFold predicate on the "difficulty_band" field.
func DifficultyBandEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldDifficultyBand, v))
}

// DifficultyBandContainsFold applies the ContainsFold predicate on the "difficulty_band" field.
func DifficultyBandContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldDifficultyBand, v))
}

// SubcategoryEQ applies the EQ predicate on the "subcategory" field.
func SubcategoryEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldSubcategory, v))
}

// SubcategoryNEQ applies the NEQ predicate on the "subcategory" field.
func SubcategoryNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldSubcategory, v))
}

// SubcategoryIn applies the In predicate on the "subcategory" field.
func SubcategoryIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldSubcategory, vs...))
}

// SubcategoryNotIn applies the NotIn predicate on the "subcategory" field.
func SubcategoryNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldSubcategory, vs...))
}

// SubcategoryGT applies the GT predicate on the "subcategory" field.
func SubcategoryGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldSubcategory, v))
}

// SubcategoryGTE applies the GTE predicate on the "subcategory" field.
func SubcategoryGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldSubcategory, v))
}

// SubcategoryLT applies the LT predicate on the "subcategory" field.
func SubcategoryLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldSubcategory, v))
}

// SubcategoryLTE applies the LTE predicate on the "subcategory" field.
func SubcategoryLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldSubcategory, v))
}

// SubcategoryContains applies the Contains predicate on the "subcategory" field.
func SubcategoryContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldSubcategory, v))
}

// SubcategoryHasPrefix applies the HasPrefix predicate on the "subcategory" field.
func SubcategoryHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldSubcategory, v))
}

// SubcategoryHasSuffix applies the HasSuffix predicate on the "subcategory" field.
func SubcategoryHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldSubcategory, v))
}

// SubcategoryEqualFold applies the EqualFold predicate on the "subcategory" field.
func SubcategoryEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldSubcategory, v))
}

// SubcategoryContainsFold applies the ContainsFold predicate on the "subcategory" field.
func SubcategoryContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldSubcategory, v))
}

// TypeOfQuestionEQ applies the EQ predicate on the "type_of_question" field.
func TypeOfQuestionEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionNEQ applies the NEQ predicate on the "type_of_question" field.
func TypeOfQuestionNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionIn applies the In predicate on the "type_of_question" field.
func TypeOfQuestionIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionNotIn applies the NotIn predicate on the "type_of_question" field.
func TypeOfQuestionNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionGT applies the GT predicate on the "type_of_question" field.
func TypeOfQuestionGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionGTE applies the GTE predicate on the "type_of_question" field.
func TypeOfQuestionGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLT applies the LT predicate on the "type_of_question" field.
func TypeOfQuestionLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLTE applies the LTE predicate on the "type_of_question" field.
func TypeOfQuestionLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContains applies the Contains predicate on the "type_of_question" field.
func TypeOfQuestionContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasPrefix applies the HasPrefix predicate on the "type_of_question" field.
func TypeOfQuestionHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasSuffix applies the HasSuffix predicate on the "type_of_question" field.
func TypeOfQuestionHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionEqualFold applies the EqualFold predicate on the "type_of_question" field.
func TypeOfQuestionEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContainsFold applies the ContainsFold predicate on the "type_of_question" field.
func TypeOfQuestionContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldTypeOfQuestion, v))
}

// PyqFrequencyScoreEQ applies the EQ predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreEQ(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreNEQ applies the NEQ predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreNEQ(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreIn applies the In predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreIn(vs ...float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldPyqFrequencyScore, vs...))
}

// PyqFrequencyScoreNotIn applies the NotIn predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreNotIn(vs ...float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldPyqFrequencyScore, vs...))
}

// PyqFrequencyScoreGT applies the GT predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreGT(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreGTE applies the GTE predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreGTE(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreLT applies the LT predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreLT(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreLTE applies the LTE predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreLTE(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldPyqFrequencyScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AttemptEvent) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AttemptEvent) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AttemptEvent) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.NotPredicates(p))
}
