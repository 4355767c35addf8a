// Code generated by ent, DO NOT EDIT.

package planevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/catprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTimestamp, v))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldPlanID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldUserID, v))
}

// Relaxed applies equality check predicate on the "relaxed" field. It's identical to RelaxedEQ.
func Relaxed(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldRelaxed, v))
}

// Valid applies equality check predicate on the "valid" field. It's identical to ValidEQ.
func Valid(v bool) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldValid, v))
}

// Fallback applies equality check predicate on the "fallback" field. It's identical to FallbackEQ.
func Fallback(v bool) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldFallback, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldReasoning, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldTimestamp, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContainsFold(FieldPlanID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContainsFold(FieldUserID, v))
}

// MetIsNil applies the IsNil predicate on the "met" field.
func MetIsNil() predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIsNull(FieldMet))
}

// MetNotNil applies the NotNil predicate on the "met" field.
func MetNotNil() predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotNull(FieldMet))
}

// RelaxedEQ applies the EQ predicate on the "relaxed" field.
func RelaxedEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldRelaxed, v))
}

// RelaxedNEQ applies the NEQ predicate on the "relaxed" field.
func RelaxedNEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldRelaxed, v))
}

// RelaxedIn applies the In predicate on the "relaxed" field.
func RelaxedIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldRelaxed, vs...))
}

// RelaxedNotIn applies the NotIn predicate on the "relaxed" field.
func RelaxedNotIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldRelaxed, vs...))
}

// RelaxedGT applies the GT predicate on the "relaxed" field.
func RelaxedGT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldRelaxed, v))
}

// RelaxedGTE applies the GTE predicate on the "relaxed" field.
func RelaxedGTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldRelaxed, v))
}

// RelaxedLT applies the LT predicate on the "relaxed" field.
func RelaxedLT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldRelaxed, v))
}

// RelaxedLTE applies the LTE predicate on the "relaxed" field.
func RelaxedLTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldRelaxed, v))
}

// RelaxedContains applies the Contains predicate on the "relaxed" field.
func RelaxedContains(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContains(FieldRelaxed, v))
}

// RelaxedHasPrefix applies the HasPrefix predicate on the "relaxed" field.
func RelaxedHasPrefix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasPrefix(FieldRelaxed, v))
}

// RelaxedHasSuffix applies the HasSuffix predicate on the "relaxed" field.
func RelaxedHasSuffix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasSuffix(FieldRelaxed, v))
}

// RelaxedEqualFold applies the EqualFold predicate on the "relaxed" field.
func RelaxedEqualFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEqualFold(FieldRelaxed, v))
}

// RelaxedContainsFold applies the ContainsFold predicate on the "relaxed" field.
func RelaxedContainsFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContainsFold(FieldRelaxed, v))
}

// ValidEQ applies the EQ predicate on the "valid" field.
func ValidEQ(v bool) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldValid, v))
}

// ValidNEQ applies the NEQ predicate on the "valid" field.
func ValidNEQ(v bool) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldValid, v))
}

// FallbackEQ applies the EQ predicate on the "fallback" field.
func FallbackEQ(v bool) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldFallback, v))
}

// FallbackNEQ applies the NEQ predicate on the "fallback" field.
func FallbackNEQ(v bool) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldFallback, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContainsFold(FieldReasoning, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlanEvent) predicate.PlanEvent {
	return predicate.PlanEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlanEvent) predicate.PlanEvent {
	return predicate.PlanEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlanEvent) predicate.PlanEvent {
	return predicate.PlanEvent(sql.NotPredicates(p))
}
