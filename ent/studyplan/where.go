// Code generated by ent, DO NOT EDIT.

package studyplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/catprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldUserID, v))
}

// Track applies equality check predicate on the "track" field. It's identical to TrackEQ.
func Track(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldTrack, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldStartDate, v))
}

// Days applies equality check predicate on the "days" field. It's identical to DaysEQ.
func Days(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldDays, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContainsFold(FieldUserID, v))
}

// TrackEQ applies the EQ predicate on the "track" field.
func TrackEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldTrack, v))
}

// TrackNEQ applies the NEQ predicate on the "track" field.
func TrackNEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldTrack, v))
}

// TrackIn applies the In predicate on the "track" field.
func TrackIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldTrack, vs...))
}

// TrackNotIn applies the NotIn predicate on the "track" field.
func TrackNotIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldTrack, vs...))
}

// TrackGT applies the GT predicate on the "track" field.
func TrackGT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldTrack, v))
}

// TrackGTE applies the GTE predicate on the "track" field.
func TrackGTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldTrack, v))
}

// TrackLT applies the LT predicate on the "track" field.
func TrackLT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldTrack, v))
}

// TrackLTE applies the LTE predicate on the "track" field.
func TrackLTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldTrack, v))
}

// TrackContains applies the Contains predicate on the "track" field.
func TrackContains(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContains(FieldTrack, v))
}

// TrackHasPrefix applies the HasPrefix predicate on the "track" field.
func TrackHasPrefix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasPrefix(FieldTrack, v))
}

// TrackHasSuffix applies the HasSuffix predicate on the "track" field.
func TrackHasSuffix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasSuffix(FieldTrack, v))
}

// TrackEqualFold applies the EqualFold predicate on the "track" field.
func TrackEqualFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEqualFold(FieldTrack, v))
}

// TrackContainsFold applies the ContainsFold predicate on the "track" field.
func TrackContainsFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContainsFold(FieldTrack, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldStartDate, v))
}

// DaysEQ applies the EQ predicate on the "days" field.
func DaysEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldDays, v))
}

// DaysNEQ applies the NEQ predicate on the "days" field.
func DaysNEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldDays, v))
}

// DaysIn applies the In predicate on the "days" field.
func DaysIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldDays, vs...))
}

// DaysNotIn applies the NotIn predicate on the "days" field.
func DaysNotIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldDays, vs...))
}

// DaysGT applies the GT predicate on the "days" field.
func DaysGT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldDays, v))
}

// DaysGTE applies the GTE predicate on the "days" field.
func DaysGTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldDays, v))
}

// DaysLT applies the LT predicate on the "days" field.
func DaysLT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldDays, v))
}

// DaysLTE applies the LTE predicate on the "days" field.
func DaysLTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldDays, v))
}

// DaysContains applies the Contains predicate on the "days" field.
func DaysContains(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContains(FieldDays, v))
}

// DaysHasPrefix applies the HasPrefix predicate on the "days" field.
func DaysHasPrefix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasPrefix(FieldDays, v))
}

// DaysHasSuffix applies the HasSuffix predicate on the "days" field.
func DaysHasSuffix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasSuffix(FieldDays, v))
}

// DaysEqualFold applies the EqualFold predicate on the "days" field.
func DaysEqualFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEqualFold(FieldDays, v))
}

// DaysContainsFold applies the ContainsFold predicate on the "days" field.
func DaysContainsFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContainsFold(FieldDays, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudyPlan) predicate.StudyPlan {
	return predicate.StudyPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudyPlan) predicate.StudyPlan {
	return predicate.StudyPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudyPlan) predicate.StudyPlan {
	return predicate.StudyPlan(sql.NotPredicates(p))
}
