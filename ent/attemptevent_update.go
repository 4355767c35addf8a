// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/catprep/ent/attemptevent"
	"github.com/abhisek/catprep/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AttemptEventUpdate) SetUserID(v string) *AttemptEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUserID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AttemptEventUpdate) SetQuestionID(v string) *AttemptEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *AttemptEventUpdate) SetSkipped(v bool) *AttemptEventUpdate {
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSkipped(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AttemptEventUpdate) SetResponseTimeMs(v int) *AttemptEventUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableResponseTimeMs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AttemptEventUpdate) AddResponseTimeMs(v int) *AttemptEventUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetSessSeq sets the "sess_seq" field.
func (_u *AttemptEventUpdate) SetSessSeq(v int64) *AttemptEventUpdate {
	_u.mutation.ResetSessSeq()
	_u.mutation.SetSessSeq(v)
	return _u
}

// SetNillableSessSeq sets the "sess_seq" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessSeq(v *int64) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessSeq(*v)
	}
	return _u
}

// AddSessSeq adds value to the "sess_seq" field.
func (_u *AttemptEventUpdate) AddSessSeq(v int64) *AttemptEventUpdate {
	_u.mutation.AddSessSeq(v)
	return _u
}

// SetDifficultyBand sets the "difficulty_band" field.
func (_u *AttemptEventUpdate) SetDifficultyBand(v string) *AttemptEventUpdate {
	_u.mutation.SetDifficultyBand(v)
	return _u
}

// SetNillableDifficultyBand sets the "difficulty_band" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDifficultyBand(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetDifficultyBand(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *AttemptEventUpdate) SetSubcategory(v string) *AttemptEventUpdate {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSubcategory(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_u *AttemptEventUpdate) SetTypeOfQuestion(v string) *AttemptEventUpdate {
	_u.mutation.SetTypeOfQuestion(v)
	return _u
}

// SetNillableTypeOfQuestion sets the "type_of_question" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTypeOfQuestion(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetTypeOfQuestion(*v)
	}
	return _u
}

// SetCoreConcepts sets the "core_concepts" field.
func (_u *AttemptEventUpdate) SetCoreConcepts(v []string) *AttemptEventUpdate {
	_u.mutation.SetCoreConcepts(v)
	return _u
}

// AppendCoreConcepts appends value to the "core_concepts" field.
func (_u *AttemptEventUpdate) AppendCoreConcepts(v []string) *AttemptEventUpdate {
	_u.mutation.AppendCoreConcepts(v)
	return _u
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (_u *AttemptEventUpdate) SetPyqFrequencyScore(v float64) *AttemptEventUpdate {
	_u.mutation.ResetPyqFrequencyScore()
	_u.mutation.SetPyqFrequencyScore(v)
	return _u
}

// SetNillablePyqFrequencyScore sets the "pyq_frequency_score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePyqFrequencyScore(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetPyqFrequencyScore(*v)
	}
	return _u
}

// AddPyqFrequencyScore adds value to the "pyq_frequency_score" field.
func (_u *AttemptEventUpdate) AddPyqFrequencyScore(v float64) *AttemptEventUpdate {
	_u.mutation.AddPyqFrequencyScore(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := attemptevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyBand(); ok {
		if err := attemptevent.DifficultyBandValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_band", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.difficulty_band": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subcategory(); ok {
		if err := attemptevent.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.subcategory": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TypeOfQuestion(); ok {
		if err := attemptevent.TypeOfQuestionValidator(v); err != nil {
			return &ValidationError{Name: "type_of_question", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.type_of_question": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(attemptevent.FieldSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attemptevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(attemptevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessSeq(); ok {
		_spec.SetField(attemptevent.FieldSessSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSessSeq(); ok {
		_spec.AddField(attemptevent.FieldSessSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DifficultyBand(); ok {
		_spec.SetField(attemptevent.FieldDifficultyBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(attemptevent.FieldSubcategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypeOfQuestion(); ok {
		_spec.SetField(attemptevent.FieldTypeOfQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoreConcepts(); ok {
		_spec.SetField(attemptevent.FieldCoreConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCoreConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldCoreConcepts, value)
		})
	}
	if value, ok := _u.mutation.PyqFrequencyScore(); ok {
		_spec.SetField(attemptevent.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPyqFrequencyScore(); ok {
		_spec.AddField(attemptevent.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AttemptEventUpdateOne) SetUserID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUserID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AttemptEventUpdateOne) SetQuestionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *AttemptEventUpdateOne) SetSkipped(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSkipped(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AttemptEventUpdateOne) SetResponseTimeMs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableResponseTimeMs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AttemptEventUpdateOne) AddResponseTimeMs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetSessSeq sets the "sess_seq" field.
func (_u *AttemptEventUpdateOne) SetSessSeq(v int64) *AttemptEventUpdateOne {
	_u.mutation.ResetSessSeq()
	_u.mutation.SetSessSeq(v)
	return _u
}

// SetNillableSessSeq sets the "sess_seq" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessSeq(v *int64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessSeq(*v)
	}
	return _u
}

// AddSessSeq adds value to the "sess_seq" field.
func (_u *AttemptEventUpdateOne) AddSessSeq(v int64) *AttemptEventUpdateOne {
	_u.mutation.AddSessSeq(v)
	return _u
}

// SetDifficultyBand sets the "difficulty_band" field.
func (_u *AttemptEventUpdateOne) SetDifficultyBand(v string) *AttemptEventUpdateOne {
	_u.mutation.SetDifficultyBand(v)
	return _u
}

// SetNillableDifficultyBand sets the "difficulty_band" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDifficultyBand(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDifficultyBand(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *AttemptEventUpdateOne) SetSubcategory(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSubcategory(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_u *AttemptEventUpdateOne) SetTypeOfQuestion(v string) *AttemptEventUpdateOne {
	_u.mutation.SetTypeOfQuestion(v)
	return _u
}

// SetNillableTypeOfQuestion sets the "type_of_question" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTypeOfQuestion(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTypeOfQuestion(*v)
	}
	return _u
}

// SetCoreConcepts sets the "core_concepts" field.
func (_u *AttemptEventUpdateOne) SetCoreConcepts(v []string) *AttemptEventUpdateOne {
	_u.mutation.SetCoreConcepts(v)
	return _u
}

// AppendCoreConcepts appends value to the "core_concepts" field.
func (_u *AttemptEventUpdateOne) AppendCoreConcepts(v []string) *AttemptEventUpdateOne {
	_u.mutation.AppendCoreConcepts(v)
	return _u
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (_u *AttemptEventUpdateOne) SetPyqFrequencyScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetPyqFrequencyScore()
	_u.mutation.SetPyqFrequencyScore(v)
	return _u
}

// SetNillablePyqFrequencyScore sets the "pyq_frequency_score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePyqFrequencyScore(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPyqFrequencyScore(*v)
	}
	return _u
}

// AddPyqFrequencyScore adds value to the "pyq_frequency_score" field.
func (_u *AttemptEventUpdateOne) AddPyqFrequencyScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddPyqFrequencyScore(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := attemptevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyBand(); ok {
		if err := attemptevent.DifficultyBandValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_band", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.difficulty_band": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subcategory(); ok {
		if err := attemptevent.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.subcategory": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TypeOfQuestion(); ok {
		if err := attemptevent.TypeOfQuestionValidator(v); err != nil {
			return &ValidationError{Name: "type_of_question", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.type_of_question": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(attemptevent.FieldSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attemptevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(attemptevent.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessSeq(); ok {
		_spec.SetField(attemptevent.FieldSessSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSessSeq(); ok {
		_spec.AddField(attemptevent.FieldSessSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DifficultyBand(); ok {
		_spec.SetField(attemptevent.FieldDifficultyBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(attemptevent.FieldSubcategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypeOfQuestion(); ok {
		_spec.SetField(attemptevent.FieldTypeOfQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoreConcepts(); ok {
		_spec.SetField(attemptevent.FieldCoreConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCoreConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldCoreConcepts, value)
		})
	}
	if value, ok := _u.mutation.PyqFrequencyScore(); ok {
		_spec.SetField(attemptevent.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPyqFrequencyScore(); ok {
		_spec.AddField(attemptevent.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
