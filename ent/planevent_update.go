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
	"github.com/abhisek/catprep/ent/planevent"
	"github.com/abhisek/catprep/ent/predicate"
)

// PlanEventUpdate is the builder for updating PlanEvent entities.
type PlanEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlanEventMutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdate) Where(ps ...predicate.PlanEvent) *PlanEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *PlanEventUpdate) SetPlanID(v string) *PlanEventUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillablePlanID(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PlanEventUpdate) SetUserID(v string) *PlanEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableUserID(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionIds sets the "question_ids" field.
func (_u *PlanEventUpdate) SetQuestionIds(v []string) *PlanEventUpdate {
	_u.mutation.SetQuestionIds(v)
	return _u
}

// AppendQuestionIds appends value to the "question_ids" field.
func (_u *PlanEventUpdate) AppendQuestionIds(v []string) *PlanEventUpdate {
	_u.mutation.AppendQuestionIds(v)
	return _u
}

// SetMet sets the "met" field.
func (_u *PlanEventUpdate) SetMet(v []string) *PlanEventUpdate {
	_u.mutation.SetMet(v)
	return _u
}

// AppendMet appends value to the "met" field.
func (_u *PlanEventUpdate) AppendMet(v []string) *PlanEventUpdate {
	_u.mutation.AppendMet(v)
	return _u
}

// ClearMet clears the value of the "met" field.
func (_u *PlanEventUpdate) ClearMet() *PlanEventUpdate {
	_u.mutation.ClearMet()
	return _u
}

// SetRelaxed sets the "relaxed" field.
func (_u *PlanEventUpdate) SetRelaxed(v string) *PlanEventUpdate {
	_u.mutation.SetRelaxed(v)
	return _u
}

// SetNillableRelaxed sets the "relaxed" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableRelaxed(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetRelaxed(*v)
	}
	return _u
}

// SetValid sets the "valid" field.
func (_u *PlanEventUpdate) SetValid(v bool) *PlanEventUpdate {
	_u.mutation.SetValid(v)
	return _u
}

// SetNillableValid sets the "valid" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableValid(v *bool) *PlanEventUpdate {
	if v != nil {
		_u.SetValid(*v)
	}
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *PlanEventUpdate) SetFallback(v bool) *PlanEventUpdate {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableFallback(v *bool) *PlanEventUpdate {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *PlanEventUpdate) SetReasoning(v string) *PlanEventUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableReasoning(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdate) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanEventUpdate) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := planevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := planevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(planevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(planevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIds(); ok {
		_spec.SetField(planevent.FieldQuestionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planevent.FieldQuestionIds, value)
		})
	}
	if value, ok := _u.mutation.Met(); ok {
		_spec.SetField(planevent.FieldMet, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMet(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planevent.FieldMet, value)
		})
	}
	if _u.mutation.MetCleared() {
		_spec.ClearField(planevent.FieldMet, field.TypeJSON)
	}
	if value, ok := _u.mutation.Relaxed(); ok {
		_spec.SetField(planevent.FieldRelaxed, field.TypeString, value)
	}
	if value, ok := _u.mutation.Valid(); ok {
		_spec.SetField(planevent.FieldValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(planevent.FieldFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(planevent.FieldReasoning, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanEventUpdateOne is the builder for updating a single PlanEvent entity.
type PlanEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanEventMutation
}

// SetPlanID sets the "plan_id" field.
func (_u *PlanEventUpdateOne) SetPlanID(v string) *PlanEventUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillablePlanID(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PlanEventUpdateOne) SetUserID(v string) *PlanEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableUserID(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionIds sets the "question_ids" field.
func (_u *PlanEventUpdateOne) SetQuestionIds(v []string) *PlanEventUpdateOne {
	_u.mutation.SetQuestionIds(v)
	return _u
}

// AppendQuestionIds appends value to the "question_ids" field.
func (_u *PlanEventUpdateOne) AppendQuestionIds(v []string) *PlanEventUpdateOne {
	_u.mutation.AppendQuestionIds(v)
	return _u
}

// SetMet sets the "met" field.
func (_u *PlanEventUpdateOne) SetMet(v []string) *PlanEventUpdateOne {
	_u.mutation.SetMet(v)
	return _u
}

// AppendMet appends value to the "met" field.
func (_u *PlanEventUpdateOne) AppendMet(v []string) *PlanEventUpdateOne {
	_u.mutation.AppendMet(v)
	return _u
}

// ClearMet clears the value of the "met" field.
func (_u *PlanEventUpdateOne) ClearMet() *PlanEventUpdateOne {
	_u.mutation.ClearMet()
	return _u
}

// SetRelaxed sets the "relaxed" field.
func (_u *PlanEventUpdateOne) SetRelaxed(v string) *PlanEventUpdateOne {
	_u.mutation.SetRelaxed(v)
	return _u
}

// SetNillableRelaxed sets the "relaxed" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableRelaxed(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetRelaxed(*v)
	}
	return _u
}

// SetValid sets the "valid" field.
func (_u *PlanEventUpdateOne) SetValid(v bool) *PlanEventUpdateOne {
	_u.mutation.SetValid(v)
	return _u
}

// SetNillableValid sets the "valid" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableValid(v *bool) *PlanEventUpdateOne {
	if v != nil {
		_u.SetValid(*v)
	}
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *PlanEventUpdateOne) SetFallback(v bool) *PlanEventUpdateOne {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableFallback(v *bool) *PlanEventUpdateOne {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *PlanEventUpdateOne) SetReasoning(v string) *PlanEventUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableReasoning(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdateOne) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdateOne) Where(ps ...predicate.PlanEvent) *PlanEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanEventUpdateOne) Select(field string, fields ...string) *PlanEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanEvent entity.
func (_u *PlanEventUpdateOne) Save(ctx context.Context) (*PlanEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdateOne) SaveX(ctx context.Context) *PlanEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanEventUpdateOne) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := planevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := planevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanEventUpdateOne) sqlSave(ctx context.Context) (_node *PlanEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, planevent.FieldID)
		for _, f := range fields {
			if !planevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != planevent.FieldID {
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
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(planevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(planevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIds(); ok {
		_spec.SetField(planevent.FieldQuestionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planevent.FieldQuestionIds, value)
		})
	}
	if value, ok := _u.mutation.Met(); ok {
		_spec.SetField(planevent.FieldMet, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMet(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planevent.FieldMet, value)
		})
	}
	if _u.mutation.MetCleared() {
		_spec.ClearField(planevent.FieldMet, field.TypeJSON)
	}
	if value, ok := _u.mutation.Relaxed(); ok {
		_spec.SetField(planevent.FieldRelaxed, field.TypeString, value)
	}
	if value, ok := _u.mutation.Valid(); ok {
		_spec.SetField(planevent.FieldValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(planevent.FieldFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(planevent.FieldReasoning, field.TypeString, value)
	}
	_node = &PlanEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
