// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/catprep/ent/predicate"
	"github.com/abhisek/catprep/ent/studyplan"
)

// StudyPlanUpdate is the builder for updating StudyPlan entities.
type StudyPlanUpdate struct {
	config
	hooks    []Hook
	mutation *StudyPlanMutation
}

// Where appends a list predicates to the StudyPlanUpdate builder.
func (_u *StudyPlanUpdate) Where(ps ...predicate.StudyPlan) *StudyPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StudyPlanUpdate) SetUserID(v string) *StudyPlanUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudyPlanUpdate) SetNillableUserID(v *string) *StudyPlanUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *StudyPlanUpdate) SetTrack(v string) *StudyPlanUpdate {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *StudyPlanUpdate) SetNillableTrack(v *string) *StudyPlanUpdate {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *StudyPlanUpdate) SetStartDate(v time.Time) *StudyPlanUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *StudyPlanUpdate) SetNillableStartDate(v *time.Time) *StudyPlanUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetDays sets the "days" field.
func (_u *StudyPlanUpdate) SetDays(v string) *StudyPlanUpdate {
	_u.mutation.SetDays(v)
	return _u
}

// SetNillableDays sets the "days" field if the given value is not nil.
func (_u *StudyPlanUpdate) SetNillableDays(v *string) *StudyPlanUpdate {
	if v != nil {
		_u.SetDays(*v)
	}
	return _u
}

// Mutation returns the StudyPlanMutation object of the builder.
func (_u *StudyPlanUpdate) Mutation() *StudyPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudyPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudyPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyPlanUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := studyplan.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Track(); ok {
		if err := studyplan.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.track": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyplan.Table, studyplan.Columns, sqlgraph.NewFieldSpec(studyplan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(studyplan.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(studyplan.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(studyplan.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Days(); ok {
		_spec.SetField(studyplan.FieldDays, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudyPlanUpdateOne is the builder for updating a single StudyPlan entity.
type StudyPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyPlanMutation
}

// SetUserID sets the "user_id" field.
func (_u *StudyPlanUpdateOne) SetUserID(v string) *StudyPlanUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudyPlanUpdateOne) SetNillableUserID(v *string) *StudyPlanUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *StudyPlanUpdateOne) SetTrack(v string) *StudyPlanUpdateOne {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *StudyPlanUpdateOne) SetNillableTrack(v *string) *StudyPlanUpdateOne {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *StudyPlanUpdateOne) SetStartDate(v time.Time) *StudyPlanUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *StudyPlanUpdateOne) SetNillableStartDate(v *time.Time) *StudyPlanUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetDays sets the "days" field.
func (_u *StudyPlanUpdateOne) SetDays(v string) *StudyPlanUpdateOne {
	_u.mutation.SetDays(v)
	return _u
}

// SetNillableDays sets the "days" field if the given value is not nil.
func (_u *StudyPlanUpdateOne) SetNillableDays(v *string) *StudyPlanUpdateOne {
	if v != nil {
		_u.SetDays(*v)
	}
	return _u
}

// Mutation returns the StudyPlanMutation object of the builder.
func (_u *StudyPlanUpdateOne) Mutation() *StudyPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudyPlanUpdate builder.
func (_u *StudyPlanUpdateOne) Where(ps ...predicate.StudyPlan) *StudyPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudyPlanUpdateOne) Select(field string, fields ...string) *StudyPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudyPlan entity.
func (_u *StudyPlanUpdateOne) Save(ctx context.Context) (*StudyPlan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyPlanUpdateOne) SaveX(ctx context.Context) *StudyPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudyPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyPlanUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := studyplan.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Track(); ok {
		if err := studyplan.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.track": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyPlanUpdateOne) sqlSave(ctx context.Context) (_node *StudyPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyplan.Table, studyplan.Columns, sqlgraph.NewFieldSpec(studyplan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudyPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studyplan.FieldID)
		for _, f := range fields {
			if !studyplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studyplan.FieldID {
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
		_spec.SetField(studyplan.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(studyplan.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(studyplan.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Days(); ok {
		_spec.SetField(studyplan.FieldDays, field.TypeString, value)
	}
	_node = &StudyPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
