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
	"github.com/abhisek/catprep/ent/planevent"
)

// PlanEventCreate is the builder for creating a PlanEvent entity.
type PlanEventCreate struct {
	config
	mutation *PlanEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *PlanEventCreate) SetSequence(v int64) *PlanEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PlanEventCreate) SetTimestamp(v time.Time) *PlanEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableTimestamp(v *time.Time) *PlanEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPlanID sets the "plan_id" field.
func (_c *PlanEventCreate) SetPlanID(v string) *PlanEventCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PlanEventCreate) SetUserID(v string) *PlanEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionIds sets the "question_ids" field.
func (_c *PlanEventCreate) SetQuestionIds(v []string) *PlanEventCreate {
	_c.mutation.SetQuestionIds(v)
	return _c
}

// SetMet sets the "met" field.
func (_c *PlanEventCreate) SetMet(v []string) *PlanEventCreate {
	_c.mutation.SetMet(v)
	return _c
}

// SetRelaxed sets the "relaxed" field.
func (_c *PlanEventCreate) SetRelaxed(v string) *PlanEventCreate {
	_c.mutation.SetRelaxed(v)
	return _c
}

// SetNillableRelaxed sets the "relaxed" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableRelaxed(v *string) *PlanEventCreate {
	if v != nil {
		_c.SetRelaxed(*v)
	}
	return _c
}

// SetValid sets the "valid" field.
func (_c *PlanEventCreate) SetValid(v bool) *PlanEventCreate {
	_c.mutation.SetValid(v)
	return _c
}

// SetFallback sets the "fallback" field.
func (_c *PlanEventCreate) SetFallback(v bool) *PlanEventCreate {
	_c.mutation.SetFallback(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *PlanEventCreate) SetReasoning(v string) *PlanEventCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableReasoning(v *string) *PlanEventCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// Mutation returns the PlanEventMutation object of the builder.
func (_c *PlanEventCreate) Mutation() *PlanEventMutation {
	return _c.mutation
}

// Save creates the PlanEvent in the database.
func (_c *PlanEventCreate) Save(ctx context.Context) (*PlanEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanEventCreate) SaveX(ctx context.Context) *PlanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := planevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Relaxed(); !ok {
		v := planevent.DefaultRelaxed
		_c.mutation.SetRelaxed(v)
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		v := planevent.DefaultReasoning
		_c.mutation.SetReasoning(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PlanEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PlanEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "PlanEvent.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := planevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PlanEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := planevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionIds(); !ok {
		return &ValidationError{Name: "question_ids", err: errors.New(`ent: missing required field "PlanEvent.question_ids"`)}
	}
	if _, ok := _c.mutation.Relaxed(); !ok {
		return &ValidationError{Name: "relaxed", err: errors.New(`ent: missing required field "PlanEvent.relaxed"`)}
	}
	if _, ok := _c.mutation.Valid(); !ok {
		return &ValidationError{Name: "valid", err: errors.New(`ent: missing required field "PlanEvent.valid"`)}
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		return &ValidationError{Name: "fallback", err: errors.New(`ent: missing required field "PlanEvent.fallback"`)}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "PlanEvent.reasoning"`)}
	}
	return nil
}

func (_c *PlanEventCreate) sqlSave(ctx context.Context) (*PlanEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlanEventCreate) createSpec() (*PlanEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(planevent.Table, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(planevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(planevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(planevent.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(planevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionIds(); ok {
		_spec.SetField(planevent.FieldQuestionIds, field.TypeJSON, value)
		_node.QuestionIds = value
	}
	if value, ok := _c.mutation.Met(); ok {
		_spec.SetField(planevent.FieldMet, field.TypeJSON, value)
		_node.Met = value
	}
	if value, ok := _c.mutation.Relaxed(); ok {
		_spec.SetField(planevent.FieldRelaxed, field.TypeString, value)
		_node.Relaxed = value
	}
	if value, ok := _c.mutation.Valid(); ok {
		_spec.SetField(planevent.FieldValid, field.TypeBool, value)
		_node.Valid = value
	}
	if value, ok := _c.mutation.Fallback(); ok {
		_spec.SetField(planevent.FieldFallback, field.TypeBool, value)
		_node.Fallback = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(planevent.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlanEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlanEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *PlanEventCreate) OnConflict(opts ...sql.ConflictOption) *PlanEventUpsertOne {
	_c.conflict = opts
	return &PlanEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlanEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlanEventCreate) OnConflictColumns(columns ...string) *PlanEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlanEventUpsertOne{
		create: _c,
	}
}

type (
	// PlanEventUpsertOne is the builder for "upsert"-ing
	//  one PlanEvent node.
	PlanEventUpsertOne struct {
		create *PlanEventCreate
	}

	// PlanEventUpsert is the "OnConflict" setter.
	PlanEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetPlanID sets the "plan_id" field.
func (u *PlanEventUpsert) SetPlanID(v string) *PlanEventUpsert {
	u.Set(planevent.FieldPlanID, v)
	return u
}

// UpdatePlanID sets the "plan_id" field to the value that was provided on create.
func (u *PlanEventUpsert) UpdatePlanID() *PlanEventUpsert {
	u.SetExcluded(planevent.FieldPlanID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *PlanEventUpsert) SetUserID(v string) *PlanEventUpsert {
	u.Set(planevent.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PlanEventUpsert) UpdateUserID() *PlanEventUpsert {
	u.SetExcluded(planevent.FieldUserID)
	return u
}

// SetQuestionIds sets the "question_ids" field.
func (u *PlanEventUpsert) SetQuestionIds(v []string) *PlanEventUpsert {
	u.Set(planevent.FieldQuestionIds, v)
	return u
}

// UpdateQuestionIds sets the "question_ids" field to the value that was provided on create.
func (u *PlanEventUpsert) UpdateQuestionIds() *PlanEventUpsert {
	u.SetExcluded(planevent.FieldQuestionIds)
	return u
}

// SetMet sets the "met" field.
func (u *PlanEventUpsert) SetMet(v []string) *PlanEventUpsert {
	u.Set(planevent.FieldMet, v)
	return u
}

// UpdateMet sets the "met" field to the value that was provided on create.
func (u *PlanEventUpsert) UpdateMet() *PlanEventUpsert {
	u.SetExcluded(planevent.FieldMet)
	return u
}

// ClearMet clears the value of the "met" field.
func (u *PlanEventUpsert) ClearMet() *PlanEventUpsert {
	u.SetNull(planevent.FieldMet)
	return u
}

// SetRelaxed sets the "relaxed" field.
func (u *PlanEventUpsert) SetRelaxed(v string) *PlanEventUpsert {
	u.Set(planevent.FieldRelaxed, v)
	return u
}

// UpdateRelaxed sets the "relaxed" field to the value that was provided on create.
func (u *PlanEventUpsert) UpdateRelaxed() *PlanEventUpsert {
	u.SetExcluded(planevent.FieldRelaxed)
	return u
}

// SetValid sets the "valid" field.
func (u *PlanEventUpsert) SetValid(v bool) *PlanEventUpsert {
	u.Set(planevent.FieldValid, v)
	return u
}

// UpdateValid sets the "valid" field to the value that was provided on create.
func (u *PlanEventUpsert) UpdateValid() *PlanEventUpsert {
	u.SetExcluded(planevent.FieldValid)
	return u
}

// SetFallback sets the "fallback" field.
func (u *PlanEventUpsert) SetFallback(v bool) *PlanEventUpsert {
	u.Set(planevent.FieldFallback, v)
	return u
}

// UpdateFallback sets the "fallback" field to the value that was provided on create.
func (u *PlanEventUpsert) UpdateFallback() *PlanEventUpsert {
	u.SetExcluded(planevent.FieldFallback)
	return u
}

// SetReasoning sets the "reasoning" field.
func (u *PlanEventUpsert) SetReasoning(v string) *PlanEventUpsert {
	u.Set(planevent.FieldReasoning, v)
	return u
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *PlanEventUpsert) UpdateReasoning() *PlanEventUpsert {
	u.SetExcluded(planevent.FieldReasoning)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PlanEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlanEventUpsertOne) UpdateNewValues() *PlanEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(planevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(planevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlanEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlanEventUpsertOne) Ignore() *PlanEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlanEventUpsertOne) DoNothing() *PlanEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlanEventCreate.OnConflict
// documentation for more info.
func (u *PlanEventUpsertOne) Update(set func(*PlanEventUpsert)) *PlanEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlanEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlanID sets the "plan_id" field.
func (u *PlanEventUpsertOne) SetPlanID(v string) *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetPlanID(v)
	})
}

// UpdatePlanID sets the "plan_id" field to the value that was provided on create.
func (u *PlanEventUpsertOne) UpdatePlanID() *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdatePlanID()
	})
}

// SetUserID sets the "user_id" field.
func (u *PlanEventUpsertOne) SetUserID(v string) *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PlanEventUpsertOne) UpdateUserID() *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdateUserID()
	})
}

// SetQuestionIds sets the "question_ids" field.
func (u *PlanEventUpsertOne) SetQuestionIds(v []string) *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetQuestionIds(v)
	})
}

// UpdateQuestionIds sets the "question_ids" field to the value that was provided on create.
func (u *PlanEventUpsertOne) UpdateQuestionIds() *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdateQuestionIds()
	})
}

// SetMet sets the "met" field.
func (u *PlanEventUpsertOne) SetMet(v []string) *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetMet(v)
	})
}

// UpdateMet sets the "met" field to the value that was provided on create.
func (u *PlanEventUpsertOne) UpdateMet() *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdateMet()
	})
}

// ClearMet clears the value of the "met" field.
func (u *PlanEventUpsertOne) ClearMet() *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.ClearMet()
	})
}

// SetRelaxed sets the "relaxed" field.
func (u *PlanEventUpsertOne) SetRelaxed(v string) *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetRelaxed(v)
	})
}

// UpdateRelaxed sets the "relaxed" field to the value that was provided on create.
func (u *PlanEventUpsertOne) UpdateRelaxed() *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdateRelaxed()
	})
}

// SetValid sets the "valid" field.
func (u *PlanEventUpsertOne) SetValid(v bool) *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetValid(v)
	})
}

// UpdateValid sets the "valid" field to the value that was provided on create.
func (u *PlanEventUpsertOne) UpdateValid() *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdateValid()
	})
}

// SetFallback sets the "fallback" field.
func (u *PlanEventUpsertOne) SetFallback(v bool) *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetFallback(v)
	})
}

// UpdateFallback sets the "fallback" field to the value that was provided on create.
func (u *PlanEventUpsertOne) UpdateFallback() *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdateFallback()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *PlanEventUpsertOne) SetReasoning(v string) *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *PlanEventUpsertOne) UpdateReasoning() *PlanEventUpsertOne {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdateReasoning()
	})
}

// Exec executes the query.
func (u *PlanEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlanEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlanEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlanEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlanEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlanEventCreateBulk is the builder for creating many PlanEvent entities in bulk.
type PlanEventCreateBulk struct {
	config
	err      error
	builders []*PlanEventCreate
	conflict []sql.ConflictOption
}

// Save creates the PlanEvent entities in the database.
func (_c *PlanEventCreateBulk) Save(ctx context.Context) ([]*PlanEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PlanEventCreateBulk) SaveX(ctx context.Context) []*PlanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlanEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlanEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *PlanEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlanEventUpsertBulk {
	_c.conflict = opts
	return &PlanEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlanEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlanEventCreateBulk) OnConflictColumns(columns ...string) *PlanEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlanEventUpsertBulk{
		create: _c,
	}
}

// PlanEventUpsertBulk is the builder for "upsert"-ing
// a bulk of PlanEvent nodes.
type PlanEventUpsertBulk struct {
	create *PlanEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PlanEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlanEventUpsertBulk) UpdateNewValues() *PlanEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(planevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(planevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlanEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlanEventUpsertBulk) Ignore() *PlanEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlanEventUpsertBulk) DoNothing() *PlanEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlanEventCreateBulk.OnConflict
// documentation for more info.
func (u *PlanEventUpsertBulk) Update(set func(*PlanEventUpsert)) *PlanEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlanEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlanID sets the "plan_id" field.
func (u *PlanEventUpsertBulk) SetPlanID(v string) *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetPlanID(v)
	})
}

// UpdatePlanID sets the "plan_id" field to the value that was provided on create.
func (u *PlanEventUpsertBulk) UpdatePlanID() *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdatePlanID()
	})
}

// SetUserID sets the "user_id" field.
func (u *PlanEventUpsertBulk) SetUserID(v string) *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PlanEventUpsertBulk) UpdateUserID() *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdateUserID()
	})
}

// SetQuestionIds sets the "question_ids" field.
func (u *PlanEventUpsertBulk) SetQuestionIds(v []string) *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetQuestionIds(v)
	})
}

// UpdateQuestionIds sets the "question_ids" field to the value that was provided on create.
func (u *PlanEventUpsertBulk) UpdateQuestionIds() *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdateQuestionIds()
	})
}

// SetMet sets the "met" field.
func (u *PlanEventUpsertBulk) SetMet(v []string) *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetMet(v)
	})
}

// UpdateMet sets the "met" field to the value that was provided on create.
func (u *PlanEventUpsertBulk) UpdateMet() *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdateMet()
	})
}

// ClearMet clears the value of the "met" field.
func (u *PlanEventUpsertBulk) ClearMet() *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.ClearMet()
	})
}

// SetRelaxed sets the "relaxed" field.
func (u *PlanEventUpsertBulk) SetRelaxed(v string) *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetRelaxed(v)
	})
}

// UpdateRelaxed sets the "relaxed" field to the value that was provided on create.
func (u *PlanEventUpsertBulk) UpdateRelaxed() *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdateRelaxed()
	})
}

// SetValid sets the "valid" field.
func (u *PlanEventUpsertBulk) SetValid(v bool) *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetValid(v)
	})
}

// UpdateValid sets the "valid" field to the value that was provided on create.
func (u *PlanEventUpsertBulk) UpdateValid() *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdateValid()
	})
}

// SetFallback sets the "fallback" field.
func (u *PlanEventUpsertBulk) SetFallback(v bool) *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetFallback(v)
	})
}

// UpdateFallback sets the "fallback" field to the value that was provided on create.
func (u *PlanEventUpsertBulk) UpdateFallback() *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdateFallback()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *PlanEventUpsertBulk) SetReasoning(v string) *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *PlanEventUpsertBulk) UpdateReasoning() *PlanEventUpsertBulk {
	return u.Update(func(s *PlanEventUpsert) {
		s.UpdateReasoning()
	})
}

// Exec executes the query.
func (u *PlanEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlanEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlanEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlanEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
