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
	"github.com/abhisek/catprep/ent/studyplan"
)

// StudyPlanCreate is the builder for creating a StudyPlan entity.
type StudyPlanCreate struct {
	config
	mutation *StudyPlanMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *StudyPlanCreate) SetUserID(v string) *StudyPlanCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTrack sets the "track" field.
func (_c *StudyPlanCreate) SetTrack(v string) *StudyPlanCreate {
	_c.mutation.SetTrack(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *StudyPlanCreate) SetStartDate(v time.Time) *StudyPlanCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetDays sets the "days" field.
func (_c *StudyPlanCreate) SetDays(v string) *StudyPlanCreate {
	_c.mutation.SetDays(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudyPlanCreate) SetCreatedAt(v time.Time) *StudyPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudyPlanCreate) SetNillableCreatedAt(v *time.Time) *StudyPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the StudyPlanMutation object of the builder.
func (_c *StudyPlanCreate) Mutation() *StudyPlanMutation {
	return _c.mutation
}

// Save creates the StudyPlan in the database.
func (_c *StudyPlanCreate) Save(ctx context.Context) (*StudyPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyPlanCreate) SaveX(ctx context.Context) *StudyPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyPlanCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studyplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyPlanCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StudyPlan.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := studyplan.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Track(); !ok {
		return &ValidationError{Name: "track", err: errors.New(`ent: missing required field "StudyPlan.track"`)}
	}
	if v, ok := _c.mutation.Track(); ok {
		if err := studyplan.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.track": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "StudyPlan.start_date"`)}
	}
	if _, ok := _c.mutation.Days(); !ok {
		return &ValidationError{Name: "days", err: errors.New(`ent: missing required field "StudyPlan.days"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudyPlan.created_at"`)}
	}
	return nil
}

func (_c *StudyPlanCreate) sqlSave(ctx context.Context) (*StudyPlan, error) {
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

func (_c *StudyPlanCreate) createSpec() (*StudyPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studyplan.Table, sqlgraph.NewFieldSpec(studyplan.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(studyplan.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Track(); ok {
		_spec.SetField(studyplan.FieldTrack, field.TypeString, value)
		_node.Track = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(studyplan.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.Days(); ok {
		_spec.SetField(studyplan.FieldDays, field.TypeString, value)
		_node.Days = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studyplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudyPlan.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyPlanUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *StudyPlanCreate) OnConflict(opts ...sql.ConflictOption) *StudyPlanUpsertOne {
	_c.conflict = opts
	return &StudyPlanUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudyPlan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudyPlanCreate) OnConflictColumns(columns ...string) *StudyPlanUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudyPlanUpsertOne{
		create: _c,
	}
}

type (
	// StudyPlanUpsertOne is the builder for "upsert"-ing
	//  one StudyPlan node.
	StudyPlanUpsertOne struct {
		create *StudyPlanCreate
	}

	// StudyPlanUpsert is the "OnConflict" setter.
	StudyPlanUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *StudyPlanUpsert) SetUserID(v string) *StudyPlanUpsert {
	u.Set(studyplan.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudyPlanUpsert) UpdateUserID() *StudyPlanUpsert {
	u.SetExcluded(studyplan.FieldUserID)
	return u
}

// SetTrack sets the "track" field.
func (u *StudyPlanUpsert) SetTrack(v string) *StudyPlanUpsert {
	u.Set(studyplan.FieldTrack, v)
	return u
}

// UpdateTrack sets the "track" field to the value that was provided on create.
func (u *StudyPlanUpsert) UpdateTrack() *StudyPlanUpsert {
	u.SetExcluded(studyplan.FieldTrack)
	return u
}

// SetStartDate sets the "start_date" field.
func (u *StudyPlanUpsert) SetStartDate(v time.Time) *StudyPlanUpsert {
	u.Set(studyplan.FieldStartDate, v)
	return u
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *StudyPlanUpsert) UpdateStartDate() *StudyPlanUpsert {
	u.SetExcluded(studyplan.FieldStartDate)
	return u
}

// SetDays sets the "days" field.
func (u *StudyPlanUpsert) SetDays(v string) *StudyPlanUpsert {
	u.Set(studyplan.FieldDays, v)
	return u
}

// UpdateDays sets the "days" field to the value that was provided on create.
func (u *StudyPlanUpsert) UpdateDays() *StudyPlanUpsert {
	u.SetExcluded(studyplan.FieldDays)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.StudyPlan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StudyPlanUpsertOne) UpdateNewValues() *StudyPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(studyplan.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudyPlan.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudyPlanUpsertOne) Ignore() *StudyPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyPlanUpsertOne) DoNothing() *StudyPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyPlanCreate.OnConflict
// documentation for more info.
func (u *StudyPlanUpsertOne) Update(set func(*StudyPlanUpsert)) *StudyPlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyPlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *StudyPlanUpsertOne) SetUserID(v string) *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudyPlanUpsertOne) UpdateUserID() *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateUserID()
	})
}

// SetTrack sets the "track" field.
func (u *StudyPlanUpsertOne) SetTrack(v string) *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetTrack(v)
	})
}

// UpdateTrack sets the "track" field to the value that was provided on create.
func (u *StudyPlanUpsertOne) UpdateTrack() *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateTrack()
	})
}

// SetStartDate sets the "start_date" field.
func (u *StudyPlanUpsertOne) SetStartDate(v time.Time) *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *StudyPlanUpsertOne) UpdateStartDate() *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateStartDate()
	})
}

// SetDays sets the "days" field.
func (u *StudyPlanUpsertOne) SetDays(v string) *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetDays(v)
	})
}

// UpdateDays sets the "days" field to the value that was provided on create.
func (u *StudyPlanUpsertOne) UpdateDays() *StudyPlanUpsertOne {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateDays()
	})
}

// Exec executes the query.
func (u *StudyPlanUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudyPlanCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyPlanUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudyPlanUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudyPlanUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudyPlanCreateBulk is the builder for creating many StudyPlan entities in bulk.
type StudyPlanCreateBulk struct {
	config
	err      error
	builders []*StudyPlanCreate
	conflict []sql.ConflictOption
}

// Save creates the StudyPlan entities in the database.
func (_c *StudyPlanCreateBulk) Save(ctx context.Context) ([]*StudyPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudyPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyPlanMutation)
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
func (_c *StudyPlanCreateBulk) SaveX(ctx context.Context) []*StudyPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudyPlan.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyPlanUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *StudyPlanCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudyPlanUpsertBulk {
	_c.conflict = opts
	return &StudyPlanUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudyPlan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudyPlanCreateBulk) OnConflictColumns(columns ...string) *StudyPlanUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudyPlanUpsertBulk{
		create: _c,
	}
}

// StudyPlanUpsertBulk is the builder for "upsert"-ing
// a bulk of StudyPlan nodes.
type StudyPlanUpsertBulk struct {
	create *StudyPlanCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StudyPlan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StudyPlanUpsertBulk) UpdateNewValues() *StudyPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(studyplan.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudyPlan.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudyPlanUpsertBulk) Ignore() *StudyPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyPlanUpsertBulk) DoNothing() *StudyPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyPlanCreateBulk.OnConflict
// documentation for more info.
func (u *StudyPlanUpsertBulk) Update(set func(*StudyPlanUpsert)) *StudyPlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyPlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *StudyPlanUpsertBulk) SetUserID(v string) *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudyPlanUpsertBulk) UpdateUserID() *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateUserID()
	})
}

// SetTrack sets the "track" field.
func (u *StudyPlanUpsertBulk) SetTrack(v string) *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetTrack(v)
	})
}

// UpdateTrack sets the "track" field to the value that was provided on create.
func (u *StudyPlanUpsertBulk) UpdateTrack() *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateTrack()
	})
}

// SetStartDate sets the "start_date" field.
func (u *StudyPlanUpsertBulk) SetStartDate(v time.Time) *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *StudyPlanUpsertBulk) UpdateStartDate() *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateStartDate()
	})
}

// SetDays sets the "days" field.
func (u *StudyPlanUpsertBulk) SetDays(v string) *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.SetDays(v)
	})
}

// UpdateDays sets the "days" field to the value that was provided on create.
func (u *StudyPlanUpsertBulk) UpdateDays() *StudyPlanUpsertBulk {
	return u.Update(func(s *StudyPlanUpsert) {
		s.UpdateDays()
	})
}

// Exec executes the query.
func (u *StudyPlanUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StudyPlanCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudyPlanCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyPlanUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
