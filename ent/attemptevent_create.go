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
	"github.com/abhisek/catprep/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AttemptEventCreate) SetUserID(v string) *AttemptEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AttemptEventCreate) SetQuestionID(v string) *AttemptEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AttemptEventCreate) SetCorrect(v bool) *AttemptEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *AttemptEventCreate) SetSkipped(v bool) *AttemptEventCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *AttemptEventCreate) SetResponseTimeMs(v int) *AttemptEventCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetSessSeq sets the "sess_seq" field.
func (_c *AttemptEventCreate) SetSessSeq(v int64) *AttemptEventCreate {
	_c.mutation.SetSessSeq(v)
	return _c
}

// SetDifficultyBand sets the "difficulty_band" field.
func (_c *AttemptEventCreate) SetDifficultyBand(v string) *AttemptEventCreate {
	_c.mutation.SetDifficultyBand(v)
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *AttemptEventCreate) SetSubcategory(v string) *AttemptEventCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_c *AttemptEventCreate) SetTypeOfQuestion(v string) *AttemptEventCreate {
	_c.mutation.SetTypeOfQuestion(v)
	return _c
}

// SetCoreConcepts sets the "core_concepts" field.
func (_c *AttemptEventCreate) SetCoreConcepts(v []string) *AttemptEventCreate {
	_c.mutation.SetCoreConcepts(v)
	return _c
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (_c *AttemptEventCreate) SetPyqFrequencyScore(v float64) *AttemptEventCreate {
	_c.mutation.SetPyqFrequencyScore(v)
	return _c
}

// SetNillablePyqFrequencyScore sets the "pyq_frequency_score" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillablePyqFrequencyScore(v *float64) *AttemptEventCreate {
	if v != nil {
		_c.SetPyqFrequencyScore(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.PyqFrequencyScore(); !ok {
		v := attemptevent.DefaultPyqFrequencyScore
		_c.mutation.SetPyqFrequencyScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AttemptEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AttemptEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := attemptevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "AttemptEvent.skipped"`)}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "AttemptEvent.response_time_ms"`)}
	}
	if _, ok := _c.mutation.SessSeq(); !ok {
		return &ValidationError{Name: "sess_seq", err: errors.New(`ent: missing required field "AttemptEvent.sess_seq"`)}
	}
	if _, ok := _c.mutation.DifficultyBand(); !ok {
		return &ValidationError{Name: "difficulty_band", err: errors.New(`ent: missing required field "AttemptEvent.difficulty_band"`)}
	}
	if v, ok := _c.mutation.DifficultyBand(); ok {
		if err := attemptevent.DifficultyBandValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_band", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.difficulty_band": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subcategory(); !ok {
		return &ValidationError{Name: "subcategory", err: errors.New(`ent: missing required field "AttemptEvent.subcategory"`)}
	}
	if v, ok := _c.mutation.Subcategory(); ok {
		if err := attemptevent.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.subcategory": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TypeOfQuestion(); !ok {
		return &ValidationError{Name: "type_of_question", err: errors.New(`ent: missing required field "AttemptEvent.type_of_question"`)}
	}
	if v, ok := _c.mutation.TypeOfQuestion(); ok {
		if err := attemptevent.TypeOfQuestionValidator(v); err != nil {
			return &ValidationError{Name: "type_of_question", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.type_of_question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CoreConcepts(); !ok {
		return &ValidationError{Name: "core_concepts", err: errors.New(`ent: missing required field "AttemptEvent.core_concepts"`)}
	}
	if _, ok := _c.mutation.PyqFrequencyScore(); !ok {
		return &ValidationError{Name: "pyq_frequency_score", err: errors.New(`ent: missing required field "AttemptEvent.pyq_frequency_score"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
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

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(attemptevent.FieldSkipped, field.TypeBool, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attemptevent.FieldResponseTimeMs, field.TypeInt, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.SessSeq(); ok {
		_spec.SetField(attemptevent.FieldSessSeq, field.TypeInt64, value)
		_node.SessSeq = value
	}
	if value, ok := _c.mutation.DifficultyBand(); ok {
		_spec.SetField(attemptevent.FieldDifficultyBand, field.TypeString, value)
		_node.DifficultyBand = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(attemptevent.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = value
	}
	if value, ok := _c.mutation.TypeOfQuestion(); ok {
		_spec.SetField(attemptevent.FieldTypeOfQuestion, field.TypeString, value)
		_node.TypeOfQuestion = value
	}
	if value, ok := _c.mutation.CoreConcepts(); ok {
		_spec.SetField(attemptevent.FieldCoreConcepts, field.TypeJSON, value)
		_node.CoreConcepts = value
	}
	if value, ok := _c.mutation.PyqFrequencyScore(); ok {
		_spec.SetField(attemptevent.FieldPyqFrequencyScore, field.TypeFloat64, value)
		_node.PyqFrequencyScore = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptEventCreate) OnConflict(opts ...sql.ConflictOption) *AttemptEventUpsertOne {
	_c.conflict = opts
	return &AttemptEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptEventCreate) OnConflictColumns(columns ...string) *AttemptEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptEventUpsertOne{
		create: _c,
	}
}

type (
	// AttemptEventUpsertOne is the builder for "upsert"-ing
	//  one AttemptEvent node.
	AttemptEventUpsertOne struct {
		create *AttemptEventCreate
	}

	// AttemptEventUpsert is the "OnConflict" setter.
	AttemptEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *AttemptEventUpsert) SetUserID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateUserID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldUserID)
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *AttemptEventUpsert) SetQuestionID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateQuestionID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldQuestionID)
	return u
}

// SetCorrect sets the "correct" field.
func (u *AttemptEventUpsert) SetCorrect(v bool) *AttemptEventUpsert {
	u.Set(attemptevent.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateCorrect() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldCorrect)
	return u
}

// SetSkipped sets the "skipped" field.
func (u *AttemptEventUpsert) SetSkipped(v bool) *AttemptEventUpsert {
	u.Set(attemptevent.FieldSkipped, v)
	return u
}

// UpdateSkipped sets the "skipped" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateSkipped() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldSkipped)
	return u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (u *AttemptEventUpsert) SetResponseTimeMs(v int) *AttemptEventUpsert {
	u.Set(attemptevent.FieldResponseTimeMs, v)
	return u
}

// UpdateResponseTimeMs sets the "response_time_ms" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateResponseTimeMs() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldResponseTimeMs)
	return u
}

// AddResponseTimeMs adds v to the "response_time_ms" field.
func (u *AttemptEventUpsert) AddResponseTimeMs(v int) *AttemptEventUpsert {
	u.Add(attemptevent.FieldResponseTimeMs, v)
	return u
}

// SetSessSeq sets the "sess_seq" field.
func (u *AttemptEventUpsert) SetSessSeq(v int64) *AttemptEventUpsert {
	u.Set(attemptevent.FieldSessSeq, v)
	return u
}

// UpdateSessSeq sets the "sess_seq" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateSessSeq() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldSessSeq)
	return u
}

// AddSessSeq adds v to the "sess_seq" field.
func (u *AttemptEventUpsert) AddSessSeq(v int64) *AttemptEventUpsert {
	u.Add(attemptevent.FieldSessSeq, v)
	return u
}

// SetDifficultyBand sets the "difficulty_band" field.
func (u *AttemptEventUpsert) SetDifficultyBand(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldDifficultyBand, v)
	return u
}

// UpdateDifficultyBand sets the "difficulty_band" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateDifficultyBand() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldDifficultyBand)
	return u
}

// SetSubcategory sets the "subcategory" field.
func (u *AttemptEventUpsert) SetSubcategory(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldSubcategory, v)
	return u
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateSubcategory() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldSubcategory)
	return u
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (u *AttemptEventUpsert) SetTypeOfQuestion(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldTypeOfQuestion, v)
	return u
}

// UpdateTypeOfQuestion sets the "type_of_question" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateTypeOfQuestion() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldTypeOfQuestion)
	return u
}

// SetCoreConcepts sets the "core_concepts" field.
func (u *AttemptEventUpsert) SetCoreConcepts(v []string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldCoreConcepts, v)
	return u
}

// UpdateCoreConcepts sets the "core_concepts" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateCoreConcepts() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldCoreConcepts)
	return u
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (u *AttemptEventUpsert) SetPyqFrequencyScore(v float64) *AttemptEventUpsert {
	u.Set(attemptevent.FieldPyqFrequencyScore, v)
	return u
}

// UpdatePyqFrequencyScore sets the "pyq_frequency_score" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdatePyqFrequencyScore() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldPyqFrequencyScore)
	return u
}

// AddPyqFrequencyScore adds v to the "pyq_frequency_score" field.
func (u *AttemptEventUpsert) AddPyqFrequencyScore(v float64) *AttemptEventUpsert {
	u.Add(attemptevent.FieldPyqFrequencyScore, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptEventUpsertOne) UpdateNewValues() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(attemptevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(attemptevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AttemptEventUpsertOne) Ignore() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptEventUpsertOne) DoNothing() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptEventCreate.OnConflict
// documentation for more info.
func (u *AttemptEventUpsertOne) Update(set func(*AttemptEventUpsert)) *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AttemptEventUpsertOne) SetUserID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateUserID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateUserID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *AttemptEventUpsertOne) SetQuestionID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateQuestionID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateQuestionID()
	})
}

// SetCorrect sets the "correct" field.
func (u *AttemptEventUpsertOne) SetCorrect(v bool) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateCorrect() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetSkipped sets the "skipped" field.
func (u *AttemptEventUpsertOne) SetSkipped(v bool) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSkipped(v)
	})
}

// UpdateSkipped sets the "skipped" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateSkipped() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSkipped()
	})
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (u *AttemptEventUpsertOne) SetResponseTimeMs(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetResponseTimeMs(v)
	})
}

// AddResponseTimeMs adds v to the "response_time_ms" field.
func (u *AttemptEventUpsertOne) AddResponseTimeMs(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddResponseTimeMs(v)
	})
}

// UpdateResponseTimeMs sets the "response_time_ms" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateResponseTimeMs() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateResponseTimeMs()
	})
}

// SetSessSeq sets the "sess_seq" field.
func (u *AttemptEventUpsertOne) SetSessSeq(v int64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSessSeq(v)
	})
}

// AddSessSeq adds v to the "sess_seq" field.
func (u *AttemptEventUpsertOne) AddSessSeq(v int64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddSessSeq(v)
	})
}

// UpdateSessSeq sets the "sess_seq" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateSessSeq() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSessSeq()
	})
}

// SetDifficultyBand sets the "difficulty_band" field.
func (u *AttemptEventUpsertOne) SetDifficultyBand(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetDifficultyBand(v)
	})
}

// UpdateDifficultyBand sets the "difficulty_band" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateDifficultyBand() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateDifficultyBand()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *AttemptEventUpsertOne) SetSubcategory(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateSubcategory() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSubcategory()
	})
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (u *AttemptEventUpsertOne) SetTypeOfQuestion(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTypeOfQuestion(v)
	})
}

// UpdateTypeOfQuestion sets the "type_of_question" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateTypeOfQuestion() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTypeOfQuestion()
	})
}

// SetCoreConcepts sets the "core_concepts" field.
func (u *AttemptEventUpsertOne) SetCoreConcepts(v []string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetCoreConcepts(v)
	})
}

// UpdateCoreConcepts sets the "core_concepts" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateCoreConcepts() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateCoreConcepts()
	})
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (u *AttemptEventUpsertOne) SetPyqFrequencyScore(v float64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetPyqFrequencyScore(v)
	})
}

// AddPyqFrequencyScore adds v to the "pyq_frequency_score" field.
func (u *AttemptEventUpsertOne) AddPyqFrequencyScore(v float64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddPyqFrequencyScore(v)
	})
}

// UpdatePyqFrequencyScore sets the "pyq_frequency_score" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdatePyqFrequencyScore() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdatePyqFrequencyScore()
	})
}

// Exec executes the query.
func (u *AttemptEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AttemptEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AttemptEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
	conflict []sql.ConflictOption
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *AttemptEventUpsertBulk {
	_c.conflict = opts
	return &AttemptEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptEventCreateBulk) OnConflictColumns(columns ...string) *AttemptEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptEventUpsertBulk{
		create: _c,
	}
}

// AttemptEventUpsertBulk is the builder for "upsert"-ing
// a bulk of AttemptEvent nodes.
type AttemptEventUpsertBulk struct {
	create *AttemptEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptEventUpsertBulk) UpdateNewValues() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(attemptevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(attemptevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AttemptEventUpsertBulk) Ignore() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptEventUpsertBulk) DoNothing() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptEventCreateBulk.OnConflict
// documentation for more info.
func (u *AttemptEventUpsertBulk) Update(set func(*AttemptEventUpsert)) *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AttemptEventUpsertBulk) SetUserID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateUserID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateUserID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *AttemptEventUpsertBulk) SetQuestionID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateQuestionID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateQuestionID()
	})
}

// SetCorrect sets the "correct" field.
func (u *AttemptEventUpsertBulk) SetCorrect(v bool) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateCorrect() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetSkipped sets the "skipped" field.
func (u *AttemptEventUpsertBulk) SetSkipped(v bool) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSkipped(v)
	})
}

// UpdateSkipped sets the "skipped" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateSkipped() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSkipped()
	})
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (u *AttemptEventUpsertBulk) SetResponseTimeMs(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetResponseTimeMs(v)
	})
}

// AddResponseTimeMs adds v to the "response_time_ms" field.
func (u *AttemptEventUpsertBulk) AddResponseTimeMs(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddResponseTimeMs(v)
	})
}

// UpdateResponseTimeMs sets the "response_time_ms" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateResponseTimeMs() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateResponseTimeMs()
	})
}

// SetSessSeq sets the "sess_seq" field.
func (u *AttemptEventUpsertBulk) SetSessSeq(v int64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSessSeq(v)
	})
}

// AddSessSeq adds v to the "sess_seq" field.
func (u *AttemptEventUpsertBulk) AddSessSeq(v int64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddSessSeq(v)
	})
}

// UpdateSessSeq sets the "sess_seq" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateSessSeq() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSessSeq()
	})
}

// SetDifficultyBand sets the "difficulty_band" field.
func (u *AttemptEventUpsertBulk) SetDifficultyBand(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetDifficultyBand(v)
	})
}

// UpdateDifficultyBand sets the "difficulty_band" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateDifficultyBand() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateDifficultyBand()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *AttemptEventUpsertBulk) SetSubcategory(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateSubcategory() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSubcategory()
	})
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (u *AttemptEventUpsertBulk) SetTypeOfQuestion(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTypeOfQuestion(v)
	})
}

// UpdateTypeOfQuestion sets the "type_of_question" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateTypeOfQuestion() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTypeOfQuestion()
	})
}

// SetCoreConcepts sets the "core_concepts" field.
func (u *AttemptEventUpsertBulk) SetCoreConcepts(v []string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetCoreConcepts(v)
	})
}

// UpdateCoreConcepts sets the "core_concepts" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateCoreConcepts() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateCoreConcepts()
	})
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (u *AttemptEventUpsertBulk) SetPyqFrequencyScore(v float64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetPyqFrequencyScore(v)
	})
}

// AddPyqFrequencyScore adds v to the "pyq_frequency_score" field.
func (u *AttemptEventUpsertBulk) AddPyqFrequencyScore(v float64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddPyqFrequencyScore(v)
	})
}

// UpdatePyqFrequencyScore sets the "pyq_frequency_score" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdatePyqFrequencyScore() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdatePyqFrequencyScore()
	})
}

// Exec executes the query.
func (u *AttemptEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AttemptEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
