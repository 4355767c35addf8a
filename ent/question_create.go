// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/catprep/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQuestionID sets the "question_id" field.
func (_c *QuestionCreate) SetQuestionID(v string) *QuestionCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetDifficultyBand sets the "difficulty_band" field.
func (_c *QuestionCreate) SetDifficultyBand(v string) *QuestionCreate {
	_c.mutation.SetDifficultyBand(v)
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *QuestionCreate) SetSubcategory(v string) *QuestionCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_c *QuestionCreate) SetTypeOfQuestion(v string) *QuestionCreate {
	_c.mutation.SetTypeOfQuestion(v)
	return _c
}

// SetCoreConcepts sets the "core_concepts" field.
func (_c *QuestionCreate) SetCoreConcepts(v []string) *QuestionCreate {
	_c.mutation.SetCoreConcepts(v)
	return _c
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (_c *QuestionCreate) SetPyqFrequencyScore(v float64) *QuestionCreate {
	_c.mutation.SetPyqFrequencyScore(v)
	return _c
}

// SetNillablePyqFrequencyScore sets the "pyq_frequency_score" field if the given value is not nil.
func (_c *QuestionCreate) SetNillablePyqFrequencyScore(v *float64) *QuestionCreate {
	if v != nil {
		_c.SetPyqFrequencyScore(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuestionCreate) SetTopic(v string) *QuestionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableTopic(v *string) *QuestionCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *QuestionCreate) SetActive(v bool) *QuestionCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableActive(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetExcluded sets the "excluded" field.
func (_c *QuestionCreate) SetExcluded(v bool) *QuestionCreate {
	_c.mutation.SetExcluded(v)
	return _c
}

// SetNillableExcluded sets the "excluded" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableExcluded(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetExcluded(*v)
	}
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.PyqFrequencyScore(); !ok {
		v := question.DefaultPyqFrequencyScore
		_c.mutation.SetPyqFrequencyScore(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := question.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := question.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.Excluded(); !ok {
		v := question.DefaultExcluded
		_c.mutation.SetExcluded(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Question.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := question.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Question.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DifficultyBand(); !ok {
		return &ValidationError{Name: "difficulty_band", err: errors.New(`ent: missing required field "Question.difficulty_band"`)}
	}
	if v, ok := _c.mutation.DifficultyBand(); ok {
		if err := question.DifficultyBandValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_band", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty_band": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subcategory(); !ok {
		return &ValidationError{Name: "subcategory", err: errors.New(`ent: missing required field "Question.subcategory"`)}
	}
	if v, ok := _c.mutation.Subcategory(); ok {
		if err := question.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "Question.subcategory": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TypeOfQuestion(); !ok {
		return &ValidationError{Name: "type_of_question", err: errors.New(`ent: missing required field "Question.type_of_question"`)}
	}
	if v, ok := _c.mutation.TypeOfQuestion(); ok {
		if err := question.TypeOfQuestionValidator(v); err != nil {
			return &ValidationError{Name: "type_of_question", err: fmt.Errorf(`ent: validator failed for field "Question.type_of_question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CoreConcepts(); !ok {
		return &ValidationError{Name: "core_concepts", err: errors.New(`ent: missing required field "Question.core_concepts"`)}
	}
	if _, ok := _c.mutation.PyqFrequencyScore(); !ok {
		return &ValidationError{Name: "pyq_frequency_score", err: errors.New(`ent: missing required field "Question.pyq_frequency_score"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Question.topic"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Question.active"`)}
	}
	if _, ok := _c.mutation.Excluded(); !ok {
		return &ValidationError{Name: "excluded", err: errors.New(`ent: missing required field "Question.excluded"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(question.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.DifficultyBand(); ok {
		_spec.SetField(question.FieldDifficultyBand, field.TypeString, value)
		_node.DifficultyBand = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(question.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = value
	}
	if value, ok := _c.mutation.TypeOfQuestion(); ok {
		_spec.SetField(question.FieldTypeOfQuestion, field.TypeString, value)
		_node.TypeOfQuestion = value
	}
	if value, ok := _c.mutation.CoreConcepts(); ok {
		_spec.SetField(question.FieldCoreConcepts, field.TypeJSON, value)
		_node.CoreConcepts = value
	}
	if value, ok := _c.mutation.PyqFrequencyScore(); ok {
		_spec.SetField(question.FieldPyqFrequencyScore, field.TypeFloat64, value)
		_node.PyqFrequencyScore = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(question.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.Excluded(); ok {
		_spec.SetField(question.FieldExcluded, field.TypeBool, value)
		_node.Excluded = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.Create().
//		SetQuestionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetQuestionID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertOne {
	_c.conflict = opts
	return &QuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreate) OnConflictColumns(columns ...string) *QuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertOne{
		create: _c,
	}
}

type (
	// QuestionUpsertOne is the builder for "upsert"-ing
	//  one Question node.
	QuestionUpsertOne struct {
		create *QuestionCreate
	}

	// QuestionUpsert is the "OnConflict" setter.
	QuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuestionID sets the "question_id" field.
func (u *QuestionUpsert) SetQuestionID(v string) *QuestionUpsert {
	u.Set(question.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateQuestionID() *QuestionUpsert {
	u.UpdateSet.SetExcluded(question.FieldQuestionID)
	return u
}

// SetDifficultyBand sets the "difficulty_band" field.
func (u *QuestionUpsert) SetDifficultyBand(v string) *QuestionUpsert {
	u.Set(question.FieldDifficultyBand, v)
	return u
}

// UpdateDifficultyBand sets the "difficulty_band" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateDifficultyBand() *QuestionUpsert {
	u.UpdateSet.SetExcluded(question.FieldDifficultyBand)
	return u
}

// SetSubcategory sets the "subcategory" field.
func (u *QuestionUpsert) SetSubcategory(v string) *QuestionUpsert {
	u.Set(question.FieldSubcategory, v)
	return u
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateSubcategory() *QuestionUpsert {
	u.UpdateSet.SetExcluded(question.FieldSubcategory)
	return u
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (u *QuestionUpsert) SetTypeOfQuestion(v string) *QuestionUpsert {
	u.Set(question.FieldTypeOfQuestion, v)
	return u
}

// UpdateTypeOfQuestion sets the "type_of_question" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateTypeOfQuestion() *QuestionUpsert {
	u.UpdateSet.SetExcluded(question.FieldTypeOfQuestion)
	return u
}

// SetCoreConcepts sets the "core_concepts" field.
func (u *QuestionUpsert) SetCoreConcepts(v []string) *QuestionUpsert {
	u.Set(question.FieldCoreConcepts, v)
	return u
}

// UpdateCoreConcepts sets the "core_concepts" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateCoreConcepts() *QuestionUpsert {
	u.UpdateSet.SetExcluded(question.FieldCoreConcepts)
	return u
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (u *QuestionUpsert) SetPyqFrequencyScore(v float64) *QuestionUpsert {
	u.Set(question.FieldPyqFrequencyScore, v)
	return u
}

// UpdatePyqFrequencyScore sets the "pyq_frequency_score" field to the value that was provided on create.
func (u *QuestionUpsert) UpdatePyqFrequencyScore() *QuestionUpsert {
	u.UpdateSet.SetExcluded(question.FieldPyqFrequencyScore)
	return u
}

// AddPyqFrequencyScore adds v to the "pyq_frequency_score" field.
func (u *QuestionUpsert) AddPyqFrequencyScore(v float64) *QuestionUpsert {
	u.Add(question.FieldPyqFrequencyScore, v)
	return u
}

// SetTopic sets the "topic" field.
func (u *QuestionUpsert) SetTopic(v string) *QuestionUpsert {
	u.Set(question.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateTopic() *QuestionUpsert {
	u.UpdateSet.SetExcluded(question.FieldTopic)
	return u
}

// SetActive sets the "active" field.
func (u *QuestionUpsert) SetActive(v bool) *QuestionUpsert {
	u.Set(question.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateActive() *QuestionUpsert {
	u.UpdateSet.SetExcluded(question.FieldActive)
	return u
}

// SetExcluded sets the "excluded" field.
func (u *QuestionUpsert) SetExcluded(v bool) *QuestionUpsert {
	u.Set(question.FieldExcluded, v)
	return u
}

// UpdateExcluded sets the "excluded" field to the value that was provided on create.
func (u *QuestionUpsert) UpdateExcluded() *QuestionUpsert {
	u.UpdateSet.SetExcluded(question.FieldExcluded)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionUpsertOne) UpdateNewValues() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionUpsertOne) Ignore() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertOne) DoNothing() *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreate.OnConflict
// documentation for more info.
func (u *QuestionUpsertOne) Update(set func(*QuestionUpsert)) *QuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *QuestionUpsertOne) SetQuestionID(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateQuestionID() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQuestionID()
	})
}

// SetDifficultyBand sets the "difficulty_band" field.
func (u *QuestionUpsertOne) SetDifficultyBand(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficultyBand(v)
	})
}

// UpdateDifficultyBand sets the "difficulty_band" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateDifficultyBand() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficultyBand()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *QuestionUpsertOne) SetSubcategory(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateSubcategory() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSubcategory()
	})
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (u *QuestionUpsertOne) SetTypeOfQuestion(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTypeOfQuestion(v)
	})
}

// UpdateTypeOfQuestion sets the "type_of_question" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateTypeOfQuestion() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTypeOfQuestion()
	})
}

// SetCoreConcepts sets the "core_concepts" field.
func (u *QuestionUpsertOne) SetCoreConcepts(v []string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCoreConcepts(v)
	})
}

// UpdateCoreConcepts sets the "core_concepts" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateCoreConcepts() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCoreConcepts()
	})
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (u *QuestionUpsertOne) SetPyqFrequencyScore(v float64) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPyqFrequencyScore(v)
	})
}

// AddPyqFrequencyScore adds v to the "pyq_frequency_score" field.
func (u *QuestionUpsertOne) AddPyqFrequencyScore(v float64) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.AddPyqFrequencyScore(v)
	})
}

// UpdatePyqFrequencyScore sets the "pyq_frequency_score" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdatePyqFrequencyScore() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePyqFrequencyScore()
	})
}

// SetTopic sets the "topic" field.
func (u *QuestionUpsertOne) SetTopic(v string) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateTopic() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTopic()
	})
}

// SetActive sets the "active" field.
func (u *QuestionUpsertOne) SetActive(v bool) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateActive() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateActive()
	})
}

// SetExcluded sets the "excluded" field.
func (u *QuestionUpsertOne) SetExcluded(v bool) *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.SetExcluded(v)
	})
}

// UpdateExcluded sets the "excluded" field to the value that was provided on create.
func (u *QuestionUpsertOne) UpdateExcluded() *QuestionUpsertOne {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateExcluded()
	})
}

// Exec executes the query.
func (u *QuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Question.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionUpsert) {
//			SetQuestionID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionUpsertBulk {
	_c.conflict = opts
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionCreateBulk) OnConflictColumns(columns ...string) *QuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionUpsertBulk{
		create: _c,
	}
}

// QuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of Question nodes.
type QuestionUpsertBulk struct {
	create *QuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionUpsertBulk) UpdateNewValues() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Question.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionUpsertBulk) Ignore() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionUpsertBulk) DoNothing() *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionUpsertBulk) Update(set func(*QuestionUpsert)) *QuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *QuestionUpsertBulk) SetQuestionID(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateQuestionID() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateQuestionID()
	})
}

// SetDifficultyBand sets the "difficulty_band" field.
func (u *QuestionUpsertBulk) SetDifficultyBand(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetDifficultyBand(v)
	})
}

// UpdateDifficultyBand sets the "difficulty_band" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateDifficultyBand() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateDifficultyBand()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *QuestionUpsertBulk) SetSubcategory(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateSubcategory() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateSubcategory()
	})
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (u *QuestionUpsertBulk) SetTypeOfQuestion(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTypeOfQuestion(v)
	})
}

// UpdateTypeOfQuestion sets the "type_of_question" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateTypeOfQuestion() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTypeOfQuestion()
	})
}

// SetCoreConcepts sets the "core_concepts" field.
func (u *QuestionUpsertBulk) SetCoreConcepts(v []string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetCoreConcepts(v)
	})
}

// UpdateCoreConcepts sets the "core_concepts" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateCoreConcepts() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateCoreConcepts()
	})
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (u *QuestionUpsertBulk) SetPyqFrequencyScore(v float64) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetPyqFrequencyScore(v)
	})
}

// AddPyqFrequencyScore adds v to the "pyq_frequency_score" field.
func (u *QuestionUpsertBulk) AddPyqFrequencyScore(v float64) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.AddPyqFrequencyScore(v)
	})
}

// UpdatePyqFrequencyScore sets the "pyq_frequency_score" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdatePyqFrequencyScore() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdatePyqFrequencyScore()
	})
}

// SetTopic sets the "topic" field.
func (u *QuestionUpsertBulk) SetTopic(v string) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateTopic() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateTopic()
	})
}

// SetActive sets the "active" field.
func (u *QuestionUpsertBulk) SetActive(v bool) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateActive() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateActive()
	})
}

// SetExcluded sets the "excluded" field.
func (u *QuestionUpsertBulk) SetExcluded(v bool) *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.SetExcluded(v)
	})
}

// UpdateExcluded sets the "excluded" field to the value that was provided on create.
func (u *QuestionUpsertBulk) UpdateExcluded() *QuestionUpsertBulk {
	return u.Update(func(s *QuestionUpsert) {
		s.UpdateExcluded()
	})
}

// Exec executes the query.
func (u *QuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
