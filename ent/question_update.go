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
	"github.com/abhisek/catprep/ent/predicate"
	"github.com/abhisek/catprep/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionUpdate) SetQuestionID(v string) *QuestionUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQuestionID(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetDifficultyBand sets the "difficulty_band" field.
func (_u *QuestionUpdate) SetDifficultyBand(v string) *QuestionUpdate {
	_u.mutation.SetDifficultyBand(v)
	return _u
}

// SetNillableDifficultyBand sets the "difficulty_band" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDifficultyBand(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetDifficultyBand(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *QuestionUpdate) SetSubcategory(v string) *QuestionUpdate {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSubcategory(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_u *QuestionUpdate) SetTypeOfQuestion(v string) *QuestionUpdate {
	_u.mutation.SetTypeOfQuestion(v)
	return _u
}

// SetNillableTypeOfQuestion sets the "type_of_question" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTypeOfQuestion(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetTypeOfQuestion(*v)
	}
	return _u
}

// SetCoreConcepts sets the "core_concepts" field.
func (_u *QuestionUpdate) SetCoreConcepts(v []string) *QuestionUpdate {
	_u.mutation.SetCoreConcepts(v)
	return _u
}

// AppendCoreConcepts appends value to the "core_concepts" field.
func (_u *QuestionUpdate) AppendCoreConcepts(v []string) *QuestionUpdate {
	_u.mutation.AppendCoreConcepts(v)
	return _u
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (_u *QuestionUpdate) SetPyqFrequencyScore(v float64) *QuestionUpdate {
	_u.mutation.ResetPyqFrequencyScore()
	_u.mutation.SetPyqFrequencyScore(v)
	return _u
}

// SetNillablePyqFrequencyScore sets the "pyq_frequency_score" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillablePyqFrequencyScore(v *float64) *QuestionUpdate {
	if v != nil {
		_u.SetPyqFrequencyScore(*v)
	}
	return _u
}

// AddPyqFrequencyScore adds value to the "pyq_frequency_score" field.
func (_u *QuestionUpdate) AddPyqFrequencyScore(v float64) *QuestionUpdate {
	_u.mutation.AddPyqFrequencyScore(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionUpdate) SetTopic(v string) *QuestionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTopic(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *QuestionUpdate) SetActive(v bool) *QuestionUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableActive(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetExcluded sets the "excluded" field.
func (_u *QuestionUpdate) SetExcluded(v bool) *QuestionUpdate {
	_u.mutation.SetExcluded(v)
	return _u
}

// SetNillableExcluded sets the "excluded" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableExcluded(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetExcluded(*v)
	}
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := question.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Question.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyBand(); ok {
		if err := question.DifficultyBandValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_band", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty_band": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subcategory(); ok {
		if err := question.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "Question.subcategory": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TypeOfQuestion(); ok {
		if err := question.TypeOfQuestionValidator(v); err != nil {
			return &ValidationError{Name: "type_of_question", err: fmt.Errorf(`ent: validator failed for field "Question.type_of_question": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(question.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyBand(); ok {
		_spec.SetField(question.FieldDifficultyBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(question.FieldSubcategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypeOfQuestion(); ok {
		_spec.SetField(question.FieldTypeOfQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoreConcepts(); ok {
		_spec.SetField(question.FieldCoreConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCoreConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldCoreConcepts, value)
		})
	}
	if value, ok := _u.mutation.PyqFrequencyScore(); ok {
		_spec.SetField(question.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPyqFrequencyScore(); ok {
		_spec.AddField(question.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(question.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Excluded(); ok {
		_spec.SetField(question.FieldExcluded, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionUpdateOne) SetQuestionID(v string) *QuestionUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQuestionID(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetDifficultyBand sets the "difficulty_band" field.
func (_u *QuestionUpdateOne) SetDifficultyBand(v string) *QuestionUpdateOne {
	_u.mutation.SetDifficultyBand(v)
	return _u
}

// SetNillableDifficultyBand sets the "difficulty_band" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDifficultyBand(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetDifficultyBand(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *QuestionUpdateOne) SetSubcategory(v string) *QuestionUpdateOne {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSubcategory(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_u *QuestionUpdateOne) SetTypeOfQuestion(v string) *QuestionUpdateOne {
	_u.mutation.SetTypeOfQuestion(v)
	return _u
}

// SetNillableTypeOfQuestion sets the "type_of_question" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTypeOfQuestion(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetTypeOfQuestion(*v)
	}
	return _u
}

// SetCoreConcepts sets the "core_concepts" field.
func (_u *QuestionUpdateOne) SetCoreConcepts(v []string) *QuestionUpdateOne {
	_u.mutation.SetCoreConcepts(v)
	return _u
}

// AppendCoreConcepts appends value to the "core_concepts" field.
func (_u *QuestionUpdateOne) AppendCoreConcepts(v []string) *QuestionUpdateOne {
	_u.mutation.AppendCoreConcepts(v)
	return _u
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (_u *QuestionUpdateOne) SetPyqFrequencyScore(v float64) *QuestionUpdateOne {
	_u.mutation.ResetPyqFrequencyScore()
	_u.mutation.SetPyqFrequencyScore(v)
	return _u
}

// SetNillablePyqFrequencyScore sets the "pyq_frequency_score" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillablePyqFrequencyScore(v *float64) *QuestionUpdateOne {
	if v != nil {
		_u.SetPyqFrequencyScore(*v)
	}
	return _u
}

// AddPyqFrequencyScore adds value to the "pyq_frequency_score" field.
func (_u *QuestionUpdateOne) AddPyqFrequencyScore(v float64) *QuestionUpdateOne {
	_u.mutation.AddPyqFrequencyScore(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionUpdateOne) SetTopic(v string) *QuestionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTopic(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *QuestionUpdateOne) SetActive(v bool) *QuestionUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableActive(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetExcluded sets the "excluded" field.
func (_u *QuestionUpdateOne) SetExcluded(v bool) *QuestionUpdateOne {
	_u.mutation.SetExcluded(v)
	return _u
}

// SetNillableExcluded sets the "excluded" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableExcluded(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetExcluded(*v)
	}
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := question.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Question.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyBand(); ok {
		if err := question.DifficultyBandValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_band", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty_band": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subcategory(); ok {
		if err := question.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "Question.subcategory": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TypeOfQuestion(); ok {
		if err := question.TypeOfQuestionValidator(v); err != nil {
			return &ValidationError{Name: "type_of_question", err: fmt.Errorf(`ent: validator failed for field "Question.type_of_question": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(question.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyBand(); ok {
		_spec.SetField(question.FieldDifficultyBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(question.FieldSubcategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypeOfQuestion(); ok {
		_spec.SetField(question.FieldTypeOfQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoreConcepts(); ok {
		_spec.SetField(question.FieldCoreConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCoreConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldCoreConcepts, value)
		})
	}
	if value, ok := _u.mutation.PyqFrequencyScore(); ok {
		_spec.SetField(question.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPyqFrequencyScore(); ok {
		_spec.AddField(question.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(question.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Excluded(); ok {
		_spec.SetField(question.FieldExcluded, field.TypeBool, value)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
