// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/catprep/ent/attemptevent"
	"github.com/abhisek/catprep/ent/llmrequestevent"
	"github.com/abhisek/catprep/ent/planevent"
	"github.com/abhisek/catprep/ent/predicate"
	"github.com/abhisek/catprep/ent/question"
	"github.com/abhisek/catprep/ent/studyplan"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttemptEvent    = "AttemptEvent"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypePlanEvent       = "PlanEvent"
	TypeQuestion        = "Question"
	TypeStudyPlan       = "StudyPlan"
)

// AttemptEventMutation represents an operation that mutates the AttemptEvent nodes in the graph.
type AttemptEventMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	sequence               *int64
	addsequence            *int64
	timestamp              *time.Time
	user_id                *string
	question_id            *string
	correct                *bool
	skipped                *bool
	response_time_ms       *int
	addresponse_time_ms    *int
	sess_seq               *int64
	addsess_seq            *int64
	difficulty_band        *string
	subcategory            *string
	type_of_question       *string
	core_concepts          *[]string
	appendcore_concepts    []string
	pyq_frequency_score    *float64
	addpyq_frequency_score *float64
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*AttemptEvent, error)
	predicates             []predicate.AttemptEvent
}

var _ ent.Mutation = (*AttemptEventMutation)(nil)

// attempteventOption allows management of the mutation configuration using functional options.
type attempteventOption func(*AttemptEventMutation)

// newAttemptEventMutation creates new mutation for the AttemptEvent entity.
func newAttemptEventMutation(c config, op Op, opts ...attempteventOption) *AttemptEventMutation {
	m := &AttemptEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptEventID sets the ID field of the mutation.
func withAttemptEventID(id int) attempteventOption {
	return func(m *AttemptEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptEvent
		)
		m.oldValue = func(ctx context.Context) (*AttemptEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptEvent sets the old AttemptEvent of the mutation.
func withAttemptEvent(node *AttemptEvent) attempteventOption {
	return func(m *AttemptEventMutation) {
		m.oldValue = func(context.Context) (*AttemptEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AttemptEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AttemptEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AttemptEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AttemptEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AttemptEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AttemptEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AttemptEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AttemptEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *AttemptEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AttemptEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AttemptEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AttemptEventMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AttemptEventMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AttemptEventMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetCorrect sets the "correct" field.
func (m *AttemptEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AttemptEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AttemptEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetSkipped sets the "skipped" field.
func (m *AttemptEventMutation) SetSkipped(b bool) {
	m.skipped = &b
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *AttemptEventMutation) Skipped() (r bool, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSkipped(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *AttemptEventMutation) ResetSkipped() {
	m.skipped = nil
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *AttemptEventMutation) SetResponseTimeMs(i int) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *AttemptEventMutation) ResponseTimeMs() (r int, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldResponseTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *AttemptEventMutation) AddResponseTimeMs(i int) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *AttemptEventMutation) AddedResponseTimeMs() (r int, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *AttemptEventMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
}

// SetSessSeq sets the "sess_seq" field.
func (m *AttemptEventMutation) SetSessSeq(i int64) {
	m.sess_seq = &i
	m.addsess_seq = nil
}

// SessSeq returns the value of the "sess_seq" field in the mutation.
func (m *AttemptEventMutation) SessSeq() (r int64, exists bool) {
	v := m.sess_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSessSeq returns the old "sess_seq" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSessSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessSeq: %w", err)
	}
	return oldValue.SessSeq, nil
}

// AddSessSeq adds i to the "sess_seq" field.
func (m *AttemptEventMutation) AddSessSeq(i int64) {
	if m.addsess_seq != nil {
		*m.addsess_seq += i
	} else {
		m.addsess_seq = &i
	}
}

// AddedSessSeq returns the value that was added to the "sess_seq" field in this mutation.
func (m *AttemptEventMutation) AddedSessSeq() (r int64, exists bool) {
	v := m.addsess_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessSeq resets all changes to the "sess_seq" field.
func (m *AttemptEventMutation) ResetSessSeq() {
	m.sess_seq = nil
	m.addsess_seq = nil
}

// SetDifficultyBand sets the "difficulty_band" field.
func (m *AttemptEventMutation) SetDifficultyBand(s string) {
	m.difficulty_band = &s
}

// DifficultyBand returns the value of the "difficulty_band" field in the mutation.
func (m *AttemptEventMutation) DifficultyBand() (r string, exists bool) {
	v := m.difficulty_band
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyBand returns the old "difficulty_band" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldDifficultyBand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyBand: %w", err)
	}
	return oldValue.DifficultyBand, nil
}

// ResetDifficultyBand resets all changes to the "difficulty_band" field.
func (m *AttemptEventMutation) ResetDifficultyBand() {
	m.difficulty_band = nil
}

// SetSubcategory sets the "subcategory" field.
func (m *AttemptEventMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *AttemptEventMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSubcategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *AttemptEventMutation) ResetSubcategory() {
	m.subcategory = nil
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (m *AttemptEventMutation) SetTypeOfQuestion(s string) {
	m.type_of_question = &s
}

// TypeOfQuestion returns the value of the "type_of_question" field in the mutation.
func (m *AttemptEventMutation) TypeOfQuestion() (r string, exists bool) {
	v := m.type_of_question
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeOfQuestion returns the old "type_of_question" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTypeOfQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeOfQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeOfQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeOfQuestion: %w", err)
	}
	return oldValue.TypeOfQuestion, nil
}

// ResetTypeOfQuestion resets all changes to the "type_of_question" field.
func (m *AttemptEventMutation) ResetTypeOfQuestion() {
	m.type_of_question = nil
}

// SetCoreConcepts sets the "core_concepts" field.
func (m *AttemptEventMutation) SetCoreConcepts(s []string) {
	m.core_concepts = &s
	m.appendcore_concepts = nil
}

// CoreConcepts returns the value of the "core_concepts" field in the mutation.
func (m *AttemptEventMutation) CoreConcepts() (r []string, exists bool) {
	v := m.core_concepts
	if v == nil {
		return
	}
	return *v, true
}

// OldCoreConcepts returns the old "core_concepts" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldCoreConcepts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoreConcepts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoreConcepts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoreConcepts: %w", err)
	}
	return oldValue.CoreConcepts, nil
}

// AppendCoreConcepts adds s to the "core_concepts" field.
func (m *AttemptEventMutation) AppendCoreConcepts(s []string) {
	m.appendcore_concepts = append(m.appendcore_concepts, s...)
}

// AppendedCoreConcepts returns the list of values that were appended to the "core_concepts" field in this mutation.
func (m *AttemptEventMutation) AppendedCoreConcepts() ([]string, bool) {
	if len(m.appendcore_concepts) == 0 {
		return nil, false
	}
	return m.appendcore_concepts, true
}

// ResetCoreConcepts resets all changes to the "core_concepts" field.
func (m *AttemptEventMutation) ResetCoreConcepts() {
	m.core_concepts = nil
	m.appendcore_concepts = nil
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (m *AttemptEventMutation) SetPyqFrequencyScore(f float64) {
	m.pyq_frequency_score = &f
	m.addpyq_frequency_score = nil
}

// PyqFrequencyScore returns the value of the "pyq_frequency_score" field in the mutation.
func (m *AttemptEventMutation) PyqFrequencyScore() (r float64, exists bool) {
	v := m.pyq_frequency_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPyqFrequencyScore returns the old "pyq_frequency_score" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldPyqFrequencyScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPyqFrequencyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPyqFrequencyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPyqFrequencyScore: %w", err)
	}
	return oldValue.PyqFrequencyScore, nil
}

// AddPyqFrequencyScore adds f to the "pyq_frequency_score" field.
func (m *AttemptEventMutation) AddPyqFrequencyScore(f float64) {
	if m.addpyq_frequency_score != nil {
		*m.addpyq_frequency_score += f
	} else {
		m.addpyq_frequency_score = &f
	}
}

// AddedPyqFrequencyScore returns the value that was added to the "pyq_frequency_score" field in this mutation.
func (m *AttemptEventMutation) AddedPyqFrequencyScore() (r float64, exists bool) {
	v := m.addpyq_frequency_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPyqFrequencyScore resets all changes to the "pyq_frequency_score" field.
func (m *AttemptEventMutation) ResetPyqFrequencyScore() {
	m.pyq_frequency_score = nil
	m.addpyq_frequency_score = nil
}

// Where appends a list predicates to the AttemptEventMutation builder.
func (m *AttemptEventMutation) Where(ps ...predicate.AttemptEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptEvent).
func (m *AttemptEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.sequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, attemptevent.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, attemptevent.FieldUserID)
	}
	if m.question_id != nil {
		fields = append(fields, attemptevent.FieldQuestionID)
	}
	if m.correct != nil {
		fields = append(fields, attemptevent.FieldCorrect)
	}
	if m.skipped != nil {
		fields = append(fields, attemptevent.FieldSkipped)
	}
	if m.response_time_ms != nil {
		fields = append(fields, attemptevent.FieldResponseTimeMs)
	}
	if m.sess_seq != nil {
		fields = append(fields, attemptevent.FieldSessSeq)
	}
	if m.difficulty_band != nil {
		fields = append(fields, attemptevent.FieldDifficultyBand)
	}
	if m.subcategory != nil {
		fields = append(fields, attemptevent.FieldSubcategory)
	}
	if m.type_of_question != nil {
		fields = append(fields, attemptevent.FieldTypeOfQuestion)
	}
	if m.core_concepts != nil {
		fields = append(fields, attemptevent.FieldCoreConcepts)
	}
	if m.pyq_frequency_score != nil {
		fields = append(fields, attemptevent.FieldPyqFrequencyScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.Sequence()
	case attemptevent.FieldTimestamp:
		return m.Timestamp()
	case attemptevent.FieldUserID:
		return m.UserID()
	case attemptevent.FieldQuestionID:
		return m.QuestionID()
	case attemptevent.FieldCorrect:
		return m.Correct()
	case attemptevent.FieldSkipped:
		return m.Skipped()
	case attemptevent.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case attemptevent.FieldSessSeq:
		return m.SessSeq()
	case attemptevent.FieldDifficultyBand:
		return m.DifficultyBand()
	case attemptevent.FieldSubcategory:
		return m.Subcategory()
	case attemptevent.FieldTypeOfQuestion:
		return m.TypeOfQuestion()
	case attemptevent.FieldCoreConcepts:
		return m.CoreConcepts()
	case attemptevent.FieldPyqFrequencyScore:
		return m.PyqFrequencyScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptevent.FieldSequence:
		return m.OldSequence(ctx)
	case attemptevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case attemptevent.FieldUserID:
		return m.OldUserID(ctx)
	case attemptevent.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case attemptevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case attemptevent.FieldSkipped:
		return m.OldSkipped(ctx)
	case attemptevent.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case attemptevent.FieldSessSeq:
		return m.OldSessSeq(ctx)
	case attemptevent.FieldDifficultyBand:
		return m.OldDifficultyBand(ctx)
	case attemptevent.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case attemptevent.FieldTypeOfQuestion:
		return m.OldTypeOfQuestion(ctx)
	case attemptevent.FieldCoreConcepts:
		return m.OldCoreConcepts(ctx)
	case attemptevent.FieldPyqFrequencyScore:
		return m.OldPyqFrequencyScore(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case attemptevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case attemptevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case attemptevent.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case attemptevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case attemptevent.FieldSkipped:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	case attemptevent.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case attemptevent.FieldSessSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessSeq(v)
		return nil
	case attemptevent.FieldDifficultyBand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyBand(v)
		return nil
	case attemptevent.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case attemptevent.FieldTypeOfQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeOfQuestion(v)
		return nil
	case attemptevent.FieldCoreConcepts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoreConcepts(v)
		return nil
	case attemptevent.FieldPyqFrequencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPyqFrequencyScore(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.addresponse_time_ms != nil {
		fields = append(fields, attemptevent.FieldResponseTimeMs)
	}
	if m.addsess_seq != nil {
		fields = append(fields, attemptevent.FieldSessSeq)
	}
	if m.addpyq_frequency_score != nil {
		fields = append(fields, attemptevent.FieldPyqFrequencyScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.AddedSequence()
	case attemptevent.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	case attemptevent.FieldSessSeq:
		return m.AddedSessSeq()
	case attemptevent.FieldPyqFrequencyScore:
		return m.AddedPyqFrequencyScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case attemptevent.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	case attemptevent.FieldSessSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessSeq(v)
		return nil
	case attemptevent.FieldPyqFrequencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPyqFrequencyScore(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AttemptEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptEventMutation) ResetField(name string) error {
	switch name {
	case attemptevent.FieldSequence:
		m.ResetSequence()
		return nil
	case attemptevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case attemptevent.FieldUserID:
		m.ResetUserID()
		return nil
	case attemptevent.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case attemptevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case attemptevent.FieldSkipped:
		m.ResetSkipped()
		return nil
	case attemptevent.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case attemptevent.FieldSessSeq:
		m.ResetSessSeq()
		return nil
	case attemptevent.FieldDifficultyBand:
		m.ResetDifficultyBand()
		return nil
	case attemptevent.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case attemptevent.FieldTypeOfQuestion:
		m.ResetTypeOfQuestion()
		return nil
	case attemptevent.FieldCoreConcepts:
		m.ResetCoreConcepts()
		return nil
	case attemptevent.FieldPyqFrequencyScore:
		m.ResetPyqFrequencyScore()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// PlanEventMutation represents an operation that mutates the PlanEvent nodes in the graph.
type PlanEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	plan_id            *string
	user_id            *string
	question_ids       *[]string
	appendquestion_ids []string
	met                *[]string
	appendmet          []string
	relaxed            *string
	valid              *bool
	fallback           *bool
	reasoning          *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*PlanEvent, error)
	predicates         []predicate.PlanEvent
}

var _ ent.Mutation = (*PlanEventMutation)(nil)

// planeventOption allows management of the mutation configuration using functional options.
type planeventOption func(*PlanEventMutation)

// newPlanEventMutation creates new mutation for the PlanEvent entity.
func newPlanEventMutation(c config, op Op, opts ...planeventOption) *PlanEventMutation {
	m := &PlanEventMutation{
		config:        c,
		op:            op,
		typ:           TypePlanEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlanEventID sets the ID field of the mutation.
func withPlanEventID(id int) planeventOption {
	return func(m *PlanEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PlanEvent
		)
		m.oldValue = func(ctx context.Context) (*PlanEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlanEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlanEvent sets the old PlanEvent of the mutation.
func withPlanEvent(node *PlanEvent) planeventOption {
	return func(m *PlanEventMutation) {
		m.oldValue = func(context.Context) (*PlanEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlanEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlanEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlanEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlanEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlanEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *PlanEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PlanEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PlanEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PlanEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PlanEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PlanEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PlanEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PlanEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetPlanID sets the "plan_id" field.
func (m *PlanEventMutation) SetPlanID(s string) {
	m.plan_id = &s
}

// PlanID returns the value of the "plan_id" field in the mutation.
func (m *PlanEventMutation) PlanID() (r string, exists bool) {
	v := m.plan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanID returns the old "plan_id" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldPlanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanID: %w", err)
	}
	return oldValue.PlanID, nil
}

// ResetPlanID resets all changes to the "plan_id" field.
func (m *PlanEventMutation) ResetPlanID() {
	m.plan_id = nil
}

// SetUserID sets the "user_id" field.
func (m *PlanEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PlanEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PlanEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuestionIds sets the "question_ids" field.
func (m *PlanEventMutation) SetQuestionIds(s []string) {
	m.question_ids = &s
	m.appendquestion_ids = nil
}

// QuestionIds returns the value of the "question_ids" field in the mutation.
func (m *PlanEventMutation) QuestionIds() (r []string, exists bool) {
	v := m.question_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionIds returns the old "question_ids" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldQuestionIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionIds: %w", err)
	}
	return oldValue.QuestionIds, nil
}

// AppendQuestionIds adds s to the "question_ids" field.
func (m *PlanEventMutation) AppendQuestionIds(s []string) {
	m.appendquestion_ids = append(m.appendquestion_ids, s...)
}

// AppendedQuestionIds returns the list of values that were appended to the "question_ids" field in this mutation.
func (m *PlanEventMutation) AppendedQuestionIds() ([]string, bool) {
	if len(m.appendquestion_ids) == 0 {
		return nil, false
	}
	return m.appendquestion_ids, true
}

// ResetQuestionIds resets all changes to the "question_ids" field.
func (m *PlanEventMutation) ResetQuestionIds() {
	m.question_ids = nil
	m.appendquestion_ids = nil
}

// SetMet sets the "met" field.
func (m *PlanEventMutation) SetMet(s []string) {
	m.met = &s
	m.appendmet = nil
}

// Met returns the value of the "met" field in the mutation.
func (m *PlanEventMutation) Met() (r []string, exists bool) {
	v := m.met
	if v == nil {
		return
	}
	return *v, true
}

// OldMet returns the old "met" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldMet(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMet: %w", err)
	}
	return oldValue.Met, nil
}

// AppendMet adds s to the "met" field.
func (m *PlanEventMutation) AppendMet(s []string) {
	m.appendmet = append(m.appendmet, s...)
}

// AppendedMet returns the list of values that were appended to the "met" field in this mutation.
func (m *PlanEventMutation) AppendedMet() ([]string, bool) {
	if len(m.appendmet) == 0 {
		return nil, false
	}
	return m.appendmet, true
}

// ClearMet clears the value of the "met" field.
func (m *PlanEventMutation) ClearMet() {
	m.met = nil
	m.appendmet = nil
	m.clearedFields[planevent.FieldMet] = struct{}{}
}

// MetCleared returns if the "met" field was cleared in this mutation.
func (m *PlanEventMutation) MetCleared() bool {
	_, ok := m.clearedFields[planevent.FieldMet]
	return ok
}

// ResetMet resets all changes to the "met" field.
func (m *PlanEventMutation) ResetMet() {
	m.met = nil
	m.appendmet = nil
	delete(m.clearedFields, planevent.FieldMet)
}

// SetRelaxed sets the "relaxed" field.
func (m *PlanEventMutation) SetRelaxed(s string) {
	m.relaxed = &s
}

// Relaxed returns the value of the "relaxed" field in the mutation.
func (m *PlanEventMutation) Relaxed() (r string, exists bool) {
	v := m.relaxed
	if v == nil {
		return
	}
	return *v, true
}

// OldRelaxed returns the old "relaxed" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldRelaxed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelaxed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelaxed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelaxed: %w", err)
	}
	return oldValue.Relaxed, nil
}

// ResetRelaxed resets all changes to the "relaxed" field.
func (m *PlanEventMutation) ResetRelaxed() {
	m.relaxed = nil
}

// SetValid sets the "valid" field.
func (m *PlanEventMutation) SetValid(b bool) {
	m.valid = &b
}

// Valid returns the value of the "valid" field in the mutation.
func (m *PlanEventMutation) Valid() (r bool, exists bool) {
	v := m.valid
	if v == nil {
		return
	}
	return *v, true
}

// OldValid returns the old "valid" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldValid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValid: %w", err)
	}
	return oldValue.Valid, nil
}

// ResetValid resets all changes to the "valid" field.
func (m *PlanEventMutation) ResetValid() {
	m.valid = nil
}

// SetFallback sets the "fallback" field.
func (m *PlanEventMutation) SetFallback(b bool) {
	m.fallback = &b
}

// Fallback returns the value of the "fallback" field in the mutation.
func (m *PlanEventMutation) Fallback() (r bool, exists bool) {
	v := m.fallback
	if v == nil {
		return
	}
	return *v, true
}

// OldFallback returns the old "fallback" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldFallback(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFallback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFallback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFallback: %w", err)
	}
	return oldValue.Fallback, nil
}

// ResetFallback resets all changes to the "fallback" field.
func (m *PlanEventMutation) ResetFallback() {
	m.fallback = nil
}

// SetReasoning sets the "reasoning" field.
func (m *PlanEventMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *PlanEventMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *PlanEventMutation) ResetReasoning() {
	m.reasoning = nil
}

// Where appends a list predicates to the PlanEventMutation builder.
func (m *PlanEventMutation) Where(ps ...predicate.PlanEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlanEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlanEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlanEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlanEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlanEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlanEvent).
func (m *PlanEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlanEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, planevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, planevent.FieldTimestamp)
	}
	if m.plan_id != nil {
		fields = append(fields, planevent.FieldPlanID)
	}
	if m.user_id != nil {
		fields = append(fields, planevent.FieldUserID)
	}
	if m.question_ids != nil {
		fields = append(fields, planevent.FieldQuestionIds)
	}
	if m.met != nil {
		fields = append(fields, planevent.FieldMet)
	}
	if m.relaxed != nil {
		fields = append(fields, planevent.FieldRelaxed)
	}
	if m.valid != nil {
		fields = append(fields, planevent.FieldValid)
	}
	if m.fallback != nil {
		fields = append(fields, planevent.FieldFallback)
	}
	if m.reasoning != nil {
		fields = append(fields, planevent.FieldReasoning)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlanEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case planevent.FieldSequence:
		return m.Sequence()
	case planevent.FieldTimestamp:
		return m.Timestamp()
	case planevent.FieldPlanID:
		return m.PlanID()
	case planevent.FieldUserID:
		return m.UserID()
	case planevent.FieldQuestionIds:
		return m.QuestionIds()
	case planevent.FieldMet:
		return m.Met()
	case planevent.FieldRelaxed:
		return m.Relaxed()
	case planevent.FieldValid:
		return m.Valid()
	case planevent.FieldFallback:
		return m.Fallback()
	case planevent.FieldReasoning:
		return m.Reasoning()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlanEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case planevent.FieldSequence:
		return m.OldSequence(ctx)
	case planevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case planevent.FieldPlanID:
		return m.OldPlanID(ctx)
	case planevent.FieldUserID:
		return m.OldUserID(ctx)
	case planevent.FieldQuestionIds:
		return m.OldQuestionIds(ctx)
	case planevent.FieldMet:
		return m.OldMet(ctx)
	case planevent.FieldRelaxed:
		return m.OldRelaxed(ctx)
	case planevent.FieldValid:
		return m.OldValid(ctx)
	case planevent.FieldFallback:
		return m.OldFallback(ctx)
	case planevent.FieldReasoning:
		return m.OldReasoning(ctx)
	}
	return nil, fmt.Errorf("unknown PlanEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case planevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case planevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case planevent.FieldPlanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanID(v)
		return nil
	case planevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case planevent.FieldQuestionIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionIds(v)
		return nil
	case planevent.FieldMet:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMet(v)
		return nil
	case planevent.FieldRelaxed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelaxed(v)
		return nil
	case planevent.FieldValid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValid(v)
		return nil
	case planevent.FieldFallback:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFallback(v)
		return nil
	case planevent.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	}
	return fmt.Errorf("unknown PlanEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlanEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, planevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlanEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case planevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case planevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown PlanEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlanEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(planevent.FieldMet) {
		fields = append(fields, planevent.FieldMet)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlanEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlanEventMutation) ClearField(name string) error {
	switch name {
	case planevent.FieldMet:
		m.ClearMet()
		return nil
	}
	return fmt.Errorf("unknown PlanEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlanEventMutation) ResetField(name string) error {
	switch name {
	case planevent.FieldSequence:
		m.ResetSequence()
		return nil
	case planevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case planevent.FieldPlanID:
		m.ResetPlanID()
		return nil
	case planevent.FieldUserID:
		m.ResetUserID()
		return nil
	case planevent.FieldQuestionIds:
		m.ResetQuestionIds()
		return nil
	case planevent.FieldMet:
		m.ResetMet()
		return nil
	case planevent.FieldRelaxed:
		m.ResetRelaxed()
		return nil
	case planevent.FieldValid:
		m.ResetValid()
		return nil
	case planevent.FieldFallback:
		m.ResetFallback()
		return nil
	case planevent.FieldReasoning:
		m.ResetReasoning()
		return nil
	}
	return fmt.Errorf("unknown PlanEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlanEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlanEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlanEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlanEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlanEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlanEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlanEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PlanEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlanEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PlanEvent edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	question_id            *string
	difficulty_band        *string
	subcategory            *string
	type_of_question       *string
	core_concepts          *[]string
	appendcore_concepts    []string
	pyq_frequency_score    *float64
	addpyq_frequency_score *float64
	topic                  *string
	active                 *bool
	excluded               *bool
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Question, error)
	predicates             []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id int) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestionID sets the "question_id" field.
func (m *QuestionMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *QuestionMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *QuestionMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetDifficultyBand sets the "difficulty_band" field.
func (m *QuestionMutation) SetDifficultyBand(s string) {
	m.difficulty_band = &s
}

// DifficultyBand returns the value of the "difficulty_band" field in the mutation.
func (m *QuestionMutation) DifficultyBand() (r string, exists bool) {
	v := m.difficulty_band
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyBand returns the old "difficulty_band" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficultyBand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyBand: %w", err)
	}
	return oldValue.DifficultyBand, nil
}

// ResetDifficultyBand resets all changes to the "difficulty_band" field.
func (m *QuestionMutation) ResetDifficultyBand() {
	m.difficulty_band = nil
}

// SetSubcategory sets the "subcategory" field.
func (m *QuestionMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *QuestionMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSubcategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *QuestionMutation) ResetSubcategory() {
	m.subcategory = nil
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (m *QuestionMutation) SetTypeOfQuestion(s string) {
	m.type_of_question = &s
}

// TypeOfQuestion returns the value of the "type_of_question" field in the mutation.
func (m *QuestionMutation) TypeOfQuestion() (r string, exists bool) {
	v := m.type_of_question
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeOfQuestion returns the old "type_of_question" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTypeOfQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeOfQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeOfQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeOfQuestion: %w", err)
	}
	return oldValue.TypeOfQuestion, nil
}

// ResetTypeOfQuestion resets all changes to the "type_of_question" field.
func (m *QuestionMutation) ResetTypeOfQuestion() {
	m.type_of_question = nil
}

// SetCoreConcepts sets the "core_concepts" field.
func (m *QuestionMutation) SetCoreConcepts(s []string) {
	m.core_concepts = &s
	m.appendcore_concepts = nil
}

// CoreConcepts returns the value of the "core_concepts" field in the mutation.
func (m *QuestionMutation) CoreConcepts() (r []string, exists bool) {
	v := m.core_concepts
	if v == nil {
		return
	}
	return *v, true
}

// OldCoreConcepts returns the old "core_concepts" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCoreConcepts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoreConcepts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoreConcepts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoreConcepts: %w", err)
	}
	return oldValue.CoreConcepts, nil
}

// AppendCoreConcepts adds s to the "core_concepts" field.
func (m *QuestionMutation) AppendCoreConcepts(s []string) {
	m.appendcore_concepts = append(m.appendcore_concepts, s...)
}

// AppendedCoreConcepts returns the list of values that were appended to the "core_concepts" field in this mutation.
func (m *QuestionMutation) AppendedCoreConcepts() ([]string, bool) {
	if len(m.appendcore_concepts) == 0 {
		return nil, false
	}
	return m.appendcore_concepts, true
}

// ResetCoreConcepts resets all changes to the "core_concepts" field.
func (m *QuestionMutation) ResetCoreConcepts() {
	m.core_concepts = nil
	m.appendcore_concepts = nil
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (m *QuestionMutation) SetPyqFrequencyScore(f float64) {
	m.pyq_frequency_score = &f
	m.addpyq_frequency_score = nil
}

// PyqFrequencyScore returns the value of the "pyq_frequency_score" field in the mutation.
func (m *QuestionMutation) PyqFrequencyScore() (r float64, exists bool) {
	v := m.pyq_frequency_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPyqFrequencyScore returns the old "pyq_frequency_score" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPyqFrequencyScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPyqFrequencyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPyqFrequencyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPyqFrequencyScore: %w", err)
	}
	return oldValue.PyqFrequencyScore, nil
}

// AddPyqFrequencyScore adds f to the "pyq_frequency_score" field.
func (m *QuestionMutation) AddPyqFrequencyScore(f float64) {
	if m.addpyq_frequency_score != nil {
		*m.addpyq_frequency_score += f
	} else {
		m.addpyq_frequency_score = &f
	}
}

// AddedPyqFrequencyScore returns the value that was added to the "pyq_frequency_score" field in this mutation.
func (m *QuestionMutation) AddedPyqFrequencyScore() (r float64, exists bool) {
	v := m.addpyq_frequency_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPyqFrequencyScore resets all changes to the "pyq_frequency_score" field.
func (m *QuestionMutation) ResetPyqFrequencyScore() {
	m.pyq_frequency_score = nil
	m.addpyq_frequency_score = nil
}

// SetTopic sets the "topic" field.
func (m *QuestionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *QuestionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *QuestionMutation) ResetTopic() {
	m.topic = nil
}

// SetActive sets the "active" field.
func (m *QuestionMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *QuestionMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *QuestionMutation) ResetActive() {
	m.active = nil
}

// SetExcluded sets the "excluded" field.
func (m *QuestionMutation) SetExcluded(b bool) {
	m.excluded = &b
}

// Excluded returns the value of the "excluded" field in the mutation.
func (m *QuestionMutation) Excluded() (r bool, exists bool) {
	v := m.excluded
	if v == nil {
		return
	}
	return *v, true
}

// OldExcluded returns the old "excluded" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldExcluded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExcluded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExcluded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExcluded: %w", err)
	}
	return oldValue.Excluded, nil
}

// ResetExcluded resets all changes to the "excluded" field.
func (m *QuestionMutation) ResetExcluded() {
	m.excluded = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.question_id != nil {
		fields = append(fields, question.FieldQuestionID)
	}
	if m.difficulty_band != nil {
		fields = append(fields, question.FieldDifficultyBand)
	}
	if m.subcategory != nil {
		fields = append(fields, question.FieldSubcategory)
	}
	if m.type_of_question != nil {
		fields = append(fields, question.FieldTypeOfQuestion)
	}
	if m.core_concepts != nil {
		fields = append(fields, question.FieldCoreConcepts)
	}
	if m.pyq_frequency_score != nil {
		fields = append(fields, question.FieldPyqFrequencyScore)
	}
	if m.topic != nil {
		fields = append(fields, question.FieldTopic)
	}
	if m.active != nil {
		fields = append(fields, question.FieldActive)
	}
	if m.excluded != nil {
		fields = append(fields, question.FieldExcluded)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldQuestionID:
		return m.QuestionID()
	case question.FieldDifficultyBand:
		return m.DifficultyBand()
	case question.FieldSubcategory:
		return m.Subcategory()
	case question.FieldTypeOfQuestion:
		return m.TypeOfQuestion()
	case question.FieldCoreConcepts:
		return m.CoreConcepts()
	case question.FieldPyqFrequencyScore:
		return m.PyqFrequencyScore()
	case question.FieldTopic:
		return m.Topic()
	case question.FieldActive:
		return m.Active()
	case question.FieldExcluded:
		return m.Excluded()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case question.FieldDifficultyBand:
		return m.OldDifficultyBand(ctx)
	case question.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case question.FieldTypeOfQuestion:
		return m.OldTypeOfQuestion(ctx)
	case question.FieldCoreConcepts:
		return m.OldCoreConcepts(ctx)
	case question.FieldPyqFrequencyScore:
		return m.OldPyqFrequencyScore(ctx)
	case question.FieldTopic:
		return m.OldTopic(ctx)
	case question.FieldActive:
		return m.OldActive(ctx)
	case question.FieldExcluded:
		return m.OldExcluded(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case question.FieldDifficultyBand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyBand(v)
		return nil
	case question.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case question.FieldTypeOfQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeOfQuestion(v)
		return nil
	case question.FieldCoreConcepts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoreConcepts(v)
		return nil
	case question.FieldPyqFrequencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPyqFrequencyScore(v)
		return nil
	case question.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case question.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case question.FieldExcluded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExcluded(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.addpyq_frequency_score != nil {
		fields = append(fields, question.FieldPyqFrequencyScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldPyqFrequencyScore:
		return m.AddedPyqFrequencyScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldPyqFrequencyScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPyqFrequencyScore(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case question.FieldDifficultyBand:
		m.ResetDifficultyBand()
		return nil
	case question.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case question.FieldTypeOfQuestion:
		m.ResetTypeOfQuestion()
		return nil
	case question.FieldCoreConcepts:
		m.ResetCoreConcepts()
		return nil
	case question.FieldPyqFrequencyScore:
		m.ResetPyqFrequencyScore()
		return nil
	case question.FieldTopic:
		m.ResetTopic()
		return nil
	case question.FieldActive:
		m.ResetActive()
		return nil
	case question.FieldExcluded:
		m.ResetExcluded()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Question edge %s", name)
}

// StudyPlanMutation represents an operation that mutates the StudyPlan nodes in the graph.
type StudyPlanMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	track         *string
	start_date    *time.Time
	days          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StudyPlan, error)
	predicates    []predicate.StudyPlan
}

var _ ent.Mutation = (*StudyPlanMutation)(nil)

// studyplanOption allows management of the mutation configuration using functional options.
type studyplanOption func(*StudyPlanMutation)

// newStudyPlanMutation creates new mutation for the StudyPlan entity.
func newStudyPlanMutation(c config, op Op, opts ...studyplanOption) *StudyPlanMutation {
	m := &StudyPlanMutation{
		config:        c,
		op:            op,
		typ:           TypeStudyPlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudyPlanID sets the ID field of the mutation.
func withStudyPlanID(id int) studyplanOption {
	return func(m *StudyPlanMutation) {
		var (
			err   error
			once  sync.Once
			value *StudyPlan
		)
		m.oldValue = func(ctx context.Context) (*StudyPlan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudyPlan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudyPlan sets the old StudyPlan of the mutation.
func withStudyPlan(node *StudyPlan) studyplanOption {
	return func(m *StudyPlanMutation) {
		m.oldValue = func(context.Context) (*StudyPlan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudyPlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudyPlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudyPlanMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudyPlanMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudyPlan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *StudyPlanMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *StudyPlanMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *StudyPlanMutation) ResetUserID() {
	m.user_id = nil
}

// SetTrack sets the "track" field.
func (m *StudyPlanMutation) SetTrack(s string) {
	m.track = &s
}

// Track returns the value of the "track" field in the mutation.
func (m *StudyPlanMutation) Track() (r string, exists bool) {
	v := m.track
	if v == nil {
		return
	}
	return *v, true
}

// OldTrack returns the old "track" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldTrack(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrack: %w", err)
	}
	return oldValue.Track, nil
}

// ResetTrack resets all changes to the "track" field.
func (m *StudyPlanMutation) ResetTrack() {
	m.track = nil
}

// SetStartDate sets the "start_date" field.
func (m *StudyPlanMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *StudyPlanMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldStartDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *StudyPlanMutation) ResetStartDate() {
	m.start_date = nil
}

// SetDays sets the "days" field.
func (m *StudyPlanMutation) SetDays(s string) {
	m.days = &s
}

// Days returns the value of the "days" field in the mutation.
func (m *StudyPlanMutation) Days() (r string, exists bool) {
	v := m.days
	if v == nil {
		return
	}
	return *v, true
}

// OldDays returns the old "days" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldDays(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDays: %w", err)
	}
	return oldValue.Days, nil
}

// ResetDays resets all changes to the "days" field.
func (m *StudyPlanMutation) ResetDays() {
	m.days = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StudyPlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudyPlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StudyPlan entity.
// If the StudyPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyPlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudyPlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StudyPlanMutation builder.
func (m *StudyPlanMutation) Where(ps ...predicate.StudyPlan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudyPlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudyPlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudyPlan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudyPlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudyPlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudyPlan).
func (m *StudyPlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudyPlanMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, studyplan.FieldUserID)
	}
	if m.track != nil {
		fields = append(fields, studyplan.FieldTrack)
	}
	if m.start_date != nil {
		fields = append(fields, studyplan.FieldStartDate)
	}
	if m.days != nil {
		fields = append(fields, studyplan.FieldDays)
	}
	if m.created_at != nil {
		fields = append(fields, studyplan.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudyPlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studyplan.FieldUserID:
		return m.UserID()
	case studyplan.FieldTrack:
		return m.Track()
	case studyplan.FieldStartDate:
		return m.StartDate()
	case studyplan.FieldDays:
		return m.Days()
	case studyplan.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudyPlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studyplan.FieldUserID:
		return m.OldUserID(ctx)
	case studyplan.FieldTrack:
		return m.OldTrack(ctx)
	case studyplan.FieldStartDate:
		return m.OldStartDate(ctx)
	case studyplan.FieldDays:
		return m.OldDays(ctx)
	case studyplan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudyPlan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyPlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studyplan.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case studyplan.FieldTrack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrack(v)
		return nil
	case studyplan.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case studyplan.FieldDays:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDays(v)
		return nil
	case studyplan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudyPlan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudyPlanMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudyPlanMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyPlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StudyPlan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudyPlanMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudyPlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudyPlanMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StudyPlan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudyPlanMutation) ResetField(name string) error {
	switch name {
	case studyplan.FieldUserID:
		m.ResetUserID()
		return nil
	case studyplan.FieldTrack:
		m.ResetTrack()
		return nil
	case studyplan.FieldStartDate:
		m.ResetStartDate()
		return nil
	case studyplan.FieldDays:
		m.ResetDays()
		return nil
	case studyplan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StudyPlan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudyPlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudyPlanMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudyPlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudyPlanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudyPlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudyPlanMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudyPlanMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudyPlan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudyPlanMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudyPlan edge %s", name)
}
