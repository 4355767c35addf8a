// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/catprep/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/catprep/ent/attemptevent"
	"github.com/abhisek/catprep/ent/llmrequestevent"
	"github.com/abhisek/catprep/ent/planevent"
	"github.com/abhisek/catprep/ent/question"
	"github.com/abhisek/catprep/ent/studyplan"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AttemptEvent is the client for interacting with the AttemptEvent builders.
	AttemptEvent *AttemptEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// PlanEvent is the client for interacting with the PlanEvent builders.
	PlanEvent *PlanEventClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// StudyPlan is the client for interacting with the StudyPlan builders.
	StudyPlan *StudyPlanClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AttemptEvent = NewAttemptEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.PlanEvent = NewPlanEventClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.StudyPlan = NewStudyPlanClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AttemptEvent:    NewAttemptEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PlanEvent:       NewPlanEventClient(cfg),
		Question:        NewQuestionClient(cfg),
		StudyPlan:       NewStudyPlanClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AttemptEvent:    NewAttemptEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PlanEvent:       NewPlanEventClient(cfg),
		Question:        NewQuestionClient(cfg),
		StudyPlan:       NewStudyPlanClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AttemptEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AttemptEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.PlanEvent.Use(hooks...)
	c.Question.Use(hooks...)
	c.StudyPlan.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AttemptEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.PlanEvent.Intercept(interceptors...)
	c.Question.Intercept(interceptors...)
	c.StudyPlan.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptEventMutation:
		return c.AttemptEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PlanEventMutation:
		return c.PlanEvent.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *StudyPlanMutation:
		return c.StudyPlan.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptEventClient is a client for the AttemptEvent schema.
type AttemptEventClient struct {
	config
}

// NewAttemptEventClient returns a client for the AttemptEvent from the given config.
func NewAttemptEventClient(c config) *AttemptEventClient {
	return &AttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptevent.Hooks(f(g(h())))`.
func (c *AttemptEventClient) Use(hooks ...Hook) {
	c.hooks.AttemptEvent = append(c.hooks.AttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptevent.Intercept(f(g(h())))`.
func (c *AttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptEvent = append(c.inters.AttemptEvent, interceptors...)
}

// Create returns a builder for creating a AttemptEvent entity.
func (c *AttemptEventClient) Create() *AttemptEventCreate {
	mutation := newAttemptEventMutation(c.config, OpCreate)
	return &AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptEvent entities.
func (c *AttemptEventClient) CreateBulk(builders ...*AttemptEventCreate) *AttemptEventCreateBulk {
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptEventClient) MapCreateBulk(slice any, setFunc func(*AttemptEventCreate, int)) *AttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptEventCreateBulk{err: fmt.Errorf("calling to AttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptEvent.
func (c *AttemptEventClient) Update() *AttemptEventUpdate {
	mutation := newAttemptEventMutation(c.config, OpUpdate)
	return &AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptEventClient) UpdateOne(_m *AttemptEvent) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEvent(_m))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptEventClient) UpdateOneID(id int) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEventID(id))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptEvent.
func (c *AttemptEventClient) Delete() *AttemptEventDelete {
	mutation := newAttemptEventMutation(c.config, OpDelete)
	return &AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptEventClient) DeleteOne(_m *AttemptEvent) *AttemptEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptEventClient) DeleteOneID(id int) *AttemptEventDeleteOne {
	builder := c.Delete().Where(attemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptEventDeleteOne{builder}
}

// Query returns a query builder for AttemptEvent.
func (c *AttemptEventClient) Query() *AttemptEventQuery {
	return &AttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptEvent entity by its id.
func (c *AttemptEventClient) Get(ctx context.Context, id int) (*AttemptEvent, error) {
	return c.Query().Where(attemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptEventClient) GetX(ctx context.Context, id int) *AttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptEventClient) Hooks() []Hook {
	return c.hooks.AttemptEvent
}

// Interceptors returns the client interceptors.
func (c *AttemptEventClient) Interceptors() []Interceptor {
	return c.inters.AttemptEvent
}

func (c *AttemptEventClient) mutate(ctx context.Context, m *AttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// PlanEventClient is a client for the PlanEvent schema.
type PlanEventClient struct {
	config
}

// NewPlanEventClient returns a client for the PlanEvent from the given config.
func NewPlanEventClient(c config) *PlanEventClient {
	return &PlanEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `planevent.Hooks(f(g(h())))`.
func (c *PlanEventClient) Use(hooks ...Hook) {
	c.hooks.PlanEvent = append(c.hooks.PlanEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `planevent.Intercept(f(g(h())))`.
func (c *PlanEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlanEvent = append(c.inters.PlanEvent, interceptors...)
}

// Create returns a builder for creating a PlanEvent entity.
func (c *PlanEventClient) Create() *PlanEventCreate {
	mutation := newPlanEventMutation(c.config, OpCreate)
	return &PlanEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlanEvent entities.
func (c *PlanEventClient) CreateBulk(builders ...*PlanEventCreate) *PlanEventCreateBulk {
	return &PlanEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlanEventClient) MapCreateBulk(slice any, setFunc func(*PlanEventCreate, int)) *PlanEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlanEventCreateBulk{err: fmt.Errorf("calling to PlanEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlanEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlanEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlanEvent.
func (c *PlanEventClient) Update() *PlanEventUpdate {
	mutation := newPlanEventMutation(c.config, OpUpdate)
	return &PlanEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlanEventClient) UpdateOne(_m *PlanEvent) *PlanEventUpdateOne {
	mutation := newPlanEventMutation(c.config, OpUpdateOne, withPlanEvent(_m))
	return &PlanEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlanEventClient) UpdateOneID(id int) *PlanEventUpdateOne {
	mutation := newPlanEventMutation(c.config, OpUpdateOne, withPlanEventID(id))
	return &PlanEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlanEvent.
func (c *PlanEventClient) Delete() *PlanEventDelete {
	mutation := newPlanEventMutation(c.config, OpDelete)
	return &PlanEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlanEventClient) DeleteOne(_m *PlanEvent) *PlanEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlanEventClient) DeleteOneID(id int) *PlanEventDeleteOne {
	builder := c.Delete().Where(planevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlanEventDeleteOne{builder}
}

// Query returns a query builder for PlanEvent.
func (c *PlanEventClient) Query() *PlanEventQuery {
	return &PlanEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlanEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PlanEvent entity by its id.
func (c *PlanEventClient) Get(ctx context.Context, id int) (*PlanEvent, error) {
	return c.Query().Where(planevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlanEventClient) GetX(ctx context.Context, id int) *PlanEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlanEventClient) Hooks() []Hook {
	return c.hooks.PlanEvent
}

// Interceptors returns the client interceptors.
func (c *PlanEventClient) Interceptors() []Interceptor {
	return c.inters.PlanEvent
}

func (c *PlanEventClient) mutate(ctx context.Context, m *PlanEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlanEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlanEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlanEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlanEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlanEvent mutation op: %q", m.Op())
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(_m *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(_m))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id int) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(_m *Question) *QuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id int) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id int) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id int) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
	}
}

// StudyPlanClient is a client for the StudyPlan schema.
type StudyPlanClient struct {
	config
}

// NewStudyPlanClient returns a client for the StudyPlan from the given config.
func NewStudyPlanClient(c config) *StudyPlanClient {
	return &StudyPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studyplan.Hooks(f(g(h())))`.
func (c *StudyPlanClient) Use(hooks ...Hook) {
	c.hooks.StudyPlan = append(c.hooks.StudyPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studyplan.Intercept(f(g(h())))`.
func (c *StudyPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudyPlan = append(c.inters.StudyPlan, interceptors...)
}

// Create returns a builder for creating a StudyPlan entity.
func (c *StudyPlanClient) Create() *StudyPlanCreate {
	mutation := newStudyPlanMutation(c.config, OpCreate)
	return &StudyPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudyPlan entities.
func (c *StudyPlanClient) CreateBulk(builders ...*StudyPlanCreate) *StudyPlanCreateBulk {
	return &StudyPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudyPlanClient) MapCreateBulk(slice any, setFunc func(*StudyPlanCreate, int)) *StudyPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudyPlanCreateBulk{err: fmt.Errorf("calling to StudyPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudyPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudyPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudyPlan.
func (c *StudyPlanClient) Update() *StudyPlanUpdate {
	mutation := newStudyPlanMutation(c.config, OpUpdate)
	return &StudyPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudyPlanClient) UpdateOne(_m *StudyPlan) *StudyPlanUpdateOne {
	mutation := newStudyPlanMutation(c.config, OpUpdateOne, withStudyPlan(_m))
	return &StudyPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudyPlanClient) UpdateOneID(id int) *StudyPlanUpdateOne {
	mutation := newStudyPlanMutation(c.config, OpUpdateOne, withStudyPlanID(id))
	return &StudyPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudyPlan.
func (c *StudyPlanClient) Delete() *StudyPlanDelete {
	mutation := newStudyPlanMutation(c.config, OpDelete)
	return &StudyPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudyPlanClient) DeleteOne(_m *StudyPlan) *StudyPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudyPlanClient) DeleteOneID(id int) *StudyPlanDeleteOne {
	builder := c.Delete().Where(studyplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudyPlanDeleteOne{builder}
}

// Query returns a query builder for StudyPlan.
func (c *StudyPlanClient) Query() *StudyPlanQuery {
	return &StudyPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudyPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a StudyPlan entity by its id.
func (c *StudyPlanClient) Get(ctx context.Context, id int) (*StudyPlan, error) {
	return c.Query().Where(studyplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudyPlanClient) GetX(ctx context.Context, id int) *StudyPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudyPlanClient) Hooks() []Hook {
	return c.hooks.StudyPlan
}

// Interceptors returns the client interceptors.
func (c *StudyPlanClient) Interceptors() []Interceptor {
	return c.inters.StudyPlan
}

func (c *StudyPlanClient) mutate(ctx context.Context, m *StudyPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudyPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudyPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudyPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudyPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudyPlan mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AttemptEvent, LLMRequestEvent, PlanEvent, Question, StudyPlan []ent.Hook
	}
	inters struct {
		AttemptEvent, LLMRequestEvent, PlanEvent, Question, StudyPlan []ent.Interceptor
	}
)
