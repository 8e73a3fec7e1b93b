// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/campusterm/campus/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/campusterm/campus/ent/answerevent"
	"github.com/campusterm/campus/ent/engagementevent"
	"github.com/campusterm/campus/ent/pendingsubmission"
	"github.com/campusterm/campus/ent/sessionevent"
	"github.com/campusterm/campus/ent/submissionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnswerEvent is the client for interacting with the AnswerEvent builders.
	AnswerEvent *AnswerEventClient
	// EngagementEvent is the client for interacting with the EngagementEvent builders.
	EngagementEvent *EngagementEventClient
	// PendingSubmission is the client for interacting with the PendingSubmission builders.
	PendingSubmission *PendingSubmissionClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
	// SubmissionEvent is the client for interacting with the SubmissionEvent builders.
	SubmissionEvent *SubmissionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnswerEvent = NewAnswerEventClient(c.config)
	c.EngagementEvent = NewEngagementEventClient(c.config)
	c.PendingSubmission = NewPendingSubmissionClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
	c.SubmissionEvent = NewSubmissionEventClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		AnswerEvent:       NewAnswerEventClient(cfg),
		EngagementEvent:   NewEngagementEventClient(cfg),
		PendingSubmission: NewPendingSubmissionClient(cfg),
		SessionEvent:      NewSessionEventClient(cfg),
		SubmissionEvent:   NewSubmissionEventClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		AnswerEvent:       NewAnswerEventClient(cfg),
		EngagementEvent:   NewEngagementEventClient(cfg),
		PendingSubmission: NewPendingSubmissionClient(cfg),
		SessionEvent:      NewSessionEventClient(cfg),
		SubmissionEvent:   NewSubmissionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnswerEvent.
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
	c.AnswerEvent.Use(hooks...)
	c.EngagementEvent.Use(hooks...)
	c.PendingSubmission.Use(hooks...)
	c.SessionEvent.Use(hooks...)
	c.SubmissionEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnswerEvent.Intercept(interceptors...)
	c.EngagementEvent.Intercept(interceptors...)
	c.PendingSubmission.Intercept(interceptors...)
	c.SessionEvent.Intercept(interceptors...)
	c.SubmissionEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerEventMutation:
		return c.AnswerEvent.mutate(ctx, m)
	case *EngagementEventMutation:
		return c.EngagementEvent.mutate(ctx, m)
	case *PendingSubmissionMutation:
		return c.PendingSubmission.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	case *SubmissionEventMutation:
		return c.SubmissionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerEventClient is a client for the AnswerEvent schema.
type AnswerEventClient struct {
	config
}

// NewAnswerEventClient returns a client for the AnswerEvent from the given config.
func NewAnswerEventClient(c config) *AnswerEventClient {
	return &AnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerevent.Hooks(f(g(h())))`.
func (c *AnswerEventClient) Use(hooks ...Hook) {
	c.hooks.AnswerEvent = append(c.hooks.AnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerevent.Intercept(f(g(h())))`.
func (c *AnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerEvent = append(c.inters.AnswerEvent, interceptors...)
}

// Create returns a builder for creating a AnswerEvent entity.
func (c *AnswerEventClient) Create() *AnswerEventCreate {
	mutation := newAnswerEventMutation(c.config, OpCreate)
	return &AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerEvent entities.
func (c *AnswerEventClient) CreateBulk(builders ...*AnswerEventCreate) *AnswerEventCreateBulk {
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerEventClient) MapCreateBulk(slice any, setFunc func(*AnswerEventCreate, int)) *AnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerEventCreateBulk{err: fmt.Errorf("calling to AnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerEvent.
func (c *AnswerEventClient) Update() *AnswerEventUpdate {
	mutation := newAnswerEventMutation(c.config, OpUpdate)
	return &AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerEventClient) UpdateOne(_m *AnswerEvent) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEvent(_m))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerEventClient) UpdateOneID(id int) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEventID(id))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerEvent.
func (c *AnswerEventClient) Delete() *AnswerEventDelete {
	mutation := newAnswerEventMutation(c.config, OpDelete)
	return &AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerEventClient) DeleteOne(_m *AnswerEvent) *AnswerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerEventClient) DeleteOneID(id int) *AnswerEventDeleteOne {
	builder := c.Delete().Where(answerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerEventDeleteOne{builder}
}

// Query returns a query builder for AnswerEvent.
func (c *AnswerEventClient) Query() *AnswerEventQuery {
	return &AnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerEvent entity by its id.
func (c *AnswerEventClient) Get(ctx context.Context, id int) (*AnswerEvent, error) {
	return c.Query().Where(answerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerEventClient) GetX(ctx context.Context, id int) *AnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerEventClient) Hooks() []Hook {
	return c.hooks.AnswerEvent
}

// Interceptors returns the client interceptors.
func (c *AnswerEventClient) Interceptors() []Interceptor {
	return c.inters.AnswerEvent
}

func (c *AnswerEventClient) mutate(ctx context.Context, m *AnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerEvent mutation op: %q", m.Op())
	}
}

// EngagementEventClient is a client for the EngagementEvent schema.
type EngagementEventClient struct {
	config
}

// NewEngagementEventClient returns a client for the EngagementEvent from the given config.
func NewEngagementEventClient(c config) *EngagementEventClient {
	return &EngagementEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `engagementevent.Hooks(f(g(h())))`.
func (c *EngagementEventClient) Use(hooks ...Hook) {
	c.hooks.EngagementEvent = append(c.hooks.EngagementEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `engagementevent.Intercept(f(g(h())))`.
func (c *EngagementEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.EngagementEvent = append(c.inters.EngagementEvent, interceptors...)
}

// Create returns a builder for creating a EngagementEvent entity.
func (c *EngagementEventClient) Create() *EngagementEventCreate {
	mutation := newEngagementEventMutation(c.config, OpCreate)
	return &EngagementEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EngagementEvent entities.
func (c *EngagementEventClient) CreateBulk(builders ...*EngagementEventCreate) *EngagementEventCreateBulk {
	return &EngagementEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EngagementEventClient) MapCreateBulk(slice any, setFunc func(*EngagementEventCreate, int)) *EngagementEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EngagementEventCreateBulk{err: fmt.Errorf("calling to EngagementEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EngagementEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EngagementEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EngagementEvent.
func (c *EngagementEventClient) Update() *EngagementEventUpdate {
	mutation := newEngagementEventMutation(c.config, OpUpdate)
	return &EngagementEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EngagementEventClient) UpdateOne(_m *EngagementEvent) *EngagementEventUpdateOne {
	mutation := newEngagementEventMutation(c.config, OpUpdateOne, withEngagementEvent(_m))
	return &EngagementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EngagementEventClient) UpdateOneID(id int) *EngagementEventUpdateOne {
	mutation := newEngagementEventMutation(c.config, OpUpdateOne, withEngagementEventID(id))
	return &EngagementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EngagementEvent.
func (c *EngagementEventClient) Delete() *EngagementEventDelete {
	mutation := newEngagementEventMutation(c.config, OpDelete)
	return &EngagementEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EngagementEventClient) DeleteOne(_m *EngagementEvent) *EngagementEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EngagementEventClient) DeleteOneID(id int) *EngagementEventDeleteOne {
	builder := c.Delete().Where(engagementevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EngagementEventDeleteOne{builder}
}

// Query returns a query builder for EngagementEvent.
func (c *EngagementEventClient) Query() *EngagementEventQuery {
	return &EngagementEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEngagementEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a EngagementEvent entity by its id.
func (c *EngagementEventClient) Get(ctx context.Context, id int) (*EngagementEvent, error) {
	return c.Query().Where(engagementevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EngagementEventClient) GetX(ctx context.Context, id int) *EngagementEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EngagementEventClient) Hooks() []Hook {
	return c.hooks.EngagementEvent
}

// Interceptors returns the client interceptors.
func (c *EngagementEventClient) Interceptors() []Interceptor {
	return c.inters.EngagementEvent
}

func (c *EngagementEventClient) mutate(ctx context.Context, m *EngagementEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EngagementEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EngagementEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EngagementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EngagementEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EngagementEvent mutation op: %q", m.Op())
	}
}

// PendingSubmissionClient is a client for the PendingSubmission schema.
type PendingSubmissionClient struct {
	config
}

// NewPendingSubmissionClient returns a client for the PendingSubmission from the given config.
func NewPendingSubmissionClient(c config) *PendingSubmissionClient {
	return &PendingSubmissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pendingsubmission.Hooks(f(g(h())))`.
func (c *PendingSubmissionClient) Use(hooks ...Hook) {
	c.hooks.PendingSubmission = append(c.hooks.PendingSubmission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pendingsubmission.Intercept(f(g(h())))`.
func (c *PendingSubmissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PendingSubmission = append(c.inters.PendingSubmission, interceptors...)
}

// Create returns a builder for creating a PendingSubmission entity.
func (c *PendingSubmissionClient) Create() *PendingSubmissionCreate {
	mutation := newPendingSubmissionMutation(c.config, OpCreate)
	return &PendingSubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PendingSubmission entities.
func (c *PendingSubmissionClient) CreateBulk(builders ...*PendingSubmissionCreate) *PendingSubmissionCreateBulk {
	return &PendingSubmissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PendingSubmissionClient) MapCreateBulk(slice any, setFunc func(*PendingSubmissionCreate, int)) *PendingSubmissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PendingSubmissionCreateBulk{err: fmt.Errorf("calling to PendingSubmissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PendingSubmissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PendingSubmissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PendingSubmission.
func (c *PendingSubmissionClient) Update() *PendingSubmissionUpdate {
	mutation := newPendingSubmissionMutation(c.config, OpUpdate)
	return &PendingSubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PendingSubmissionClient) UpdateOne(_m *PendingSubmission) *PendingSubmissionUpdateOne {
	mutation := newPendingSubmissionMutation(c.config, OpUpdateOne, withPendingSubmission(_m))
	return &PendingSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PendingSubmissionClient) UpdateOneID(id int) *PendingSubmissionUpdateOne {
	mutation := newPendingSubmissionMutation(c.config, OpUpdateOne, withPendingSubmissionID(id))
	return &PendingSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PendingSubmission.
func (c *PendingSubmissionClient) Delete() *PendingSubmissionDelete {
	mutation := newPendingSubmissionMutation(c.config, OpDelete)
	return &PendingSubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PendingSubmissionClient) DeleteOne(_m *PendingSubmission) *PendingSubmissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PendingSubmissionClient) DeleteOneID(id int) *PendingSubmissionDeleteOne {
	builder := c.Delete().Where(pendingsubmission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PendingSubmissionDeleteOne{builder}
}

// Query returns a query builder for PendingSubmission.
func (c *PendingSubmissionClient) Query() *PendingSubmissionQuery {
	return &PendingSubmissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePendingSubmission},
		inters: c.Interceptors(),
	}
}

// Get returns a PendingSubmission entity by its id.
func (c *PendingSubmissionClient) Get(ctx context.Context, id int) (*PendingSubmission, error) {
	return c.Query().Where(pendingsubmission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PendingSubmissionClient) GetX(ctx context.Context, id int) *PendingSubmission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PendingSubmissionClient) Hooks() []Hook {
	return c.hooks.PendingSubmission
}

// Interceptors returns the client interceptors.
func (c *PendingSubmissionClient) Interceptors() []Interceptor {
	return c.inters.PendingSubmission
}

func (c *PendingSubmissionClient) mutate(ctx context.Context, m *PendingSubmissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PendingSubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PendingSubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PendingSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PendingSubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PendingSubmission mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// SubmissionEventClient is a client for the SubmissionEvent schema.
type SubmissionEventClient struct {
	config
}

// NewSubmissionEventClient returns a client for the SubmissionEvent from the given config.
func NewSubmissionEventClient(c config) *SubmissionEventClient {
	return &SubmissionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submissionevent.Hooks(f(g(h())))`.
func (c *SubmissionEventClient) Use(hooks ...Hook) {
	c.hooks.SubmissionEvent = append(c.hooks.SubmissionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submissionevent.Intercept(f(g(h())))`.
func (c *SubmissionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubmissionEvent = append(c.inters.SubmissionEvent, interceptors...)
}

// Create returns a builder for creating a SubmissionEvent entity.
func (c *SubmissionEventClient) Create() *SubmissionEventCreate {
	mutation := newSubmissionEventMutation(c.config, OpCreate)
	return &SubmissionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubmissionEvent entities.
func (c *SubmissionEventClient) CreateBulk(builders ...*SubmissionEventCreate) *SubmissionEventCreateBulk {
	return &SubmissionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmissionEventClient) MapCreateBulk(slice any, setFunc func(*SubmissionEventCreate, int)) *SubmissionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmissionEventCreateBulk{err: fmt.Errorf("calling to SubmissionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmissionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmissionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubmissionEvent.
func (c *SubmissionEventClient) Update() *SubmissionEventUpdate {
	mutation := newSubmissionEventMutation(c.config, OpUpdate)
	return &SubmissionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmissionEventClient) UpdateOne(_m *SubmissionEvent) *SubmissionEventUpdateOne {
	mutation := newSubmissionEventMutation(c.config, OpUpdateOne, withSubmissionEvent(_m))
	return &SubmissionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmissionEventClient) UpdateOneID(id int) *SubmissionEventUpdateOne {
	mutation := newSubmissionEventMutation(c.config, OpUpdateOne, withSubmissionEventID(id))
	return &SubmissionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubmissionEvent.
func (c *SubmissionEventClient) Delete() *SubmissionEventDelete {
	mutation := newSubmissionEventMutation(c.config, OpDelete)
	return &SubmissionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmissionEventClient) DeleteOne(_m *SubmissionEvent) *SubmissionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmissionEventClient) DeleteOneID(id int) *SubmissionEventDeleteOne {
	builder := c.Delete().Where(submissionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmissionEventDeleteOne{builder}
}

// Query returns a query builder for SubmissionEvent.
func (c *SubmissionEventClient) Query() *SubmissionEventQuery {
	return &SubmissionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmissionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SubmissionEvent entity by its id.
func (c *SubmissionEventClient) Get(ctx context.Context, id int) (*SubmissionEvent, error) {
	return c.Query().Where(submissionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmissionEventClient) GetX(ctx context.Context, id int) *SubmissionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubmissionEventClient) Hooks() []Hook {
	return c.hooks.SubmissionEvent
}

// Interceptors returns the client interceptors.
func (c *SubmissionEventClient) Interceptors() []Interceptor {
	return c.inters.SubmissionEvent
}

func (c *SubmissionEventClient) mutate(ctx context.Context, m *SubmissionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmissionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmissionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmissionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmissionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubmissionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnswerEvent, EngagementEvent, PendingSubmission, SessionEvent,
		SubmissionEvent []ent.Hook
	}
	inters struct {
		AnswerEvent, EngagementEvent, PendingSubmission, SessionEvent,
		SubmissionEvent []ent.Interceptor
	}
)
