// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/statline/statline/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/statline/statline/gen/ent/example"
	"github.com/statline/statline/gen/ent/extraction"
	"github.com/statline/statline/gen/ent/processor"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Example is the client for interacting with the Example builders.
	Example *ExampleClient
	// Extraction is the client for interacting with the Extraction builders.
	Extraction *ExtractionClient
	// Processor is the client for interacting with the Processor builders.
	Processor *ProcessorClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Example = NewExampleClient(c.config)
	c.Extraction = NewExtractionClient(c.config)
	c.Processor = NewProcessorClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		Example:    NewExampleClient(cfg),
		Extraction: NewExtractionClient(cfg),
		Processor:  NewProcessorClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		Example:    NewExampleClient(cfg),
		Extraction: NewExtractionClient(cfg),
		Processor:  NewProcessorClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Example.
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
	c.Example.Use(hooks...)
	c.Extraction.Use(hooks...)
	c.Processor.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Example.Intercept(interceptors...)
	c.Extraction.Intercept(interceptors...)
	c.Processor.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExampleMutation:
		return c.Example.mutate(ctx, m)
	case *ExtractionMutation:
		return c.Extraction.mutate(ctx, m)
	case *ProcessorMutation:
		return c.Processor.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExampleClient is a client for the Example schema.
type ExampleClient struct {
	config
}

// NewExampleClient returns a client for the Example from the given config.
func NewExampleClient(c config) *ExampleClient {
	return &ExampleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `example.Hooks(f(g(h())))`.
func (c *ExampleClient) Use(hooks ...Hook) {
	c.hooks.Example = append(c.hooks.Example, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `example.Intercept(f(g(h())))`.
func (c *ExampleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Example = append(c.inters.Example, interceptors...)
}

// Create returns a builder for creating a Example entity.
func (c *ExampleClient) Create() *ExampleCreate {
	mutation := newExampleMutation(c.config, OpCreate)
	return &ExampleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Example entities.
func (c *ExampleClient) CreateBulk(builders ...*ExampleCreate) *ExampleCreateBulk {
	return &ExampleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExampleClient) MapCreateBulk(slice any, setFunc func(*ExampleCreate, int)) *ExampleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExampleCreateBulk{err: fmt.Errorf("calling to ExampleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExampleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExampleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Example.
func (c *ExampleClient) Update() *ExampleUpdate {
	mutation := newExampleMutation(c.config, OpUpdate)
	return &ExampleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExampleClient) UpdateOne(_m *Example) *ExampleUpdateOne {
	mutation := newExampleMutation(c.config, OpUpdateOne, withExample(_m))
	return &ExampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExampleClient) UpdateOneID(id uuid.UUID) *ExampleUpdateOne {
	mutation := newExampleMutation(c.config, OpUpdateOne, withExampleID(id))
	return &ExampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Example.
func (c *ExampleClient) Delete() *ExampleDelete {
	mutation := newExampleMutation(c.config, OpDelete)
	return &ExampleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExampleClient) DeleteOne(_m *Example) *ExampleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExampleClient) DeleteOneID(id uuid.UUID) *ExampleDeleteOne {
	builder := c.Delete().Where(example.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExampleDeleteOne{builder}
}

// Query returns a query builder for Example.
func (c *ExampleClient) Query() *ExampleQuery {
	return &ExampleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExample},
		inters: c.Interceptors(),
	}
}

// Get returns a Example entity by its id.
func (c *ExampleClient) Get(ctx context.Context, id uuid.UUID) (*Example, error) {
	return c.Query().Where(example.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExampleClient) GetX(ctx context.Context, id uuid.UUID) *Example {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProcessor queries the processor edge of a Example.
func (c *ExampleClient) QueryProcessor(_m *Example) *ProcessorQuery {
	query := (&ProcessorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(example.Table, example.FieldID, id),
			sqlgraph.To(processor.Table, processor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, example.ProcessorTable, example.ProcessorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExampleClient) Hooks() []Hook {
	return c.hooks.Example
}

// Interceptors returns the client interceptors.
func (c *ExampleClient) Interceptors() []Interceptor {
	return c.inters.Example
}

func (c *ExampleClient) mutate(ctx context.Context, m *ExampleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExampleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExampleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExampleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Example mutation op: %q", m.Op())
	}
}

// ExtractionClient is a client for the Extraction schema.
type ExtractionClient struct {
	config
}

// NewExtractionClient returns a client for the Extraction from the given config.
func NewExtractionClient(c config) *ExtractionClient {
	return &ExtractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extraction.Hooks(f(g(h())))`.
func (c *ExtractionClient) Use(hooks ...Hook) {
	c.hooks.Extraction = append(c.hooks.Extraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extraction.Intercept(f(g(h())))`.
func (c *ExtractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Extraction = append(c.inters.Extraction, interceptors...)
}

// Create returns a builder for creating a Extraction entity.
func (c *ExtractionClient) Create() *ExtractionCreate {
	mutation := newExtractionMutation(c.config, OpCreate)
	return &ExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Extraction entities.
func (c *ExtractionClient) CreateBulk(builders ...*ExtractionCreate) *ExtractionCreateBulk {
	return &ExtractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionClient) MapCreateBulk(slice any, setFunc func(*ExtractionCreate, int)) *ExtractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionCreateBulk{err: fmt.Errorf("calling to ExtractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Extraction.
func (c *ExtractionClient) Update() *ExtractionUpdate {
	mutation := newExtractionMutation(c.config, OpUpdate)
	return &ExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionClient) UpdateOne(_m *Extraction) *ExtractionUpdateOne {
	mutation := newExtractionMutation(c.config, OpUpdateOne, withExtraction(_m))
	return &ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionClient) UpdateOneID(id uuid.UUID) *ExtractionUpdateOne {
	mutation := newExtractionMutation(c.config, OpUpdateOne, withExtractionID(id))
	return &ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Extraction.
func (c *ExtractionClient) Delete() *ExtractionDelete {
	mutation := newExtractionMutation(c.config, OpDelete)
	return &ExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionClient) DeleteOne(_m *Extraction) *ExtractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionClient) DeleteOneID(id uuid.UUID) *ExtractionDeleteOne {
	builder := c.Delete().Where(extraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionDeleteOne{builder}
}

// Query returns a query builder for Extraction.
func (c *ExtractionClient) Query() *ExtractionQuery {
	return &ExtractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtraction},
		inters: c.Interceptors(),
	}
}

// Get returns a Extraction entity by its id.
func (c *ExtractionClient) Get(ctx context.Context, id uuid.UUID) (*Extraction, error) {
	return c.Query().Where(extraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionClient) GetX(ctx context.Context, id uuid.UUID) *Extraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProcessor queries the processor edge of a Extraction.
func (c *ExtractionClient) QueryProcessor(_m *Extraction) *ProcessorQuery {
	query := (&ProcessorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extraction.Table, extraction.FieldID, id),
			sqlgraph.To(processor.Table, processor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extraction.ProcessorTable, extraction.ProcessorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionClient) Hooks() []Hook {
	return c.hooks.Extraction
}

// Interceptors returns the client interceptors.
func (c *ExtractionClient) Interceptors() []Interceptor {
	return c.inters.Extraction
}

func (c *ExtractionClient) mutate(ctx context.Context, m *ExtractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Extraction mutation op: %q", m.Op())
	}
}

// ProcessorClient is a client for the Processor schema.
type ProcessorClient struct {
	config
}

// NewProcessorClient returns a client for the Processor from the given config.
func NewProcessorClient(c config) *ProcessorClient {
	return &ProcessorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processor.Hooks(f(g(h())))`.
func (c *ProcessorClient) Use(hooks ...Hook) {
	c.hooks.Processor = append(c.hooks.Processor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processor.Intercept(f(g(h())))`.
func (c *ProcessorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Processor = append(c.inters.Processor, interceptors...)
}

// Create returns a builder for creating a Processor entity.
func (c *ProcessorClient) Create() *ProcessorCreate {
	mutation := newProcessorMutation(c.config, OpCreate)
	return &ProcessorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Processor entities.
func (c *ProcessorClient) CreateBulk(builders ...*ProcessorCreate) *ProcessorCreateBulk {
	return &ProcessorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessorClient) MapCreateBulk(slice any, setFunc func(*ProcessorCreate, int)) *ProcessorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessorCreateBulk{err: fmt.Errorf("calling to ProcessorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Processor.
func (c *ProcessorClient) Update() *ProcessorUpdate {
	mutation := newProcessorMutation(c.config, OpUpdate)
	return &ProcessorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessorClient) UpdateOne(_m *Processor) *ProcessorUpdateOne {
	mutation := newProcessorMutation(c.config, OpUpdateOne, withProcessor(_m))
	return &ProcessorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessorClient) UpdateOneID(id uuid.UUID) *ProcessorUpdateOne {
	mutation := newProcessorMutation(c.config, OpUpdateOne, withProcessorID(id))
	return &ProcessorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Processor.
func (c *ProcessorClient) Delete() *ProcessorDelete {
	mutation := newProcessorMutation(c.config, OpDelete)
	return &ProcessorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessorClient) DeleteOne(_m *Processor) *ProcessorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessorClient) DeleteOneID(id uuid.UUID) *ProcessorDeleteOne {
	builder := c.Delete().Where(processor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessorDeleteOne{builder}
}

// Query returns a query builder for Processor.
func (c *ProcessorClient) Query() *ProcessorQuery {
	return &ProcessorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessor},
		inters: c.Interceptors(),
	}
}

// Get returns a Processor entity by its id.
func (c *ProcessorClient) Get(ctx context.Context, id uuid.UUID) (*Processor, error) {
	return c.Query().Where(processor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessorClient) GetX(ctx context.Context, id uuid.UUID) *Processor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExamples queries the examples edge of a Processor.
func (c *ProcessorClient) QueryExamples(_m *Processor) *ExampleQuery {
	query := (&ExampleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processor.Table, processor.FieldID, id),
			sqlgraph.To(example.Table, example.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, processor.ExamplesTable, processor.ExamplesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExtractions queries the extractions edge of a Processor.
func (c *ProcessorClient) QueryExtractions(_m *Processor) *ExtractionQuery {
	query := (&ExtractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processor.Table, processor.FieldID, id),
			sqlgraph.To(extraction.Table, extraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, processor.ExtractionsTable, processor.ExtractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessorClient) Hooks() []Hook {
	return c.hooks.Processor
}

// Interceptors returns the client interceptors.
func (c *ProcessorClient) Interceptors() []Interceptor {
	return c.inters.Processor
}

func (c *ProcessorClient) mutate(ctx context.Context, m *ProcessorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Processor mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Example, Extraction, Processor []ent.Hook
	}
	inters struct {
		Example, Extraction, Processor []ent.Interceptor
	}
)
