// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ssanyal/recruitdojo/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/ssanyal/recruitdojo/ent/attempt"
	"github.com/ssanyal/recruitdojo/ent/calibration"
	"github.com/ssanyal/recruitdojo/ent/difficultyprofile"
	"github.com/ssanyal/recruitdojo/ent/llmrequestevent"
	"github.com/ssanyal/recruitdojo/ent/player"
	"github.com/ssanyal/recruitdojo/ent/referenceanswer"
	"github.com/ssanyal/recruitdojo/ent/skillmemory"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Attempt is the client for interacting with the Attempt builders.
	Attempt *AttemptClient
	// Calibration is the client for interacting with the Calibration builders.
	Calibration *CalibrationClient
	// DifficultyProfile is the client for interacting with the DifficultyProfile builders.
	DifficultyProfile *DifficultyProfileClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// Player is the client for interacting with the Player builders.
	Player *PlayerClient
	// ReferenceAnswer is the client for interacting with the ReferenceAnswer builders.
	ReferenceAnswer *ReferenceAnswerClient
	// SkillMemory is the client for interacting with the SkillMemory builders.
	SkillMemory *SkillMemoryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Attempt = NewAttemptClient(c.config)
	c.Calibration = NewCalibrationClient(c.config)
	c.DifficultyProfile = NewDifficultyProfileClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.Player = NewPlayerClient(c.config)
	c.ReferenceAnswer = NewReferenceAnswerClient(c.config)
	c.SkillMemory = NewSkillMemoryClient(c.config)
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
		Attempt:           NewAttemptClient(cfg),
		Calibration:       NewCalibrationClient(cfg),
		DifficultyProfile: NewDifficultyProfileClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		Player:            NewPlayerClient(cfg),
		ReferenceAnswer:   NewReferenceAnswerClient(cfg),
		SkillMemory:       NewSkillMemoryClient(cfg),
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
		Attempt:           NewAttemptClient(cfg),
		Calibration:       NewCalibrationClient(cfg),
		DifficultyProfile: NewDifficultyProfileClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		Player:            NewPlayerClient(cfg),
		ReferenceAnswer:   NewReferenceAnswerClient(cfg),
		SkillMemory:       NewSkillMemoryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Attempt.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Attempt, c.Calibration, c.DifficultyProfile, c.LLMRequestEvent, c.Player,
		c.ReferenceAnswer, c.SkillMemory,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Attempt, c.Calibration, c.DifficultyProfile, c.LLMRequestEvent, c.Player,
		c.ReferenceAnswer, c.SkillMemory,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptMutation:
		return c.Attempt.mutate(ctx, m)
	case *CalibrationMutation:
		return c.Calibration.mutate(ctx, m)
	case *DifficultyProfileMutation:
		return c.DifficultyProfile.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PlayerMutation:
		return c.Player.mutate(ctx, m)
	case *ReferenceAnswerMutation:
		return c.ReferenceAnswer.mutate(ctx, m)
	case *SkillMemoryMutation:
		return c.SkillMemory.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptClient is a client for the Attempt schema.
type AttemptClient struct {
	config
}

// NewAttemptClient returns a client for the Attempt from the given config.
func NewAttemptClient(c config) *AttemptClient {
	return &AttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attempt.Hooks(f(g(h())))`.
func (c *AttemptClient) Use(hooks ...Hook) {
	c.hooks.Attempt = append(c.hooks.Attempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attempt.Intercept(f(g(h())))`.
func (c *AttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Attempt = append(c.inters.Attempt, interceptors...)
}

// Create returns a builder for creating a Attempt entity.
func (c *AttemptClient) Create() *AttemptCreate {
	mutation := newAttemptMutation(c.config, OpCreate)
	return &AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Attempt entities.
func (c *AttemptClient) CreateBulk(builders ...*AttemptCreate) *AttemptCreateBulk {
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptClient) MapCreateBulk(slice any, setFunc func(*AttemptCreate, int)) *AttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptCreateBulk{err: fmt.Errorf("calling to AttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Attempt.
func (c *AttemptClient) Update() *AttemptUpdate {
	mutation := newAttemptMutation(c.config, OpUpdate)
	return &AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptClient) UpdateOne(_m *Attempt) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttempt(_m))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptClient) UpdateOneID(id int) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttemptID(id))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Attempt.
func (c *AttemptClient) Delete() *AttemptDelete {
	mutation := newAttemptMutation(c.config, OpDelete)
	return &AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptClient) DeleteOne(_m *Attempt) *AttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptClient) DeleteOneID(id int) *AttemptDeleteOne {
	builder := c.Delete().Where(attempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptDeleteOne{builder}
}

// Query returns a query builder for Attempt.
func (c *AttemptClient) Query() *AttemptQuery {
	return &AttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a Attempt entity by its id.
func (c *AttemptClient) Get(ctx context.Context, id int) (*Attempt, error) {
	return c.Query().Where(attempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptClient) GetX(ctx context.Context, id int) *Attempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptClient) Hooks() []Hook {
	return c.hooks.Attempt
}

// Interceptors returns the client interceptors.
func (c *AttemptClient) Interceptors() []Interceptor {
	return c.inters.Attempt
}

func (c *AttemptClient) mutate(ctx context.Context, m *AttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Attempt mutation op: %q", m.Op())
	}
}

// CalibrationClient is a client for the Calibration schema.
type CalibrationClient struct {
	config
}

// NewCalibrationClient returns a client for the Calibration from the given config.
func NewCalibrationClient(c config) *CalibrationClient {
	return &CalibrationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calibration.Hooks(f(g(h())))`.
func (c *CalibrationClient) Use(hooks ...Hook) {
	c.hooks.Calibration = append(c.hooks.Calibration, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calibration.Intercept(f(g(h())))`.
func (c *CalibrationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Calibration = append(c.inters.Calibration, interceptors...)
}

// Create returns a builder for creating a Calibration entity.
func (c *CalibrationClient) Create() *CalibrationCreate {
	mutation := newCalibrationMutation(c.config, OpCreate)
	return &CalibrationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Calibration entities.
func (c *CalibrationClient) CreateBulk(builders ...*CalibrationCreate) *CalibrationCreateBulk {
	return &CalibrationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalibrationClient) MapCreateBulk(slice any, setFunc func(*CalibrationCreate, int)) *CalibrationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalibrationCreateBulk{err: fmt.Errorf("calling to CalibrationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalibrationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalibrationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Calibration.
func (c *CalibrationClient) Update() *CalibrationUpdate {
	mutation := newCalibrationMutation(c.config, OpUpdate)
	return &CalibrationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalibrationClient) UpdateOne(_m *Calibration) *CalibrationUpdateOne {
	mutation := newCalibrationMutation(c.config, OpUpdateOne, withCalibration(_m))
	return &CalibrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalibrationClient) UpdateOneID(id int) *CalibrationUpdateOne {
	mutation := newCalibrationMutation(c.config, OpUpdateOne, withCalibrationID(id))
	return &CalibrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Calibration.
func (c *CalibrationClient) Delete() *CalibrationDelete {
	mutation := newCalibrationMutation(c.config, OpDelete)
	return &CalibrationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalibrationClient) DeleteOne(_m *Calibration) *CalibrationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalibrationClient) DeleteOneID(id int) *CalibrationDeleteOne {
	builder := c.Delete().Where(calibration.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalibrationDeleteOne{builder}
}

// Query returns a query builder for Calibration.
func (c *CalibrationClient) Query() *CalibrationQuery {
	return &CalibrationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalibration},
		inters: c.Interceptors(),
	}
}

// Get returns a Calibration entity by its id.
func (c *CalibrationClient) Get(ctx context.Context, id int) (*Calibration, error) {
	return c.Query().Where(calibration.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalibrationClient) GetX(ctx context.Context, id int) *Calibration {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CalibrationClient) Hooks() []Hook {
	return c.hooks.Calibration
}

// Interceptors returns the client interceptors.
func (c *CalibrationClient) Interceptors() []Interceptor {
	return c.inters.Calibration
}

func (c *CalibrationClient) mutate(ctx context.Context, m *CalibrationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalibrationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalibrationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalibrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalibrationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Calibration mutation op: %q", m.Op())
	}
}

// DifficultyProfileClient is a client for the DifficultyProfile schema.
type DifficultyProfileClient struct {
	config
}

// NewDifficultyProfileClient returns a client for the DifficultyProfile from the given config.
func NewDifficultyProfileClient(c config) *DifficultyProfileClient {
	return &DifficultyProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `difficultyprofile.Hooks(f(g(h())))`.
func (c *DifficultyProfileClient) Use(hooks ...Hook) {
	c.hooks.DifficultyProfile = append(c.hooks.DifficultyProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `difficultyprofile.Intercept(f(g(h())))`.
func (c *DifficultyProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.DifficultyProfile = append(c.inters.DifficultyProfile, interceptors...)
}

// Create returns a builder for creating a DifficultyProfile entity.
func (c *DifficultyProfileClient) Create() *DifficultyProfileCreate {
	mutation := newDifficultyProfileMutation(c.config, OpCreate)
	return &DifficultyProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DifficultyProfile entities.
func (c *DifficultyProfileClient) CreateBulk(builders ...*DifficultyProfileCreate) *DifficultyProfileCreateBulk {
	return &DifficultyProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DifficultyProfileClient) MapCreateBulk(slice any, setFunc func(*DifficultyProfileCreate, int)) *DifficultyProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DifficultyProfileCreateBulk{err: fmt.Errorf("calling to DifficultyProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DifficultyProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DifficultyProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DifficultyProfile.
func (c *DifficultyProfileClient) Update() *DifficultyProfileUpdate {
	mutation := newDifficultyProfileMutation(c.config, OpUpdate)
	return &DifficultyProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DifficultyProfileClient) UpdateOne(_m *DifficultyProfile) *DifficultyProfileUpdateOne {
	mutation := newDifficultyProfileMutation(c.config, OpUpdateOne, withDifficultyProfile(_m))
	return &DifficultyProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DifficultyProfileClient) UpdateOneID(id int) *DifficultyProfileUpdateOne {
	mutation := newDifficultyProfileMutation(c.config, OpUpdateOne, withDifficultyProfileID(id))
	return &DifficultyProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DifficultyProfile.
func (c *DifficultyProfileClient) Delete() *DifficultyProfileDelete {
	mutation := newDifficultyProfileMutation(c.config, OpDelete)
	return &DifficultyProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DifficultyProfileClient) DeleteOne(_m *DifficultyProfile) *DifficultyProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DifficultyProfileClient) DeleteOneID(id int) *DifficultyProfileDeleteOne {
	builder := c.Delete().Where(difficultyprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DifficultyProfileDeleteOne{builder}
}

// Query returns a query builder for DifficultyProfile.
func (c *DifficultyProfileClient) Query() *DifficultyProfileQuery {
	return &DifficultyProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDifficultyProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a DifficultyProfile entity by its id.
func (c *DifficultyProfileClient) Get(ctx context.Context, id int) (*DifficultyProfile, error) {
	return c.Query().Where(difficultyprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DifficultyProfileClient) GetX(ctx context.Context, id int) *DifficultyProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DifficultyProfileClient) Hooks() []Hook {
	return c.hooks.DifficultyProfile
}

// Interceptors returns the client interceptors.
func (c *DifficultyProfileClient) Interceptors() []Interceptor {
	return c.inters.DifficultyProfile
}

func (c *DifficultyProfileClient) mutate(ctx context.Context, m *DifficultyProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DifficultyProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DifficultyProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DifficultyProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DifficultyProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DifficultyProfile mutation op: %q", m.Op())
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

// PlayerClient is a client for the Player schema.
type PlayerClient struct {
	config
}

// NewPlayerClient returns a client for the Player from the given config.
func NewPlayerClient(c config) *PlayerClient {
	return &PlayerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `player.Hooks(f(g(h())))`.
func (c *PlayerClient) Use(hooks ...Hook) {
	c.hooks.Player = append(c.hooks.Player, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `player.Intercept(f(g(h())))`.
func (c *PlayerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Player = append(c.inters.Player, interceptors...)
}

// Create returns a builder for creating a Player entity.
func (c *PlayerClient) Create() *PlayerCreate {
	mutation := newPlayerMutation(c.config, OpCreate)
	return &PlayerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Player entities.
func (c *PlayerClient) CreateBulk(builders ...*PlayerCreate) *PlayerCreateBulk {
	return &PlayerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlayerClient) MapCreateBulk(slice any, setFunc func(*PlayerCreate, int)) *PlayerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlayerCreateBulk{err: fmt.Errorf("calling to PlayerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlayerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlayerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Player.
func (c *PlayerClient) Update() *PlayerUpdate {
	mutation := newPlayerMutation(c.config, OpUpdate)
	return &PlayerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlayerClient) UpdateOne(_m *Player) *PlayerUpdateOne {
	mutation := newPlayerMutation(c.config, OpUpdateOne, withPlayer(_m))
	return &PlayerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlayerClient) UpdateOneID(id int) *PlayerUpdateOne {
	mutation := newPlayerMutation(c.config, OpUpdateOne, withPlayerID(id))
	return &PlayerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Player.
func (c *PlayerClient) Delete() *PlayerDelete {
	mutation := newPlayerMutation(c.config, OpDelete)
	return &PlayerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlayerClient) DeleteOne(_m *Player) *PlayerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlayerClient) DeleteOneID(id int) *PlayerDeleteOne {
	builder := c.Delete().Where(player.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlayerDeleteOne{builder}
}

// Query returns a query builder for Player.
func (c *PlayerClient) Query() *PlayerQuery {
	return &PlayerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlayer},
		inters: c.Interceptors(),
	}
}

// Get returns a Player entity by its id.
func (c *PlayerClient) Get(ctx context.Context, id int) (*Player, error) {
	return c.Query().Where(player.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlayerClient) GetX(ctx context.Context, id int) *Player {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlayerClient) Hooks() []Hook {
	return c.hooks.Player
}

// Interceptors returns the client interceptors.
func (c *PlayerClient) Interceptors() []Interceptor {
	return c.inters.Player
}

func (c *PlayerClient) mutate(ctx context.Context, m *PlayerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlayerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlayerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlayerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlayerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Player mutation op: %q", m.Op())
	}
}

// ReferenceAnswerClient is a client for the ReferenceAnswer schema.
type ReferenceAnswerClient struct {
	config
}

// NewReferenceAnswerClient returns a client for the ReferenceAnswer from the given config.
func NewReferenceAnswerClient(c config) *ReferenceAnswerClient {
	return &ReferenceAnswerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `referenceanswer.Hooks(f(g(h())))`.
func (c *ReferenceAnswerClient) Use(hooks ...Hook) {
	c.hooks.ReferenceAnswer = append(c.hooks.ReferenceAnswer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `referenceanswer.Intercept(f(g(h())))`.
func (c *ReferenceAnswerClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReferenceAnswer = append(c.inters.ReferenceAnswer, interceptors...)
}

// Create returns a builder for creating a ReferenceAnswer entity.
func (c *ReferenceAnswerClient) Create() *ReferenceAnswerCreate {
	mutation := newReferenceAnswerMutation(c.config, OpCreate)
	return &ReferenceAnswerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReferenceAnswer entities.
func (c *ReferenceAnswerClient) CreateBulk(builders ...*ReferenceAnswerCreate) *ReferenceAnswerCreateBulk {
	return &ReferenceAnswerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReferenceAnswerClient) MapCreateBulk(slice any, setFunc func(*ReferenceAnswerCreate, int)) *ReferenceAnswerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReferenceAnswerCreateBulk{err: fmt.Errorf("calling to ReferenceAnswerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReferenceAnswerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReferenceAnswerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReferenceAnswer.
func (c *ReferenceAnswerClient) Update() *ReferenceAnswerUpdate {
	mutation := newReferenceAnswerMutation(c.config, OpUpdate)
	return &ReferenceAnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReferenceAnswerClient) UpdateOne(_m *ReferenceAnswer) *ReferenceAnswerUpdateOne {
	mutation := newReferenceAnswerMutation(c.config, OpUpdateOne, withReferenceAnswer(_m))
	return &ReferenceAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReferenceAnswerClient) UpdateOneID(id int) *ReferenceAnswerUpdateOne {
	mutation := newReferenceAnswerMutation(c.config, OpUpdateOne, withReferenceAnswerID(id))
	return &ReferenceAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReferenceAnswer.
func (c *ReferenceAnswerClient) Delete() *ReferenceAnswerDelete {
	mutation := newReferenceAnswerMutation(c.config, OpDelete)
	return &ReferenceAnswerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReferenceAnswerClient) DeleteOne(_m *ReferenceAnswer) *ReferenceAnswerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReferenceAnswerClient) DeleteOneID(id int) *ReferenceAnswerDeleteOne {
	builder := c.Delete().Where(referenceanswer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReferenceAnswerDeleteOne{builder}
}

// Query returns a query builder for ReferenceAnswer.
func (c *ReferenceAnswerClient) Query() *ReferenceAnswerQuery {
	return &ReferenceAnswerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReferenceAnswer},
		inters: c.Interceptors(),
	}
}

// Get returns a ReferenceAnswer entity by its id.
func (c *ReferenceAnswerClient) Get(ctx context.Context, id int) (*ReferenceAnswer, error) {
	return c.Query().Where(referenceanswer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReferenceAnswerClient) GetX(ctx context.Context, id int) *ReferenceAnswer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReferenceAnswerClient) Hooks() []Hook {
	return c.hooks.ReferenceAnswer
}

// Interceptors returns the client interceptors.
func (c *ReferenceAnswerClient) Interceptors() []Interceptor {
	return c.inters.ReferenceAnswer
}

func (c *ReferenceAnswerClient) mutate(ctx context.Context, m *ReferenceAnswerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReferenceAnswerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReferenceAnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReferenceAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReferenceAnswerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReferenceAnswer mutation op: %q", m.Op())
	}
}

// SkillMemoryClient is a client for the SkillMemory schema.
type SkillMemoryClient struct {
	config
}

// NewSkillMemoryClient returns a client for the SkillMemory from the given config.
func NewSkillMemoryClient(c config) *SkillMemoryClient {
	return &SkillMemoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skillmemory.Hooks(f(g(h())))`.
func (c *SkillMemoryClient) Use(hooks ...Hook) {
	c.hooks.SkillMemory = append(c.hooks.SkillMemory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skillmemory.Intercept(f(g(h())))`.
func (c *SkillMemoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SkillMemory = append(c.inters.SkillMemory, interceptors...)
}

// Create returns a builder for creating a SkillMemory entity.
func (c *SkillMemoryClient) Create() *SkillMemoryCreate {
	mutation := newSkillMemoryMutation(c.config, OpCreate)
	return &SkillMemoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SkillMemory entities.
func (c *SkillMemoryClient) CreateBulk(builders ...*SkillMemoryCreate) *SkillMemoryCreateBulk {
	return &SkillMemoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillMemoryClient) MapCreateBulk(slice any, setFunc func(*SkillMemoryCreate, int)) *SkillMemoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillMemoryCreateBulk{err: fmt.Errorf("calling to SkillMemoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillMemoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillMemoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SkillMemory.
func (c *SkillMemoryClient) Update() *SkillMemoryUpdate {
	mutation := newSkillMemoryMutation(c.config, OpUpdate)
	return &SkillMemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillMemoryClient) UpdateOne(_m *SkillMemory) *SkillMemoryUpdateOne {
	mutation := newSkillMemoryMutation(c.config, OpUpdateOne, withSkillMemory(_m))
	return &SkillMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillMemoryClient) UpdateOneID(id int) *SkillMemoryUpdateOne {
	mutation := newSkillMemoryMutation(c.config, OpUpdateOne, withSkillMemoryID(id))
	return &SkillMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SkillMemory.
func (c *SkillMemoryClient) Delete() *SkillMemoryDelete {
	mutation := newSkillMemoryMutation(c.config, OpDelete)
	return &SkillMemoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillMemoryClient) DeleteOne(_m *SkillMemory) *SkillMemoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillMemoryClient) DeleteOneID(id int) *SkillMemoryDeleteOne {
	builder := c.Delete().Where(skillmemory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillMemoryDeleteOne{builder}
}

// Query returns a query builder for SkillMemory.
func (c *SkillMemoryClient) Query() *SkillMemoryQuery {
	return &SkillMemoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkillMemory},
		inters: c.Interceptors(),
	}
}

// Get returns a SkillMemory entity by its id.
func (c *SkillMemoryClient) Get(ctx context.Context, id int) (*SkillMemory, error) {
	return c.Query().Where(skillmemory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillMemoryClient) GetX(ctx context.Context, id int) *SkillMemory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillMemoryClient) Hooks() []Hook {
	return c.hooks.SkillMemory
}

// Interceptors returns the client interceptors.
func (c *SkillMemoryClient) Interceptors() []Interceptor {
	return c.inters.SkillMemory
}

func (c *SkillMemoryClient) mutate(ctx context.Context, m *SkillMemoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillMemoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillMemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillMemoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SkillMemory mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Attempt, Calibration, DifficultyProfile, LLMRequestEvent, Player,
		ReferenceAnswer, SkillMemory []ent.Hook
	}
	inters struct {
		Attempt, Calibration, DifficultyProfile, LLMRequestEvent, Player,
		ReferenceAnswer, SkillMemory []ent.Interceptor
	}
)
