// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fleetware/transport-ops/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/deliverynotecapture"
	"github.com/fleetware/transport-ops/gen/ent/ocrsetting"
	"github.com/fleetware/transport-ops/gen/ent/toll"
	"github.com/fleetware/transport-ops/gen/ent/tollcapture"
	"github.com/fleetware/transport-ops/gen/ent/tollpageresult"
	"github.com/fleetware/transport-ops/gen/ent/tollsstaging"
	"github.com/fleetware/transport-ops/gen/ent/transportationasset"
	"github.com/fleetware/transport-ops/gen/ent/trip"
	"github.com/fleetware/transport-ops/gen/ent/tripdrop"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DeliveryNoteCapture is the client for interacting with the DeliveryNoteCapture builders.
	DeliveryNoteCapture *DeliveryNoteCaptureClient
	// OCRSetting is the client for interacting with the OCRSetting builders.
	OCRSetting *OCRSettingClient
	// Toll is the client for interacting with the Toll builders.
	Toll *TollClient
	// TollCapture is the client for interacting with the TollCapture builders.
	TollCapture *TollCaptureClient
	// TollPageResult is the client for interacting with the TollPageResult builders.
	TollPageResult *TollPageResultClient
	// TollsStaging is the client for interacting with the TollsStaging builders.
	TollsStaging *TollsStagingClient
	// TransportationAsset is the client for interacting with the TransportationAsset builders.
	TransportationAsset *TransportationAssetClient
	// Trip is the client for interacting with the Trip builders.
	Trip *TripClient
	// TripDrop is the client for interacting with the TripDrop builders.
	TripDrop *TripDropClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DeliveryNoteCapture = NewDeliveryNoteCaptureClient(c.config)
	c.OCRSetting = NewOCRSettingClient(c.config)
	c.Toll = NewTollClient(c.config)
	c.TollCapture = NewTollCaptureClient(c.config)
	c.TollPageResult = NewTollPageResultClient(c.config)
	c.TollsStaging = NewTollsStagingClient(c.config)
	c.TransportationAsset = NewTransportationAssetClient(c.config)
	c.Trip = NewTripClient(c.config)
	c.TripDrop = NewTripDropClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		DeliveryNoteCapture: NewDeliveryNoteCaptureClient(cfg),
		OCRSetting:          NewOCRSettingClient(cfg),
		Toll:                NewTollClient(cfg),
		TollCapture:         NewTollCaptureClient(cfg),
		TollPageResult:      NewTollPageResultClient(cfg),
		TollsStaging:        NewTollsStagingClient(cfg),
		TransportationAsset: NewTransportationAssetClient(cfg),
		Trip:                NewTripClient(cfg),
		TripDrop:            NewTripDropClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		DeliveryNoteCapture: NewDeliveryNoteCaptureClient(cfg),
		OCRSetting:          NewOCRSettingClient(cfg),
		Toll:                NewTollClient(cfg),
		TollCapture:         NewTollCaptureClient(cfg),
		TollPageResult:      NewTollPageResultClient(cfg),
		TollsStaging:        NewTollsStagingClient(cfg),
		TransportationAsset: NewTransportationAssetClient(cfg),
		Trip:                NewTripClient(cfg),
		TripDrop:            NewTripDropClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DeliveryNoteCapture.
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
		c.DeliveryNoteCapture, c.OCRSetting, c.Toll, c.TollCapture, c.TollPageResult,
		c.TollsStaging, c.TransportationAsset, c.Trip, c.TripDrop,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.DeliveryNoteCapture, c.OCRSetting, c.Toll, c.TollCapture, c.TollPageResult,
		c.TollsStaging, c.TransportationAsset, c.Trip, c.TripDrop,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DeliveryNoteCaptureMutation:
		return c.DeliveryNoteCapture.mutate(ctx, m)
	case *OCRSettingMutation:
		return c.OCRSetting.mutate(ctx, m)
	case *TollMutation:
		return c.Toll.mutate(ctx, m)
	case *TollCaptureMutation:
		return c.TollCapture.mutate(ctx, m)
	case *TollPageResultMutation:
		return c.TollPageResult.mutate(ctx, m)
	case *TollsStagingMutation:
		return c.TollsStaging.mutate(ctx, m)
	case *TransportationAssetMutation:
		return c.TransportationAsset.mutate(ctx, m)
	case *TripMutation:
		return c.Trip.mutate(ctx, m)
	case *TripDropMutation:
		return c.TripDrop.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DeliveryNoteCaptureClient is a client for the DeliveryNoteCapture schema.
type DeliveryNoteCaptureClient struct {
	config
}

// NewDeliveryNoteCaptureClient returns a client for the DeliveryNoteCapture from the given config.
func NewDeliveryNoteCaptureClient(c config) *DeliveryNoteCaptureClient {
	return &DeliveryNoteCaptureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deliverynotecapture.Hooks(f(g(h())))`.
func (c *DeliveryNoteCaptureClient) Use(hooks ...Hook) {
	c.hooks.DeliveryNoteCapture = append(c.hooks.DeliveryNoteCapture, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deliverynotecapture.Intercept(f(g(h())))`.
func (c *DeliveryNoteCaptureClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeliveryNoteCapture = append(c.inters.DeliveryNoteCapture, interceptors...)
}

// Create returns a builder for creating a DeliveryNoteCapture entity.
func (c *DeliveryNoteCaptureClient) Create() *DeliveryNoteCaptureCreate {
	mutation := newDeliveryNoteCaptureMutation(c.config, OpCreate)
	return &DeliveryNoteCaptureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeliveryNoteCapture entities.
func (c *DeliveryNoteCaptureClient) CreateBulk(builders ...*DeliveryNoteCaptureCreate) *DeliveryNoteCaptureCreateBulk {
	return &DeliveryNoteCaptureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeliveryNoteCaptureClient) MapCreateBulk(slice any, setFunc func(*DeliveryNoteCaptureCreate, int)) *DeliveryNoteCaptureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeliveryNoteCaptureCreateBulk{err: fmt.Errorf("calling to DeliveryNoteCaptureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeliveryNoteCaptureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeliveryNoteCaptureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeliveryNoteCapture.
func (c *DeliveryNoteCaptureClient) Update() *DeliveryNoteCaptureUpdate {
	mutation := newDeliveryNoteCaptureMutation(c.config, OpUpdate)
	return &DeliveryNoteCaptureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeliveryNoteCaptureClient) UpdateOne(_m *DeliveryNoteCapture) *DeliveryNoteCaptureUpdateOne {
	mutation := newDeliveryNoteCaptureMutation(c.config, OpUpdateOne, withDeliveryNoteCapture(_m))
	return &DeliveryNoteCaptureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeliveryNoteCaptureClient) UpdateOneID(id uuid.UUID) *DeliveryNoteCaptureUpdateOne {
	mutation := newDeliveryNoteCaptureMutation(c.config, OpUpdateOne, withDeliveryNoteCaptureID(id))
	return &DeliveryNoteCaptureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeliveryNoteCapture.
func (c *DeliveryNoteCaptureClient) Delete() *DeliveryNoteCaptureDelete {
	mutation := newDeliveryNoteCaptureMutation(c.config, OpDelete)
	return &DeliveryNoteCaptureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeliveryNoteCaptureClient) DeleteOne(_m *DeliveryNoteCapture) *DeliveryNoteCaptureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeliveryNoteCaptureClient) DeleteOneID(id uuid.UUID) *DeliveryNoteCaptureDeleteOne {
	builder := c.Delete().Where(deliverynotecapture.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeliveryNoteCaptureDeleteOne{builder}
}

// Query returns a query builder for DeliveryNoteCapture.
func (c *DeliveryNoteCaptureClient) Query() *DeliveryNoteCaptureQuery {
	return &DeliveryNoteCaptureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeliveryNoteCapture},
		inters: c.Interceptors(),
	}
}

// Get returns a DeliveryNoteCapture entity by its id.
func (c *DeliveryNoteCaptureClient) Get(ctx context.Context, id uuid.UUID) (*DeliveryNoteCapture, error) {
	return c.Query().Where(deliverynotecapture.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeliveryNoteCaptureClient) GetX(ctx context.Context, id uuid.UUID) *DeliveryNoteCapture {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeliveryNoteCaptureClient) Hooks() []Hook {
	return c.hooks.DeliveryNoteCapture
}

// Interceptors returns the client interceptors.
func (c *DeliveryNoteCaptureClient) Interceptors() []Interceptor {
	return c.inters.DeliveryNoteCapture
}

func (c *DeliveryNoteCaptureClient) mutate(ctx context.Context, m *DeliveryNoteCaptureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeliveryNoteCaptureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeliveryNoteCaptureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeliveryNoteCaptureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeliveryNoteCaptureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeliveryNoteCapture mutation op: %q", m.Op())
	}
}

// OCRSettingClient is a client for the OCRSetting schema.
type OCRSettingClient struct {
	config
}

// NewOCRSettingClient returns a client for the OCRSetting from the given config.
func NewOCRSettingClient(c config) *OCRSettingClient {
	return &OCRSettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ocrsetting.Hooks(f(g(h())))`.
func (c *OCRSettingClient) Use(hooks ...Hook) {
	c.hooks.OCRSetting = append(c.hooks.OCRSetting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ocrsetting.Intercept(f(g(h())))`.
func (c *OCRSettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.OCRSetting = append(c.inters.OCRSetting, interceptors...)
}

// Create returns a builder for creating a OCRSetting entity.
func (c *OCRSettingClient) Create() *OCRSettingCreate {
	mutation := newOCRSettingMutation(c.config, OpCreate)
	return &OCRSettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OCRSetting entities.
func (c *OCRSettingClient) CreateBulk(builders ...*OCRSettingCreate) *OCRSettingCreateBulk {
	return &OCRSettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OCRSettingClient) MapCreateBulk(slice any, setFunc func(*OCRSettingCreate, int)) *OCRSettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OCRSettingCreateBulk{err: fmt.Errorf("calling to OCRSettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OCRSettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OCRSettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OCRSetting.
func (c *OCRSettingClient) Update() *OCRSettingUpdate {
	mutation := newOCRSettingMutation(c.config, OpUpdate)
	return &OCRSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OCRSettingClient) UpdateOne(_m *OCRSetting) *OCRSettingUpdateOne {
	mutation := newOCRSettingMutation(c.config, OpUpdateOne, withOCRSetting(_m))
	return &OCRSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OCRSettingClient) UpdateOneID(id uuid.UUID) *OCRSettingUpdateOne {
	mutation := newOCRSettingMutation(c.config, OpUpdateOne, withOCRSettingID(id))
	return &OCRSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OCRSetting.
func (c *OCRSettingClient) Delete() *OCRSettingDelete {
	mutation := newOCRSettingMutation(c.config, OpDelete)
	return &OCRSettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OCRSettingClient) DeleteOne(_m *OCRSetting) *OCRSettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OCRSettingClient) DeleteOneID(id uuid.UUID) *OCRSettingDeleteOne {
	builder := c.Delete().Where(ocrsetting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OCRSettingDeleteOne{builder}
}

// Query returns a query builder for OCRSetting.
func (c *OCRSettingClient) Query() *OCRSettingQuery {
	return &OCRSettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOCRSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a OCRSetting entity by its id.
func (c *OCRSettingClient) Get(ctx context.Context, id uuid.UUID) (*OCRSetting, error) {
	return c.Query().Where(ocrsetting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OCRSettingClient) GetX(ctx context.Context, id uuid.UUID) *OCRSetting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OCRSettingClient) Hooks() []Hook {
	return c.hooks.OCRSetting
}

// Interceptors returns the client interceptors.
func (c *OCRSettingClient) Interceptors() []Interceptor {
	return c.inters.OCRSetting
}

func (c *OCRSettingClient) mutate(ctx context.Context, m *OCRSettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OCRSettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OCRSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OCRSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OCRSettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OCRSetting mutation op: %q", m.Op())
	}
}

// TollClient is a client for the Toll schema.
type TollClient struct {
	config
}

// NewTollClient returns a client for the Toll from the given config.
func NewTollClient(c config) *TollClient {
	return &TollClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toll.Hooks(f(g(h())))`.
func (c *TollClient) Use(hooks ...Hook) {
	c.hooks.Toll = append(c.hooks.Toll, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toll.Intercept(f(g(h())))`.
func (c *TollClient) Intercept(interceptors ...Interceptor) {
	c.inters.Toll = append(c.inters.Toll, interceptors...)
}

// Create returns a builder for creating a Toll entity.
func (c *TollClient) Create() *TollCreate {
	mutation := newTollMutation(c.config, OpCreate)
	return &TollCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Toll entities.
func (c *TollClient) CreateBulk(builders ...*TollCreate) *TollCreateBulk {
	return &TollCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TollClient) MapCreateBulk(slice any, setFunc func(*TollCreate, int)) *TollCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TollCreateBulk{err: fmt.Errorf("calling to TollClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TollCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TollCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Toll.
func (c *TollClient) Update() *TollUpdate {
	mutation := newTollMutation(c.config, OpUpdate)
	return &TollUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TollClient) UpdateOne(_m *Toll) *TollUpdateOne {
	mutation := newTollMutation(c.config, OpUpdateOne, withToll(_m))
	return &TollUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TollClient) UpdateOneID(id uuid.UUID) *TollUpdateOne {
	mutation := newTollMutation(c.config, OpUpdateOne, withTollID(id))
	return &TollUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Toll.
func (c *TollClient) Delete() *TollDelete {
	mutation := newTollMutation(c.config, OpDelete)
	return &TollDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TollClient) DeleteOne(_m *Toll) *TollDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TollClient) DeleteOneID(id uuid.UUID) *TollDeleteOne {
	builder := c.Delete().Where(toll.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TollDeleteOne{builder}
}

// Query returns a query builder for Toll.
func (c *TollClient) Query() *TollQuery {
	return &TollQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToll},
		inters: c.Interceptors(),
	}
}

// Get returns a Toll entity by its id.
func (c *TollClient) Get(ctx context.Context, id uuid.UUID) (*Toll, error) {
	return c.Query().Where(toll.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TollClient) GetX(ctx context.Context, id uuid.UUID) *Toll {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TollClient) Hooks() []Hook {
	return c.hooks.Toll
}

// Interceptors returns the client interceptors.
func (c *TollClient) Interceptors() []Interceptor {
	return c.inters.Toll
}

func (c *TollClient) mutate(ctx context.Context, m *TollMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TollCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TollUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TollUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TollDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Toll mutation op: %q", m.Op())
	}
}

// TollCaptureClient is a client for the TollCapture schema.
type TollCaptureClient struct {
	config
}

// NewTollCaptureClient returns a client for the TollCapture from the given config.
func NewTollCaptureClient(c config) *TollCaptureClient {
	return &TollCaptureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tollcapture.Hooks(f(g(h())))`.
func (c *TollCaptureClient) Use(hooks ...Hook) {
	c.hooks.TollCapture = append(c.hooks.TollCapture, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tollcapture.Intercept(f(g(h())))`.
func (c *TollCaptureClient) Intercept(interceptors ...Interceptor) {
	c.inters.TollCapture = append(c.inters.TollCapture, interceptors...)
}

// Create returns a builder for creating a TollCapture entity.
func (c *TollCaptureClient) Create() *TollCaptureCreate {
	mutation := newTollCaptureMutation(c.config, OpCreate)
	return &TollCaptureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TollCapture entities.
func (c *TollCaptureClient) CreateBulk(builders ...*TollCaptureCreate) *TollCaptureCreateBulk {
	return &TollCaptureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TollCaptureClient) MapCreateBulk(slice any, setFunc func(*TollCaptureCreate, int)) *TollCaptureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TollCaptureCreateBulk{err: fmt.Errorf("calling to TollCaptureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TollCaptureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TollCaptureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TollCapture.
func (c *TollCaptureClient) Update() *TollCaptureUpdate {
	mutation := newTollCaptureMutation(c.config, OpUpdate)
	return &TollCaptureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TollCaptureClient) UpdateOne(_m *TollCapture) *TollCaptureUpdateOne {
	mutation := newTollCaptureMutation(c.config, OpUpdateOne, withTollCapture(_m))
	return &TollCaptureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TollCaptureClient) UpdateOneID(id uuid.UUID) *TollCaptureUpdateOne {
	mutation := newTollCaptureMutation(c.config, OpUpdateOne, withTollCaptureID(id))
	return &TollCaptureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TollCapture.
func (c *TollCaptureClient) Delete() *TollCaptureDelete {
	mutation := newTollCaptureMutation(c.config, OpDelete)
	return &TollCaptureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TollCaptureClient) DeleteOne(_m *TollCapture) *TollCaptureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TollCaptureClient) DeleteOneID(id uuid.UUID) *TollCaptureDeleteOne {
	builder := c.Delete().Where(tollcapture.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TollCaptureDeleteOne{builder}
}

// Query returns a query builder for TollCapture.
func (c *TollCaptureClient) Query() *TollCaptureQuery {
	return &TollCaptureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTollCapture},
		inters: c.Interceptors(),
	}
}

// Get returns a TollCapture entity by its id.
func (c *TollCaptureClient) Get(ctx context.Context, id uuid.UUID) (*TollCapture, error) {
	return c.Query().Where(tollcapture.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TollCaptureClient) GetX(ctx context.Context, id uuid.UUID) *TollCapture {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TollCaptureClient) Hooks() []Hook {
	return c.hooks.TollCapture
}

// Interceptors returns the client interceptors.
func (c *TollCaptureClient) Interceptors() []Interceptor {
	return c.inters.TollCapture
}

func (c *TollCaptureClient) mutate(ctx context.Context, m *TollCaptureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TollCaptureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TollCaptureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TollCaptureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TollCaptureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TollCapture mutation op: %q", m.Op())
	}
}

// TollPageResultClient is a client for the TollPageResult schema.
type TollPageResultClient struct {
	config
}

// NewTollPageResultClient returns a client for the TollPageResult from the given config.
func NewTollPageResultClient(c config) *TollPageResultClient {
	return &TollPageResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tollpageresult.Hooks(f(g(h())))`.
func (c *TollPageResultClient) Use(hooks ...Hook) {
	c.hooks.TollPageResult = append(c.hooks.TollPageResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tollpageresult.Intercept(f(g(h())))`.
func (c *TollPageResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.TollPageResult = append(c.inters.TollPageResult, interceptors...)
}

// Create returns a builder for creating a TollPageResult entity.
func (c *TollPageResultClient) Create() *TollPageResultCreate {
	mutation := newTollPageResultMutation(c.config, OpCreate)
	return &TollPageResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TollPageResult entities.
func (c *TollPageResultClient) CreateBulk(builders ...*TollPageResultCreate) *TollPageResultCreateBulk {
	return &TollPageResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TollPageResultClient) MapCreateBulk(slice any, setFunc func(*TollPageResultCreate, int)) *TollPageResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TollPageResultCreateBulk{err: fmt.Errorf("calling to TollPageResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TollPageResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TollPageResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TollPageResult.
func (c *TollPageResultClient) Update() *TollPageResultUpdate {
	mutation := newTollPageResultMutation(c.config, OpUpdate)
	return &TollPageResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TollPageResultClient) UpdateOne(_m *TollPageResult) *TollPageResultUpdateOne {
	mutation := newTollPageResultMutation(c.config, OpUpdateOne, withTollPageResult(_m))
	return &TollPageResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TollPageResultClient) UpdateOneID(id uuid.UUID) *TollPageResultUpdateOne {
	mutation := newTollPageResultMutation(c.config, OpUpdateOne, withTollPageResultID(id))
	return &TollPageResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TollPageResult.
func (c *TollPageResultClient) Delete() *TollPageResultDelete {
	mutation := newTollPageResultMutation(c.config, OpDelete)
	return &TollPageResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TollPageResultClient) DeleteOne(_m *TollPageResult) *TollPageResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TollPageResultClient) DeleteOneID(id uuid.UUID) *TollPageResultDeleteOne {
	builder := c.Delete().Where(tollpageresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TollPageResultDeleteOne{builder}
}

// Query returns a query builder for TollPageResult.
func (c *TollPageResultClient) Query() *TollPageResultQuery {
	return &TollPageResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTollPageResult},
		inters: c.Interceptors(),
	}
}

// Get returns a TollPageResult entity by its id.
func (c *TollPageResultClient) Get(ctx context.Context, id uuid.UUID) (*TollPageResult, error) {
	return c.Query().Where(tollpageresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TollPageResultClient) GetX(ctx context.Context, id uuid.UUID) *TollPageResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TollPageResultClient) Hooks() []Hook {
	return c.hooks.TollPageResult
}

// Interceptors returns the client interceptors.
func (c *TollPageResultClient) Interceptors() []Interceptor {
	return c.inters.TollPageResult
}

func (c *TollPageResultClient) mutate(ctx context.Context, m *TollPageResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TollPageResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TollPageResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TollPageResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TollPageResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TollPageResult mutation op: %q", m.Op())
	}
}

// TollsStagingClient is a client for the TollsStaging schema.
type TollsStagingClient struct {
	config
}

// NewTollsStagingClient returns a client for the TollsStaging from the given config.
func NewTollsStagingClient(c config) *TollsStagingClient {
	return &TollsStagingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tollsstaging.Hooks(f(g(h())))`.
func (c *TollsStagingClient) Use(hooks ...Hook) {
	c.hooks.TollsStaging = append(c.hooks.TollsStaging, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tollsstaging.Intercept(f(g(h())))`.
func (c *TollsStagingClient) Intercept(interceptors ...Interceptor) {
	c.inters.TollsStaging = append(c.inters.TollsStaging, interceptors...)
}

// Create returns a builder for creating a TollsStaging entity.
func (c *TollsStagingClient) Create() *TollsStagingCreate {
	mutation := newTollsStagingMutation(c.config, OpCreate)
	return &TollsStagingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TollsStaging entities.
func (c *TollsStagingClient) CreateBulk(builders ...*TollsStagingCreate) *TollsStagingCreateBulk {
	return &TollsStagingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TollsStagingClient) MapCreateBulk(slice any, setFunc func(*TollsStagingCreate, int)) *TollsStagingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TollsStagingCreateBulk{err: fmt.Errorf("calling to TollsStagingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TollsStagingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TollsStagingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TollsStaging.
func (c *TollsStagingClient) Update() *TollsStagingUpdate {
	mutation := newTollsStagingMutation(c.config, OpUpdate)
	return &TollsStagingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TollsStagingClient) UpdateOne(_m *TollsStaging) *TollsStagingUpdateOne {
	mutation := newTollsStagingMutation(c.config, OpUpdateOne, withTollsStaging(_m))
	return &TollsStagingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TollsStagingClient) UpdateOneID(id uuid.UUID) *TollsStagingUpdateOne {
	mutation := newTollsStagingMutation(c.config, OpUpdateOne, withTollsStagingID(id))
	return &TollsStagingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TollsStaging.
func (c *TollsStagingClient) Delete() *TollsStagingDelete {
	mutation := newTollsStagingMutation(c.config, OpDelete)
	return &TollsStagingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TollsStagingClient) DeleteOne(_m *TollsStaging) *TollsStagingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TollsStagingClient) DeleteOneID(id uuid.UUID) *TollsStagingDeleteOne {
	builder := c.Delete().Where(tollsstaging.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TollsStagingDeleteOne{builder}
}

// Query returns a query builder for TollsStaging.
func (c *TollsStagingClient) Query() *TollsStagingQuery {
	return &TollsStagingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTollsStaging},
		inters: c.Interceptors(),
	}
}

// Get returns a TollsStaging entity by its id.
func (c *TollsStagingClient) Get(ctx context.Context, id uuid.UUID) (*TollsStaging, error) {
	return c.Query().Where(tollsstaging.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TollsStagingClient) GetX(ctx context.Context, id uuid.UUID) *TollsStaging {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TollsStagingClient) Hooks() []Hook {
	return c.hooks.TollsStaging
}

// Interceptors returns the client interceptors.
func (c *TollsStagingClient) Interceptors() []Interceptor {
	return c.inters.TollsStaging
}

func (c *TollsStagingClient) mutate(ctx context.Context, m *TollsStagingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TollsStagingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TollsStagingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TollsStagingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TollsStagingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TollsStaging mutation op: %q", m.Op())
	}
}

// TransportationAssetClient is a client for the TransportationAsset schema.
type TransportationAssetClient struct {
	config
}

// NewTransportationAssetClient returns a client for the TransportationAsset from the given config.
func NewTransportationAssetClient(c config) *TransportationAssetClient {
	return &TransportationAssetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transportationasset.Hooks(f(g(h())))`.
func (c *TransportationAssetClient) Use(hooks ...Hook) {
	c.hooks.TransportationAsset = append(c.hooks.TransportationAsset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transportationasset.Intercept(f(g(h())))`.
func (c *TransportationAssetClient) Intercept(interceptors ...Interceptor) {
	c.inters.TransportationAsset = append(c.inters.TransportationAsset, interceptors...)
}

// Create returns a builder for creating a TransportationAsset entity.
func (c *TransportationAssetClient) Create() *TransportationAssetCreate {
	mutation := newTransportationAssetMutation(c.config, OpCreate)
	return &TransportationAssetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TransportationAsset entities.
func (c *TransportationAssetClient) CreateBulk(builders ...*TransportationAssetCreate) *TransportationAssetCreateBulk {
	return &TransportationAssetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TransportationAssetClient) MapCreateBulk(slice any, setFunc func(*TransportationAssetCreate, int)) *TransportationAssetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TransportationAssetCreateBulk{err: fmt.Errorf("calling to TransportationAssetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TransportationAssetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TransportationAssetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TransportationAsset.
func (c *TransportationAssetClient) Update() *TransportationAssetUpdate {
	mutation := newTransportationAssetMutation(c.config, OpUpdate)
	return &TransportationAssetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TransportationAssetClient) UpdateOne(_m *TransportationAsset) *TransportationAssetUpdateOne {
	mutation := newTransportationAssetMutation(c.config, OpUpdateOne, withTransportationAsset(_m))
	return &TransportationAssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TransportationAssetClient) UpdateOneID(id uuid.UUID) *TransportationAssetUpdateOne {
	mutation := newTransportationAssetMutation(c.config, OpUpdateOne, withTransportationAssetID(id))
	return &TransportationAssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TransportationAsset.
func (c *TransportationAssetClient) Delete() *TransportationAssetDelete {
	mutation := newTransportationAssetMutation(c.config, OpDelete)
	return &TransportationAssetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TransportationAssetClient) DeleteOne(_m *TransportationAsset) *TransportationAssetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TransportationAssetClient) DeleteOneID(id uuid.UUID) *TransportationAssetDeleteOne {
	builder := c.Delete().Where(transportationasset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TransportationAssetDeleteOne{builder}
}

// Query returns a query builder for TransportationAsset.
func (c *TransportationAssetClient) Query() *TransportationAssetQuery {
	return &TransportationAssetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTransportationAsset},
		inters: c.Interceptors(),
	}
}

// Get returns a TransportationAsset entity by its id.
func (c *TransportationAssetClient) Get(ctx context.Context, id uuid.UUID) (*TransportationAsset, error) {
	return c.Query().Where(transportationasset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TransportationAssetClient) GetX(ctx context.Context, id uuid.UUID) *TransportationAsset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TransportationAssetClient) Hooks() []Hook {
	return c.hooks.TransportationAsset
}

// Interceptors returns the client interceptors.
func (c *TransportationAssetClient) Interceptors() []Interceptor {
	return c.inters.TransportationAsset
}

func (c *TransportationAssetClient) mutate(ctx context.Context, m *TransportationAssetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TransportationAssetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TransportationAssetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TransportationAssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TransportationAssetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TransportationAsset mutation op: %q", m.Op())
	}
}

// TripClient is a client for the Trip schema.
type TripClient struct {
	config
}

// NewTripClient returns a client for the Trip from the given config.
func NewTripClient(c config) *TripClient {
	return &TripClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trip.Hooks(f(g(h())))`.
func (c *TripClient) Use(hooks ...Hook) {
	c.hooks.Trip = append(c.hooks.Trip, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trip.Intercept(f(g(h())))`.
func (c *TripClient) Intercept(interceptors ...Interceptor) {
	c.inters.Trip = append(c.inters.Trip, interceptors...)
}

// Create returns a builder for creating a Trip entity.
func (c *TripClient) Create() *TripCreate {
	mutation := newTripMutation(c.config, OpCreate)
	return &TripCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Trip entities.
func (c *TripClient) CreateBulk(builders ...*TripCreate) *TripCreateBulk {
	return &TripCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TripClient) MapCreateBulk(slice any, setFunc func(*TripCreate, int)) *TripCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TripCreateBulk{err: fmt.Errorf("calling to TripClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TripCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TripCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Trip.
func (c *TripClient) Update() *TripUpdate {
	mutation := newTripMutation(c.config, OpUpdate)
	return &TripUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TripClient) UpdateOne(_m *Trip) *TripUpdateOne {
	mutation := newTripMutation(c.config, OpUpdateOne, withTrip(_m))
	return &TripUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TripClient) UpdateOneID(id uuid.UUID) *TripUpdateOne {
	mutation := newTripMutation(c.config, OpUpdateOne, withTripID(id))
	return &TripUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Trip.
func (c *TripClient) Delete() *TripDelete {
	mutation := newTripMutation(c.config, OpDelete)
	return &TripDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TripClient) DeleteOne(_m *Trip) *TripDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TripClient) DeleteOneID(id uuid.UUID) *TripDeleteOne {
	builder := c.Delete().Where(trip.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TripDeleteOne{builder}
}

// Query returns a query builder for Trip.
func (c *TripClient) Query() *TripQuery {
	return &TripQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrip},
		inters: c.Interceptors(),
	}
}

// Get returns a Trip entity by its id.
func (c *TripClient) Get(ctx context.Context, id uuid.UUID) (*Trip, error) {
	return c.Query().Where(trip.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TripClient) GetX(ctx context.Context, id uuid.UUID) *Trip {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TripClient) Hooks() []Hook {
	return c.hooks.Trip
}

// Interceptors returns the client interceptors.
func (c *TripClient) Interceptors() []Interceptor {
	return c.inters.Trip
}

func (c *TripClient) mutate(ctx context.Context, m *TripMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TripCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TripUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TripUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TripDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Trip mutation op: %q", m.Op())
	}
}

// TripDropClient is a client for the TripDrop schema.
type TripDropClient struct {
	config
}

// NewTripDropClient returns a client for the TripDrop from the given config.
func NewTripDropClient(c config) *TripDropClient {
	return &TripDropClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tripdrop.Hooks(f(g(h())))`.
func (c *TripDropClient) Use(hooks ...Hook) {
	c.hooks.TripDrop = append(c.hooks.TripDrop, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tripdrop.Intercept(f(g(h())))`.
func (c *TripDropClient) Intercept(interceptors ...Interceptor) {
	c.inters.TripDrop = append(c.inters.TripDrop, interceptors...)
}

// Create returns a builder for creating a TripDrop entity.
func (c *TripDropClient) Create() *TripDropCreate {
	mutation := newTripDropMutation(c.config, OpCreate)
	return &TripDropCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TripDrop entities.
func (c *TripDropClient) CreateBulk(builders ...*TripDropCreate) *TripDropCreateBulk {
	return &TripDropCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TripDropClient) MapCreateBulk(slice any, setFunc func(*TripDropCreate, int)) *TripDropCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TripDropCreateBulk{err: fmt.Errorf("calling to TripDropClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TripDropCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TripDropCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TripDrop.
func (c *TripDropClient) Update() *TripDropUpdate {
	mutation := newTripDropMutation(c.config, OpUpdate)
	return &TripDropUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TripDropClient) UpdateOne(_m *TripDrop) *TripDropUpdateOne {
	mutation := newTripDropMutation(c.config, OpUpdateOne, withTripDrop(_m))
	return &TripDropUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TripDropClient) UpdateOneID(id uuid.UUID) *TripDropUpdateOne {
	mutation := newTripDropMutation(c.config, OpUpdateOne, withTripDropID(id))
	return &TripDropUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TripDrop.
func (c *TripDropClient) Delete() *TripDropDelete {
	mutation := newTripDropMutation(c.config, OpDelete)
	return &TripDropDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TripDropClient) DeleteOne(_m *TripDrop) *TripDropDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TripDropClient) DeleteOneID(id uuid.UUID) *TripDropDeleteOne {
	builder := c.Delete().Where(tripdrop.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TripDropDeleteOne{builder}
}

// Query returns a query builder for TripDrop.
func (c *TripDropClient) Query() *TripDropQuery {
	return &TripDropQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTripDrop},
		inters: c.Interceptors(),
	}
}

// Get returns a TripDrop entity by its id.
func (c *TripDropClient) Get(ctx context.Context, id uuid.UUID) (*TripDrop, error) {
	return c.Query().Where(tripdrop.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TripDropClient) GetX(ctx context.Context, id uuid.UUID) *TripDrop {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TripDropClient) Hooks() []Hook {
	return c.hooks.TripDrop
}

// Interceptors returns the client interceptors.
func (c *TripDropClient) Interceptors() []Interceptor {
	return c.inters.TripDrop
}

func (c *TripDropClient) mutate(ctx context.Context, m *TripDropMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TripDropCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TripDropUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TripDropUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TripDropDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TripDrop mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DeliveryNoteCapture, OCRSetting, Toll, TollCapture, TollPageResult,
		TollsStaging, TransportationAsset, Trip, TripDrop []ent.Hook
	}
	inters struct {
		DeliveryNoteCapture, OCRSetting, Toll, TollCapture, TollPageResult,
		TollsStaging, TransportationAsset, Trip, TripDrop []ent.Interceptor
	}
)
