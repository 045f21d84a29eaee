// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/deliverynotecapture"
	"github.com/fleetware/transport-ops/gen/ent/ocrsetting"
	"github.com/fleetware/transport-ops/gen/ent/predicate"
	"github.com/fleetware/transport-ops/gen/ent/toll"
	"github.com/fleetware/transport-ops/gen/ent/tollcapture"
	"github.com/fleetware/transport-ops/gen/ent/tollpageresult"
	"github.com/fleetware/transport-ops/gen/ent/tollsstaging"
	"github.com/fleetware/transport-ops/gen/ent/transportationasset"
	"github.com/fleetware/transport-ops/gen/ent/trip"
	"github.com/fleetware/transport-ops/gen/ent/tripdrop"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDeliveryNoteCapture = "DeliveryNoteCapture"
	TypeOCRSetting          = "OCRSetting"
	TypeToll                = "Toll"
	TypeTollCapture         = "TollCapture"
	TypeTollPageResult      = "TollPageResult"
	TypeTollsStaging        = "TollsStaging"
	TypeTransportationAsset = "TransportationAsset"
	TypeTrip                = "Trip"
	TypeTripDrop            = "TripDrop"
)

// DeliveryNoteCaptureMutation represents an operation that mutates the DeliveryNoteCapture nodes in the graph.
type DeliveryNoteCaptureMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	driver_id            *uuid.UUID
	file_path            *string
	optimized_path       *string
	delivery_note_number *string
	trip_id              *uuid.UUID
	status               *string
	error_message        *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*DeliveryNoteCapture, error)
	predicates           []predicate.DeliveryNoteCapture
}

var _ ent.Mutation = (*DeliveryNoteCaptureMutation)(nil)

// deliverynotecaptureOption allows management of the mutation configuration using functional options.
type deliverynotecaptureOption func(*DeliveryNoteCaptureMutation)

// newDeliveryNoteCaptureMutation creates new mutation for the DeliveryNoteCapture entity.
func newDeliveryNoteCaptureMutation(c config, op Op, opts ...deliverynotecaptureOption) *DeliveryNoteCaptureMutation {
	m := &DeliveryNoteCaptureMutation{
		config:        c,
		op:            op,
		typ:           TypeDeliveryNoteCapture,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeliveryNoteCaptureID sets the ID field of the mutation.
func withDeliveryNoteCaptureID(id uuid.UUID) deliverynotecaptureOption {
	return func(m *DeliveryNoteCaptureMutation) {
		var (
			err   error
			once  sync.Once
			value *DeliveryNoteCapture
		)
		m.oldValue = func(ctx context.Context) (*DeliveryNoteCapture, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeliveryNoteCapture.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeliveryNoteCapture sets the old DeliveryNoteCapture of the mutation.
func withDeliveryNoteCapture(node *DeliveryNoteCapture) deliverynotecaptureOption {
	return func(m *DeliveryNoteCaptureMutation) {
		m.oldValue = func(context.Context) (*DeliveryNoteCapture, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeliveryNoteCaptureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeliveryNoteCaptureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeliveryNoteCapture entities.
func (m *DeliveryNoteCaptureMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeliveryNoteCaptureMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeliveryNoteCaptureMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeliveryNoteCapture.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDriverID sets the "driver_id" field.
func (m *DeliveryNoteCaptureMutation) SetDriverID(u uuid.UUID) {
	m.driver_id = &u
}

// DriverID returns the value of the "driver_id" field in the mutation.
func (m *DeliveryNoteCaptureMutation) DriverID() (r uuid.UUID, exists bool) {
	v := m.driver_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDriverID returns the old "driver_id" field's value of the DeliveryNoteCapture entity.
// If the DeliveryNoteCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryNoteCaptureMutation) OldDriverID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDriverID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDriverID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDriverID: %w", err)
	}
	return oldValue.DriverID, nil
}

// ResetDriverID resets all changes to the "driver_id" field.
func (m *DeliveryNoteCaptureMutation) ResetDriverID() {
	m.driver_id = nil
}

// SetFilePath sets the "file_path" field.
func (m *DeliveryNoteCaptureMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *DeliveryNoteCaptureMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the DeliveryNoteCapture entity.
// If the DeliveryNoteCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryNoteCaptureMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *DeliveryNoteCaptureMutation) ResetFilePath() {
	m.file_path = nil
}

// SetOptimizedPath sets the "optimized_path" field.
func (m *DeliveryNoteCaptureMutation) SetOptimizedPath(s string) {
	m.optimized_path = &s
}

// OptimizedPath returns the value of the "optimized_path" field in the mutation.
func (m *DeliveryNoteCaptureMutation) OptimizedPath() (r string, exists bool) {
	v := m.optimized_path
	if v == nil {
		return
	}
	return *v, true
}

// OldOptimizedPath returns the old "optimized_path" field's value of the DeliveryNoteCapture entity.
// If the DeliveryNoteCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryNoteCaptureMutation) OldOptimizedPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptimizedPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptimizedPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptimizedPath: %w", err)
	}
	return oldValue.OptimizedPath, nil
}

// ClearOptimizedPath clears the value of the "optimized_path" field.
func (m *DeliveryNoteCaptureMutation) ClearOptimizedPath() {
	m.optimized_path = nil
	m.clearedFields[deliverynotecapture.FieldOptimizedPath] = struct{}{}
}

// OptimizedPathCleared returns if the "optimized_path" field was cleared in this mutation.
func (m *DeliveryNoteCaptureMutation) OptimizedPathCleared() bool {
	_, ok := m.clearedFields[deliverynotecapture.FieldOptimizedPath]
	return ok
}

// ResetOptimizedPath resets all changes to the "optimized_path" field.
func (m *DeliveryNoteCaptureMutation) ResetOptimizedPath() {
	m.optimized_path = nil
	delete(m.clearedFields, deliverynotecapture.FieldOptimizedPath)
}

// SetDeliveryNoteNumber sets the "delivery_note_number" field.
func (m *DeliveryNoteCaptureMutation) SetDeliveryNoteNumber(s string) {
	m.delivery_note_number = &s
}

// DeliveryNoteNumber returns the value of the "delivery_note_number" field in the mutation.
func (m *DeliveryNoteCaptureMutation) DeliveryNoteNumber() (r string, exists bool) {
	v := m.delivery_note_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryNoteNumber returns the old "delivery_note_number" field's value of the DeliveryNoteCapture entity.
// If the DeliveryNoteCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryNoteCaptureMutation) OldDeliveryNoteNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryNoteNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryNoteNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryNoteNumber: %w", err)
	}
	return oldValue.DeliveryNoteNumber, nil
}

// ClearDeliveryNoteNumber clears the value of the "delivery_note_number" field.
func (m *DeliveryNoteCaptureMutation) ClearDeliveryNoteNumber() {
	m.delivery_note_number = nil
	m.clearedFields[deliverynotecapture.FieldDeliveryNoteNumber] = struct{}{}
}

// DeliveryNoteNumberCleared returns if the "delivery_note_number" field was cleared in this mutation.
func (m *DeliveryNoteCaptureMutation) DeliveryNoteNumberCleared() bool {
	_, ok := m.clearedFields[deliverynotecapture.FieldDeliveryNoteNumber]
	return ok
}

// ResetDeliveryNoteNumber resets all changes to the "delivery_note_number" field.
func (m *DeliveryNoteCaptureMutation) ResetDeliveryNoteNumber() {
	m.delivery_note_number = nil
	delete(m.clearedFields, deliverynotecapture.FieldDeliveryNoteNumber)
}

// SetTripID sets the "trip_id" field.
func (m *DeliveryNoteCaptureMutation) SetTripID(u uuid.UUID) {
	m.trip_id = &u
}

// TripID returns the value of the "trip_id" field in the mutation.
func (m *DeliveryNoteCaptureMutation) TripID() (r uuid.UUID, exists bool) {
	v := m.trip_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTripID returns the old "trip_id" field's value of the DeliveryNoteCapture entity.
// If the DeliveryNoteCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryNoteCaptureMutation) OldTripID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTripID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTripID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTripID: %w", err)
	}
	return oldValue.TripID, nil
}

// ClearTripID clears the value of the "trip_id" field.
func (m *DeliveryNoteCaptureMutation) ClearTripID() {
	m.trip_id = nil
	m.clearedFields[deliverynotecapture.FieldTripID] = struct{}{}
}

// TripIDCleared returns if the "trip_id" field was cleared in this mutation.
func (m *DeliveryNoteCaptureMutation) TripIDCleared() bool {
	_, ok := m.clearedFields[deliverynotecapture.FieldTripID]
	return ok
}

// ResetTripID resets all changes to the "trip_id" field.
func (m *DeliveryNoteCaptureMutation) ResetTripID() {
	m.trip_id = nil
	delete(m.clearedFields, deliverynotecapture.FieldTripID)
}

// SetStatus sets the "status" field.
func (m *DeliveryNoteCaptureMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DeliveryNoteCaptureMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DeliveryNoteCapture entity.
// If the DeliveryNoteCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryNoteCaptureMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DeliveryNoteCaptureMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DeliveryNoteCaptureMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DeliveryNoteCaptureMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DeliveryNoteCapture entity.
// If the DeliveryNoteCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryNoteCaptureMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DeliveryNoteCaptureMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[deliverynotecapture.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DeliveryNoteCaptureMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[deliverynotecapture.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DeliveryNoteCaptureMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, deliverynotecapture.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *DeliveryNoteCaptureMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeliveryNoteCaptureMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DeliveryNoteCapture entity.
// If the DeliveryNoteCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryNoteCaptureMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *DeliveryNoteCaptureMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DeliveryNoteCaptureMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DeliveryNoteCaptureMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DeliveryNoteCapture entity.
// If the DeliveryNoteCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryNoteCaptureMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DeliveryNoteCaptureMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DeliveryNoteCaptureMutation builder.
func (m *DeliveryNoteCaptureMutation) Where(ps ...predicate.DeliveryNoteCapture) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeliveryNoteCaptureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeliveryNoteCaptureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeliveryNoteCapture, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeliveryNoteCaptureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeliveryNoteCaptureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeliveryNoteCapture).
func (m *DeliveryNoteCaptureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeliveryNoteCaptureMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.driver_id != nil {
		fields = append(fields, deliverynotecapture.FieldDriverID)
	}
	if m.file_path != nil {
		fields = append(fields, deliverynotecapture.FieldFilePath)
	}
	if m.optimized_path != nil {
		fields = append(fields, deliverynotecapture.FieldOptimizedPath)
	}
	if m.delivery_note_number != nil {
		fields = append(fields, deliverynotecapture.FieldDeliveryNoteNumber)
	}
	if m.trip_id != nil {
		fields = append(fields, deliverynotecapture.FieldTripID)
	}
	if m.status != nil {
		fields = append(fields, deliverynotecapture.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, deliverynotecapture.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, deliverynotecapture.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, deliverynotecapture.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeliveryNoteCaptureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deliverynotecapture.FieldDriverID:
		return m.DriverID()
	case deliverynotecapture.FieldFilePath:
		return m.FilePath()
	case deliverynotecapture.FieldOptimizedPath:
		return m.OptimizedPath()
	case deliverynotecapture.FieldDeliveryNoteNumber:
		return m.DeliveryNoteNumber()
	case deliverynotecapture.FieldTripID:
		return m.TripID()
	case deliverynotecapture.FieldStatus:
		return m.Status()
	case deliverynotecapture.FieldErrorMessage:
		return m.ErrorMessage()
	case deliverynotecapture.FieldCreatedAt:
		return m.CreatedAt()
	case deliverynotecapture.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeliveryNoteCaptureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deliverynotecapture.FieldDriverID:
		return m.OldDriverID(ctx)
	case deliverynotecapture.FieldFilePath:
		return m.OldFilePath(ctx)
	case deliverynotecapture.FieldOptimizedPath:
		return m.OldOptimizedPath(ctx)
	case deliverynotecapture.FieldDeliveryNoteNumber:
		return m.OldDeliveryNoteNumber(ctx)
	case deliverynotecapture.FieldTripID:
		return m.OldTripID(ctx)
	case deliverynotecapture.FieldStatus:
		return m.OldStatus(ctx)
	case deliverynotecapture.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case deliverynotecapture.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deliverynotecapture.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeliveryNoteCapture field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliveryNoteCaptureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deliverynotecapture.FieldDriverID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDriverID(v)
		return nil
	case deliverynotecapture.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case deliverynotecapture.FieldOptimizedPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptimizedPath(v)
		return nil
	case deliverynotecapture.FieldDeliveryNoteNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryNoteNumber(v)
		return nil
	case deliverynotecapture.FieldTripID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTripID(v)
		return nil
	case deliverynotecapture.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case deliverynotecapture.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case deliverynotecapture.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deliverynotecapture.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeliveryNoteCapture field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeliveryNoteCaptureMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeliveryNoteCaptureMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliveryNoteCaptureMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DeliveryNoteCapture numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeliveryNoteCaptureMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deliverynotecapture.FieldOptimizedPath) {
		fields = append(fields, deliverynotecapture.FieldOptimizedPath)
	}
	if m.FieldCleared(deliverynotecapture.FieldDeliveryNoteNumber) {
		fields = append(fields, deliverynotecapture.FieldDeliveryNoteNumber)
	}
	if m.FieldCleared(deliverynotecapture.FieldTripID) {
		fields = append(fields, deliverynotecapture.FieldTripID)
	}
	if m.FieldCleared(deliverynotecapture.FieldErrorMessage) {
		fields = append(fields, deliverynotecapture.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeliveryNoteCaptureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeliveryNoteCaptureMutation) ClearField(name string) error {
	switch name {
	case deliverynotecapture.FieldOptimizedPath:
		m.ClearOptimizedPath()
		return nil
	case deliverynotecapture.FieldDeliveryNoteNumber:
		m.ClearDeliveryNoteNumber()
		return nil
	case deliverynotecapture.FieldTripID:
		m.ClearTripID()
		return nil
	case deliverynotecapture.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown DeliveryNoteCapture nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeliveryNoteCaptureMutation) ResetField(name string) error {
	switch name {
	case deliverynotecapture.FieldDriverID:
		m.ResetDriverID()
		return nil
	case deliverynotecapture.FieldFilePath:
		m.ResetFilePath()
		return nil
	case deliverynotecapture.FieldOptimizedPath:
		m.ResetOptimizedPath()
		return nil
	case deliverynotecapture.FieldDeliveryNoteNumber:
		m.ResetDeliveryNoteNumber()
		return nil
	case deliverynotecapture.FieldTripID:
		m.ResetTripID()
		return nil
	case deliverynotecapture.FieldStatus:
		m.ResetStatus()
		return nil
	case deliverynotecapture.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case deliverynotecapture.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deliverynotecapture.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DeliveryNoteCapture field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeliveryNoteCaptureMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeliveryNoteCaptureMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeliveryNoteCaptureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeliveryNoteCaptureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeliveryNoteCaptureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeliveryNoteCaptureMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeliveryNoteCaptureMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeliveryNoteCapture unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeliveryNoteCaptureMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeliveryNoteCapture edge %s", name)
}

// OCRSettingMutation represents an operation that mutates the OCRSetting nodes in the graph.
type OCRSettingMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	function        *string
	prompt_template *string
	json_example    *string
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*OCRSetting, error)
	predicates      []predicate.OCRSetting
}

var _ ent.Mutation = (*OCRSettingMutation)(nil)

// ocrsettingOption allows management of the mutation configuration using functional options.
type ocrsettingOption func(*OCRSettingMutation)

// newOCRSettingMutation creates new mutation for the OCRSetting entity.
func newOCRSettingMutation(c config, op Op, opts ...ocrsettingOption) *OCRSettingMutation {
	m := &OCRSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeOCRSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOCRSettingID sets the ID field of the mutation.
func withOCRSettingID(id uuid.UUID) ocrsettingOption {
	return func(m *OCRSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *OCRSetting
		)
		m.oldValue = func(ctx context.Context) (*OCRSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OCRSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOCRSetting sets the old OCRSetting of the mutation.
func withOCRSetting(node *OCRSetting) ocrsettingOption {
	return func(m *OCRSettingMutation) {
		m.oldValue = func(context.Context) (*OCRSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OCRSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OCRSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OCRSetting entities.
func (m *OCRSettingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OCRSettingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OCRSettingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OCRSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFunction sets the "function" field.
func (m *OCRSettingMutation) SetFunction(s string) {
	m.function = &s
}

// Function returns the value of the "function" field in the mutation.
func (m *OCRSettingMutation) Function() (r string, exists bool) {
	v := m.function
	if v == nil {
		return
	}
	return *v, true
}

// OldFunction returns the old "function" field's value of the OCRSetting entity.
// If the OCRSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRSettingMutation) OldFunction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFunction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFunction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFunction: %w", err)
	}
	return oldValue.Function, nil
}

// ResetFunction resets all changes to the "function" field.
func (m *OCRSettingMutation) ResetFunction() {
	m.function = nil
}

// SetPromptTemplate sets the "prompt_template" field.
func (m *OCRSettingMutation) SetPromptTemplate(s string) {
	m.prompt_template = &s
}

// PromptTemplate returns the value of the "prompt_template" field in the mutation.
func (m *OCRSettingMutation) PromptTemplate() (r string, exists bool) {
	v := m.prompt_template
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTemplate returns the old "prompt_template" field's value of the OCRSetting entity.
// If the OCRSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRSettingMutation) OldPromptTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTemplate: %w", err)
	}
	return oldValue.PromptTemplate, nil
}

// ResetPromptTemplate resets all changes to the "prompt_template" field.
func (m *OCRSettingMutation) ResetPromptTemplate() {
	m.prompt_template = nil
}

// SetJSONExample sets the "json_example" field.
func (m *OCRSettingMutation) SetJSONExample(s string) {
	m.json_example = &s
}

// JSONExample returns the value of the "json_example" field in the mutation.
func (m *OCRSettingMutation) JSONExample() (r string, exists bool) {
	v := m.json_example
	if v == nil {
		return
	}
	return *v, true
}

// OldJSONExample returns the old "json_example" field's value of the OCRSetting entity.
// If the OCRSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRSettingMutation) OldJSONExample(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJSONExample is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJSONExample requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJSONExample: %w", err)
	}
	return oldValue.JSONExample, nil
}

// ResetJSONExample resets all changes to the "json_example" field.
func (m *OCRSettingMutation) ResetJSONExample() {
	m.json_example = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OCRSettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OCRSettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the OCRSetting entity.
// If the OCRSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OCRSettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OCRSettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the OCRSettingMutation builder.
func (m *OCRSettingMutation) Where(ps ...predicate.OCRSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OCRSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OCRSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OCRSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OCRSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OCRSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OCRSetting).
func (m *OCRSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OCRSettingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.function != nil {
		fields = append(fields, ocrsetting.FieldFunction)
	}
	if m.prompt_template != nil {
		fields = append(fields, ocrsetting.FieldPromptTemplate)
	}
	if m.json_example != nil {
		fields = append(fields, ocrsetting.FieldJSONExample)
	}
	if m.updated_at != nil {
		fields = append(fields, ocrsetting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OCRSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ocrsetting.FieldFunction:
		return m.Function()
	case ocrsetting.FieldPromptTemplate:
		return m.PromptTemplate()
	case ocrsetting.FieldJSONExample:
		return m.JSONExample()
	case ocrsetting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OCRSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ocrsetting.FieldFunction:
		return m.OldFunction(ctx)
	case ocrsetting.FieldPromptTemplate:
		return m.OldPromptTemplate(ctx)
	case ocrsetting.FieldJSONExample:
		return m.OldJSONExample(ctx)
	case ocrsetting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OCRSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OCRSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ocrsetting.FieldFunction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFunction(v)
		return nil
	case ocrsetting.FieldPromptTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTemplate(v)
		return nil
	case ocrsetting.FieldJSONExample:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJSONExample(v)
		return nil
	case ocrsetting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OCRSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OCRSettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OCRSettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OCRSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OCRSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OCRSettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OCRSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OCRSettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OCRSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OCRSettingMutation) ResetField(name string) error {
	switch name {
	case ocrsetting.FieldFunction:
		m.ResetFunction()
		return nil
	case ocrsetting.FieldPromptTemplate:
		m.ResetPromptTemplate()
		return nil
	case ocrsetting.FieldJSONExample:
		m.ResetJSONExample()
		return nil
	case ocrsetting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown OCRSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OCRSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OCRSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OCRSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OCRSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OCRSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OCRSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OCRSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OCRSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OCRSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OCRSetting edge %s", name)
}

// TollMutation represents an operation that mutates the Toll nodes in the graph.
type TollMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	transaction_date *time.Time
	tolling_point    *string
	etag_id          *string
	net_amount       *float64
	addnet_amount    *float64
	capture_id       *uuid.UUID
	page_result_id   *uuid.UUID
	asset_id         *uuid.UUID
	driver_id        *uuid.UUID
	process_status   *string
	expense_id       *uuid.UUID
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Toll, error)
	predicates       []predicate.Toll
}

var _ ent.Mutation = (*TollMutation)(nil)

// tollOption allows management of the mutation configuration using functional options.
type tollOption func(*TollMutation)

// newTollMutation creates new mutation for the Toll entity.
func newTollMutation(c config, op Op, opts ...tollOption) *TollMutation {
	m := &TollMutation{
		config:        c,
		op:            op,
		typ:           TypeToll,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTollID sets the ID field of the mutation.
func withTollID(id uuid.UUID) tollOption {
	return func(m *TollMutation) {
		var (
			err   error
			once  sync.Once
			value *Toll
		)
		m.oldValue = func(ctx context.Context) (*Toll, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Toll.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToll sets the old Toll of the mutation.
func withToll(node *Toll) tollOption {
	return func(m *TollMutation) {
		m.oldValue = func(context.Context) (*Toll, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TollMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TollMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Toll entities.
func (m *TollMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TollMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TollMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Toll.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTransactionDate sets the "transaction_date" field.
func (m *TollMutation) SetTransactionDate(t time.Time) {
	m.transaction_date = &t
}

// TransactionDate returns the value of the "transaction_date" field in the mutation.
func (m *TollMutation) TransactionDate() (r time.Time, exists bool) {
	v := m.transaction_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionDate returns the old "transaction_date" field's value of the Toll entity.
// If the Toll object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollMutation) OldTransactionDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionDate: %w", err)
	}
	return oldValue.TransactionDate, nil
}

// ResetTransactionDate resets all changes to the "transaction_date" field.
func (m *TollMutation) ResetTransactionDate() {
	m.transaction_date = nil
}

// SetTollingPoint sets the "tolling_point" field.
func (m *TollMutation) SetTollingPoint(s string) {
	m.tolling_point = &s
}

// TollingPoint returns the value of the "tolling_point" field in the mutation.
func (m *TollMutation) TollingPoint() (r string, exists bool) {
	v := m.tolling_point
	if v == nil {
		return
	}
	return *v, true
}

// OldTollingPoint returns the old "tolling_point" field's value of the Toll entity.
// If the Toll object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollMutation) OldTollingPoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTollingPoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTollingPoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTollingPoint: %w", err)
	}
	return oldValue.TollingPoint, nil
}

// ClearTollingPoint clears the value of the "tolling_point" field.
func (m *TollMutation) ClearTollingPoint() {
	m.tolling_point = nil
	m.clearedFields[toll.FieldTollingPoint] = struct{}{}
}

// TollingPointCleared returns if the "tolling_point" field was cleared in this mutation.
func (m *TollMutation) TollingPointCleared() bool {
	_, ok := m.clearedFields[toll.FieldTollingPoint]
	return ok
}

// ResetTollingPoint resets all changes to the "tolling_point" field.
func (m *TollMutation) ResetTollingPoint() {
	m.tolling_point = nil
	delete(m.clearedFields, toll.FieldTollingPoint)
}

// SetEtagID sets the "etag_id" field.
func (m *TollMutation) SetEtagID(s string) {
	m.etag_id = &s
}

// EtagID returns the value of the "etag_id" field in the mutation.
func (m *TollMutation) EtagID() (r string, exists bool) {
	v := m.etag_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEtagID returns the old "etag_id" field's value of the Toll entity.
// If the Toll object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollMutation) OldEtagID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEtagID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEtagID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEtagID: %w", err)
	}
	return oldValue.EtagID, nil
}

// ResetEtagID resets all changes to the "etag_id" field.
func (m *TollMutation) ResetEtagID() {
	m.etag_id = nil
}

// SetNetAmount sets the "net_amount" field.
func (m *TollMutation) SetNetAmount(f float64) {
	m.net_amount = &f
	m.addnet_amount = nil
}

// NetAmount returns the value of the "net_amount" field in the mutation.
func (m *TollMutation) NetAmount() (r float64, exists bool) {
	v := m.net_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldNetAmount returns the old "net_amount" field's value of the Toll entity.
// If the Toll object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollMutation) OldNetAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetAmount: %w", err)
	}
	return oldValue.NetAmount, nil
}

// AddNetAmount adds f to the "net_amount" field.
func (m *TollMutation) AddNetAmount(f float64) {
	if m.addnet_amount != nil {
		*m.addnet_amount += f
	} else {
		m.addnet_amount = &f
	}
}

// AddedNetAmount returns the value that was added to the "net_amount" field in this mutation.
func (m *TollMutation) AddedNetAmount() (r float64, exists bool) {
	v := m.addnet_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetNetAmount resets all changes to the "net_amount" field.
func (m *TollMutation) ResetNetAmount() {
	m.net_amount = nil
	m.addnet_amount = nil
}

// SetCaptureID sets the "capture_id" field.
func (m *TollMutation) SetCaptureID(u uuid.UUID) {
	m.capture_id = &u
}

// CaptureID returns the value of the "capture_id" field in the mutation.
func (m *TollMutation) CaptureID() (r uuid.UUID, exists bool) {
	v := m.capture_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaptureID returns the old "capture_id" field's value of the Toll entity.
// If the Toll object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollMutation) OldCaptureID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaptureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaptureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaptureID: %w", err)
	}
	return oldValue.CaptureID, nil
}

// ResetCaptureID resets all changes to the "capture_id" field.
func (m *TollMutation) ResetCaptureID() {
	m.capture_id = nil
}

// SetPageResultID sets the "page_result_id" field.
func (m *TollMutation) SetPageResultID(u uuid.UUID) {
	m.page_result_id = &u
}

// PageResultID returns the value of the "page_result_id" field in the mutation.
func (m *TollMutation) PageResultID() (r uuid.UUID, exists bool) {
	v := m.page_result_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPageResultID returns the old "page_result_id" field's value of the Toll entity.
// If the Toll object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollMutation) OldPageResultID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageResultID: %w", err)
	}
	return oldValue.PageResultID, nil
}

// ResetPageResultID resets all changes to the "page_result_id" field.
func (m *TollMutation) ResetPageResultID() {
	m.page_result_id = nil
}

// SetAssetID sets the "asset_id" field.
func (m *TollMutation) SetAssetID(u uuid.UUID) {
	m.asset_id = &u
}

// AssetID returns the value of the "asset_id" field in the mutation.
func (m *TollMutation) AssetID() (r uuid.UUID, exists bool) {
	v := m.asset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssetID returns the old "asset_id" field's value of the Toll entity.
// If the Toll object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollMutation) OldAssetID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssetID: %w", err)
	}
	return oldValue.AssetID, nil
}

// ClearAssetID clears the value of the "asset_id" field.
func (m *TollMutation) ClearAssetID() {
	m.asset_id = nil
	m.clearedFields[toll.FieldAssetID] = struct{}{}
}

// AssetIDCleared returns if the "asset_id" field was cleared in this mutation.
func (m *TollMutation) AssetIDCleared() bool {
	_, ok := m.clearedFields[toll.FieldAssetID]
	return ok
}

// ResetAssetID resets all changes to the "asset_id" field.
func (m *TollMutation) ResetAssetID() {
	m.asset_id = nil
	delete(m.clearedFields, toll.FieldAssetID)
}

// SetDriverID sets the "driver_id" field.
func (m *TollMutation) SetDriverID(u uuid.UUID) {
	m.driver_id = &u
}

// DriverID returns the value of the "driver_id" field in the mutation.
func (m *TollMutation) DriverID() (r uuid.UUID, exists bool) {
	v := m.driver_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDriverID returns the old "driver_id" field's value of the Toll entity.
// If the Toll object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollMutation) OldDriverID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDriverID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDriverID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDriverID: %w", err)
	}
	return oldValue.DriverID, nil
}

// ClearDriverID clears the value of the "driver_id" field.
func (m *TollMutation) ClearDriverID() {
	m.driver_id = nil
	m.clearedFields[toll.FieldDriverID] = struct{}{}
}

// DriverIDCleared returns if the "driver_id" field was cleared in this mutation.
func (m *TollMutation) DriverIDCleared() bool {
	_, ok := m.clearedFields[toll.FieldDriverID]
	return ok
}

// ResetDriverID resets all changes to the "driver_id" field.
func (m *TollMutation) ResetDriverID() {
	m.driver_id = nil
	delete(m.clearedFields, toll.FieldDriverID)
}

// SetProcessStatus sets the "process_status" field.
func (m *TollMutation) SetProcessStatus(s string) {
	m.process_status = &s
}

// ProcessStatus returns the value of the "process_status" field in the mutation.
func (m *TollMutation) ProcessStatus() (r string, exists bool) {
	v := m.process_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessStatus returns the old "process_status" field's value of the Toll entity.
// If the Toll object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollMutation) OldProcessStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessStatus: %w", err)
	}
	return oldValue.ProcessStatus, nil
}

// ResetProcessStatus resets all changes to the "process_status" field.
func (m *TollMutation) ResetProcessStatus() {
	m.process_status = nil
}

// SetExpenseID sets the "expense_id" field.
func (m *TollMutation) SetExpenseID(u uuid.UUID) {
	m.expense_id = &u
}

// ExpenseID returns the value of the "expense_id" field in the mutation.
func (m *TollMutation) ExpenseID() (r uuid.UUID, exists bool) {
	v := m.expense_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExpenseID returns the old "expense_id" field's value of the Toll entity.
// If the Toll object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollMutation) OldExpenseID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpenseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpenseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpenseID: %w", err)
	}
	return oldValue.ExpenseID, nil
}

// ClearExpenseID clears the value of the "expense_id" field.
func (m *TollMutation) ClearExpenseID() {
	m.expense_id = nil
	m.clearedFields[toll.FieldExpenseID] = struct{}{}
}

// ExpenseIDCleared returns if the "expense_id" field was cleared in this mutation.
func (m *TollMutation) ExpenseIDCleared() bool {
	_, ok := m.clearedFields[toll.FieldExpenseID]
	return ok
}

// ResetExpenseID resets all changes to the "expense_id" field.
func (m *TollMutation) ResetExpenseID() {
	m.expense_id = nil
	delete(m.clearedFields, toll.FieldExpenseID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TollMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TollMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Toll entity.
// If the Toll object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TollMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TollMutation builder.
func (m *TollMutation) Where(ps ...predicate.Toll) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TollMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TollMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Toll, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TollMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TollMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Toll).
func (m *TollMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TollMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.transaction_date != nil {
		fields = append(fields, toll.FieldTransactionDate)
	}
	if m.tolling_point != nil {
		fields = append(fields, toll.FieldTollingPoint)
	}
	if m.etag_id != nil {
		fields = append(fields, toll.FieldEtagID)
	}
	if m.net_amount != nil {
		fields = append(fields, toll.FieldNetAmount)
	}
	if m.capture_id != nil {
		fields = append(fields, toll.FieldCaptureID)
	}
	if m.page_result_id != nil {
		fields = append(fields, toll.FieldPageResultID)
	}
	if m.asset_id != nil {
		fields = append(fields, toll.FieldAssetID)
	}
	if m.driver_id != nil {
		fields = append(fields, toll.FieldDriverID)
	}
	if m.process_status != nil {
		fields = append(fields, toll.FieldProcessStatus)
	}
	if m.expense_id != nil {
		fields = append(fields, toll.FieldExpenseID)
	}
	if m.created_at != nil {
		fields = append(fields, toll.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TollMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toll.FieldTransactionDate:
		return m.TransactionDate()
	case toll.FieldTollingPoint:
		return m.TollingPoint()
	case toll.FieldEtagID:
		return m.EtagID()
	case toll.FieldNetAmount:
		return m.NetAmount()
	case toll.FieldCaptureID:
		return m.CaptureID()
	case toll.FieldPageResultID:
		return m.PageResultID()
	case toll.FieldAssetID:
		return m.AssetID()
	case toll.FieldDriverID:
		return m.DriverID()
	case toll.FieldProcessStatus:
		return m.ProcessStatus()
	case toll.FieldExpenseID:
		return m.ExpenseID()
	case toll.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TollMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toll.FieldTransactionDate:
		return m.OldTransactionDate(ctx)
	case toll.FieldTollingPoint:
		return m.OldTollingPoint(ctx)
	case toll.FieldEtagID:
		return m.OldEtagID(ctx)
	case toll.FieldNetAmount:
		return m.OldNetAmount(ctx)
	case toll.FieldCaptureID:
		return m.OldCaptureID(ctx)
	case toll.FieldPageResultID:
		return m.OldPageResultID(ctx)
	case toll.FieldAssetID:
		return m.OldAssetID(ctx)
	case toll.FieldDriverID:
		return m.OldDriverID(ctx)
	case toll.FieldProcessStatus:
		return m.OldProcessStatus(ctx)
	case toll.FieldExpenseID:
		return m.OldExpenseID(ctx)
	case toll.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Toll field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TollMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toll.FieldTransactionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionDate(v)
		return nil
	case toll.FieldTollingPoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTollingPoint(v)
		return nil
	case toll.FieldEtagID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEtagID(v)
		return nil
	case toll.FieldNetAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetAmount(v)
		return nil
	case toll.FieldCaptureID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaptureID(v)
		return nil
	case toll.FieldPageResultID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageResultID(v)
		return nil
	case toll.FieldAssetID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssetID(v)
		return nil
	case toll.FieldDriverID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDriverID(v)
		return nil
	case toll.FieldProcessStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessStatus(v)
		return nil
	case toll.FieldExpenseID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpenseID(v)
		return nil
	case toll.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Toll field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TollMutation) AddedFields() []string {
	var fields []string
	if m.addnet_amount != nil {
		fields = append(fields, toll.FieldNetAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TollMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toll.FieldNetAmount:
		return m.AddedNetAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TollMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toll.FieldNetAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Toll numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TollMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toll.FieldTollingPoint) {
		fields = append(fields, toll.FieldTollingPoint)
	}
	if m.FieldCleared(toll.FieldAssetID) {
		fields = append(fields, toll.FieldAssetID)
	}
	if m.FieldCleared(toll.FieldDriverID) {
		fields = append(fields, toll.FieldDriverID)
	}
	if m.FieldCleared(toll.FieldExpenseID) {
		fields = append(fields, toll.FieldExpenseID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TollMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TollMutation) ClearField(name string) error {
	switch name {
	case toll.FieldTollingPoint:
		m.ClearTollingPoint()
		return nil
	case toll.FieldAssetID:
		m.ClearAssetID()
		return nil
	case toll.FieldDriverID:
		m.ClearDriverID()
		return nil
	case toll.FieldExpenseID:
		m.ClearExpenseID()
		return nil
	}
	return fmt.Errorf("unknown Toll nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TollMutation) ResetField(name string) error {
	switch name {
	case toll.FieldTransactionDate:
		m.ResetTransactionDate()
		return nil
	case toll.FieldTollingPoint:
		m.ResetTollingPoint()
		return nil
	case toll.FieldEtagID:
		m.ResetEtagID()
		return nil
	case toll.FieldNetAmount:
		m.ResetNetAmount()
		return nil
	case toll.FieldCaptureID:
		m.ResetCaptureID()
		return nil
	case toll.FieldPageResultID:
		m.ResetPageResultID()
		return nil
	case toll.FieldAssetID:
		m.ResetAssetID()
		return nil
	case toll.FieldDriverID:
		m.ResetDriverID()
		return nil
	case toll.FieldProcessStatus:
		m.ResetProcessStatus()
		return nil
	case toll.FieldExpenseID:
		m.ResetExpenseID()
		return nil
	case toll.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Toll field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TollMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TollMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TollMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TollMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TollMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TollMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TollMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Toll unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TollMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Toll edge %s", name)
}

// TollCaptureMutation represents an operation that mutates the TollCapture nodes in the graph.
type TollCaptureMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	driver_id             *uuid.UUID
	asset_id              *uuid.UUID
	file_path             *string
	total_records         *int
	addtotal_records      *int
	progress_count        *string
	processed_pages       *json.RawMessage
	appendprocessed_pages json.RawMessage
	status                *string
	error_message         *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*TollCapture, error)
	predicates            []predicate.TollCapture
}

var _ ent.Mutation = (*TollCaptureMutation)(nil)

// tollcaptureOption allows management of the mutation configuration using functional options.
type tollcaptureOption func(*TollCaptureMutation)

// newTollCaptureMutation creates new mutation for the TollCapture entity.
func newTollCaptureMutation(c config, op Op, opts ...tollcaptureOption) *TollCaptureMutation {
	m := &TollCaptureMutation{
		config:        c,
		op:            op,
		typ:           TypeTollCapture,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTollCaptureID sets the ID field of the mutation.
func withTollCaptureID(id uuid.UUID) tollcaptureOption {
	return func(m *TollCaptureMutation) {
		var (
			err   error
			once  sync.Once
			value *TollCapture
		)
		m.oldValue = func(ctx context.Context) (*TollCapture, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TollCapture.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTollCapture sets the old TollCapture of the mutation.
func withTollCapture(node *TollCapture) tollcaptureOption {
	return func(m *TollCaptureMutation) {
		m.oldValue = func(context.Context) (*TollCapture, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TollCaptureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TollCaptureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TollCapture entities.
func (m *TollCaptureMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TollCaptureMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TollCaptureMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TollCapture.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDriverID sets the "driver_id" field.
func (m *TollCaptureMutation) SetDriverID(u uuid.UUID) {
	m.driver_id = &u
}

// DriverID returns the value of the "driver_id" field in the mutation.
func (m *TollCaptureMutation) DriverID() (r uuid.UUID, exists bool) {
	v := m.driver_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDriverID returns the old "driver_id" field's value of the TollCapture entity.
// If the TollCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollCaptureMutation) OldDriverID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDriverID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDriverID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDriverID: %w", err)
	}
	return oldValue.DriverID, nil
}

// ResetDriverID resets all changes to the "driver_id" field.
func (m *TollCaptureMutation) ResetDriverID() {
	m.driver_id = nil
}

// SetAssetID sets the "asset_id" field.
func (m *TollCaptureMutation) SetAssetID(u uuid.UUID) {
	m.asset_id = &u
}

// AssetID returns the value of the "asset_id" field in the mutation.
func (m *TollCaptureMutation) AssetID() (r uuid.UUID, exists bool) {
	v := m.asset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssetID returns the old "asset_id" field's value of the TollCapture entity.
// If the TollCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollCaptureMutation) OldAssetID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssetID: %w", err)
	}
	return oldValue.AssetID, nil
}

// ClearAssetID clears the value of the "asset_id" field.
func (m *TollCaptureMutation) ClearAssetID() {
	m.asset_id = nil
	m.clearedFields[tollcapture.FieldAssetID] = struct{}{}
}

// AssetIDCleared returns if the "asset_id" field was cleared in this mutation.
func (m *TollCaptureMutation) AssetIDCleared() bool {
	_, ok := m.clearedFields[tollcapture.FieldAssetID]
	return ok
}

// ResetAssetID resets all changes to the "asset_id" field.
func (m *TollCaptureMutation) ResetAssetID() {
	m.asset_id = nil
	delete(m.clearedFields, tollcapture.FieldAssetID)
}

// SetFilePath sets the "file_path" field.
func (m *TollCaptureMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *TollCaptureMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the TollCapture entity.
// If the TollCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollCaptureMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *TollCaptureMutation) ResetFilePath() {
	m.file_path = nil
}

// SetTotalRecords sets the "total_records" field.
func (m *TollCaptureMutation) SetTotalRecords(i int) {
	m.total_records = &i
	m.addtotal_records = nil
}

// TotalRecords returns the value of the "total_records" field in the mutation.
func (m *TollCaptureMutation) TotalRecords() (r int, exists bool) {
	v := m.total_records
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRecords returns the old "total_records" field's value of the TollCapture entity.
// If the TollCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollCaptureMutation) OldTotalRecords(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRecords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRecords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRecords: %w", err)
	}
	return oldValue.TotalRecords, nil
}

// AddTotalRecords adds i to the "total_records" field.
func (m *TollCaptureMutation) AddTotalRecords(i int) {
	if m.addtotal_records != nil {
		*m.addtotal_records += i
	} else {
		m.addtotal_records = &i
	}
}

// AddedTotalRecords returns the value that was added to the "total_records" field in this mutation.
func (m *TollCaptureMutation) AddedTotalRecords() (r int, exists bool) {
	v := m.addtotal_records
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRecords resets all changes to the "total_records" field.
func (m *TollCaptureMutation) ResetTotalRecords() {
	m.total_records = nil
	m.addtotal_records = nil
}

// SetProgressCount sets the "progress_count" field.
func (m *TollCaptureMutation) SetProgressCount(s string) {
	m.progress_count = &s
}

// ProgressCount returns the value of the "progress_count" field in the mutation.
func (m *TollCaptureMutation) ProgressCount() (r string, exists bool) {
	v := m.progress_count
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressCount returns the old "progress_count" field's value of the TollCapture entity.
// If the TollCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollCaptureMutation) OldProgressCount(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressCount: %w", err)
	}
	return oldValue.ProgressCount, nil
}

// ResetProgressCount resets all changes to the "progress_count" field.
func (m *TollCaptureMutation) ResetProgressCount() {
	m.progress_count = nil
}

// SetProcessedPages sets the "processed_pages" field.
func (m *TollCaptureMutation) SetProcessedPages(jm json.RawMessage) {
	m.processed_pages = &jm
	m.appendprocessed_pages = nil
}

// ProcessedPages returns the value of the "processed_pages" field in the mutation.
func (m *TollCaptureMutation) ProcessedPages() (r json.RawMessage, exists bool) {
	v := m.processed_pages
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedPages returns the old "processed_pages" field's value of the TollCapture entity.
// If the TollCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollCaptureMutation) OldProcessedPages(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedPages: %w", err)
	}
	return oldValue.ProcessedPages, nil
}

// AppendProcessedPages adds jm to the "processed_pages" field.
func (m *TollCaptureMutation) AppendProcessedPages(jm json.RawMessage) {
	m.appendprocessed_pages = append(m.appendprocessed_pages, jm...)
}

// AppendedProcessedPages returns the list of values that were appended to the "processed_pages" field in this mutation.
func (m *TollCaptureMutation) AppendedProcessedPages() (json.RawMessage, bool) {
	if len(m.appendprocessed_pages) == 0 {
		return nil, false
	}
	return m.appendprocessed_pages, true
}

// ClearProcessedPages clears the value of the "processed_pages" field.
func (m *TollCaptureMutation) ClearProcessedPages() {
	m.processed_pages = nil
	m.appendprocessed_pages = nil
	m.clearedFields[tollcapture.FieldProcessedPages] = struct{}{}
}

// ProcessedPagesCleared returns if the "processed_pages" field was cleared in this mutation.
func (m *TollCaptureMutation) ProcessedPagesCleared() bool {
	_, ok := m.clearedFields[tollcapture.FieldProcessedPages]
	return ok
}

// ResetProcessedPages resets all changes to the "processed_pages" field.
func (m *TollCaptureMutation) ResetProcessedPages() {
	m.processed_pages = nil
	m.appendprocessed_pages = nil
	delete(m.clearedFields, tollcapture.FieldProcessedPages)
}

// SetStatus sets the "status" field.
func (m *TollCaptureMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TollCaptureMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TollCapture entity.
// If the TollCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollCaptureMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TollCaptureMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *TollCaptureMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TollCaptureMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TollCapture entity.
// If the TollCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollCaptureMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TollCaptureMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[tollcapture.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TollCaptureMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[tollcapture.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TollCaptureMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, tollcapture.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *TollCaptureMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TollCaptureMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TollCapture entity.
// If the TollCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollCaptureMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TollCaptureMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TollCaptureMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TollCaptureMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TollCapture entity.
// If the TollCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollCaptureMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TollCaptureMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TollCaptureMutation builder.
func (m *TollCaptureMutation) Where(ps ...predicate.TollCapture) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TollCaptureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TollCaptureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TollCapture, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TollCaptureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TollCaptureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TollCapture).
func (m *TollCaptureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TollCaptureMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.driver_id != nil {
		fields = append(fields, tollcapture.FieldDriverID)
	}
	if m.asset_id != nil {
		fields = append(fields, tollcapture.FieldAssetID)
	}
	if m.file_path != nil {
		fields = append(fields, tollcapture.FieldFilePath)
	}
	if m.total_records != nil {
		fields = append(fields, tollcapture.FieldTotalRecords)
	}
	if m.progress_count != nil {
		fields = append(fields, tollcapture.FieldProgressCount)
	}
	if m.processed_pages != nil {
		fields = append(fields, tollcapture.FieldProcessedPages)
	}
	if m.status != nil {
		fields = append(fields, tollcapture.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, tollcapture.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, tollcapture.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tollcapture.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TollCaptureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tollcapture.FieldDriverID:
		return m.DriverID()
	case tollcapture.FieldAssetID:
		return m.AssetID()
	case tollcapture.FieldFilePath:
		return m.FilePath()
	case tollcapture.FieldTotalRecords:
		return m.TotalRecords()
	case tollcapture.FieldProgressCount:
		return m.ProgressCount()
	case tollcapture.FieldProcessedPages:
		return m.ProcessedPages()
	case tollcapture.FieldStatus:
		return m.Status()
	case tollcapture.FieldErrorMessage:
		return m.ErrorMessage()
	case tollcapture.FieldCreatedAt:
		return m.CreatedAt()
	case tollcapture.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TollCaptureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tollcapture.FieldDriverID:
		return m.OldDriverID(ctx)
	case tollcapture.FieldAssetID:
		return m.OldAssetID(ctx)
	case tollcapture.FieldFilePath:
		return m.OldFilePath(ctx)
	case tollcapture.FieldTotalRecords:
		return m.OldTotalRecords(ctx)
	case tollcapture.FieldProgressCount:
		return m.OldProgressCount(ctx)
	case tollcapture.FieldProcessedPages:
		return m.OldProcessedPages(ctx)
	case tollcapture.FieldStatus:
		return m.OldStatus(ctx)
	case tollcapture.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case tollcapture.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tollcapture.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TollCapture field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TollCaptureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tollcapture.FieldDriverID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDriverID(v)
		return nil
	case tollcapture.FieldAssetID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssetID(v)
		return nil
	case tollcapture.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case tollcapture.FieldTotalRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRecords(v)
		return nil
	case tollcapture.FieldProgressCount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressCount(v)
		return nil
	case tollcapture.FieldProcessedPages:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedPages(v)
		return nil
	case tollcapture.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case tollcapture.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case tollcapture.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tollcapture.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TollCapture field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TollCaptureMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_records != nil {
		fields = append(fields, tollcapture.FieldTotalRecords)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TollCaptureMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tollcapture.FieldTotalRecords:
		return m.AddedTotalRecords()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TollCaptureMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tollcapture.FieldTotalRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRecords(v)
		return nil
	}
	return fmt.Errorf("unknown TollCapture numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TollCaptureMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tollcapture.FieldAssetID) {
		fields = append(fields, tollcapture.FieldAssetID)
	}
	if m.FieldCleared(tollcapture.FieldProcessedPages) {
		fields = append(fields, tollcapture.FieldProcessedPages)
	}
	if m.FieldCleared(tollcapture.FieldErrorMessage) {
		fields = append(fields, tollcapture.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TollCaptureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TollCaptureMutation) ClearField(name string) error {
	switch name {
	case tollcapture.FieldAssetID:
		m.ClearAssetID()
		return nil
	case tollcapture.FieldProcessedPages:
		m.ClearProcessedPages()
		return nil
	case tollcapture.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown TollCapture nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TollCaptureMutation) ResetField(name string) error {
	switch name {
	case tollcapture.FieldDriverID:
		m.ResetDriverID()
		return nil
	case tollcapture.FieldAssetID:
		m.ResetAssetID()
		return nil
	case tollcapture.FieldFilePath:
		m.ResetFilePath()
		return nil
	case tollcapture.FieldTotalRecords:
		m.ResetTotalRecords()
		return nil
	case tollcapture.FieldProgressCount:
		m.ResetProgressCount()
		return nil
	case tollcapture.FieldProcessedPages:
		m.ResetProcessedPages()
		return nil
	case tollcapture.FieldStatus:
		m.ResetStatus()
		return nil
	case tollcapture.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case tollcapture.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tollcapture.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TollCapture field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TollCaptureMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TollCaptureMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TollCaptureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TollCaptureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TollCaptureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TollCaptureMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TollCaptureMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TollCapture unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TollCaptureMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TollCapture edge %s", name)
}

// TollPageResultMutation represents an operation that mutates the TollPageResult nodes in the graph.
type TollPageResultMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	capture_id     *uuid.UUID
	page_number    *int
	addpage_number *int
	base64_image   *string
	status         *string
	error_message  *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*TollPageResult, error)
	predicates     []predicate.TollPageResult
}

var _ ent.Mutation = (*TollPageResultMutation)(nil)

// tollpageresultOption allows management of the mutation configuration using functional options.
type tollpageresultOption func(*TollPageResultMutation)

// newTollPageResultMutation creates new mutation for the TollPageResult entity.
func newTollPageResultMutation(c config, op Op, opts ...tollpageresultOption) *TollPageResultMutation {
	m := &TollPageResultMutation{
		config:        c,
		op:            op,
		typ:           TypeTollPageResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTollPageResultID sets the ID field of the mutation.
func withTollPageResultID(id uuid.UUID) tollpageresultOption {
	return func(m *TollPageResultMutation) {
		var (
			err   error
			once  sync.Once
			value *TollPageResult
		)
		m.oldValue = func(ctx context.Context) (*TollPageResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TollPageResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTollPageResult sets the old TollPageResult of the mutation.
func withTollPageResult(node *TollPageResult) tollpageresultOption {
	return func(m *TollPageResultMutation) {
		m.oldValue = func(context.Context) (*TollPageResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TollPageResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TollPageResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TollPageResult entities.
func (m *TollPageResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TollPageResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TollPageResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TollPageResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaptureID sets the "capture_id" field.
func (m *TollPageResultMutation) SetCaptureID(u uuid.UUID) {
	m.capture_id = &u
}

// CaptureID returns the value of the "capture_id" field in the mutation.
func (m *TollPageResultMutation) CaptureID() (r uuid.UUID, exists bool) {
	v := m.capture_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaptureID returns the old "capture_id" field's value of the TollPageResult entity.
// If the TollPageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollPageResultMutation) OldCaptureID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaptureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaptureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaptureID: %w", err)
	}
	return oldValue.CaptureID, nil
}

// ResetCaptureID resets all changes to the "capture_id" field.
func (m *TollPageResultMutation) ResetCaptureID() {
	m.capture_id = nil
}

// SetPageNumber sets the "page_number" field.
func (m *TollPageResultMutation) SetPageNumber(i int) {
	m.page_number = &i
	m.addpage_number = nil
}

// PageNumber returns the value of the "page_number" field in the mutation.
func (m *TollPageResultMutation) PageNumber() (r int, exists bool) {
	v := m.page_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNumber returns the old "page_number" field's value of the TollPageResult entity.
// If the TollPageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollPageResultMutation) OldPageNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNumber: %w", err)
	}
	return oldValue.PageNumber, nil
}

// AddPageNumber adds i to the "page_number" field.
func (m *TollPageResultMutation) AddPageNumber(i int) {
	if m.addpage_number != nil {
		*m.addpage_number += i
	} else {
		m.addpage_number = &i
	}
}

// AddedPageNumber returns the value that was added to the "page_number" field in this mutation.
func (m *TollPageResultMutation) AddedPageNumber() (r int, exists bool) {
	v := m.addpage_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageNumber resets all changes to the "page_number" field.
func (m *TollPageResultMutation) ResetPageNumber() {
	m.page_number = nil
	m.addpage_number = nil
}

// SetBase64Image sets the "base64_image" field.
func (m *TollPageResultMutation) SetBase64Image(s string) {
	m.base64_image = &s
}

// Base64Image returns the value of the "base64_image" field in the mutation.
func (m *TollPageResultMutation) Base64Image() (r string, exists bool) {
	v := m.base64_image
	if v == nil {
		return
	}
	return *v, true
}

// OldBase64Image returns the old "base64_image" field's value of the TollPageResult entity.
// If the TollPageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollPageResultMutation) OldBase64Image(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBase64Image is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBase64Image requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBase64Image: %w", err)
	}
	return oldValue.Base64Image, nil
}

// ClearBase64Image clears the value of the "base64_image" field.
func (m *TollPageResultMutation) ClearBase64Image() {
	m.base64_image = nil
	m.clearedFields[tollpageresult.FieldBase64Image] = struct{}{}
}

// Base64ImageCleared returns if the "base64_image" field was cleared in this mutation.
func (m *TollPageResultMutation) Base64ImageCleared() bool {
	_, ok := m.clearedFields[tollpageresult.FieldBase64Image]
	return ok
}

// ResetBase64Image resets all changes to the "base64_image" field.
func (m *TollPageResultMutation) ResetBase64Image() {
	m.base64_image = nil
	delete(m.clearedFields, tollpageresult.FieldBase64Image)
}

// SetStatus sets the "status" field.
func (m *TollPageResultMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TollPageResultMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TollPageResult entity.
// If the TollPageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollPageResultMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TollPageResultMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *TollPageResultMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TollPageResultMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TollPageResult entity.
// If the TollPageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollPageResultMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TollPageResultMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[tollpageresult.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TollPageResultMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[tollpageresult.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TollPageResultMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, tollpageresult.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *TollPageResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TollPageResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TollPageResult entity.
// If the TollPageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollPageResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TollPageResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TollPageResultMutation builder.
func (m *TollPageResultMutation) Where(ps ...predicate.TollPageResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TollPageResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TollPageResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TollPageResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TollPageResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TollPageResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TollPageResult).
func (m *TollPageResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TollPageResultMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.capture_id != nil {
		fields = append(fields, tollpageresult.FieldCaptureID)
	}
	if m.page_number != nil {
		fields = append(fields, tollpageresult.FieldPageNumber)
	}
	if m.base64_image != nil {
		fields = append(fields, tollpageresult.FieldBase64Image)
	}
	if m.status != nil {
		fields = append(fields, tollpageresult.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, tollpageresult.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, tollpageresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TollPageResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tollpageresult.FieldCaptureID:
		return m.CaptureID()
	case tollpageresult.FieldPageNumber:
		return m.PageNumber()
	case tollpageresult.FieldBase64Image:
		return m.Base64Image()
	case tollpageresult.FieldStatus:
		return m.Status()
	case tollpageresult.FieldErrorMessage:
		return m.ErrorMessage()
	case tollpageresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TollPageResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tollpageresult.FieldCaptureID:
		return m.OldCaptureID(ctx)
	case tollpageresult.FieldPageNumber:
		return m.OldPageNumber(ctx)
	case tollpageresult.FieldBase64Image:
		return m.OldBase64Image(ctx)
	case tollpageresult.FieldStatus:
		return m.OldStatus(ctx)
	case tollpageresult.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case tollpageresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TollPageResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TollPageResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tollpageresult.FieldCaptureID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaptureID(v)
		return nil
	case tollpageresult.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNumber(v)
		return nil
	case tollpageresult.FieldBase64Image:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBase64Image(v)
		return nil
	case tollpageresult.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case tollpageresult.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case tollpageresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TollPageResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TollPageResultMutation) AddedFields() []string {
	var fields []string
	if m.addpage_number != nil {
		fields = append(fields, tollpageresult.FieldPageNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TollPageResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tollpageresult.FieldPageNumber:
		return m.AddedPageNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TollPageResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tollpageresult.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNumber(v)
		return nil
	}
	return fmt.Errorf("unknown TollPageResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TollPageResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tollpageresult.FieldBase64Image) {
		fields = append(fields, tollpageresult.FieldBase64Image)
	}
	if m.FieldCleared(tollpageresult.FieldErrorMessage) {
		fields = append(fields, tollpageresult.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TollPageResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TollPageResultMutation) ClearField(name string) error {
	switch name {
	case tollpageresult.FieldBase64Image:
		m.ClearBase64Image()
		return nil
	case tollpageresult.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown TollPageResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TollPageResultMutation) ResetField(name string) error {
	switch name {
	case tollpageresult.FieldCaptureID:
		m.ResetCaptureID()
		return nil
	case tollpageresult.FieldPageNumber:
		m.ResetPageNumber()
		return nil
	case tollpageresult.FieldBase64Image:
		m.ResetBase64Image()
		return nil
	case tollpageresult.FieldStatus:
		m.ResetStatus()
		return nil
	case tollpageresult.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case tollpageresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TollPageResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TollPageResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TollPageResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TollPageResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TollPageResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TollPageResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TollPageResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TollPageResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TollPageResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TollPageResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TollPageResult edge %s", name)
}

// TollsStagingMutation represents an operation that mutates the TollsStaging nodes in the graph.
type TollsStagingMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	capture_id        *uuid.UUID
	page_result_id    *uuid.UUID
	ai_response       *json.RawMessage
	appendai_response json.RawMessage
	status            *string
	error_message     *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*TollsStaging, error)
	predicates        []predicate.TollsStaging
}

var _ ent.Mutation = (*TollsStagingMutation)(nil)

// tollsstagingOption allows management of the mutation configuration using functional options.
type tollsstagingOption func(*TollsStagingMutation)

// newTollsStagingMutation creates new mutation for the TollsStaging entity.
func newTollsStagingMutation(c config, op Op, opts ...tollsstagingOption) *TollsStagingMutation {
	m := &TollsStagingMutation{
		config:        c,
		op:            op,
		typ:           TypeTollsStaging,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTollsStagingID sets the ID field of the mutation.
func withTollsStagingID(id uuid.UUID) tollsstagingOption {
	return func(m *TollsStagingMutation) {
		var (
			err   error
			once  sync.Once
			value *TollsStaging
		)
		m.oldValue = func(ctx context.Context) (*TollsStaging, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TollsStaging.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTollsStaging sets the old TollsStaging of the mutation.
func withTollsStaging(node *TollsStaging) tollsstagingOption {
	return func(m *TollsStagingMutation) {
		m.oldValue = func(context.Context) (*TollsStaging, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TollsStagingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TollsStagingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TollsStaging entities.
func (m *TollsStagingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TollsStagingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TollsStagingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TollsStaging.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaptureID sets the "capture_id" field.
func (m *TollsStagingMutation) SetCaptureID(u uuid.UUID) {
	m.capture_id = &u
}

// CaptureID returns the value of the "capture_id" field in the mutation.
func (m *TollsStagingMutation) CaptureID() (r uuid.UUID, exists bool) {
	v := m.capture_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaptureID returns the old "capture_id" field's value of the TollsStaging entity.
// If the TollsStaging object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollsStagingMutation) OldCaptureID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaptureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaptureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaptureID: %w", err)
	}
	return oldValue.CaptureID, nil
}

// ResetCaptureID resets all changes to the "capture_id" field.
func (m *TollsStagingMutation) ResetCaptureID() {
	m.capture_id = nil
}

// SetPageResultID sets the "page_result_id" field.
func (m *TollsStagingMutation) SetPageResultID(u uuid.UUID) {
	m.page_result_id = &u
}

// PageResultID returns the value of the "page_result_id" field in the mutation.
func (m *TollsStagingMutation) PageResultID() (r uuid.UUID, exists bool) {
	v := m.page_result_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPageResultID returns the old "page_result_id" field's value of the TollsStaging entity.
// If the TollsStaging object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollsStagingMutation) OldPageResultID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageResultID: %w", err)
	}
	return oldValue.PageResultID, nil
}

// ResetPageResultID resets all changes to the "page_result_id" field.
func (m *TollsStagingMutation) ResetPageResultID() {
	m.page_result_id = nil
}

// SetAiResponse sets the "ai_response" field.
func (m *TollsStagingMutation) SetAiResponse(jm json.RawMessage) {
	m.ai_response = &jm
	m.appendai_response = nil
}

// AiResponse returns the value of the "ai_response" field in the mutation.
func (m *TollsStagingMutation) AiResponse() (r json.RawMessage, exists bool) {
	v := m.ai_response
	if v == nil {
		return
	}
	return *v, true
}

// OldAiResponse returns the old "ai_response" field's value of the TollsStaging entity.
// If the TollsStaging object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollsStagingMutation) OldAiResponse(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiResponse: %w", err)
	}
	return oldValue.AiResponse, nil
}

// AppendAiResponse adds jm to the "ai_response" field.
func (m *TollsStagingMutation) AppendAiResponse(jm json.RawMessage) {
	m.appendai_response = append(m.appendai_response, jm...)
}

// AppendedAiResponse returns the list of values that were appended to the "ai_response" field in this mutation.
func (m *TollsStagingMutation) AppendedAiResponse() (json.RawMessage, bool) {
	if len(m.appendai_response) == 0 {
		return nil, false
	}
	return m.appendai_response, true
}

// ClearAiResponse clears the value of the "ai_response" field.
func (m *TollsStagingMutation) ClearAiResponse() {
	m.ai_response = nil
	m.appendai_response = nil
	m.clearedFields[tollsstaging.FieldAiResponse] = struct{}{}
}

// AiResponseCleared returns if the "ai_response" field was cleared in this mutation.
func (m *TollsStagingMutation) AiResponseCleared() bool {
	_, ok := m.clearedFields[tollsstaging.FieldAiResponse]
	return ok
}

// ResetAiResponse resets all changes to the "ai_response" field.
func (m *TollsStagingMutation) ResetAiResponse() {
	m.ai_response = nil
	m.appendai_response = nil
	delete(m.clearedFields, tollsstaging.FieldAiResponse)
}

// SetStatus sets the "status" field.
func (m *TollsStagingMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TollsStagingMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TollsStaging entity.
// If the TollsStaging object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollsStagingMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TollsStagingMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *TollsStagingMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TollsStagingMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TollsStaging entity.
// If the TollsStaging object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollsStagingMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TollsStagingMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[tollsstaging.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TollsStagingMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[tollsstaging.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TollsStagingMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, tollsstaging.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *TollsStagingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TollsStagingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TollsStaging entity.
// If the TollsStaging object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollsStagingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TollsStagingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TollsStagingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TollsStagingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TollsStaging entity.
// If the TollsStaging object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TollsStagingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TollsStagingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TollsStagingMutation builder.
func (m *TollsStagingMutation) Where(ps ...predicate.TollsStaging) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TollsStagingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TollsStagingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TollsStaging, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TollsStagingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TollsStagingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TollsStaging).
func (m *TollsStagingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TollsStagingMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.capture_id != nil {
		fields = append(fields, tollsstaging.FieldCaptureID)
	}
	if m.page_result_id != nil {
		fields = append(fields, tollsstaging.FieldPageResultID)
	}
	if m.ai_response != nil {
		fields = append(fields, tollsstaging.FieldAiResponse)
	}
	if m.status != nil {
		fields = append(fields, tollsstaging.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, tollsstaging.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, tollsstaging.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tollsstaging.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TollsStagingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tollsstaging.FieldCaptureID:
		return m.CaptureID()
	case tollsstaging.FieldPageResultID:
		return m.PageResultID()
	case tollsstaging.FieldAiResponse:
		return m.AiResponse()
	case tollsstaging.FieldStatus:
		return m.Status()
	case tollsstaging.FieldErrorMessage:
		return m.ErrorMessage()
	case tollsstaging.FieldCreatedAt:
		return m.CreatedAt()
	case tollsstaging.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TollsStagingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tollsstaging.FieldCaptureID:
		return m.OldCaptureID(ctx)
	case tollsstaging.FieldPageResultID:
		return m.OldPageResultID(ctx)
	case tollsstaging.FieldAiResponse:
		return m.OldAiResponse(ctx)
	case tollsstaging.FieldStatus:
		return m.OldStatus(ctx)
	case tollsstaging.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case tollsstaging.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tollsstaging.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TollsStaging field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TollsStagingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tollsstaging.FieldCaptureID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaptureID(v)
		return nil
	case tollsstaging.FieldPageResultID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageResultID(v)
		return nil
	case tollsstaging.FieldAiResponse:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiResponse(v)
		return nil
	case tollsstaging.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case tollsstaging.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case tollsstaging.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tollsstaging.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TollsStaging field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TollsStagingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TollsStagingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TollsStagingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TollsStaging numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TollsStagingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tollsstaging.FieldAiResponse) {
		fields = append(fields, tollsstaging.FieldAiResponse)
	}
	if m.FieldCleared(tollsstaging.FieldErrorMessage) {
		fields = append(fields, tollsstaging.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TollsStagingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TollsStagingMutation) ClearField(name string) error {
	switch name {
	case tollsstaging.FieldAiResponse:
		m.ClearAiResponse()
		return nil
	case tollsstaging.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown TollsStaging nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TollsStagingMutation) ResetField(name string) error {
	switch name {
	case tollsstaging.FieldCaptureID:
		m.ResetCaptureID()
		return nil
	case tollsstaging.FieldPageResultID:
		m.ResetPageResultID()
		return nil
	case tollsstaging.FieldAiResponse:
		m.ResetAiResponse()
		return nil
	case tollsstaging.FieldStatus:
		m.ResetStatus()
		return nil
	case tollsstaging.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case tollsstaging.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tollsstaging.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TollsStaging field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TollsStagingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TollsStagingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TollsStagingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TollsStagingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TollsStagingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TollsStagingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TollsStagingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TollsStaging unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TollsStagingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TollsStaging edge %s", name)
}

// TransportationAssetMutation represents an operation that mutates the TransportationAsset nodes in the graph.
type TransportationAssetMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	truck_number  *string
	etag_id       *string
	active        *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TransportationAsset, error)
	predicates    []predicate.TransportationAsset
}

var _ ent.Mutation = (*TransportationAssetMutation)(nil)

// transportationassetOption allows management of the mutation configuration using functional options.
type transportationassetOption func(*TransportationAssetMutation)

// newTransportationAssetMutation creates new mutation for the TransportationAsset entity.
func newTransportationAssetMutation(c config, op Op, opts ...transportationassetOption) *TransportationAssetMutation {
	m := &TransportationAssetMutation{
		config:        c,
		op:            op,
		typ:           TypeTransportationAsset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransportationAssetID sets the ID field of the mutation.
func withTransportationAssetID(id uuid.UUID) transportationassetOption {
	return func(m *TransportationAssetMutation) {
		var (
			err   error
			once  sync.Once
			value *TransportationAsset
		)
		m.oldValue = func(ctx context.Context) (*TransportationAsset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TransportationAsset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransportationAsset sets the old TransportationAsset of the mutation.
func withTransportationAsset(node *TransportationAsset) transportationassetOption {
	return func(m *TransportationAssetMutation) {
		m.oldValue = func(context.Context) (*TransportationAsset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransportationAssetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransportationAssetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TransportationAsset entities.
func (m *TransportationAssetMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransportationAssetMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransportationAssetMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TransportationAsset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTruckNumber sets the "truck_number" field.
func (m *TransportationAssetMutation) SetTruckNumber(s string) {
	m.truck_number = &s
}

// TruckNumber returns the value of the "truck_number" field in the mutation.
func (m *TransportationAssetMutation) TruckNumber() (r string, exists bool) {
	v := m.truck_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTruckNumber returns the old "truck_number" field's value of the TransportationAsset entity.
// If the TransportationAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransportationAssetMutation) OldTruckNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTruckNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTruckNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTruckNumber: %w", err)
	}
	return oldValue.TruckNumber, nil
}

// ResetTruckNumber resets all changes to the "truck_number" field.
func (m *TransportationAssetMutation) ResetTruckNumber() {
	m.truck_number = nil
}

// SetEtagID sets the "etag_id" field.
func (m *TransportationAssetMutation) SetEtagID(s string) {
	m.etag_id = &s
}

// EtagID returns the value of the "etag_id" field in the mutation.
func (m *TransportationAssetMutation) EtagID() (r string, exists bool) {
	v := m.etag_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEtagID returns the old "etag_id" field's value of the TransportationAsset entity.
// If the TransportationAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransportationAssetMutation) OldEtagID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEtagID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEtagID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEtagID: %w", err)
	}
	return oldValue.EtagID, nil
}

// ClearEtagID clears the value of the "etag_id" field.
func (m *TransportationAssetMutation) ClearEtagID() {
	m.etag_id = nil
	m.clearedFields[transportationasset.FieldEtagID] = struct{}{}
}

// EtagIDCleared returns if the "etag_id" field was cleared in this mutation.
func (m *TransportationAssetMutation) EtagIDCleared() bool {
	_, ok := m.clearedFields[transportationasset.FieldEtagID]
	return ok
}

// ResetEtagID resets all changes to the "etag_id" field.
func (m *TransportationAssetMutation) ResetEtagID() {
	m.etag_id = nil
	delete(m.clearedFields, transportationasset.FieldEtagID)
}

// SetActive sets the "active" field.
func (m *TransportationAssetMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *TransportationAssetMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the TransportationAsset entity.
// If the TransportationAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransportationAssetMutation) OldActive(ctx context.Context) (v bool, err error) {
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
func (m *TransportationAssetMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TransportationAssetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TransportationAssetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TransportationAsset entity.
// If the TransportationAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransportationAssetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TransportationAssetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TransportationAssetMutation builder.
func (m *TransportationAssetMutation) Where(ps ...predicate.TransportationAsset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransportationAssetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransportationAssetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TransportationAsset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransportationAssetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransportationAssetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TransportationAsset).
func (m *TransportationAssetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransportationAssetMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.truck_number != nil {
		fields = append(fields, transportationasset.FieldTruckNumber)
	}
	if m.etag_id != nil {
		fields = append(fields, transportationasset.FieldEtagID)
	}
	if m.active != nil {
		fields = append(fields, transportationasset.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, transportationasset.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransportationAssetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transportationasset.FieldTruckNumber:
		return m.TruckNumber()
	case transportationasset.FieldEtagID:
		return m.EtagID()
	case transportationasset.FieldActive:
		return m.Active()
	case transportationasset.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransportationAssetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transportationasset.FieldTruckNumber:
		return m.OldTruckNumber(ctx)
	case transportationasset.FieldEtagID:
		return m.OldEtagID(ctx)
	case transportationasset.FieldActive:
		return m.OldActive(ctx)
	case transportationasset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TransportationAsset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransportationAssetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transportationasset.FieldTruckNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTruckNumber(v)
		return nil
	case transportationasset.FieldEtagID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEtagID(v)
		return nil
	case transportationasset.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case transportationasset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TransportationAsset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransportationAssetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransportationAssetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransportationAssetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TransportationAsset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransportationAssetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transportationasset.FieldEtagID) {
		fields = append(fields, transportationasset.FieldEtagID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransportationAssetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransportationAssetMutation) ClearField(name string) error {
	switch name {
	case transportationasset.FieldEtagID:
		m.ClearEtagID()
		return nil
	}
	return fmt.Errorf("unknown TransportationAsset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransportationAssetMutation) ResetField(name string) error {
	switch name {
	case transportationasset.FieldTruckNumber:
		m.ResetTruckNumber()
		return nil
	case transportationasset.FieldEtagID:
		m.ResetEtagID()
		return nil
	case transportationasset.FieldActive:
		m.ResetActive()
		return nil
	case transportationasset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TransportationAsset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransportationAssetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransportationAssetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransportationAssetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransportationAssetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransportationAssetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransportationAssetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransportationAssetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TransportationAsset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransportationAssetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TransportationAsset edge %s", name)
}

// TripMutation represents an operation that mutates the Trip nodes in the graph.
type TripMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	driver_id            *uuid.UUID
	capture_id           *uuid.UUID
	date                 *time.Time
	truck_number         *string
	delivery_note_number *string
	odo_start            *int
	addodo_start         *int
	odo_end              *int
	addodo_end           *int
	time_start           *string
	time_end             *string
	status               *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Trip, error)
	predicates           []predicate.Trip
}

var _ ent.Mutation = (*TripMutation)(nil)

// tripOption allows management of the mutation configuration using functional options.
type tripOption func(*TripMutation)

// newTripMutation creates new mutation for the Trip entity.
func newTripMutation(c config, op Op, opts ...tripOption) *TripMutation {
	m := &TripMutation{
		config:        c,
		op:            op,
		typ:           TypeTrip,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTripID sets the ID field of the mutation.
func withTripID(id uuid.UUID) tripOption {
	return func(m *TripMutation) {
		var (
			err   error
			once  sync.Once
			value *Trip
		)
		m.oldValue = func(ctx context.Context) (*Trip, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Trip.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrip sets the old Trip of the mutation.
func withTrip(node *Trip) tripOption {
	return func(m *TripMutation) {
		m.oldValue = func(context.Context) (*Trip, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TripMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TripMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Trip entities.
func (m *TripMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TripMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TripMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Trip.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDriverID sets the "driver_id" field.
func (m *TripMutation) SetDriverID(u uuid.UUID) {
	m.driver_id = &u
}

// DriverID returns the value of the "driver_id" field in the mutation.
func (m *TripMutation) DriverID() (r uuid.UUID, exists bool) {
	v := m.driver_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDriverID returns the old "driver_id" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldDriverID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDriverID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDriverID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDriverID: %w", err)
	}
	return oldValue.DriverID, nil
}

// ResetDriverID resets all changes to the "driver_id" field.
func (m *TripMutation) ResetDriverID() {
	m.driver_id = nil
}

// SetCaptureID sets the "capture_id" field.
func (m *TripMutation) SetCaptureID(u uuid.UUID) {
	m.capture_id = &u
}

// CaptureID returns the value of the "capture_id" field in the mutation.
func (m *TripMutation) CaptureID() (r uuid.UUID, exists bool) {
	v := m.capture_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaptureID returns the old "capture_id" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldCaptureID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaptureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaptureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaptureID: %w", err)
	}
	return oldValue.CaptureID, nil
}

// ClearCaptureID clears the value of the "capture_id" field.
func (m *TripMutation) ClearCaptureID() {
	m.capture_id = nil
	m.clearedFields[trip.FieldCaptureID] = struct{}{}
}

// CaptureIDCleared returns if the "capture_id" field was cleared in this mutation.
func (m *TripMutation) CaptureIDCleared() bool {
	_, ok := m.clearedFields[trip.FieldCaptureID]
	return ok
}

// ResetCaptureID resets all changes to the "capture_id" field.
func (m *TripMutation) ResetCaptureID() {
	m.capture_id = nil
	delete(m.clearedFields, trip.FieldCaptureID)
}

// SetDate sets the "date" field.
func (m *TripMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *TripMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ClearDate clears the value of the "date" field.
func (m *TripMutation) ClearDate() {
	m.date = nil
	m.clearedFields[trip.FieldDate] = struct{}{}
}

// DateCleared returns if the "date" field was cleared in this mutation.
func (m *TripMutation) DateCleared() bool {
	_, ok := m.clearedFields[trip.FieldDate]
	return ok
}

// ResetDate resets all changes to the "date" field.
func (m *TripMutation) ResetDate() {
	m.date = nil
	delete(m.clearedFields, trip.FieldDate)
}

// SetTruckNumber sets the "truck_number" field.
func (m *TripMutation) SetTruckNumber(s string) {
	m.truck_number = &s
}

// TruckNumber returns the value of the "truck_number" field in the mutation.
func (m *TripMutation) TruckNumber() (r string, exists bool) {
	v := m.truck_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTruckNumber returns the old "truck_number" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldTruckNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTruckNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTruckNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTruckNumber: %w", err)
	}
	return oldValue.TruckNumber, nil
}

// ClearTruckNumber clears the value of the "truck_number" field.
func (m *TripMutation) ClearTruckNumber() {
	m.truck_number = nil
	m.clearedFields[trip.FieldTruckNumber] = struct{}{}
}

// TruckNumberCleared returns if the "truck_number" field was cleared in this mutation.
func (m *TripMutation) TruckNumberCleared() bool {
	_, ok := m.clearedFields[trip.FieldTruckNumber]
	return ok
}

// ResetTruckNumber resets all changes to the "truck_number" field.
func (m *TripMutation) ResetTruckNumber() {
	m.truck_number = nil
	delete(m.clearedFields, trip.FieldTruckNumber)
}

// SetDeliveryNoteNumber sets the "delivery_note_number" field.
func (m *TripMutation) SetDeliveryNoteNumber(s string) {
	m.delivery_note_number = &s
}

// DeliveryNoteNumber returns the value of the "delivery_note_number" field in the mutation.
func (m *TripMutation) DeliveryNoteNumber() (r string, exists bool) {
	v := m.delivery_note_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryNoteNumber returns the old "delivery_note_number" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldDeliveryNoteNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryNoteNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryNoteNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryNoteNumber: %w", err)
	}
	return oldValue.DeliveryNoteNumber, nil
}

// ClearDeliveryNoteNumber clears the value of the "delivery_note_number" field.
func (m *TripMutation) ClearDeliveryNoteNumber() {
	m.delivery_note_number = nil
	m.clearedFields[trip.FieldDeliveryNoteNumber] = struct{}{}
}

// DeliveryNoteNumberCleared returns if the "delivery_note_number" field was cleared in this mutation.
func (m *TripMutation) DeliveryNoteNumberCleared() bool {
	_, ok := m.clearedFields[trip.FieldDeliveryNoteNumber]
	return ok
}

// ResetDeliveryNoteNumber resets all changes to the "delivery_note_number" field.
func (m *TripMutation) ResetDeliveryNoteNumber() {
	m.delivery_note_number = nil
	delete(m.clearedFields, trip.FieldDeliveryNoteNumber)
}

// SetOdoStart sets the "odo_start" field.
func (m *TripMutation) SetOdoStart(i int) {
	m.odo_start = &i
	m.addodo_start = nil
}

// OdoStart returns the value of the "odo_start" field in the mutation.
func (m *TripMutation) OdoStart() (r int, exists bool) {
	v := m.odo_start
	if v == nil {
		return
	}
	return *v, true
}

// OldOdoStart returns the old "odo_start" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldOdoStart(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOdoStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOdoStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOdoStart: %w", err)
	}
	return oldValue.OdoStart, nil
}

// AddOdoStart adds i to the "odo_start" field.
func (m *TripMutation) AddOdoStart(i int) {
	if m.addodo_start != nil {
		*m.addodo_start += i
	} else {
		m.addodo_start = &i
	}
}

// AddedOdoStart returns the value that was added to the "odo_start" field in this mutation.
func (m *TripMutation) AddedOdoStart() (r int, exists bool) {
	v := m.addodo_start
	if v == nil {
		return
	}
	return *v, true
}

// ClearOdoStart clears the value of the "odo_start" field.
func (m *TripMutation) ClearOdoStart() {
	m.odo_start = nil
	m.addodo_start = nil
	m.clearedFields[trip.FieldOdoStart] = struct{}{}
}

// OdoStartCleared returns if the "odo_start" field was cleared in this mutation.
func (m *TripMutation) OdoStartCleared() bool {
	_, ok := m.clearedFields[trip.FieldOdoStart]
	return ok
}

// ResetOdoStart resets all changes to the "odo_start" field.
func (m *TripMutation) ResetOdoStart() {
	m.odo_start = nil
	m.addodo_start = nil
	delete(m.clearedFields, trip.FieldOdoStart)
}

// SetOdoEnd sets the "odo_end" field.
func (m *TripMutation) SetOdoEnd(i int) {
	m.odo_end = &i
	m.addodo_end = nil
}

// OdoEnd returns the value of the "odo_end" field in the mutation.
func (m *TripMutation) OdoEnd() (r int, exists bool) {
	v := m.odo_end
	if v == nil {
		return
	}
	return *v, true
}

// OldOdoEnd returns the old "odo_end" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldOdoEnd(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOdoEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOdoEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOdoEnd: %w", err)
	}
	return oldValue.OdoEnd, nil
}

// AddOdoEnd adds i to the "odo_end" field.
func (m *TripMutation) AddOdoEnd(i int) {
	if m.addodo_end != nil {
		*m.addodo_end += i
	} else {
		m.addodo_end = &i
	}
}

// AddedOdoEnd returns the value that was added to the "odo_end" field in this mutation.
func (m *TripMutation) AddedOdoEnd() (r int, exists bool) {
	v := m.addodo_end
	if v == nil {
		return
	}
	return *v, true
}

// ClearOdoEnd clears the value of the "odo_end" field.
func (m *TripMutation) ClearOdoEnd() {
	m.odo_end = nil
	m.addodo_end = nil
	m.clearedFields[trip.FieldOdoEnd] = struct{}{}
}

// OdoEndCleared returns if the "odo_end" field was cleared in this mutation.
func (m *TripMutation) OdoEndCleared() bool {
	_, ok := m.clearedFields[trip.FieldOdoEnd]
	return ok
}

// ResetOdoEnd resets all changes to the "odo_end" field.
func (m *TripMutation) ResetOdoEnd() {
	m.odo_end = nil
	m.addodo_end = nil
	delete(m.clearedFields, trip.FieldOdoEnd)
}

// SetTimeStart sets the "time_start" field.
func (m *TripMutation) SetTimeStart(s string) {
	m.time_start = &s
}

// TimeStart returns the value of the "time_start" field in the mutation.
func (m *TripMutation) TimeStart() (r string, exists bool) {
	v := m.time_start
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeStart returns the old "time_start" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldTimeStart(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeStart: %w", err)
	}
	return oldValue.TimeStart, nil
}

// ClearTimeStart clears the value of the "time_start" field.
func (m *TripMutation) ClearTimeStart() {
	m.time_start = nil
	m.clearedFields[trip.FieldTimeStart] = struct{}{}
}

// TimeStartCleared returns if the "time_start" field was cleared in this mutation.
func (m *TripMutation) TimeStartCleared() bool {
	_, ok := m.clearedFields[trip.FieldTimeStart]
	return ok
}

// ResetTimeStart resets all changes to the "time_start" field.
func (m *TripMutation) ResetTimeStart() {
	m.time_start = nil
	delete(m.clearedFields, trip.FieldTimeStart)
}

// SetTimeEnd sets the "time_end" field.
func (m *TripMutation) SetTimeEnd(s string) {
	m.time_end = &s
}

// TimeEnd returns the value of the "time_end" field in the mutation.
func (m *TripMutation) TimeEnd() (r string, exists bool) {
	v := m.time_end
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeEnd returns the old "time_end" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldTimeEnd(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeEnd: %w", err)
	}
	return oldValue.TimeEnd, nil
}

// ClearTimeEnd clears the value of the "time_end" field.
func (m *TripMutation) ClearTimeEnd() {
	m.time_end = nil
	m.clearedFields[trip.FieldTimeEnd] = struct{}{}
}

// TimeEndCleared returns if the "time_end" field was cleared in this mutation.
func (m *TripMutation) TimeEndCleared() bool {
	_, ok := m.clearedFields[trip.FieldTimeEnd]
	return ok
}

// ResetTimeEnd resets all changes to the "time_end" field.
func (m *TripMutation) ResetTimeEnd() {
	m.time_end = nil
	delete(m.clearedFields, trip.FieldTimeEnd)
}

// SetStatus sets the "status" field.
func (m *TripMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TripMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TripMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TripMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TripMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TripMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TripMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TripMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Trip entity.
// If the Trip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TripMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TripMutation builder.
func (m *TripMutation) Where(ps ...predicate.Trip) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TripMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TripMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Trip, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TripMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TripMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Trip).
func (m *TripMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TripMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.driver_id != nil {
		fields = append(fields, trip.FieldDriverID)
	}
	if m.capture_id != nil {
		fields = append(fields, trip.FieldCaptureID)
	}
	if m.date != nil {
		fields = append(fields, trip.FieldDate)
	}
	if m.truck_number != nil {
		fields = append(fields, trip.FieldTruckNumber)
	}
	if m.delivery_note_number != nil {
		fields = append(fields, trip.FieldDeliveryNoteNumber)
	}
	if m.odo_start != nil {
		fields = append(fields, trip.FieldOdoStart)
	}
	if m.odo_end != nil {
		fields = append(fields, trip.FieldOdoEnd)
	}
	if m.time_start != nil {
		fields = append(fields, trip.FieldTimeStart)
	}
	if m.time_end != nil {
		fields = append(fields, trip.FieldTimeEnd)
	}
	if m.status != nil {
		fields = append(fields, trip.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, trip.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, trip.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TripMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trip.FieldDriverID:
		return m.DriverID()
	case trip.FieldCaptureID:
		return m.CaptureID()
	case trip.FieldDate:
		return m.Date()
	case trip.FieldTruckNumber:
		return m.TruckNumber()
	case trip.FieldDeliveryNoteNumber:
		return m.DeliveryNoteNumber()
	case trip.FieldOdoStart:
		return m.OdoStart()
	case trip.FieldOdoEnd:
		return m.OdoEnd()
	case trip.FieldTimeStart:
		return m.TimeStart()
	case trip.FieldTimeEnd:
		return m.TimeEnd()
	case trip.FieldStatus:
		return m.Status()
	case trip.FieldCreatedAt:
		return m.CreatedAt()
	case trip.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TripMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trip.FieldDriverID:
		return m.OldDriverID(ctx)
	case trip.FieldCaptureID:
		return m.OldCaptureID(ctx)
	case trip.FieldDate:
		return m.OldDate(ctx)
	case trip.FieldTruckNumber:
		return m.OldTruckNumber(ctx)
	case trip.FieldDeliveryNoteNumber:
		return m.OldDeliveryNoteNumber(ctx)
	case trip.FieldOdoStart:
		return m.OldOdoStart(ctx)
	case trip.FieldOdoEnd:
		return m.OldOdoEnd(ctx)
	case trip.FieldTimeStart:
		return m.OldTimeStart(ctx)
	case trip.FieldTimeEnd:
		return m.OldTimeEnd(ctx)
	case trip.FieldStatus:
		return m.OldStatus(ctx)
	case trip.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case trip.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Trip field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TripMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trip.FieldDriverID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDriverID(v)
		return nil
	case trip.FieldCaptureID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaptureID(v)
		return nil
	case trip.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case trip.FieldTruckNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTruckNumber(v)
		return nil
	case trip.FieldDeliveryNoteNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryNoteNumber(v)
		return nil
	case trip.FieldOdoStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOdoStart(v)
		return nil
	case trip.FieldOdoEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOdoEnd(v)
		return nil
	case trip.FieldTimeStart:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeStart(v)
		return nil
	case trip.FieldTimeEnd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeEnd(v)
		return nil
	case trip.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case trip.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case trip.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Trip field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TripMutation) AddedFields() []string {
	var fields []string
	if m.addodo_start != nil {
		fields = append(fields, trip.FieldOdoStart)
	}
	if m.addodo_end != nil {
		fields = append(fields, trip.FieldOdoEnd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TripMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trip.FieldOdoStart:
		return m.AddedOdoStart()
	case trip.FieldOdoEnd:
		return m.AddedOdoEnd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TripMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trip.FieldOdoStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOdoStart(v)
		return nil
	case trip.FieldOdoEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOdoEnd(v)
		return nil
	}
	return fmt.Errorf("unknown Trip numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TripMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trip.FieldCaptureID) {
		fields = append(fields, trip.FieldCaptureID)
	}
	if m.FieldCleared(trip.FieldDate) {
		fields = append(fields, trip.FieldDate)
	}
	if m.FieldCleared(trip.FieldTruckNumber) {
		fields = append(fields, trip.FieldTruckNumber)
	}
	if m.FieldCleared(trip.FieldDeliveryNoteNumber) {
		fields = append(fields, trip.FieldDeliveryNoteNumber)
	}
	if m.FieldCleared(trip.FieldOdoStart) {
		fields = append(fields, trip.FieldOdoStart)
	}
	if m.FieldCleared(trip.FieldOdoEnd) {
		fields = append(fields, trip.FieldOdoEnd)
	}
	if m.FieldCleared(trip.FieldTimeStart) {
		fields = append(fields, trip.FieldTimeStart)
	}
	if m.FieldCleared(trip.FieldTimeEnd) {
		fields = append(fields, trip.FieldTimeEnd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TripMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TripMutation) ClearField(name string) error {
	switch name {
	case trip.FieldCaptureID:
		m.ClearCaptureID()
		return nil
	case trip.FieldDate:
		m.ClearDate()
		return nil
	case trip.FieldTruckNumber:
		m.ClearTruckNumber()
		return nil
	case trip.FieldDeliveryNoteNumber:
		m.ClearDeliveryNoteNumber()
		return nil
	case trip.FieldOdoStart:
		m.ClearOdoStart()
		return nil
	case trip.FieldOdoEnd:
		m.ClearOdoEnd()
		return nil
	case trip.FieldTimeStart:
		m.ClearTimeStart()
		return nil
	case trip.FieldTimeEnd:
		m.ClearTimeEnd()
		return nil
	}
	return fmt.Errorf("unknown Trip nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TripMutation) ResetField(name string) error {
	switch name {
	case trip.FieldDriverID:
		m.ResetDriverID()
		return nil
	case trip.FieldCaptureID:
		m.ResetCaptureID()
		return nil
	case trip.FieldDate:
		m.ResetDate()
		return nil
	case trip.FieldTruckNumber:
		m.ResetTruckNumber()
		return nil
	case trip.FieldDeliveryNoteNumber:
		m.ResetDeliveryNoteNumber()
		return nil
	case trip.FieldOdoStart:
		m.ResetOdoStart()
		return nil
	case trip.FieldOdoEnd:
		m.ResetOdoEnd()
		return nil
	case trip.FieldTimeStart:
		m.ResetTimeStart()
		return nil
	case trip.FieldTimeEnd:
		m.ResetTimeEnd()
		return nil
	case trip.FieldStatus:
		m.ResetStatus()
		return nil
	case trip.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case trip.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Trip field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TripMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TripMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TripMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TripMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TripMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TripMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TripMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Trip unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TripMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Trip edge %s", name)
}

// TripDropMutation represents an operation that mutates the TripDrop nodes in the graph.
type TripDropMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	trip_id        *uuid.UUID
	seq            *int
	addseq         *int
	odo_reading    *int
	addodo_reading *int
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*TripDrop, error)
	predicates     []predicate.TripDrop
}

var _ ent.Mutation = (*TripDropMutation)(nil)

// tripdropOption allows management of the mutation configuration using functional options.
type tripdropOption func(*TripDropMutation)

// newTripDropMutation creates new mutation for the TripDrop entity.
func newTripDropMutation(c config, op Op, opts ...tripdropOption) *TripDropMutation {
	m := &TripDropMutation{
		config:        c,
		op:            op,
		typ:           TypeTripDrop,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTripDropID sets the ID field of the mutation.
func withTripDropID(id uuid.UUID) tripdropOption {
	return func(m *TripDropMutation) {
		var (
			err   error
			once  sync.Once
			value *TripDrop
		)
		m.oldValue = func(ctx context.Context) (*TripDrop, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TripDrop.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTripDrop sets the old TripDrop of the mutation.
func withTripDrop(node *TripDrop) tripdropOption {
	return func(m *TripDropMutation) {
		m.oldValue = func(context.Context) (*TripDrop, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TripDropMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TripDropMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TripDrop entities.
func (m *TripDropMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TripDropMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TripDropMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TripDrop.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTripID sets the "trip_id" field.
func (m *TripDropMutation) SetTripID(u uuid.UUID) {
	m.trip_id = &u
}

// TripID returns the value of the "trip_id" field in the mutation.
func (m *TripDropMutation) TripID() (r uuid.UUID, exists bool) {
	v := m.trip_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTripID returns the old "trip_id" field's value of the TripDrop entity.
// If the TripDrop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripDropMutation) OldTripID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTripID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTripID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTripID: %w", err)
	}
	return oldValue.TripID, nil
}

// ResetTripID resets all changes to the "trip_id" field.
func (m *TripDropMutation) ResetTripID() {
	m.trip_id = nil
}

// SetSeq sets the "seq" field.
func (m *TripDropMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *TripDropMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the TripDrop entity.
// If the TripDrop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripDropMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *TripDropMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *TripDropMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *TripDropMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetOdoReading sets the "odo_reading" field.
func (m *TripDropMutation) SetOdoReading(i int) {
	m.odo_reading = &i
	m.addodo_reading = nil
}

// OdoReading returns the value of the "odo_reading" field in the mutation.
func (m *TripDropMutation) OdoReading() (r int, exists bool) {
	v := m.odo_reading
	if v == nil {
		return
	}
	return *v, true
}

// OldOdoReading returns the old "odo_reading" field's value of the TripDrop entity.
// If the TripDrop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TripDropMutation) OldOdoReading(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOdoReading is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOdoReading requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOdoReading: %w", err)
	}
	return oldValue.OdoReading, nil
}

// AddOdoReading adds i to the "odo_reading" field.
func (m *TripDropMutation) AddOdoReading(i int) {
	if m.addodo_reading != nil {
		*m.addodo_reading += i
	} else {
		m.addodo_reading = &i
	}
}

// AddedOdoReading returns the value that was added to the "odo_reading" field in this mutation.
func (m *TripDropMutation) AddedOdoReading() (r int, exists bool) {
	v := m.addodo_reading
	if v == nil {
		return
	}
	return *v, true
}

// ResetOdoReading resets all changes to the "odo_reading" field.
func (m *TripDropMutation) ResetOdoReading() {
	m.odo_reading = nil
	m.addodo_reading = nil
}

// Where appends a list predicates to the TripDropMutation builder.
func (m *TripDropMutation) Where(ps ...predicate.TripDrop) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TripDropMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TripDropMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TripDrop, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TripDropMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TripDropMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TripDrop).
func (m *TripDropMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TripDropMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.trip_id != nil {
		fields = append(fields, tripdrop.FieldTripID)
	}
	if m.seq != nil {
		fields = append(fields, tripdrop.FieldSeq)
	}
	if m.odo_reading != nil {
		fields = append(fields, tripdrop.FieldOdoReading)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TripDropMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tripdrop.FieldTripID:
		return m.TripID()
	case tripdrop.FieldSeq:
		return m.Seq()
	case tripdrop.FieldOdoReading:
		return m.OdoReading()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TripDropMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tripdrop.FieldTripID:
		return m.OldTripID(ctx)
	case tripdrop.FieldSeq:
		return m.OldSeq(ctx)
	case tripdrop.FieldOdoReading:
		return m.OldOdoReading(ctx)
	}
	return nil, fmt.Errorf("unknown TripDrop field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TripDropMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tripdrop.FieldTripID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTripID(v)
		return nil
	case tripdrop.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case tripdrop.FieldOdoReading:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOdoReading(v)
		return nil
	}
	return fmt.Errorf("unknown TripDrop field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TripDropMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, tripdrop.FieldSeq)
	}
	if m.addodo_reading != nil {
		fields = append(fields, tripdrop.FieldOdoReading)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TripDropMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tripdrop.FieldSeq:
		return m.AddedSeq()
	case tripdrop.FieldOdoReading:
		return m.AddedOdoReading()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TripDropMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tripdrop.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case tripdrop.FieldOdoReading:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOdoReading(v)
		return nil
	}
	return fmt.Errorf("unknown TripDrop numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TripDropMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TripDropMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TripDropMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TripDrop nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TripDropMutation) ResetField(name string) error {
	switch name {
	case tripdrop.FieldTripID:
		m.ResetTripID()
		return nil
	case tripdrop.FieldSeq:
		m.ResetSeq()
		return nil
	case tripdrop.FieldOdoReading:
		m.ResetOdoReading()
		return nil
	}
	return fmt.Errorf("unknown TripDrop field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TripDropMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TripDropMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TripDropMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TripDropMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TripDropMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TripDropMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TripDropMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TripDrop unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TripDropMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TripDrop edge %s", name)
}
