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
	"github.com/fleetware/transport-ops/gen/ent/deliverynotecapture"
	"github.com/fleetware/transport-ops/gen/ent/predicate"
	"github.com/google/uuid"
)

// DeliveryNoteCaptureUpdate is the builder for updating DeliveryNoteCapture entities.
type DeliveryNoteCaptureUpdate struct {
	config
	hooks    []Hook
	mutation *DeliveryNoteCaptureMutation
}

// Where appends a list predicates to the DeliveryNoteCaptureUpdate builder.
func (_u *DeliveryNoteCaptureUpdate) Where(ps ...predicate.DeliveryNoteCapture) *DeliveryNoteCaptureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDriverID sets the "driver_id" field.
func (_u *DeliveryNoteCaptureUpdate) SetDriverID(v uuid.UUID) *DeliveryNoteCaptureUpdate {
	_u.mutation.SetDriverID(v)
	return _u
}

// SetNillableDriverID sets the "driver_id" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdate) SetNillableDriverID(v *uuid.UUID) *DeliveryNoteCaptureUpdate {
	if v != nil {
		_u.SetDriverID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DeliveryNoteCaptureUpdate) SetFilePath(v string) *DeliveryNoteCaptureUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdate) SetNillableFilePath(v *string) *DeliveryNoteCaptureUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetOptimizedPath sets the "optimized_path" field.
func (_u *DeliveryNoteCaptureUpdate) SetOptimizedPath(v string) *DeliveryNoteCaptureUpdate {
	_u.mutation.SetOptimizedPath(v)
	return _u
}

// SetNillableOptimizedPath sets the "optimized_path" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdate) SetNillableOptimizedPath(v *string) *DeliveryNoteCaptureUpdate {
	if v != nil {
		_u.SetOptimizedPath(*v)
	}
	return _u
}

// ClearOptimizedPath clears the value of the "optimized_path" field.
func (_u *DeliveryNoteCaptureUpdate) ClearOptimizedPath() *DeliveryNoteCaptureUpdate {
	_u.mutation.ClearOptimizedPath()
	return _u
}

// SetDeliveryNoteNumber sets the "delivery_note_number" field.
func (_u *DeliveryNoteCaptureUpdate) SetDeliveryNoteNumber(v string) *DeliveryNoteCaptureUpdate {
	_u.mutation.SetDeliveryNoteNumber(v)
	return _u
}

// SetNillableDeliveryNoteNumber sets the "delivery_note_number" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdate) SetNillableDeliveryNoteNumber(v *string) *DeliveryNoteCaptureUpdate {
	if v != nil {
		_u.SetDeliveryNoteNumber(*v)
	}
	return _u
}

// ClearDeliveryNoteNumber clears the value of the "delivery_note_number" field.
func (_u *DeliveryNoteCaptureUpdate) ClearDeliveryNoteNumber() *DeliveryNoteCaptureUpdate {
	_u.mutation.ClearDeliveryNoteNumber()
	return _u
}

// SetTripID sets the "trip_id" field.
func (_u *DeliveryNoteCaptureUpdate) SetTripID(v uuid.UUID) *DeliveryNoteCaptureUpdate {
	_u.mutation.SetTripID(v)
	return _u
}

// SetNillableTripID sets the "trip_id" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdate) SetNillableTripID(v *uuid.UUID) *DeliveryNoteCaptureUpdate {
	if v != nil {
		_u.SetTripID(*v)
	}
	return _u
}

// ClearTripID clears the value of the "trip_id" field.
func (_u *DeliveryNoteCaptureUpdate) ClearTripID() *DeliveryNoteCaptureUpdate {
	_u.mutation.ClearTripID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeliveryNoteCaptureUpdate) SetStatus(v string) *DeliveryNoteCaptureUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdate) SetNillableStatus(v *string) *DeliveryNoteCaptureUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DeliveryNoteCaptureUpdate) SetErrorMessage(v string) *DeliveryNoteCaptureUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdate) SetNillableErrorMessage(v *string) *DeliveryNoteCaptureUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DeliveryNoteCaptureUpdate) ClearErrorMessage() *DeliveryNoteCaptureUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DeliveryNoteCaptureUpdate) SetCreatedAt(v time.Time) *DeliveryNoteCaptureUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdate) SetNillableCreatedAt(v *time.Time) *DeliveryNoteCaptureUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeliveryNoteCaptureUpdate) SetUpdatedAt(v time.Time) *DeliveryNoteCaptureUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DeliveryNoteCaptureMutation object of the builder.
func (_u *DeliveryNoteCaptureUpdate) Mutation() *DeliveryNoteCaptureMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeliveryNoteCaptureUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliveryNoteCaptureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeliveryNoteCaptureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliveryNoteCaptureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeliveryNoteCaptureUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deliverynotecapture.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliveryNoteCaptureUpdate) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := deliverynotecapture.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "DeliveryNoteCapture.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := deliverynotecapture.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeliveryNoteCapture.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DeliveryNoteCaptureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliverynotecapture.Table, deliverynotecapture.Columns, sqlgraph.NewFieldSpec(deliverynotecapture.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DriverID(); ok {
		_spec.SetField(deliverynotecapture.FieldDriverID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(deliverynotecapture.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptimizedPath(); ok {
		_spec.SetField(deliverynotecapture.FieldOptimizedPath, field.TypeString, value)
	}
	if _u.mutation.OptimizedPathCleared() {
		_spec.ClearField(deliverynotecapture.FieldOptimizedPath, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryNoteNumber(); ok {
		_spec.SetField(deliverynotecapture.FieldDeliveryNoteNumber, field.TypeString, value)
	}
	if _u.mutation.DeliveryNoteNumberCleared() {
		_spec.ClearField(deliverynotecapture.FieldDeliveryNoteNumber, field.TypeString)
	}
	if value, ok := _u.mutation.TripID(); ok {
		_spec.SetField(deliverynotecapture.FieldTripID, field.TypeUUID, value)
	}
	if _u.mutation.TripIDCleared() {
		_spec.ClearField(deliverynotecapture.FieldTripID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deliverynotecapture.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(deliverynotecapture.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(deliverynotecapture.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(deliverynotecapture.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(deliverynotecapture.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliverynotecapture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeliveryNoteCaptureUpdateOne is the builder for updating a single DeliveryNoteCapture entity.
type DeliveryNoteCaptureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeliveryNoteCaptureMutation
}

// SetDriverID sets the "driver_id" field.
func (_u *DeliveryNoteCaptureUpdateOne) SetDriverID(v uuid.UUID) *DeliveryNoteCaptureUpdateOne {
	_u.mutation.SetDriverID(v)
	return _u
}

// SetNillableDriverID sets the "driver_id" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdateOne) SetNillableDriverID(v *uuid.UUID) *DeliveryNoteCaptureUpdateOne {
	if v != nil {
		_u.SetDriverID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DeliveryNoteCaptureUpdateOne) SetFilePath(v string) *DeliveryNoteCaptureUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdateOne) SetNillableFilePath(v *string) *DeliveryNoteCaptureUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetOptimizedPath sets the "optimized_path" field.
func (_u *DeliveryNoteCaptureUpdateOne) SetOptimizedPath(v string) *DeliveryNoteCaptureUpdateOne {
	_u.mutation.SetOptimizedPath(v)
	return _u
}

// SetNillableOptimizedPath sets the "optimized_path" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdateOne) SetNillableOptimizedPath(v *string) *DeliveryNoteCaptureUpdateOne {
	if v != nil {
		_u.SetOptimizedPath(*v)
	}
	return _u
}

// ClearOptimizedPath clears the value of the "optimized_path" field.
func (_u *DeliveryNoteCaptureUpdateOne) ClearOptimizedPath() *DeliveryNoteCaptureUpdateOne {
	_u.mutation.ClearOptimizedPath()
	return _u
}

// SetDeliveryNoteNumber sets the "delivery_note_number" field.
func (_u *DeliveryNoteCaptureUpdateOne) SetDeliveryNoteNumber(v string) *DeliveryNoteCaptureUpdateOne {
	_u.mutation.SetDeliveryNoteNumber(v)
	return _u
}

// SetNillableDeliveryNoteNumber sets the "delivery_note_number" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdateOne) SetNillableDeliveryNoteNumber(v *string) *DeliveryNoteCaptureUpdateOne {
	if v != nil {
		_u.SetDeliveryNoteNumber(*v)
	}
	return _u
}

// ClearDeliveryNoteNumber clears the value of the "delivery_note_number" field.
func (_u *DeliveryNoteCaptureUpdateOne) ClearDeliveryNoteNumber() *DeliveryNoteCaptureUpdateOne {
	_u.mutation.ClearDeliveryNoteNumber()
	return _u
}

// SetTripID sets the "trip_id" field.
func (_u *DeliveryNoteCaptureUpdateOne) SetTripID(v uuid.UUID) *DeliveryNoteCaptureUpdateOne {
	_u.mutation.SetTripID(v)
	return _u
}

// SetNillableTripID sets the "trip_id" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdateOne) SetNillableTripID(v *uuid.UUID) *DeliveryNoteCaptureUpdateOne {
	if v != nil {
		_u.SetTripID(*v)
	}
	return _u
}

// ClearTripID clears the value of the "trip_id" field.
func (_u *DeliveryNoteCaptureUpdateOne) ClearTripID() *DeliveryNoteCaptureUpdateOne {
	_u.mutation.ClearTripID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeliveryNoteCaptureUpdateOne) SetStatus(v string) *DeliveryNoteCaptureUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdateOne) SetNillableStatus(v *string) *DeliveryNoteCaptureUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DeliveryNoteCaptureUpdateOne) SetErrorMessage(v string) *DeliveryNoteCaptureUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdateOne) SetNillableErrorMessage(v *string) *DeliveryNoteCaptureUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DeliveryNoteCaptureUpdateOne) ClearErrorMessage() *DeliveryNoteCaptureUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DeliveryNoteCaptureUpdateOne) SetCreatedAt(v time.Time) *DeliveryNoteCaptureUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DeliveryNoteCaptureUpdateOne) SetNillableCreatedAt(v *time.Time) *DeliveryNoteCaptureUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeliveryNoteCaptureUpdateOne) SetUpdatedAt(v time.Time) *DeliveryNoteCaptureUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DeliveryNoteCaptureMutation object of the builder.
func (_u *DeliveryNoteCaptureUpdateOne) Mutation() *DeliveryNoteCaptureMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeliveryNoteCaptureUpdate builder.
func (_u *DeliveryNoteCaptureUpdateOne) Where(ps ...predicate.DeliveryNoteCapture) *DeliveryNoteCaptureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeliveryNoteCaptureUpdateOne) Select(field string, fields ...string) *DeliveryNoteCaptureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeliveryNoteCapture entity.
func (_u *DeliveryNoteCaptureUpdateOne) Save(ctx context.Context) (*DeliveryNoteCapture, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliveryNoteCaptureUpdateOne) SaveX(ctx context.Context) *DeliveryNoteCapture {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeliveryNoteCaptureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliveryNoteCaptureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeliveryNoteCaptureUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deliverynotecapture.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliveryNoteCaptureUpdateOne) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := deliverynotecapture.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "DeliveryNoteCapture.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := deliverynotecapture.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeliveryNoteCapture.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DeliveryNoteCaptureUpdateOne) sqlSave(ctx context.Context) (_node *DeliveryNoteCapture, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliverynotecapture.Table, deliverynotecapture.Columns, sqlgraph.NewFieldSpec(deliverynotecapture.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeliveryNoteCapture.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deliverynotecapture.FieldID)
		for _, f := range fields {
			if !deliverynotecapture.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deliverynotecapture.FieldID {
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
	if value, ok := _u.mutation.DriverID(); ok {
		_spec.SetField(deliverynotecapture.FieldDriverID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(deliverynotecapture.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptimizedPath(); ok {
		_spec.SetField(deliverynotecapture.FieldOptimizedPath, field.TypeString, value)
	}
	if _u.mutation.OptimizedPathCleared() {
		_spec.ClearField(deliverynotecapture.FieldOptimizedPath, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryNoteNumber(); ok {
		_spec.SetField(deliverynotecapture.FieldDeliveryNoteNumber, field.TypeString, value)
	}
	if _u.mutation.DeliveryNoteNumberCleared() {
		_spec.ClearField(deliverynotecapture.FieldDeliveryNoteNumber, field.TypeString)
	}
	if value, ok := _u.mutation.TripID(); ok {
		_spec.SetField(deliverynotecapture.FieldTripID, field.TypeUUID, value)
	}
	if _u.mutation.TripIDCleared() {
		_spec.ClearField(deliverynotecapture.FieldTripID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deliverynotecapture.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(deliverynotecapture.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(deliverynotecapture.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(deliverynotecapture.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(deliverynotecapture.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DeliveryNoteCapture{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliverynotecapture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
