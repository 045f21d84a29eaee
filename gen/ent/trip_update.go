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
	"github.com/fleetware/transport-ops/gen/ent/predicate"
	"github.com/fleetware/transport-ops/gen/ent/trip"
	"github.com/google/uuid"
)

// TripUpdate is the builder for updating Trip entities.
type TripUpdate struct {
	config
	hooks    []Hook
	mutation *TripMutation
}

// Where appends a list predicates to the TripUpdate builder.
func (_u *TripUpdate) Where(ps ...predicate.Trip) *TripUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDriverID sets the "driver_id" field.
func (_u *TripUpdate) SetDriverID(v uuid.UUID) *TripUpdate {
	_u.mutation.SetDriverID(v)
	return _u
}

// SetNillableDriverID sets the "driver_id" field if the given value is not nil.
func (_u *TripUpdate) SetNillableDriverID(v *uuid.UUID) *TripUpdate {
	if v != nil {
		_u.SetDriverID(*v)
	}
	return _u
}

// SetCaptureID sets the "capture_id" field.
func (_u *TripUpdate) SetCaptureID(v uuid.UUID) *TripUpdate {
	_u.mutation.SetCaptureID(v)
	return _u
}

// SetNillableCaptureID sets the "capture_id" field if the given value is not nil.
func (_u *TripUpdate) SetNillableCaptureID(v *uuid.UUID) *TripUpdate {
	if v != nil {
		_u.SetCaptureID(*v)
	}
	return _u
}

// ClearCaptureID clears the value of the "capture_id" field.
func (_u *TripUpdate) ClearCaptureID() *TripUpdate {
	_u.mutation.ClearCaptureID()
	return _u
}

// SetDate sets the "date" field.
func (_u *TripUpdate) SetDate(v time.Time) *TripUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *TripUpdate) SetNillableDate(v *time.Time) *TripUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// ClearDate clears the value of the "date" field.
func (_u *TripUpdate) ClearDate() *TripUpdate {
	_u.mutation.ClearDate()
	return _u
}

// SetTruckNumber sets the "truck_number" field.
func (_u *TripUpdate) SetTruckNumber(v string) *TripUpdate {
	_u.mutation.SetTruckNumber(v)
	return _u
}

// SetNillableTruckNumber sets the "truck_number" field if the given value is not nil.
func (_u *TripUpdate) SetNillableTruckNumber(v *string) *TripUpdate {
	if v != nil {
		_u.SetTruckNumber(*v)
	}
	return _u
}

// ClearTruckNumber clears the value of the "truck_number" field.
func (_u *TripUpdate) ClearTruckNumber() *TripUpdate {
	_u.mutation.ClearTruckNumber()
	return _u
}

// SetDeliveryNoteNumber sets the "delivery_note_number" field.
func (_u *TripUpdate) SetDeliveryNoteNumber(v string) *TripUpdate {
	_u.mutation.SetDeliveryNoteNumber(v)
	return _u
}

// SetNillableDeliveryNoteNumber sets the "delivery_note_number" field if the given value is not nil.
func (_u *TripUpdate) SetNillableDeliveryNoteNumber(v *string) *TripUpdate {
	if v != nil {
		_u.SetDeliveryNoteNumber(*v)
	}
	return _u
}

// ClearDeliveryNoteNumber clears the value of the "delivery_note_number" field.
func (_u *TripUpdate) ClearDeliveryNoteNumber() *TripUpdate {
	_u.mutation.ClearDeliveryNoteNumber()
	return _u
}

// SetOdoStart sets the "odo_start" field.
func (_u *TripUpdate) SetOdoStart(v int) *TripUpdate {
	_u.mutation.ResetOdoStart()
	_u.mutation.SetOdoStart(v)
	return _u
}

// SetNillableOdoStart sets the "odo_start" field if the given value is not nil.
func (_u *TripUpdate) SetNillableOdoStart(v *int) *TripUpdate {
	if v != nil {
		_u.SetOdoStart(*v)
	}
	return _u
}

// AddOdoStart adds value to the "odo_start" field.
func (_u *TripUpdate) AddOdoStart(v int) *TripUpdate {
	_u.mutation.AddOdoStart(v)
	return _u
}

// ClearOdoStart clears the value of the "odo_start" field.
func (_u *TripUpdate) ClearOdoStart() *TripUpdate {
	_u.mutation.ClearOdoStart()
	return _u
}

// SetOdoEnd sets the "odo_end" field.
func (_u *TripUpdate) SetOdoEnd(v int) *TripUpdate {
	_u.mutation.ResetOdoEnd()
	_u.mutation.SetOdoEnd(v)
	return _u
}

// SetNillableOdoEnd sets the "odo_end" field if the given value is not nil.
func (_u *TripUpdate) SetNillableOdoEnd(v *int) *TripUpdate {
	if v != nil {
		_u.SetOdoEnd(*v)
	}
	return _u
}

// AddOdoEnd adds value to the "odo_end" field.
func (_u *TripUpdate) AddOdoEnd(v int) *TripUpdate {
	_u.mutation.AddOdoEnd(v)
	return _u
}

// ClearOdoEnd clears the value of the "odo_end" field.
func (_u *TripUpdate) ClearOdoEnd() *TripUpdate {
	_u.mutation.ClearOdoEnd()
	return _u
}

// SetTimeStart sets the "time_start" field.
func (_u *TripUpdate) SetTimeStart(v string) *TripUpdate {
	_u.mutation.SetTimeStart(v)
	return _u
}

// SetNillableTimeStart sets the "time_start" field if the given value is not nil.
func (_u *TripUpdate) SetNillableTimeStart(v *string) *TripUpdate {
	if v != nil {
		_u.SetTimeStart(*v)
	}
	return _u
}

// ClearTimeStart clears the value of the "time_start" field.
func (_u *TripUpdate) ClearTimeStart() *TripUpdate {
	_u.mutation.ClearTimeStart()
	return _u
}

// SetTimeEnd sets the "time_end" field.
func (_u *TripUpdate) SetTimeEnd(v string) *TripUpdate {
	_u.mutation.SetTimeEnd(v)
	return _u
}

// SetNillableTimeEnd sets the "time_end" field if the given value is not nil.
func (_u *TripUpdate) SetNillableTimeEnd(v *string) *TripUpdate {
	if v != nil {
		_u.SetTimeEnd(*v)
	}
	return _u
}

// ClearTimeEnd clears the value of the "time_end" field.
func (_u *TripUpdate) ClearTimeEnd() *TripUpdate {
	_u.mutation.ClearTimeEnd()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TripUpdate) SetStatus(v string) *TripUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TripUpdate) SetNillableStatus(v *string) *TripUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TripUpdate) SetCreatedAt(v time.Time) *TripUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TripUpdate) SetNillableCreatedAt(v *time.Time) *TripUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TripUpdate) SetUpdatedAt(v time.Time) *TripUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TripMutation object of the builder.
func (_u *TripUpdate) Mutation() *TripMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TripUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TripUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TripUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TripUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TripUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := trip.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TripUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := trip.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Trip.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TripUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trip.Table, trip.Columns, sqlgraph.NewFieldSpec(trip.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DriverID(); ok {
		_spec.SetField(trip.FieldDriverID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CaptureID(); ok {
		_spec.SetField(trip.FieldCaptureID, field.TypeUUID, value)
	}
	if _u.mutation.CaptureIDCleared() {
		_spec.ClearField(trip.FieldCaptureID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(trip.FieldDate, field.TypeTime, value)
	}
	if _u.mutation.DateCleared() {
		_spec.ClearField(trip.FieldDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TruckNumber(); ok {
		_spec.SetField(trip.FieldTruckNumber, field.TypeString, value)
	}
	if _u.mutation.TruckNumberCleared() {
		_spec.ClearField(trip.FieldTruckNumber, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryNoteNumber(); ok {
		_spec.SetField(trip.FieldDeliveryNoteNumber, field.TypeString, value)
	}
	if _u.mutation.DeliveryNoteNumberCleared() {
		_spec.ClearField(trip.FieldDeliveryNoteNumber, field.TypeString)
	}
	if value, ok := _u.mutation.OdoStart(); ok {
		_spec.SetField(trip.FieldOdoStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOdoStart(); ok {
		_spec.AddField(trip.FieldOdoStart, field.TypeInt, value)
	}
	if _u.mutation.OdoStartCleared() {
		_spec.ClearField(trip.FieldOdoStart, field.TypeInt)
	}
	if value, ok := _u.mutation.OdoEnd(); ok {
		_spec.SetField(trip.FieldOdoEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOdoEnd(); ok {
		_spec.AddField(trip.FieldOdoEnd, field.TypeInt, value)
	}
	if _u.mutation.OdoEndCleared() {
		_spec.ClearField(trip.FieldOdoEnd, field.TypeInt)
	}
	if value, ok := _u.mutation.TimeStart(); ok {
		_spec.SetField(trip.FieldTimeStart, field.TypeString, value)
	}
	if _u.mutation.TimeStartCleared() {
		_spec.ClearField(trip.FieldTimeStart, field.TypeString)
	}
	if value, ok := _u.mutation.TimeEnd(); ok {
		_spec.SetField(trip.FieldTimeEnd, field.TypeString, value)
	}
	if _u.mutation.TimeEndCleared() {
		_spec.ClearField(trip.FieldTimeEnd, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(trip.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(trip.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(trip.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trip.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TripUpdateOne is the builder for updating a single Trip entity.
type TripUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TripMutation
}

// SetDriverID sets the "driver_id" field.
func (_u *TripUpdateOne) SetDriverID(v uuid.UUID) *TripUpdateOne {
	_u.mutation.SetDriverID(v)
	return _u
}

// SetNillableDriverID sets the "driver_id" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableDriverID(v *uuid.UUID) *TripUpdateOne {
	if v != nil {
		_u.SetDriverID(*v)
	}
	return _u
}

// SetCaptureID sets the "capture_id" field.
func (_u *TripUpdateOne) SetCaptureID(v uuid.UUID) *TripUpdateOne {
	_u.mutation.SetCaptureID(v)
	return _u
}

// SetNillableCaptureID sets the "capture_id" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableCaptureID(v *uuid.UUID) *TripUpdateOne {
	if v != nil {
		_u.SetCaptureID(*v)
	}
	return _u
}

// ClearCaptureID clears the value of the "capture_id" field.
func (_u *TripUpdateOne) ClearCaptureID() *TripUpdateOne {
	_u.mutation.ClearCaptureID()
	return _u
}

// SetDate sets the "date" field.
func (_u *TripUpdateOne) SetDate(v time.Time) *TripUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableDate(v *time.Time) *TripUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// ClearDate clears the value of the "date" field.
func (_u *TripUpdateOne) ClearDate() *TripUpdateOne {
	_u.mutation.ClearDate()
	return _u
}

// SetTruckNumber sets the "truck_number" field.
func (_u *TripUpdateOne) SetTruckNumber(v string) *TripUpdateOne {
	_u.mutation.SetTruckNumber(v)
	return _u
}

// SetNillableTruckNumber sets the "truck_number" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableTruckNumber(v *string) *TripUpdateOne {
	if v != nil {
		_u.SetTruckNumber(*v)
	}
	return _u
}

// ClearTruckNumber clears the value of the "truck_number" field.
func (_u *TripUpdateOne) ClearTruckNumber() *TripUpdateOne {
	_u.mutation.ClearTruckNumber()
	return _u
}

// SetDeliveryNoteNumber sets the "delivery_note_number" field.
func (_u *TripUpdateOne) SetDeliveryNoteNumber(v string) *TripUpdateOne {
	_u.mutation.SetDeliveryNoteNumber(v)
	return _u
}

// SetNillableDeliveryNoteNumber sets the "delivery_note_number" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableDeliveryNoteNumber(v *string) *TripUpdateOne {
	if v != nil {
		_u.SetDeliveryNoteNumber(*v)
	}
	return _u
}

// ClearDeliveryNoteNumber clears the value of the "delivery_note_number" field.
func (_u *TripUpdateOne) ClearDeliveryNoteNumber() *TripUpdateOne {
	_u.mutation.ClearDeliveryNoteNumber()
	return _u
}

// SetOdoStart sets the "odo_start" field.
func (_u *TripUpdateOne) SetOdoStart(v int) *TripUpdateOne {
	_u.mutation.ResetOdoStart()
	_u.mutation.SetOdoStart(v)
	return _u
}

// SetNillableOdoStart sets the "odo_start" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableOdoStart(v *int) *TripUpdateOne {
	if v != nil {
		_u.SetOdoStart(*v)
	}
	return _u
}

// AddOdoStart adds value to the "odo_start" field.
func (_u *TripUpdateOne) AddOdoStart(v int) *TripUpdateOne {
	_u.mutation.AddOdoStart(v)
	return _u
}

// ClearOdoStart clears the value of the "odo_start" field.
func (_u *TripUpdateOne) ClearOdoStart() *TripUpdateOne {
	_u.mutation.ClearOdoStart()
	return _u
}

// SetOdoEnd sets the "odo_end" field.
func (_u *TripUpdateOne) SetOdoEnd(v int) *TripUpdateOne {
	_u.mutation.ResetOdoEnd()
	_u.mutation.SetOdoEnd(v)
	return _u
}

// SetNillableOdoEnd sets the "odo_end" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableOdoEnd(v *int) *TripUpdateOne {
	if v != nil {
		_u.SetOdoEnd(*v)
	}
	return _u
}

// AddOdoEnd adds value to the "odo_end" field.
func (_u *TripUpdateOne) AddOdoEnd(v int) *TripUpdateOne {
	_u.mutation.AddOdoEnd(v)
	return _u
}

// ClearOdoEnd clears the value of the "odo_end" field.
func (_u *TripUpdateOne) ClearOdoEnd() *TripUpdateOne {
	_u.mutation.ClearOdoEnd()
	return _u
}

// SetTimeStart sets the "time_start" field.
func (_u *TripUpdateOne) SetTimeStart(v string) *TripUpdateOne {
	_u.mutation.SetTimeStart(v)
	return _u
}

// SetNillableTimeStart sets the "time_start" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableTimeStart(v *string) *TripUpdateOne {
	if v != nil {
		_u.SetTimeStart(*v)
	}
	return _u
}

// ClearTimeStart clears the value of the "time_start" field.
func (_u *TripUpdateOne) ClearTimeStart() *TripUpdateOne {
	_u.mutation.ClearTimeStart()
	return _u
}

// SetTimeEnd sets the "time_end" field.
func (_u *TripUpdateOne) SetTimeEnd(v string) *TripUpdateOne {
	_u.mutation.SetTimeEnd(v)
	return _u
}

// SetNillableTimeEnd sets the "time_end" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableTimeEnd(v *string) *TripUpdateOne {
	if v != nil {
		_u.SetTimeEnd(*v)
	}
	return _u
}

// ClearTimeEnd clears the value of the "time_end" field.
func (_u *TripUpdateOne) ClearTimeEnd() *TripUpdateOne {
	_u.mutation.ClearTimeEnd()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TripUpdateOne) SetStatus(v string) *TripUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableStatus(v *string) *TripUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TripUpdateOne) SetCreatedAt(v time.Time) *TripUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TripUpdateOne) SetNillableCreatedAt(v *time.Time) *TripUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TripUpdateOne) SetUpdatedAt(v time.Time) *TripUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TripMutation object of the builder.
func (_u *TripUpdateOne) Mutation() *TripMutation {
	return _u.mutation
}

// Where appends a list predicates to the TripUpdate builder.
func (_u *TripUpdateOne) Where(ps ...predicate.Trip) *TripUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TripUpdateOne) Select(field string, fields ...string) *TripUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Trip entity.
func (_u *TripUpdateOne) Save(ctx context.Context) (*Trip, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TripUpdateOne) SaveX(ctx context.Context) *Trip {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TripUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TripUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TripUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := trip.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TripUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := trip.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Trip.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TripUpdateOne) sqlSave(ctx context.Context) (_node *Trip, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trip.Table, trip.Columns, sqlgraph.NewFieldSpec(trip.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Trip.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trip.FieldID)
		for _, f := range fields {
			if !trip.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trip.FieldID {
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
		_spec.SetField(trip.FieldDriverID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CaptureID(); ok {
		_spec.SetField(trip.FieldCaptureID, field.TypeUUID, value)
	}
	if _u.mutation.CaptureIDCleared() {
		_spec.ClearField(trip.FieldCaptureID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(trip.FieldDate, field.TypeTime, value)
	}
	if _u.mutation.DateCleared() {
		_spec.ClearField(trip.FieldDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TruckNumber(); ok {
		_spec.SetField(trip.FieldTruckNumber, field.TypeString, value)
	}
	if _u.mutation.TruckNumberCleared() {
		_spec.ClearField(trip.FieldTruckNumber, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryNoteNumber(); ok {
		_spec.SetField(trip.FieldDeliveryNoteNumber, field.TypeString, value)
	}
	if _u.mutation.DeliveryNoteNumberCleared() {
		_spec.ClearField(trip.FieldDeliveryNoteNumber, field.TypeString)
	}
	if value, ok := _u.mutation.OdoStart(); ok {
		_spec.SetField(trip.FieldOdoStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOdoStart(); ok {
		_spec.AddField(trip.FieldOdoStart, field.TypeInt, value)
	}
	if _u.mutation.OdoStartCleared() {
		_spec.ClearField(trip.FieldOdoStart, field.TypeInt)
	}
	if value, ok := _u.mutation.OdoEnd(); ok {
		_spec.SetField(trip.FieldOdoEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOdoEnd(); ok {
		_spec.AddField(trip.FieldOdoEnd, field.TypeInt, value)
	}
	if _u.mutation.OdoEndCleared() {
		_spec.ClearField(trip.FieldOdoEnd, field.TypeInt)
	}
	if value, ok := _u.mutation.TimeStart(); ok {
		_spec.SetField(trip.FieldTimeStart, field.TypeString, value)
	}
	if _u.mutation.TimeStartCleared() {
		_spec.ClearField(trip.FieldTimeStart, field.TypeString)
	}
	if value, ok := _u.mutation.TimeEnd(); ok {
		_spec.SetField(trip.FieldTimeEnd, field.TypeString, value)
	}
	if _u.mutation.TimeEndCleared() {
		_spec.ClearField(trip.FieldTimeEnd, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(trip.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(trip.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(trip.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Trip{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trip.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
