// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetware/transport-ops/gen/ent/trip"
	"github.com/google/uuid"
)

// TripCreate is the builder for creating a Trip entity.
type TripCreate struct {
	config
	mutation *TripMutation
	hooks    []Hook
}

// SetDriverID sets the "driver_id" field.
func (_c *TripCreate) SetDriverID(v uuid.UUID) *TripCreate {
	_c.mutation.SetDriverID(v)
	return _c
}

// SetCaptureID sets the "capture_id" field.
func (_c *TripCreate) SetCaptureID(v uuid.UUID) *TripCreate {
	_c.mutation.SetCaptureID(v)
	return _c
}

// SetNillableCaptureID sets the "capture_id" field if the given value is not nil.
func (_c *TripCreate) SetNillableCaptureID(v *uuid.UUID) *TripCreate {
	if v != nil {
		_c.SetCaptureID(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *TripCreate) SetDate(v time.Time) *TripCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_c *TripCreate) SetNillableDate(v *time.Time) *TripCreate {
	if v != nil {
		_c.SetDate(*v)
	}
	return _c
}

// SetTruckNumber sets the "truck_number" field.
func (_c *TripCreate) SetTruckNumber(v string) *TripCreate {
	_c.mutation.SetTruckNumber(v)
	return _c
}

// SetNillableTruckNumber sets the "truck_number" field if the given value is not nil.
func (_c *TripCreate) SetNillableTruckNumber(v *string) *TripCreate {
	if v != nil {
		_c.SetTruckNumber(*v)
	}
	return _c
}

// SetDeliveryNoteNumber sets the "delivery_note_number" field.
func (_c *TripCreate) SetDeliveryNoteNumber(v string) *TripCreate {
	_c.mutation.SetDeliveryNoteNumber(v)
	return _c
}

// SetNillableDeliveryNoteNumber sets the "delivery_note_number" field if the given value is not nil.
func (_c *TripCreate) SetNillableDeliveryNoteNumber(v *string) *TripCreate {
	if v != nil {
		_c.SetDeliveryNoteNumber(*v)
	}
	return _c
}

// SetOdoStart sets the "odo_start" field.
func (_c *TripCreate) SetOdoStart(v int) *TripCreate {
	_c.mutation.SetOdoStart(v)
	return _c
}

// SetNillableOdoStart sets the "odo_start" field if the given value is not nil.
func (_c *TripCreate) SetNillableOdoStart(v *int) *TripCreate {
	if v != nil {
		_c.SetOdoStart(*v)
	}
	return _c
}

// SetOdoEnd sets the "odo_end" field.
func (_c *TripCreate) SetOdoEnd(v int) *TripCreate {
	_c.mutation.SetOdoEnd(v)
	return _c
}

// SetNillableOdoEnd sets the "odo_end" field if the given value is not nil.
func (_c *TripCreate) SetNillableOdoEnd(v *int) *TripCreate {
	if v != nil {
		_c.SetOdoEnd(*v)
	}
	return _c
}

// SetTimeStart sets the "time_start" field.
func (_c *TripCreate) SetTimeStart(v string) *TripCreate {
	_c.mutation.SetTimeStart(v)
	return _c
}

// SetNillableTimeStart sets the "time_start" field if the given value is not nil.
func (_c *TripCreate) SetNillableTimeStart(v *string) *TripCreate {
	if v != nil {
		_c.SetTimeStart(*v)
	}
	return _c
}

// SetTimeEnd sets the "time_end" field.
func (_c *TripCreate) SetTimeEnd(v string) *TripCreate {
	_c.mutation.SetTimeEnd(v)
	return _c
}

// SetNillableTimeEnd sets the "time_end" field if the given value is not nil.
func (_c *TripCreate) SetNillableTimeEnd(v *string) *TripCreate {
	if v != nil {
		_c.SetTimeEnd(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TripCreate) SetStatus(v string) *TripCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TripCreate) SetNillableStatus(v *string) *TripCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TripCreate) SetCreatedAt(v time.Time) *TripCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TripCreate) SetNillableCreatedAt(v *time.Time) *TripCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TripCreate) SetUpdatedAt(v time.Time) *TripCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TripCreate) SetNillableUpdatedAt(v *time.Time) *TripCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TripCreate) SetID(v uuid.UUID) *TripCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TripCreate) SetNillableID(v *uuid.UUID) *TripCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TripMutation object of the builder.
func (_c *TripCreate) Mutation() *TripMutation {
	return _c.mutation
}

// Save creates the Trip in the database.
func (_c *TripCreate) Save(ctx context.Context) (*Trip, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TripCreate) SaveX(ctx context.Context) *Trip {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TripCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TripCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TripCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := trip.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trip.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := trip.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := trip.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TripCreate) check() error {
	if _, ok := _c.mutation.DriverID(); !ok {
		return &ValidationError{Name: "driver_id", err: errors.New(`ent: missing required field "Trip.driver_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Trip.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := trip.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Trip.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Trip.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Trip.updated_at"`)}
	}
	return nil
}

func (_c *TripCreate) sqlSave(ctx context.Context) (*Trip, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TripCreate) createSpec() (*Trip, *sqlgraph.CreateSpec) {
	var (
		_node = &Trip{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trip.Table, sqlgraph.NewFieldSpec(trip.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DriverID(); ok {
		_spec.SetField(trip.FieldDriverID, field.TypeUUID, value)
		_node.DriverID = value
	}
	if value, ok := _c.mutation.CaptureID(); ok {
		_spec.SetField(trip.FieldCaptureID, field.TypeUUID, value)
		_node.CaptureID = &value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(trip.FieldDate, field.TypeTime, value)
		_node.Date = &value
	}
	if value, ok := _c.mutation.TruckNumber(); ok {
		_spec.SetField(trip.FieldTruckNumber, field.TypeString, value)
		_node.TruckNumber = &value
	}
	if value, ok := _c.mutation.DeliveryNoteNumber(); ok {
		_spec.SetField(trip.FieldDeliveryNoteNumber, field.TypeString, value)
		_node.DeliveryNoteNumber = &value
	}
	if value, ok := _c.mutation.OdoStart(); ok {
		_spec.SetField(trip.FieldOdoStart, field.TypeInt, value)
		_node.OdoStart = &value
	}
	if value, ok := _c.mutation.OdoEnd(); ok {
		_spec.SetField(trip.FieldOdoEnd, field.TypeInt, value)
		_node.OdoEnd = &value
	}
	if value, ok := _c.mutation.TimeStart(); ok {
		_spec.SetField(trip.FieldTimeStart, field.TypeString, value)
		_node.TimeStart = &value
	}
	if value, ok := _c.mutation.TimeEnd(); ok {
		_spec.SetField(trip.FieldTimeEnd, field.TypeString, value)
		_node.TimeEnd = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(trip.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trip.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(trip.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TripCreateBulk is the builder for creating many Trip entities in bulk.
type TripCreateBulk struct {
	config
	err      error
	builders []*TripCreate
}

// Save creates the Trip entities in the database.
func (_c *TripCreateBulk) Save(ctx context.Context) ([]*Trip, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Trip, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TripMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TripCreateBulk) SaveX(ctx context.Context) []*Trip {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TripCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TripCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
