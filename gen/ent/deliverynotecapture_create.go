// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetware/transport-ops/gen/ent/deliverynotecapture"
	"github.com/google/uuid"
)

// DeliveryNoteCaptureCreate is the builder for creating a DeliveryNoteCapture entity.
type DeliveryNoteCaptureCreate struct {
	config
	mutation *DeliveryNoteCaptureMutation
	hooks    []Hook
}

// SetDriverID sets the "driver_id" field.
func (_c *DeliveryNoteCaptureCreate) SetDriverID(v uuid.UUID) *DeliveryNoteCaptureCreate {
	_c.mutation.SetDriverID(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *DeliveryNoteCaptureCreate) SetFilePath(v string) *DeliveryNoteCaptureCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetOptimizedPath sets the "optimized_path" field.
func (_c *DeliveryNoteCaptureCreate) SetOptimizedPath(v string) *DeliveryNoteCaptureCreate {
	_c.mutation.SetOptimizedPath(v)
	return _c
}

// SetNillableOptimizedPath sets the "optimized_path" field if the given value is not nil.
func (_c *DeliveryNoteCaptureCreate) SetNillableOptimizedPath(v *string) *DeliveryNoteCaptureCreate {
	if v != nil {
		_c.SetOptimizedPath(*v)
	}
	return _c
}

// SetDeliveryNoteNumber sets the "delivery_note_number" field.
func (_c *DeliveryNoteCaptureCreate) SetDeliveryNoteNumber(v string) *DeliveryNoteCaptureCreate {
	_c.mutation.SetDeliveryNoteNumber(v)
	return _c
}

// SetNillableDeliveryNoteNumber sets the "delivery_note_number" field if the given value is not nil.
func (_c *DeliveryNoteCaptureCreate) SetNillableDeliveryNoteNumber(v *string) *DeliveryNoteCaptureCreate {
	if v != nil {
		_c.SetDeliveryNoteNumber(*v)
	}
	return _c
}

// SetTripID sets the "trip_id" field.
func (_c *DeliveryNoteCaptureCreate) SetTripID(v uuid.UUID) *DeliveryNoteCaptureCreate {
	_c.mutation.SetTripID(v)
	return _c
}

// SetNillableTripID sets the "trip_id" field if the given value is not nil.
func (_c *DeliveryNoteCaptureCreate) SetNillableTripID(v *uuid.UUID) *DeliveryNoteCaptureCreate {
	if v != nil {
		_c.SetTripID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DeliveryNoteCaptureCreate) SetStatus(v string) *DeliveryNoteCaptureCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DeliveryNoteCaptureCreate) SetNillableStatus(v *string) *DeliveryNoteCaptureCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DeliveryNoteCaptureCreate) SetErrorMessage(v string) *DeliveryNoteCaptureCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DeliveryNoteCaptureCreate) SetNillableErrorMessage(v *string) *DeliveryNoteCaptureCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeliveryNoteCaptureCreate) SetCreatedAt(v time.Time) *DeliveryNoteCaptureCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeliveryNoteCaptureCreate) SetNillableCreatedAt(v *time.Time) *DeliveryNoteCaptureCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DeliveryNoteCaptureCreate) SetUpdatedAt(v time.Time) *DeliveryNoteCaptureCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DeliveryNoteCaptureCreate) SetNillableUpdatedAt(v *time.Time) *DeliveryNoteCaptureCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeliveryNoteCaptureCreate) SetID(v uuid.UUID) *DeliveryNoteCaptureCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DeliveryNoteCaptureCreate) SetNillableID(v *uuid.UUID) *DeliveryNoteCaptureCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DeliveryNoteCaptureMutation object of the builder.
func (_c *DeliveryNoteCaptureCreate) Mutation() *DeliveryNoteCaptureMutation {
	return _c.mutation
}

// Save creates the DeliveryNoteCapture in the database.
func (_c *DeliveryNoteCaptureCreate) Save(ctx context.Context) (*DeliveryNoteCapture, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeliveryNoteCaptureCreate) SaveX(ctx context.Context) *DeliveryNoteCapture {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliveryNoteCaptureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliveryNoteCaptureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeliveryNoteCaptureCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := deliverynotecapture.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deliverynotecapture.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := deliverynotecapture.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := deliverynotecapture.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeliveryNoteCaptureCreate) check() error {
	if _, ok := _c.mutation.DriverID(); !ok {
		return &ValidationError{Name: "driver_id", err: errors.New(`ent: missing required field "DeliveryNoteCapture.driver_id"`)}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "DeliveryNoteCapture.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := deliverynotecapture.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "DeliveryNoteCapture.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DeliveryNoteCapture.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := deliverynotecapture.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeliveryNoteCapture.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DeliveryNoteCapture.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DeliveryNoteCapture.updated_at"`)}
	}
	return nil
}

func (_c *DeliveryNoteCaptureCreate) sqlSave(ctx context.Context) (*DeliveryNoteCapture, error) {
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

func (_c *DeliveryNoteCaptureCreate) createSpec() (*DeliveryNoteCapture, *sqlgraph.CreateSpec) {
	var (
		_node = &DeliveryNoteCapture{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deliverynotecapture.Table, sqlgraph.NewFieldSpec(deliverynotecapture.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DriverID(); ok {
		_spec.SetField(deliverynotecapture.FieldDriverID, field.TypeUUID, value)
		_node.DriverID = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(deliverynotecapture.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.OptimizedPath(); ok {
		_spec.SetField(deliverynotecapture.FieldOptimizedPath, field.TypeString, value)
		_node.OptimizedPath = &value
	}
	if value, ok := _c.mutation.DeliveryNoteNumber(); ok {
		_spec.SetField(deliverynotecapture.FieldDeliveryNoteNumber, field.TypeString, value)
		_node.DeliveryNoteNumber = &value
	}
	if value, ok := _c.mutation.TripID(); ok {
		_spec.SetField(deliverynotecapture.FieldTripID, field.TypeUUID, value)
		_node.TripID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(deliverynotecapture.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(deliverynotecapture.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deliverynotecapture.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(deliverynotecapture.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DeliveryNoteCaptureCreateBulk is the builder for creating many DeliveryNoteCapture entities in bulk.
type DeliveryNoteCaptureCreateBulk struct {
	config
	err      error
	builders []*DeliveryNoteCaptureCreate
}

// Save creates the DeliveryNoteCapture entities in the database.
func (_c *DeliveryNoteCaptureCreateBulk) Save(ctx context.Context) ([]*DeliveryNoteCapture, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeliveryNoteCapture, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeliveryNoteCaptureMutation)
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
func (_c *DeliveryNoteCaptureCreateBulk) SaveX(ctx context.Context) []*DeliveryNoteCapture {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliveryNoteCaptureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliveryNoteCaptureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
