// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetware/transport-ops/gen/ent/tollcapture"
	"github.com/google/uuid"
)

// TollCaptureCreate is the builder for creating a TollCapture entity.
type TollCaptureCreate struct {
	config
	mutation *TollCaptureMutation
	hooks    []Hook
}

// SetDriverID sets the "driver_id" field.
func (_c *TollCaptureCreate) SetDriverID(v uuid.UUID) *TollCaptureCreate {
	_c.mutation.SetDriverID(v)
	return _c
}

// SetAssetID sets the "asset_id" field.
func (_c *TollCaptureCreate) SetAssetID(v uuid.UUID) *TollCaptureCreate {
	_c.mutation.SetAssetID(v)
	return _c
}

// SetNillableAssetID sets the "asset_id" field if the given value is not nil.
func (_c *TollCaptureCreate) SetNillableAssetID(v *uuid.UUID) *TollCaptureCreate {
	if v != nil {
		_c.SetAssetID(*v)
	}
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *TollCaptureCreate) SetFilePath(v string) *TollCaptureCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetTotalRecords sets the "total_records" field.
func (_c *TollCaptureCreate) SetTotalRecords(v int) *TollCaptureCreate {
	_c.mutation.SetTotalRecords(v)
	return _c
}

// SetNillableTotalRecords sets the "total_records" field if the given value is not nil.
func (_c *TollCaptureCreate) SetNillableTotalRecords(v *int) *TollCaptureCreate {
	if v != nil {
		_c.SetTotalRecords(*v)
	}
	return _c
}

// SetProgressCount sets the "progress_count" field.
func (_c *TollCaptureCreate) SetProgressCount(v string) *TollCaptureCreate {
	_c.mutation.SetProgressCount(v)
	return _c
}

// SetNillableProgressCount sets the "progress_count" field if the given value is not nil.
func (_c *TollCaptureCreate) SetNillableProgressCount(v *string) *TollCaptureCreate {
	if v != nil {
		_c.SetProgressCount(*v)
	}
	return _c
}

// SetProcessedPages sets the "processed_pages" field.
func (_c *TollCaptureCreate) SetProcessedPages(v json.RawMessage) *TollCaptureCreate {
	_c.mutation.SetProcessedPages(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TollCaptureCreate) SetStatus(v string) *TollCaptureCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TollCaptureCreate) SetNillableStatus(v *string) *TollCaptureCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TollCaptureCreate) SetErrorMessage(v string) *TollCaptureCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TollCaptureCreate) SetNillableErrorMessage(v *string) *TollCaptureCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TollCaptureCreate) SetCreatedAt(v time.Time) *TollCaptureCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TollCaptureCreate) SetNillableCreatedAt(v *time.Time) *TollCaptureCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TollCaptureCreate) SetUpdatedAt(v time.Time) *TollCaptureCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TollCaptureCreate) SetNillableUpdatedAt(v *time.Time) *TollCaptureCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TollCaptureCreate) SetID(v uuid.UUID) *TollCaptureCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TollCaptureCreate) SetNillableID(v *uuid.UUID) *TollCaptureCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TollCaptureMutation object of the builder.
func (_c *TollCaptureCreate) Mutation() *TollCaptureMutation {
	return _c.mutation
}

// Save creates the TollCapture in the database.
func (_c *TollCaptureCreate) Save(ctx context.Context) (*TollCapture, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TollCaptureCreate) SaveX(ctx context.Context) *TollCapture {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TollCaptureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TollCaptureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TollCaptureCreate) defaults() {
	if _, ok := _c.mutation.TotalRecords(); !ok {
		v := tollcapture.DefaultTotalRecords
		_c.mutation.SetTotalRecords(v)
	}
	if _, ok := _c.mutation.ProgressCount(); !ok {
		v := tollcapture.DefaultProgressCount
		_c.mutation.SetProgressCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := tollcapture.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tollcapture.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tollcapture.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tollcapture.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TollCaptureCreate) check() error {
	if _, ok := _c.mutation.DriverID(); !ok {
		return &ValidationError{Name: "driver_id", err: errors.New(`ent: missing required field "TollCapture.driver_id"`)}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "TollCapture.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := tollcapture.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "TollCapture.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalRecords(); !ok {
		return &ValidationError{Name: "total_records", err: errors.New(`ent: missing required field "TollCapture.total_records"`)}
	}
	if v, ok := _c.mutation.TotalRecords(); ok {
		if err := tollcapture.TotalRecordsValidator(v); err != nil {
			return &ValidationError{Name: "total_records", err: fmt.Errorf(`ent: validator failed for field "TollCapture.total_records": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProgressCount(); !ok {
		return &ValidationError{Name: "progress_count", err: errors.New(`ent: missing required field "TollCapture.progress_count"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TollCapture.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := tollcapture.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TollCapture.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TollCapture.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TollCapture.updated_at"`)}
	}
	return nil
}

func (_c *TollCaptureCreate) sqlSave(ctx context.Context) (*TollCapture, error) {
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

func (_c *TollCaptureCreate) createSpec() (*TollCapture, *sqlgraph.CreateSpec) {
	var (
		_node = &TollCapture{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tollcapture.Table, sqlgraph.NewFieldSpec(tollcapture.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DriverID(); ok {
		_spec.SetField(tollcapture.FieldDriverID, field.TypeUUID, value)
		_node.DriverID = value
	}
	if value, ok := _c.mutation.AssetID(); ok {
		_spec.SetField(tollcapture.FieldAssetID, field.TypeUUID, value)
		_node.AssetID = &value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(tollcapture.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.TotalRecords(); ok {
		_spec.SetField(tollcapture.FieldTotalRecords, field.TypeInt, value)
		_node.TotalRecords = value
	}
	if value, ok := _c.mutation.ProgressCount(); ok {
		_spec.SetField(tollcapture.FieldProgressCount, field.TypeString, value)
		_node.ProgressCount = value
	}
	if value, ok := _c.mutation.ProcessedPages(); ok {
		_spec.SetField(tollcapture.FieldProcessedPages, field.TypeJSON, value)
		_node.ProcessedPages = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(tollcapture.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(tollcapture.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tollcapture.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tollcapture.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TollCaptureCreateBulk is the builder for creating many TollCapture entities in bulk.
type TollCaptureCreateBulk struct {
	config
	err      error
	builders []*TollCaptureCreate
}

// Save creates the TollCapture entities in the database.
func (_c *TollCaptureCreateBulk) Save(ctx context.Context) ([]*TollCapture, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TollCapture, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TollCaptureMutation)
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
func (_c *TollCaptureCreateBulk) SaveX(ctx context.Context) []*TollCapture {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TollCaptureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TollCaptureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
