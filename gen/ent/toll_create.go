// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetware/transport-ops/gen/ent/toll"
	"github.com/google/uuid"
)

// TollCreate is the builder for creating a Toll entity.
type TollCreate struct {
	config
	mutation *TollMutation
	hooks    []Hook
}

// SetTransactionDate sets the "transaction_date" field.
func (_c *TollCreate) SetTransactionDate(v time.Time) *TollCreate {
	_c.mutation.SetTransactionDate(v)
	return _c
}

// SetTollingPoint sets the "tolling_point" field.
func (_c *TollCreate) SetTollingPoint(v string) *TollCreate {
	_c.mutation.SetTollingPoint(v)
	return _c
}

// SetNillableTollingPoint sets the "tolling_point" field if the given value is not nil.
func (_c *TollCreate) SetNillableTollingPoint(v *string) *TollCreate {
	if v != nil {
		_c.SetTollingPoint(*v)
	}
	return _c
}

// SetEtagID sets the "etag_id" field.
func (_c *TollCreate) SetEtagID(v string) *TollCreate {
	_c.mutation.SetEtagID(v)
	return _c
}

// SetNetAmount sets the "net_amount" field.
func (_c *TollCreate) SetNetAmount(v float64) *TollCreate {
	_c.mutation.SetNetAmount(v)
	return _c
}

// SetCaptureID sets the "capture_id" field.
func (_c *TollCreate) SetCaptureID(v uuid.UUID) *TollCreate {
	_c.mutation.SetCaptureID(v)
	return _c
}

// SetPageResultID sets the "page_result_id" field.
func (_c *TollCreate) SetPageResultID(v uuid.UUID) *TollCreate {
	_c.mutation.SetPageResultID(v)
	return _c
}

// SetAssetID sets the "asset_id" field.
func (_c *TollCreate) SetAssetID(v uuid.UUID) *TollCreate {
	_c.mutation.SetAssetID(v)
	return _c
}

// SetNillableAssetID sets the "asset_id" field if the given value is not nil.
func (_c *TollCreate) SetNillableAssetID(v *uuid.UUID) *TollCreate {
	if v != nil {
		_c.SetAssetID(*v)
	}
	return _c
}

// SetDriverID sets the "driver_id" field.
func (_c *TollCreate) SetDriverID(v uuid.UUID) *TollCreate {
	_c.mutation.SetDriverID(v)
	return _c
}

// SetNillableDriverID sets the "driver_id" field if the given value is not nil.
func (_c *TollCreate) SetNillableDriverID(v *uuid.UUID) *TollCreate {
	if v != nil {
		_c.SetDriverID(*v)
	}
	return _c
}

// SetProcessStatus sets the "process_status" field.
func (_c *TollCreate) SetProcessStatus(v string) *TollCreate {
	_c.mutation.SetProcessStatus(v)
	return _c
}

// SetNillableProcessStatus sets the "process_status" field if the given value is not nil.
func (_c *TollCreate) SetNillableProcessStatus(v *string) *TollCreate {
	if v != nil {
		_c.SetProcessStatus(*v)
	}
	return _c
}

// SetExpenseID sets the "expense_id" field.
func (_c *TollCreate) SetExpenseID(v uuid.UUID) *TollCreate {
	_c.mutation.SetExpenseID(v)
	return _c
}

// SetNillableExpenseID sets the "expense_id" field if the given value is not nil.
func (_c *TollCreate) SetNillableExpenseID(v *uuid.UUID) *TollCreate {
	if v != nil {
		_c.SetExpenseID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TollCreate) SetCreatedAt(v time.Time) *TollCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TollCreate) SetNillableCreatedAt(v *time.Time) *TollCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TollCreate) SetID(v uuid.UUID) *TollCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TollCreate) SetNillableID(v *uuid.UUID) *TollCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TollMutation object of the builder.
func (_c *TollCreate) Mutation() *TollMutation {
	return _c.mutation
}

// Save creates the Toll in the database.
func (_c *TollCreate) Save(ctx context.Context) (*Toll, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TollCreate) SaveX(ctx context.Context) *Toll {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TollCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TollCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TollCreate) defaults() {
	if _, ok := _c.mutation.ProcessStatus(); !ok {
		v := toll.DefaultProcessStatus
		_c.mutation.SetProcessStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toll.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := toll.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TollCreate) check() error {
	if _, ok := _c.mutation.TransactionDate(); !ok {
		return &ValidationError{Name: "transaction_date", err: errors.New(`ent: missing required field "Toll.transaction_date"`)}
	}
	if _, ok := _c.mutation.EtagID(); !ok {
		return &ValidationError{Name: "etag_id", err: errors.New(`ent: missing required field "Toll.etag_id"`)}
	}
	if v, ok := _c.mutation.EtagID(); ok {
		if err := toll.EtagIDValidator(v); err != nil {
			return &ValidationError{Name: "etag_id", err: fmt.Errorf(`ent: validator failed for field "Toll.etag_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NetAmount(); !ok {
		return &ValidationError{Name: "net_amount", err: errors.New(`ent: missing required field "Toll.net_amount"`)}
	}
	if _, ok := _c.mutation.CaptureID(); !ok {
		return &ValidationError{Name: "capture_id", err: errors.New(`ent: missing required field "Toll.capture_id"`)}
	}
	if _, ok := _c.mutation.PageResultID(); !ok {
		return &ValidationError{Name: "page_result_id", err: errors.New(`ent: missing required field "Toll.page_result_id"`)}
	}
	if _, ok := _c.mutation.ProcessStatus(); !ok {
		return &ValidationError{Name: "process_status", err: errors.New(`ent: missing required field "Toll.process_status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Toll.created_at"`)}
	}
	return nil
}

func (_c *TollCreate) sqlSave(ctx context.Context) (*Toll, error) {
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

func (_c *TollCreate) createSpec() (*Toll, *sqlgraph.CreateSpec) {
	var (
		_node = &Toll{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toll.Table, sqlgraph.NewFieldSpec(toll.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TransactionDate(); ok {
		_spec.SetField(toll.FieldTransactionDate, field.TypeTime, value)
		_node.TransactionDate = value
	}
	if value, ok := _c.mutation.TollingPoint(); ok {
		_spec.SetField(toll.FieldTollingPoint, field.TypeString, value)
		_node.TollingPoint = value
	}
	if value, ok := _c.mutation.EtagID(); ok {
		_spec.SetField(toll.FieldEtagID, field.TypeString, value)
		_node.EtagID = value
	}
	if value, ok := _c.mutation.NetAmount(); ok {
		_spec.SetField(toll.FieldNetAmount, field.TypeFloat64, value)
		_node.NetAmount = value
	}
	if value, ok := _c.mutation.CaptureID(); ok {
		_spec.SetField(toll.FieldCaptureID, field.TypeUUID, value)
		_node.CaptureID = value
	}
	if value, ok := _c.mutation.PageResultID(); ok {
		_spec.SetField(toll.FieldPageResultID, field.TypeUUID, value)
		_node.PageResultID = value
	}
	if value, ok := _c.mutation.AssetID(); ok {
		_spec.SetField(toll.FieldAssetID, field.TypeUUID, value)
		_node.AssetID = &value
	}
	if value, ok := _c.mutation.DriverID(); ok {
		_spec.SetField(toll.FieldDriverID, field.TypeUUID, value)
		_node.DriverID = &value
	}
	if value, ok := _c.mutation.ProcessStatus(); ok {
		_spec.SetField(toll.FieldProcessStatus, field.TypeString, value)
		_node.ProcessStatus = value
	}
	if value, ok := _c.mutation.ExpenseID(); ok {
		_spec.SetField(toll.FieldExpenseID, field.TypeUUID, value)
		_node.ExpenseID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toll.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TollCreateBulk is the builder for creating many Toll entities in bulk.
type TollCreateBulk struct {
	config
	err      error
	builders []*TollCreate
}

// Save creates the Toll entities in the database.
func (_c *TollCreateBulk) Save(ctx context.Context) ([]*Toll, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Toll, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TollMutation)
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
func (_c *TollCreateBulk) SaveX(ctx context.Context) []*Toll {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TollCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TollCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
