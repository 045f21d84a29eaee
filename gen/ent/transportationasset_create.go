// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetware/transport-ops/gen/ent/transportationasset"
	"github.com/google/uuid"
)

// TransportationAssetCreate is the builder for creating a TransportationAsset entity.
type TransportationAssetCreate struct {
	config
	mutation *TransportationAssetMutation
	hooks    []Hook
}

// SetTruckNumber sets the "truck_number" field.
func (_c *TransportationAssetCreate) SetTruckNumber(v string) *TransportationAssetCreate {
	_c.mutation.SetTruckNumber(v)
	return _c
}

// SetEtagID sets the "etag_id" field.
func (_c *TransportationAssetCreate) SetEtagID(v string) *TransportationAssetCreate {
	_c.mutation.SetEtagID(v)
	return _c
}

// SetNillableEtagID sets the "etag_id" field if the given value is not nil.
func (_c *TransportationAssetCreate) SetNillableEtagID(v *string) *TransportationAssetCreate {
	if v != nil {
		_c.SetEtagID(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *TransportationAssetCreate) SetActive(v bool) *TransportationAssetCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *TransportationAssetCreate) SetNillableActive(v *bool) *TransportationAssetCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TransportationAssetCreate) SetCreatedAt(v time.Time) *TransportationAssetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TransportationAssetCreate) SetNillableCreatedAt(v *time.Time) *TransportationAssetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TransportationAssetCreate) SetID(v uuid.UUID) *TransportationAssetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TransportationAssetCreate) SetNillableID(v *uuid.UUID) *TransportationAssetCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TransportationAssetMutation object of the builder.
func (_c *TransportationAssetCreate) Mutation() *TransportationAssetMutation {
	return _c.mutation
}

// Save creates the TransportationAsset in the database.
func (_c *TransportationAssetCreate) Save(ctx context.Context) (*TransportationAsset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TransportationAssetCreate) SaveX(ctx context.Context) *TransportationAsset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransportationAssetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransportationAssetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TransportationAssetCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := transportationasset.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transportationasset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := transportationasset.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TransportationAssetCreate) check() error {
	if _, ok := _c.mutation.TruckNumber(); !ok {
		return &ValidationError{Name: "truck_number", err: errors.New(`ent: missing required field "TransportationAsset.truck_number"`)}
	}
	if v, ok := _c.mutation.TruckNumber(); ok {
		if err := transportationasset.TruckNumberValidator(v); err != nil {
			return &ValidationError{Name: "truck_number", err: fmt.Errorf(`ent: validator failed for field "TransportationAsset.truck_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "TransportationAsset.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TransportationAsset.created_at"`)}
	}
	return nil
}

func (_c *TransportationAssetCreate) sqlSave(ctx context.Context) (*TransportationAsset, error) {
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

func (_c *TransportationAssetCreate) createSpec() (*TransportationAsset, *sqlgraph.CreateSpec) {
	var (
		_node = &TransportationAsset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transportationasset.Table, sqlgraph.NewFieldSpec(transportationasset.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TruckNumber(); ok {
		_spec.SetField(transportationasset.FieldTruckNumber, field.TypeString, value)
		_node.TruckNumber = value
	}
	if value, ok := _c.mutation.EtagID(); ok {
		_spec.SetField(transportationasset.FieldEtagID, field.TypeString, value)
		_node.EtagID = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(transportationasset.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transportationasset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TransportationAssetCreateBulk is the builder for creating many TransportationAsset entities in bulk.
type TransportationAssetCreateBulk struct {
	config
	err      error
	builders []*TransportationAssetCreate
}

// Save creates the TransportationAsset entities in the database.
func (_c *TransportationAssetCreateBulk) Save(ctx context.Context) ([]*TransportationAsset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TransportationAsset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TransportationAssetMutation)
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
func (_c *TransportationAssetCreateBulk) SaveX(ctx context.Context) []*TransportationAsset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransportationAssetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransportationAssetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
