// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetware/transport-ops/gen/ent/tripdrop"
	"github.com/google/uuid"
)

// TripDropCreate is the builder for creating a TripDrop entity.
type TripDropCreate struct {
	config
	mutation *TripDropMutation
	hooks    []Hook
}

// SetTripID sets the "trip_id" field.
func (_c *TripDropCreate) SetTripID(v uuid.UUID) *TripDropCreate {
	_c.mutation.SetTripID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *TripDropCreate) SetSeq(v int) *TripDropCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetOdoReading sets the "odo_reading" field.
func (_c *TripDropCreate) SetOdoReading(v int) *TripDropCreate {
	_c.mutation.SetOdoReading(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TripDropCreate) SetID(v uuid.UUID) *TripDropCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TripDropCreate) SetNillableID(v *uuid.UUID) *TripDropCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TripDropMutation object of the builder.
func (_c *TripDropCreate) Mutation() *TripDropMutation {
	return _c.mutation
}

// Save creates the TripDrop in the database.
func (_c *TripDropCreate) Save(ctx context.Context) (*TripDrop, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TripDropCreate) SaveX(ctx context.Context) *TripDrop {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TripDropCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TripDropCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TripDropCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := tripdrop.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TripDropCreate) check() error {
	if _, ok := _c.mutation.TripID(); !ok {
		return &ValidationError{Name: "trip_id", err: errors.New(`ent: missing required field "TripDrop.trip_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "TripDrop.seq"`)}
	}
	if v, ok := _c.mutation.Seq(); ok {
		if err := tripdrop.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "TripDrop.seq": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OdoReading(); !ok {
		return &ValidationError{Name: "odo_reading", err: errors.New(`ent: missing required field "TripDrop.odo_reading"`)}
	}
	return nil
}

func (_c *TripDropCreate) sqlSave(ctx context.Context) (*TripDrop, error) {
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

func (_c *TripDropCreate) createSpec() (*TripDrop, *sqlgraph.CreateSpec) {
	var (
		_node = &TripDrop{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tripdrop.Table, sqlgraph.NewFieldSpec(tripdrop.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TripID(); ok {
		_spec.SetField(tripdrop.FieldTripID, field.TypeUUID, value)
		_node.TripID = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(tripdrop.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.OdoReading(); ok {
		_spec.SetField(tripdrop.FieldOdoReading, field.TypeInt, value)
		_node.OdoReading = value
	}
	return _node, _spec
}

// TripDropCreateBulk is the builder for creating many TripDrop entities in bulk.
type TripDropCreateBulk struct {
	config
	err      error
	builders []*TripDropCreate
}

// Save creates the TripDrop entities in the database.
func (_c *TripDropCreateBulk) Save(ctx context.Context) ([]*TripDrop, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TripDrop, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TripDropMutation)
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
func (_c *TripDropCreateBulk) SaveX(ctx context.Context) []*TripDrop {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TripDropCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TripDropCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
