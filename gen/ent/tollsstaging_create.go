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
	"github.com/fleetware/transport-ops/gen/ent/tollsstaging"
	"github.com/google/uuid"
)

// TollsStagingCreate is the builder for creating a TollsStaging entity.
type TollsStagingCreate struct {
	config
	mutation *TollsStagingMutation
	hooks    []Hook
}

// SetCaptureID sets the "capture_id" field.
func (_c *TollsStagingCreate) SetCaptureID(v uuid.UUID) *TollsStagingCreate {
	_c.mutation.SetCaptureID(v)
	return _c
}

// SetPageResultID sets the "page_result_id" field.
func (_c *TollsStagingCreate) SetPageResultID(v uuid.UUID) *TollsStagingCreate {
	_c.mutation.SetPageResultID(v)
	return _c
}

// SetAiResponse sets the "ai_response" field.
func (_c *TollsStagingCreate) SetAiResponse(v json.RawMessage) *TollsStagingCreate {
	_c.mutation.SetAiResponse(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TollsStagingCreate) SetStatus(v string) *TollsStagingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TollsStagingCreate) SetNillableStatus(v *string) *TollsStagingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TollsStagingCreate) SetErrorMessage(v string) *TollsStagingCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TollsStagingCreate) SetNillableErrorMessage(v *string) *TollsStagingCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TollsStagingCreate) SetCreatedAt(v time.Time) *TollsStagingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TollsStagingCreate) SetNillableCreatedAt(v *time.Time) *TollsStagingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TollsStagingCreate) SetUpdatedAt(v time.Time) *TollsStagingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TollsStagingCreate) SetNillableUpdatedAt(v *time.Time) *TollsStagingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TollsStagingCreate) SetID(v uuid.UUID) *TollsStagingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TollsStagingCreate) SetNillableID(v *uuid.UUID) *TollsStagingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TollsStagingMutation object of the builder.
func (_c *TollsStagingCreate) Mutation() *TollsStagingMutation {
	return _c.mutation
}

// Save creates the TollsStaging in the database.
func (_c *TollsStagingCreate) Save(ctx context.Context) (*TollsStaging, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TollsStagingCreate) SaveX(ctx context.Context) *TollsStaging {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TollsStagingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TollsStagingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TollsStagingCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := tollsstaging.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tollsstaging.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tollsstaging.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tollsstaging.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TollsStagingCreate) check() error {
	if _, ok := _c.mutation.CaptureID(); !ok {
		return &ValidationError{Name: "capture_id", err: errors.New(`ent: missing required field "TollsStaging.capture_id"`)}
	}
	if _, ok := _c.mutation.PageResultID(); !ok {
		return &ValidationError{Name: "page_result_id", err: errors.New(`ent: missing required field "TollsStaging.page_result_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TollsStaging.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := tollsstaging.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TollsStaging.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TollsStaging.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TollsStaging.updated_at"`)}
	}
	return nil
}

func (_c *TollsStagingCreate) sqlSave(ctx context.Context) (*TollsStaging, error) {
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

func (_c *TollsStagingCreate) createSpec() (*TollsStaging, *sqlgraph.CreateSpec) {
	var (
		_node = &TollsStaging{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tollsstaging.Table, sqlgraph.NewFieldSpec(tollsstaging.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CaptureID(); ok {
		_spec.SetField(tollsstaging.FieldCaptureID, field.TypeUUID, value)
		_node.CaptureID = value
	}
	if value, ok := _c.mutation.PageResultID(); ok {
		_spec.SetField(tollsstaging.FieldPageResultID, field.TypeUUID, value)
		_node.PageResultID = value
	}
	if value, ok := _c.mutation.AiResponse(); ok {
		_spec.SetField(tollsstaging.FieldAiResponse, field.TypeJSON, value)
		_node.AiResponse = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(tollsstaging.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(tollsstaging.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tollsstaging.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tollsstaging.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TollsStagingCreateBulk is the builder for creating many TollsStaging entities in bulk.
type TollsStagingCreateBulk struct {
	config
	err      error
	builders []*TollsStagingCreate
}

// Save creates the TollsStaging entities in the database.
func (_c *TollsStagingCreateBulk) Save(ctx context.Context) ([]*TollsStaging, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TollsStaging, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TollsStagingMutation)
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
func (_c *TollsStagingCreateBulk) SaveX(ctx context.Context) []*TollsStaging {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TollsStagingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TollsStagingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
