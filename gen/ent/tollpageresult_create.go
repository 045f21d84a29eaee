// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetware/transport-ops/gen/ent/tollpageresult"
	"github.com/google/uuid"
)

// TollPageResultCreate is the builder for creating a TollPageResult entity.
type TollPageResultCreate struct {
	config
	mutation *TollPageResultMutation
	hooks    []Hook
}

// SetCaptureID sets the "capture_id" field.
func (_c *TollPageResultCreate) SetCaptureID(v uuid.UUID) *TollPageResultCreate {
	_c.mutation.SetCaptureID(v)
	return _c
}

// SetPageNumber sets the "page_number" field.
func (_c *TollPageResultCreate) SetPageNumber(v int) *TollPageResultCreate {
	_c.mutation.SetPageNumber(v)
	return _c
}

// SetBase64Image sets the "base64_image" field.
func (_c *TollPageResultCreate) SetBase64Image(v string) *TollPageResultCreate {
	_c.mutation.SetBase64Image(v)
	return _c
}

// SetNillableBase64Image sets the "base64_image" field if the given value is not nil.
func (_c *TollPageResultCreate) SetNillableBase64Image(v *string) *TollPageResultCreate {
	if v != nil {
		_c.SetBase64Image(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TollPageResultCreate) SetStatus(v string) *TollPageResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TollPageResultCreate) SetErrorMessage(v string) *TollPageResultCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TollPageResultCreate) SetNillableErrorMessage(v *string) *TollPageResultCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TollPageResultCreate) SetCreatedAt(v time.Time) *TollPageResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TollPageResultCreate) SetNillableCreatedAt(v *time.Time) *TollPageResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TollPageResultCreate) SetID(v uuid.UUID) *TollPageResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TollPageResultCreate) SetNillableID(v *uuid.UUID) *TollPageResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TollPageResultMutation object of the builder.
func (_c *TollPageResultCreate) Mutation() *TollPageResultMutation {
	return _c.mutation
}

// Save creates the TollPageResult in the database.
func (_c *TollPageResultCreate) Save(ctx context.Context) (*TollPageResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TollPageResultCreate) SaveX(ctx context.Context) *TollPageResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TollPageResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TollPageResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TollPageResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tollpageresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tollpageresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TollPageResultCreate) check() error {
	if _, ok := _c.mutation.CaptureID(); !ok {
		return &ValidationError{Name: "capture_id", err: errors.New(`ent: missing required field "TollPageResult.capture_id"`)}
	}
	if _, ok := _c.mutation.PageNumber(); !ok {
		return &ValidationError{Name: "page_number", err: errors.New(`ent: missing required field "TollPageResult.page_number"`)}
	}
	if v, ok := _c.mutation.PageNumber(); ok {
		if err := tollpageresult.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "TollPageResult.page_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TollPageResult.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := tollpageresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TollPageResult.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TollPageResult.created_at"`)}
	}
	return nil
}

func (_c *TollPageResultCreate) sqlSave(ctx context.Context) (*TollPageResult, error) {
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

func (_c *TollPageResultCreate) createSpec() (*TollPageResult, *sqlgraph.CreateSpec) {
	var (
		_node = &TollPageResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tollpageresult.Table, sqlgraph.NewFieldSpec(tollpageresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CaptureID(); ok {
		_spec.SetField(tollpageresult.FieldCaptureID, field.TypeUUID, value)
		_node.CaptureID = value
	}
	if value, ok := _c.mutation.PageNumber(); ok {
		_spec.SetField(tollpageresult.FieldPageNumber, field.TypeInt, value)
		_node.PageNumber = value
	}
	if value, ok := _c.mutation.Base64Image(); ok {
		_spec.SetField(tollpageresult.FieldBase64Image, field.TypeString, value)
		_node.Base64Image = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(tollpageresult.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(tollpageresult.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tollpageresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TollPageResultCreateBulk is the builder for creating many TollPageResult entities in bulk.
type TollPageResultCreateBulk struct {
	config
	err      error
	builders []*TollPageResultCreate
}

// Save creates the TollPageResult entities in the database.
func (_c *TollPageResultCreateBulk) Save(ctx context.Context) ([]*TollPageResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TollPageResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TollPageResultMutation)
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
func (_c *TollPageResultCreateBulk) SaveX(ctx context.Context) []*TollPageResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TollPageResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TollPageResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
