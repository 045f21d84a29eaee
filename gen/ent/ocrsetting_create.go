// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetware/transport-ops/gen/ent/ocrsetting"
	"github.com/google/uuid"
)

// OCRSettingCreate is the builder for creating a OCRSetting entity.
type OCRSettingCreate struct {
	config
	mutation *OCRSettingMutation
	hooks    []Hook
}

// SetFunction sets the "function" field.
func (_c *OCRSettingCreate) SetFunction(v string) *OCRSettingCreate {
	_c.mutation.SetFunction(v)
	return _c
}

// SetPromptTemplate sets the "prompt_template" field.
func (_c *OCRSettingCreate) SetPromptTemplate(v string) *OCRSettingCreate {
	_c.mutation.SetPromptTemplate(v)
	return _c
}

// SetJSONExample sets the "json_example" field.
func (_c *OCRSettingCreate) SetJSONExample(v string) *OCRSettingCreate {
	_c.mutation.SetJSONExample(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OCRSettingCreate) SetUpdatedAt(v time.Time) *OCRSettingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OCRSettingCreate) SetNillableUpdatedAt(v *time.Time) *OCRSettingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OCRSettingCreate) SetID(v uuid.UUID) *OCRSettingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OCRSettingCreate) SetNillableID(v *uuid.UUID) *OCRSettingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the OCRSettingMutation object of the builder.
func (_c *OCRSettingCreate) Mutation() *OCRSettingMutation {
	return _c.mutation
}

// Save creates the OCRSetting in the database.
func (_c *OCRSettingCreate) Save(ctx context.Context) (*OCRSetting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OCRSettingCreate) SaveX(ctx context.Context) *OCRSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OCRSettingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OCRSettingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OCRSettingCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ocrsetting.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ocrsetting.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OCRSettingCreate) check() error {
	if _, ok := _c.mutation.Function(); !ok {
		return &ValidationError{Name: "function", err: errors.New(`ent: missing required field "OCRSetting.function"`)}
	}
	if v, ok := _c.mutation.Function(); ok {
		if err := ocrsetting.FunctionValidator(v); err != nil {
			return &ValidationError{Name: "function", err: fmt.Errorf(`ent: validator failed for field "OCRSetting.function": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptTemplate(); !ok {
		return &ValidationError{Name: "prompt_template", err: errors.New(`ent: missing required field "OCRSetting.prompt_template"`)}
	}
	if v, ok := _c.mutation.PromptTemplate(); ok {
		if err := ocrsetting.PromptTemplateValidator(v); err != nil {
			return &ValidationError{Name: "prompt_template", err: fmt.Errorf(`ent: validator failed for field "OCRSetting.prompt_template": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JSONExample(); !ok {
		return &ValidationError{Name: "json_example", err: errors.New(`ent: missing required field "OCRSetting.json_example"`)}
	}
	if v, ok := _c.mutation.JSONExample(); ok {
		if err := ocrsetting.JSONExampleValidator(v); err != nil {
			return &ValidationError{Name: "json_example", err: fmt.Errorf(`ent: validator failed for field "OCRSetting.json_example": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "OCRSetting.updated_at"`)}
	}
	return nil
}

func (_c *OCRSettingCreate) sqlSave(ctx context.Context) (*OCRSetting, error) {
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

func (_c *OCRSettingCreate) createSpec() (*OCRSetting, *sqlgraph.CreateSpec) {
	var (
		_node = &OCRSetting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ocrsetting.Table, sqlgraph.NewFieldSpec(ocrsetting.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Function(); ok {
		_spec.SetField(ocrsetting.FieldFunction, field.TypeString, value)
		_node.Function = value
	}
	if value, ok := _c.mutation.PromptTemplate(); ok {
		_spec.SetField(ocrsetting.FieldPromptTemplate, field.TypeString, value)
		_node.PromptTemplate = value
	}
	if value, ok := _c.mutation.JSONExample(); ok {
		_spec.SetField(ocrsetting.FieldJSONExample, field.TypeString, value)
		_node.JSONExample = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ocrsetting.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OCRSettingCreateBulk is the builder for creating many OCRSetting entities in bulk.
type OCRSettingCreateBulk struct {
	config
	err      error
	builders []*OCRSettingCreate
}

// Save creates the OCRSetting entities in the database.
func (_c *OCRSettingCreateBulk) Save(ctx context.Context) ([]*OCRSetting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OCRSetting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OCRSettingMutation)
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
func (_c *OCRSettingCreateBulk) SaveX(ctx context.Context) []*OCRSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OCRSettingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OCRSettingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
