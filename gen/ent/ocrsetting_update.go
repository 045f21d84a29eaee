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
	"github.com/fleetware/transport-ops/gen/ent/ocrsetting"
	"github.com/fleetware/transport-ops/gen/ent/predicate"
)

// OCRSettingUpdate is the builder for updating OCRSetting entities.
type OCRSettingUpdate struct {
	config
	hooks    []Hook
	mutation *OCRSettingMutation
}

// Where appends a list predicates to the OCRSettingUpdate builder.
func (_u *OCRSettingUpdate) Where(ps ...predicate.OCRSetting) *OCRSettingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFunction sets the "function" field.
func (_u *OCRSettingUpdate) SetFunction(v string) *OCRSettingUpdate {
	_u.mutation.SetFunction(v)
	return _u
}

// SetNillableFunction sets the "function" field if the given value is not nil.
func (_u *OCRSettingUpdate) SetNillableFunction(v *string) *OCRSettingUpdate {
	if v != nil {
		_u.SetFunction(*v)
	}
	return _u
}

// SetPromptTemplate sets the "prompt_template" field.
func (_u *OCRSettingUpdate) SetPromptTemplate(v string) *OCRSettingUpdate {
	_u.mutation.SetPromptTemplate(v)
	return _u
}

// SetNillablePromptTemplate sets the "prompt_template" field if the given value is not nil.
func (_u *OCRSettingUpdate) SetNillablePromptTemplate(v *string) *OCRSettingUpdate {
	if v != nil {
		_u.SetPromptTemplate(*v)
	}
	return _u
}

// SetJSONExample sets the "json_example" field.
func (_u *OCRSettingUpdate) SetJSONExample(v string) *OCRSettingUpdate {
	_u.mutation.SetJSONExample(v)
	return _u
}

// SetNillableJSONExample sets the "json_example" field if the given value is not nil.
func (_u *OCRSettingUpdate) SetNillableJSONExample(v *string) *OCRSettingUpdate {
	if v != nil {
		_u.SetJSONExample(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OCRSettingUpdate) SetUpdatedAt(v time.Time) *OCRSettingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OCRSettingMutation object of the builder.
func (_u *OCRSettingUpdate) Mutation() *OCRSettingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OCRSettingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OCRSettingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OCRSettingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OCRSettingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OCRSettingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ocrsetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OCRSettingUpdate) check() error {
	if v, ok := _u.mutation.Function(); ok {
		if err := ocrsetting.FunctionValidator(v); err != nil {
			return &ValidationError{Name: "function", err: fmt.Errorf(`ent: validator failed for field "OCRSetting.function": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptTemplate(); ok {
		if err := ocrsetting.PromptTemplateValidator(v); err != nil {
			return &ValidationError{Name: "prompt_template", err: fmt.Errorf(`ent: validator failed for field "OCRSetting.prompt_template": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JSONExample(); ok {
		if err := ocrsetting.JSONExampleValidator(v); err != nil {
			return &ValidationError{Name: "json_example", err: fmt.Errorf(`ent: validator failed for field "OCRSetting.json_example": %w`, err)}
		}
	}
	return nil
}

func (_u *OCRSettingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrsetting.Table, ocrsetting.Columns, sqlgraph.NewFieldSpec(ocrsetting.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Function(); ok {
		_spec.SetField(ocrsetting.FieldFunction, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTemplate(); ok {
		_spec.SetField(ocrsetting.FieldPromptTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.JSONExample(); ok {
		_spec.SetField(ocrsetting.FieldJSONExample, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ocrsetting.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OCRSettingUpdateOne is the builder for updating a single OCRSetting entity.
type OCRSettingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OCRSettingMutation
}

// SetFunction sets the "function" field.
func (_u *OCRSettingUpdateOne) SetFunction(v string) *OCRSettingUpdateOne {
	_u.mutation.SetFunction(v)
	return _u
}

// SetNillableFunction sets the "function" field if the given value is not nil.
func (_u *OCRSettingUpdateOne) SetNillableFunction(v *string) *OCRSettingUpdateOne {
	if v != nil {
		_u.SetFunction(*v)
	}
	return _u
}

// SetPromptTemplate sets the "prompt_template" field.
func (_u *OCRSettingUpdateOne) SetPromptTemplate(v string) *OCRSettingUpdateOne {
	_u.mutation.SetPromptTemplate(v)
	return _u
}

// SetNillablePromptTemplate sets the "prompt_template" field if the given value is not nil.
func (_u *OCRSettingUpdateOne) SetNillablePromptTemplate(v *string) *OCRSettingUpdateOne {
	if v != nil {
		_u.SetPromptTemplate(*v)
	}
	return _u
}

// SetJSONExample sets the "json_example" field.
func (_u *OCRSettingUpdateOne) SetJSONExample(v string) *OCRSettingUpdateOne {
	_u.mutation.SetJSONExample(v)
	return _u
}

// SetNillableJSONExample sets the "json_example" field if the given value is not nil.
func (_u *OCRSettingUpdateOne) SetNillableJSONExample(v *string) *OCRSettingUpdateOne {
	if v != nil {
		_u.SetJSONExample(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OCRSettingUpdateOne) SetUpdatedAt(v time.Time) *OCRSettingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OCRSettingMutation object of the builder.
func (_u *OCRSettingUpdateOne) Mutation() *OCRSettingMutation {
	return _u.mutation
}

// Where appends a list predicates to the OCRSettingUpdate builder.
func (_u *OCRSettingUpdateOne) Where(ps ...predicate.OCRSetting) *OCRSettingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OCRSettingUpdateOne) Select(field string, fields ...string) *OCRSettingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OCRSetting entity.
func (_u *OCRSettingUpdateOne) Save(ctx context.Context) (*OCRSetting, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OCRSettingUpdateOne) SaveX(ctx context.Context) *OCRSetting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OCRSettingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OCRSettingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OCRSettingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ocrsetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OCRSettingUpdateOne) check() error {
	if v, ok := _u.mutation.Function(); ok {
		if err := ocrsetting.FunctionValidator(v); err != nil {
			return &ValidationError{Name: "function", err: fmt.Errorf(`ent: validator failed for field "OCRSetting.function": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptTemplate(); ok {
		if err := ocrsetting.PromptTemplateValidator(v); err != nil {
			return &ValidationError{Name: "prompt_template", err: fmt.Errorf(`ent: validator failed for field "OCRSetting.prompt_template": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JSONExample(); ok {
		if err := ocrsetting.JSONExampleValidator(v); err != nil {
			return &ValidationError{Name: "json_example", err: fmt.Errorf(`ent: validator failed for field "OCRSetting.json_example": %w`, err)}
		}
	}
	return nil
}

func (_u *OCRSettingUpdateOne) sqlSave(ctx context.Context) (_node *OCRSetting, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrsetting.Table, ocrsetting.Columns, sqlgraph.NewFieldSpec(ocrsetting.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OCRSetting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ocrsetting.FieldID)
		for _, f := range fields {
			if !ocrsetting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ocrsetting.FieldID {
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
	if value, ok := _u.mutation.Function(); ok {
		_spec.SetField(ocrsetting.FieldFunction, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTemplate(); ok {
		_spec.SetField(ocrsetting.FieldPromptTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.JSONExample(); ok {
		_spec.SetField(ocrsetting.FieldJSONExample, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ocrsetting.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &OCRSetting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
