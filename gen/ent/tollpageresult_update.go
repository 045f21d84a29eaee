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
	"github.com/fleetware/transport-ops/gen/ent/predicate"
	"github.com/fleetware/transport-ops/gen/ent/tollpageresult"
)

// TollPageResultUpdate is the builder for updating TollPageResult entities.
type TollPageResultUpdate struct {
	config
	hooks    []Hook
	mutation *TollPageResultMutation
}

// Where appends a list predicates to the TollPageResultUpdate builder.
func (_u *TollPageResultUpdate) Where(ps ...predicate.TollPageResult) *TollPageResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBase64Image sets the "base64_image" field.
func (_u *TollPageResultUpdate) SetBase64Image(v string) *TollPageResultUpdate {
	_u.mutation.SetBase64Image(v)
	return _u
}

// SetNillableBase64Image sets the "base64_image" field if the given value is not nil.
func (_u *TollPageResultUpdate) SetNillableBase64Image(v *string) *TollPageResultUpdate {
	if v != nil {
		_u.SetBase64Image(*v)
	}
	return _u
}

// ClearBase64Image clears the value of the "base64_image" field.
func (_u *TollPageResultUpdate) ClearBase64Image() *TollPageResultUpdate {
	_u.mutation.ClearBase64Image()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TollPageResultUpdate) SetStatus(v string) *TollPageResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TollPageResultUpdate) SetNillableStatus(v *string) *TollPageResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TollPageResultUpdate) SetErrorMessage(v string) *TollPageResultUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TollPageResultUpdate) SetNillableErrorMessage(v *string) *TollPageResultUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TollPageResultUpdate) ClearErrorMessage() *TollPageResultUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TollPageResultUpdate) SetCreatedAt(v time.Time) *TollPageResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TollPageResultUpdate) SetNillableCreatedAt(v *time.Time) *TollPageResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the TollPageResultMutation object of the builder.
func (_u *TollPageResultUpdate) Mutation() *TollPageResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TollPageResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TollPageResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TollPageResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TollPageResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TollPageResultUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tollpageresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TollPageResult.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TollPageResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tollpageresult.Table, tollpageresult.Columns, sqlgraph.NewFieldSpec(tollpageresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Base64Image(); ok {
		_spec.SetField(tollpageresult.FieldBase64Image, field.TypeString, value)
	}
	if _u.mutation.Base64ImageCleared() {
		_spec.ClearField(tollpageresult.FieldBase64Image, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tollpageresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(tollpageresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(tollpageresult.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tollpageresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tollpageresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TollPageResultUpdateOne is the builder for updating a single TollPageResult entity.
type TollPageResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TollPageResultMutation
}

// SetBase64Image sets the "base64_image" field.
func (_u *TollPageResultUpdateOne) SetBase64Image(v string) *TollPageResultUpdateOne {
	_u.mutation.SetBase64Image(v)
	return _u
}

// SetNillableBase64Image sets the "base64_image" field if the given value is not nil.
func (_u *TollPageResultUpdateOne) SetNillableBase64Image(v *string) *TollPageResultUpdateOne {
	if v != nil {
		_u.SetBase64Image(*v)
	}
	return _u
}

// ClearBase64Image clears the value of the "base64_image" field.
func (_u *TollPageResultUpdateOne) ClearBase64Image() *TollPageResultUpdateOne {
	_u.mutation.ClearBase64Image()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TollPageResultUpdateOne) SetStatus(v string) *TollPageResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TollPageResultUpdateOne) SetNillableStatus(v *string) *TollPageResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TollPageResultUpdateOne) SetErrorMessage(v string) *TollPageResultUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TollPageResultUpdateOne) SetNillableErrorMessage(v *string) *TollPageResultUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TollPageResultUpdateOne) ClearErrorMessage() *TollPageResultUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TollPageResultUpdateOne) SetCreatedAt(v time.Time) *TollPageResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TollPageResultUpdateOne) SetNillableCreatedAt(v *time.Time) *TollPageResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the TollPageResultMutation object of the builder.
func (_u *TollPageResultUpdateOne) Mutation() *TollPageResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the TollPageResultUpdate builder.
func (_u *TollPageResultUpdateOne) Where(ps ...predicate.TollPageResult) *TollPageResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TollPageResultUpdateOne) Select(field string, fields ...string) *TollPageResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TollPageResult entity.
func (_u *TollPageResultUpdateOne) Save(ctx context.Context) (*TollPageResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TollPageResultUpdateOne) SaveX(ctx context.Context) *TollPageResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TollPageResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TollPageResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TollPageResultUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tollpageresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TollPageResult.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TollPageResultUpdateOne) sqlSave(ctx context.Context) (_node *TollPageResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tollpageresult.Table, tollpageresult.Columns, sqlgraph.NewFieldSpec(tollpageresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TollPageResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tollpageresult.FieldID)
		for _, f := range fields {
			if !tollpageresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tollpageresult.FieldID {
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
	if value, ok := _u.mutation.Base64Image(); ok {
		_spec.SetField(tollpageresult.FieldBase64Image, field.TypeString, value)
	}
	if _u.mutation.Base64ImageCleared() {
		_spec.ClearField(tollpageresult.FieldBase64Image, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tollpageresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(tollpageresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(tollpageresult.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tollpageresult.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &TollPageResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tollpageresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
