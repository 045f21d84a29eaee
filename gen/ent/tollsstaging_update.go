// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fleetware/transport-ops/gen/ent/predicate"
	"github.com/fleetware/transport-ops/gen/ent/tollsstaging"
)

// TollsStagingUpdate is the builder for updating TollsStaging entities.
type TollsStagingUpdate struct {
	config
	hooks    []Hook
	mutation *TollsStagingMutation
}

// Where appends a list predicates to the TollsStagingUpdate builder.
func (_u *TollsStagingUpdate) Where(ps ...predicate.TollsStaging) *TollsStagingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAiResponse sets the "ai_response" field.
func (_u *TollsStagingUpdate) SetAiResponse(v json.RawMessage) *TollsStagingUpdate {
	_u.mutation.SetAiResponse(v)
	return _u
}

// AppendAiResponse appends value to the "ai_response" field.
func (_u *TollsStagingUpdate) AppendAiResponse(v json.RawMessage) *TollsStagingUpdate {
	_u.mutation.AppendAiResponse(v)
	return _u
}

// ClearAiResponse clears the value of the "ai_response" field.
func (_u *TollsStagingUpdate) ClearAiResponse() *TollsStagingUpdate {
	_u.mutation.ClearAiResponse()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TollsStagingUpdate) SetStatus(v string) *TollsStagingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TollsStagingUpdate) SetNillableStatus(v *string) *TollsStagingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TollsStagingUpdate) SetErrorMessage(v string) *TollsStagingUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TollsStagingUpdate) SetNillableErrorMessage(v *string) *TollsStagingUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TollsStagingUpdate) ClearErrorMessage() *TollsStagingUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TollsStagingUpdate) SetCreatedAt(v time.Time) *TollsStagingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TollsStagingUpdate) SetNillableCreatedAt(v *time.Time) *TollsStagingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TollsStagingUpdate) SetUpdatedAt(v time.Time) *TollsStagingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TollsStagingMutation object of the builder.
func (_u *TollsStagingUpdate) Mutation() *TollsStagingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TollsStagingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TollsStagingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TollsStagingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TollsStagingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TollsStagingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tollsstaging.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TollsStagingUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tollsstaging.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TollsStaging.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TollsStagingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tollsstaging.Table, tollsstaging.Columns, sqlgraph.NewFieldSpec(tollsstaging.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AiResponse(); ok {
		_spec.SetField(tollsstaging.FieldAiResponse, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAiResponse(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tollsstaging.FieldAiResponse, value)
		})
	}
	if _u.mutation.AiResponseCleared() {
		_spec.ClearField(tollsstaging.FieldAiResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tollsstaging.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(tollsstaging.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(tollsstaging.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tollsstaging.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tollsstaging.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tollsstaging.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TollsStagingUpdateOne is the builder for updating a single TollsStaging entity.
type TollsStagingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TollsStagingMutation
}

// SetAiResponse sets the "ai_response" field.
func (_u *TollsStagingUpdateOne) SetAiResponse(v json.RawMessage) *TollsStagingUpdateOne {
	_u.mutation.SetAiResponse(v)
	return _u
}

// AppendAiResponse appends value to the "ai_response" field.
func (_u *TollsStagingUpdateOne) AppendAiResponse(v json.RawMessage) *TollsStagingUpdateOne {
	_u.mutation.AppendAiResponse(v)
	return _u
}

// ClearAiResponse clears the value of the "ai_response" field.
func (_u *TollsStagingUpdateOne) ClearAiResponse() *TollsStagingUpdateOne {
	_u.mutation.ClearAiResponse()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TollsStagingUpdateOne) SetStatus(v string) *TollsStagingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TollsStagingUpdateOne) SetNillableStatus(v *string) *TollsStagingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TollsStagingUpdateOne) SetErrorMessage(v string) *TollsStagingUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TollsStagingUpdateOne) SetNillableErrorMessage(v *string) *TollsStagingUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TollsStagingUpdateOne) ClearErrorMessage() *TollsStagingUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TollsStagingUpdateOne) SetCreatedAt(v time.Time) *TollsStagingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TollsStagingUpdateOne) SetNillableCreatedAt(v *time.Time) *TollsStagingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TollsStagingUpdateOne) SetUpdatedAt(v time.Time) *TollsStagingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TollsStagingMutation object of the builder.
func (_u *TollsStagingUpdateOne) Mutation() *TollsStagingMutation {
	return _u.mutation
}

// Where appends a list predicates to the TollsStagingUpdate builder.
func (_u *TollsStagingUpdateOne) Where(ps ...predicate.TollsStaging) *TollsStagingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TollsStagingUpdateOne) Select(field string, fields ...string) *TollsStagingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TollsStaging entity.
func (_u *TollsStagingUpdateOne) Save(ctx context.Context) (*TollsStaging, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TollsStagingUpdateOne) SaveX(ctx context.Context) *TollsStaging {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TollsStagingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TollsStagingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TollsStagingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tollsstaging.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TollsStagingUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tollsstaging.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TollsStaging.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TollsStagingUpdateOne) sqlSave(ctx context.Context) (_node *TollsStaging, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tollsstaging.Table, tollsstaging.Columns, sqlgraph.NewFieldSpec(tollsstaging.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TollsStaging.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tollsstaging.FieldID)
		for _, f := range fields {
			if !tollsstaging.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tollsstaging.FieldID {
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
	if value, ok := _u.mutation.AiResponse(); ok {
		_spec.SetField(tollsstaging.FieldAiResponse, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAiResponse(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tollsstaging.FieldAiResponse, value)
		})
	}
	if _u.mutation.AiResponseCleared() {
		_spec.ClearField(tollsstaging.FieldAiResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tollsstaging.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(tollsstaging.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(tollsstaging.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tollsstaging.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tollsstaging.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TollsStaging{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tollsstaging.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
