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
	"github.com/fleetware/transport-ops/gen/ent/toll"
	"github.com/google/uuid"
)

// TollUpdate is the builder for updating Toll entities.
type TollUpdate struct {
	config
	hooks    []Hook
	mutation *TollMutation
}

// Where appends a list predicates to the TollUpdate builder.
func (_u *TollUpdate) Where(ps ...predicate.Toll) *TollUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTransactionDate sets the "transaction_date" field.
func (_u *TollUpdate) SetTransactionDate(v time.Time) *TollUpdate {
	_u.mutation.SetTransactionDate(v)
	return _u
}

// SetNillableTransactionDate sets the "transaction_date" field if the given value is not nil.
func (_u *TollUpdate) SetNillableTransactionDate(v *time.Time) *TollUpdate {
	if v != nil {
		_u.SetTransactionDate(*v)
	}
	return _u
}

// SetTollingPoint sets the "tolling_point" field.
func (_u *TollUpdate) SetTollingPoint(v string) *TollUpdate {
	_u.mutation.SetTollingPoint(v)
	return _u
}

// SetNillableTollingPoint sets the "tolling_point" field if the given value is not nil.
func (_u *TollUpdate) SetNillableTollingPoint(v *string) *TollUpdate {
	if v != nil {
		_u.SetTollingPoint(*v)
	}
	return _u
}

// ClearTollingPoint clears the value of the "tolling_point" field.
func (_u *TollUpdate) ClearTollingPoint() *TollUpdate {
	_u.mutation.ClearTollingPoint()
	return _u
}

// SetEtagID sets the "etag_id" field.
func (_u *TollUpdate) SetEtagID(v string) *TollUpdate {
	_u.mutation.SetEtagID(v)
	return _u
}

// SetNillableEtagID sets the "etag_id" field if the given value is not nil.
func (_u *TollUpdate) SetNillableEtagID(v *string) *TollUpdate {
	if v != nil {
		_u.SetEtagID(*v)
	}
	return _u
}

// SetNetAmount sets the "net_amount" field.
func (_u *TollUpdate) SetNetAmount(v float64) *TollUpdate {
	_u.mutation.ResetNetAmount()
	_u.mutation.SetNetAmount(v)
	return _u
}

// SetNillableNetAmount sets the "net_amount" field if the given value is not nil.
func (_u *TollUpdate) SetNillableNetAmount(v *float64) *TollUpdate {
	if v != nil {
		_u.SetNetAmount(*v)
	}
	return _u
}

// AddNetAmount adds value to the "net_amount" field.
func (_u *TollUpdate) AddNetAmount(v float64) *TollUpdate {
	_u.mutation.AddNetAmount(v)
	return _u
}

// SetCaptureID sets the "capture_id" field.
func (_u *TollUpdate) SetCaptureID(v uuid.UUID) *TollUpdate {
	_u.mutation.SetCaptureID(v)
	return _u
}

// SetNillableCaptureID sets the "capture_id" field if the given value is not nil.
func (_u *TollUpdate) SetNillableCaptureID(v *uuid.UUID) *TollUpdate {
	if v != nil {
		_u.SetCaptureID(*v)
	}
	return _u
}

// SetPageResultID sets the "page_result_id" field.
func (_u *TollUpdate) SetPageResultID(v uuid.UUID) *TollUpdate {
	_u.mutation.SetPageResultID(v)
	return _u
}

// SetNillablePageResultID sets the "page_result_id" field if the given value is not nil.
func (_u *TollUpdate) SetNillablePageResultID(v *uuid.UUID) *TollUpdate {
	if v != nil {
		_u.SetPageResultID(*v)
	}
	return _u
}

// SetAssetID sets the "asset_id" field.
func (_u *TollUpdate) SetAssetID(v uuid.UUID) *TollUpdate {
	_u.mutation.SetAssetID(v)
	return _u
}

// SetNillableAssetID sets the "asset_id" field if the given value is not nil.
func (_u *TollUpdate) SetNillableAssetID(v *uuid.UUID) *TollUpdate {
	if v != nil {
		_u.SetAssetID(*v)
	}
	return _u
}

// ClearAssetID clears the value of the "asset_id" field.
func (_u *TollUpdate) ClearAssetID() *TollUpdate {
	_u.mutation.ClearAssetID()
	return _u
}

// SetDriverID sets the "driver_id" field.
func (_u *TollUpdate) SetDriverID(v uuid.UUID) *TollUpdate {
	_u.mutation.SetDriverID(v)
	return _u
}

// SetNillableDriverID sets the "driver_id" field if the given value is not nil.
func (_u *TollUpdate) SetNillableDriverID(v *uuid.UUID) *TollUpdate {
	if v != nil {
		_u.SetDriverID(*v)
	}
	return _u
}

// ClearDriverID clears the value of the "driver_id" field.
func (_u *TollUpdate) ClearDriverID() *TollUpdate {
	_u.mutation.ClearDriverID()
	return _u
}

// SetProcessStatus sets the "process_status" field.
func (_u *TollUpdate) SetProcessStatus(v string) *TollUpdate {
	_u.mutation.SetProcessStatus(v)
	return _u
}

// SetNillableProcessStatus sets the "process_status" field if the given value is not nil.
func (_u *TollUpdate) SetNillableProcessStatus(v *string) *TollUpdate {
	if v != nil {
		_u.SetProcessStatus(*v)
	}
	return _u
}

// SetExpenseID sets the "expense_id" field.
func (_u *TollUpdate) SetExpenseID(v uuid.UUID) *TollUpdate {
	_u.mutation.SetExpenseID(v)
	return _u
}

// SetNillableExpenseID sets the "expense_id" field if the given value is not nil.
func (_u *TollUpdate) SetNillableExpenseID(v *uuid.UUID) *TollUpdate {
	if v != nil {
		_u.SetExpenseID(*v)
	}
	return _u
}

// ClearExpenseID clears the value of the "expense_id" field.
func (_u *TollUpdate) ClearExpenseID() *TollUpdate {
	_u.mutation.ClearExpenseID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TollUpdate) SetCreatedAt(v time.Time) *TollUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TollUpdate) SetNillableCreatedAt(v *time.Time) *TollUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the TollMutation object of the builder.
func (_u *TollUpdate) Mutation() *TollMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TollUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TollUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TollUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TollUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TollUpdate) check() error {
	if v, ok := _u.mutation.EtagID(); ok {
		if err := toll.EtagIDValidator(v); err != nil {
			return &ValidationError{Name: "etag_id", err: fmt.Errorf(`ent: validator failed for field "Toll.etag_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TollUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toll.Table, toll.Columns, sqlgraph.NewFieldSpec(toll.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TransactionDate(); ok {
		_spec.SetField(toll.FieldTransactionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TollingPoint(); ok {
		_spec.SetField(toll.FieldTollingPoint, field.TypeString, value)
	}
	if _u.mutation.TollingPointCleared() {
		_spec.ClearField(toll.FieldTollingPoint, field.TypeString)
	}
	if value, ok := _u.mutation.EtagID(); ok {
		_spec.SetField(toll.FieldEtagID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NetAmount(); ok {
		_spec.SetField(toll.FieldNetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetAmount(); ok {
		_spec.AddField(toll.FieldNetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CaptureID(); ok {
		_spec.SetField(toll.FieldCaptureID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PageResultID(); ok {
		_spec.SetField(toll.FieldPageResultID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AssetID(); ok {
		_spec.SetField(toll.FieldAssetID, field.TypeUUID, value)
	}
	if _u.mutation.AssetIDCleared() {
		_spec.ClearField(toll.FieldAssetID, field.TypeUUID)
	}
	if value, ok := _u.mutation.DriverID(); ok {
		_spec.SetField(toll.FieldDriverID, field.TypeUUID, value)
	}
	if _u.mutation.DriverIDCleared() {
		_spec.ClearField(toll.FieldDriverID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ProcessStatus(); ok {
		_spec.SetField(toll.FieldProcessStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpenseID(); ok {
		_spec.SetField(toll.FieldExpenseID, field.TypeUUID, value)
	}
	if _u.mutation.ExpenseIDCleared() {
		_spec.ClearField(toll.FieldExpenseID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(toll.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toll.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TollUpdateOne is the builder for updating a single Toll entity.
type TollUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TollMutation
}

// SetTransactionDate sets the "transaction_date" field.
func (_u *TollUpdateOne) SetTransactionDate(v time.Time) *TollUpdateOne {
	_u.mutation.SetTransactionDate(v)
	return _u
}

// SetNillableTransactionDate sets the "transaction_date" field if the given value is not nil.
func (_u *TollUpdateOne) SetNillableTransactionDate(v *time.Time) *TollUpdateOne {
	if v != nil {
		_u.SetTransactionDate(*v)
	}
	return _u
}

// SetTollingPoint sets the "tolling_point" field.
func (_u *TollUpdateOne) SetTollingPoint(v string) *TollUpdateOne {
	_u.mutation.SetTollingPoint(v)
	return _u
}

// SetNillableTollingPoint sets the "tolling_point" field if the given value is not nil.
func (_u *TollUpdateOne) SetNillableTollingPoint(v *string) *TollUpdateOne {
	if v != nil {
		_u.SetTollingPoint(*v)
	}
	return _u
}

// ClearTollingPoint clears the value of the "tolling_point" field.
func (_u *TollUpdateOne) ClearTollingPoint() *TollUpdateOne {
	_u.mutation.ClearTollingPoint()
	return _u
}

// SetEtagID sets the "etag_id" field.
func (_u *TollUpdateOne) SetEtagID(v string) *TollUpdateOne {
	_u.mutation.SetEtagID(v)
	return _u
}

// SetNillableEtagID sets the "etag_id" field if the given value is not nil.
func (_u *TollUpdateOne) SetNillableEtagID(v *string) *TollUpdateOne {
	if v != nil {
		_u.SetEtagID(*v)
	}
	return _u
}

// SetNetAmount sets the "net_amount" field.
func (_u *TollUpdateOne) SetNetAmount(v float64) *TollUpdateOne {
	_u.mutation.ResetNetAmount()
	_u.mutation.SetNetAmount(v)
	return _u
}

// SetNillableNetAmount sets the "net_amount" field if the given value is not nil.
func (_u *TollUpdateOne) SetNillableNetAmount(v *float64) *TollUpdateOne {
	if v != nil {
		_u.SetNetAmount(*v)
	}
	return _u
}

// AddNetAmount adds value to the "net_amount" field.
func (_u *TollUpdateOne) AddNetAmount(v float64) *TollUpdateOne {
	_u.mutation.AddNetAmount(v)
	return _u
}

// SetCaptureID sets the "capture_id" field.
func (_u *TollUpdateOne) SetCaptureID(v uuid.UUID) *TollUpdateOne {
	_u.mutation.SetCaptureID(v)
	return _u
}

// SetNillableCaptureID sets the "capture_id" field if the given value is not nil.
func (_u *TollUpdateOne) SetNillableCaptureID(v *uuid.UUID) *TollUpdateOne {
	if v != nil {
		_u.SetCaptureID(*v)
	}
	return _u
}

// SetPageResultID sets the "page_result_id" field.
func (_u *TollUpdateOne) SetPageResultID(v uuid.UUID) *TollUpdateOne {
	_u.mutation.SetPageResultID(v)
	return _u
}

// SetNillablePageResultID sets the "page_result_id" field if the given value is not nil.
func (_u *TollUpdateOne) SetNillablePageResultID(v *uuid.UUID) *TollUpdateOne {
	if v != nil {
		_u.SetPageResultID(*v)
	}
	return _u
}

// SetAssetID sets the "asset_id" field.
func (_u *TollUpdateOne) SetAssetID(v uuid.UUID) *TollUpdateOne {
	_u.mutation.SetAssetID(v)
	return _u
}

// SetNillableAssetID sets the "asset_id" field if the given value is not nil.
func (_u *TollUpdateOne) SetNillableAssetID(v *uuid.UUID) *TollUpdateOne {
	if v != nil {
		_u.SetAssetID(*v)
	}
	return _u
}

// ClearAssetID clears the value of the "asset_id" field.
func (_u *TollUpdateOne) ClearAssetID() *TollUpdateOne {
	_u.mutation.ClearAssetID()
	return _u
}

// SetDriverID sets the "driver_id" field.
func (_u *TollUpdateOne) SetDriverID(v uuid.UUID) *TollUpdateOne {
	_u.mutation.SetDriverID(v)
	return _u
}

// SetNillableDriverID sets the "driver_id" field if the given value is not nil.
func (_u *TollUpdateOne) SetNillableDriverID(v *uuid.UUID) *TollUpdateOne {
	if v != nil {
		_u.SetDriverID(*v)
	}
	return _u
}

// ClearDriverID clears the value of the "driver_id" field.
func (_u *TollUpdateOne) ClearDriverID() *TollUpdateOne {
	_u.mutation.ClearDriverID()
	return _u
}

// SetProcessStatus sets the "process_status" field.
func (_u *TollUpdateOne) SetProcessStatus(v string) *TollUpdateOne {
	_u.mutation.SetProcessStatus(v)
	return _u
}

// SetNillableProcessStatus sets the "process_status" field if the given value is not nil.
func (_u *TollUpdateOne) SetNillableProcessStatus(v *string) *TollUpdateOne {
	if v != nil {
		_u.SetProcessStatus(*v)
	}
	return _u
}

// SetExpenseID sets the "expense_id" field.
func (_u *TollUpdateOne) SetExpenseID(v uuid.UUID) *TollUpdateOne {
	_u.mutation.SetExpenseID(v)
	return _u
}

// SetNillableExpenseID sets the "expense_id" field if the given value is not nil.
func (_u *TollUpdateOne) SetNillableExpenseID(v *uuid.UUID) *TollUpdateOne {
	if v != nil {
		_u.SetExpenseID(*v)
	}
	return _u
}

// ClearExpenseID clears the value of the "expense_id" field.
func (_u *TollUpdateOne) ClearExpenseID() *TollUpdateOne {
	_u.mutation.ClearExpenseID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TollUpdateOne) SetCreatedAt(v time.Time) *TollUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TollUpdateOne) SetNillableCreatedAt(v *time.Time) *TollUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the TollMutation object of the builder.
func (_u *TollUpdateOne) Mutation() *TollMutation {
	return _u.mutation
}

// Where appends a list predicates to the TollUpdate builder.
func (_u *TollUpdateOne) Where(ps ...predicate.Toll) *TollUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TollUpdateOne) Select(field string, fields ...string) *TollUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Toll entity.
func (_u *TollUpdateOne) Save(ctx context.Context) (*Toll, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TollUpdateOne) SaveX(ctx context.Context) *Toll {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TollUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TollUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TollUpdateOne) check() error {
	if v, ok := _u.mutation.EtagID(); ok {
		if err := toll.EtagIDValidator(v); err != nil {
			return &ValidationError{Name: "etag_id", err: fmt.Errorf(`ent: validator failed for field "Toll.etag_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TollUpdateOne) sqlSave(ctx context.Context) (_node *Toll, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toll.Table, toll.Columns, sqlgraph.NewFieldSpec(toll.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Toll.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toll.FieldID)
		for _, f := range fields {
			if !toll.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toll.FieldID {
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
	if value, ok := _u.mutation.TransactionDate(); ok {
		_spec.SetField(toll.FieldTransactionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TollingPoint(); ok {
		_spec.SetField(toll.FieldTollingPoint, field.TypeString, value)
	}
	if _u.mutation.TollingPointCleared() {
		_spec.ClearField(toll.FieldTollingPoint, field.TypeString)
	}
	if value, ok := _u.mutation.EtagID(); ok {
		_spec.SetField(toll.FieldEtagID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NetAmount(); ok {
		_spec.SetField(toll.FieldNetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetAmount(); ok {
		_spec.AddField(toll.FieldNetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CaptureID(); ok {
		_spec.SetField(toll.FieldCaptureID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PageResultID(); ok {
		_spec.SetField(toll.FieldPageResultID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AssetID(); ok {
		_spec.SetField(toll.FieldAssetID, field.TypeUUID, value)
	}
	if _u.mutation.AssetIDCleared() {
		_spec.ClearField(toll.FieldAssetID, field.TypeUUID)
	}
	if value, ok := _u.mutation.DriverID(); ok {
		_spec.SetField(toll.FieldDriverID, field.TypeUUID, value)
	}
	if _u.mutation.DriverIDCleared() {
		_spec.ClearField(toll.FieldDriverID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ProcessStatus(); ok {
		_spec.SetField(toll.FieldProcessStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpenseID(); ok {
		_spec.SetField(toll.FieldExpenseID, field.TypeUUID, value)
	}
	if _u.mutation.ExpenseIDCleared() {
		_spec.ClearField(toll.FieldExpenseID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(toll.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Toll{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toll.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
