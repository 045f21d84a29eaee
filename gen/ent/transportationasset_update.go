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
	"github.com/fleetware/transport-ops/gen/ent/transportationasset"
)

// TransportationAssetUpdate is the builder for updating TransportationAsset entities.
type TransportationAssetUpdate struct {
	config
	hooks    []Hook
	mutation *TransportationAssetMutation
}

// Where appends a list predicates to the TransportationAssetUpdate builder.
func (_u *TransportationAssetUpdate) Where(ps ...predicate.TransportationAsset) *TransportationAssetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTruckNumber sets the "truck_number" field.
func (_u *TransportationAssetUpdate) SetTruckNumber(v string) *TransportationAssetUpdate {
	_u.mutation.SetTruckNumber(v)
	return _u
}

// SetNillableTruckNumber sets the "truck_number" field if the given value is not nil.
func (_u *TransportationAssetUpdate) SetNillableTruckNumber(v *string) *TransportationAssetUpdate {
	if v != nil {
		_u.SetTruckNumber(*v)
	}
	return _u
}

// SetEtagID sets the "etag_id" field.
func (_u *TransportationAssetUpdate) SetEtagID(v string) *TransportationAssetUpdate {
	_u.mutation.SetEtagID(v)
	return _u
}

// SetNillableEtagID sets the "etag_id" field if the given value is not nil.
func (_u *TransportationAssetUpdate) SetNillableEtagID(v *string) *TransportationAssetUpdate {
	if v != nil {
		_u.SetEtagID(*v)
	}
	return _u
}

// ClearEtagID clears the value of the "etag_id" field.
func (_u *TransportationAssetUpdate) ClearEtagID() *TransportationAssetUpdate {
	_u.mutation.ClearEtagID()
	return _u
}

// SetActive sets the "active" field.
func (_u *TransportationAssetUpdate) SetActive(v bool) *TransportationAssetUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *TransportationAssetUpdate) SetNillableActive(v *bool) *TransportationAssetUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TransportationAssetUpdate) SetCreatedAt(v time.Time) *TransportationAssetUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TransportationAssetUpdate) SetNillableCreatedAt(v *time.Time) *TransportationAssetUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the TransportationAssetMutation object of the builder.
func (_u *TransportationAssetUpdate) Mutation() *TransportationAssetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransportationAssetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransportationAssetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransportationAssetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransportationAssetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransportationAssetUpdate) check() error {
	if v, ok := _u.mutation.TruckNumber(); ok {
		if err := transportationasset.TruckNumberValidator(v); err != nil {
			return &ValidationError{Name: "truck_number", err: fmt.Errorf(`ent: validator failed for field "TransportationAsset.truck_number": %w`, err)}
		}
	}
	return nil
}

func (_u *TransportationAssetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transportationasset.Table, transportationasset.Columns, sqlgraph.NewFieldSpec(transportationasset.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TruckNumber(); ok {
		_spec.SetField(transportationasset.FieldTruckNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.EtagID(); ok {
		_spec.SetField(transportationasset.FieldEtagID, field.TypeString, value)
	}
	if _u.mutation.EtagIDCleared() {
		_spec.ClearField(transportationasset.FieldEtagID, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(transportationasset.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transportationasset.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transportationasset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransportationAssetUpdateOne is the builder for updating a single TransportationAsset entity.
type TransportationAssetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransportationAssetMutation
}

// SetTruckNumber sets the "truck_number" field.
func (_u *TransportationAssetUpdateOne) SetTruckNumber(v string) *TransportationAssetUpdateOne {
	_u.mutation.SetTruckNumber(v)
	return _u
}

// SetNillableTruckNumber sets the "truck_number" field if the given value is not nil.
func (_u *TransportationAssetUpdateOne) SetNillableTruckNumber(v *string) *TransportationAssetUpdateOne {
	if v != nil {
		_u.SetTruckNumber(*v)
	}
	return _u
}

// SetEtagID sets the "etag_id" field.
func (_u *TransportationAssetUpdateOne) SetEtagID(v string) *TransportationAssetUpdateOne {
	_u.mutation.SetEtagID(v)
	return _u
}

// SetNillableEtagID sets the "etag_id" field if the given value is not nil.
func (_u *TransportationAssetUpdateOne) SetNillableEtagID(v *string) *TransportationAssetUpdateOne {
	if v != nil {
		_u.SetEtagID(*v)
	}
	return _u
}

// ClearEtagID clears the value of the "etag_id" field.
func (_u *TransportationAssetUpdateOne) ClearEtagID() *TransportationAssetUpdateOne {
	_u.mutation.ClearEtagID()
	return _u
}

// SetActive sets the "active" field.
func (_u *TransportationAssetUpdateOne) SetActive(v bool) *TransportationAssetUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *TransportationAssetUpdateOne) SetNillableActive(v *bool) *TransportationAssetUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TransportationAssetUpdateOne) SetCreatedAt(v time.Time) *TransportationAssetUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TransportationAssetUpdateOne) SetNillableCreatedAt(v *time.Time) *TransportationAssetUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the TransportationAssetMutation object of the builder.
func (_u *TransportationAssetUpdateOne) Mutation() *TransportationAssetMutation {
	return _u.mutation
}

// Where appends a list predicates to the TransportationAssetUpdate builder.
func (_u *TransportationAssetUpdateOne) Where(ps ...predicate.TransportationAsset) *TransportationAssetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransportationAssetUpdateOne) Select(field string, fields ...string) *TransportationAssetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TransportationAsset entity.
func (_u *TransportationAssetUpdateOne) Save(ctx context.Context) (*TransportationAsset, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransportationAssetUpdateOne) SaveX(ctx context.Context) *TransportationAsset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransportationAssetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransportationAssetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransportationAssetUpdateOne) check() error {
	if v, ok := _u.mutation.TruckNumber(); ok {
		if err := transportationasset.TruckNumberValidator(v); err != nil {
			return &ValidationError{Name: "truck_number", err: fmt.Errorf(`ent: validator failed for field "TransportationAsset.truck_number": %w`, err)}
		}
	}
	return nil
}

func (_u *TransportationAssetUpdateOne) sqlSave(ctx context.Context) (_node *TransportationAsset, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transportationasset.Table, transportationasset.Columns, sqlgraph.NewFieldSpec(transportationasset.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TransportationAsset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transportationasset.FieldID)
		for _, f := range fields {
			if !transportationasset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transportationasset.FieldID {
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
	if value, ok := _u.mutation.TruckNumber(); ok {
		_spec.SetField(transportationasset.FieldTruckNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.EtagID(); ok {
		_spec.SetField(transportationasset.FieldEtagID, field.TypeString, value)
	}
	if _u.mutation.EtagIDCleared() {
		_spec.ClearField(transportationasset.FieldEtagID, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(transportationasset.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transportationasset.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &TransportationAsset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transportationasset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
