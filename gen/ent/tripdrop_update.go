// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetware/transport-ops/gen/ent/predicate"
	"github.com/fleetware/transport-ops/gen/ent/tripdrop"
	"github.com/google/uuid"
)

// TripDropUpdate is the builder for updating TripDrop entities.
type TripDropUpdate struct {
	config
	hooks    []Hook
	mutation *TripDropMutation
}

// Where appends a list predicates to the TripDropUpdate builder.
func (_u *TripDropUpdate) Where(ps ...predicate.TripDrop) *TripDropUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTripID sets the "trip_id" field.
func (_u *TripDropUpdate) SetTripID(v uuid.UUID) *TripDropUpdate {
	_u.mutation.SetTripID(v)
	return _u
}

// SetNillableTripID sets the "trip_id" field if the given value is not nil.
func (_u *TripDropUpdate) SetNillableTripID(v *uuid.UUID) *TripDropUpdate {
	if v != nil {
		_u.SetTripID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *TripDropUpdate) SetSeq(v int) *TripDropUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *TripDropUpdate) SetNillableSeq(v *int) *TripDropUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *TripDropUpdate) AddSeq(v int) *TripDropUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetOdoReading sets the "odo_reading" field.
func (_u *TripDropUpdate) SetOdoReading(v int) *TripDropUpdate {
	_u.mutation.ResetOdoReading()
	_u.mutation.SetOdoReading(v)
	return _u
}

// SetNillableOdoReading sets the "odo_reading" field if the given value is not nil.
func (_u *TripDropUpdate) SetNillableOdoReading(v *int) *TripDropUpdate {
	if v != nil {
		_u.SetOdoReading(*v)
	}
	return _u
}

// AddOdoReading adds value to the "odo_reading" field.
func (_u *TripDropUpdate) AddOdoReading(v int) *TripDropUpdate {
	_u.mutation.AddOdoReading(v)
	return _u
}

// Mutation returns the TripDropMutation object of the builder.
func (_u *TripDropUpdate) Mutation() *TripDropMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TripDropUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TripDropUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TripDropUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TripDropUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TripDropUpdate) check() error {
	if v, ok := _u.mutation.Seq(); ok {
		if err := tripdrop.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "TripDrop.seq": %w`, err)}
		}
	}
	return nil
}

func (_u *TripDropUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tripdrop.Table, tripdrop.Columns, sqlgraph.NewFieldSpec(tripdrop.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TripID(); ok {
		_spec.SetField(tripdrop.FieldTripID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(tripdrop.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(tripdrop.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OdoReading(); ok {
		_spec.SetField(tripdrop.FieldOdoReading, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOdoReading(); ok {
		_spec.AddField(tripdrop.FieldOdoReading, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tripdrop.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TripDropUpdateOne is the builder for updating a single TripDrop entity.
type TripDropUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TripDropMutation
}

// SetTripID sets the "trip_id" field.
func (_u *TripDropUpdateOne) SetTripID(v uuid.UUID) *TripDropUpdateOne {
	_u.mutation.SetTripID(v)
	return _u
}

// SetNillableTripID sets the "trip_id" field if the given value is not nil.
func (_u *TripDropUpdateOne) SetNillableTripID(v *uuid.UUID) *TripDropUpdateOne {
	if v != nil {
		_u.SetTripID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *TripDropUpdateOne) SetSeq(v int) *TripDropUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *TripDropUpdateOne) SetNillableSeq(v *int) *TripDropUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *TripDropUpdateOne) AddSeq(v int) *TripDropUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetOdoReading sets the "odo_reading" field.
func (_u *TripDropUpdateOne) SetOdoReading(v int) *TripDropUpdateOne {
	_u.mutation.ResetOdoReading()
	_u.mutation.SetOdoReading(v)
	return _u
}

// SetNillableOdoReading sets the "odo_reading" field if the given value is not nil.
func (_u *TripDropUpdateOne) SetNillableOdoReading(v *int) *TripDropUpdateOne {
	if v != nil {
		_u.SetOdoReading(*v)
	}
	return _u
}

// AddOdoReading adds value to the "odo_reading" field.
func (_u *TripDropUpdateOne) AddOdoReading(v int) *TripDropUpdateOne {
	_u.mutation.AddOdoReading(v)
	return _u
}

// Mutation returns the TripDropMutation object of the builder.
func (_u *TripDropUpdateOne) Mutation() *TripDropMutation {
	return _u.mutation
}

// Where appends a list predicates to the TripDropUpdate builder.
func (_u *TripDropUpdateOne) Where(ps ...predicate.TripDrop) *TripDropUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TripDropUpdateOne) Select(field string, fields ...string) *TripDropUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TripDrop entity.
func (_u *TripDropUpdateOne) Save(ctx context.Context) (*TripDrop, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TripDropUpdateOne) SaveX(ctx context.Context) *TripDrop {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TripDropUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TripDropUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TripDropUpdateOne) check() error {
	if v, ok := _u.mutation.Seq(); ok {
		if err := tripdrop.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "TripDrop.seq": %w`, err)}
		}
	}
	return nil
}

func (_u *TripDropUpdateOne) sqlSave(ctx context.Context) (_node *TripDrop, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tripdrop.Table, tripdrop.Columns, sqlgraph.NewFieldSpec(tripdrop.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TripDrop.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tripdrop.FieldID)
		for _, f := range fields {
			if !tripdrop.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tripdrop.FieldID {
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
	if value, ok := _u.mutation.TripID(); ok {
		_spec.SetField(tripdrop.FieldTripID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(tripdrop.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(tripdrop.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OdoReading(); ok {
		_spec.SetField(tripdrop.FieldOdoReading, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOdoReading(); ok {
		_spec.AddField(tripdrop.FieldOdoReading, field.TypeInt, value)
	}
	_node = &TripDrop{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tripdrop.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
