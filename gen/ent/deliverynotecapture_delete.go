// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetware/transport-ops/gen/ent/deliverynotecapture"
	"github.com/fleetware/transport-ops/gen/ent/predicate"
)

// DeliveryNoteCaptureDelete is the builder for deleting a DeliveryNoteCapture entity.
type DeliveryNoteCaptureDelete struct {
	config
	hooks    []Hook
	mutation *DeliveryNoteCaptureMutation
}

// Where appends a list predicates to the DeliveryNoteCaptureDelete builder.
func (_d *DeliveryNoteCaptureDelete) Where(ps ...predicate.DeliveryNoteCapture) *DeliveryNoteCaptureDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DeliveryNoteCaptureDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeliveryNoteCaptureDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DeliveryNoteCaptureDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(deliverynotecapture.Table, sqlgraph.NewFieldSpec(deliverynotecapture.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DeliveryNoteCaptureDeleteOne is the builder for deleting a single DeliveryNoteCapture entity.
type DeliveryNoteCaptureDeleteOne struct {
	_d *DeliveryNoteCaptureDelete
}

// Where appends a list predicates to the DeliveryNoteCaptureDelete builder.
func (_d *DeliveryNoteCaptureDeleteOne) Where(ps ...predicate.DeliveryNoteCapture) *DeliveryNoteCaptureDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DeliveryNoteCaptureDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{deliverynotecapture.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeliveryNoteCaptureDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
