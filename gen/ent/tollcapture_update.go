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
	"github.com/fleetware/transport-ops/gen/ent/tollcapture"
	"github.com/google/uuid"
)

// TollCaptureUpdate is the builder for updating TollCapture entities.
type TollCaptureUpdate struct {
	config
	hooks    []Hook
	mutation *TollCaptureMutation
}

// Where appends a list predicates to the TollCaptureUpdate builder.
func (_u *TollCaptureUpdate) Where(ps ...predicate.TollCapture) *TollCaptureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDriverID sets the "driver_id" field.
func (_u *TollCaptureUpdate) SetDriverID(v uuid.UUID) *TollCaptureUpdate {
	_u.mutation.SetDriverID(v)
	return _u
}

// SetNillableDriverID sets the "driver_id" field if the given value is not nil.
func (_u *TollCaptureUpdate) SetNillableDriverID(v *uuid.UUID) *TollCaptureUpdate {
	if v != nil {
		_u.SetDriverID(*v)
	}
	return _u
}

// SetAssetID sets the "asset_id" field.
func (_u *TollCaptureUpdate) SetAssetID(v uuid.UUID) *TollCaptureUpdate {
	_u.mutation.SetAssetID(v)
	return _u
}

// SetNillableAssetID sets the "asset_id" field if the given value is not nil.
func (_u *TollCaptureUpdate) SetNillableAssetID(v *uuid.UUID) *TollCaptureUpdate {
	if v != nil {
		_u.SetAssetID(*v)
	}
	return _u
}

// ClearAssetID clears the value of the "asset_id" field.
func (_u *TollCaptureUpdate) ClearAssetID() *TollCaptureUpdate {
	_u.mutation.ClearAssetID()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *TollCaptureUpdate) SetFilePath(v string) *TollCaptureUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *TollCaptureUpdate) SetNillableFilePath(v *string) *TollCaptureUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetTotalRecords sets the "total_records" field.
func (_u *TollCaptureUpdate) SetTotalRecords(v int) *TollCaptureUpdate {
	_u.mutation.ResetTotalRecords()
	_u.mutation.SetTotalRecords(v)
	return _u
}

// SetNillableTotalRecords sets the "total_records" field if the given value is not nil.
func (_u *TollCaptureUpdate) SetNillableTotalRecords(v *int) *TollCaptureUpdate {
	if v != nil {
		_u.SetTotalRecords(*v)
	}
	return _u
}

// AddTotalRecords adds value to the "total_records" field.
func (_u *TollCaptureUpdate) AddTotalRecords(v int) *TollCaptureUpdate {
	_u.mutation.AddTotalRecords(v)
	return _u
}

// SetProgressCount sets the "progress_count" field.
func (_u *TollCaptureUpdate) SetProgressCount(v string) *TollCaptureUpdate {
	_u.mutation.SetProgressCount(v)
	return _u
}

// SetNillableProgressCount sets the "progress_count" field if the given value is not nil.
func (_u *TollCaptureUpdate) SetNillableProgressCount(v *string) *TollCaptureUpdate {
	if v != nil {
		_u.SetProgressCount(*v)
	}
	return _u
}

// SetProcessedPages sets the "processed_pages" field.
func (_u *TollCaptureUpdate) SetProcessedPages(v json.RawMessage) *TollCaptureUpdate {
	_u.mutation.SetProcessedPages(v)
	return _u
}

// AppendProcessedPages appends value to the "processed_pages" field.
func (_u *TollCaptureUpdate) AppendProcessedPages(v json.RawMessage) *TollCaptureUpdate {
	_u.mutation.AppendProcessedPages(v)
	return _u
}

// ClearProcessedPages clears the value of the "processed_pages" field.
func (_u *TollCaptureUpdate) ClearProcessedPages() *TollCaptureUpdate {
	_u.mutation.ClearProcessedPages()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TollCaptureUpdate) SetStatus(v string) *TollCaptureUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TollCaptureUpdate) SetNillableStatus(v *string) *TollCaptureUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TollCaptureUpdate) SetErrorMessage(v string) *TollCaptureUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TollCaptureUpdate) SetNillableErrorMessage(v *string) *TollCaptureUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TollCaptureUpdate) ClearErrorMessage() *TollCaptureUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TollCaptureUpdate) SetCreatedAt(v time.Time) *TollCaptureUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TollCaptureUpdate) SetNillableCreatedAt(v *time.Time) *TollCaptureUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TollCaptureUpdate) SetUpdatedAt(v time.Time) *TollCaptureUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TollCaptureMutation object of the builder.
func (_u *TollCaptureUpdate) Mutation() *TollCaptureMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TollCaptureUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TollCaptureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TollCaptureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TollCaptureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TollCaptureUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tollcapture.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TollCaptureUpdate) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := tollcapture.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "TollCapture.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalRecords(); ok {
		if err := tollcapture.TotalRecordsValidator(v); err != nil {
			return &ValidationError{Name: "total_records", err: fmt.Errorf(`ent: validator failed for field "TollCapture.total_records": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := tollcapture.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TollCapture.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TollCaptureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tollcapture.Table, tollcapture.Columns, sqlgraph.NewFieldSpec(tollcapture.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DriverID(); ok {
		_spec.SetField(tollcapture.FieldDriverID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AssetID(); ok {
		_spec.SetField(tollcapture.FieldAssetID, field.TypeUUID, value)
	}
	if _u.mutation.AssetIDCleared() {
		_spec.ClearField(tollcapture.FieldAssetID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(tollcapture.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalRecords(); ok {
		_spec.SetField(tollcapture.FieldTotalRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRecords(); ok {
		_spec.AddField(tollcapture.FieldTotalRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProgressCount(); ok {
		_spec.SetField(tollcapture.FieldProgressCount, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessedPages(); ok {
		_spec.SetField(tollcapture.FieldProcessedPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProcessedPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tollcapture.FieldProcessedPages, value)
		})
	}
	if _u.mutation.ProcessedPagesCleared() {
		_spec.ClearField(tollcapture.FieldProcessedPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tollcapture.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(tollcapture.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(tollcapture.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tollcapture.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tollcapture.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tollcapture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TollCaptureUpdateOne is the builder for updating a single TollCapture entity.
type TollCaptureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TollCaptureMutation
}

// SetDriverID sets the "driver_id" field.
func (_u *TollCaptureUpdateOne) SetDriverID(v uuid.UUID) *TollCaptureUpdateOne {
	_u.mutation.SetDriverID(v)
	return _u
}

// SetNillableDriverID sets the "driver_id" field if the given value is not nil.
func (_u *TollCaptureUpdateOne) SetNillableDriverID(v *uuid.UUID) *TollCaptureUpdateOne {
	if v != nil {
		_u.SetDriverID(*v)
	}
	return _u
}

// SetAssetID sets the "asset_id" field.
func (_u *TollCaptureUpdateOne) SetAssetID(v uuid.UUID) *TollCaptureUpdateOne {
	_u.mutation.SetAssetID(v)
	return _u
}

// SetNillableAssetID sets the "asset_id" field if the given value is not nil.
func (_u *TollCaptureUpdateOne) SetNillableAssetID(v *uuid.UUID) *TollCaptureUpdateOne {
	if v != nil {
		_u.SetAssetID(*v)
	}
	return _u
}

// ClearAssetID clears the value of the "asset_id" field.
func (_u *TollCaptureUpdateOne) ClearAssetID() *TollCaptureUpdateOne {
	_u.mutation.ClearAssetID()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *TollCaptureUpdateOne) SetFilePath(v string) *TollCaptureUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *TollCaptureUpdateOne) SetNillableFilePath(v *string) *TollCaptureUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetTotalRecords sets the "total_records" field.
func (_u *TollCaptureUpdateOne) SetTotalRecords(v int) *TollCaptureUpdateOne {
	_u.mutation.ResetTotalRecords()
	_u.mutation.SetTotalRecords(v)
	return _u
}

// SetNillableTotalRecords sets the "total_records" field if the given value is not nil.
func (_u *TollCaptureUpdateOne) SetNillableTotalRecords(v *int) *TollCaptureUpdateOne {
	if v != nil {
		_u.SetTotalRecords(*v)
	}
	return _u
}

// AddTotalRecords adds value to the "total_records" field.
func (_u *TollCaptureUpdateOne) AddTotalRecords(v int) *TollCaptureUpdateOne {
	_u.mutation.AddTotalRecords(v)
	return _u
}

// SetProgressCount sets the "progress_count" field.
func (_u *TollCaptureUpdateOne) SetProgressCount(v string) *TollCaptureUpdateOne {
	_u.mutation.SetProgressCount(v)
	return _u
}

// SetNillableProgressCount sets the "progress_count" field if the given value is not nil.
func (_u *TollCaptureUpdateOne) SetNillableProgressCount(v *string) *TollCaptureUpdateOne {
	if v != nil {
		_u.SetProgressCount(*v)
	}
	return _u
}

// SetProcessedPages sets the "processed_pages" field.
func (_u *TollCaptureUpdateOne) SetProcessedPages(v json.RawMessage) *TollCaptureUpdateOne {
	_u.mutation.SetProcessedPages(v)
	return _u
}

// AppendProcessedPages appends value to the "processed_pages" field.
func (_u *TollCaptureUpdateOne) AppendProcessedPages(v json.RawMessage) *TollCaptureUpdateOne {
	_u.mutation.AppendProcessedPages(v)
	return _u
}

// ClearProcessedPages clears the value of the "processed_pages" field.
func (_u *TollCaptureUpdateOne) ClearProcessedPages() *TollCaptureUpdateOne {
	_u.mutation.ClearProcessedPages()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TollCaptureUpdateOne) SetStatus(v string) *TollCaptureUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TollCaptureUpdateOne) SetNillableStatus(v *string) *TollCaptureUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TollCaptureUpdateOne) SetErrorMessage(v string) *TollCaptureUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TollCaptureUpdateOne) SetNillableErrorMessage(v *string) *TollCaptureUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TollCaptureUpdateOne) ClearErrorMessage() *TollCaptureUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TollCaptureUpdateOne) SetCreatedAt(v time.Time) *TollCaptureUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TollCaptureUpdateOne) SetNillableCreatedAt(v *time.Time) *TollCaptureUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TollCaptureUpdateOne) SetUpdatedAt(v time.Time) *TollCaptureUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TollCaptureMutation object of the builder.
func (_u *TollCaptureUpdateOne) Mutation() *TollCaptureMutation {
	return _u.mutation
}

// Where appends a list predicates to the TollCaptureUpdate builder.
func (_u *TollCaptureUpdateOne) Where(ps ...predicate.TollCapture) *TollCaptureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TollCaptureUpdateOne) Select(field string, fields ...string) *TollCaptureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TollCapture entity.
func (_u *TollCaptureUpdateOne) Save(ctx context.Context) (*TollCapture, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TollCaptureUpdateOne) SaveX(ctx context.Context) *TollCapture {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TollCaptureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TollCaptureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TollCaptureUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tollcapture.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TollCaptureUpdateOne) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := tollcapture.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "TollCapture.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalRecords(); ok {
		if err := tollcapture.TotalRecordsValidator(v); err != nil {
			return &ValidationError{Name: "total_records", err: fmt.Errorf(`ent: validator failed for field "TollCapture.total_records": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := tollcapture.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TollCapture.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TollCaptureUpdateOne) sqlSave(ctx context.Context) (_node *TollCapture, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tollcapture.Table, tollcapture.Columns, sqlgraph.NewFieldSpec(tollcapture.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TollCapture.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tollcapture.FieldID)
		for _, f := range fields {
			if !tollcapture.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tollcapture.FieldID {
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
	if value, ok := _u.mutation.DriverID(); ok {
		_spec.SetField(tollcapture.FieldDriverID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AssetID(); ok {
		_spec.SetField(tollcapture.FieldAssetID, field.TypeUUID, value)
	}
	if _u.mutation.AssetIDCleared() {
		_spec.ClearField(tollcapture.FieldAssetID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(tollcapture.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalRecords(); ok {
		_spec.SetField(tollcapture.FieldTotalRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRecords(); ok {
		_spec.AddField(tollcapture.FieldTotalRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProgressCount(); ok {
		_spec.SetField(tollcapture.FieldProgressCount, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessedPages(); ok {
		_spec.SetField(tollcapture.FieldProcessedPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProcessedPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tollcapture.FieldProcessedPages, value)
		})
	}
	if _u.mutation.ProcessedPagesCleared() {
		_spec.ClearField(tollcapture.FieldProcessedPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tollcapture.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(tollcapture.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(tollcapture.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tollcapture.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tollcapture.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TollCapture{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tollcapture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
