// Code generated by ent, DO NOT EDIT.

package toll

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldLTE(FieldID, id))
}

// TransactionDate applies equality check predicate on the "transaction_date" field. It's identical to TransactionDateEQ.
func TransactionDate(v time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldTransactionDate, v))
}

// TollingPoint applies equality check predicate on the "tolling_point" field. It's identical to TollingPointEQ.
func TollingPoint(v string) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldTollingPoint, v))
}

// EtagID applies equality check predicate on the "etag_id" field. It's identical to EtagIDEQ.
func EtagID(v string) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldEtagID, v))
}

// NetAmount applies equality check predicate on the "net_amount" field. It's identical to NetAmountEQ.
func NetAmount(v float64) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldNetAmount, v))
}

// CaptureID applies equality check predicate on the "capture_id" field. It's identical to CaptureIDEQ.
func CaptureID(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldCaptureID, v))
}

// PageResultID applies equality check predicate on the "page_result_id" field. It's identical to PageResultIDEQ.
func PageResultID(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldPageResultID, v))
}

// AssetID applies equality check predicate on the "asset_id" field. It's identical to AssetIDEQ.
func AssetID(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldAssetID, v))
}

// DriverID applies equality check predicate on the "driver_id" field. It's identical to DriverIDEQ.
func DriverID(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldDriverID, v))
}

// ProcessStatus applies equality check predicate on the "process_status" field. It's identical to ProcessStatusEQ.
func ProcessStatus(v string) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldProcessStatus, v))
}

// ExpenseID applies equality check predicate on the "expense_id" field. It's identical to ExpenseIDEQ.
func ExpenseID(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldExpenseID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldCreatedAt, v))
}

// TransactionDateEQ applies the EQ predicate on the "transaction_date" field.
func TransactionDateEQ(v time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldTransactionDate, v))
}

// TransactionDateNEQ applies the NEQ predicate on the "transaction_date" field.
func TransactionDateNEQ(v time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldNEQ(FieldTransactionDate, v))
}

// TransactionDateIn applies the In predicate on the "transaction_date" field.
func TransactionDateIn(vs ...time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldIn(FieldTransactionDate, vs...))
}

// TransactionDateNotIn applies the NotIn predicate on the "transaction_date" field.
func TransactionDateNotIn(vs ...time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldNotIn(FieldTransactionDate, vs...))
}

// TransactionDateGT applies the GT predicate on the "transaction_date" field.
func TransactionDateGT(v time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldGT(FieldTransactionDate, v))
}

// TransactionDateGTE applies the GTE predicate on the "transaction_date" field.
func TransactionDateGTE(v time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldGTE(FieldTransactionDate, v))
}

// TransactionDateLT applies the LT predicate on the "transaction_date" field.
func TransactionDateLT(v time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldLT(FieldTransactionDate, v))
}

// TransactionDateLTE applies the LTE predicate on the "transaction_date" field.
func TransactionDateLTE(v time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldLTE(FieldTransactionDate, v))
}

// TollingPointEQ applies the EQ predicate on the "tolling_point" field.
func TollingPointEQ(v string) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldTollingPoint, v))
}

// TollingPointNEQ applies the NEQ predicate on the "tolling_point" field.
func TollingPointNEQ(v string) predicate.Toll {
	return predicate.Toll(sql.FieldNEQ(FieldTollingPoint, v))
}

// TollingPointIn applies the In predicate on the "tolling_point" field.
func TollingPointIn(vs ...string) predicate.Toll {
	return predicate.Toll(sql.FieldIn(FieldTollingPoint, vs...))
}

// TollingPointNotIn applies the NotIn predicate on the "tolling_point" field.
func TollingPointNotIn(vs ...string) predicate.Toll {
	return predicate.Toll(sql.FieldNotIn(FieldTollingPoint, vs...))
}

// TollingPointGT applies the GT predicate on the "tolling_point" field.
func TollingPointGT(v string) predicate.Toll {
	return predicate.Toll(sql.FieldGT(FieldTollingPoint, v))
}

// TollingPointGTE applies the GTE predicate on the "tolling_point" field.
func TollingPointGTE(v string) predicate.Toll {
	return predicate.Toll(sql.FieldGTE(FieldTollingPoint, v))
}

// TollingPointLT applies the LT predicate on the "tolling_point" field.
func TollingPointLT(v string) predicate.Toll {
	return predicate.Toll(sql.FieldLT(FieldTollingPoint, v))
}

// TollingPointLTE applies the LTE predicate on the "tolling_point" field.
func TollingPointLTE(v string) predicate.Toll {
	return predicate.Toll(sql.FieldLTE(FieldTollingPoint, v))
}

// TollingPointContains applies the Contains predicate on the "tolling_point" field.
func TollingPointContains(v string) predicate.Toll {
	return predicate.Toll(sql.FieldContains(FieldTollingPoint, v))
}

// TollingPointHasPrefix applies the HasPrefix predicate on the "tolling_point" field.
func TollingPointHasPrefix(v string) predicate.Toll {
	return predicate.Toll(sql.FieldHasPrefix(FieldTollingPoint, v))
}

// TollingPointHasSuffix applies the HasSuffix predicate on the "tolling_point" field.
func TollingPointHasSuffix(v string) predicate.Toll {
	return predicate.Toll(sql.FieldHasSuffix(FieldTollingPoint, v))
}

// TollingPointIsNil applies the IsNil predicate on the "tolling_point" field.
func TollingPointIsNil() predicate.Toll {
	return predicate.Toll(sql.FieldIsNull(FieldTollingPoint))
}

// TollingPointNotNil applies the NotNil predicate on the "tolling_point" field.
func TollingPointNotNil() predicate.Toll {
	return predicate.Toll(sql.FieldNotNull(FieldTollingPoint))
}

// TollingPointEqualFold applies the EqualFold predicate on the "tolling_point" field.
func TollingPointEqualFold(v string) predicate.Toll {
	return predicate.Toll(sql.FieldEqualFold(FieldTollingPoint, v))
}

// TollingPointContainsFold applies the ContainsFold predicate on the "tolling_point" field.
func TollingPointContainsFold(v string) predicate.Toll {
	return predicate.Toll(sql.FieldContainsFold(FieldTollingPoint, v))
}

// EtagIDEQ applies the EQ predicate on the "etag_id" field.
func EtagIDEQ(v string) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldEtagID, v))
}

// EtagIDNEQ applies the NEQ predicate on the "etag_id" field.
func EtagIDNEQ(v string) predicate.Toll {
	return predicate.Toll(sql.FieldNEQ(FieldEtagID, v))
}

// EtagIDIn applies the In predicate on the "etag_id" field.
func EtagIDIn(vs ...string) predicate.Toll {
	return predicate.Toll(sql.FieldIn(FieldEtagID, vs...))
}

// EtagIDNotIn applies the NotIn predicate on the "etag_id" field.
func EtagIDNotIn(vs ...string) predicate.Toll {
	return predicate.Toll(sql.FieldNotIn(FieldEtagID, vs...))
}

// EtagIDGT applies the GT predicate on the "etag_id" field.
func EtagIDGT(v string) predicate.Toll {
	return predicate.Toll(sql.FieldGT(FieldEtagID, v))
}

// EtagIDGTE applies the GTE predicate on the "etag_id" field.
func EtagIDGTE(v string) predicate.Toll {
	return predicate.Toll(sql.FieldGTE(FieldEtagID, v))
}

// EtagIDLT applies the LT predicate on the "etag_id" field.
func EtagIDLT(v string) predicate.Toll {
	return predicate.Toll(sql.FieldLT(FieldEtagID, v))
}

// EtagIDLTE applies the LTE predicate on the "etag_id" field.
func EtagIDLTE(v string) predicate.Toll {
	return predicate.Toll(sql.FieldLTE(FieldEtagID, v))
}

// EtagIDContains applies the Contains predicate on the "etag_id" field.
func EtagIDContains(v string) predicate.Toll {
	return predicate.Toll(sql.FieldContains(FieldEtagID, v))
}

// EtagIDHasPrefix applies the HasPrefix predicate on the "etag_id" field.
func EtagIDHasPrefix(v string) predicate.Toll {
	return predicate.Toll(sql.FieldHasPrefix(FieldEtagID, v))
}

// EtagIDHasSuffix applies the HasSuffix predicate on the "etag_id" field.
func EtagIDHasSuffix(v string) predicate.Toll {
	return predicate.Toll(sql.FieldHasSuffix(FieldEtagID, v))
}

// EtagIDEqualFold applies the EqualFold predicate on the "etag_id" field.
func EtagIDEqualFold(v string) predicate.Toll {
	return predicate.Toll(sql.FieldEqualFold(FieldEtagID, v))
}

// EtagIDContainsFold applies the ContainsFold predicate on the "etag_id" field.
func EtagIDContainsFold(v string) predicate.Toll {
	return predicate.Toll(sql.FieldContainsFold(FieldEtagID, v))
}

// NetAmountEQ applies the EQ predicate on the "net_amount" field.
func NetAmountEQ(v float64) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldNetAmount, v))
}

// NetAmountNEQ applies the NEQ predicate on the "net_amount" field.
func NetAmountNEQ(v float64) predicate.Toll {
	return predicate.Toll(sql.FieldNEQ(FieldNetAmount, v))
}

// NetAmountIn applies the In predicate on the "net_amount" field.
func NetAmountIn(vs ...float64) predicate.Toll {
	return predicate.Toll(sql.FieldIn(FieldNetAmount, vs...))
}

// NetAmountNotIn applies the NotIn predicate on the "net_amount" field.
func NetAmountNotIn(vs ...float64) predicate.Toll {
	return predicate.Toll(sql.FieldNotIn(FieldNetAmount, vs...))
}

// NetAmountGT applies the GT predicate on the "net_amount" field.
func NetAmountGT(v float64) predicate.Toll {
	return predicate.Toll(sql.FieldGT(FieldNetAmount, v))
}

// NetAmountGTE applies the GTE predicate on the "net_amount" field.
func NetAmountGTE(v float64) predicate.Toll {
	return predicate.Toll(sql.FieldGTE(FieldNetAmount, v))
}

// NetAmountLT applies the LT predicate on the "net_amount" field.
func NetAmountLT(v float64) predicate.Toll {
	return predicate.Toll(sql.FieldLT(FieldNetAmount, v))
}

// NetAmountLTE applies the LTE predicate on the "net_amount" field.
func NetAmountLTE(v float64) predicate.Toll {
	return predicate.Toll(sql.FieldLTE(FieldNetAmount, v))
}

// CaptureIDEQ applies the EQ predicate on the "capture_id" field.
func CaptureIDEQ(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldCaptureID, v))
}

// CaptureIDNEQ applies the NEQ predicate on the "capture_id" field.
func CaptureIDNEQ(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldNEQ(FieldCaptureID, v))
}

// CaptureIDIn applies the In predicate on the "capture_id" field.
func CaptureIDIn(vs ...uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldIn(FieldCaptureID, vs...))
}

// CaptureIDNotIn applies the NotIn predicate on the "capture_id" field.
func CaptureIDNotIn(vs ...uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldNotIn(FieldCaptureID, vs...))
}

// CaptureIDGT applies the GT predicate on the "capture_id" field.
func CaptureIDGT(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldGT(FieldCaptureID, v))
}

// CaptureIDGTE applies the GTE predicate on the "capture_id" field.
func CaptureIDGTE(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldGTE(FieldCaptureID, v))
}

// CaptureIDLT applies the LT predicate on the "capture_id" field.
func CaptureIDLT(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldLT(FieldCaptureID, v))
}

// CaptureIDLTE applies the LTE predicate on the "capture_id" field.
func CaptureIDLTE(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldLTE(FieldCaptureID, v))
}

// PageResultIDEQ applies the EQ predicate on the "page_result_id" field.
func PageResultIDEQ(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldPageResultID, v))
}

// PageResultIDNEQ applies the NEQ predicate on the "page_result_id" field.
func PageResultIDNEQ(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldNEQ(FieldPageResultID, v))
}

// PageResultIDIn applies the In predicate on the "page_result_id" field.
func PageResultIDIn(vs ...uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldIn(FieldPageResultID, vs...))
}

// PageResultIDNotIn applies the NotIn predicate on the "page_result_id" field.
func PageResultIDNotIn(vs ...uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldNotIn(FieldPageResultID, vs...))
}

// PageResultIDGT applies the GT predicate on the "page_result_id" field.
func PageResultIDGT(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldGT(FieldPageResultID, v))
}

// PageResultIDGTE applies the GTE predicate on the "page_result_id" field.
func PageResultIDGTE(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldGTE(FieldPageResultID, v))
}

// PageResultIDLT applies the LT predicate on the "page_result_id" field.
func PageResultIDLT(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldLT(FieldPageResultID, v))
}

// PageResultIDLTE applies the LTE predicate on the "page_result_id" field.
func PageResultIDLTE(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldLTE(FieldPageResultID, v))
}

// AssetIDEQ applies the EQ predicate on the "asset_id" field.
func AssetIDEQ(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldAssetID, v))
}

// AssetIDNEQ applies the NEQ predicate on the "asset_id" field.
func AssetIDNEQ(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldNEQ(FieldAssetID, v))
}

// AssetIDIn applies the In predicate on the "asset_id" field.
func AssetIDIn(vs ...uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldIn(FieldAssetID, vs...))
}

// AssetIDNotIn applies the NotIn predicate on the "asset_id" field.
func AssetIDNotIn(vs ...uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldNotIn(FieldAssetID, vs...))
}

// AssetIDGT applies the GT predicate on the "asset_id" field.
func AssetIDGT(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldGT(FieldAssetID, v))
}

// AssetIDGTE applies the GTE predicate on the "asset_id" field.
func AssetIDGTE(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldGTE(FieldAssetID, v))
}

// AssetIDLT applies the LT predicate on the "asset_id" field.
func AssetIDLT(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldLT(FieldAssetID, v))
}

// AssetIDLTE applies the LTE predicate on the "asset_id" field.
func AssetIDLTE(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldLTE(FieldAssetID, v))
}

// AssetIDIsNil applies the IsNil predicate on the "asset_id" field.
func AssetIDIsNil() predicate.Toll {
	return predicate.Toll(sql.FieldIsNull(FieldAssetID))
}

// AssetIDNotNil applies the NotNil predicate on the "asset_id" field.
func AssetIDNotNil() predicate.Toll {
	return predicate.Toll(sql.FieldNotNull(FieldAssetID))
}

// DriverIDEQ applies the EQ predicate on the "driver_id" field.
func DriverIDEQ(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldDriverID, v))
}

// DriverIDNEQ applies the NEQ predicate on the "driver_id" field.
func DriverIDNEQ(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldNEQ(FieldDriverID, v))
}

// DriverIDIn applies the In predicate on the "driver_id" field.
func DriverIDIn(vs ...uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldIn(FieldDriverID, vs...))
}

// DriverIDNotIn applies the NotIn predicate on the "driver_id" field.
func DriverIDNotIn(vs ...uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldNotIn(FieldDriverID, vs...))
}

// DriverIDGT applies the GT predicate on the "driver_id" field.
func DriverIDGT(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldGT(FieldDriverID, v))
}

// DriverIDGTE applies the GTE predicate on the "driver_id" field.
func DriverIDGTE(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldGTE(FieldDriverID, v))
}

// DriverIDLT applies the LT predicate on the "driver_id" field.
func DriverIDLT(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldLT(FieldDriverID, v))
}

// DriverIDLTE applies the LTE predicate on the "driver_id" field.
func DriverIDLTE(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldLTE(FieldDriverID, v))
}

// DriverIDIsNil applies the IsNil predicate on the "driver_id" field.
func DriverIDIsNil() predicate.Toll {
	return predicate.Toll(sql.FieldIsNull(FieldDriverID))
}

// DriverIDNotNil applies the NotNil predicate on the "driver_id" field.
func DriverIDNotNil() predicate.Toll {
	return predicate.Toll(sql.FieldNotNull(FieldDriverID))
}

// ProcessStatusEQ applies the EQ predicate on the "process_status" field.
func ProcessStatusEQ(v string) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldProcessStatus, v))
}

// ProcessStatusNEQ applies the NEQ predicate on the "process_status" field.
func ProcessStatusNEQ(v string) predicate.Toll {
	return predicate.Toll(sql.FieldNEQ(FieldProcessStatus, v))
}

// ProcessStatusIn applies the In predicate on the "process_status" field.
func ProcessStatusIn(vs ...string) predicate.Toll {
	return predicate.Toll(sql.FieldIn(FieldProcessStatus, vs...))
}

// ProcessStatusNotIn applies the NotIn predicate on the "process_status" field.
func ProcessStatusNotIn(vs ...string) predicate.Toll {
	return predicate.Toll(sql.FieldNotIn(FieldProcessStatus, vs...))
}

// ProcessStatusGT applies the GT predicate on the "process_status" field.
func ProcessStatusGT(v string) predicate.Toll {
	return predicate.Toll(sql.FieldGT(FieldProcessStatus, v))
}

// ProcessStatusGTE applies the GTE predicate on the "process_status" field.
func ProcessStatusGTE(v string) predicate.Toll {
	return predicate.Toll(sql.FieldGTE(FieldProcessStatus, v))
}

// ProcessStatusLT applies the LT predicate on the "process_status" field.
func ProcessStatusLT(v string) predicate.Toll {
	return predicate.Toll(sql.FieldLT(FieldProcessStatus, v))
}

// ProcessStatusLTE applies the LTE predicate on the "process_status" field.
func ProcessStatusLTE(v string) predicate.Toll {
	return predicate.Toll(sql.FieldLTE(FieldProcessStatus, v))
}

// ProcessStatusContains applies the Contains predicate on the "process_status" field.
func ProcessStatusContains(v string) predicate.Toll {
	return predicate.Toll(sql.FieldContains(FieldProcessStatus, v))
}

// ProcessStatusHasPrefix applies the HasPrefix predicate on the "process_status" field.
func ProcessStatusHasPrefix(v string) predicate.Toll {
	return predicate.Toll(sql.FieldHasPrefix(FieldProcessStatus, v))
}

// ProcessStatusHasSuffix applies the HasSuffix predicate on the "process_status" field.
func ProcessStatusHasSuffix(v string) predicate.Toll {
	return predicate.Toll(sql.FieldHasSuffix(FieldProcessStatus, v))
}

// ProcessStatusEqualFold applies the EqualFold predicate on the "process_status" field.
func ProcessStatusEqualFold(v string) predicate.Toll {
	return predicate.Toll(sql.FieldEqualFold(FieldProcessStatus, v))
}

// ProcessStatusContainsFold applies the ContainsFold predicate on the "process_status" field.
func ProcessStatusContainsFold(v string) predicate.Toll {
	return predicate.Toll(sql.FieldContainsFold(FieldProcessStatus, v))
}

// ExpenseIDEQ applies the EQ predicate on the "expense_id" field.
func ExpenseIDEQ(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldExpenseID, v))
}

// ExpenseIDNEQ applies the NEQ predicate on the "expense_id" field.
func ExpenseIDNEQ(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldNEQ(FieldExpenseID, v))
}

// ExpenseIDIn applies the In predicate on the "expense_id" field.
func ExpenseIDIn(vs ...uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldIn(FieldExpenseID, vs...))
}

// ExpenseIDNotIn applies the NotIn predicate on the "expense_id" field.
func ExpenseIDNotIn(vs ...uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldNotIn(FieldExpenseID, vs...))
}

// ExpenseIDGT applies the GT predicate on the "expense_id" field.
func ExpenseIDGT(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldGT(FieldExpenseID, v))
}

// ExpenseIDGTE applies the GTE predicate on the "expense_id" field.
func ExpenseIDGTE(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldGTE(FieldExpenseID, v))
}

// ExpenseIDLT applies the LT predicate on the "expense_id" field.
func ExpenseIDLT(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldLT(FieldExpenseID, v))
}

// ExpenseIDLTE applies the LTE predicate on the "expense_id" field.
func ExpenseIDLTE(v uuid.UUID) predicate.Toll {
	return predicate.Toll(sql.FieldLTE(FieldExpenseID, v))
}

// ExpenseIDIsNil applies the IsNil predicate on the "expense_id" field.
func ExpenseIDIsNil() predicate.Toll {
	return predicate.Toll(sql.FieldIsNull(FieldExpenseID))
}

// ExpenseIDNotNil applies the NotNil predicate on the "expense_id" field.
func ExpenseIDNotNil() predicate.Toll {
	return predicate.Toll(sql.FieldNotNull(FieldExpenseID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Toll {
	return predicate.Toll(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Toll) predicate.Toll {
	return predicate.Toll(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Toll) predicate.Toll {
	return predicate.Toll(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Toll) predicate.Toll {
	return predicate.Toll(sql.NotPredicates(p))
}
