// Code generated by ent, DO NOT EDIT.

package tollcapture

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLTE(FieldID, id))
}

// DriverID applies equality check predicate on the "driver_id" field. It's identical to DriverIDEQ.
func DriverID(v uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldDriverID, v))
}

// AssetID applies equality check predicate on the "asset_id" field. It's identical to AssetIDEQ.
func AssetID(v uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldAssetID, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldFilePath, v))
}

// TotalRecords applies equality check predicate on the "total_records" field. It's identical to TotalRecordsEQ.
func TotalRecords(v int) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldTotalRecords, v))
}

// ProgressCount applies equality check predicate on the "progress_count" field. It's identical to ProgressCountEQ.
func ProgressCount(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldProgressCount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldUpdatedAt, v))
}

// DriverIDEQ applies the EQ predicate on the "driver_id" field.
func DriverIDEQ(v uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldDriverID, v))
}

// DriverIDNEQ applies the NEQ predicate on the "driver_id" field.
func DriverIDNEQ(v uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNEQ(FieldDriverID, v))
}

// DriverIDIn applies the In predicate on the "driver_id" field.
func DriverIDIn(vs ...uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldIn(FieldDriverID, vs...))
}

// DriverIDNotIn applies the NotIn predicate on the "driver_id" field.
func DriverIDNotIn(vs ...uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNotIn(FieldDriverID, vs...))
}

// DriverIDGT applies the GT predicate on the "driver_id" field.
func DriverIDGT(v uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGT(FieldDriverID, v))
}

// DriverIDGTE applies the GTE predicate on the "driver_id" field.
func DriverIDGTE(v uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGTE(FieldDriverID, v))
}

// DriverIDLT applies the LT predicate on the "driver_id" field.
func DriverIDLT(v uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLT(FieldDriverID, v))
}

// DriverIDLTE applies the LTE predicate on the "driver_id" field.
func DriverIDLTE(v uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLTE(FieldDriverID, v))
}

// AssetIDEQ applies the EQ predicate on the "asset_id" field.
func AssetIDEQ(v uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldAssetID, v))
}

// AssetIDNEQ applies the NEQ predicate on the "asset_id" field.
func AssetIDNEQ(v uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNEQ(FieldAssetID, v))
}

// AssetIDIn applies the In predicate on the "asset_id" field.
func AssetIDIn(vs ...uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldIn(FieldAssetID, vs...))
}

// AssetIDNotIn applies the NotIn predicate on the "asset_id" field.
func AssetIDNotIn(vs ...uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNotIn(FieldAssetID, vs...))
}

// AssetIDGT applies the GT predicate on the "asset_id" field.
func AssetIDGT(v uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGT(FieldAssetID, v))
}

// AssetIDGTE applies the GTE predicate on the "asset_id" field.
func AssetIDGTE(v uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGTE(FieldAssetID, v))
}

// AssetIDLT applies the LT predicate on the "asset_id" field.
func AssetIDLT(v uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLT(FieldAssetID, v))
}

// AssetIDLTE applies the LTE predicate on the "asset_id" field.
func AssetIDLTE(v uuid.UUID) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLTE(FieldAssetID, v))
}

// AssetIDIsNil applies the IsNil predicate on the "asset_id" field.
func AssetIDIsNil() predicate.TollCapture {
	return predicate.TollCapture(sql.FieldIsNull(FieldAssetID))
}

// AssetIDNotNil applies the NotNil predicate on the "asset_id" field.
func AssetIDNotNil() predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNotNull(FieldAssetID))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldContainsFold(FieldFilePath, v))
}

// TotalRecordsEQ applies the EQ predicate on the "total_records" field.
func TotalRecordsEQ(v int) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldTotalRecords, v))
}

// TotalRecordsNEQ applies the NEQ predicate on the "total_records" field.
func TotalRecordsNEQ(v int) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNEQ(FieldTotalRecords, v))
}

// TotalRecordsIn applies the In predicate on the "total_records" field.
func TotalRecordsIn(vs ...int) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldIn(FieldTotalRecords, vs...))
}

// TotalRecordsNotIn applies the NotIn predicate on the "total_records" field.
func TotalRecordsNotIn(vs ...int) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNotIn(FieldTotalRecords, vs...))
}

// TotalRecordsGT applies the GT predicate on the "total_records" field.
func TotalRecordsGT(v int) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGT(FieldTotalRecords, v))
}

// TotalRecordsGTE applies the GTE predicate on the "total_records" field.
func TotalRecordsGTE(v int) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGTE(FieldTotalRecords, v))
}

// TotalRecordsLT applies the LT predicate on the "total_records" field.
func TotalRecordsLT(v int) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLT(FieldTotalRecords, v))
}

// TotalRecordsLTE applies the LTE predicate on the "total_records" field.
func TotalRecordsLTE(v int) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLTE(FieldTotalRecords, v))
}

// ProgressCountEQ applies the EQ predicate on the "progress_count" field.
func ProgressCountEQ(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldProgressCount, v))
}

// ProgressCountNEQ applies the NEQ predicate on the "progress_count" field.
func ProgressCountNEQ(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNEQ(FieldProgressCount, v))
}

// ProgressCountIn applies the In predicate on the "progress_count" field.
func ProgressCountIn(vs ...string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldIn(FieldProgressCount, vs...))
}

// ProgressCountNotIn applies the NotIn predicate on the "progress_count" field.
func ProgressCountNotIn(vs ...string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNotIn(FieldProgressCount, vs...))
}

// ProgressCountGT applies the GT predicate on the "progress_count" field.
func ProgressCountGT(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGT(FieldProgressCount, v))
}

// ProgressCountGTE applies the GTE predicate on the "progress_count" field.
func ProgressCountGTE(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGTE(FieldProgressCount, v))
}

// ProgressCountLT applies the LT predicate on the "progress_count" field.
func ProgressCountLT(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLT(FieldProgressCount, v))
}

// ProgressCountLTE applies the LTE predicate on the "progress_count" field.
func ProgressCountLTE(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLTE(FieldProgressCount, v))
}

// ProgressCountContains applies the Contains predicate on the "progress_count" field.
func ProgressCountContains(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldContains(FieldProgressCount, v))
}

// ProgressCountHasPrefix applies the HasPrefix predicate on the "progress_count" field.
func ProgressCountHasPrefix(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldHasPrefix(FieldProgressCount, v))
}

// ProgressCountHasSuffix applies the HasSuffix predicate on the "progress_count" field.
func ProgressCountHasSuffix(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldHasSuffix(FieldProgressCount, v))
}

// ProgressCountEqualFold applies the EqualFold predicate on the "progress_count" field.
func ProgressCountEqualFold(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEqualFold(FieldProgressCount, v))
}

// ProgressCountContainsFold applies the ContainsFold predicate on the "progress_count" field.
func ProgressCountContainsFold(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldContainsFold(FieldProgressCount, v))
}

// ProcessedPagesIsNil applies the IsNil predicate on the "processed_pages" field.
func ProcessedPagesIsNil() predicate.TollCapture {
	return predicate.TollCapture(sql.FieldIsNull(FieldProcessedPages))
}

// ProcessedPagesNotNil applies the NotNil predicate on the "processed_pages" field.
func ProcessedPagesNotNil() predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNotNull(FieldProcessedPages))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.TollCapture {
	return predicate.TollCapture(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TollCapture {
	return predicate.TollCapture(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TollCapture) predicate.TollCapture {
	return predicate.TollCapture(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TollCapture) predicate.TollCapture {
	return predicate.TollCapture(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TollCapture) predicate.TollCapture {
	return predicate.TollCapture(sql.NotPredicates(p))
}
