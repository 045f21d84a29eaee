// Code generated by ent, DO NOT EDIT.

package deliverynotecapture

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLTE(FieldID, id))
}

// DriverID applies equality check predicate on the "driver_id" field. It's identical to DriverIDEQ.
func DriverID(v uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldDriverID, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldFilePath, v))
}

// OptimizedPath applies equality check predicate on the "optimized_path" field. It's identical to OptimizedPathEQ.
func OptimizedPath(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldOptimizedPath, v))
}

// DeliveryNoteNumber applies equality check predicate on the "delivery_note_number" field. It's identical to DeliveryNoteNumberEQ.
func DeliveryNoteNumber(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldDeliveryNoteNumber, v))
}

// TripID applies equality check predicate on the "trip_id" field. It's identical to TripIDEQ.
func TripID(v uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldTripID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldUpdatedAt, v))
}

// DriverIDEQ applies the EQ predicate on the "driver_id" field.
func DriverIDEQ(v uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldDriverID, v))
}

// DriverIDNEQ applies the NEQ predicate on the "driver_id" field.
func DriverIDNEQ(v uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNEQ(FieldDriverID, v))
}

// DriverIDIn applies the In predicate on the "driver_id" field.
func DriverIDIn(vs ...uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldIn(FieldDriverID, vs...))
}

// DriverIDNotIn applies the NotIn predicate on the "driver_id" field.
func DriverIDNotIn(vs ...uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNotIn(FieldDriverID, vs...))
}

// DriverIDGT applies the GT predicate on the "driver_id" field.
func DriverIDGT(v uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGT(FieldDriverID, v))
}

// DriverIDGTE applies the GTE predicate on the "driver_id" field.
func DriverIDGTE(v uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGTE(FieldDriverID, v))
}

// DriverIDLT applies the LT predicate on the "driver_id" field.
func DriverIDLT(v uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLT(FieldDriverID, v))
}

// DriverIDLTE applies the LTE predicate on the "driver_id" field.
func DriverIDLTE(v uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLTE(FieldDriverID, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldContainsFold(FieldFilePath, v))
}

// OptimizedPathEQ applies the EQ predicate on the "optimized_path" field.
func OptimizedPathEQ(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldOptimizedPath, v))
}

// OptimizedPathNEQ applies the NEQ predicate on the "optimized_path" field.
func OptimizedPathNEQ(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNEQ(FieldOptimizedPath, v))
}

// OptimizedPathIn applies the In predicate on the "optimized_path" field.
func OptimizedPathIn(vs ...string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldIn(FieldOptimizedPath, vs...))
}

// OptimizedPathNotIn applies the NotIn predicate on the "optimized_path" field.
func OptimizedPathNotIn(vs ...string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNotIn(FieldOptimizedPath, vs...))
}

// OptimizedPathGT applies the GT predicate on the "optimized_path" field.
func OptimizedPathGT(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGT(FieldOptimizedPath, v))
}

// OptimizedPathGTE applies the GTE predicate on the "optimized_path" field.
func OptimizedPathGTE(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGTE(FieldOptimizedPath, v))
}

// OptimizedPathLT applies the LT predicate on the "optimized_path" field.
func OptimizedPathLT(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLT(FieldOptimizedPath, v))
}

// OptimizedPathLTE applies the LTE predicate on the "optimized_path" field.
func OptimizedPathLTE(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLTE(FieldOptimizedPath, v))
}

// OptimizedPathContains applies the Contains predicate on the "optimized_path" field.
func OptimizedPathContains(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldContains(FieldOptimizedPath, v))
}

// OptimizedPathHasPrefix applies the HasPrefix predicate on the "optimized_path" field.
func OptimizedPathHasPrefix(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldHasPrefix(FieldOptimizedPath, v))
}

// OptimizedPathHasSuffix applies the HasSuffix predicate on the "optimized_path" field.
func OptimizedPathHasSuffix(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldHasSuffix(FieldOptimizedPath, v))
}

// OptimizedPathIsNil applies the IsNil predicate on the "optimized_path" field.
func OptimizedPathIsNil() predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldIsNull(FieldOptimizedPath))
}

// OptimizedPathNotNil applies the NotNil predicate on the "optimized_path" field.
func OptimizedPathNotNil() predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNotNull(FieldOptimizedPath))
}

// OptimizedPathEqualFold applies the EqualFold predicate on the "optimized_path" field.
func OptimizedPathEqualFold(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEqualFold(FieldOptimizedPath, v))
}

// OptimizedPathContainsFold applies the ContainsFold predicate on the "optimized_path" field.
func OptimizedPathContainsFold(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldContainsFold(FieldOptimizedPath, v))
}

// DeliveryNoteNumberEQ applies the EQ predicate on the "delivery_note_number" field.
func DeliveryNoteNumberEQ(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberNEQ applies the NEQ predicate on the "delivery_note_number" field.
func DeliveryNoteNumberNEQ(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNEQ(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberIn applies the In predicate on the "delivery_note_number" field.
func DeliveryNoteNumberIn(vs ...string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldIn(FieldDeliveryNoteNumber, vs...))
}

// DeliveryNoteNumberNotIn applies the NotIn predicate on the "delivery_note_number" field.
func DeliveryNoteNumberNotIn(vs ...string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNotIn(FieldDeliveryNoteNumber, vs...))
}

// DeliveryNoteNumberGT applies the GT predicate on the "delivery_note_number" field.
func DeliveryNoteNumberGT(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGT(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberGTE applies the GTE predicate on the "delivery_note_number" field.
func DeliveryNoteNumberGTE(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGTE(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberLT applies the LT predicate on the "delivery_note_number" field.
func DeliveryNoteNumberLT(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLT(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberLTE applies the LTE predicate on the "delivery_note_number" field.
func DeliveryNoteNumberLTE(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLTE(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberContains applies the Contains predicate on the "delivery_note_number" field.
func DeliveryNoteNumberContains(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldContains(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberHasPrefix applies the HasPrefix predicate on the "delivery_note_number" field.
func DeliveryNoteNumberHasPrefix(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldHasPrefix(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberHasSuffix applies the HasSuffix predicate on the "delivery_note_number" field.
func DeliveryNoteNumberHasSuffix(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldHasSuffix(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberIsNil applies the IsNil predicate on the "delivery_note_number" field.
func DeliveryNoteNumberIsNil() predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldIsNull(FieldDeliveryNoteNumber))
}

// DeliveryNoteNumberNotNil applies the NotNil predicate on the "delivery_note_number" field.
func DeliveryNoteNumberNotNil() predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNotNull(FieldDeliveryNoteNumber))
}

// DeliveryNoteNumberEqualFold applies the EqualFold predicate on the "delivery_note_number" field.
func DeliveryNoteNumberEqualFold(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEqualFold(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberContainsFold applies the ContainsFold predicate on the "delivery_note_number" field.
func DeliveryNoteNumberContainsFold(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldContainsFold(FieldDeliveryNoteNumber, v))
}

// TripIDEQ applies the EQ predicate on the "trip_id" field.
func TripIDEQ(v uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldTripID, v))
}

// TripIDNEQ applies the NEQ predicate on the "trip_id" field.
func TripIDNEQ(v uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNEQ(FieldTripID, v))
}

// TripIDIn applies the In predicate on the "trip_id" field.
func TripIDIn(vs ...uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldIn(FieldTripID, vs...))
}

// TripIDNotIn applies the NotIn predicate on the "trip_id" field.
func TripIDNotIn(vs ...uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNotIn(FieldTripID, vs...))
}

// TripIDGT applies the GT predicate on the "trip_id" field.
func TripIDGT(v uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGT(FieldTripID, v))
}

// TripIDGTE applies the GTE predicate on the "trip_id" field.
func TripIDGTE(v uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGTE(FieldTripID, v))
}

// TripIDLT applies the LT predicate on the "trip_id" field.
func TripIDLT(v uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLT(FieldTripID, v))
}

// TripIDLTE applies the LTE predicate on the "trip_id" field.
func TripIDLTE(v uuid.UUID) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLTE(FieldTripID, v))
}

// TripIDIsNil applies the IsNil predicate on the "trip_id" field.
func TripIDIsNil() predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldIsNull(FieldTripID))
}

// TripIDNotNil applies the NotNil predicate on the "trip_id" field.
func TripIDNotNil() predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNotNull(FieldTripID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeliveryNoteCapture) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeliveryNoteCapture) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeliveryNoteCapture) predicate.DeliveryNoteCapture {
	return predicate.DeliveryNoteCapture(sql.NotPredicates(p))
}
