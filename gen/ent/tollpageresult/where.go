// Code generated by ent, DO NOT EDIT.

package tollpageresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldLTE(FieldID, id))
}

// CaptureID applies equality check predicate on the "capture_id" field. It's identical to CaptureIDEQ.
func CaptureID(v uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEQ(FieldCaptureID, v))
}

// PageNumber applies equality check predicate on the "page_number" field. It's identical to PageNumberEQ.
func PageNumber(v int) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEQ(FieldPageNumber, v))
}

// Base64Image applies equality check predicate on the "base64_image" field. It's identical to Base64ImageEQ.
func Base64Image(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEQ(FieldBase64Image, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CaptureIDEQ applies the EQ predicate on the "capture_id" field.
func CaptureIDEQ(v uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEQ(FieldCaptureID, v))
}

// CaptureIDNEQ applies the NEQ predicate on the "capture_id" field.
func CaptureIDNEQ(v uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNEQ(FieldCaptureID, v))
}

// CaptureIDIn applies the In predicate on the "capture_id" field.
func CaptureIDIn(vs ...uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldIn(FieldCaptureID, vs...))
}

// CaptureIDNotIn applies the NotIn predicate on the "capture_id" field.
func CaptureIDNotIn(vs ...uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNotIn(FieldCaptureID, vs...))
}

// CaptureIDGT applies the GT predicate on the "capture_id" field.
func CaptureIDGT(v uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldGT(FieldCaptureID, v))
}

// CaptureIDGTE applies the GTE predicate on the "capture_id" field.
func CaptureIDGTE(v uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldGTE(FieldCaptureID, v))
}

// CaptureIDLT applies the LT predicate on the "capture_id" field.
func CaptureIDLT(v uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldLT(FieldCaptureID, v))
}

// CaptureIDLTE applies the LTE predicate on the "capture_id" field.
func CaptureIDLTE(v uuid.UUID) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldLTE(FieldCaptureID, v))
}

// PageNumberEQ applies the EQ predicate on the "page_number" field.
func PageNumberEQ(v int) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEQ(FieldPageNumber, v))
}

// PageNumberNEQ applies the NEQ predicate on the "page_number" field.
func PageNumberNEQ(v int) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNEQ(FieldPageNumber, v))
}

// PageNumberIn applies the In predicate on the "page_number" field.
func PageNumberIn(vs ...int) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldIn(FieldPageNumber, vs...))
}

// PageNumberNotIn applies the NotIn predicate on the "page_number" field.
func PageNumberNotIn(vs ...int) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNotIn(FieldPageNumber, vs...))
}

// PageNumberGT applies the GT predicate on the "page_number" field.
func PageNumberGT(v int) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldGT(FieldPageNumber, v))
}

// PageNumberGTE applies the GTE predicate on the "page_number" field.
func PageNumberGTE(v int) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldGTE(FieldPageNumber, v))
}

// PageNumberLT applies the LT predicate on the "page_number" field.
func PageNumberLT(v int) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldLT(FieldPageNumber, v))
}

// PageNumberLTE applies the LTE predicate on the "page_number" field.
func PageNumberLTE(v int) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldLTE(FieldPageNumber, v))
}

// Base64ImageEQ applies the EQ predicate on the "base64_image" field.
func Base64ImageEQ(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEQ(FieldBase64Image, v))
}

// Base64ImageNEQ applies the NEQ predicate on the "base64_image" field.
func Base64ImageNEQ(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNEQ(FieldBase64Image, v))
}

// Base64ImageIn applies the In predicate on the "base64_image" field.
func Base64ImageIn(vs ...string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldIn(FieldBase64Image, vs...))
}

// Base64ImageNotIn applies the NotIn predicate on the "base64_image" field.
func Base64ImageNotIn(vs ...string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNotIn(FieldBase64Image, vs...))
}

// Base64ImageGT applies the GT predicate on the "base64_image" field.
func Base64ImageGT(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldGT(FieldBase64Image, v))
}

// Base64ImageGTE applies the GTE predicate on the "base64_image" field.
func Base64ImageGTE(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldGTE(FieldBase64Image, v))
}

// Base64ImageLT applies the LT predicate on the "base64_image" field.
func Base64ImageLT(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldLT(FieldBase64Image, v))
}

// Base64ImageLTE applies the LTE predicate on the "base64_image" field.
func Base64ImageLTE(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldLTE(FieldBase64Image, v))
}

// Base64ImageContains applies the Contains predicate on the "base64_image" field.
func Base64ImageContains(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldContains(FieldBase64Image, v))
}

// Base64ImageHasPrefix applies the HasPrefix predicate on the "base64_image" field.
func Base64ImageHasPrefix(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldHasPrefix(FieldBase64Image, v))
}

// Base64ImageHasSuffix applies the HasSuffix predicate on the "base64_image" field.
func Base64ImageHasSuffix(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldHasSuffix(FieldBase64Image, v))
}

// Base64ImageIsNil applies the IsNil predicate on the "base64_image" field.
func Base64ImageIsNil() predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldIsNull(FieldBase64Image))
}

// Base64ImageNotNil applies the NotNil predicate on the "base64_image" field.
func Base64ImageNotNil() predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNotNull(FieldBase64Image))
}

// Base64ImageEqualFold applies the EqualFold predicate on the "base64_image" field.
func Base64ImageEqualFold(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEqualFold(FieldBase64Image, v))
}

// Base64ImageContainsFold applies the ContainsFold predicate on the "base64_image" field.
func Base64ImageContainsFold(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldContainsFold(FieldBase64Image, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TollPageResult {
	return predicate.TollPageResult(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TollPageResult) predicate.TollPageResult {
	return predicate.TollPageResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TollPageResult) predicate.TollPageResult {
	return predicate.TollPageResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TollPageResult) predicate.TollPageResult {
	return predicate.TollPageResult(sql.NotPredicates(p))
}
