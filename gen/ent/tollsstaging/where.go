// Code generated by ent, DO NOT EDIT.

package tollsstaging

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldLTE(FieldID, id))
}

// CaptureID applies equality check predicate on the "capture_id" field. It's identical to CaptureIDEQ.
func CaptureID(v uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEQ(FieldCaptureID, v))
}

// PageResultID applies equality check predicate on the "page_result_id" field. It's identical to PageResultIDEQ.
func PageResultID(v uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEQ(FieldPageResultID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEQ(FieldUpdatedAt, v))
}

// CaptureIDEQ applies the EQ predicate on the "capture_id" field.
func CaptureIDEQ(v uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEQ(FieldCaptureID, v))
}

// CaptureIDNEQ applies the NEQ predicate on the "capture_id" field.
func CaptureIDNEQ(v uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNEQ(FieldCaptureID, v))
}

// CaptureIDIn applies the In predicate on the "capture_id" field.
func CaptureIDIn(vs ...uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldIn(FieldCaptureID, vs...))
}

// CaptureIDNotIn applies the NotIn predicate on the "capture_id" field.
func CaptureIDNotIn(vs ...uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNotIn(FieldCaptureID, vs...))
}

// CaptureIDGT applies the GT predicate on the "capture_id" field.
func CaptureIDGT(v uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldGT(FieldCaptureID, v))
}

// CaptureIDGTE applies the GTE predicate on the "capture_id" field.
func CaptureIDGTE(v uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldGTE(FieldCaptureID, v))
}

// CaptureIDLT applies the LT predicate on the "capture_id" field.
func CaptureIDLT(v uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldLT(FieldCaptureID, v))
}

// CaptureIDLTE applies the LTE predicate on the "capture_id" field.
func CaptureIDLTE(v uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldLTE(FieldCaptureID, v))
}

// PageResultIDEQ applies the EQ predicate on the "page_result_id" field.
func PageResultIDEQ(v uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEQ(FieldPageResultID, v))
}

// PageResultIDNEQ applies the NEQ predicate on the "page_result_id" field.
func PageResultIDNEQ(v uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNEQ(FieldPageResultID, v))
}

// PageResultIDIn applies the In predicate on the "page_result_id" field.
func PageResultIDIn(vs ...uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldIn(FieldPageResultID, vs...))
}

// PageResultIDNotIn applies the NotIn predicate on the "page_result_id" field.
func PageResultIDNotIn(vs ...uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNotIn(FieldPageResultID, vs...))
}

// PageResultIDGT applies the GT predicate on the "page_result_id" field.
func PageResultIDGT(v uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldGT(FieldPageResultID, v))
}

// PageResultIDGTE applies the GTE predicate on the "page_result_id" field.
func PageResultIDGTE(v uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldGTE(FieldPageResultID, v))
}

// PageResultIDLT applies the LT predicate on the "page_result_id" field.
func PageResultIDLT(v uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldLT(FieldPageResultID, v))
}

// PageResultIDLTE applies the LTE predicate on the "page_result_id" field.
func PageResultIDLTE(v uuid.UUID) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldLTE(FieldPageResultID, v))
}

// AiResponseIsNil applies the IsNil predicate on the "ai_response" field.
func AiResponseIsNil() predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldIsNull(FieldAiResponse))
}

// AiResponseNotNil applies the NotNil predicate on the "ai_response" field.
func AiResponseNotNil() predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNotNull(FieldAiResponse))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TollsStaging {
	return predicate.TollsStaging(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TollsStaging) predicate.TollsStaging {
	return predicate.TollsStaging(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TollsStaging) predicate.TollsStaging {
	return predicate.TollsStaging(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TollsStaging) predicate.TollsStaging {
	return predicate.TollsStaging(sql.NotPredicates(p))
}
