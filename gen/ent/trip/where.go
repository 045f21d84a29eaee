// Code generated by ent, DO NOT EDIT.

package trip

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldID, id))
}

// DriverID applies equality check predicate on the "driver_id" field. It's identical to DriverIDEQ.
func DriverID(v uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldDriverID, v))
}

// CaptureID applies equality check predicate on the "capture_id" field. It's identical to CaptureIDEQ.
func CaptureID(v uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldCaptureID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldDate, v))
}

// TruckNumber applies equality check predicate on the "truck_number" field. It's identical to TruckNumberEQ.
func TruckNumber(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldTruckNumber, v))
}

// DeliveryNoteNumber applies equality check predicate on the "delivery_note_number" field. It's identical to DeliveryNoteNumberEQ.
func DeliveryNoteNumber(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldDeliveryNoteNumber, v))
}

// OdoStart applies equality check predicate on the "odo_start" field. It's identical to OdoStartEQ.
func OdoStart(v int) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldOdoStart, v))
}

// OdoEnd applies equality check predicate on the "odo_end" field. It's identical to OdoEndEQ.
func OdoEnd(v int) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldOdoEnd, v))
}

// TimeStart applies equality check predicate on the "time_start" field. It's identical to TimeStartEQ.
func TimeStart(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldTimeStart, v))
}

// TimeEnd applies equality check predicate on the "time_end" field. It's identical to TimeEndEQ.
func TimeEnd(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldTimeEnd, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldUpdatedAt, v))
}

// DriverIDEQ applies the EQ predicate on the "driver_id" field.
func DriverIDEQ(v uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldDriverID, v))
}

// DriverIDNEQ applies the NEQ predicate on the "driver_id" field.
func DriverIDNEQ(v uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldDriverID, v))
}

// DriverIDIn applies the In predicate on the "driver_id" field.
func DriverIDIn(vs ...uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldDriverID, vs...))
}

// DriverIDNotIn applies the NotIn predicate on the "driver_id" field.
func DriverIDNotIn(vs ...uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldDriverID, vs...))
}

// DriverIDGT applies the GT predicate on the "driver_id" field.
func DriverIDGT(v uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldDriverID, v))
}

// DriverIDGTE applies the GTE predicate on the "driver_id" field.
func DriverIDGTE(v uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldDriverID, v))
}

// DriverIDLT applies the LT predicate on the "driver_id" field.
func DriverIDLT(v uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldDriverID, v))
}

// DriverIDLTE applies the LTE predicate on the "driver_id" field.
func DriverIDLTE(v uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldDriverID, v))
}

// CaptureIDEQ applies the EQ predicate on the "capture_id" field.
func CaptureIDEQ(v uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldCaptureID, v))
}

// CaptureIDNEQ applies the NEQ predicate on the "capture_id" field.
func CaptureIDNEQ(v uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldCaptureID, v))
}

// CaptureIDIn applies the In predicate on the "capture_id" field.
func CaptureIDIn(vs ...uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldCaptureID, vs...))
}

// CaptureIDNotIn applies the NotIn predicate on the "capture_id" field.
func CaptureIDNotIn(vs ...uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldCaptureID, vs...))
}

// CaptureIDGT applies the GT predicate on the "capture_id" field.
func CaptureIDGT(v uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldCaptureID, v))
}

// CaptureIDGTE applies the GTE predicate on the "capture_id" field.
func CaptureIDGTE(v uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldCaptureID, v))
}

// CaptureIDLT applies the LT predicate on the "capture_id" field.
func CaptureIDLT(v uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldCaptureID, v))
}

// CaptureIDLTE applies the LTE predicate on the "capture_id" field.
func CaptureIDLTE(v uuid.UUID) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldCaptureID, v))
}

// CaptureIDIsNil applies the IsNil predicate on the "capture_id" field.
func CaptureIDIsNil() predicate.Trip {
	return predicate.Trip(sql.FieldIsNull(FieldCaptureID))
}

// CaptureIDNotNil applies the NotNil predicate on the "capture_id" field.
func CaptureIDNotNil() predicate.Trip {
	return predicate.Trip(sql.FieldNotNull(FieldCaptureID))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldDate, v))
}

// DateIsNil applies the IsNil predicate on the "date" field.
func DateIsNil() predicate.Trip {
	return predicate.Trip(sql.FieldIsNull(FieldDate))
}

// DateNotNil applies the NotNil predicate on the "date" field.
func DateNotNil() predicate.Trip {
	return predicate.Trip(sql.FieldNotNull(FieldDate))
}

// TruckNumberEQ applies the EQ predicate on the "truck_number" field.
func TruckNumberEQ(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldTruckNumber, v))
}

// TruckNumberNEQ applies the NEQ predicate on the "truck_number" field.
func TruckNumberNEQ(v string) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldTruckNumber, v))
}

// TruckNumberIn applies the In predicate on the "truck_number" field.
func TruckNumberIn(vs ...string) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldTruckNumber, vs...))
}

// TruckNumberNotIn applies the NotIn predicate on the "truck_number" field.
func TruckNumberNotIn(vs ...string) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldTruckNumber, vs...))
}

// TruckNumberGT applies the GT predicate on the "truck_number" field.
func TruckNumberGT(v string) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldTruckNumber, v))
}

// TruckNumberGTE applies the GTE predicate on the "truck_number" field.
func TruckNumberGTE(v string) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldTruckNumber, v))
}

// TruckNumberLT applies the LT predicate on the "truck_number" field.
func TruckNumberLT(v string) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldTruckNumber, v))
}

// TruckNumberLTE applies the LTE predicate on the "truck_number" field.
func TruckNumberLTE(v string) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldTruckNumber, v))
}

// TruckNumberContains applies the Contains predicate on the "truck_number" field.
func TruckNumberContains(v string) predicate.Trip {
	return predicate.Trip(sql.FieldContains(FieldTruckNumber, v))
}

// TruckNumberHasPrefix applies the HasPrefix predicate on the "truck_number" field.
func TruckNumberHasPrefix(v string) predicate.Trip {
	return predicate.Trip(sql.FieldHasPrefix(FieldTruckNumber, v))
}

// TruckNumberHasSuffix applies the HasSuffix predicate on the "truck_number" field.
func TruckNumberHasSuffix(v string) predicate.Trip {
	return predicate.Trip(sql.FieldHasSuffix(FieldTruckNumber, v))
}

// TruckNumberIsNil applies the IsNil predicate on the "truck_number" field.
func TruckNumberIsNil() predicate.Trip {
	return predicate.Trip(sql.FieldIsNull(FieldTruckNumber))
}

// TruckNumberNotNil applies the NotNil predicate on the "truck_number" field.
func TruckNumberNotNil() predicate.Trip {
	return predicate.Trip(sql.FieldNotNull(FieldTruckNumber))
}

// TruckNumberEqualFold applies the EqualFold predicate on the "truck_number" field.
func TruckNumberEqualFold(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEqualFold(FieldTruckNumber, v))
}

// TruckNumberContainsFold applies the ContainsFold predicate on the "truck_number" field.
func TruckNumberContainsFold(v string) predicate.Trip {
	return predicate.Trip(sql.FieldContainsFold(FieldTruckNumber, v))
}

// DeliveryNoteNumberEQ applies the EQ predicate on the "delivery_note_number" field.
func DeliveryNoteNumberEQ(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberNEQ applies the NEQ predicate on the "delivery_note_number" field.
func DeliveryNoteNumberNEQ(v string) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberIn applies the In predicate on the "delivery_note_number" field.
func DeliveryNoteNumberIn(vs ...string) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldDeliveryNoteNumber, vs...))
}

// DeliveryNoteNumberNotIn applies the NotIn predicate on the "delivery_note_number" field.
func DeliveryNoteNumberNotIn(vs ...string) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldDeliveryNoteNumber, vs...))
}

// DeliveryNoteNumberGT applies the GT predicate on the "delivery_note_number" field.
func DeliveryNoteNumberGT(v string) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberGTE applies the GTE predicate on the "delivery_note_number" field.
func DeliveryNoteNumberGTE(v string) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberLT applies the LT predicate on the "delivery_note_number" field.
func DeliveryNoteNumberLT(v string) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberLTE applies the LTE predicate on the "delivery_note_number" field.
func DeliveryNoteNumberLTE(v string) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberContains applies the Contains predicate on the "delivery_note_number" field.
func DeliveryNoteNumberContains(v string) predicate.Trip {
	return predicate.Trip(sql.FieldContains(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberHasPrefix applies the HasPrefix predicate on the "delivery_note_number" field.
func DeliveryNoteNumberHasPrefix(v string) predicate.Trip {
	return predicate.Trip(sql.FieldHasPrefix(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberHasSuffix applies the HasSuffix predicate on the "delivery_note_number" field.
func DeliveryNoteNumberHasSuffix(v string) predicate.Trip {
	return predicate.Trip(sql.FieldHasSuffix(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberIsNil applies the IsNil predicate on the "delivery_note_number" field.
func DeliveryNoteNumberIsNil() predicate.Trip {
	return predicate.Trip(sql.FieldIsNull(FieldDeliveryNoteNumber))
}

// DeliveryNoteNumberNotNil applies the NotNil predicate on the "delivery_note_number" field.
func DeliveryNoteNumberNotNil() predicate.Trip {
	return predicate.Trip(sql.FieldNotNull(FieldDeliveryNoteNumber))
}

// DeliveryNoteNumberEqualFold applies the EqualFold predicate on the "delivery_note_number" field.
func DeliveryNoteNumberEqualFold(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEqualFold(FieldDeliveryNoteNumber, v))
}

// DeliveryNoteNumberContainsFold applies the ContainsFold predicate on the "delivery_note_number" field.
func DeliveryNoteNumberContainsFold(v string) predicate.Trip {
	return predicate.Trip(sql.FieldContainsFold(FieldDeliveryNoteNumber, v))
}

// OdoStartEQ applies the EQ predicate on the "odo_start" field.
func OdoStartEQ(v int) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldOdoStart, v))
}

// OdoStartNEQ applies the NEQ predicate on the "odo_start" field.
func OdoStartNEQ(v int) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldOdoStart, v))
}

// OdoStartIn applies the In predicate on the "odo_start" field.
func OdoStartIn(vs ...int) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldOdoStart, vs...))
}

// OdoStartNotIn applies the NotIn predicate on the "odo_start" field.
func OdoStartNotIn(vs ...int) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldOdoStart, vs...))
}

// OdoStartGT applies the GT predicate on the "odo_start" field.
func OdoStartGT(v int) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldOdoStart, v))
}

// OdoStartGTE applies the GTE predicate on the "odo_start" field.
func OdoStartGTE(v int) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldOdoStart, v))
}

// OdoStartLT applies the LT predicate on the "odo_start" field.
func OdoStartLT(v int) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldOdoStart, v))
}

// OdoStartLTE applies the LTE predicate on the "odo_start" field.
func OdoStartLTE(v int) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldOdoStart, v))
}

// OdoStartIsNil applies the IsNil predicate on the "odo_start" field.
func OdoStartIsNil() predicate.Trip {
	return predicate.Trip(sql.FieldIsNull(FieldOdoStart))
}

// OdoStartNotNil applies the NotNil predicate on the "odo_start" field.
func OdoStartNotNil() predicate.Trip {
	return predicate.Trip(sql.FieldNotNull(FieldOdoStart))
}

// OdoEndEQ applies the EQ predicate on the "odo_end" field.
func OdoEndEQ(v int) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldOdoEnd, v))
}

// OdoEndNEQ applies the NEQ predicate on the "odo_end" field.
func OdoEndNEQ(v int) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldOdoEnd, v))
}

// OdoEndIn applies the In predicate on the "odo_end" field.
func OdoEndIn(vs ...int) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldOdoEnd, vs...))
}

// OdoEndNotIn applies the NotIn predicate on the "odo_end" field.
func OdoEndNotIn(vs ...int) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldOdoEnd, vs...))
}

// OdoEndGT applies the GT predicate on the "odo_end" field.
func OdoEndGT(v int) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldOdoEnd, v))
}

// OdoEndGTE applies the GTE predicate on the "odo_end" field.
func OdoEndGTE(v int) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldOdoEnd, v))
}

// OdoEndLT applies the LT predicate on the "odo_end" field.
func OdoEndLT(v int) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldOdoEnd, v))
}

// OdoEndLTE applies the LTE predicate on the "odo_end" field.
func OdoEndLTE(v int) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldOdoEnd, v))
}

// OdoEndIsNil applies the IsNil predicate on the "odo_end" field.
func OdoEndIsNil() predicate.Trip {
	return predicate.Trip(sql.FieldIsNull(FieldOdoEnd))
}

// OdoEndNotNil applies the NotNil predicate on the "odo_end" field.
func OdoEndNotNil() predicate.Trip {
	return predicate.Trip(sql.FieldNotNull(FieldOdoEnd))
}

// TimeStartEQ applies the EQ predicate on the "time_start" field.
func TimeStartEQ(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldTimeStart, v))
}

// TimeStartNEQ applies the NEQ predicate on the "time_start" field.
func TimeStartNEQ(v string) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldTimeStart, v))
}

// TimeStartIn applies the In predicate on the "time_start" field.
func TimeStartIn(vs ...string) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldTimeStart, vs...))
}

// TimeStartNotIn applies the NotIn predicate on the "time_start" field.
func TimeStartNotIn(vs ...string) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldTimeStart, vs...))
}

// TimeStartGT applies the GT predicate on the "time_start" field.
func TimeStartGT(v string) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldTimeStart, v))
}

// TimeStartGTE applies the GTE predicate on the "time_start" field.
func TimeStartGTE(v string) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldTimeStart, v))
}

// TimeStartLT applies the LT predicate on the "time_start" field.
func TimeStartLT(v string) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldTimeStart, v))
}

// TimeStartLTE applies the LTE predicate on the "time_start" field.
func TimeStartLTE(v string) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldTimeStart, v))
}

// TimeStartContains applies the Contains predicate on the "time_start" field.
func TimeStartContains(v string) predicate.Trip {
	return predicate.Trip(sql.FieldContains(FieldTimeStart, v))
}

// TimeStartHasPrefix applies the HasPrefix predicate on the "time_start" field.
func TimeStartHasPrefix(v string) predicate.Trip {
	return predicate.Trip(sql.FieldHasPrefix(FieldTimeStart, v))
}

// TimeStartHasSuffix applies the HasSuffix predicate on the "time_start" field.
func TimeStartHasSuffix(v string) predicate.Trip {
	return predicate.Trip(sql.FieldHasSuffix(FieldTimeStart, v))
}

// TimeStartIsNil applies the IsNil predicate on the "time_start" field.
func TimeStartIsNil() predicate.Trip {
	return predicate.Trip(sql.FieldIsNull(FieldTimeStart))
}

// TimeStartNotNil applies the NotNil predicate on the "time_start" field.
func TimeStartNotNil() predicate.Trip {
	return predicate.Trip(sql.FieldNotNull(FieldTimeStart))
}

// TimeStartEqualFold applies the EqualFold predicate on the "time_start" field.
func TimeStartEqualFold(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEqualFold(FieldTimeStart, v))
}

// TimeStartContainsFold applies the ContainsFold predicate on the "time_start" field.
func TimeStartContainsFold(v string) predicate.Trip {
	return predicate.Trip(sql.FieldContainsFold(FieldTimeStart, v))
}

// TimeEndEQ applies the EQ predicate on the "time_end" field.
func TimeEndEQ(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldTimeEnd, v))
}

// TimeEndNEQ applies the NEQ predicate on the "time_end" field.
func TimeEndNEQ(v string) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldTimeEnd, v))
}

// TimeEndIn applies the In predicate on the "time_end" field.
func TimeEndIn(vs ...string) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldTimeEnd, vs...))
}

// TimeEndNotIn applies the NotIn predicate on the "time_end" field.
func TimeEndNotIn(vs ...string) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldTimeEnd, vs...))
}

// TimeEndGT applies the GT predicate on the "time_end" field.
func TimeEndGT(v string) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldTimeEnd, v))
}

// TimeEndGTE applies the GTE predicate on the "time_end" field.
func TimeEndGTE(v string) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldTimeEnd, v))
}

// TimeEndLT applies the LT predicate on the "time_end" field.
func TimeEndLT(v string) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldTimeEnd, v))
}

// TimeEndLTE applies the LTE predicate on the "time_end" field.
func TimeEndLTE(v string) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldTimeEnd, v))
}

// TimeEndContains applies the Contains predicate on the "time_end" field.
func TimeEndContains(v string) predicate.Trip {
	return predicate.Trip(sql.FieldContains(FieldTimeEnd, v))
}

// TimeEndHasPrefix applies the HasPrefix predicate on the "time_end" field.
func TimeEndHasPrefix(v string) predicate.Trip {
	return predicate.Trip(sql.FieldHasPrefix(FieldTimeEnd, v))
}

// TimeEndHasSuffix applies the HasSuffix predicate on the "time_end" field.
func TimeEndHasSuffix(v string) predicate.Trip {
	return predicate.Trip(sql.FieldHasSuffix(FieldTimeEnd, v))
}

// TimeEndIsNil applies the IsNil predicate on the "time_end" field.
func TimeEndIsNil() predicate.Trip {
	return predicate.Trip(sql.FieldIsNull(FieldTimeEnd))
}

// TimeEndNotNil applies the NotNil predicate on the "time_end" field.
func TimeEndNotNil() predicate.Trip {
	return predicate.Trip(sql.FieldNotNull(FieldTimeEnd))
}

// TimeEndEqualFold applies the EqualFold predicate on the "time_end" field.
func TimeEndEqualFold(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEqualFold(FieldTimeEnd, v))
}

// TimeEndContainsFold applies the ContainsFold predicate on the "time_end" field.
func TimeEndContainsFold(v string) predicate.Trip {
	return predicate.Trip(sql.FieldContainsFold(FieldTimeEnd, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Trip {
	return predicate.Trip(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Trip {
	return predicate.Trip(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Trip {
	return predicate.Trip(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Trip {
	return predicate.Trip(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Trip {
	return predicate.Trip(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Trip {
	return predicate.Trip(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Trip) predicate.Trip {
	return predicate.Trip(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Trip) predicate.Trip {
	return predicate.Trip(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Trip) predicate.Trip {
	return predicate.Trip(sql.NotPredicates(p))
}
