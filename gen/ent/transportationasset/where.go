// Code generated by ent, DO NOT EDIT.

package transportationasset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldLTE(FieldID, id))
}

// TruckNumber applies equality check predicate on the "truck_number" field. It's identical to TruckNumberEQ.
func TruckNumber(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldEQ(FieldTruckNumber, v))
}

// EtagID applies equality check predicate on the "etag_id" field. It's identical to EtagIDEQ.
func EtagID(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldEQ(FieldEtagID, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldEQ(FieldCreatedAt, v))
}

// TruckNumberEQ applies the EQ predicate on the "truck_number" field.
func TruckNumberEQ(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldEQ(FieldTruckNumber, v))
}

// TruckNumberNEQ applies the NEQ predicate on the "truck_number" field.
func TruckNumberNEQ(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldNEQ(FieldTruckNumber, v))
}

// TruckNumberIn applies the In predicate on the "truck_number" field.
func TruckNumberIn(vs ...string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldIn(FieldTruckNumber, vs...))
}

// TruckNumberNotIn applies the NotIn predicate on the "truck_number" field.
func TruckNumberNotIn(vs ...string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldNotIn(FieldTruckNumber, vs...))
}

// TruckNumberGT applies the GT predicate on the "truck_number" field.
func TruckNumberGT(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldGT(FieldTruckNumber, v))
}

// TruckNumberGTE applies the GTE predicate on the "truck_number" field.
func TruckNumberGTE(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldGTE(FieldTruckNumber, v))
}

// TruckNumberLT applies the LT predicate on the "truck_number" field.
func TruckNumberLT(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldLT(FieldTruckNumber, v))
}

// TruckNumberLTE applies the LTE predicate on the "truck_number" field.
func TruckNumberLTE(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldLTE(FieldTruckNumber, v))
}

// TruckNumberContains applies the Contains predicate on the "truck_number" field.
func TruckNumberContains(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldContains(FieldTruckNumber, v))
}

// TruckNumberHasPrefix applies the HasPrefix predicate on the "truck_number" field.
func TruckNumberHasPrefix(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldHasPrefix(FieldTruckNumber, v))
}

// TruckNumberHasSuffix applies the HasSuffix predicate on the "truck_number" field.
func TruckNumberHasSuffix(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldHasSuffix(FieldTruckNumber, v))
}

// TruckNumberEqualFold applies the EqualFold predicate on the "truck_number" field.
func TruckNumberEqualFold(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldEqualFold(FieldTruckNumber, v))
}

// TruckNumberContainsFold applies the ContainsFold predicate on the "truck_number" field.
func TruckNumberContainsFold(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldContainsFold(FieldTruckNumber, v))
}

// EtagIDEQ applies the EQ predicate on the "etag_id" field.
func EtagIDEQ(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldEQ(FieldEtagID, v))
}

// EtagIDNEQ applies the NEQ predicate on the "etag_id" field.
func EtagIDNEQ(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldNEQ(FieldEtagID, v))
}

// EtagIDIn applies the In predicate on the "etag_id" field.
func EtagIDIn(vs ...string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldIn(FieldEtagID, vs...))
}

// EtagIDNotIn applies the NotIn predicate on the "etag_id" field.
func EtagIDNotIn(vs ...string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldNotIn(FieldEtagID, vs...))
}

// EtagIDGT applies the GT predicate on the "etag_id" field.
func EtagIDGT(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldGT(FieldEtagID, v))
}

// EtagIDGTE applies the GTE predicate on the "etag_id" field.
func EtagIDGTE(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldGTE(FieldEtagID, v))
}

// EtagIDLT applies the LT predicate on the "etag_id" field.
func EtagIDLT(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldLT(FieldEtagID, v))
}

// EtagIDLTE applies the LTE predicate on the "etag_id" field.
func EtagIDLTE(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldLTE(FieldEtagID, v))
}

// EtagIDContains applies the Contains predicate on the "etag_id" field.
func EtagIDContains(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldContains(FieldEtagID, v))
}

// EtagIDHasPrefix applies the HasPrefix predicate on the "etag_id" field.
func EtagIDHasPrefix(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldHasPrefix(FieldEtagID, v))
}

// EtagIDHasSuffix applies the HasSuffix predicate on the "etag_id" field.
func EtagIDHasSuffix(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldHasSuffix(FieldEtagID, v))
}

// EtagIDIsNil applies the IsNil predicate on the "etag_id" field.
func EtagIDIsNil() predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldIsNull(FieldEtagID))
}

// EtagIDNotNil applies the NotNil predicate on the "etag_id" field.
func EtagIDNotNil() predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldNotNull(FieldEtagID))
}

// EtagIDEqualFold applies the EqualFold predicate on the "etag_id" field.
func EtagIDEqualFold(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldEqualFold(FieldEtagID, v))
}

// EtagIDContainsFold applies the ContainsFold predicate on the "etag_id" field.
func EtagIDContainsFold(v string) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldContainsFold(FieldEtagID, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TransportationAsset) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TransportationAsset) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TransportationAsset) predicate.TransportationAsset {
	return predicate.TransportationAsset(sql.NotPredicates(p))
}
