// Code generated by ent, DO NOT EDIT.

package tripdrop

import (
	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldLTE(FieldID, id))
}

// TripID applies equality check predicate on the "trip_id" field. It's identical to TripIDEQ.
func TripID(v uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldEQ(FieldTripID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldEQ(FieldSeq, v))
}

// OdoReading applies equality check predicate on the "odo_reading" field. It's identical to OdoReadingEQ.
func OdoReading(v int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldEQ(FieldOdoReading, v))
}

// TripIDEQ applies the EQ predicate on the "trip_id" field.
func TripIDEQ(v uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldEQ(FieldTripID, v))
}

// TripIDNEQ applies the NEQ predicate on the "trip_id" field.
func TripIDNEQ(v uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldNEQ(FieldTripID, v))
}

// TripIDIn applies the In predicate on the "trip_id" field.
func TripIDIn(vs ...uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldIn(FieldTripID, vs...))
}

// TripIDNotIn applies the NotIn predicate on the "trip_id" field.
func TripIDNotIn(vs ...uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldNotIn(FieldTripID, vs...))
}

// TripIDGT applies the GT predicate on the "trip_id" field.
func TripIDGT(v uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldGT(FieldTripID, v))
}

// TripIDGTE applies the GTE predicate on the "trip_id" field.
func TripIDGTE(v uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldGTE(FieldTripID, v))
}

// TripIDLT applies the LT predicate on the "trip_id" field.
func TripIDLT(v uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldLT(FieldTripID, v))
}

// TripIDLTE applies the LTE predicate on the "trip_id" field.
func TripIDLTE(v uuid.UUID) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldLTE(FieldTripID, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldLTE(FieldSeq, v))
}

// OdoReadingEQ applies the EQ predicate on the "odo_reading" field.
func OdoReadingEQ(v int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldEQ(FieldOdoReading, v))
}

// OdoReadingNEQ applies the NEQ predicate on the "odo_reading" field.
func OdoReadingNEQ(v int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldNEQ(FieldOdoReading, v))
}

// OdoReadingIn applies the In predicate on the "odo_reading" field.
func OdoReadingIn(vs ...int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldIn(FieldOdoReading, vs...))
}

// OdoReadingNotIn applies the NotIn predicate on the "odo_reading" field.
func OdoReadingNotIn(vs ...int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldNotIn(FieldOdoReading, vs...))
}

// OdoReadingGT applies the GT predicate on the "odo_reading" field.
func OdoReadingGT(v int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldGT(FieldOdoReading, v))
}

// OdoReadingGTE applies the GTE predicate on the "odo_reading" field.
func OdoReadingGTE(v int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldGTE(FieldOdoReading, v))
}

// OdoReadingLT applies the LT predicate on the "odo_reading" field.
func OdoReadingLT(v int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldLT(FieldOdoReading, v))
}

// OdoReadingLTE applies the LTE predicate on the "odo_reading" field.
func OdoReadingLTE(v int) predicate.TripDrop {
	return predicate.TripDrop(sql.FieldLTE(FieldOdoReading, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TripDrop) predicate.TripDrop {
	return predicate.TripDrop(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TripDrop) predicate.TripDrop {
	return predicate.TripDrop(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TripDrop) predicate.TripDrop {
	return predicate.TripDrop(sql.NotPredicates(p))
}
