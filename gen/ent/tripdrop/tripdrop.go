// Code generated by ent, DO NOT EDIT.

package tripdrop

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the tripdrop type in the database.
	Label = "trip_drop"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTripID holds the string denoting the trip_id field in the database.
	FieldTripID = "trip_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldOdoReading holds the string denoting the odo_reading field in the database.
	FieldOdoReading = "odo_reading"
	// Table holds the table name of the tripdrop in the database.
	Table = "trip_drops"
)

// Columns holds all SQL columns for tripdrop fields.
var Columns = []string{
	FieldID,
	FieldTripID,
	FieldSeq,
	FieldOdoReading,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	SeqValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TripDrop queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTripID orders the results by the trip_id field.
func ByTripID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTripID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByOdoReading orders the results by the odo_reading field.
func ByOdoReading(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOdoReading, opts...).ToFunc()
}
