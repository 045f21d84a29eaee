// Code generated by ent, DO NOT EDIT.

package transportationasset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the transportationasset type in the database.
	Label = "transportation_asset"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTruckNumber holds the string denoting the truck_number field in the database.
	FieldTruckNumber = "truck_number"
	// FieldEtagID holds the string denoting the etag_id field in the database.
	FieldEtagID = "etag_id"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the transportationasset in the database.
	Table = "transportation_assets"
)

// Columns holds all SQL columns for transportationasset fields.
var Columns = []string{
	FieldID,
	FieldTruckNumber,
	FieldEtagID,
	FieldActive,
	FieldCreatedAt,
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
	// TruckNumberValidator is a validator for the "truck_number" field. It is called by the builders before save.
	TruckNumberValidator func(string) error
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TransportationAsset queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTruckNumber orders the results by the truck_number field.
func ByTruckNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTruckNumber, opts...).ToFunc()
}

// ByEtagID orders the results by the etag_id field.
func ByEtagID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEtagID, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
