// Code generated by ent, DO NOT EDIT.

package trip

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the trip type in the database.
	Label = "trip"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDriverID holds the string denoting the driver_id field in the database.
	FieldDriverID = "driver_id"
	// FieldCaptureID holds the string denoting the capture_id field in the database.
	FieldCaptureID = "capture_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldTruckNumber holds the string denoting the truck_number field in the database.
	FieldTruckNumber = "truck_number"
	// FieldDeliveryNoteNumber holds the string denoting the delivery_note_number field in the database.
	FieldDeliveryNoteNumber = "delivery_note_number"
	// FieldOdoStart holds the string denoting the odo_start field in the database.
	FieldOdoStart = "odo_start"
	// FieldOdoEnd holds the string denoting the odo_end field in the database.
	FieldOdoEnd = "odo_end"
	// FieldTimeStart holds the string denoting the time_start field in the database.
	FieldTimeStart = "time_start"
	// FieldTimeEnd holds the string denoting the time_end field in the database.
	FieldTimeEnd = "time_end"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the trip in the database.
	Table = "trips"
)

// Columns holds all SQL columns for trip fields.
var Columns = []string{
	FieldID,
	FieldDriverID,
	FieldCaptureID,
	FieldDate,
	FieldTruckNumber,
	FieldDeliveryNoteNumber,
	FieldOdoStart,
	FieldOdoEnd,
	FieldTimeStart,
	FieldTimeEnd,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Trip queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDriverID orders the results by the driver_id field.
func ByDriverID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDriverID, opts...).ToFunc()
}

// ByCaptureID orders the results by the capture_id field.
func ByCaptureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaptureID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByTruckNumber orders the results by the truck_number field.
func ByTruckNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTruckNumber, opts...).ToFunc()
}

// ByDeliveryNoteNumber orders the results by the delivery_note_number field.
func ByDeliveryNoteNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryNoteNumber, opts...).ToFunc()
}

// ByOdoStart orders the results by the odo_start field.
func ByOdoStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOdoStart, opts...).ToFunc()
}

// ByOdoEnd orders the results by the odo_end field.
func ByOdoEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOdoEnd, opts...).ToFunc()
}

// ByTimeStart orders the results by the time_start field.
func ByTimeStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeStart, opts...).ToFunc()
}

// ByTimeEnd orders the results by the time_end field.
func ByTimeEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeEnd, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
