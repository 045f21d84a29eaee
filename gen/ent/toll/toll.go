// Code generated by ent, DO NOT EDIT.

package toll

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the toll type in the database.
	Label = "toll"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTransactionDate holds the string denoting the transaction_date field in the database.
	FieldTransactionDate = "transaction_date"
	// FieldTollingPoint holds the string denoting the tolling_point field in the database.
	FieldTollingPoint = "tolling_point"
	// FieldEtagID holds the string denoting the etag_id field in the database.
	FieldEtagID = "etag_id"
	// FieldNetAmount holds the string denoting the net_amount field in the database.
	FieldNetAmount = "net_amount"
	// FieldCaptureID holds the string denoting the capture_id field in the database.
	FieldCaptureID = "capture_id"
	// FieldPageResultID holds the string denoting the page_result_id field in the database.
	FieldPageResultID = "page_result_id"
	// FieldAssetID holds the string denoting the asset_id field in the database.
	FieldAssetID = "asset_id"
	// FieldDriverID holds the string denoting the driver_id field in the database.
	FieldDriverID = "driver_id"
	// FieldProcessStatus holds the string denoting the process_status field in the database.
	FieldProcessStatus = "process_status"
	// FieldExpenseID holds the string denoting the expense_id field in the database.
	FieldExpenseID = "expense_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the toll in the database.
	Table = "tolls"
)

// Columns holds all SQL columns for toll fields.
var Columns = []string{
	FieldID,
	FieldTransactionDate,
	FieldTollingPoint,
	FieldEtagID,
	FieldNetAmount,
	FieldCaptureID,
	FieldPageResultID,
	FieldAssetID,
	FieldDriverID,
	FieldProcessStatus,
	FieldExpenseID,
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
	// EtagIDValidator is a validator for the "etag_id" field. It is called by the builders before save.
	EtagIDValidator func(string) error
	// DefaultProcessStatus holds the default value on creation for the "process_status" field.
	DefaultProcessStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Toll queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTransactionDate orders the results by the transaction_date field.
func ByTransactionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionDate, opts...).ToFunc()
}

// ByTollingPoint orders the results by the tolling_point field.
func ByTollingPoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTollingPoint, opts...).ToFunc()
}

// ByEtagID orders the results by the etag_id field.
func ByEtagID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEtagID, opts...).ToFunc()
}

// ByNetAmount orders the results by the net_amount field.
func ByNetAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetAmount, opts...).ToFunc()
}

// ByCaptureID orders the results by the capture_id field.
func ByCaptureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaptureID, opts...).ToFunc()
}

// ByPageResultID orders the results by the page_result_id field.
func ByPageResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageResultID, opts...).ToFunc()
}

// ByAssetID orders the results by the asset_id field.
func ByAssetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssetID, opts...).ToFunc()
}

// ByDriverID orders the results by the driver_id field.
func ByDriverID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDriverID, opts...).ToFunc()
}

// ByProcessStatus orders the results by the process_status field.
func ByProcessStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessStatus, opts...).ToFunc()
}

// ByExpenseID orders the results by the expense_id field.
func ByExpenseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpenseID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
