// Code generated by ent, DO NOT EDIT.

package ocrsetting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the ocrsetting type in the database.
	Label = "ocr_setting"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFunction holds the string denoting the function field in the database.
	FieldFunction = "function"
	// FieldPromptTemplate holds the string denoting the prompt_template field in the database.
	FieldPromptTemplate = "prompt_template"
	// FieldJSONExample holds the string denoting the json_example field in the database.
	FieldJSONExample = "json_example"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the ocrsetting in the database.
	Table = "ocr_settings"
)

// Columns holds all SQL columns for ocrsetting fields.
var Columns = []string{
	FieldID,
	FieldFunction,
	FieldPromptTemplate,
	FieldJSONExample,
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
	// FunctionValidator is a validator for the "function" field. It is called by the builders before save.
	FunctionValidator func(string) error
	// PromptTemplateValidator is a validator for the "prompt_template" field. It is called by the builders before save.
	PromptTemplateValidator func(string) error
	// JSONExampleValidator is a validator for the "json_example" field. It is called by the builders before save.
	JSONExampleValidator func(string) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the OCRSetting queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFunction orders the results by the function field.
func ByFunction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFunction, opts...).ToFunc()
}

// ByPromptTemplate orders the results by the prompt_template field.
func ByPromptTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTemplate, opts...).ToFunc()
}

// ByJSONExample orders the results by the json_example field.
func ByJSONExample(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJSONExample, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
