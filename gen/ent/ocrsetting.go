// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/ocrsetting"
	"github.com/google/uuid"
)

// OCRSetting is the model entity for the OCRSetting schema.
type OCRSetting struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Function holds the value of the "function" field.
	Function string `json:"function,omitempty"`
	// PromptTemplate holds the value of the "prompt_template" field.
	PromptTemplate string `json:"prompt_template,omitempty"`
	// JSONExample holds the value of the "json_example" field.
	JSONExample string `json:"json_example,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OCRSetting) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ocrsetting.FieldFunction, ocrsetting.FieldPromptTemplate, ocrsetting.FieldJSONExample:
			values[i] = new(sql.NullString)
		case ocrsetting.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case ocrsetting.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OCRSetting fields.
func (_m *OCRSetting) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ocrsetting.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case ocrsetting.FieldFunction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field function", values[i])
			} else if value.Valid {
				_m.Function = value.String
			}
		case ocrsetting.FieldPromptTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_template", values[i])
			} else if value.Valid {
				_m.PromptTemplate = value.String
			}
		case ocrsetting.FieldJSONExample:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field json_example", values[i])
			} else if value.Valid {
				_m.JSONExample = value.String
			}
		case ocrsetting.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OCRSetting.
// This includes values selected through modifiers, order, etc.
func (_m *OCRSetting) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OCRSetting.
// Note that you need to call OCRSetting.Unwrap() before calling this method if this OCRSetting
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OCRSetting) Update() *OCRSettingUpdateOne {
	return NewOCRSettingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OCRSetting entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OCRSetting) Unwrap() *OCRSetting {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OCRSetting is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OCRSetting) String() string {
	var builder strings.Builder
	builder.WriteString("OCRSetting(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("function=")
	builder.WriteString(_m.Function)
	builder.WriteString(", ")
	builder.WriteString("prompt_template=")
	builder.WriteString(_m.PromptTemplate)
	builder.WriteString(", ")
	builder.WriteString("json_example=")
	builder.WriteString(_m.JSONExample)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OCRSettings is a parsable slice of OCRSetting.
type OCRSettings []*OCRSetting
