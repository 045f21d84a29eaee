// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/tollpageresult"
	"github.com/google/uuid"
)

// TollPageResult is the model entity for the TollPageResult schema.
type TollPageResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CaptureID holds the value of the "capture_id" field.
	CaptureID uuid.UUID `json:"capture_id,omitempty"`
	// PageNumber holds the value of the "page_number" field.
	PageNumber int `json:"page_number,omitempty"`
	// Base64Image holds the value of the "base64_image" field.
	Base64Image string `json:"base64_image,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TollPageResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tollpageresult.FieldPageNumber:
			values[i] = new(sql.NullInt64)
		case tollpageresult.FieldBase64Image, tollpageresult.FieldStatus, tollpageresult.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case tollpageresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case tollpageresult.FieldID, tollpageresult.FieldCaptureID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TollPageResult fields.
func (_m *TollPageResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tollpageresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tollpageresult.FieldCaptureID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field capture_id", values[i])
			} else if value != nil {
				_m.CaptureID = *value
			}
		case tollpageresult.FieldPageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_number", values[i])
			} else if value.Valid {
				_m.PageNumber = int(value.Int64)
			}
		case tollpageresult.FieldBase64Image:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base64_image", values[i])
			} else if value.Valid {
				_m.Base64Image = value.String
			}
		case tollpageresult.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case tollpageresult.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case tollpageresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TollPageResult.
// This includes values selected through modifiers, order, etc.
func (_m *TollPageResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TollPageResult.
// Note that you need to call TollPageResult.Unwrap() before calling this method if this TollPageResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TollPageResult) Update() *TollPageResultUpdateOne {
	return NewTollPageResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TollPageResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TollPageResult) Unwrap() *TollPageResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TollPageResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TollPageResult) String() string {
	var builder strings.Builder
	builder.WriteString("TollPageResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("capture_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CaptureID))
	builder.WriteString(", ")
	builder.WriteString("page_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageNumber))
	builder.WriteString(", ")
	builder.WriteString("base64_image=")
	builder.WriteString(_m.Base64Image)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TollPageResults is a parsable slice of TollPageResult.
type TollPageResults []*TollPageResult
