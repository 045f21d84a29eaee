// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/tollsstaging"
	"github.com/google/uuid"
)

// TollsStaging is the model entity for the TollsStaging schema.
type TollsStaging struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CaptureID holds the value of the "capture_id" field.
	CaptureID uuid.UUID `json:"capture_id,omitempty"`
	// PageResultID holds the value of the "page_result_id" field.
	PageResultID uuid.UUID `json:"page_result_id,omitempty"`
	// AiResponse holds the value of the "ai_response" field.
	AiResponse json.RawMessage `json:"ai_response,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TollsStaging) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tollsstaging.FieldAiResponse:
			values[i] = new([]byte)
		case tollsstaging.FieldStatus, tollsstaging.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case tollsstaging.FieldCreatedAt, tollsstaging.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case tollsstaging.FieldID, tollsstaging.FieldCaptureID, tollsstaging.FieldPageResultID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TollsStaging fields.
func (_m *TollsStaging) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tollsstaging.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tollsstaging.FieldCaptureID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field capture_id", values[i])
			} else if value != nil {
				_m.CaptureID = *value
			}
		case tollsstaging.FieldPageResultID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field page_result_id", values[i])
			} else if value != nil {
				_m.PageResultID = *value
			}
		case tollsstaging.FieldAiResponse:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ai_response", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AiResponse); err != nil {
					return fmt.Errorf("unmarshal field ai_response: %w", err)
				}
			}
		case tollsstaging.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case tollsstaging.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case tollsstaging.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tollsstaging.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TollsStaging.
// This includes values selected through modifiers, order, etc.
func (_m *TollsStaging) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TollsStaging.
// Note that you need to call TollsStaging.Unwrap() before calling this method if this TollsStaging
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TollsStaging) Update() *TollsStagingUpdateOne {
	return NewTollsStagingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TollsStaging entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TollsStaging) Unwrap() *TollsStaging {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TollsStaging is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TollsStaging) String() string {
	var builder strings.Builder
	builder.WriteString("TollsStaging(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("capture_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CaptureID))
	builder.WriteString(", ")
	builder.WriteString("page_result_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageResultID))
	builder.WriteString(", ")
	builder.WriteString("ai_response=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiResponse))
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
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TollsStagings is a parsable slice of TollsStaging.
type TollsStagings []*TollsStaging
