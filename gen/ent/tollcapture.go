// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/tollcapture"
	"github.com/google/uuid"
)

// TollCapture is the model entity for the TollCapture schema.
type TollCapture struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DriverID holds the value of the "driver_id" field.
	DriverID uuid.UUID `json:"driver_id,omitempty"`
	// AssetID holds the value of the "asset_id" field.
	AssetID *uuid.UUID `json:"asset_id,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// TotalRecords holds the value of the "total_records" field.
	TotalRecords int `json:"total_records,omitempty"`
	// ProgressCount holds the value of the "progress_count" field.
	ProgressCount string `json:"progress_count,omitempty"`
	// ProcessedPages holds the value of the "processed_pages" field.
	ProcessedPages json.RawMessage `json:"processed_pages,omitempty"`
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
func (*TollCapture) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tollcapture.FieldAssetID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case tollcapture.FieldProcessedPages:
			values[i] = new([]byte)
		case tollcapture.FieldTotalRecords:
			values[i] = new(sql.NullInt64)
		case tollcapture.FieldFilePath, tollcapture.FieldProgressCount, tollcapture.FieldStatus, tollcapture.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case tollcapture.FieldCreatedAt, tollcapture.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case tollcapture.FieldID, tollcapture.FieldDriverID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TollCapture fields.
func (_m *TollCapture) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tollcapture.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tollcapture.FieldDriverID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field driver_id", values[i])
			} else if value != nil {
				_m.DriverID = *value
			}
		case tollcapture.FieldAssetID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field asset_id", values[i])
			} else if value.Valid {
				_m.AssetID = new(uuid.UUID)
				*_m.AssetID = *value.S.(*uuid.UUID)
			}
		case tollcapture.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case tollcapture.FieldTotalRecords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_records", values[i])
			} else if value.Valid {
				_m.TotalRecords = int(value.Int64)
			}
		case tollcapture.FieldProgressCount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field progress_count", values[i])
			} else if value.Valid {
				_m.ProgressCount = value.String
			}
		case tollcapture.FieldProcessedPages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field processed_pages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProcessedPages); err != nil {
					return fmt.Errorf("unmarshal field processed_pages: %w", err)
				}
			}
		case tollcapture.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case tollcapture.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case tollcapture.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tollcapture.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TollCapture.
// This includes values selected through modifiers, order, etc.
func (_m *TollCapture) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TollCapture.
// Note that you need to call TollCapture.Unwrap() before calling this method if this TollCapture
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TollCapture) Update() *TollCaptureUpdateOne {
	return NewTollCaptureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TollCapture entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TollCapture) Unwrap() *TollCapture {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TollCapture is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TollCapture) String() string {
	var builder strings.Builder
	builder.WriteString("TollCapture(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("driver_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DriverID))
	builder.WriteString(", ")
	if v := _m.AssetID; v != nil {
		builder.WriteString("asset_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("total_records=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalRecords))
	builder.WriteString(", ")
	builder.WriteString("progress_count=")
	builder.WriteString(_m.ProgressCount)
	builder.WriteString(", ")
	builder.WriteString("processed_pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessedPages))
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

// TollCaptures is a parsable slice of TollCapture.
type TollCaptures []*TollCapture
