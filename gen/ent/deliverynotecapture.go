// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/deliverynotecapture"
	"github.com/google/uuid"
)

// DeliveryNoteCapture is the model entity for the DeliveryNoteCapture schema.
type DeliveryNoteCapture struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DriverID holds the value of the "driver_id" field.
	DriverID uuid.UUID `json:"driver_id,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// OptimizedPath holds the value of the "optimized_path" field.
	OptimizedPath *string `json:"optimized_path,omitempty"`
	// DeliveryNoteNumber holds the value of the "delivery_note_number" field.
	DeliveryNoteNumber *string `json:"delivery_note_number,omitempty"`
	// TripID holds the value of the "trip_id" field.
	TripID *uuid.UUID `json:"trip_id,omitempty"`
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
func (*DeliveryNoteCapture) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deliverynotecapture.FieldTripID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case deliverynotecapture.FieldFilePath, deliverynotecapture.FieldOptimizedPath, deliverynotecapture.FieldDeliveryNoteNumber, deliverynotecapture.FieldStatus, deliverynotecapture.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case deliverynotecapture.FieldCreatedAt, deliverynotecapture.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case deliverynotecapture.FieldID, deliverynotecapture.FieldDriverID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeliveryNoteCapture fields.
func (_m *DeliveryNoteCapture) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deliverynotecapture.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case deliverynotecapture.FieldDriverID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field driver_id", values[i])
			} else if value != nil {
				_m.DriverID = *value
			}
		case deliverynotecapture.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case deliverynotecapture.FieldOptimizedPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field optimized_path", values[i])
			} else if value.Valid {
				_m.OptimizedPath = new(string)
				*_m.OptimizedPath = value.String
			}
		case deliverynotecapture.FieldDeliveryNoteNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_note_number", values[i])
			} else if value.Valid {
				_m.DeliveryNoteNumber = new(string)
				*_m.DeliveryNoteNumber = value.String
			}
		case deliverynotecapture.FieldTripID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field trip_id", values[i])
			} else if value.Valid {
				_m.TripID = new(uuid.UUID)
				*_m.TripID = *value.S.(*uuid.UUID)
			}
		case deliverynotecapture.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case deliverynotecapture.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case deliverynotecapture.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deliverynotecapture.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DeliveryNoteCapture.
// This includes values selected through modifiers, order, etc.
func (_m *DeliveryNoteCapture) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DeliveryNoteCapture.
// Note that you need to call DeliveryNoteCapture.Unwrap() before calling this method if this DeliveryNoteCapture
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeliveryNoteCapture) Update() *DeliveryNoteCaptureUpdateOne {
	return NewDeliveryNoteCaptureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeliveryNoteCapture entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeliveryNoteCapture) Unwrap() *DeliveryNoteCapture {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeliveryNoteCapture is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeliveryNoteCapture) String() string {
	var builder strings.Builder
	builder.WriteString("DeliveryNoteCapture(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("driver_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DriverID))
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	if v := _m.OptimizedPath; v != nil {
		builder.WriteString("optimized_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DeliveryNoteNumber; v != nil {
		builder.WriteString("delivery_note_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TripID; v != nil {
		builder.WriteString("trip_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
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

// DeliveryNoteCaptures is a parsable slice of DeliveryNoteCapture.
type DeliveryNoteCaptures []*DeliveryNoteCapture
