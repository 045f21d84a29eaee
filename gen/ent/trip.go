// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/trip"
	"github.com/google/uuid"
)

// Trip is the model entity for the Trip schema.
type Trip struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DriverID holds the value of the "driver_id" field.
	DriverID uuid.UUID `json:"driver_id,omitempty"`
	// CaptureID holds the value of the "capture_id" field.
	CaptureID *uuid.UUID `json:"capture_id,omitempty"`
	// Date holds the value of the "date" field.
	Date *time.Time `json:"date,omitempty"`
	// TruckNumber holds the value of the "truck_number" field.
	TruckNumber *string `json:"truck_number,omitempty"`
	// DeliveryNoteNumber holds the value of the "delivery_note_number" field.
	DeliveryNoteNumber *string `json:"delivery_note_number,omitempty"`
	// OdoStart holds the value of the "odo_start" field.
	OdoStart *int `json:"odo_start,omitempty"`
	// OdoEnd holds the value of the "odo_end" field.
	OdoEnd *int `json:"odo_end,omitempty"`
	// TimeStart holds the value of the "time_start" field.
	TimeStart *string `json:"time_start,omitempty"`
	// TimeEnd holds the value of the "time_end" field.
	TimeEnd *string `json:"time_end,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Trip) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trip.FieldCaptureID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case trip.FieldOdoStart, trip.FieldOdoEnd:
			values[i] = new(sql.NullInt64)
		case trip.FieldTruckNumber, trip.FieldDeliveryNoteNumber, trip.FieldTimeStart, trip.FieldTimeEnd, trip.FieldStatus:
			values[i] = new(sql.NullString)
		case trip.FieldDate, trip.FieldCreatedAt, trip.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case trip.FieldID, trip.FieldDriverID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Trip fields.
func (_m *Trip) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trip.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case trip.FieldDriverID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field driver_id", values[i])
			} else if value != nil {
				_m.DriverID = *value
			}
		case trip.FieldCaptureID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field capture_id", values[i])
			} else if value.Valid {
				_m.CaptureID = new(uuid.UUID)
				*_m.CaptureID = *value.S.(*uuid.UUID)
			}
		case trip.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = new(time.Time)
				*_m.Date = value.Time
			}
		case trip.FieldTruckNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field truck_number", values[i])
			} else if value.Valid {
				_m.TruckNumber = new(string)
				*_m.TruckNumber = value.String
			}
		case trip.FieldDeliveryNoteNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_note_number", values[i])
			} else if value.Valid {
				_m.DeliveryNoteNumber = new(string)
				*_m.DeliveryNoteNumber = value.String
			}
		case trip.FieldOdoStart:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field odo_start", values[i])
			} else if value.Valid {
				_m.OdoStart = new(int)
				*_m.OdoStart = int(value.Int64)
			}
		case trip.FieldOdoEnd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field odo_end", values[i])
			} else if value.Valid {
				_m.OdoEnd = new(int)
				*_m.OdoEnd = int(value.Int64)
			}
		case trip.FieldTimeStart:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_start", values[i])
			} else if value.Valid {
				_m.TimeStart = new(string)
				*_m.TimeStart = value.String
			}
		case trip.FieldTimeEnd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_end", values[i])
			} else if value.Valid {
				_m.TimeEnd = new(string)
				*_m.TimeEnd = value.String
			}
		case trip.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case trip.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case trip.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Trip.
// This includes values selected through modifiers, order, etc.
func (_m *Trip) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Trip.
// Note that you need to call Trip.Unwrap() before calling this method if this Trip
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Trip) Update() *TripUpdateOne {
	return NewTripClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Trip entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Trip) Unwrap() *Trip {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Trip is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Trip) String() string {
	var builder strings.Builder
	builder.WriteString("Trip(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("driver_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DriverID))
	builder.WriteString(", ")
	if v := _m.CaptureID; v != nil {
		builder.WriteString("capture_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Date; v != nil {
		builder.WriteString("date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TruckNumber; v != nil {
		builder.WriteString("truck_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DeliveryNoteNumber; v != nil {
		builder.WriteString("delivery_note_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OdoStart; v != nil {
		builder.WriteString("odo_start=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OdoEnd; v != nil {
		builder.WriteString("odo_end=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TimeStart; v != nil {
		builder.WriteString("time_start=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TimeEnd; v != nil {
		builder.WriteString("time_end=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Trips is a parsable slice of Trip.
type Trips []*Trip
