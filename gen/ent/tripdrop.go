// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/tripdrop"
	"github.com/google/uuid"
)

// TripDrop is the model entity for the TripDrop schema.
type TripDrop struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TripID holds the value of the "trip_id" field.
	TripID uuid.UUID `json:"trip_id,omitempty"`
	// Seq holds the value of the "seq" field.
	Seq int `json:"seq,omitempty"`
	// OdoReading holds the value of the "odo_reading" field.
	OdoReading   int `json:"odo_reading,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TripDrop) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tripdrop.FieldSeq, tripdrop.FieldOdoReading:
			values[i] = new(sql.NullInt64)
		case tripdrop.FieldID, tripdrop.FieldTripID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TripDrop fields.
func (_m *TripDrop) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tripdrop.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tripdrop.FieldTripID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field trip_id", values[i])
			} else if value != nil {
				_m.TripID = *value
			}
		case tripdrop.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case tripdrop.FieldOdoReading:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field odo_reading", values[i])
			} else if value.Valid {
				_m.OdoReading = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TripDrop.
// This includes values selected through modifiers, order, etc.
func (_m *TripDrop) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TripDrop.
// Note that you need to call TripDrop.Unwrap() before calling this method if this TripDrop
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TripDrop) Update() *TripDropUpdateOne {
	return NewTripDropClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TripDrop entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TripDrop) Unwrap() *TripDrop {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TripDrop is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TripDrop) String() string {
	var builder strings.Builder
	builder.WriteString("TripDrop(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("trip_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TripID))
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("odo_reading=")
	builder.WriteString(fmt.Sprintf("%v", _m.OdoReading))
	builder.WriteByte(')')
	return builder.String()
}

// TripDrops is a parsable slice of TripDrop.
type TripDrops []*TripDrop
