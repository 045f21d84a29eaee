// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/transportationasset"
	"github.com/google/uuid"
)

// TransportationAsset is the model entity for the TransportationAsset schema.
type TransportationAsset struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TruckNumber holds the value of the "truck_number" field.
	TruckNumber string `json:"truck_number,omitempty"`
	// EtagID holds the value of the "etag_id" field.
	EtagID string `json:"etag_id,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TransportationAsset) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transportationasset.FieldActive:
			values[i] = new(sql.NullBool)
		case transportationasset.FieldTruckNumber, transportationasset.FieldEtagID:
			values[i] = new(sql.NullString)
		case transportationasset.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case transportationasset.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TransportationAsset fields.
func (_m *TransportationAsset) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transportationasset.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case transportationasset.FieldTruckNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field truck_number", values[i])
			} else if value.Valid {
				_m.TruckNumber = value.String
			}
		case transportationasset.FieldEtagID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field etag_id", values[i])
			} else if value.Valid {
				_m.EtagID = value.String
			}
		case transportationasset.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case transportationasset.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TransportationAsset.
// This includes values selected through modifiers, order, etc.
func (_m *TransportationAsset) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TransportationAsset.
// Note that you need to call TransportationAsset.Unwrap() before calling this method if this TransportationAsset
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TransportationAsset) Update() *TransportationAssetUpdateOne {
	return NewTransportationAssetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TransportationAsset entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TransportationAsset) Unwrap() *TransportationAsset {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TransportationAsset is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TransportationAsset) String() string {
	var builder strings.Builder
	builder.WriteString("TransportationAsset(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("truck_number=")
	builder.WriteString(_m.TruckNumber)
	builder.WriteString(", ")
	builder.WriteString("etag_id=")
	builder.WriteString(_m.EtagID)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TransportationAssets is a parsable slice of TransportationAsset.
type TransportationAssets []*TransportationAsset
