// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetware/transport-ops/gen/ent/toll"
	"github.com/google/uuid"
)

// Toll is the model entity for the Toll schema.
type Toll struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TransactionDate holds the value of the "transaction_date" field.
	TransactionDate time.Time `json:"transaction_date,omitempty"`
	// TollingPoint holds the value of the "tolling_point" field.
	TollingPoint string `json:"tolling_point,omitempty"`
	// EtagID holds the value of the "etag_id" field.
	EtagID string `json:"etag_id,omitempty"`
	// NetAmount holds the value of the "net_amount" field.
	NetAmount float64 `json:"net_amount,omitempty"`
	// CaptureID holds the value of the "capture_id" field.
	CaptureID uuid.UUID `json:"capture_id,omitempty"`
	// PageResultID holds the value of the "page_result_id" field.
	PageResultID uuid.UUID `json:"page_result_id,omitempty"`
	// AssetID holds the value of the "asset_id" field.
	AssetID *uuid.UUID `json:"asset_id,omitempty"`
	// DriverID holds the value of the "driver_id" field.
	DriverID *uuid.UUID `json:"driver_id,omitempty"`
	// ProcessStatus holds the value of the "process_status" field.
	ProcessStatus string `json:"process_status,omitempty"`
	// ExpenseID holds the value of the "expense_id" field.
	ExpenseID *uuid.UUID `json:"expense_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Toll) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case toll.FieldAssetID, toll.FieldDriverID, toll.FieldExpenseID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case toll.FieldNetAmount:
			values[i] = new(sql.NullFloat64)
		case toll.FieldTollingPoint, toll.FieldEtagID, toll.FieldProcessStatus:
			values[i] = new(sql.NullString)
		case toll.FieldTransactionDate, toll.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case toll.FieldID, toll.FieldCaptureID, toll.FieldPageResultID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Toll fields.
func (_m *Toll) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case toll.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case toll.FieldTransactionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_date", values[i])
			} else if value.Valid {
				_m.TransactionDate = value.Time
			}
		case toll.FieldTollingPoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tolling_point", values[i])
			} else if value.Valid {
				_m.TollingPoint = value.String
			}
		case toll.FieldEtagID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field etag_id", values[i])
			} else if value.Valid {
				_m.EtagID = value.String
			}
		case toll.FieldNetAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field net_amount", values[i])
			} else if value.Valid {
				_m.NetAmount = value.Float64
			}
		case toll.FieldCaptureID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field capture_id", values[i])
			} else if value != nil {
				_m.CaptureID = *value
			}
		case toll.FieldPageResultID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field page_result_id", values[i])
			} else if value != nil {
				_m.PageResultID = *value
			}
		case toll.FieldAssetID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field asset_id", values[i])
			} else if value.Valid {
				_m.AssetID = new(uuid.UUID)
				*_m.AssetID = *value.S.(*uuid.UUID)
			}
		case toll.FieldDriverID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field driver_id", values[i])
			} else if value.Valid {
				_m.DriverID = new(uuid.UUID)
				*_m.DriverID = *value.S.(*uuid.UUID)
			}
		case toll.FieldProcessStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field process_status", values[i])
			} else if value.Valid {
				_m.ProcessStatus = value.String
			}
		case toll.FieldExpenseID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field expense_id", values[i])
			} else if value.Valid {
				_m.ExpenseID = new(uuid.UUID)
				*_m.ExpenseID = *value.S.(*uuid.UUID)
			}
		case toll.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Toll.
// This includes values selected through modifiers, order, etc.
func (_m *Toll) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Toll.
// Note that you need to call Toll.Unwrap() before calling this method if this Toll
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Toll) Update() *TollUpdateOne {
	return NewTollClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Toll entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Toll) Unwrap() *Toll {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Toll is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Toll) String() string {
	var builder strings.Builder
	builder.WriteString("Toll(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("transaction_date=")
	builder.WriteString(_m.TransactionDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tolling_point=")
	builder.WriteString(_m.TollingPoint)
	builder.WriteString(", ")
	builder.WriteString("etag_id=")
	builder.WriteString(_m.EtagID)
	builder.WriteString(", ")
	builder.WriteString("net_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.NetAmount))
	builder.WriteString(", ")
	builder.WriteString("capture_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CaptureID))
	builder.WriteString(", ")
	builder.WriteString("page_result_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageResultID))
	builder.WriteString(", ")
	if v := _m.AssetID; v != nil {
		builder.WriteString("asset_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DriverID; v != nil {
		builder.WriteString("driver_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("process_status=")
	builder.WriteString(_m.ProcessStatus)
	builder.WriteString(", ")
	if v := _m.ExpenseID; v != nil {
		builder.WriteString("expense_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tolls is a parsable slice of Toll.
type Tolls []*Toll
