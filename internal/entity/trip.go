package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
)

// Trip represents a trip record for data transfer between layers.
type Trip struct {
	ID                 uuid.UUID            `json:"id"`
	DriverID           uuid.UUID            `json:"driver_id"`
	CaptureID          *uuid.UUID           `json:"capture_id,omitempty"`
	Date               *time.Time           `json:"date,omitempty"`
	TruckNumber        *string              `json:"truck_number,omitempty"`
	DeliveryNoteNumber *string              `json:"delivery_note_number,omitempty"`
	OdoStart           *int                 `json:"odo_start,omitempty"`
	OdoEnd             *int                 `json:"odo_end,omitempty"`
	TimeStart          *string              `json:"time_start,omitempty"`
	TimeEnd            *string              `json:"time_end,omitempty"`
	Status             constants.TripStatus `json:"status"`
	Drops              []TripDrop           `json:"drops,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// TripDrop is one drop-point odometer reading, ordered by Seq.
type TripDrop struct {
	ID         uuid.UUID `json:"id"`
	TripID     uuid.UUID `json:"trip_id"`
	Seq        int       `json:"seq"`
	OdoReading int       `json:"odo_reading"`
}

// TotalDistance returns odo_end - odo_start when both are set.
func (t *Trip) TotalDistance() (int, bool) {
	if t.OdoStart == nil || t.OdoEnd == nil {
		return 0, false
	}
	return *t.OdoEnd - *t.OdoStart, true
}
