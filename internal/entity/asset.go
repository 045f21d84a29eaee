package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransportationAsset is the slice of the fleet record this pipeline needs.
type TransportationAsset struct {
	ID          uuid.UUID `json:"id"`
	TruckNumber string    `json:"truck_number"`
	EtagID      string    `json:"etag_id,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}
