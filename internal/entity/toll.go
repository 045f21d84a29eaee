package entity

import (
	"time"

	"github.com/google/uuid"
)

// Toll represents an authoritative toll transaction.
type Toll struct {
	ID              uuid.UUID  `json:"id"`
	TransactionDate time.Time  `json:"transaction_date"`
	TollingPoint    string     `json:"tolling_point"`
	EtagID          string     `json:"etag_id"`
	NetAmount       float64    `json:"net_amount"`
	CaptureID       uuid.UUID  `json:"capture_id"`
	PageResultID    uuid.UUID  `json:"page_result_id"`
	AssetID         *uuid.UUID `json:"asset_id,omitempty"`
	DriverID        *uuid.UUID `json:"driver_id,omitempty"`
	ProcessStatus   string     `json:"process_status"`
	ExpenseID       *uuid.UUID `json:"expense_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
