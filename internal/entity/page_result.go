package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
)

// TollPageResult is the immutable per-page audit row.
type TollPageResult struct {
	ID           uuid.UUID                  `json:"id"`
	CaptureID    uuid.UUID                  `json:"capture_id"`
	PageNumber   int                        `json:"page_number"`
	Base64Image  string                     `json:"base64_image,omitempty"`
	Status       constants.PageResultStatus `json:"status"`
	ErrorMessage *string                    `json:"error_message,omitempty"`
	CreatedAt    time.Time                  `json:"created_at"`
}
