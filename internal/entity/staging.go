package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
)

// TollsStaging holds a provider response pending projection into Toll rows.
type TollsStaging struct {
	ID           uuid.UUID               `json:"id"`
	CaptureID    uuid.UUID               `json:"capture_id"`
	PageResultID uuid.UUID               `json:"page_result_id"`
	AIResponse   json.RawMessage         `json:"ai_response,omitempty"`
	Status       constants.StagingStatus `json:"status"`
	ErrorMessage *string                 `json:"error_message,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}
