package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
)

// DeliveryNoteCapture represents a single-image capture for data transfer
// between layers.
type DeliveryNoteCapture struct {
	ID                 uuid.UUID               `json:"id"`
	DriverID           uuid.UUID               `json:"driver_id"`
	FilePath           string                  `json:"file_path"`
	OptimizedPath      *string                 `json:"optimized_path,omitempty"`
	DeliveryNoteNumber *string                 `json:"delivery_note_number,omitempty"`
	TripID             *uuid.UUID              `json:"trip_id,omitempty"`
	Status             constants.CaptureStatus `json:"status"`
	ErrorMessage       *string                 `json:"error_message,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

// TollCapture represents a multi-page toll statement capture.
type TollCapture struct {
	ID            uuid.UUID               `json:"id"`
	DriverID      uuid.UUID               `json:"driver_id"`
	AssetID       *uuid.UUID              `json:"asset_id,omitempty"`
	FilePath      string                  `json:"file_path"`
	TotalRecords  int                     `json:"total_records"`
	ProgressCount string                  `json:"progress_count"`
	Status        constants.CaptureStatus `json:"status"`
	ErrorMessage  *string                 `json:"error_message,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// ProcessedPage is one element of a toll capture's assembled
// processed_pages artefact.
type ProcessedPage struct {
	PageNumber  int    `json:"page_number"`
	Base64Image string `json:"base64_image"`
}
