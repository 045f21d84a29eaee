package async

import (
	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/internal/provider"
)

// DeliveryNotePayload runs the full handler chain for one capture.
type DeliveryNotePayload struct {
	CaptureID uuid.UUID         `json:"capture_id"`
	Snapshot  provider.Snapshot `json:"snapshot"`
}

// TollFanoutPayload starts the PDF fan-out for a toll capture.
type TollFanoutPayload struct {
	CaptureID uuid.UUID         `json:"capture_id"`
	Snapshot  provider.Snapshot `json:"snapshot"`
}

// TollPagePayload rasterises and optimises one page.
type TollPagePayload struct {
	CaptureID  uuid.UUID         `json:"capture_id"`
	PageNumber int               `json:"page_number"`
	PageCount  int               `json:"page_count"`
	PDFPath    string            `json:"pdf_path"`
	ScratchDir string            `json:"scratch_dir"`
	Snapshot   provider.Snapshot `json:"snapshot"`
}

// TollPageAIPayload sends one completed page to the provider and stages
// the response.
type TollPageAIPayload struct {
	CaptureID    uuid.UUID         `json:"capture_id"`
	PageResultID uuid.UUID         `json:"page_result_id"`
	Snapshot     provider.Snapshot `json:"snapshot"`
}

// TollCreatePayload projects one staging row into Toll records.
type TollCreatePayload struct {
	StagingID uuid.UUID `json:"staging_id"`
}
