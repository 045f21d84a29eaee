package pipeline

import (
	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/internal/provider"
)

// Request is the mutable state threaded through the handler chain. Each
// stage fills in the fields it owns; later stages read them.
type Request struct {
	Kind      constants.CaptureKind
	CaptureID uuid.UUID

	// Set by the configure stage (or pre-filled from the job payload).
	Snapshot provider.Snapshot

	// Set by the prepare stage.
	Base64Image   string
	OptimizedPath string
	TripID        uuid.UUID

	// Set by the invoke stage.
	AIResponse map[string]any

	// Stamped by the runner when a stage fails.
	Err error
}

// NewRequest starts a request for one capture.
func NewRequest(kind constants.CaptureKind, captureID uuid.UUID) *Request {
	return &Request{Kind: kind, CaptureID: captureID}
}
