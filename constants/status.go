package constants

// CaptureStatus is the canonical status for capture documents
// (delivery-note and toll alike).
type CaptureStatus string

// Stable values (store these exact strings in DB).
const (
	CapturePending    CaptureStatus = "PENDING"    // created, not yet picked up
	CaptureProcessing CaptureStatus = "PROCESSING" // pipeline in flight
	CaptureCompleted  CaptureStatus = "COMPLETED"  // terminal success
	CaptureFailed     CaptureStatus = "FAILED"     // terminal failure
)

// TripStatus tracks a Trip through the ingestion window.
type TripStatus string

const (
	TripDraft            TripStatus = "DRAFT"
	TripProcessing       TripStatus = "PROCESSING"
	TripAwaitingApproval TripStatus = "AWAITING_APPROVAL"
	TripComplete         TripStatus = "COMPLETE" // human sign-off, outside the pipeline
	TripError            TripStatus = "ERROR"
)

// PageResultStatus for page results, which are inserted already terminal.
type PageResultStatus string

const (
	PageCompleted PageResultStatus = "COMPLETED"
	PageFailed    PageResultStatus = "FAILED"
)

// StagingStatus for toll staging rows. PROCESSING is the ownership marker:
// readers treat non-PENDING rows as claimed by a projector run.
type StagingStatus string

const (
	StagingPending    StagingStatus = "PENDING"
	StagingProcessing StagingStatus = "PROCESSING"
	StagingCompleted  StagingStatus = "COMPLETED"
	StagingFailed     StagingStatus = "FAILED"
)

// TollProcessPending is the initial process_status stamped on projected
// Toll rows; downstream expense linking moves it forward.
const TollProcessPending = "PENDING"
