package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
)

// OCRSetting is the prompt configuration row for one capture kind.
type OCRSetting struct {
	ID             uuid.UUID             `json:"id"`
	Function       constants.CaptureKind `json:"function"`
	PromptTemplate string                `json:"prompt_template"`
	JSONExample    string                `json:"json_example"`
	UpdatedAt      time.Time             `json:"updated_at"`
}
