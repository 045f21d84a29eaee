package provider

import (
	"log/slog"

	"github.com/fleetware/transport-ops/constants"
)

// Snapshot bundles the three configuration objects captured at enqueue
// time: the global switch, provider settings, and the OCR prompt for the
// capture kind. Workers rebuild adapters from the snapshot; in-flight work
// never observes configuration edits.
type Snapshot struct {
	Enabled  bool                     `json:"enabled"`
	Family   constants.ProviderFamily `json:"family"`
	Settings Settings                 `json:"settings"`
	Prompt   Prompt                   `json:"prompt"`
}

// NewAdapter builds the adapter for the snapshotted family.
func (s Snapshot) NewAdapter(logger *slog.Logger) (Adapter, error) {
	return New(s.Family, s.Settings, logger)
}
