package provider

import (
	"fmt"
	"log/slog"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/internal/common"
)

// New returns the adapter for the configured provider family.
func New(family constants.ProviderFamily, cfg Settings, logger *slog.Logger) (Adapter, error) {
	switch family {
	case constants.FamilyOpenAI:
		return NewOpenAIAdapter(cfg, logger), nil
	case constants.FamilyAnthropic:
		return NewAnthropicAdapter(cfg, logger), nil
	default:
		return nil, common.ConfigurationError(fmt.Sprintf("unknown provider family %q", family), nil)
	}
}
