package pipeline

import (
	"context"
	"log/slog"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/provider"
	"github.com/fleetware/transport-ops/internal/repository"
)

// Configurator assembles the configuration snapshot for a capture kind:
// the global AI switch, the provider settings from live config, and the
// prompt row for the kind. Callers embed the snapshot in job payloads so
// later edits cannot affect queued work.
type Configurator struct {
	cfg      *common.Config
	settings repository.OCRSettingRepository
	logger   *slog.Logger
}

func NewConfigurator(cfg *common.Config, settings repository.OCRSettingRepository, logger *slog.Logger) *Configurator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Configurator{cfg: cfg, settings: settings, logger: logger}
}

// Snapshot builds the snapshot, refusing when processing is disabled.
func (c *Configurator) Snapshot(ctx context.Context, kind constants.CaptureKind) (provider.Snapshot, error) {
	if !c.cfg.AI.Enabled {
		return provider.Snapshot{}, common.ConfigurationError("document processing is disabled", nil)
	}

	setting, err := c.settings.GetByFunction(ctx, kind)
	if err != nil {
		return provider.Snapshot{}, err
	}

	p := c.cfg.Provider
	snap := provider.Snapshot{
		Enabled: true,
		Family:  c.cfg.AI.Family,
		Settings: provider.Settings{
			BaseURL:     p.BaseURL,
			Model:       p.Model,
			APIKey:      p.APIKey,
			Temperature: p.Temperature,
			Timeout:     p.Timeout,
			MaxRetries:  p.MaxRetries,
			BaseDelay:   p.BaseDelay,
		},
		Prompt: provider.Prompt{
			Function:    setting.Function,
			Template:    setting.PromptTemplate,
			JSONExample: setting.JSONExample,
		},
	}
	c.logger.Info("pipeline.configured", "kind", kind, "family", snap.Family, "model", snap.Settings.Model)
	return snap, nil
}

// ConfigureStage ensures the request carries a usable snapshot. Payloads
// enqueued through the gRPC surface arrive pre-snapshotted; the stage then
// only re-checks the enabled flag. A cold request is snapshotted here.
type ConfigureStage struct {
	base
	configurator *Configurator
}

func NewConfigureStage(c *Configurator) *ConfigureStage {
	return &ConfigureStage{configurator: c}
}

func (s *ConfigureStage) Handle(ctx context.Context, req *Request) error {
	if req.Snapshot.Enabled {
		return s.callNext(ctx, req)
	}
	snap, err := s.configurator.Snapshot(ctx, req.Kind)
	if err != nil {
		return err
	}
	req.Snapshot = snap
	return s.callNext(ctx, req)
}
