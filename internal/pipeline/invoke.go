package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/provider"
)

// InvokeStage runs the provider call for a prepared delivery note and
// stores the parsed response on the request.
type InvokeStage struct {
	base
	logger *slog.Logger
}

func NewInvokeStage(logger *slog.Logger) *InvokeStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvokeStage{logger: logger}
}

func (s *InvokeStage) Handle(ctx context.Context, req *Request) error {
	adapter, err := req.Snapshot.NewAdapter(s.logger)
	if err != nil {
		return err
	}

	prompt := adapter.FormatPrompt(req.Snapshot.Prompt.Template, req.Snapshot.Prompt.JSONExample, req.Base64Image)
	resp, err := adapter.ProcessDocument(ctx, req.Base64Image, prompt)
	if err != nil {
		return err
	}
	if len(resp) == 0 {
		return common.ProviderError("model returned no usable fields", nil)
	}

	// Shape check is advisory: projection coerces field by field and drops
	// what it cannot use, so a mismatch is logged, not fatal.
	if raw, merr := json.Marshal(resp); merr == nil {
		if verr := provider.ValidateAgainstSchema(provider.BuildDeliveryNoteSchema(), raw); verr != nil {
			s.logger.Warn("pipeline.response_shape_mismatch", "capture_id", req.CaptureID, "err", verr)
		}
	}
	req.AIResponse = resp

	s.logger.Info("pipeline.invoked",
		"capture_id", req.CaptureID,
		"model", req.Snapshot.Settings.Model,
		"fields", len(resp),
	)
	return s.callNext(ctx, req)
}
