package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/internal/repository"
)

// TripProjector maps a model response onto a draft Trip. Implemented by
// trips.Projector.
type TripProjector interface {
	Project(ctx context.Context, tripID, captureID uuid.UUID, response map[string]any) error
}

// ProjectStage writes the model response into the Trip and completes the
// capture. The projector owns field mapping, drop replacement and the
// Awaiting Approval transition.
type ProjectStage struct {
	base
	projector TripProjector
	captures  repository.DeliveryNoteCaptureRepository
	logger    *slog.Logger
}

func NewProjectStage(projector TripProjector, captures repository.DeliveryNoteCaptureRepository, logger *slog.Logger) *ProjectStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectStage{projector: projector, captures: captures, logger: logger}
}

func (s *ProjectStage) Handle(ctx context.Context, req *Request) error {
	if err := s.projector.Project(ctx, req.TripID, req.CaptureID, req.AIResponse); err != nil {
		return err
	}
	if err := s.captures.SetStatus(ctx, req.CaptureID, constants.CaptureCompleted); err != nil {
		return err
	}
	s.logger.Info("pipeline.projected", "capture_id", req.CaptureID, "trip_id", req.TripID)
	return s.callNext(ctx, req)
}
