package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/internal/async"
	"github.com/fleetware/transport-ops/internal/imaging"
	"github.com/fleetware/transport-ops/internal/repository"
)

// Runner executes the delivery-note chain for queued jobs and owns the
// failure transitions: a failed run terminalises both the capture and any
// Trip the chain created.
type Runner struct {
	chain    Handler
	captures repository.DeliveryNoteCaptureRepository
	trips    repository.TripRepository
	logger   *slog.Logger
}

// NewRunner links Configure, Prepare, Invoke and Project into the
// delivery-note chain.
func NewRunner(
	configurator *Configurator,
	captures repository.DeliveryNoteCaptureRepository,
	trips repository.TripRepository,
	optimizer *imaging.Optimizer,
	projector TripProjector,
	enqueuer Enqueuer,
	logger *slog.Logger,
) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	configure := NewConfigureStage(configurator)
	configure.
		SetNext(NewPrepareStage(captures, trips, optimizer, enqueuer, logger)).
		SetNext(NewInvokeStage(logger)).
		SetNext(NewProjectStage(projector, captures, logger))

	return &Runner{chain: configure, captures: captures, trips: trips, logger: logger}
}

// HandleJob adapts Run to the queue handler signature.
func (r *Runner) HandleJob(ctx context.Context, job async.Job) error {
	payload, ok := job.Payload.(async.DeliveryNotePayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s job", job.Payload, job.Kind)
	}
	return r.Run(ctx, payload)
}

// Run drives one capture through the chain.
func (r *Runner) Run(ctx context.Context, payload async.DeliveryNotePayload) error {
	req := NewRequest(constants.KindDeliveryNote, payload.CaptureID)
	req.Snapshot = payload.Snapshot

	err := r.chain.Handle(ctx, req)
	if err == nil {
		return nil
	}
	req.Err = err

	if req.TripID != uuid.Nil {
		if terr := r.trips.SetStatus(ctx, req.TripID, constants.TripError); terr != nil {
			r.logger.Error("pipeline.trip_error_transition_failed", "trip_id", req.TripID, "err", terr)
		}
	}
	if merr := r.captures.MarkFailed(ctx, payload.CaptureID, err.Error()); merr != nil {
		r.logger.Error("pipeline.capture_fail_transition_failed", "capture_id", payload.CaptureID, "err", merr)
	}
	return err
}
