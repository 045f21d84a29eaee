package pipeline

import (
	"context"
	"log/slog"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/internal/async"
	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/imaging"
	"github.com/fleetware/transport-ops/internal/repository"
)

// Enqueuer is the dispatch surface stages need; satisfied by
// async.Dispatcher and by fakes in tests.
type Enqueuer interface {
	Enqueue(ctx context.Context, job async.Job) error
}

// PrepareStage readies the capture for the model call. Delivery notes are
// optimised, encoded and given a draft Trip. Toll statements short-circuit
// into the PDF fan-out; the rest of this chain never runs for them.
type PrepareStage struct {
	base
	captures  repository.DeliveryNoteCaptureRepository
	trips     repository.TripRepository
	optimizer *imaging.Optimizer
	enqueuer  Enqueuer
	logger    *slog.Logger
}

func NewPrepareStage(
	captures repository.DeliveryNoteCaptureRepository,
	trips repository.TripRepository,
	optimizer *imaging.Optimizer,
	enqueuer Enqueuer,
	logger *slog.Logger,
) *PrepareStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &PrepareStage{
		captures:  captures,
		trips:     trips,
		optimizer: optimizer,
		enqueuer:  enqueuer,
		logger:    logger,
	}
}

func (s *PrepareStage) Handle(ctx context.Context, req *Request) error {
	if req.Kind == constants.KindToll {
		return s.startFanout(ctx, req)
	}

	cap, err := s.captures.GetByID(ctx, req.CaptureID)
	if err != nil {
		return common.DocumentProcessingError("load capture", err)
	}
	if err := s.captures.SetStatus(ctx, cap.ID, constants.CaptureProcessing); err != nil {
		return err
	}

	res, err := s.optimizer.Optimize(cap.FilePath, imaging.OptimizedName(cap.FilePath))
	if err != nil {
		return err
	}
	if res.Rewritten {
		if err := s.captures.SetOptimizedPath(ctx, cap.ID, res.Path); err != nil {
			return err
		}
	}
	req.OptimizedPath = res.Path

	b64, err := imaging.ReadBase64(res.Path)
	if err != nil {
		return common.DocumentProcessingError("encode optimized image", err)
	}
	req.Base64Image = b64

	trip, err := s.trips.CreateDraft(ctx, cap.DriverID, cap.ID)
	if err != nil {
		return common.DocumentProcessingError("create draft trip", err)
	}
	if err := s.captures.SetTripID(ctx, cap.ID, trip.ID); err != nil {
		return err
	}
	if err := s.trips.SetStatus(ctx, trip.ID, constants.TripProcessing); err != nil {
		return err
	}
	req.TripID = trip.ID

	return s.callNext(ctx, req)
}

// startFanout hands the capture to the page fan-out and ends the chain;
// page-level workers carry the toll document from here.
func (s *PrepareStage) startFanout(ctx context.Context, req *Request) error {
	job := async.NewJob(async.KindTollFanout, async.TollFanoutPayload{
		CaptureID: req.CaptureID,
		Snapshot:  req.Snapshot,
	})
	if err := s.enqueuer.Enqueue(ctx, job); err != nil {
		return common.DocumentProcessingError("enqueue toll fan-out", err)
	}
	s.logger.Info("pipeline.toll_fanout_queued", "capture_id", req.CaptureID, "job_id", job.ID)
	return nil
}
