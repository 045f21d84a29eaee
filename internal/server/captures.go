package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	v1 "github.com/fleetware/transport-ops/gen/proto/transport/v1"
	"github.com/fleetware/transport-ops/internal/async"
	"github.com/fleetware/transport-ops/internal/common"
)

// SubmitDeliveryNote registers a driver's capture and queues the full
// chain. The configuration snapshot is taken here, so edits made after
// submission cannot change this capture's processing.
func (s *TransportService) SubmitDeliveryNote(ctx context.Context, req *v1.SubmitDeliveryNoteRequest) (*v1.SubmitDeliveryNoteResponse, error) {
	if err := common.ValidateAndReturnError(common.NewValidator().
		Field("driver_id", req.GetDriverId(), common.Required, common.UUID).
		Field("file_path", req.GetFilePath(), common.Required)); err != nil {
		return nil, err
	}
	driverID := uuid.MustParse(strings.TrimSpace(req.GetDriverId()))
	path, err := validateFile(req.GetFilePath(), "jpg", "jpeg", "png")
	if err != nil {
		return nil, err
	}

	snap, err := s.configurator.Snapshot(ctx, constants.KindDeliveryNote)
	if err != nil {
		return nil, configErr(err)
	}

	cap, err := s.dncRepo.Create(ctx, driverID, path)
	if err != nil {
		s.logger.Error("server.submit_dnc_failed", "driver_id", driverID, "err", err)
		return nil, common.InternalError("create capture failed")
	}

	job := async.NewJob(async.KindDeliveryNote, async.DeliveryNotePayload{
		CaptureID: cap.ID,
		Snapshot:  snap,
	})
	if err := s.enqueuer.Enqueue(ctx, job); err != nil {
		s.logger.Error("server.submit_dnc_enqueue_failed", "capture_id", cap.ID, "err", err)
		return nil, common.InternalError("queue capture failed")
	}

	s.logger.Info("server.dnc_submitted", "capture_id", cap.ID, "job_id", job.ID)
	return &v1.SubmitDeliveryNoteResponse{
		CaptureId: cap.ID.String(),
		JobId:     job.ID.String(),
	}, nil
}

// CreateTollCapture registers a toll statement for later processing. The
// operator triggers the heavy work separately via ProcessTollDocument.
func (s *TransportService) CreateTollCapture(ctx context.Context, req *v1.CreateTollCaptureRequest) (*v1.CreateTollCaptureResponse, error) {
	driverID, err := parseUUID(req.GetDriverId(), "driver_id")
	if err != nil {
		return nil, err
	}
	path, err := validateFile(req.GetFilePath(), "pdf")
	if err != nil {
		return nil, err
	}

	var assetID *uuid.UUID
	if raw := strings.TrimSpace(req.GetAssetId()); raw != "" {
		id, err := parseUUID(raw, "asset_id")
		if err != nil {
			return nil, err
		}
		assetID = &id
	}

	cap, err := s.tollRepo.Create(ctx, driverID, assetID, path)
	if err != nil {
		s.logger.Error("server.create_toll_failed", "driver_id", driverID, "err", err)
		return nil, common.InternalError("create capture failed")
	}

	return &v1.CreateTollCaptureResponse{CaptureId: cap.ID.String()}, nil
}

// ProcessTollDocument starts the fan-out for a registered toll capture.
func (s *TransportService) ProcessTollDocument(ctx context.Context, req *v1.ProcessTollDocumentRequest) (*v1.ProcessTollDocumentResponse, error) {
	captureID, err := parseUUID(req.GetCaptureId(), "capture_id")
	if err != nil {
		return nil, err
	}
	cap, err := s.tollRepo.GetByID(ctx, captureID)
	if err != nil {
		return nil, lookupErr(err, fmt.Sprintf("toll capture %s", captureID))
	}

	snap, err := s.configurator.Snapshot(ctx, constants.KindToll)
	if err != nil {
		return nil, configErr(err)
	}

	job := async.NewJob(async.KindTollFanout, async.TollFanoutPayload{
		CaptureID: cap.ID,
		Snapshot:  snap,
	})
	if err := s.enqueuer.Enqueue(ctx, job); err != nil {
		s.logger.Error("server.process_toll_enqueue_failed", "capture_id", cap.ID, "err", err)
		return &v1.ProcessTollDocumentResponse{
			Success: false,
			Message: "queueing failed, try again",
		}, nil
	}

	s.logger.Info("server.toll_processing_queued", "capture_id", cap.ID, "job_id", job.ID)
	return &v1.ProcessTollDocumentResponse{
		Success: true,
		Message: "toll document queued for processing",
		JobId:   job.ID.String(),
	}, nil
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError(field + " is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError(field + " must be a UUID")
	}
	return id, nil
}

// validateFile checks presence, extension and existence of a submitted
// document path.
func validateFile(path string, allowed ...string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", common.InvalidArgumentError("file_path is required")
	}
	ext := constants.NormalizeExt(filepath.Ext(path))
	ok := false
	for _, a := range allowed {
		if ext == a {
			ok = true
			break
		}
	}
	if !ok {
		return "", common.InvalidArgumentError(fmt.Sprintf("unsupported file extension %q", ext))
	}
	if _, err := os.Stat(path); err != nil {
		return "", common.InvalidArgumentError(fmt.Sprintf("file %s not readable", path))
	}
	return path, nil
}

// configErr maps configuration refusals to FailedPrecondition-ish client
// errors instead of opaque internals.
func configErr(err error) error {
	if errors.Is(err, common.ErrConfiguration) {
		return common.InvalidArgumentError(err.Error())
	}
	return common.InternalError(err.Error())
}
