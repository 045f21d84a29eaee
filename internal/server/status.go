package server

import (
	"context"
	"errors"
	"fmt"

	v1 "github.com/fleetware/transport-ops/gen/proto/transport/v1"
	"github.com/fleetware/transport-ops/internal/common"
)

const (
	kindDeliveryNote = "delivery_note"
	kindToll         = "toll"
)

// GetCaptureStatus reports where a capture is in the pipeline. Delivery
// note captures expose the projected trip when one exists; toll captures
// expose page progress.
func (s *TransportService) GetCaptureStatus(ctx context.Context, req *v1.GetCaptureStatusRequest) (*v1.GetCaptureStatusResponse, error) {
	captureID, err := parseUUID(req.GetCaptureId(), "capture_id")
	if err != nil {
		return nil, err
	}

	switch req.GetKind() {
	case kindDeliveryNote:
		cap, err := s.dncRepo.GetByID(ctx, captureID)
		if err != nil {
			return nil, lookupErr(err, fmt.Sprintf("capture %s", captureID))
		}
		resp := &v1.GetCaptureStatusResponse{Status: string(cap.Status)}
		if cap.ErrorMessage != nil {
			resp.ErrorMessage = *cap.ErrorMessage
		}
		if cap.TripID != nil {
			resp.TripId = cap.TripID.String()
			trip, terr := s.tripRepo.GetByID(ctx, *cap.TripID)
			if terr != nil {
				s.logger.Warn("server.status_trip_lookup_failed", "trip_id", *cap.TripID, "err", terr)
			} else {
				resp.TripStatus = string(trip.Status)
				if dist, ok := trip.TotalDistance(); ok {
					resp.TotalDistance = int32(dist)
				}
			}
		}
		return resp, nil

	case kindToll:
		cap, err := s.tollRepo.GetByID(ctx, captureID)
		if err != nil {
			return nil, lookupErr(err, fmt.Sprintf("capture %s", captureID))
		}
		resp := &v1.GetCaptureStatusResponse{
			Status:        string(cap.Status),
			ProgressCount: cap.ProgressCount,
			TotalRecords:  int32(cap.TotalRecords),
		}
		if cap.ErrorMessage != nil {
			resp.ErrorMessage = *cap.ErrorMessage
		}
		return resp, nil

	default:
		return nil, common.InvalidArgumentError(`kind must be "delivery_note" or "toll"`)
	}
}

// lookupErr keeps missing records and storage failures distinguishable to
// the caller.
func lookupErr(err error, what string) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.NotFoundError(what + " not found")
	}
	return common.InternalError(what + " lookup failed")
}
