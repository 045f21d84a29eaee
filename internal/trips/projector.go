package trips

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/repository"
)

const tripDateLayout = "2006-01-02"

// Projector maps a delivery-note model response onto its draft Trip. Only
// fields the model actually returned are written; drop readings replace
// the existing set in response order. On success the Trip moves to
// Awaiting Approval and the note number is copied back to the capture; on
// failure the Trip terminalises as Error.
type Projector struct {
	trips    repository.TripRepository
	captures repository.DeliveryNoteCaptureRepository
	logger   *slog.Logger
}

func NewProjector(trips repository.TripRepository, captures repository.DeliveryNoteCaptureRepository, logger *slog.Logger) *Projector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Projector{trips: trips, captures: captures, logger: logger}
}

func (p *Projector) Project(ctx context.Context, tripID, captureID uuid.UUID, response map[string]any) error {
	if err := p.project(ctx, tripID, captureID, response); err != nil {
		if terr := p.trips.SetStatus(ctx, tripID, constants.TripError); terr != nil {
			p.logger.Error("trips.error_transition_failed", "trip_id", tripID, "err", terr)
		}
		return common.DocumentProcessingError("project delivery note", err)
	}
	return nil
}

func (p *Projector) project(ctx context.Context, tripID, captureID uuid.UUID, response map[string]any) error {
	upd, err := buildUpdate(response)
	if err != nil {
		return err
	}
	if err := p.trips.UpdateFields(ctx, tripID, upd); err != nil {
		return err
	}

	if readings, ok, err := dropReadings(response); err != nil {
		return err
	} else if ok {
		if err := p.trips.ReplaceDrops(ctx, tripID, readings); err != nil {
			return err
		}
	}

	if err := p.trips.SetStatus(ctx, tripID, constants.TripAwaitingApproval); err != nil {
		return err
	}

	if upd.DeliveryNoteNumber != nil && *upd.DeliveryNoteNumber != "" {
		if err := p.captures.SetDeliveryNoteNumber(ctx, captureID, *upd.DeliveryNoteNumber); err != nil {
			return err
		}
	}

	p.logger.Info("trips.projected", "trip_id", tripID, "capture_id", captureID)
	return nil
}

func buildUpdate(response map[string]any) (repository.TripUpdate, error) {
	var upd repository.TripUpdate

	if s := stringField(response, "date"); s != "" {
		t, err := time.Parse(tripDateLayout, s)
		if err != nil {
			return upd, fmt.Errorf("date: %w", err)
		}
		upd.Date = &t
	}
	if s := stringField(response, "truck_number"); s != "" {
		upd.TruckNumber = &s
	}
	if s := stringField(response, "delivery_note_number"); s != "" {
		upd.DeliveryNoteNumber = &s
	}
	if s := stringField(response, "time_start"); s != "" {
		upd.TimeStart = &s
	}
	if s := stringField(response, "time_end"); s != "" {
		upd.TimeEnd = &s
	}

	var err error
	if upd.OdoStart, err = intField(response, "odo_start"); err != nil {
		return upd, err
	}
	if upd.OdoEnd, err = intField(response, "odo_end"); err != nil {
		return upd, err
	}
	if upd.OdoStart != nil && upd.OdoEnd != nil && *upd.OdoEnd < *upd.OdoStart {
		return upd, fmt.Errorf("odometer readings out of order: start %d, end %d", *upd.OdoStart, *upd.OdoEnd)
	}
	return upd, nil
}

// dropReadings extracts the per-drop odometer list when present. The
// second return reports presence so an absent key leaves existing drops
// untouched.
func dropReadings(response map[string]any) ([]int, bool, error) {
	raw, ok := response["drop_details_odo"]
	if !ok || raw == nil {
		return nil, false, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, false, fmt.Errorf("drop_details_odo is %T, want list", raw)
	}
	readings := make([]int, len(items))
	for i, item := range items {
		n, err := coerceInt(item)
		if err != nil {
			return nil, false, fmt.Errorf("drop_details_odo[%d]: %w", i, err)
		}
		readings[i] = n
	}
	return readings, true, nil
}

func intField(response map[string]any, key string) (*int, error) {
	raw, ok := response[key]
	if !ok || raw == nil {
		return nil, nil
	}
	n, err := coerceInt(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &n, nil
}

// coerceInt accepts the number-or-string odometer values models emit.
func coerceInt(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(n, ",", ""))
		if s == "" {
			return 0, errors.New("empty value")
		}
		return strconv.Atoi(s)
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}

func stringField(response map[string]any, key string) string {
	s, _ := response[key].(string)
	return strings.TrimSpace(s)
}
