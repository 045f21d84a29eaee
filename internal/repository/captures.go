package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/gen/ent"
	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/entity"
)

type DeliveryNoteCaptureRepository interface {
	Create(ctx context.Context, driverID uuid.UUID, filePath string) (*entity.DeliveryNoteCapture, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryNoteCapture, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.CaptureStatus) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	SetOptimizedPath(ctx context.Context, id uuid.UUID, path string) error
	SetDeliveryNoteNumber(ctx context.Context, id uuid.UUID, number string) error
	SetTripID(ctx context.Context, id, tripID uuid.UUID) error
}

type dncRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDeliveryNoteCaptureRepository(entc *ent.Client, log *slog.Logger) DeliveryNoteCaptureRepository {
	return &dncRepo{ent: entc, log: log}
}

func (r *dncRepo) Create(ctx context.Context, driverID uuid.UUID, filePath string) (*entity.DeliveryNoteCapture, error) {
	row, err := r.ent.DeliveryNoteCapture.
		Create().
		SetDriverID(driverID).
		SetFilePath(filePath).
		Save(ctx)
	if err != nil {
		r.log.Error("capture.dnc.create_failed", "driver_id", driverID, "err", err)
		return nil, err
	}
	r.log.Info("capture.dnc.created", "capture_id", row.ID, "driver_id", driverID)
	return toDeliveryNoteCapture(row), nil
}

func (r *dncRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryNoteCapture, error) {
	row, err := r.ent.DeliveryNoteCapture.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: delivery note capture %s", common.ErrNotFound, id)
		}
		return nil, err
	}
	return toDeliveryNoteCapture(row), nil
}

func (r *dncRepo) SetStatus(ctx context.Context, id uuid.UUID, status constants.CaptureStatus) error {
	_, err := r.ent.DeliveryNoteCapture.UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.log.Error("capture.dnc.status_failed", "capture_id", id, "status", status, "err", err)
	}
	return err
}

func (r *dncRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.DeliveryNoteCapture.UpdateOneID(id).
		SetStatus(string(constants.CaptureFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("capture.dnc.mark_failed_failed", "capture_id", id, "err", err)
		return err
	}
	r.log.Warn("capture.dnc.failed", "capture_id", id, "error", message)
	return nil
}

func (r *dncRepo) SetOptimizedPath(ctx context.Context, id uuid.UUID, path string) error {
	_, err := r.ent.DeliveryNoteCapture.UpdateOneID(id).
		SetOptimizedPath(path).
		Save(ctx)
	return err
}

func (r *dncRepo) SetDeliveryNoteNumber(ctx context.Context, id uuid.UUID, number string) error {
	_, err := r.ent.DeliveryNoteCapture.UpdateOneID(id).
		SetDeliveryNoteNumber(number).
		Save(ctx)
	return err
}

func (r *dncRepo) SetTripID(ctx context.Context, id, tripID uuid.UUID) error {
	_, err := r.ent.DeliveryNoteCapture.UpdateOneID(id).
		SetTripID(tripID).
		Save(ctx)
	return err
}

type TollCaptureRepository interface {
	Create(ctx context.Context, driverID uuid.UUID, assetID *uuid.UUID, filePath string) (*entity.TollCapture, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TollCapture, error)
	BeginProcessing(ctx context.Context, id uuid.UUID, totalRecords int) error
	SetProgress(ctx context.Context, id uuid.UUID, progress string) error
	Finalize(ctx context.Context, id uuid.UUID, processedPages json.RawMessage) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
}

type tollCaptureRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTollCaptureRepository(entc *ent.Client, log *slog.Logger) TollCaptureRepository {
	return &tollCaptureRepo{ent: entc, log: log}
}

func (r *tollCaptureRepo) Create(ctx context.Context, driverID uuid.UUID, assetID *uuid.UUID, filePath string) (*entity.TollCapture, error) {
	create := r.ent.TollCapture.
		Create().
		SetDriverID(driverID).
		SetFilePath(filePath)
	if assetID != nil {
		create = create.SetAssetID(*assetID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("capture.toll.create_failed", "driver_id", driverID, "err", err)
		return nil, err
	}
	r.log.Info("capture.toll.created", "capture_id", row.ID, "driver_id", driverID)
	return toTollCapture(row), nil
}

func (r *tollCaptureRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.TollCapture, error) {
	row, err := r.ent.TollCapture.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: toll capture %s", common.ErrNotFound, id)
		}
		return nil, err
	}
	return toTollCapture(row), nil
}

func (r *tollCaptureRepo) BeginProcessing(ctx context.Context, id uuid.UUID, totalRecords int) error {
	_, err := r.ent.TollCapture.UpdateOneID(id).
		SetStatus(string(constants.CaptureProcessing)).
		SetTotalRecords(totalRecords).
		SetProgressCount("0").
		Save(ctx)
	if err != nil {
		r.log.Error("capture.toll.begin_failed", "capture_id", id, "err", err)
		return err
	}
	r.log.Info("capture.toll.processing", "capture_id", id, "total_records", totalRecords)
	return nil
}

func (r *tollCaptureRepo) SetProgress(ctx context.Context, id uuid.UUID, progress string) error {
	_, err := r.ent.TollCapture.UpdateOneID(id).
		SetProgressCount(progress).
		Save(ctx)
	return err
}

func (r *tollCaptureRepo) Finalize(ctx context.Context, id uuid.UUID, processedPages json.RawMessage) error {
	_, err := r.ent.TollCapture.UpdateOneID(id).
		SetProcessedPages(processedPages).
		SetStatus(string(constants.CaptureCompleted)).
		Save(ctx)
	if err != nil {
		r.log.Error("capture.toll.finalize_failed", "capture_id", id, "err", err)
		return err
	}
	r.log.Info("capture.toll.completed", "capture_id", id)
	return nil
}

func (r *tollCaptureRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.TollCapture.UpdateOneID(id).
		SetStatus(string(constants.CaptureFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("capture.toll.mark_failed_failed", "capture_id", id, "err", err)
		return err
	}
	r.log.Warn("capture.toll.failed", "capture_id", id, "error", message)
	return nil
}
