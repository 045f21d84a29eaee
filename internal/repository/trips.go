package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/gen/ent"
	"github.com/fleetware/transport-ops/gen/ent/tripdrop"
	"github.com/fleetware/transport-ops/internal/entity"
)

// TripUpdate carries the projected delivery-note fields. Nil pointers leave
// the corresponding Trip field unchanged.
type TripUpdate struct {
	Date               *time.Time
	TruckNumber        *string
	DeliveryNoteNumber *string
	OdoStart           *int
	OdoEnd             *int
	TimeStart          *string
	TimeEnd            *string
}

type TripRepository interface {
	CreateDraft(ctx context.Context, driverID, captureID uuid.UUID) (*entity.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.TripStatus) error
	UpdateFields(ctx context.Context, id uuid.UUID, upd TripUpdate) error
	ReplaceDrops(ctx context.Context, tripID uuid.UUID, readings []int) error
}

type tripRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTripRepository(entc *ent.Client, log *slog.Logger) TripRepository {
	return &tripRepo{ent: entc, log: log}
}

func (r *tripRepo) CreateDraft(ctx context.Context, driverID, captureID uuid.UUID) (*entity.Trip, error) {
	row, err := r.ent.Trip.
		Create().
		SetDriverID(driverID).
		SetCaptureID(captureID).
		SetStatus(string(constants.TripDraft)).
		Save(ctx)
	if err != nil {
		r.log.Error("trip.create_failed", "driver_id", driverID, "err", err)
		return nil, err
	}
	r.log.Info("trip.created", "trip_id", row.ID, "capture_id", captureID)
	return toTrip(row, nil), nil
}

func (r *tripRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	row, err := r.ent.Trip.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	drops, err := r.ent.TripDrop.Query().
		Where(tripdrop.TripID(id)).
		Order(ent.Asc(tripdrop.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toTrip(row, drops), nil
}

func (r *tripRepo) SetStatus(ctx context.Context, id uuid.UUID, status constants.TripStatus) error {
	_, err := r.ent.Trip.UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.log.Error("trip.status_failed", "trip_id", id, "status", status, "err", err)
	}
	return err
}

func (r *tripRepo) UpdateFields(ctx context.Context, id uuid.UUID, upd TripUpdate) error {
	q := r.ent.Trip.UpdateOneID(id).
		SetNillableDate(upd.Date).
		SetNillableTruckNumber(upd.TruckNumber).
		SetNillableDeliveryNoteNumber(upd.DeliveryNoteNumber).
		SetNillableOdoStart(upd.OdoStart).
		SetNillableOdoEnd(upd.OdoEnd).
		SetNillableTimeStart(upd.TimeStart).
		SetNillableTimeEnd(upd.TimeEnd)
	_, err := q.Save(ctx)
	if err != nil {
		r.log.Error("trip.update_failed", "trip_id", id, "err", err)
	}
	return err
}

// ReplaceDrops clears and re-inserts the drop readings in input order
// inside one transaction.
func (r *tripRepo) ReplaceDrops(ctx context.Context, tripID uuid.UUID, readings []int) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.TripDrop.Delete().Where(tripdrop.TripID(tripID)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	builders := make([]*ent.TripDropCreate, len(readings))
	for i, odo := range readings {
		builders[i] = tx.TripDrop.Create().
			SetTripID(tripID).
			SetSeq(i).
			SetOdoReading(odo)
	}
	if _, err := tx.TripDrop.CreateBulk(builders...).Save(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
