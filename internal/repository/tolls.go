package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/gen/ent"
	"github.com/fleetware/transport-ops/gen/ent/toll"
	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/entity"
)

type TollRepository interface {
	// Insert creates one Toll row. A uniqueness conflict on
	// (transaction_date, etag_id) comes back wrapped as common.ErrDuplicate
	// so projectors can skip instead of fail.
	Insert(ctx context.Context, t *entity.Toll) (*entity.Toll, error)
	ListByCapture(ctx context.Context, captureID uuid.UUID) ([]*entity.Toll, error)
	ListByDateRange(ctx context.Context, from, to *time.Time) ([]*entity.Toll, error)
}

type tollRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTollRepository(entc *ent.Client, log *slog.Logger) TollRepository {
	return &tollRepo{ent: entc, log: log}
}

func (r *tollRepo) Insert(ctx context.Context, t *entity.Toll) (*entity.Toll, error) {
	create := r.ent.Toll.
		Create().
		SetTransactionDate(t.TransactionDate).
		SetTollingPoint(t.TollingPoint).
		SetEtagID(t.EtagID).
		SetNetAmount(t.NetAmount).
		SetCaptureID(t.CaptureID).
		SetPageResultID(t.PageResultID).
		SetProcessStatus(t.ProcessStatus)
	if t.AssetID != nil {
		create = create.SetAssetID(*t.AssetID)
	}
	if t.DriverID != nil {
		create = create.SetDriverID(*t.DriverID)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if IsUniqueConstraintError(err) {
			return nil, common.ErrDuplicate
		}
		r.log.Error("toll.insert_failed", "etag_id", t.EtagID, "err", err)
		return nil, err
	}
	r.log.Info("toll.inserted",
		"toll_id", row.ID,
		"etag_id", row.EtagID,
		"transaction_date", row.TransactionDate,
		"net_amount", row.NetAmount,
	)
	return toToll(row), nil
}

func (r *tollRepo) ListByCapture(ctx context.Context, captureID uuid.UUID) ([]*entity.Toll, error) {
	rows, err := r.ent.Toll.Query().
		Where(toll.CaptureID(captureID)).
		Order(ent.Asc(toll.FieldTransactionDate)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toTolls(rows), nil
}

func (r *tollRepo) ListByDateRange(ctx context.Context, from, to *time.Time) ([]*entity.Toll, error) {
	q := r.ent.Toll.Query()
	if from != nil {
		q = q.Where(toll.TransactionDateGTE(*from))
	}
	if to != nil {
		q = q.Where(toll.TransactionDateLTE(*to))
	}
	rows, err := q.Order(ent.Asc(toll.FieldTransactionDate)).All(ctx)
	if err != nil {
		return nil, err
	}
	return toTolls(rows), nil
}

func toTolls(rows []*ent.Toll) []*entity.Toll {
	out := make([]*entity.Toll, len(rows))
	for i, row := range rows {
		out[i] = toToll(row)
	}
	return out
}
