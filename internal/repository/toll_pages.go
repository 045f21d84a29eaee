package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/gen/ent"
	"github.com/fleetware/transport-ops/gen/ent/tollpageresult"
	"github.com/fleetware/transport-ops/internal/entity"
)

type TollPageResultRepository interface {
	InsertCompleted(ctx context.Context, captureID uuid.UUID, page int, base64Image string) (*entity.TollPageResult, error)
	InsertFailed(ctx context.Context, captureID uuid.UUID, page int, message string) (*entity.TollPageResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TollPageResult, error)
	CountCompleted(ctx context.Context, captureID uuid.UUID) (int, error)
	ListCompleted(ctx context.Context, captureID uuid.UUID) ([]*entity.TollPageResult, error)
}

type tollPageRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTollPageResultRepository(entc *ent.Client, log *slog.Logger) TollPageResultRepository {
	return &tollPageRepo{ent: entc, log: log}
}

func (r *tollPageRepo) InsertCompleted(ctx context.Context, captureID uuid.UUID, page int, base64Image string) (*entity.TollPageResult, error) {
	row, err := r.ent.TollPageResult.
		Create().
		SetCaptureID(captureID).
		SetPageNumber(page).
		SetBase64Image(base64Image).
		SetStatus(string(constants.PageCompleted)).
		Save(ctx)
	if err != nil {
		r.log.Error("page_result.insert_failed", "capture_id", captureID, "page", page, "err", err)
		return nil, err
	}
	r.log.Info("page_result.completed", "capture_id", captureID, "page", page)
	return toTollPageResult(row), nil
}

func (r *tollPageRepo) InsertFailed(ctx context.Context, captureID uuid.UUID, page int, message string) (*entity.TollPageResult, error) {
	row, err := r.ent.TollPageResult.
		Create().
		SetCaptureID(captureID).
		SetPageNumber(page).
		SetStatus(string(constants.PageFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("page_result.insert_failed", "capture_id", captureID, "page", page, "err", err)
		return nil, err
	}
	r.log.Warn("page_result.failed", "capture_id", captureID, "page", page, "error", message)
	return toTollPageResult(row), nil
}

func (r *tollPageRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.TollPageResult, error) {
	row, err := r.ent.TollPageResult.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTollPageResult(row), nil
}

func (r *tollPageRepo) CountCompleted(ctx context.Context, captureID uuid.UUID) (int, error) {
	return r.ent.TollPageResult.Query().
		Where(
			tollpageresult.CaptureID(captureID),
			tollpageresult.Status(string(constants.PageCompleted)),
		).
		Count(ctx)
}

// ListCompleted returns completed pages in ascending page order for the
// fan-in assembly.
func (r *tollPageRepo) ListCompleted(ctx context.Context, captureID uuid.UUID) ([]*entity.TollPageResult, error) {
	rows, err := r.ent.TollPageResult.Query().
		Where(
			tollpageresult.CaptureID(captureID),
			tollpageresult.Status(string(constants.PageCompleted)),
		).
		Order(ent.Asc(tollpageresult.FieldPageNumber)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.TollPageResult, len(rows))
	for i, row := range rows {
		out[i] = toTollPageResult(row)
	}
	return out, nil
}
