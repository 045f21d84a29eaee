package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/gen/ent"
	"github.com/fleetware/transport-ops/gen/ent/tollsstaging"
	"github.com/fleetware/transport-ops/internal/entity"
)

type TollsStagingRepository interface {
	Insert(ctx context.Context, captureID, pageResultID uuid.UUID, aiResponse json.RawMessage) (*entity.TollsStaging, error)
	// UpsertFailed records a terminal failure keyed by the page result so
	// the per-page worker's error path is safe to re-run.
	UpsertFailed(ctx context.Context, captureID, pageResultID uuid.UUID, message string) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TollsStaging, error)
	// Claim moves a PENDING or FAILED row to PROCESSING and reports whether
	// this caller won it. A row already PROCESSING or COMPLETED belongs to
	// another run and must be left alone.
	Claim(ctx context.Context, id uuid.UUID) (bool, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.StagingStatus) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
}

type stagingRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTollsStagingRepository(entc *ent.Client, log *slog.Logger) TollsStagingRepository {
	return &stagingRepo{ent: entc, log: log}
}

func (r *stagingRepo) Insert(ctx context.Context, captureID, pageResultID uuid.UUID, aiResponse json.RawMessage) (*entity.TollsStaging, error) {
	row, err := r.ent.TollsStaging.
		Create().
		SetCaptureID(captureID).
		SetPageResultID(pageResultID).
		SetAiResponse(aiResponse).
		SetStatus(string(constants.StagingPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("staging.insert_failed", "capture_id", captureID, "page_result_id", pageResultID, "err", err)
		return nil, err
	}
	r.log.Info("staging.inserted", "staging_id", row.ID, "page_result_id", pageResultID)
	return toTollsStaging(row), nil
}

func (r *stagingRepo) UpsertFailed(ctx context.Context, captureID, pageResultID uuid.UUID, message string) error {
	existing, err := r.ent.TollsStaging.Query().
		Where(tollsstaging.PageResultID(pageResultID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = r.ent.TollsStaging.UpdateOneID(existing.ID).
			SetStatus(string(constants.StagingFailed)).
			SetErrorMessage(message).
			Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.ent.TollsStaging.
			Create().
			SetCaptureID(captureID).
			SetPageResultID(pageResultID).
			SetStatus(string(constants.StagingFailed)).
			SetErrorMessage(message).
			Save(ctx)
	}
	if err != nil {
		r.log.Error("staging.upsert_failed_failed", "page_result_id", pageResultID, "err", err)
		return err
	}
	r.log.Warn("staging.failed", "page_result_id", pageResultID, "error", message)
	return nil
}

func (r *stagingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.TollsStaging, error) {
	row, err := r.ent.TollsStaging.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTollsStaging(row), nil
}

func (r *stagingRepo) Claim(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.TollsStaging.Update().
		Where(
			tollsstaging.ID(id),
			tollsstaging.StatusIn(
				string(constants.StagingPending),
				string(constants.StagingFailed),
			),
		).
		SetStatus(string(constants.StagingProcessing)).
		Save(ctx)
	if err != nil {
		r.log.Error("staging.claim_failed", "staging_id", id, "err", err)
		return false, err
	}
	return n > 0, nil
}

func (r *stagingRepo) SetStatus(ctx context.Context, id uuid.UUID, status constants.StagingStatus) error {
	_, err := r.ent.TollsStaging.UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.log.Error("staging.status_failed", "staging_id", id, "status", status, "err", err)
	}
	return err
}

func (r *stagingRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.TollsStaging.UpdateOneID(id).
		SetStatus(string(constants.StagingFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("staging.mark_failed_failed", "staging_id", id, "err", err)
		return err
	}
	r.log.Warn("staging.failed", "staging_id", id, "error", message)
	return nil
}
