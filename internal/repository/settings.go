package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/gen/ent"
	"github.com/fleetware/transport-ops/gen/ent/ocrsetting"
	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/entity"
)

type OCRSettingRepository interface {
	GetByFunction(ctx context.Context, kind constants.CaptureKind) (*entity.OCRSetting, error)
}

type ocrSettingRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewOCRSettingRepository(entc *ent.Client, log *slog.Logger) OCRSettingRepository {
	return &ocrSettingRepo{ent: entc, log: log}
}

func (r *ocrSettingRepo) GetByFunction(ctx context.Context, kind constants.CaptureKind) (*entity.OCRSetting, error) {
	row, err := r.ent.OCRSetting.Query().
		Where(ocrsetting.Function(string(kind))).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ConfigurationError(fmt.Sprintf("no ocr settings for %q", kind), err)
	}
	if err != nil {
		return nil, err
	}
	return toOCRSetting(row), nil
}
