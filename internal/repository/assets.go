package repository

import (
	"context"
	"log/slog"

	"github.com/fleetware/transport-ops/gen/ent"
	"github.com/fleetware/transport-ops/gen/ent/transportationasset"
	"github.com/fleetware/transport-ops/internal/entity"
)

type AssetRepository interface {
	// GetByEtag resolves an asset by etag id; (nil, nil) when no active
	// asset carries the tag.
	GetByEtag(ctx context.Context, etagID string) (*entity.TransportationAsset, error)
}

type assetRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewAssetRepository(entc *ent.Client, log *slog.Logger) AssetRepository {
	return &assetRepo{ent: entc, log: log}
}

func (r *assetRepo) GetByEtag(ctx context.Context, etagID string) (*entity.TransportationAsset, error) {
	if etagID == "" {
		return nil, nil
	}
	row, err := r.ent.TransportationAsset.Query().
		Where(
			transportationasset.EtagID(etagID),
			transportationasset.Active(true),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toAsset(row), nil
}
