package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/internal/common"
	repo "github.com/fleetware/transport-ops/internal/repository"
	"github.com/fleetware/transport-ops/internal/tolls"
)

// tollrun re-projects one staged toll response. Useful when a staging row
// was claimed by a crashed worker and needs a manual rerun; a stale
// PROCESSING claim is reset first, and uniqueness on the toll table makes
// the rerun converge.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "tollrun <staging-id-uuid>")
		os.Exit(2)
	}
	stagingID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid staging id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	stagingRepo := repo.NewTollsStagingRepository(entc, logger)
	tollRepo := repo.NewTollRepository(entc, logger)
	tollCapRepo := repo.NewTollCaptureRepository(entc, logger)
	assetRepo := repo.NewAssetRepository(entc, logger)

	projector := tolls.NewProjector(stagingRepo, tollRepo, tollCapRepo, assetRepo, logger)

	st, err := stagingRepo.GetByID(ctx, stagingID)
	if err != nil {
		logger.Error("load staging row", "staging_id", stagingID, "error", err)
		os.Exit(1)
	}
	if st.Status == constants.StagingProcessing {
		// The operator running this tool is the claim arbiter for rows a
		// dead worker left behind.
		logger.Warn("resetting stale claim", "staging_id", stagingID)
		if err := stagingRepo.SetStatus(ctx, stagingID, constants.StagingPending); err != nil {
			logger.Error("reset stale claim", "staging_id", stagingID, "error", err)
			os.Exit(1)
		}
	}

	start := time.Now()
	if err := projector.Project(ctx, stagingID); err != nil {
		logger.Error("toll projection failed",
			"staging_id", stagingID, "error", err,
			"duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	rows, err := tollRepo.ListByCapture(ctx, st.CaptureID)
	if err != nil {
		logger.Warn("listing capture tolls", "capture_id", st.CaptureID, "error", err)
	}
	logger.Info("toll projection OK",
		"staging_id", stagingID,
		"capture_id", st.CaptureID,
		"capture_tolls", len(rows),
		"duration_ms", time.Since(start).Milliseconds())
}
