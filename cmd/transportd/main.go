package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/fleetware/transport-ops/gen/proto/transport/v1"
	"github.com/fleetware/transport-ops/internal/async"
	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/export"
	"github.com/fleetware/transport-ops/internal/imaging"
	"github.com/fleetware/transport-ops/internal/pdfpage"
	"github.com/fleetware/transport-ops/internal/pipeline"
	repo "github.com/fleetware/transport-ops/internal/repository"
	svc "github.com/fleetware/transport-ops/internal/server"
	"github.com/fleetware/transport-ops/internal/tolls"
	"github.com/fleetware/transport-ops/internal/trips"

	"github.com/fleetware/transport-ops/constants"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	dncRepo := repo.NewDeliveryNoteCaptureRepository(entc, logger)
	tollCapRepo := repo.NewTollCaptureRepository(entc, logger)
	tripRepo := repo.NewTripRepository(entc, logger)
	pageRepo := repo.NewTollPageResultRepository(entc, logger)
	stagingRepo := repo.NewTollsStagingRepository(entc, logger)
	tollRepo := repo.NewTollRepository(entc, logger)
	assetRepo := repo.NewAssetRepository(entc, logger)
	settingsRepo := repo.NewOCRSettingRepository(entc, logger)

	dispatcher := async.NewDispatcher()

	noteOptimizer := imaging.NewOptimizer(cfg.Imaging.TargetBytes, cfg.Imaging.MaxDimension, cfg.Imaging.JPEGQuality, logger)
	pageOptimizer := imaging.NewOptimizer(cfg.Imaging.TargetBytes, cfg.Imaging.PageMaxDim, cfg.Imaging.JPEGQuality, logger)

	configurator := pipeline.NewConfigurator(cfg, settingsRepo, logger)
	tripProjector := trips.NewProjector(tripRepo, dncRepo, logger)
	runner := pipeline.NewRunner(configurator, dncRepo, tripRepo, noteOptimizer, tripProjector, dispatcher, logger)

	scratchRoot := filepath.Join(cfg.Server.FilesRoot, "scratch")
	fanout := pdfpage.NewFanout(tollCapRepo, dispatcher, scratchRoot, logger)
	pageWorker := pdfpage.NewPageWorker(tollCapRepo, pageRepo, dispatcher, pageOptimizer,
		cfg.Imaging.PageDPI, int64(cfg.Queues.LongWorkers), cfg.Queues.RasterTimeout, logger)
	aiWorker := tolls.NewPageWorker(pageRepo, stagingRepo, dispatcher, logger)
	tollProjector := tolls.NewProjector(stagingRepo, tollRepo, tollCapRepo, assetRepo, logger)

	defaultQueue := async.NewWorkerQueue(constants.QueueDefault,
		map[async.Kind]async.Handler{
			async.KindDeliveryNote: runner.HandleJob,
		},
		logger,
		async.WithWorkers(cfg.Queues.DefaultWorkers),
		async.WithQueueSize(512),
		async.WithProcessTimeout(cfg.Queues.DefaultTimeout),
	)
	longQueue := async.NewWorkerQueue(constants.QueueLong,
		map[async.Kind]async.Handler{
			async.KindTollFanout: fanout.HandleJob,
			async.KindTollPage:   pageWorker.HandleJob,
			async.KindTollPageAI: aiWorker.HandleJob,
		},
		logger,
		async.WithWorkers(cfg.Queues.LongWorkers),
		async.WithQueueSize(1024),
		async.WithProcessTimeout(cfg.Queues.LongTimeout),
	)
	tollQueue := async.NewWorkerQueue(constants.QueueTollCreation,
		map[async.Kind]async.Handler{
			async.KindTollCreate: tollProjector.HandleJob,
		},
		logger,
		async.WithWorkers(cfg.Queues.TollWorkers),
		async.WithQueueSize(1024),
		async.WithProcessTimeout(cfg.Queues.TollTimeout),
		async.WithRateLimit(cfg.Queues.TollRatePerSec, cfg.Queues.TollRateBurst),
	)

	dispatcher.Route(defaultQueue, async.KindDeliveryNote)
	dispatcher.Route(longQueue, async.KindTollFanout, async.KindTollPage, async.KindTollPageAI)
	dispatcher.Route(tollQueue, async.KindTollCreate)

	exporter := export.NewService(tollRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	transport := svc.NewTransportService(dncRepo, tollCapRepo, tripRepo, configurator, dispatcher, exporter, logger)
	v1.RegisterTransportServiceServer(grpcServer, transport)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("transportd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	dispatcher.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
