package server

import (
	"log/slog"

	v1 "github.com/fleetware/transport-ops/gen/proto/transport/v1"
	"github.com/fleetware/transport-ops/internal/export"
	"github.com/fleetware/transport-ops/internal/pipeline"
	"github.com/fleetware/transport-ops/internal/repository"
)

// TransportService is the gRPC surface of the ingestion pipeline: capture
// submission, toll processing triggers, status polling and exports.
type TransportService struct {
	v1.UnimplementedTransportServiceServer
	dncRepo      repository.DeliveryNoteCaptureRepository
	tollRepo     repository.TollCaptureRepository
	tripRepo     repository.TripRepository
	configurator *pipeline.Configurator
	enqueuer     pipeline.Enqueuer
	exporter     *export.Service
	logger       *slog.Logger
}

func NewTransportService(
	dncRepo repository.DeliveryNoteCaptureRepository,
	tollRepo repository.TollCaptureRepository,
	tripRepo repository.TripRepository,
	configurator *pipeline.Configurator,
	enqueuer pipeline.Enqueuer,
	exporter *export.Service,
	logger *slog.Logger,
) *TransportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransportService{
		dncRepo:      dncRepo,
		tollRepo:     tollRepo,
		tripRepo:     tripRepo,
		configurator: configurator,
		enqueuer:     enqueuer,
		exporter:     exporter,
		logger:       logger,
	}
}
