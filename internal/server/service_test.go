package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fleetware/transport-ops/constants"
	v1 "github.com/fleetware/transport-ops/gen/proto/transport/v1"
	"github.com/fleetware/transport-ops/internal/async"
	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/entity"
	"github.com/fleetware/transport-ops/internal/pipeline"
	"github.com/fleetware/transport-ops/internal/repository"
)

type fakeDNCRepo struct {
	created *entity.DeliveryNoteCapture
	byID    map[uuid.UUID]*entity.DeliveryNoteCapture
	getErr  error
}

func (f *fakeDNCRepo) Create(_ context.Context, driverID uuid.UUID, filePath string) (*entity.DeliveryNoteCapture, error) {
	f.created = &entity.DeliveryNoteCapture{
		ID:       uuid.New(),
		DriverID: driverID,
		FilePath: filePath,
		Status:   constants.CapturePending,
	}
	return f.created, nil
}
func (f *fakeDNCRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.DeliveryNoteCapture, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, common.ErrNotFound
}
func (f *fakeDNCRepo) SetStatus(context.Context, uuid.UUID, constants.CaptureStatus) error {
	return nil
}
func (f *fakeDNCRepo) MarkFailed(context.Context, uuid.UUID, string) error      { return nil }
func (f *fakeDNCRepo) SetOptimizedPath(context.Context, uuid.UUID, string) error { return nil }
func (f *fakeDNCRepo) SetDeliveryNoteNumber(context.Context, uuid.UUID, string) error {
	return nil
}
func (f *fakeDNCRepo) SetTripID(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type fakeTollCaptureRepo struct {
	created *entity.TollCapture
	byID    map[uuid.UUID]*entity.TollCapture
}

func (f *fakeTollCaptureRepo) Create(_ context.Context, driverID uuid.UUID, assetID *uuid.UUID, filePath string) (*entity.TollCapture, error) {
	f.created = &entity.TollCapture{
		ID:       uuid.New(),
		DriverID: driverID,
		AssetID:  assetID,
		FilePath: filePath,
		Status:   constants.CapturePending,
	}
	return f.created, nil
}
func (f *fakeTollCaptureRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.TollCapture, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, common.ErrNotFound
}
func (f *fakeTollCaptureRepo) BeginProcessing(context.Context, uuid.UUID, int) error { return nil }
func (f *fakeTollCaptureRepo) SetProgress(context.Context, uuid.UUID, string) error { return nil }
func (f *fakeTollCaptureRepo) Finalize(context.Context, uuid.UUID, json.RawMessage) error {
	return nil
}
func (f *fakeTollCaptureRepo) MarkFailed(context.Context, uuid.UUID, string) error { return nil }

type fakeTripRepo struct {
	byID map[uuid.UUID]*entity.Trip
}

func (f *fakeTripRepo) CreateDraft(context.Context, uuid.UUID, uuid.UUID) (*entity.Trip, error) {
	return nil, errors.New("not used")
}
func (f *fakeTripRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Trip, error) {
	if t, ok := f.byID[id]; ok {
		return t, nil
	}
	return nil, common.ErrNotFound
}
func (f *fakeTripRepo) SetStatus(context.Context, uuid.UUID, constants.TripStatus) error {
	return nil
}
func (f *fakeTripRepo) UpdateFields(context.Context, uuid.UUID, repository.TripUpdate) error {
	return nil
}
func (f *fakeTripRepo) ReplaceDrops(context.Context, uuid.UUID, []int) error { return nil }

type fakeSettingsRepo struct{}

func (fakeSettingsRepo) GetByFunction(_ context.Context, kind constants.CaptureKind) (*entity.OCRSetting, error) {
	return &entity.OCRSetting{
		ID:             uuid.New(),
		Function:       kind,
		PromptTemplate: "Extract the fields.",
		JSONExample:    `{}`,
	}, nil
}

type fakeEnqueuer struct {
	jobs []async.Job
	err  error
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, job async.Job) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, job)
	return nil
}

type serviceFixture struct {
	svc      *TransportService
	dnc      *fakeDNCRepo
	tolls    *fakeTollCaptureRepo
	trips    *fakeTripRepo
	enqueuer *fakeEnqueuer
}

func newFixture(t *testing.T, aiEnabled bool) *serviceFixture {
	t.Helper()
	cfg := &common.Config{
		AI: common.AIConfig{Enabled: aiEnabled, Family: constants.FamilyOpenAI},
		Provider: common.ProviderConfig{
			BaseURL: "http://ai.local", Model: "m", APIKey: "k",
			Timeout: time.Second, MaxRetries: 1, BaseDelay: time.Millisecond,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dnc := &fakeDNCRepo{byID: map[uuid.UUID]*entity.DeliveryNoteCapture{}}
	tolls := &fakeTollCaptureRepo{byID: map[uuid.UUID]*entity.TollCapture{}}
	trips := &fakeTripRepo{byID: map[uuid.UUID]*entity.Trip{}}
	enq := &fakeEnqueuer{}
	svc := NewTransportService(dnc, tolls, trips, pipeline.NewConfigurator(cfg, fakeSettingsRepo{}, logger), enq, nil, logger)
	return &serviceFixture{svc: svc, dnc: dnc, tolls: tolls, trips: trips, enqueuer: enq}
}

func tempDoc(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("doc"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("err = %v, want gRPC status", err)
	}
	if st.Code() != code {
		t.Fatalf("code = %v, want %v (%v)", st.Code(), code, err)
	}
}

func TestSubmitDeliveryNote(t *testing.T) {
	t.Run("queues capture with snapshot", func(t *testing.T) {
		fx := newFixture(t, true)
		resp, err := fx.svc.SubmitDeliveryNote(context.Background(), &v1.SubmitDeliveryNoteRequest{
			DriverId: uuid.New().String(),
			FilePath: tempDoc(t, "note.jpg"),
		})
		if err != nil {
			t.Fatalf("SubmitDeliveryNote: %v", err)
		}
		if fx.dnc.created == nil {
			t.Fatal("capture never created")
		}
		if resp.GetCaptureId() != fx.dnc.created.ID.String() {
			t.Errorf("capture_id = %q", resp.GetCaptureId())
		}
		if len(fx.enqueuer.jobs) != 1 {
			t.Fatalf("jobs = %d, want 1", len(fx.enqueuer.jobs))
		}
		job := fx.enqueuer.jobs[0]
		if job.Kind != async.KindDeliveryNote {
			t.Errorf("kind = %q", job.Kind)
		}
		payload := job.Payload.(async.DeliveryNotePayload)
		if !payload.Snapshot.Enabled || payload.Snapshot.Settings.Model != "m" {
			t.Errorf("snapshot not captured at submit time: %+v", payload.Snapshot)
		}
	})

	t.Run("rejects malformed driver id", func(t *testing.T) {
		fx := newFixture(t, true)
		_, err := fx.svc.SubmitDeliveryNote(context.Background(), &v1.SubmitDeliveryNoteRequest{
			DriverId: "not-a-uuid",
			FilePath: tempDoc(t, "note.jpg"),
		})
		wantCode(t, err, codes.InvalidArgument)
	})

	t.Run("rejects pdf on the image endpoint", func(t *testing.T) {
		fx := newFixture(t, true)
		_, err := fx.svc.SubmitDeliveryNote(context.Background(), &v1.SubmitDeliveryNoteRequest{
			DriverId: uuid.New().String(),
			FilePath: tempDoc(t, "note.pdf"),
		})
		wantCode(t, err, codes.InvalidArgument)
	})

	t.Run("rejects missing file", func(t *testing.T) {
		fx := newFixture(t, true)
		_, err := fx.svc.SubmitDeliveryNote(context.Background(), &v1.SubmitDeliveryNoteRequest{
			DriverId: uuid.New().String(),
			FilePath: filepath.Join(t.TempDir(), "absent.jpg"),
		})
		wantCode(t, err, codes.InvalidArgument)
	})

	t.Run("refuses while processing disabled", func(t *testing.T) {
		fx := newFixture(t, false)
		_, err := fx.svc.SubmitDeliveryNote(context.Background(), &v1.SubmitDeliveryNoteRequest{
			DriverId: uuid.New().String(),
			FilePath: tempDoc(t, "note.jpg"),
		})
		wantCode(t, err, codes.InvalidArgument)
		if fx.dnc.created != nil {
			t.Error("capture must not be created when refused")
		}
	})
}

func TestCreateTollCapture(t *testing.T) {
	fx := newFixture(t, true)
	assetID := uuid.New()
	resp, err := fx.svc.CreateTollCapture(context.Background(), &v1.CreateTollCaptureRequest{
		DriverId: uuid.New().String(),
		AssetId:  assetID.String(),
		FilePath: tempDoc(t, "statement.pdf"),
	})
	if err != nil {
		t.Fatalf("CreateTollCapture: %v", err)
	}
	if resp.GetCaptureId() == "" {
		t.Error("empty capture id")
	}
	if fx.tolls.created.AssetID == nil || *fx.tolls.created.AssetID != assetID {
		t.Errorf("asset id not threaded: %+v", fx.tolls.created)
	}
	if len(fx.enqueuer.jobs) != 0 {
		t.Errorf("registration must not queue work, jobs = %d", len(fx.enqueuer.jobs))
	}
}

func TestProcessTollDocument(t *testing.T) {
	t.Run("queues fan-out", func(t *testing.T) {
		fx := newFixture(t, true)
		cap := &entity.TollCapture{ID: uuid.New(), DriverID: uuid.New()}
		fx.tolls.byID[cap.ID] = cap

		resp, err := fx.svc.ProcessTollDocument(context.Background(), &v1.ProcessTollDocumentRequest{
			CaptureId: cap.ID.String(),
		})
		if err != nil {
			t.Fatalf("ProcessTollDocument: %v", err)
		}
		if !resp.GetSuccess() {
			t.Errorf("success = false: %s", resp.GetMessage())
		}
		if len(fx.enqueuer.jobs) != 1 || fx.enqueuer.jobs[0].Kind != async.KindTollFanout {
			t.Errorf("jobs = %+v", fx.enqueuer.jobs)
		}
	})

	t.Run("unknown capture", func(t *testing.T) {
		fx := newFixture(t, true)
		_, err := fx.svc.ProcessTollDocument(context.Background(), &v1.ProcessTollDocumentRequest{
			CaptureId: uuid.New().String(),
		})
		wantCode(t, err, codes.NotFound)
	})

	t.Run("enqueue failure is a soft error", func(t *testing.T) {
		fx := newFixture(t, true)
		fx.enqueuer.err = errors.New("queue shut down")
		cap := &entity.TollCapture{ID: uuid.New()}
		fx.tolls.byID[cap.ID] = cap

		resp, err := fx.svc.ProcessTollDocument(context.Background(), &v1.ProcessTollDocumentRequest{
			CaptureId: cap.ID.String(),
		})
		if err != nil {
			t.Fatalf("expected soft failure, got %v", err)
		}
		if resp.GetSuccess() {
			t.Error("success must be false when queueing fails")
		}
	})
}

func TestGetCaptureStatus(t *testing.T) {
	t.Run("delivery note", func(t *testing.T) {
		fx := newFixture(t, true)
		tripID := uuid.New()
		msg := "model returned no usable fields"
		cap := &entity.DeliveryNoteCapture{
			ID:           uuid.New(),
			Status:       constants.CaptureFailed,
			ErrorMessage: &msg,
			TripID:       &tripID,
		}
		fx.dnc.byID[cap.ID] = cap
		odoStart, odoEnd := 120450, 120655
		fx.trips.byID[tripID] = &entity.Trip{
			ID:       tripID,
			Status:   constants.TripAwaitingApproval,
			OdoStart: &odoStart,
			OdoEnd:   &odoEnd,
		}

		resp, err := fx.svc.GetCaptureStatus(context.Background(), &v1.GetCaptureStatusRequest{
			CaptureId: cap.ID.String(),
			Kind:      "delivery_note",
		})
		if err != nil {
			t.Fatalf("GetCaptureStatus: %v", err)
		}
		if resp.GetStatus() != string(constants.CaptureFailed) {
			t.Errorf("status = %q", resp.GetStatus())
		}
		if resp.GetErrorMessage() != msg || resp.GetTripId() != tripID.String() {
			t.Errorf("resp = %+v", resp)
		}
		if resp.GetTripStatus() != string(constants.TripAwaitingApproval) {
			t.Errorf("trip status = %q", resp.GetTripStatus())
		}
		if resp.GetTotalDistance() != 205 {
			t.Errorf("total distance = %d, want 205", resp.GetTotalDistance())
		}
	})

	t.Run("trip without odometers omits distance", func(t *testing.T) {
		fx := newFixture(t, true)
		tripID := uuid.New()
		cap := &entity.DeliveryNoteCapture{
			ID:     uuid.New(),
			Status: constants.CaptureProcessing,
			TripID: &tripID,
		}
		fx.dnc.byID[cap.ID] = cap
		fx.trips.byID[tripID] = &entity.Trip{ID: tripID, Status: constants.TripProcessing}

		resp, err := fx.svc.GetCaptureStatus(context.Background(), &v1.GetCaptureStatusRequest{
			CaptureId: cap.ID.String(),
			Kind:      "delivery_note",
		})
		if err != nil {
			t.Fatalf("GetCaptureStatus: %v", err)
		}
		if resp.GetTripStatus() != string(constants.TripProcessing) {
			t.Errorf("trip status = %q", resp.GetTripStatus())
		}
		if resp.GetTotalDistance() != 0 {
			t.Errorf("total distance = %d, want 0", resp.GetTotalDistance())
		}
	})

	t.Run("missing capture is not found", func(t *testing.T) {
		fx := newFixture(t, true)
		_, err := fx.svc.GetCaptureStatus(context.Background(), &v1.GetCaptureStatusRequest{
			CaptureId: uuid.New().String(),
			Kind:      "delivery_note",
		})
		wantCode(t, err, codes.NotFound)
	})

	t.Run("storage failure is internal", func(t *testing.T) {
		fx := newFixture(t, true)
		fx.dnc.getErr = errors.New("connection reset")
		_, err := fx.svc.GetCaptureStatus(context.Background(), &v1.GetCaptureStatusRequest{
			CaptureId: uuid.New().String(),
			Kind:      "delivery_note",
		})
		wantCode(t, err, codes.Internal)
	})

	t.Run("toll progress", func(t *testing.T) {
		fx := newFixture(t, true)
		cap := &entity.TollCapture{
			ID:            uuid.New(),
			Status:        constants.CaptureProcessing,
			ProgressCount: "3",
			TotalRecords:  7,
		}
		fx.tolls.byID[cap.ID] = cap

		resp, err := fx.svc.GetCaptureStatus(context.Background(), &v1.GetCaptureStatusRequest{
			CaptureId: cap.ID.String(),
			Kind:      "toll",
		})
		if err != nil {
			t.Fatalf("GetCaptureStatus: %v", err)
		}
		if resp.GetProgressCount() != "3" || resp.GetTotalRecords() != 7 {
			t.Errorf("resp = %+v", resp)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		fx := newFixture(t, true)
		_, err := fx.svc.GetCaptureStatus(context.Background(), &v1.GetCaptureStatusRequest{
			CaptureId: uuid.New().String(),
			Kind:      "receipt",
		})
		wantCode(t, err, codes.InvalidArgument)
	})
}
