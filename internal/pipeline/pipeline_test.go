package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/internal/async"
	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/entity"
	"github.com/fleetware/transport-ops/internal/imaging"
	"github.com/fleetware/transport-ops/internal/repository"
)

type fakeSettingsRepo struct {
	calls int
}

func (f *fakeSettingsRepo) GetByFunction(_ context.Context, kind constants.CaptureKind) (*entity.OCRSetting, error) {
	f.calls++
	return &entity.OCRSetting{
		ID:             uuid.New(),
		Function:       kind,
		PromptTemplate: "Extract the fields.",
		JSONExample:    `{"truck_number": ""}`,
	}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeCaptureRepo struct {
	capture   *entity.DeliveryNoteCapture
	statuses  []constants.CaptureStatus
	failedMsg string
	tripID    uuid.UUID
	optimized string
}

func (f *fakeCaptureRepo) Create(context.Context, uuid.UUID, string) (*entity.DeliveryNoteCapture, error) {
	return nil, errors.New("not used")
}
func (f *fakeCaptureRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.DeliveryNoteCapture, error) {
	if f.capture == nil || f.capture.ID != id {
		return nil, errors.New("not found")
	}
	return f.capture, nil
}
func (f *fakeCaptureRepo) SetStatus(_ context.Context, _ uuid.UUID, status constants.CaptureStatus) error {
	f.statuses = append(f.statuses, status)
	return nil
}
func (f *fakeCaptureRepo) MarkFailed(_ context.Context, _ uuid.UUID, message string) error {
	f.statuses = append(f.statuses, constants.CaptureFailed)
	f.failedMsg = message
	return nil
}
func (f *fakeCaptureRepo) SetOptimizedPath(_ context.Context, _ uuid.UUID, path string) error {
	f.optimized = path
	return nil
}
func (f *fakeCaptureRepo) SetDeliveryNoteNumber(context.Context, uuid.UUID, string) error {
	return nil
}
func (f *fakeCaptureRepo) SetTripID(_ context.Context, _ uuid.UUID, tripID uuid.UUID) error {
	f.tripID = tripID
	return nil
}

type fakeTripRepo struct {
	created  *entity.Trip
	statuses []constants.TripStatus
}

func (f *fakeTripRepo) CreateDraft(_ context.Context, driverID, captureID uuid.UUID) (*entity.Trip, error) {
	f.created = &entity.Trip{ID: uuid.New(), DriverID: driverID, CaptureID: &captureID}
	return f.created, nil
}
func (f *fakeTripRepo) GetByID(context.Context, uuid.UUID) (*entity.Trip, error) {
	return nil, errors.New("not used")
}
func (f *fakeTripRepo) SetStatus(_ context.Context, _ uuid.UUID, status constants.TripStatus) error {
	f.statuses = append(f.statuses, status)
	return nil
}
func (f *fakeTripRepo) UpdateFields(context.Context, uuid.UUID, repository.TripUpdate) error {
	return nil
}
func (f *fakeTripRepo) ReplaceDrops(context.Context, uuid.UUID, []int) error { return nil }

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

type fakeProjector struct {
	tripID    uuid.UUID
	captureID uuid.UUID
	response  map[string]any
	err       error
}

func (f *fakeProjector) Project(_ context.Context, tripID, captureID uuid.UUID, response map[string]any) error {
	f.tripID = tripID
	f.captureID = captureID
	f.response = response
	return f.err
}

func testConfig(enabled bool, baseURL string) *common.Config {
	return &common.Config{
		AI: common.AIConfig{Enabled: enabled, Family: constants.FamilyOpenAI},
		Provider: common.ProviderConfig{
			BaseURL:    baseURL,
			Model:      "test-model",
			APIKey:     "sk-test",
			Timeout:    5 * time.Second,
			MaxRetries: 2,
			BaseDelay:  time.Millisecond,
		},
	}
}

func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 90, A: 255})
		}
	}
	path := filepath.Join(dir, "note.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func modelServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reply, _ := json.Marshal(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		})
		w.Write(reply)
	}))
}

func TestConfiguratorSnapshot(t *testing.T) {
	t.Run("refuses when disabled", func(t *testing.T) {
		c := NewConfigurator(testConfig(false, ""), &fakeSettingsRepo{}, nil)
		_, err := c.Snapshot(context.Background(), constants.KindDeliveryNote)
		if !errors.Is(err, common.ErrConfiguration) {
			t.Fatalf("err = %v, want ErrConfiguration", err)
		}
	})

	t.Run("carries config and prompt", func(t *testing.T) {
		c := NewConfigurator(testConfig(true, "http://ai.local"), &fakeSettingsRepo{}, nil)
		snap, err := c.Snapshot(context.Background(), constants.KindToll)
		if err != nil {
			t.Fatalf("Snapshot: %v", err)
		}
		if !snap.Enabled {
			t.Error("snapshot not enabled")
		}
		if snap.Family != constants.FamilyOpenAI {
			t.Errorf("family = %q", snap.Family)
		}
		if snap.Settings.BaseURL != "http://ai.local" || snap.Settings.Model != "test-model" {
			t.Errorf("settings = %+v", snap.Settings)
		}
		if snap.Prompt.Function != constants.KindToll || snap.Prompt.Template == "" {
			t.Errorf("prompt = %+v", snap.Prompt)
		}
	})
}

func TestConfigureStageSkipsWarmSnapshot(t *testing.T) {
	settings := &fakeSettingsRepo{}
	stage := NewConfigureStage(NewConfigurator(testConfig(true, ""), settings, nil))

	req := NewRequest(constants.KindDeliveryNote, uuid.New())
	req.Snapshot.Enabled = true
	if err := stage.Handle(context.Background(), req); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if settings.calls != 0 {
		t.Errorf("settings looked up %d times for a warm request", settings.calls)
	}
}

func TestPrepareStageTollShortCircuit(t *testing.T) {
	enq := &fakeEnqueuer{}
	captures := &fakeCaptureRepo{}
	stage := NewPrepareStage(captures, &fakeTripRepo{}, nil, enq, nil)

	req := NewRequest(constants.KindToll, uuid.New())
	req.Snapshot.Enabled = true
	req.Snapshot.Settings.Model = "snap-model"

	if err := stage.Handle(context.Background(), req); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(enq.jobs) != 1 {
		t.Fatalf("jobs = %d, want 1", len(enq.jobs))
	}
	job := enq.jobs[0]
	if job.Kind != async.KindTollFanout {
		t.Errorf("kind = %q", job.Kind)
	}
	payload, ok := job.Payload.(async.TollFanoutPayload)
	if !ok {
		t.Fatalf("payload = %T", job.Payload)
	}
	if payload.CaptureID != req.CaptureID {
		t.Errorf("capture id not carried")
	}
	if payload.Snapshot.Settings.Model != "snap-model" {
		t.Errorf("snapshot not carried: %+v", payload.Snapshot)
	}
	if len(captures.statuses) != 0 {
		t.Errorf("toll path must not touch delivery-note captures: %v", captures.statuses)
	}
}

func TestRunnerEndToEnd(t *testing.T) {
	srv := modelServer(t, `{"truck_number":"T-7","odo_start":100}`)
	defer srv.Close()

	dir := t.TempDir()
	captureID := uuid.New()
	captures := &fakeCaptureRepo{capture: &entity.DeliveryNoteCapture{
		ID:       captureID,
		DriverID: uuid.New(),
		FilePath: writeTestPNG(t, dir),
	}}
	trips := &fakeTripRepo{}
	projector := &fakeProjector{}
	optimizer := imaging.NewOptimizer(1<<20, 1024, 60, nil)
	configurator := NewConfigurator(testConfig(true, srv.URL), &fakeSettingsRepo{}, nil)

	r := NewRunner(configurator, captures, trips, optimizer, projector, &fakeEnqueuer{}, nil)

	err := r.Run(context.Background(), async.DeliveryNotePayload{CaptureID: captureID})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if trips.created == nil {
		t.Fatal("no draft trip created")
	}
	if projector.tripID != trips.created.ID || projector.captureID != captureID {
		t.Errorf("projector ids: trip %s capture %s", projector.tripID, projector.captureID)
	}
	if projector.response["truck_number"] != "T-7" {
		t.Errorf("response = %v", projector.response)
	}

	wantCapture := []constants.CaptureStatus{constants.CaptureProcessing, constants.CaptureCompleted}
	if len(captures.statuses) != len(wantCapture) {
		t.Fatalf("capture statuses = %v", captures.statuses)
	}
	for i, want := range wantCapture {
		if captures.statuses[i] != want {
			t.Errorf("capture status[%d] = %q, want %q", i, captures.statuses[i], want)
		}
	}
	if captures.tripID != trips.created.ID {
		t.Errorf("capture trip link = %s", captures.tripID)
	}
	if len(trips.statuses) == 0 || trips.statuses[0] != constants.TripProcessing {
		t.Errorf("trip statuses = %v", trips.statuses)
	}
}

func TestRunnerFailureTerminalises(t *testing.T) {
	captures := &fakeCaptureRepo{}
	trips := &fakeTripRepo{}
	r := &Runner{
		chain:    &failingStage{tripID: uuid.New()},
		captures: captures,
		trips:    trips,
		logger:   testLogger(),
	}

	err := r.Run(context.Background(), async.DeliveryNotePayload{CaptureID: uuid.New()})
	if err == nil {
		t.Fatal("expected chain error")
	}
	if len(trips.statuses) != 1 || trips.statuses[0] != constants.TripError {
		t.Errorf("trip statuses = %v, want [ERROR]", trips.statuses)
	}
	if len(captures.statuses) != 1 || captures.statuses[0] != constants.CaptureFailed {
		t.Errorf("capture statuses = %v, want [FAILED]", captures.statuses)
	}
	if captures.failedMsg == "" {
		t.Error("failure message not recorded")
	}
}

func TestRunnerFailureWithoutTrip(t *testing.T) {
	captures := &fakeCaptureRepo{}
	trips := &fakeTripRepo{}
	r := &Runner{
		chain:    &failingStage{},
		captures: captures,
		trips:    trips,
		logger:   testLogger(),
	}

	if err := r.Run(context.Background(), async.DeliveryNotePayload{CaptureID: uuid.New()}); err == nil {
		t.Fatal("expected chain error")
	}
	if len(trips.statuses) != 0 {
		t.Errorf("no trip existed, statuses = %v", trips.statuses)
	}
	if len(captures.statuses) != 1 || captures.statuses[0] != constants.CaptureFailed {
		t.Errorf("capture statuses = %v", captures.statuses)
	}
}

func TestRunnerRejectsForeignPayload(t *testing.T) {
	r := &Runner{logger: testLogger()}
	job := async.NewJob(async.KindDeliveryNote, async.TollCreatePayload{StagingID: uuid.New()})
	if err := r.HandleJob(context.Background(), job); err == nil {
		t.Fatal("expected payload type error")
	}
}

// failingStage stamps a trip id first so the runner's cleanup path has
// something to terminalise.
type failingStage struct {
	base
	tripID uuid.UUID
}

func (s *failingStage) Handle(_ context.Context, req *Request) error {
	req.TripID = s.tripID
	return errors.New("stage blew up")
}
