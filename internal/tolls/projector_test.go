package tolls

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/entity"
)

type fakeStagingRepo struct {
	row       *entity.TollsStaging
	statuses  []constants.StagingStatus
	failed    string
	upsertMsg string
}

func (f *fakeStagingRepo) Insert(_ context.Context, captureID, pageResultID uuid.UUID, raw json.RawMessage) (*entity.TollsStaging, error) {
	f.row = &entity.TollsStaging{
		ID:           uuid.New(),
		CaptureID:    captureID,
		PageResultID: pageResultID,
		AIResponse:   raw,
		Status:       constants.StagingPending,
	}
	return f.row, nil
}
func (f *fakeStagingRepo) UpsertFailed(_ context.Context, _, _ uuid.UUID, message string) error {
	f.upsertMsg = message
	return nil
}
func (f *fakeStagingRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.TollsStaging, error) {
	if f.row == nil || f.row.ID != id {
		return nil, errors.New("not found")
	}
	return f.row, nil
}
func (f *fakeStagingRepo) Claim(_ context.Context, id uuid.UUID) (bool, error) {
	if f.row == nil || f.row.ID != id {
		return false, errors.New("not found")
	}
	if f.row.Status != constants.StagingPending && f.row.Status != constants.StagingFailed {
		return false, nil
	}
	f.row.Status = constants.StagingProcessing
	f.statuses = append(f.statuses, constants.StagingProcessing)
	return true, nil
}
func (f *fakeStagingRepo) SetStatus(_ context.Context, _ uuid.UUID, status constants.StagingStatus) error {
	if f.row != nil {
		f.row.Status = status
	}
	f.statuses = append(f.statuses, status)
	return nil
}
func (f *fakeStagingRepo) MarkFailed(_ context.Context, _ uuid.UUID, msg string) error {
	if f.row != nil {
		f.row.Status = constants.StagingFailed
	}
	f.statuses = append(f.statuses, constants.StagingFailed)
	f.failed = msg
	return nil
}

type fakeTollRepo struct {
	inserted []*entity.Toll
	seen     map[string]bool
}

func (f *fakeTollRepo) Insert(_ context.Context, t *entity.Toll) (*entity.Toll, error) {
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	key := fmt.Sprintf("%s|%s", t.TransactionDate.Format(time.RFC3339), t.EtagID)
	if f.seen[key] {
		return nil, common.ErrDuplicate
	}
	f.seen[key] = true
	f.inserted = append(f.inserted, t)
	return t, nil
}
func (f *fakeTollRepo) ListByCapture(context.Context, uuid.UUID) ([]*entity.Toll, error) {
	return f.inserted, nil
}
func (f *fakeTollRepo) ListByDateRange(context.Context, *time.Time, *time.Time) ([]*entity.Toll, error) {
	return f.inserted, nil
}

type fakeTollCaptureRepo struct {
	capture *entity.TollCapture
}

func (f *fakeTollCaptureRepo) Create(context.Context, uuid.UUID, *uuid.UUID, string) (*entity.TollCapture, error) {
	return nil, errors.New("not used")
}
func (f *fakeTollCaptureRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.TollCapture, error) {
	if f.capture == nil || f.capture.ID != id {
		return nil, errors.New("not found")
	}
	return f.capture, nil
}
func (f *fakeTollCaptureRepo) BeginProcessing(context.Context, uuid.UUID, int) error { return nil }
func (f *fakeTollCaptureRepo) SetProgress(context.Context, uuid.UUID, string) error { return nil }
func (f *fakeTollCaptureRepo) Finalize(context.Context, uuid.UUID, json.RawMessage) error {
	return nil
}
func (f *fakeTollCaptureRepo) MarkFailed(context.Context, uuid.UUID, string) error { return nil }

type fakeAssetRepo struct {
	byEtag map[string]*entity.TransportationAsset
}

func (f *fakeAssetRepo) GetByEtag(_ context.Context, etag string) (*entity.TransportationAsset, error) {
	return f.byEtag[etag], nil
}

func newTestProjector(raw string) (*Projector, *fakeStagingRepo, *fakeTollRepo, *fakeTollCaptureRepo, *fakeAssetRepo) {
	capID := uuid.New()
	driverID := uuid.New()
	capAsset := uuid.New()
	staging := &fakeStagingRepo{row: &entity.TollsStaging{
		ID:           uuid.New(),
		CaptureID:    capID,
		PageResultID: uuid.New(),
		AIResponse:   json.RawMessage(raw),
		Status:       constants.StagingPending,
	}}
	tolls := &fakeTollRepo{}
	captures := &fakeTollCaptureRepo{capture: &entity.TollCapture{
		ID:       capID,
		DriverID: driverID,
		AssetID:  &capAsset,
	}}
	assets := &fakeAssetRepo{byEtag: map[string]*entity.TransportationAsset{}}
	return NewProjector(staging, tolls, captures, assets, nil), staging, tolls, captures, assets
}

func lastStatus(s *fakeStagingRepo) constants.StagingStatus {
	if len(s.statuses) == 0 {
		return ""
	}
	return s.statuses[len(s.statuses)-1]
}

func TestProjectorInsertsEntries(t *testing.T) {
	raw := `[
		{"transaction_date":"2026-03-01 08:15:00","tolling_point":"Harbour Bridge","etag_id":"E100","net_amount":4.5},
		{"transaction_date":"2026-03-01 09:30:00","tolling_point":"Tunnel","etag_id":"E100","net_amount":"6.20"}
	]`
	p, staging, tolls, captures, _ := newTestProjector(raw)

	if err := p.Project(context.Background(), staging.row.ID); err != nil {
		t.Fatalf("Project: %v", err)
	}
	if len(tolls.inserted) != 2 {
		t.Fatalf("inserted = %d, want 2", len(tolls.inserted))
	}
	got := tolls.inserted[0]
	if got.TollingPoint != "Harbour Bridge" || got.NetAmount != 4.5 {
		t.Errorf("first toll = %+v", got)
	}
	if got.DriverID == nil || *got.DriverID != captures.capture.DriverID {
		t.Errorf("driver not inherited from capture")
	}
	if got.AssetID == nil || *got.AssetID != *captures.capture.AssetID {
		t.Errorf("asset not inherited from capture")
	}
	if got.ProcessStatus != constants.TollProcessPending {
		t.Errorf("process status = %q", got.ProcessStatus)
	}
	if tolls.inserted[1].NetAmount != 6.20 {
		t.Errorf("string amount not coerced: %+v", tolls.inserted[1])
	}
	if lastStatus(staging) != constants.StagingCompleted {
		t.Errorf("staging status = %v", staging.statuses)
	}
}

func TestProjectorResolvesAssetByEtag(t *testing.T) {
	raw := `{"transactions":[{"transaction_date":"2026-03-02","etag_id":"E200","net_amount":3}]}`
	p, staging, tolls, _, assets := newTestProjector(raw)
	matched := &entity.TransportationAsset{ID: uuid.New(), EtagID: "E200", Active: true}
	assets.byEtag["E200"] = matched

	if err := p.Project(context.Background(), staging.row.ID); err != nil {
		t.Fatalf("Project: %v", err)
	}
	if len(tolls.inserted) != 1 {
		t.Fatalf("inserted = %d, want 1", len(tolls.inserted))
	}
	if got := tolls.inserted[0].AssetID; got == nil || *got != matched.ID {
		t.Errorf("asset = %v, want etag match %s", got, matched.ID)
	}
}

func TestProjectorSkipsDuplicates(t *testing.T) {
	raw := `[
		{"transaction_date":"2026-03-01 08:15:00","etag_id":"E100","net_amount":4.5},
		{"transaction_date":"2026-03-01 08:15:00","etag_id":"E100","net_amount":4.5}
	]`
	p, staging, tolls, _, _ := newTestProjector(raw)

	if err := p.Project(context.Background(), staging.row.ID); err != nil {
		t.Fatalf("Project: %v", err)
	}
	if len(tolls.inserted) != 1 {
		t.Errorf("inserted = %d, want 1 (duplicate skipped)", len(tolls.inserted))
	}
	if lastStatus(staging) != constants.StagingCompleted {
		t.Errorf("duplicate must not fail the staging row: %v", staging.statuses)
	}
}

func TestProjectorRerunConverges(t *testing.T) {
	raw := `[{"transaction_date":"2026-03-01 08:15:00","etag_id":"E100","net_amount":4.5}]`
	p, staging, tolls, _, _ := newTestProjector(raw)

	if err := p.Project(context.Background(), staging.row.ID); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := p.Project(context.Background(), staging.row.ID); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(tolls.inserted) != 1 {
		t.Errorf("inserted = %d after rerun, want 1", len(tolls.inserted))
	}
	if lastStatus(staging) != constants.StagingCompleted {
		t.Errorf("staging status = %v", staging.statuses)
	}
}

func TestProjectorSkipsRowOwnedByAnotherRun(t *testing.T) {
	raw := `[{"transaction_date":"2026-03-01 08:15:00","etag_id":"E100","net_amount":4.5}]`
	p, staging, tolls, _, _ := newTestProjector(raw)
	staging.row.Status = constants.StagingProcessing

	if err := p.Project(context.Background(), staging.row.ID); err != nil {
		t.Fatalf("Project: %v", err)
	}
	if len(tolls.inserted) != 0 {
		t.Errorf("inserted = %d, want 0 (row is owned elsewhere)", len(tolls.inserted))
	}
	if len(staging.statuses) != 0 {
		t.Errorf("owned row must not be touched, writes = %v", staging.statuses)
	}
}

func TestProjectorReclaimsFailedRow(t *testing.T) {
	raw := `[{"transaction_date":"2026-03-01 08:15:00","etag_id":"E100","net_amount":4.5}]`
	p, staging, tolls, _, _ := newTestProjector(raw)
	staging.row.Status = constants.StagingFailed

	if err := p.Project(context.Background(), staging.row.ID); err != nil {
		t.Fatalf("Project: %v", err)
	}
	if len(tolls.inserted) != 1 {
		t.Errorf("inserted = %d, want 1 (failed rows are retryable)", len(tolls.inserted))
	}
	if lastStatus(staging) != constants.StagingCompleted {
		t.Errorf("staging status = %v", staging.statuses)
	}
}

func TestProjectorEmptyTransactionsCompletes(t *testing.T) {
	p, staging, tolls, _, _ := newTestProjector(`{"transactions":[]}`)

	if err := p.Project(context.Background(), staging.row.ID); err != nil {
		t.Fatalf("Project: %v", err)
	}
	if len(tolls.inserted) != 0 {
		t.Errorf("inserted = %d, want 0", len(tolls.inserted))
	}
	if lastStatus(staging) != constants.StagingCompleted {
		t.Errorf("staging status = %v", staging.statuses)
	}
}

func TestProjectorBadEntryContinues(t *testing.T) {
	raw := `[
		{"tolling_point":"no date or etag"},
		{"transaction_date":"2026-03-03 10:00:00","etag_id":"E300","net_amount":2.5}
	]`
	p, staging, tolls, _, _ := newTestProjector(raw)

	if err := p.Project(context.Background(), staging.row.ID); err != nil {
		t.Fatalf("Project: %v", err)
	}
	if len(tolls.inserted) != 1 {
		t.Errorf("inserted = %d, want 1", len(tolls.inserted))
	}
	if lastStatus(staging) != constants.StagingCompleted {
		t.Errorf("staging status = %v", staging.statuses)
	}
}

func TestProjectorMalformedResponseFails(t *testing.T) {
	p, staging, _, _, _ := newTestProjector(`"just a string"`)

	err := p.Project(context.Background(), staging.row.ID)
	if !errors.Is(err, common.ErrDocumentProcessing) {
		t.Fatalf("err = %v, want ErrDocumentProcessing", err)
	}
	if lastStatus(staging) != constants.StagingFailed {
		t.Errorf("staging status = %v, want FAILED", staging.statuses)
	}
}

func TestCoerceEntriesShapes(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"bare list", `[{"a":1},{"b":2}]`, 2, false},
		{"transactions wrapper", `{"transactions":[{"a":1}]}`, 1, false},
		{"single object", `{"transaction_date":"2026-01-01"}`, 1, false},
		{"empty list", `[]`, 0, false},
		{"scalar", `42`, 0, true},
		{"list of scalars", `[1,2]`, 0, true},
		{"empty", ``, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceEntries(json.RawMessage(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("want error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("coerceEntries: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestParseTollDate(t *testing.T) {
	if _, err := parseTollDate("2026-03-01 08:15:00"); err != nil {
		t.Errorf("datetime: %v", err)
	}
	if _, err := parseTollDate("2026-03-01"); err != nil {
		t.Errorf("date only: %v", err)
	}
	if _, err := parseTollDate("01/03/2026"); err == nil {
		t.Error("slash format should fail")
	}
	if _, err := parseTollDate(""); err == nil {
		t.Error("empty should fail")
	}
}
