package pdfpage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/internal/async"
	"github.com/fleetware/transport-ops/internal/entity"
)

type fakeCaptureRepo struct {
	progress  []string
	finalized json.RawMessage
	failedMsg string
}

func (f *fakeCaptureRepo) Create(context.Context, uuid.UUID, *uuid.UUID, string) (*entity.TollCapture, error) {
	return nil, errors.New("not used")
}
func (f *fakeCaptureRepo) GetByID(context.Context, uuid.UUID) (*entity.TollCapture, error) {
	return nil, errors.New("not used")
}
func (f *fakeCaptureRepo) BeginProcessing(context.Context, uuid.UUID, int) error { return nil }
func (f *fakeCaptureRepo) SetProgress(_ context.Context, _ uuid.UUID, progress string) error {
	f.progress = append(f.progress, progress)
	return nil
}
func (f *fakeCaptureRepo) Finalize(_ context.Context, _ uuid.UUID, pages json.RawMessage) error {
	f.finalized = pages
	return nil
}
func (f *fakeCaptureRepo) MarkFailed(_ context.Context, _ uuid.UUID, msg string) error {
	f.failedMsg = msg
	return nil
}

type fakePageRepo struct {
	completed []*entity.TollPageResult
	failed    []*entity.TollPageResult
}

func (f *fakePageRepo) InsertCompleted(_ context.Context, captureID uuid.UUID, page int, b64 string) (*entity.TollPageResult, error) {
	pr := &entity.TollPageResult{
		ID:          uuid.New(),
		CaptureID:   captureID,
		PageNumber:  page,
		Base64Image: b64,
		Status:      constants.PageCompleted,
	}
	f.completed = append(f.completed, pr)
	return pr, nil
}
func (f *fakePageRepo) InsertFailed(_ context.Context, captureID uuid.UUID, page int, msg string) (*entity.TollPageResult, error) {
	pr := &entity.TollPageResult{
		ID:           uuid.New(),
		CaptureID:    captureID,
		PageNumber:   page,
		Status:       constants.PageFailed,
		ErrorMessage: &msg,
	}
	f.failed = append(f.failed, pr)
	return pr, nil
}
func (f *fakePageRepo) GetByID(context.Context, uuid.UUID) (*entity.TollPageResult, error) {
	return nil, errors.New("not used")
}
func (f *fakePageRepo) CountCompleted(context.Context, uuid.UUID) (int, error) {
	return len(f.completed), nil
}
func (f *fakePageRepo) ListCompleted(context.Context, uuid.UUID) ([]*entity.TollPageResult, error) {
	out := append([]*entity.TollPageResult(nil), f.completed...)
	sort.Slice(out, func(i, j int) bool { return out[i].PageNumber < out[j].PageNumber })
	return out, nil
}

type fakeEnqueuer struct {
	jobs []async.Job
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, job async.Job) error {
	f.jobs = append(f.jobs, job)
	return nil
}

func newTestPageWorker() (*PageWorker, *fakeCaptureRepo, *fakePageRepo, *fakeEnqueuer) {
	captures := &fakeCaptureRepo{}
	pages := &fakePageRepo{}
	enq := &fakeEnqueuer{}
	w := NewPageWorker(captures, pages, enq, nil, 150, 1, time.Second, nil)
	w.render = func(_ context.Context, payload async.TollPagePayload) (string, error) {
		return fmt.Sprintf("img-%d", payload.PageNumber), nil
	}
	return w, captures, pages, enq
}

func pagePayload(captureID uuid.UUID, page, total int) async.TollPagePayload {
	return async.TollPagePayload{
		CaptureID:  captureID,
		PageNumber: page,
		PageCount:  total,
	}
}

func TestPageWorkerFinalizesAfterLastPage(t *testing.T) {
	w, captures, pages, enq := newTestPageWorker()
	captureID := uuid.New()

	// Pages land out of order on the long queue.
	for _, page := range []int{2, 3, 1} {
		if err := w.Process(context.Background(), pagePayload(captureID, page, 3)); err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
	}

	wantProgress := []string{"1", "2", "3"}
	if len(captures.progress) != len(wantProgress) {
		t.Fatalf("progress = %v, want %v", captures.progress, wantProgress)
	}
	for i, p := range wantProgress {
		if captures.progress[i] != p {
			t.Errorf("progress[%d] = %q, want %q", i, captures.progress[i], p)
		}
	}

	if captures.finalized == nil {
		t.Fatal("capture never finalized")
	}
	var assembled []entity.ProcessedPage
	if err := json.Unmarshal(captures.finalized, &assembled); err != nil {
		t.Fatalf("processed pages not JSON: %v", err)
	}
	if len(assembled) != 3 {
		t.Fatalf("assembled = %d pages, want 3", len(assembled))
	}
	for i, pg := range assembled {
		if pg.PageNumber != i+1 {
			t.Errorf("assembled[%d].PageNumber = %d, want %d", i, pg.PageNumber, i+1)
		}
		if want := fmt.Sprintf("img-%d", i+1); pg.Base64Image != want {
			t.Errorf("assembled[%d].Base64Image = %q, want %q", i, pg.Base64Image, want)
		}
	}

	if len(enq.jobs) != 3 {
		t.Fatalf("jobs = %d, want 3", len(enq.jobs))
	}
	byResult := map[uuid.UUID]bool{}
	for _, pr := range pages.completed {
		byResult[pr.ID] = true
	}
	for _, job := range enq.jobs {
		if job.Kind != async.KindTollPageAI {
			t.Errorf("job kind = %q", job.Kind)
		}
		payload := job.Payload.(async.TollPageAIPayload)
		if !byResult[payload.PageResultID] {
			t.Errorf("job carries unknown page result %s", payload.PageResultID)
		}
	}
}

func TestPageWorkerNonFinalPageUpdatesProgressOnly(t *testing.T) {
	w, captures, _, enq := newTestPageWorker()

	if err := w.Process(context.Background(), pagePayload(uuid.New(), 1, 5)); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(captures.progress) != 1 || captures.progress[0] != "1" {
		t.Errorf("progress = %v, want [1]", captures.progress)
	}
	if captures.finalized != nil {
		t.Error("capture must not finalize before all pages complete")
	}
	if len(enq.jobs) != 1 || enq.jobs[0].Kind != async.KindTollPageAI {
		t.Errorf("jobs = %+v", enq.jobs)
	}
}

func TestPageWorkerRenderFailureRecordsFailedPage(t *testing.T) {
	w, captures, pages, enq := newTestPageWorker()
	w.render = func(context.Context, async.TollPagePayload) (string, error) {
		return "", errors.New("page render blew up")
	}

	err := w.Process(context.Background(), pagePayload(uuid.New(), 1, 1))
	if err == nil {
		t.Fatal("expected render failure to surface")
	}
	if len(pages.failed) != 1 {
		t.Fatalf("failed pages = %d, want 1", len(pages.failed))
	}
	if pages.failed[0].ErrorMessage == nil || *pages.failed[0].ErrorMessage == "" {
		t.Error("failed page has no error message")
	}
	if captures.finalized != nil {
		t.Error("failed page must not finalize the capture")
	}
	if captures.failedMsg != "" {
		t.Errorf("capture terminalised on page failure: %q", captures.failedMsg)
	}
	if len(captures.progress) != 0 {
		t.Errorf("progress written for failed page: %v", captures.progress)
	}
	if len(enq.jobs) != 0 {
		t.Errorf("failed page must not queue model work, jobs = %+v", enq.jobs)
	}
}
