package tolls

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/internal/async"
	"github.com/fleetware/transport-ops/internal/entity"
	"github.com/fleetware/transport-ops/internal/provider"
)

type fakePageRepo struct {
	page *entity.TollPageResult
}

func (f *fakePageRepo) InsertCompleted(context.Context, uuid.UUID, int, string) (*entity.TollPageResult, error) {
	return nil, nil
}
func (f *fakePageRepo) InsertFailed(context.Context, uuid.UUID, int, string) (*entity.TollPageResult, error) {
	return nil, nil
}
func (f *fakePageRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.TollPageResult, error) {
	return f.page, nil
}
func (f *fakePageRepo) CountCompleted(context.Context, uuid.UUID) (int, error) { return 0, nil }
func (f *fakePageRepo) ListCompleted(context.Context, uuid.UUID) ([]*entity.TollPageResult, error) {
	return nil, nil
}

type fakeEnqueuer struct {
	jobs []async.Job
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, job async.Job) error {
	f.jobs = append(f.jobs, job)
	return nil
}

func pageSnapshot(baseURL string) provider.Snapshot {
	return provider.Snapshot{
		Enabled: true,
		Family:  constants.FamilyOpenAI,
		Settings: provider.Settings{
			BaseURL:    baseURL,
			Model:      "test-model",
			APIKey:     "sk-test",
			Timeout:    5 * time.Second,
			MaxRetries: 1,
			BaseDelay:  time.Millisecond,
		},
		Prompt: provider.Prompt{
			Function: constants.KindToll,
			Template: "Extract toll rows.",
		},
	}
}

func modelServer(t *testing.T, statusCode int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if statusCode != http.StatusOK {
			w.WriteHeader(statusCode)
			return
		}
		reply, _ := json.Marshal(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		})
		w.Write(reply)
	}))
}

func TestPageWorkerStagesResponse(t *testing.T) {
	srv := modelServer(t, http.StatusOK, `{"transactions":[{"etag_id":"E1","net_amount":2.5}]}`)
	defer srv.Close()

	captureID := uuid.New()
	pages := &fakePageRepo{page: &entity.TollPageResult{
		ID:          uuid.New(),
		CaptureID:   captureID,
		PageNumber:  1,
		Base64Image: "AAAA",
		Status:      constants.PageCompleted,
	}}
	staging := &fakeStagingRepo{}
	enq := &fakeEnqueuer{}
	w := NewPageWorker(pages, staging, enq, nil)

	err := w.Process(context.Background(), async.TollPageAIPayload{
		CaptureID:    captureID,
		PageResultID: pages.page.ID,
		Snapshot:     pageSnapshot(srv.URL),
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if staging.row == nil {
		t.Fatal("no staging row inserted")
	}
	if staging.row.CaptureID != captureID || staging.row.PageResultID != pages.page.ID {
		t.Errorf("staging keys = %+v", staging.row)
	}
	var decoded map[string]any
	if err := json.Unmarshal(staging.row.AIResponse, &decoded); err != nil {
		t.Fatalf("staged response not JSON: %v", err)
	}
	if _, ok := decoded["transactions"]; !ok {
		t.Errorf("staged response = %s", staging.row.AIResponse)
	}

	if len(enq.jobs) != 1 || enq.jobs[0].Kind != async.KindTollCreate {
		t.Fatalf("jobs = %+v", enq.jobs)
	}
	payload := enq.jobs[0].Payload.(async.TollCreatePayload)
	if payload.StagingID != staging.row.ID {
		t.Errorf("staging id not carried to projection job")
	}
}

func TestPageWorkerProviderFailureRecorded(t *testing.T) {
	srv := modelServer(t, http.StatusInternalServerError, "")
	defer srv.Close()

	pages := &fakePageRepo{page: &entity.TollPageResult{
		ID:          uuid.New(),
		Base64Image: "AAAA",
		Status:      constants.PageCompleted,
	}}
	staging := &fakeStagingRepo{}
	enq := &fakeEnqueuer{}
	w := NewPageWorker(pages, staging, enq, nil)

	err := w.Process(context.Background(), async.TollPageAIPayload{
		CaptureID:    uuid.New(),
		PageResultID: pages.page.ID,
		Snapshot:     pageSnapshot(srv.URL),
	})
	if err == nil {
		t.Fatal("expected provider failure")
	}
	if staging.upsertMsg == "" {
		t.Error("failure not recorded on staging")
	}
	if len(enq.jobs) != 0 {
		t.Errorf("failed page must not queue projection, jobs = %+v", enq.jobs)
	}
}

func TestPageWorkerEmptyImageRecorded(t *testing.T) {
	pages := &fakePageRepo{page: &entity.TollPageResult{
		ID:     uuid.New(),
		Status: constants.PageCompleted,
	}}
	staging := &fakeStagingRepo{}
	w := NewPageWorker(pages, staging, &fakeEnqueuer{}, nil)

	err := w.Process(context.Background(), async.TollPageAIPayload{
		CaptureID:    uuid.New(),
		PageResultID: pages.page.ID,
		Snapshot:     pageSnapshot("http://unused.local"),
	})
	if err == nil {
		t.Fatal("expected error for imageless page")
	}
	if staging.upsertMsg == "" {
		t.Error("failure not recorded on staging")
	}
}
