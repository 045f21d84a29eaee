package tolls

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/fleetware/transport-ops/internal/async"
	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/repository"
)

// Enqueuer is the dispatch surface the toll workers need.
type Enqueuer interface {
	Enqueue(ctx context.Context, job async.Job) error
}

// PageWorker sends one completed page image to the provider and stages the
// raw response for projection. A failure at any step is recorded on the
// staging table keyed by the page result, so re-running the job cannot
// leave two failure rows for one page.
type PageWorker struct {
	pages    repository.TollPageResultRepository
	staging  repository.TollsStagingRepository
	enqueuer Enqueuer
	logger   *slog.Logger
}

func NewPageWorker(
	pages repository.TollPageResultRepository,
	staging repository.TollsStagingRepository,
	enqueuer Enqueuer,
	logger *slog.Logger,
) *PageWorker {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageWorker{pages: pages, staging: staging, enqueuer: enqueuer, logger: logger}
}

// HandleJob adapts Process to the queue handler signature.
func (w *PageWorker) HandleJob(ctx context.Context, job async.Job) error {
	payload, ok := job.Payload.(async.TollPageAIPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s job", job.Payload, job.Kind)
	}
	return w.Process(ctx, payload)
}

func (w *PageWorker) Process(ctx context.Context, payload async.TollPageAIPayload) error {
	if err := w.process(ctx, payload); err != nil {
		if uerr := w.staging.UpsertFailed(ctx, payload.CaptureID, payload.PageResultID, err.Error()); uerr != nil {
			w.logger.Error("tolls.page_failure_record_failed",
				"page_result_id", payload.PageResultID, "err", uerr)
		}
		return err
	}
	return nil
}

func (w *PageWorker) process(ctx context.Context, payload async.TollPageAIPayload) error {
	pr, err := w.pages.GetByID(ctx, payload.PageResultID)
	if err != nil {
		return common.DocumentProcessingError("load page result", err)
	}
	if pr.Base64Image == "" {
		return common.DocumentProcessingError("page result carries no image", nil)
	}

	adapter, err := payload.Snapshot.NewAdapter(w.logger)
	if err != nil {
		return err
	}
	prompt := adapter.FormatPrompt(payload.Snapshot.Prompt.Template, payload.Snapshot.Prompt.JSONExample, pr.Base64Image)
	resp, err := adapter.ProcessDocument(ctx, pr.Base64Image, prompt)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return common.ProviderError("encode model response", err)
	}
	st, err := w.staging.Insert(ctx, payload.CaptureID, payload.PageResultID, raw)
	if err != nil {
		return common.DocumentProcessingError("stage model response", err)
	}

	job := async.NewJob(async.KindTollCreate, async.TollCreatePayload{StagingID: st.ID})
	if err := w.enqueuer.Enqueue(ctx, job); err != nil {
		return common.DocumentProcessingError("enqueue toll projection", err)
	}

	w.logger.Info("tolls.page_staged",
		"capture_id", payload.CaptureID,
		"page_result_id", payload.PageResultID,
		"staging_id", st.ID,
	)
	return nil
}
