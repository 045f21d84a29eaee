package pdfpage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/fleetware/transport-ops/internal/async"
	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/entity"
	"github.com/fleetware/transport-ops/internal/imaging"
	"github.com/fleetware/transport-ops/internal/repository"
)

// PageWorker processes one rasterisation task: render the page, optimise
// it, record the page result, bump progress and hand the page to the AI
// step. A page failure is recorded as a Failed page result and leaves the
// capture in Processing; finalisation only happens when every page
// completed.
type PageWorker struct {
	captures  repository.TollCaptureRepository
	pages     repository.TollPageResultRepository
	enqueuer  Enqueuer
	optimizer *imaging.Optimizer
	dpi       float64
	// Rasterisation holds the whole page bitmap in memory; the semaphore
	// caps how many render at once across the worker pool, and the timeout
	// bounds how long a task may wait for its slot plus render.
	sem           *semaphore.Weighted
	rasterTimeout time.Duration
	render        renderFunc
	logger        *slog.Logger
}

// renderFunc produces the base64 page image for one page task.
type renderFunc func(ctx context.Context, payload async.TollPagePayload) (string, error)

func NewPageWorker(
	captures repository.TollCaptureRepository,
	pages repository.TollPageResultRepository,
	enqueuer Enqueuer,
	optimizer *imaging.Optimizer,
	dpi float64,
	maxConcurrentRasters int64,
	rasterTimeout time.Duration,
	logger *slog.Logger,
) *PageWorker {
	if dpi <= 0 {
		dpi = 150
	}
	if maxConcurrentRasters <= 0 {
		maxConcurrentRasters = 2
	}
	if rasterTimeout <= 0 {
		rasterTimeout = 3 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	w := &PageWorker{
		captures:      captures,
		pages:         pages,
		enqueuer:      enqueuer,
		optimizer:     optimizer,
		dpi:           dpi,
		sem:           semaphore.NewWeighted(maxConcurrentRasters),
		rasterTimeout: rasterTimeout,
		logger:        logger,
	}
	w.render = w.renderPage
	return w
}

// HandleJob adapts Process to the queue handler signature.
func (w *PageWorker) HandleJob(ctx context.Context, job async.Job) error {
	payload, ok := job.Payload.(async.TollPagePayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s job", job.Payload, job.Kind)
	}
	return w.Process(ctx, payload)
}

func (w *PageWorker) Process(ctx context.Context, payload async.TollPagePayload) error {
	b64, err := w.render(ctx, payload)
	if err != nil {
		if _, ierr := w.pages.InsertFailed(ctx, payload.CaptureID, payload.PageNumber, err.Error()); ierr != nil {
			w.logger.Error("pdfpage.record_failure_failed",
				"capture_id", payload.CaptureID, "page", payload.PageNumber, "err", ierr)
		}
		return err
	}

	pr, err := w.pages.InsertCompleted(ctx, payload.CaptureID, payload.PageNumber, b64)
	if err != nil {
		return err
	}

	done, err := w.pages.CountCompleted(ctx, payload.CaptureID)
	if err != nil {
		return err
	}
	if err := w.captures.SetProgress(ctx, payload.CaptureID, strconv.Itoa(done)); err != nil {
		w.logger.Warn("pdfpage.progress_update_failed", "capture_id", payload.CaptureID, "err", err)
	}
	if done == payload.PageCount {
		if err := w.finalize(ctx, payload); err != nil {
			return err
		}
	}

	job := async.NewJob(async.KindTollPageAI, async.TollPageAIPayload{
		CaptureID:    payload.CaptureID,
		PageResultID: pr.ID,
		Snapshot:     payload.Snapshot,
	})
	if err := w.enqueuer.Enqueue(ctx, job); err != nil {
		return common.DocumentProcessingError("enqueue page ai task", err)
	}

	w.logger.Info("pdfpage.page_done",
		"capture_id", payload.CaptureID, "page", payload.PageNumber,
		"completed", done, "total", payload.PageCount)
	return nil
}

// renderPage rasterises and optimises the page and returns the base64
// payload for the model call.
func (w *PageWorker) renderPage(ctx context.Context, payload async.TollPagePayload) (string, error) {
	ctx, cancel := common.WithTimeout(ctx, w.rasterTimeout)
	defer cancel()

	if err := w.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	rasterPath, err := Rasterize(payload.PDFPath, payload.ScratchDir, payload.PageNumber, w.dpi)
	w.sem.Release(1)
	if err != nil {
		return "", err
	}

	res, err := w.optimizer.Optimize(rasterPath, imaging.PageOptimizedName(payload.ScratchDir, payload.PageNumber))
	if err != nil {
		return "", err
	}
	b64, err := imaging.ReadBase64(res.Path)
	if err != nil {
		return "", common.DocumentProcessingError("encode optimized page", err)
	}
	return b64, nil
}

// finalize assembles the page-ordered artefact and completes the capture.
// Two workers finishing the last pages together may both run this; the
// assembled content is identical, so the double write is harmless.
func (w *PageWorker) finalize(ctx context.Context, payload async.TollPagePayload) error {
	results, err := w.pages.ListCompleted(ctx, payload.CaptureID)
	if err != nil {
		return err
	}
	pages := make([]entity.ProcessedPage, len(results))
	for i, pr := range results {
		pages[i] = entity.ProcessedPage{PageNumber: pr.PageNumber, Base64Image: pr.Base64Image}
	}
	raw, err := json.Marshal(pages)
	if err != nil {
		return common.DocumentProcessingError("assemble processed pages", err)
	}
	return w.captures.Finalize(ctx, payload.CaptureID, raw)
}
