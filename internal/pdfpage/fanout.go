package pdfpage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fleetware/transport-ops/internal/async"
	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/repository"
)

// Enqueuer is the dispatch surface the fan-out needs.
type Enqueuer interface {
	Enqueue(ctx context.Context, job async.Job) error
}

// Fanout splits a toll PDF into independent page tasks. It counts pages,
// moves the capture to Processing with the page total, then enqueues one
// job per page. Page tasks run in any order on the long queue.
type Fanout struct {
	captures    repository.TollCaptureRepository
	enqueuer    Enqueuer
	scratchRoot string
	logger      *slog.Logger
}

func NewFanout(captures repository.TollCaptureRepository, enqueuer Enqueuer, scratchRoot string, logger *slog.Logger) *Fanout {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fanout{captures: captures, enqueuer: enqueuer, scratchRoot: scratchRoot, logger: logger}
}

// HandleJob adapts Start to the queue handler signature.
func (f *Fanout) HandleJob(ctx context.Context, job async.Job) error {
	payload, ok := job.Payload.(async.TollFanoutPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s job", job.Payload, job.Kind)
	}
	return f.Start(ctx, payload)
}

// Start fans one capture out into page tasks. Failures before any page is
// queued terminalise the capture.
func (f *Fanout) Start(ctx context.Context, payload async.TollFanoutPayload) error {
	cap, err := f.captures.GetByID(ctx, payload.CaptureID)
	if err != nil {
		return common.DocumentProcessingError("load toll capture", err)
	}

	total, err := PageCount(cap.FilePath)
	if err != nil {
		return f.fail(ctx, cap.ID, err)
	}
	if total == 0 {
		return f.fail(ctx, cap.ID, common.DocumentProcessingError("pdf has no pages", nil))
	}

	scratch := filepath.Join(f.scratchRoot, cap.ID.String())
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return f.fail(ctx, cap.ID, common.DocumentProcessingError("create scratch dir", err))
	}

	if err := f.captures.BeginProcessing(ctx, cap.ID, total); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for page := 1; page <= total; page++ {
		g.Go(func() error {
			return f.enqueuer.Enqueue(gctx, async.NewJob(async.KindTollPage, async.TollPagePayload{
				CaptureID:  cap.ID,
				PageNumber: page,
				PageCount:  total,
				PDFPath:    cap.FilePath,
				ScratchDir: scratch,
				Snapshot:   payload.Snapshot,
			}))
		})
	}
	if err := g.Wait(); err != nil {
		return f.fail(ctx, cap.ID, common.DocumentProcessingError("enqueue page tasks", err))
	}

	f.logger.Info("pdfpage.fanout", "capture_id", cap.ID, "pages", total)
	return nil
}

func (f *Fanout) fail(ctx context.Context, id uuid.UUID, err error) error {
	if merr := f.captures.MarkFailed(ctx, id, err.Error()); merr != nil {
		f.logger.Error("pdfpage.fanout_fail_transition_failed", "capture_id", id, "err", merr)
	}
	return err
}
