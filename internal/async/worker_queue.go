package async

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"golang.org/x/time/rate"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/internal/common"
)

// WorkerQueue is a channel-backed pool of workers consuming one named
// queue. Execution inside a worker is sequential; parallelism comes from
// the worker count. An optional rate limiter gates job starts (used on
// toll_creation to keep provider traffic inside quota).
type WorkerQueue struct {
	name     constants.QueueName
	handlers map[Kind]Handler
	logger   *slog.Logger
	workers  int
	timeout  time.Duration
	limiter  *rate.Limiter

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*WorkerQueue)

func WithWorkers(n int) Option {
	return func(q *WorkerQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *WorkerQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *WorkerQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// WithRateLimit gates job starts at r per second with the given burst.
func WithRateLimit(r float64, burst int) Option {
	return func(q *WorkerQueue) {
		if r > 0 {
			if burst < 1 {
				burst = 1
			}
			q.limiter = rate.NewLimiter(rate.Limit(r), burst)
		}
	}
}

func NewWorkerQueue(name constants.QueueName, handlers map[Kind]Handler, logger *slog.Logger, opts ...Option) *WorkerQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &WorkerQueue{
		name:     name,
		handlers: handlers,
		logger:   logger,
		workers:  4,
		timeout:  3 * time.Minute,
		ch:       make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *WorkerQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "queue", q.name, "worker_id", workerID)

				for job := range q.ch {
					q.run(workerID, job)
				}

				q.logger.Info("worker stopped", "queue", q.name, "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *WorkerQueue) run(workerID int, job Job) {
	if q.limiter != nil {
		if err := q.limiter.Wait(context.Background()); err != nil {
			q.logger.Error("rate limiter wait failed", "queue", q.name, "job_id", job.ID, "error", err)
			return
		}
	}

	handler, ok := q.handlers[job.Kind]
	if !ok {
		q.logger.Error("no handler for job kind", "queue", q.name, "kind", job.Kind, "job_id", job.ID)
		return
	}

	ctx, cancel := common.WithTimeout(common.WithRequestID(context.Background(), job.TraceID), q.timeout)
	start := time.Now()
	err := handler(ctx, job)
	cancel()

	if err != nil {
		q.logger.Error("job failed",
			"queue", q.name, "worker_id", workerID,
			"kind", job.Kind, "job_id", job.ID,
			"elapsed_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return
	}
	q.logger.Info("job done",
		"queue", q.name, "worker_id", workerID,
		"kind", job.Kind, "job_id", job.ID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}

func (q *WorkerQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "queue", q.name, "job_id", job.ID)
		return fmt.Errorf("queue %s is shut down", q.name)
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued job", "queue", q.name, "kind", job.Kind, "job_id", job.ID)
	default:
		q.logger.Warn("queue full, applying backpressure", "queue", q.name, "job_id", job.ID)
		q.ch <- job
	}
	return nil
}

func (q *WorkerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context", "queue", q.name)
	case <-done:
		q.logger.Info("queue drained, shutdown complete", "queue", q.name)
	}
}
