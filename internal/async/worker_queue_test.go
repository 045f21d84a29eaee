package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fleetware/transport-ops/internal/common"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWorkerQueueRunsHandler(t *testing.T) {
	done := make(chan Job, 1)
	q := NewWorkerQueue("default", map[Kind]Handler{
		KindDeliveryNote: func(ctx context.Context, job Job) error {
			done <- job
			return nil
		},
	}, quietLogger(), WithWorkers(1))
	defer q.Shutdown(context.Background())

	job := NewJob(KindDeliveryNote, "payload")
	if err := q.Enqueue(context.Background(), job); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	select {
	case got := <-done:
		if got.ID != job.ID {
			t.Errorf("ran job %s, want %s", got.ID, job.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler never ran")
	}
}

func TestWorkerQueueStampsRequestID(t *testing.T) {
	got := make(chan string, 1)
	q := NewWorkerQueue("default", map[Kind]Handler{
		KindDeliveryNote: func(ctx context.Context, job Job) error {
			got <- common.RequestIDFromContext(ctx)
			return nil
		},
	}, quietLogger(), WithWorkers(1))
	defer q.Shutdown(context.Background())

	job := NewJob(KindDeliveryNote, nil)
	if err := q.Enqueue(context.Background(), job); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	select {
	case id := <-got:
		if id != job.TraceID {
			t.Errorf("request id = %q, want trace id %q", id, job.TraceID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler never ran")
	}
}

func TestWorkerQueueShutdownDrains(t *testing.T) {
	var ran atomic.Int32
	var mu sync.Mutex
	started := false

	q := NewWorkerQueue("default", map[Kind]Handler{
		KindDeliveryNote: func(ctx context.Context, job Job) error {
			mu.Lock()
			started = true
			mu.Unlock()
			time.Sleep(20 * time.Millisecond)
			ran.Add(1)
			return nil
		},
	}, quietLogger(), WithWorkers(1))

	for i := 0; i < 5; i++ {
		if err := q.Enqueue(context.Background(), NewJob(KindDeliveryNote, i)); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	q.Shutdown(context.Background())

	if n := ran.Load(); n != 5 {
		t.Errorf("ran = %d, want all 5 drained before shutdown returned", n)
	}
	mu.Lock()
	defer mu.Unlock()
	if !started {
		t.Error("no job ever started")
	}

	if err := q.Enqueue(context.Background(), NewJob(KindDeliveryNote, nil)); err == nil {
		t.Error("enqueue after shutdown must fail")
	}
}

func TestWorkerQueueHandlerErrorDoesNotStopWorkers(t *testing.T) {
	done := make(chan struct{}, 2)
	q := NewWorkerQueue("default", map[Kind]Handler{
		KindDeliveryNote: func(ctx context.Context, job Job) error {
			done <- struct{}{}
			return errors.New("boom")
		},
	}, quietLogger(), WithWorkers(1))
	defer q.Shutdown(context.Background())

	for i := 0; i < 2; i++ {
		if err := q.Enqueue(context.Background(), NewJob(KindDeliveryNote, i)); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("job %d never ran after earlier failure", i)
		}
	}
}

func TestWorkerQueueRateLimitSpacesJobs(t *testing.T) {
	var times []time.Time
	var mu sync.Mutex
	finished := make(chan struct{}, 3)

	q := NewWorkerQueue("toll_creation", map[Kind]Handler{
		KindTollCreate: func(ctx context.Context, job Job) error {
			mu.Lock()
			times = append(times, time.Now())
			mu.Unlock()
			finished <- struct{}{}
			return nil
		},
	}, quietLogger(), WithWorkers(1), WithRateLimit(20, 1))
	defer q.Shutdown(context.Background())

	for i := 0; i < 3; i++ {
		if err := q.Enqueue(context.Background(), NewJob(KindTollCreate, i)); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		select {
		case <-finished:
		case <-time.After(5 * time.Second):
			t.Fatal("rate-limited jobs never finished")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	// 20/s with burst 1 leaves at least ~50ms between starts; allow slack.
	if gap := times[2].Sub(times[0]); gap < 60*time.Millisecond {
		t.Errorf("three jobs started within %v, limiter not applied", gap)
	}
}

func TestDispatcherRouting(t *testing.T) {
	defaultQ := &recordingQueue{}
	longQ := &recordingQueue{}

	d := NewDispatcher()
	d.Route(defaultQ, KindDeliveryNote)
	d.Route(longQ, KindTollFanout, KindTollPage, KindTollPageAI)

	if err := d.Enqueue(context.Background(), NewJob(KindDeliveryNote, nil)); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if err := d.Enqueue(context.Background(), NewJob(KindTollPage, nil)); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	if len(defaultQ.jobs) != 1 || defaultQ.jobs[0].Kind != KindDeliveryNote {
		t.Errorf("default queue jobs = %v", defaultQ.jobs)
	}
	if len(longQ.jobs) != 1 || longQ.jobs[0].Kind != KindTollPage {
		t.Errorf("long queue jobs = %v", longQ.jobs)
	}

	if err := d.Enqueue(context.Background(), NewJob(KindTollCreate, nil)); err == nil {
		t.Error("unrouted kind must error")
	}
}

func TestDispatcherShutdownHitsEachQueueOnce(t *testing.T) {
	q := &recordingQueue{}
	d := NewDispatcher()
	d.Route(q, KindTollFanout, KindTollPage)

	d.Shutdown(context.Background())
	if q.shutdowns != 1 {
		t.Errorf("shutdowns = %d, want 1 for a queue routed twice", q.shutdowns)
	}
}

type recordingQueue struct {
	jobs      []Job
	shutdowns int
}

func (q *recordingQueue) Enqueue(_ context.Context, job Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingQueue) Shutdown(context.Context) { q.shutdowns++ }
