package async

import (
	"context"
	"fmt"
	"sync"
)

// Dispatcher routes jobs to the queue registered for their kind. Services
// hold the dispatcher so wiring order does not matter: queues register
// their kinds after construction.
type Dispatcher struct {
	mu     sync.RWMutex
	routes map[Kind]Queue
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{routes: make(map[Kind]Queue)}
}

// Route binds kinds to a queue, replacing any previous binding.
func (d *Dispatcher) Route(q Queue, kinds ...Kind) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, k := range kinds {
		d.routes[k] = q
	}
}

func (d *Dispatcher) Enqueue(ctx context.Context, job Job) error {
	d.mu.RLock()
	q, ok := d.routes[job.Kind]
	d.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no queue routed for job kind %q", job.Kind)
	}
	return q.Enqueue(ctx, job)
}

// Shutdown drains every distinct routed queue.
func (d *Dispatcher) Shutdown(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	seen := make(map[Queue]struct{})
	for _, q := range d.routes {
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		q.Shutdown(ctx)
	}
}
