package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kind names a job type; each kind is routed to exactly one worker queue.
type Kind string

const (
	KindDeliveryNote Kind = "delivery_note" // full chain for one DNC
	KindTollFanout   Kind = "toll_fanout"   // page count + page task enqueue
	KindTollPage     Kind = "toll_page"     // rasterise + optimise one page
	KindTollPageAI   Kind = "toll_page_ai"  // provider call → staging row
	KindTollCreate   Kind = "toll_create"   // staging → toll projection
)

// Job is the unit of queued work. Payload carries the config snapshots so
// workers never observe mid-flight configuration edits.
type Job struct {
	ID          uuid.UUID
	Kind        Kind
	Payload     any
	SubmittedAt time.Time
	TraceID     string
}

// NewJob stamps id and submission time on a payload.
func NewJob(kind Kind, payload any) Job {
	id := uuid.New()
	return Job{
		ID:          id,
		Kind:        kind,
		Payload:     payload,
		SubmittedAt: time.Now(),
		TraceID:     id.String(),
	}
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Handler executes one job.
type Handler func(ctx context.Context, job Job) error
