package pipeline

import "context"

// Handler is one stage of the capture pipeline. SetNext returns the linked
// handler so chains read top to bottom:
//
//	configure.SetNext(prepare).SetNext(invoke).SetNext(project)
type Handler interface {
	Handle(ctx context.Context, req *Request) error
	SetNext(next Handler) Handler
}

// base provides the linking plumbing stages embed.
type base struct {
	next Handler
}

func (b *base) SetNext(next Handler) Handler {
	b.next = next
	return next
}

// callNext invokes the next stage, or ends the chain when there is none.
func (b *base) callNext(ctx context.Context, req *Request) error {
	if b.next == nil {
		return nil
	}
	return b.next.Handle(ctx, req)
}
