// Package discovery defines the boundary to the external collaborator that
// finds job postings. The collaborator pushes events one at a time, in
// arrival order, synchronously; the pipeline never sees two postings at once.
package discovery

import (
	"context"

	"github.com/jobsift/jobsift/internal/model"
)

// Metrics is the informational per-batch signal. It carries counts only and
// changes no pipeline state.
type Metrics struct {
	Processed int // postings delivered so far
	Failed    int // postings the collaborator could not extract
	Skipped   int // postings the collaborator chose not to deliver
}

// Listener receives discovery events. OnData is fired once per posting;
// OnMetrics once per batch; OnError on a discovery-level problem (the stream
// continues); OnEnd exactly once when the stream is done.
type Listener interface {
	OnData(ctx context.Context, p model.Posting) error
	OnMetrics(m Metrics)
	OnError(err error)
	OnEnd()
}

// Source drives a Listener until the posting stream is exhausted or ctx is
// cancelled. Run blocks for the whole stream.
type Source interface {
	Run(ctx context.Context, l Listener) error
}
