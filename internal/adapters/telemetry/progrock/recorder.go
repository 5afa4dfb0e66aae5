// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/apkpin/internal/core/ports"
)

// Summary counts finished vertices by outcome.
type Summary struct {
	Completed int
	Failed    int
	Cached    int
}

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	completed atomic.Int64
	failed    atomic.Int64
	cached    atomic.Int64
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex named after the unit of work, typically a package file path.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	vertex := &Vertex{vertex: v, recorder: r}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Summary returns the outcome counts of all vertices finished so far.
func (r *Recorder) Summary() Summary {
	return Summary{
		Completed: int(r.completed.Load()),
		Failed:    int(r.failed.Load()),
		Cached:    int(r.cached.Load()),
	}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	// If the writer implements Close, call it.
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
