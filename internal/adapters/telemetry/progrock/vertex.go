package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/apkpin/internal/core/domain"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex   *progrock.VertexRecorder
	recorder *Recorder
	once     sync.Once
}

// Stdout returns a writer to capture standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer to capture error output stream.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log records a structured log message associated with this vertex.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "[%s] %s\n", level.String(), msg)
}

// Complete marks the vertex as finished (successfully or with an error).
// Only the first call to Complete or Cached is counted.
func (v *Vertex) Complete(err error) {
	v.once.Do(func() {
		if err != nil {
			v.recorder.failed.Add(1)
		} else {
			v.recorder.completed.Add(1)
		}
		v.vertex.Done(err)
	})
}

// Cached marks the vertex as having nothing to do.
func (v *Vertex) Cached() {
	v.once.Do(func() {
		v.recorder.cached.Add(1)
		v.vertex.Cached()
		v.vertex.Done(nil)
	})
}
