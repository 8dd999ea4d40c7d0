// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"io"

	"github.com/glue-viz/gluedeps/internal/core/ports"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

// Recorder implements ports.Telemetry using a progrock tape. Install
// progress is recorded as vertices and rendered to the output writer when
// the session closes.
type Recorder struct {
	tape *progrock.Tape
	rec  *progrock.Recorder
	out  io.Writer
}

// New creates a Recorder rendering to out on Close.
func New(out io.Writer) *Recorder {
	tape := progrock.NewTape()
	return &Recorder{
		tape: tape,
		rec:  progrock.NewRecorder(tape),
		out:  out,
	}
}

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes the tape and renders it.
func (r *Recorder) Close() error {
	if err := r.tape.Close(); err != nil {
		return err
	}
	if r.out == nil {
		return nil
	}
	return r.tape.Render(r.out, progrock.DefaultUI())
}

var _ ports.Telemetry = (*Recorder)(nil)
