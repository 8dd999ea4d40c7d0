// Package telemetry provides progress recording implementations.
package telemetry

import (
	"context"
	"io"

	"github.com/glue-viz/gluedeps/internal/core/ports"
)

// Noop is a no-op implementation of ports.Telemetry, used in plain mode and
// in tests.
type Noop struct{}

// NewNoop creates a new Noop telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a vertex that discards everything.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &noopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (n *Noop) Close() error {
	return nil
}

type noopVertex struct{}

func (v *noopVertex) Stdout() io.Writer { return io.Discard }
func (v *noopVertex) Stderr() io.Writer { return io.Discard }
func (v *noopVertex) Complete(error)    {}
func (v *noopVertex) Cached()           {}

var _ ports.Telemetry = (*Noop)(nil)
