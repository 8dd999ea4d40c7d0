package telemetry

import (
	"context"

	"github.com/glue-viz/gluedeps/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the telemetry Graft node.
//
// The graph wires the no-op recorder; the install command swaps in the
// progrock recorder when progress rendering is enabled, since that decision
// depends on command-line flags and the terminal.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return NewNoop(), nil
		},
	})
}
