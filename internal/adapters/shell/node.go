package shell

import (
	"context"

	"github.com/glue-viz/gluedeps/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.Runner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Runner, error) {
			return NewRunner(), nil
		},
	})
}
