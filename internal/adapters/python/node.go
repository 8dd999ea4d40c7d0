package python

import (
	"context"

	"github.com/glue-viz/gluedeps/internal/adapters/config"
	"github.com/glue-viz/gluedeps/internal/adapters/logger"
	"github.com/glue-viz/gluedeps/internal/adapters/shell"
	"github.com/glue-viz/gluedeps/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the prober Graft node.
const NodeID graft.ID = "adapter.prober"

func init() {
	graft.Register(graft.Node[ports.Prober]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Prober, error) {
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			// The interpreter resolves lazily inside the prober: building
			// the graph must not fail on machines without Python.
			return NewProber(settings.Interpreter, runner, log, settings.CacheDir), nil
		},
	})
}
