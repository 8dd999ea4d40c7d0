package journal

import (
	"context"

	"github.com/glue-viz/gluedeps/internal/adapters/config"
	"github.com/glue-viz/gluedeps/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the journal Graft node.
const NodeID graft.ID = "adapter.journal"

func init() {
	graft.Register(graft.Node[ports.Journal]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Journal, error) {
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings.CacheDir), nil
		},
	})
}
