package config

import (
	"context"

	"github.com/glue-viz/gluedeps/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// SettingsNodeID is the unique identifier for the settings Graft node.
	SettingsNodeID graft.ID = "adapter.settings"
	// NodeID is the unique identifier for the registry loader Graft node.
	NodeID graft.ID = "adapter.registry_loader"
)

func init() {
	graft.Register(graft.Node[Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Settings, error) {
			return LoadSettings()
		},
	})

	graft.Register(graft.Node[ports.RegistryLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{SettingsNodeID},
		Run: func(ctx context.Context) (ports.RegistryLoader, error) {
			settings, err := graft.Dep[Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistryLoader(settings.Registry), nil
		},
	})
}
