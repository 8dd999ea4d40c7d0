package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/zerr"

	"github.com/glue-viz/gluedeps/internal/adapters/conda"     //nolint:depguard // Wired in app layer
	"github.com/glue-viz/gluedeps/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/glue-viz/gluedeps/internal/adapters/journal"   //nolint:depguard // Wired in app layer
	"github.com/glue-viz/gluedeps/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/glue-viz/gluedeps/internal/adapters/pip"       //nolint:depguard // Wired in app layer
	"github.com/glue-viz/gluedeps/internal/adapters/python"    //nolint:depguard // Wired in app layer
	"github.com/glue-viz/gluedeps/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"github.com/glue-viz/gluedeps/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/glue-viz/gluedeps/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			config.NodeID,
			python.NodeID,
			shell.NodeID,
			journal.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[config.Settings](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[ports.RegistryLoader](ctx)
	if err != nil {
		return nil, err
	}
	prober, err := graft.Dep[ports.Prober](ctx)
	if err != nil {
		return nil, err
	}
	runner, err := graft.Dep[ports.Runner](ctx)
	if err != nil {
		return nil, err
	}
	hist, err := graft.Dep[ports.Journal](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tele, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	factory := func(name string) (ports.PackageManager, error) {
		switch name {
		case "pip":
			interpreter, err := prober.Interpreter()
			if err != nil {
				return nil, err
			}
			return pip.NewInstaller(interpreter, runner), nil
		case "conda":
			return conda.NewInstaller(runner), nil
		default:
			return nil, zerr.With(zerr.New("unknown installer"), "installer", name)
		}
	}

	return New(loader, prober, runner, hist, log, tele, factory, settings.Installer), nil
}
