package app

import "github.com/glue-viz/gluedeps/internal/core/ports"

// Components bundles everything main needs after initialization.
type Components struct {
	App    *App
	Logger ports.Logger
}
