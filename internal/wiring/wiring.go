// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/glue-viz/gluedeps/internal/adapters/config"
	_ "github.com/glue-viz/gluedeps/internal/adapters/journal"
	_ "github.com/glue-viz/gluedeps/internal/adapters/logger"
	_ "github.com/glue-viz/gluedeps/internal/adapters/python"
	_ "github.com/glue-viz/gluedeps/internal/adapters/shell"
	_ "github.com/glue-viz/gluedeps/internal/adapters/telemetry"
	// Register app nodes.
	_ "github.com/glue-viz/gluedeps/internal/app"
)
