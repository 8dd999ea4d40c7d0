package ports

import (
	"context"

	"github.com/glue-viz/gluedeps/internal/core/domain"
)

// Prober checks which registry dependencies are importable in the interpreter.
//
//go:generate go run go.uber.org/mock/mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type Prober interface {
	// Probe returns a probe result for every dependency in the registry.
	// With refresh set, any cached results are bypassed.
	Probe(ctx context.Context, registry *domain.Registry, refresh bool) (map[domain.Name]domain.ProbeResult, error)

	// Interpreter returns the path of the Python interpreter being probed,
	// resolving it on first use. Commands that never probe must work on
	// machines without Python.
	Interpreter() (string, error)

	// Invalidate drops any cached probe results, forcing the next Probe to
	// query the interpreter. Called after installs mutate the environment.
	Invalidate() error
}
