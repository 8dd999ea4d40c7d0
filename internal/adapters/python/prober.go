package python

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"sync"

	"github.com/glue-viz/gluedeps/internal/core/domain"
	"github.com/glue-viz/gluedeps/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// probeSnippet imports one module inside the interpreter and always prints a
// JSON result on stdout. The version comes from the module's __version__,
// falling back to the distribution metadata.
const probeSnippet = `
import json
try:
    import importlib
    m = importlib.import_module(%q)
    v = getattr(m, "__version__", "")
    if not v:
        try:
            from importlib import metadata
            v = metadata.version(%q)
        except Exception:
            v = ""
    print(json.dumps({"installed": True, "version": str(v)}))
except Exception as e:
    print(json.dumps({"installed": False, "detail": str(e)}))
`

// Prober implements ports.Prober by importing each registry module in a
// subprocess of the configured interpreter.
type Prober struct {
	interpreter func() (string, error)
	runner      ports.Runner
	cache       *probeCache
	logger      ports.Logger
}

// NewProber creates a Prober for the configured interpreter; an empty
// interpreter means autodetect. Resolution happens lazily on first use so
// commands that never probe work on machines without Python. cacheDir holds
// the probe cache; an empty cacheDir disables caching.
func NewProber(interpreter string, runner ports.Runner, logger ports.Logger, cacheDir string) *Prober {
	var cache *probeCache
	if cacheDir != "" {
		cache = newProbeCache(cacheDir)
	}
	return &Prober{
		interpreter: sync.OnceValues(func() (string, error) {
			return FindInterpreter(interpreter)
		}),
		runner: runner,
		cache:  cache,
		logger: logger,
	}
}

// Interpreter resolves and returns the interpreter path being probed.
func (p *Prober) Interpreter() (string, error) {
	return p.interpreter()
}

// Probe returns a probe result for every dependency in the registry.
// Modules are probed concurrently, one interpreter subprocess each.
func (p *Prober) Probe(ctx context.Context, registry *domain.Registry, refresh bool) (map[domain.Name]domain.ProbeResult, error) {
	interpreter, err := p.interpreter()
	if err != nil {
		return nil, err
	}

	key := cacheKey(interpreter, registry)
	if !refresh && p.cache != nil {
		if results, ok := p.cache.load(key); ok {
			return results, nil
		}
	}

	results := make(map[domain.Name]domain.ProbeResult, registry.Len())
	var mu sync.Mutex

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for cat := range registry.Walk() {
		for _, dep := range cat.Dependencies {
			g.Go(func() error {
				result, err := p.probeOne(groupCtx, interpreter, dep)
				if err != nil {
					return err
				}
				mu.Lock()
				results[dep.Name] = result
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.store(key, interpreter, results); err != nil {
			// A stale or unwritable cache must not fail the probe.
			p.logger.Warn("failed to write probe cache: " + err.Error())
		}
	}
	return results, nil
}

// Invalidate drops cached probe results.
func (p *Prober) Invalidate() error {
	if p.cache == nil {
		return nil
	}
	return p.cache.clear()
}

func (p *Prober) probeOne(ctx context.Context, interpreter string, dep domain.Dependency) (domain.ProbeResult, error) {
	snippet := fmt.Sprintf(probeSnippet, dep.Module.String(), dep.PipName())
	out, err := p.runner.Output(ctx, ports.RunSpec{
		Argv: []string{interpreter, "-c", snippet},
	})
	if err != nil {
		// The snippet never exits non-zero; a failure here means the
		// interpreter itself could not run.
		probeErr := zerr.Wrap(err, "failed to run interpreter probe")
		probeErr = zerr.With(probeErr, "interpreter", interpreter)
		return domain.ProbeResult{}, zerr.With(probeErr, "module", dep.Module.String())
	}

	var result domain.ProbeResult
	if err := json.Unmarshal(out, &result); err != nil {
		parseErr := zerr.Wrap(err, "failed to parse probe output")
		return domain.ProbeResult{}, zerr.With(parseErr, "module", dep.Module.String())
	}
	return result, nil
}

var _ ports.Prober = (*Prober)(nil)
