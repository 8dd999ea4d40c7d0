package python

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/glue-viz/gluedeps/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// probeCacheTTL bounds how long probe results are reused. Interpreter
	// startup dominates probe latency on large environments, so results are
	// cached briefly; installs from outside this tool show up after expiry.
	probeCacheTTL = 15 * time.Minute

	cachePrefix = "probe-"
	dirPerm     = 0o750
	filePerm    = 0o600
)

// probeCache persists probe results as one JSON file per cache key.
type probeCache struct {
	dir string
}

func newProbeCache(dir string) *probeCache {
	return &probeCache{dir: dir}
}

// cacheEntry is the on-disk probe cache format.
type cacheEntry struct {
	Interpreter string                        `json:"interpreter"`
	Created     time.Time                     `json:"created"`
	Results     map[string]domain.ProbeResult `json:"results"`
}

// cacheKey fingerprints the interpreter and the registry contents, so a
// changed registry or interpreter never reuses stale results.
func cacheKey(interpreter string, registry *domain.Registry) string {
	h := xxhash.New()
	_, _ = h.WriteString(interpreter)
	_, _ = h.Write([]byte{0})
	for cat := range registry.Walk() {
		_, _ = h.WriteString(cat.Name.String())
		_, _ = h.Write([]byte{0})
		for _, dep := range cat.Dependencies {
			_, _ = h.WriteString(dep.Name.String())
			_, _ = h.WriteString(dep.Module.String())
			_, _ = h.WriteString(dep.PipName())
			_, _ = h.Write([]byte{0})
		}
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

func (c *probeCache) path(key string) string {
	return filepath.Join(c.dir, cachePrefix+key+".json")
}

// load returns cached results for the key when present and fresh.
func (c *probeCache) load(key string) (map[domain.Name]domain.ProbeResult, bool) {
	data, err := os.ReadFile(c.path(key)) //nolint:gosec // path is built from the cache dir and a hash
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	if time.Since(entry.Created) > probeCacheTTL {
		return nil, false
	}

	results := make(map[domain.Name]domain.ProbeResult, len(entry.Results))
	for name, result := range entry.Results {
		results[domain.NewName(name)] = result
	}
	return results, true
}

// store writes results for the key atomically.
func (c *probeCache) store(key, interpreter string, results map[domain.Name]domain.ProbeResult) error {
	serializable := make(map[string]domain.ProbeResult, len(results))
	for name, result := range results {
		serializable[name.String()] = result
	}

	entry := cacheEntry{
		Interpreter: interpreter,
		Created:     time.Now(),
		Results:     serializable,
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal probe cache")
	}

	if err := os.MkdirAll(c.dir, dirPerm); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	tmp, err := os.CreateTemp(c.dir, cachePrefix+"*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create cache temp file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to write probe cache")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to close cache temp file")
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to chmod probe cache")
	}
	return os.Rename(tmpName, c.path(key))
}

// clear removes every probe cache file.
func (c *probeCache) clear() error {
	matches, err := filepath.Glob(filepath.Join(c.dir, cachePrefix+"*.json"))
	if err != nil {
		return zerr.Wrap(err, "failed to list probe cache")
	}
	for _, match := range matches {
		if err := os.Remove(match); err != nil && !os.IsNotExist(err) {
			return zerr.Wrap(err, "failed to remove probe cache file")
		}
	}
	return nil
}
