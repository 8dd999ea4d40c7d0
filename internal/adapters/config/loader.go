package config

import (
	_ "embed"
	"errors"
	"os"

	"github.com/glue-viz/gluedeps/internal/core/domain"
	"github.com/glue-viz/gluedeps/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// defaultRegistry is the registry shipped with the binary. It covers the
// dependencies the Glue documentation lists, grouped by what they enable.
//
//go:embed registry.yaml
var defaultRegistry []byte

// RegistryLoader implements ports.RegistryLoader from a YAML registry file,
// falling back to the embedded default when no override is configured.
type RegistryLoader struct {
	path string
}

// NewRegistryLoader creates a loader. path may be empty to use the embedded
// default registry.
func NewRegistryLoader(path string) *RegistryLoader {
	return &RegistryLoader{path: path}
}

// Load parses and validates the registry.
func (l *RegistryLoader) Load() (*domain.Registry, error) {
	data := defaultRegistry
	if l.path != "" {
		var err error
		data, err = os.ReadFile(l.path) //nolint:gosec // path is provided by user configuration
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read registry file")
		}
	}
	return Parse(data)
}

// Parse decodes registry YAML into a validated domain.Registry.
func Parse(data []byte) (*domain.Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(domain.ErrRegistryInvalid, err)
	}
	if len(file.Categories) == 0 {
		return nil, zerr.Wrap(domain.ErrRegistryInvalid, "no categories defined")
	}

	categories := make([]domain.Category, 0, len(file.Categories))
	for _, catDTO := range file.Categories {
		if catDTO.Name == "" {
			return nil, zerr.Wrap(domain.ErrRegistryInvalid, "category without a name")
		}

		policy, err := parsePolicy(catDTO.Policy)
		if err != nil {
			return nil, zerr.With(err, "category", catDTO.Name)
		}

		deps := make([]domain.Dependency, 0, len(catDTO.Dependencies))
		for _, depDTO := range catDTO.Dependencies {
			dep, err := depDTO.toDomain()
			if err != nil {
				return nil, zerr.With(err, "category", catDTO.Name)
			}
			deps = append(deps, dep)
		}

		categories = append(categories, domain.Category{
			Name:         domain.NewName(catDTO.Name),
			Info:         catDTO.Info,
			Policy:       policy,
			Required:     catDTO.Required,
			Dependencies: deps,
		})
	}

	return domain.NewRegistry(categories)
}

func parsePolicy(s string) (domain.Policy, error) {
	switch s {
	case "", string(domain.PolicyAll):
		return domain.PolicyAll, nil
	case string(domain.PolicyAny):
		return domain.PolicyAny, nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrRegistryInvalid, "unknown policy"), "policy", s)
	}
}

var _ ports.RegistryLoader = (*RegistryLoader)(nil)
