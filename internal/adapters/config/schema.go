package config

import (
	"github.com/glue-viz/gluedeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// registryFile represents the structure of a registry YAML file.
type registryFile struct {
	Version    int           `yaml:"version"`
	Categories []categoryDTO `yaml:"categories"`
}

// categoryDTO represents a category definition in the registry file.
type categoryDTO struct {
	Name         string          `yaml:"name"`
	Info         string          `yaml:"info"`
	Policy       string          `yaml:"policy"`
	Required     bool            `yaml:"required"`
	Dependencies []dependencyDTO `yaml:"dependencies"`
}

// dependencyDTO represents a dependency definition in the registry file.
type dependencyDTO struct {
	Name         string `yaml:"name"`
	Module       string `yaml:"module"`
	Package      string `yaml:"package"`
	CondaPackage string `yaml:"conda_package"`
	MinVersion   string `yaml:"min_version"`
	Info         string `yaml:"info"`
}

// toDomain converts the DTO to a domain.Dependency, applying the defaults:
// module falls back to name, package falls back to name.
func (d dependencyDTO) toDomain() (domain.Dependency, error) {
	if d.Name == "" {
		return domain.Dependency{}, zerr.Wrap(domain.ErrRegistryInvalid, "dependency without a name")
	}

	module := d.Module
	if module == "" {
		module = d.Name
	}
	pkg := d.Package
	if pkg == "" {
		pkg = d.Name
	}

	return domain.Dependency{
		Name:         domain.NewName(d.Name),
		Module:       domain.NewName(module),
		Package:      domain.NewName(pkg),
		CondaPackage: domain.NewName(d.CondaPackage),
		MinVersion:   d.MinVersion,
		Info:         d.Info,
	}, nil
}
