// Package ports defines the core interfaces for the application.
package ports

import "github.com/glue-viz/gluedeps/internal/core/domain"

// RegistryLoader loads the dependency registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry_loader.go -destination=mocks/mock_registry_loader.go -package=mocks
type RegistryLoader interface {
	// Load returns the dependency registry, either the embedded default or
	// the user-configured override file.
	Load() (*domain.Registry, error)
}
