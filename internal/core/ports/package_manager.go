package ports

import (
	"context"
	"io"

	"github.com/glue-viz/gluedeps/internal/core/domain"
)

// PackageManager installs packages into the interpreter's environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// Name identifies the installer ("pip" or "conda").
	Name() string

	// Install installs a single dependency, streaming installer output to
	// stdout and stderr. It returns an error carrying the exit code and a
	// stderr tail when the installer fails.
	Install(ctx context.Context, dep domain.Dependency, stdout, stderr io.Writer) error
}
