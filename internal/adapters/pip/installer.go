// Package pip implements the PackageManager port using pip.
package pip

import (
	"context"
	"errors"
	"io"

	"github.com/glue-viz/gluedeps/internal/adapters/shell"
	"github.com/glue-viz/gluedeps/internal/core/domain"
	"github.com/glue-viz/gluedeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer installs packages with `<interpreter> -m pip install`.
// Running pip through the interpreter guarantees packages land in the same
// environment the prober inspects.
type Installer struct {
	interpreter string
	runner      ports.Runner
}

// NewInstaller creates an Installer for the given interpreter.
func NewInstaller(interpreter string, runner ports.Runner) *Installer {
	return &Installer{
		interpreter: interpreter,
		runner:      runner,
	}
}

// Name identifies the installer.
func (i *Installer) Name() string {
	return "pip"
}

// Install installs one dependency's pip distribution.
func (i *Installer) Install(ctx context.Context, dep domain.Dependency, stdout, stderr io.Writer) error {
	tail := shell.NewTailBuffer()
	if stderr == nil {
		stderr = io.Discard
	}

	err := i.runner.Run(ctx, ports.RunSpec{
		Argv:   []string{i.interpreter, "-m", "pip", "install", dep.PipName()},
		Stdout: stdout,
		Stderr: io.MultiWriter(stderr, tail),
	})
	if err != nil {
		installErr := zerr.With(errors.Join(domain.ErrInstallFailed, err), "installer", i.Name())
		installErr = zerr.With(installErr, "package", dep.PipName())
		return zerr.With(installErr, "stderr", tail.String())
	}
	return nil
}

var _ ports.PackageManager = (*Installer)(nil)
