// Package conda implements the PackageManager port using the conda CLI.
package conda

import (
	"context"
	"errors"
	"io"

	"github.com/glue-viz/gluedeps/internal/adapters/shell"
	"github.com/glue-viz/gluedeps/internal/core/domain"
	"github.com/glue-viz/gluedeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer installs packages with `conda install --yes`. It targets the
// active conda environment; conda decides which one that is.
type Installer struct {
	runner ports.Runner
}

// NewInstaller creates a conda-backed Installer.
func NewInstaller(runner ports.Runner) *Installer {
	return &Installer{runner: runner}
}

// Name identifies the installer.
func (i *Installer) Name() string {
	return "conda"
}

// Install installs one dependency's conda package.
func (i *Installer) Install(ctx context.Context, dep domain.Dependency, stdout, stderr io.Writer) error {
	tail := shell.NewTailBuffer()
	if stderr == nil {
		stderr = io.Discard
	}

	err := i.runner.Run(ctx, ports.RunSpec{
		Argv:   []string{"conda", "install", "--yes", dep.CondaName()},
		Stdout: stdout,
		Stderr: io.MultiWriter(stderr, tail),
	})
	if err != nil {
		installErr := zerr.With(errors.Join(domain.ErrInstallFailed, err), "installer", i.Name())
		installErr = zerr.With(installErr, "package", dep.CondaName())
		return zerr.With(installErr, "stderr", tail.String())
	}
	return nil
}

var _ ports.PackageManager = (*Installer)(nil)
