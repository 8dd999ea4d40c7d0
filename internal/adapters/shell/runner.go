// Package shell provides the subprocess runner adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/glue-viz/gluedeps/internal/core/domain"
	"github.com/glue-viz/gluedeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec.
type Runner struct{}

// NewRunner creates a new subprocess runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the spec and blocks until the process exits.
// The spec environment is merged over the inherited environment; PATH entries
// from the spec are prepended so configured interpreters win over system ones.
func (r *Runner) Run(ctx context.Context, spec ports.RunSpec) error {
	cmd, err := r.command(ctx, spec)
	if err != nil {
		return err
	}

	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = io.Discard
	}
	if cmd.Stderr == nil {
		cmd.Stderr = io.Discard
	}

	if err := cmd.Run(); err != nil {
		return runError(err, spec.Argv[0])
	}
	return nil
}

// Output executes the spec and returns its standard output.
func (r *Runner) Output(ctx context.Context, spec ports.RunSpec) ([]byte, error) {
	cmd, err := r.command(ctx, spec)
	if err != nil {
		return nil, err
	}
	cmd.Stderr = spec.Stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, runError(err, spec.Argv[0])
	}
	return out, nil
}

func (r *Runner) command(ctx context.Context, spec ports.RunSpec) (*exec.Cmd, error) {
	if len(spec.Argv) == 0 {
		return nil, zerr.New("empty command")
	}

	name := spec.Argv[0]
	cmdEnv := mergeEnvironment(os.Environ(), spec.Env)

	// Resolve against the merged PATH so spec-provided entries take effect.
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, spec.Argv[1:]...) //nolint:gosec // argv comes from the registry and configuration
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Dir = spec.Dir
	cmd.Env = cmdEnv
	return cmd, nil
}

func runError(err error, name string) error {
	var exitCode int
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else {
		exitCode = -1 // not started, or killed by signal
	}
	wrapped := zerr.With(errors.Join(domain.ErrLaunchFailed, err), "command", name)
	return zerr.With(wrapped, "exit_code", exitCode)
}

// mergeEnvironment merges extra over base. PATH entries from extra are
// prepended to the base PATH instead of replacing it.
func mergeEnvironment(base, extra []string) []string {
	envMap := make(map[string]string)
	for _, entry := range base {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	for _, entry := range extra {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if basePath, exists := envMap["PATH"]; exists && basePath != "" {
				envMap[k] = v + string(os.PathListSeparator) + basePath
				continue
			}
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the PATH of the given environment.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}

var _ ports.Runner = (*Runner)(nil)
