package ports

import (
	"context"
	"io"
)

// RunSpec describes one subprocess invocation.
type RunSpec struct {
	// Argv is the command and its arguments. Argv[0] is resolved against
	// PATH when it is not an absolute path.
	Argv []string

	// Env contains extra environment variables in "KEY=VALUE" form, merged
	// over the inherited environment.
	Env []string

	// Dir is the working directory; empty means the current directory.
	Dir string

	// Stdout and Stderr receive the process output. Nil writers discard.
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes subprocesses on behalf of the package managers and the
// GUI launcher.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes the spec and blocks until the process exits. A non-zero
	// exit reports an error annotated with the exit code.
	Run(ctx context.Context, spec RunSpec) error

	// Output executes the spec and returns its standard output, for short
	// diagnostic invocations like version probes.
	Output(ctx context.Context, spec RunSpec) ([]byte, error)
}
