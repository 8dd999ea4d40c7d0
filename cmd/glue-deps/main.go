// Package main is the entry point for the glue-deps helper.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/glue-viz/gluedeps/cmd/glue-deps/commands"
	"github.com/glue-viz/gluedeps/internal/app"
	"github.com/glue-viz/gluedeps/internal/core/domain"
	_ "github.com/glue-viz/gluedeps/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrInstallFailed) {
			// The install summary already reported the failures.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
