// Package main is the Glue GUI launcher. It verifies the required
// dependencies and hands control to the Python entry point.
package main

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/spf13/cobra"

	"github.com/glue-viz/gluedeps/internal/app"
	"github.com/glue-viz/gluedeps/internal/build"
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
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	rootCmd := newRootCmd(components.App)
	rootCmd.SetContext(ctx)
	if err := rootCmd.Execute(); err != nil {
		// The GUI's own exit code wins when it started but failed.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}

func newRootCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glue [flags] [-- args...]",
		Short: "Launch the Glue data visualization application",
		Long: `Launch the Glue GUI. Required dependencies are verified first; use
glue-deps to inspect or install them. Everything after "--" is forwarded
untouched to the application (try "glue -- --help").`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			noCheck, _ := cmd.Flags().GetBool("no-check")
			return a.Launch(cmd.Context(), args, app.LaunchOptions{
				NoCheck: noCheck,
				Stdout:  os.Stdout,
				Stderr:  os.Stderr,
			})
		},
	}
	cmd.Flags().Bool("no-check", false, "Skip the dependency verification before launching")
	return cmd
}
