package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/glue-viz/gluedeps/internal/adapters/telemetry/progrock"
	"github.com/glue-viz/gluedeps/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [targets...]",
		Short: "Install missing dependencies",
		Long: `Install the missing dependencies selected by the given targets.
Targets may be category names or dependency names; no targets (or the
explicit "all") installs everything missing.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			installer, _ := cmd.Flags().GetString("installer")
			plain, _ := cmd.Flags().GetBool("plain")

			if !plain && !dryRun && progressWanted() {
				c.app.WithTelemetry(progrock.New(cmd.ErrOrStderr()))
			}

			return c.app.Install(cmd.Context(), args, app.InstallOptions{
				DryRun:    dryRun,
				Installer: installer,
				Out:       cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Print the install plan without executing it")
	cmd.Flags().String("installer", "", "Package manager to use (pip or conda)")
	cmd.Flags().Bool("plain", false, "Disable progress rendering")
	return cmd
}

// progressWanted reports whether progress rendering makes sense: stderr is a
// terminal and NO_COLOR is unset.
func progressWanted() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}
