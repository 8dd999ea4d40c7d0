package commands

import (
	"github.com/spf13/cobra"

	"github.com/glue-viz/gluedeps/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [targets...]",
		Short: "List dependencies with install status and description",
		Long: `List every known dependency grouped by category, with its install
status, detected version, and what Glue uses it for. Targets may be
category names or dependency names; no targets lists everything.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			refresh, _ := cmd.Flags().GetBool("refresh")
			jsonOut, _ := cmd.Flags().GetBool("json")
			return c.app.List(cmd.Context(), args, app.ListOptions{
				Refresh: refresh,
				JSON:    jsonOut,
				Out:     cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().BoolP("refresh", "r", false, "Bypass the probe cache and query the interpreter")
	cmd.Flags().Bool("json", false, "Emit the report as JSON")
	return cmd
}
