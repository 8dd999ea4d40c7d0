package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent install runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, _ := cmd.Flags().GetInt("limit")
			return c.app.History(cmd.Context(), n, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntP("limit", "n", 10, "Maximum number of runs to show")
	return cmd
}
