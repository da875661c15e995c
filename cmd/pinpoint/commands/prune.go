package commands

import "github.com/spf13/cobra"

func (c *CLI) newPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Drop cached results of files no longer matched by the include patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Prune(cmd.Context())
		},
	}
}
