package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinpoint/internal/app"
)

func (c *CLI) newInstrumentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instrument [paths...]",
		Short: "Instrument files, reusing cached results for unchanged content",
		Long: "Instrument the given files, directories or glob patterns. Without arguments the\n" +
			"include patterns of the config file are used.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			parallelism, _ := cmd.Flags().GetInt("parallelism")
			return c.app.Instrument(cmd.Context(), args, app.InstrumentOptions{
				Force:       force,
				Parallelism: parallelism,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Ignore cached results and instrument every file")
	cmd.Flags().IntP("parallelism", "p", 0, "Maximum number of files instrumented at once (default: from config)")
	return cmd
}
