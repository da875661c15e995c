// Package commands implements the CLI commands for pinpoint.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/pinpoint/internal/app"
	"go.trai.ch/pinpoint/internal/build"
	"go.trai.ch/pinpoint/internal/core/ports"
)

// jsonSetter is implemented by loggers that can switch to JSON output.
type jsonSetter interface {
	SetJSON(enable bool)
}

// verboseSetter is implemented by loggers that can show debug records.
type verboseSetter interface {
	SetVerbose(enable bool)
}

// CLI represents the command line interface for pinpoint.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pinpoint",
		Short:         "Cache instrumented sources and map positions back to the originals",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "",
		"Config file, or directory to search upwards for pinpoint.yaml (default: current directory)")
	rootCmd.PersistentFlags().Bool("json", false, "Log as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log span timings and other debug records")

	c := &CLI{
		app:     components.App,
		logger:  components.Logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = c.configure

	rootCmd.AddCommand(c.newInstrumentCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newPruneCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func (c *CLI) configure(cmd *cobra.Command, _ []string) {
	configPath, _ := cmd.Flags().GetString("config")
	c.app.WithConfigPath(configPath)

	if js, ok := c.logger.(jsonSetter); ok {
		enable, _ := cmd.Flags().GetBool("json")
		js.SetJSON(enable)
	}
	if vs, ok := c.logger.(verboseSetter); ok {
		enable, _ := cmd.Flags().GetBool("verbose")
		vs.SetVerbose(enable)
	}
}
