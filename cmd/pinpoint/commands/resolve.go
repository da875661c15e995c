package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/pinpoint/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <file> <line> <column>",
		Short: "Print the original source position of an instrumented position",
		Long:  "Lines are 1-based and columns are 0-based, as in stack traces of most JavaScript engines.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := parsePosition(args[1], "line")
			if err != nil {
				return err
			}
			column, err := parsePosition(args[2], "column")
			if err != nil {
				return err
			}
			return c.app.Resolve(cmd.Context(), args[0], line, column)
		},
	}
}

func parsePosition(arg, name string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidPosition, "not a number"), name, arg)
	}
	return n, nil
}
