// export_test.go exports helpers for black-box testing.
package commands

import "io"

// SetOut redirects the output of the root command.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
