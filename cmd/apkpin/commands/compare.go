package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <version> <version>",
		Short: "Compare two APK versions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := c.app.Compare(args[0], args[1])
			if err != nil {
				return err
			}
			op := "="
			switch {
			case cmp < 0:
				op = "<"
			case cmp > 0:
				op = ">"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", args[0], op, args[1])
			return err
		},
	}
}
