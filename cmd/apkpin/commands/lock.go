package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/apkpin/internal/app"
	"go.trai.ch/apkpin/internal/core/domain"
)

func (c *CLI) newLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock <apko.yaml>",
		Short: "Regenerate the apko.lock.json next to a package file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Lock(cmd.Context(), app.LockOptions{PackageFile: args[0]})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res == nil || res.File == nil {
				_, err = fmt.Fprintf(out, "%s unchanged\n", domain.SiblingFileName(args[0], domain.LockFileName))
				return err
			}
			_, err = fmt.Fprintf(out, "wrote %s (%s)\n", res.File.Path, res.File.Digest)
			return err
		},
	}
}
