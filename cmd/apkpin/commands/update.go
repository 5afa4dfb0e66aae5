package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/apkpin/internal/app"
	"go.trai.ch/apkpin/internal/engine/manager"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	var (
		format          string
		dryRun          bool
		lockMaintenance bool
	)
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Upgrade pinned packages and regenerate lock files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format, formatText, formatJSON, formatYAML); err != nil {
				return err
			}
			reports, err := c.app.Update(cmd.Context(), app.UpdateOptions{
				Root:            c.root,
				RegistryURLs:    c.registryURLs,
				Arch:            c.arch,
				DryRun:          dryRun,
				LockMaintenance: lockMaintenance,
			})
			if reports != nil {
				if writeErr := writeReports(cmd.OutOrStdout(), format, reports); writeErr != nil {
					return writeErr
				}
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", formatText, "Output format: text, json or yaml")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report upgrades without writing any file")
	cmd.Flags().BoolVar(&lockMaintenance, "lock-maintenance", false,
		"Regenerate lock files even when no package was upgraded")
	return cmd
}

func writeReports(w io.Writer, format string, reports []manager.FileReport) error {
	if format != formatText {
		return writeStructured(w, format, reports)
	}
	for _, r := range reports {
		if _, err := fmt.Fprintf(w, "%s: %s\n", r.PackageFile, r.Status); err != nil {
			return err
		}
		for _, up := range r.Upgrades {
			_, _ = fmt.Fprintf(w, "  %s %s -> %s\n", up.DepName, up.CurrentValue, up.NewValue)
		}
		for _, f := range r.Findings {
			_, _ = fmt.Fprintf(w, "  %s %s (%s)\n", f.DepName, f.CurrentValue, f.Reason)
		}
		if r.Artifact != nil && r.Artifact.File != nil {
			_, _ = fmt.Fprintf(w, "  wrote %s (%s)\n", r.Artifact.File.Path, r.Artifact.File.Digest)
		}
		if r.Error != "" {
			_, _ = fmt.Fprintf(w, "  error: %s\n", r.Error)
		}
	}
	return nil
}
