package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/apkpin/internal/app"
	"go.trai.ch/apkpin/internal/core/domain"
)

func (c *CLI) newExtractCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Print the packages declared by every apko.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format, formatJSON, formatYAML); err != nil {
				return err
			}
			results, err := c.app.Extract(cmd.Context(), app.ExtractOptions{
				Root:         c.root,
				RegistryURLs: c.registryURLs,
			})
			if err != nil {
				return err
			}
			if results == nil {
				results = []domain.PackageFileContent{}
			}
			return writeStructured(cmd.OutOrStdout(), format, results)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", formatJSON, "Output format: json or yaml")
	return cmd
}
