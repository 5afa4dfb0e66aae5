// Package commands implements the CLI commands for apkpin.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/apkpin/internal/app"
	"go.trai.ch/apkpin/internal/build"
	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/apkpin/internal/engine/manager"
)

// CLI represents the command line interface for apkpin.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	verbose func(bool)

	root         string
	registryURLs []string
	arch         string
	verboseFlag  bool
}

// Application represents the application logic interface.
type Application interface {
	Extract(ctx context.Context, opts app.ExtractOptions) ([]domain.PackageFileContent, error)
	Update(ctx context.Context, opts app.UpdateOptions) ([]manager.FileReport, error)
	Lock(ctx context.Context, opts app.LockOptions) (*domain.ArtifactResult, error)
	Compare(left, right string) (int, error)
}

// Option configures the CLI.
type Option func(*CLI)

// WithVerboseHook registers fn to be called with the value of --verbose before a command runs.
func WithVerboseHook(fn func(bool)) Option {
	return func(c *CLI) {
		c.verbose = fn
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "apkpin",
		Short:         "Keep apko image package pins and lock files up to date",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.root, "root", "C", ".", "Directory searched for apko.yaml files")
	flags.StringSliceVar(&c.registryURLs, "registry", nil,
		"Repository URL used for package files that declare none (repeatable)")
	flags.StringVar(&c.arch, "arch", "", "APKINDEX architecture (default: first arch of each package file, then "+domain.DefaultArch+")")
	flags.BoolVarP(&c.verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.verbose != nil {
			c.verbose(c.verboseFlag)
		}
	}

	rootCmd.AddCommand(c.newExtractCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newLockCmd())
	rootCmd.AddCommand(c.newCompareCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
