// Package main is the entry point for the apkpin tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/apkpin/cmd/apkpin/commands"
	"go.trai.ch/apkpin/internal/app"
	"go.trai.ch/apkpin/internal/core/domain"
	_ "go.trai.ch/apkpin/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := components.Close(); err != nil {
			components.Logger.Error(err)
		}
	}()

	// 2. Interface - CLI
	var opts []commands.Option
	if v, ok := components.Logger.(interface{ SetVerbose(bool) }); ok {
		opts = append(opts, commands.WithVerboseHook(v.SetVerbose))
	}
	cli := commands.New(components.App, opts...)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// Per-file failures are already part of the printed report.
		if errors.Is(err, domain.ErrUpdateFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
