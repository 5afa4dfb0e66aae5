// Package manager implements the apko package manager: package file
// discovery, dependency extraction, update lookup and artifact regeneration.
package manager

import (
	"context"
	"runtime"
	"slices"

	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/apkpin/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Manager orchestrates the core extraction, reconciliation and rewrite
// operations over the package files of a work tree.
type Manager struct {
	loader    ports.ConfigLoader
	tree      ports.WorkTree
	registry  ports.ReleaseLookup
	locker    ports.LockGenerator
	hasher    ports.Hasher
	telemetry ports.Telemetry
	logger    ports.Logger

	registryURLs []string
	parallelism  int
}

// New creates a new Manager.
func New(
	loader ports.ConfigLoader,
	tree ports.WorkTree,
	registry ports.ReleaseLookup,
	locker ports.LockGenerator,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Manager {
	return &Manager{
		loader:      loader,
		tree:        tree,
		registry:    registry,
		locker:      locker,
		hasher:      hasher,
		telemetry:   telemetry,
		logger:      logger,
		parallelism: runtime.NumCPU(),
	}
}

// WithDefaultRegistryURLs returns a copy of m that uses urls for package
// files declaring no repositories. An empty list restores the built-in defaults.
func (m *Manager) WithDefaultRegistryURLs(urls []string) *Manager {
	c := *m
	c.registryURLs = slices.Clone(urls)
	return &c
}

// WithParallelism returns a copy of m processing at most n package files at once.
// Values below one are ignored.
func (m *Manager) WithParallelism(n int) *Manager {
	c := *m
	if n > 0 {
		c.parallelism = n
	}
	return &c
}

// FindPackageFiles returns every package file below root, sorted.
func (m *Manager) FindPackageFiles(root string) ([]string, error) {
	return m.tree.FindPackageFiles(root)
}

// Extract reads and extracts every package file below root.
// Files without dependencies are omitted; the result follows discovery order.
func (m *Manager) Extract(ctx context.Context, root string) ([]domain.PackageFileContent, error) {
	files, err := m.FindPackageFiles(root)
	if err != nil {
		return nil, err
	}

	results := make([]*domain.PackageFileContent, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.parallelism)

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := m.tree.ReadFile(file)
			if err != nil {
				return err
			}
			res, err := m.ExtractPackageFile(content, file)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.PackageFileContent, 0, len(results))
	for _, res := range results {
		if res != nil {
			out = append(out, *res)
		}
	}
	m.logger.Debug("extraction finished", "root", root, "files", len(files), "with_deps", len(out))
	return out, nil
}
