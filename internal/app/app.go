// Package app implements the application layer for apkpin.
package app

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/apkpin/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/apkpin/internal/core/ports"
	"go.trai.ch/apkpin/internal/engine/manager"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	manager    *manager.Manager
	logger     ports.Logger
	progress   *progrock.Recorder
	indexCache ports.IndexCache
}

// New creates a new App instance.
func New(mgr *manager.Manager, log ports.Logger, progress *progrock.Recorder) *App {
	return &App{
		manager:  mgr,
		logger:   log,
		progress: progress,
	}
}

// WithIndexCache sets the APKINDEX cache that Update moves below its root.
func (a *App) WithIndexCache(cache ports.IndexCache) *App {
	a.indexCache = cache
	return a
}

// ExtractOptions configuration for the Extract method.
type ExtractOptions struct {
	// Root is the directory searched for package files.
	Root string
	// RegistryURLs replaces the built-in repositories for package files declaring none.
	RegistryURLs []string
}

// UpdateOptions configuration for the Update method.
type UpdateOptions struct {
	Root            string
	RegistryURLs    []string
	Arch            string
	DryRun          bool
	LockMaintenance bool
}

// LockOptions configuration for the Lock method.
type LockOptions struct {
	// PackageFile is the apko.yaml whose lock document is regenerated.
	PackageFile string
}

// Extract returns the dependencies of every package file below the root.
func (a *App) Extract(ctx context.Context, opts ExtractOptions) ([]domain.PackageFileContent, error) {
	results, err := a.managerFor(opts.RegistryURLs).Extract(ctx, rootOrDefault(opts.Root))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to extract dependencies")
	}
	return results, nil
}

// Update upgrades the pinned packages of every package file below the root.
// Reports are returned even when some files failed; the error then wraps
// domain.ErrUpdateFailed and every per-file failure.
func (a *App) Update(ctx context.Context, opts UpdateOptions) ([]manager.FileReport, error) {
	root := rootOrDefault(opts.Root)
	a.anchorIndexCache(root)

	reports, err := a.managerFor(opts.RegistryURLs).Update(ctx, root, manager.UpdateOptions{
		Arch:            opts.Arch,
		DryRun:          opts.DryRun,
		LockMaintenance: opts.LockMaintenance,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to update package files")
	}

	counts := make(map[domain.UpdateStatus]int, 4)
	var errs []error
	for i := range reports {
		counts[reports[i].Status]++
		if reports[i].Status == domain.UpdateStatusFailed {
			errs = append(errs, zerr.With(reports[i].Err(), "file", reports[i].PackageFile))
		}
	}
	a.logger.Info("update finished",
		"updated", counts[domain.UpdateStatusUpdated],
		"unchanged", counts[domain.UpdateStatusUnchanged],
		"skipped", counts[domain.UpdateStatusSkipped],
		"failed", counts[domain.UpdateStatusFailed],
		"dry_run", opts.DryRun,
	)
	a.logProgress()

	if len(errs) > 0 {
		return reports, errors.Join(domain.ErrUpdateFailed, errors.Join(errs...))
	}
	return reports, nil
}

// Lock regenerates the lock document of one package file, creating it when missing.
// It returns nil when the regenerated document is unchanged.
func (a *App) Lock(ctx context.Context, opts LockOptions) (*domain.ArtifactResult, error) {
	if !domain.IsPackageFileName(filepath.Base(opts.PackageFile)) {
		return nil, zerr.With(domain.ErrNotPackageFile, "path", opts.PackageFile)
	}

	res, err := a.manager.GenerateLock(ctx, opts.PackageFile)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to regenerate lock document")
	}
	a.logProgress()

	if res != nil && res.Error != nil {
		lockErr := zerr.With(domain.ErrLockGenerationFailed, "lock_file", res.Error.LockFile)
		return res, zerr.With(lockErr, "stderr", res.Error.Stderr)
	}
	return res, nil
}

// Compare orders two APK versions, returning -1, 0 or 1.
func (a *App) Compare(left, right string) (int, error) {
	for _, v := range []string{left, right} {
		if _, err := domain.ParseVersion(v); err != nil {
			return 0, err
		}
	}
	return domain.CompareVersions(left, right), nil
}

func (a *App) managerFor(registryURLs []string) *manager.Manager {
	if len(registryURLs) == 0 {
		return a.manager
	}
	return a.manager.WithDefaultRegistryURLs(registryURLs)
}

// anchorIndexCache keeps downloaded indexes below the work-tree root.
// A failure only costs cache hits.
func (a *App) anchorIndexCache(root string) {
	if a.indexCache == nil {
		return
	}
	dir := domain.IndexCachePath(root)
	if err := a.indexCache.Relocate(dir); err != nil {
		a.logger.Warn("index cache unavailable", "dir", dir, "error", err)
	}
}

func (a *App) logProgress() {
	if a.progress == nil {
		return
	}
	s := a.progress.Summary()
	a.logger.Debug("progress", "completed", s.Completed, "failed", s.Failed, "cached", s.Cached)
}

func rootOrDefault(root string) string {
	if root == "" {
		return "."
	}
	return root
}
