package ports

import (
	"context"

	"go.trai.ch/apkpin/internal/core/domain"
)

// ReleaseLookup lists the published versions of an APK package.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type ReleaseLookup interface {
	// Releases returns every release of name found in the given repositories for arch.
	// Returns domain.ErrPackageNotFound if no repository lists the package.
	Releases(ctx context.Context, registryURLs []string, arch, name string) ([]domain.Release, error)
}
