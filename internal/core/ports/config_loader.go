package ports

import "go.trai.ch/apkpin/internal/core/domain"

// ConfigLoader parses apko package files.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load parses the raw contents of a package file.
	// Empty content yields an empty PackageFile.
	Load(content []byte) (*domain.PackageFile, error)
}
