package ports

import "context"

// LockGenerator regenerates the resolved lock document of a package file.
//
//go:generate mockgen -source=lock_generator.go -destination=mocks/mock_lock_generator.go -package=mocks
type LockGenerator interface {
	// Lock runs the lock tool for configFile inside dir.
	// Failures carry the tool's stderr as "stderr" metadata.
	Lock(ctx context.Context, dir, configFile string) error
}
