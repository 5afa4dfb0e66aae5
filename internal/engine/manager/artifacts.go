package manager

import (
	"context"
	"path/filepath"

	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/zerr"
)

// UpdateArtifacts regenerates the lock document next to packageFile.
//
// It returns nil when the package file has no lock document or when the
// regenerated document is byte-identical to the previous one. A failing lock
// tool yields an ArtifactError rather than an error; the error return is
// reserved for work tree failures.
func (m *Manager) UpdateArtifacts(ctx context.Context, packageFile string) (*domain.ArtifactResult, error) {
	lockFile := domain.SiblingFileName(packageFile, domain.LockFileName)
	previous, err := m.tree.ReadFile(lockFile)
	if err != nil {
		return nil, err
	}
	if previous == nil {
		m.logger.Debug("no lock document, skipping regeneration", "file", packageFile)
		return nil, nil
	}
	return m.regenerate(ctx, packageFile, lockFile, previous)
}

// GenerateLock regenerates the lock document next to packageFile, creating
// it when missing. Like UpdateArtifacts it returns nil when nothing changed.
func (m *Manager) GenerateLock(ctx context.Context, packageFile string) (*domain.ArtifactResult, error) {
	lockFile := domain.SiblingFileName(packageFile, domain.LockFileName)
	previous, err := m.tree.ReadFile(lockFile)
	if err != nil {
		return nil, err
	}

	ctx, vertex := m.telemetry.Record(ctx, lockFile)
	res, err := m.regenerate(ctx, packageFile, lockFile, previous)
	switch {
	case err != nil:
		vertex.Complete(err)
	case res == nil:
		vertex.Cached()
	case res.Error != nil:
		vertex.Complete(zerr.With(domain.ErrLockGenerationFailed, "stderr", res.Error.Stderr))
	default:
		vertex.Complete(nil)
	}
	return res, err
}

func (m *Manager) regenerate(ctx context.Context, packageFile, lockFile string, previous []byte) (*domain.ArtifactResult, error) {
	err := m.locker.Lock(ctx, filepath.Dir(packageFile), filepath.Base(packageFile))
	if err != nil {
		m.logger.Warn("lock regeneration failed", "file", packageFile, "error", err.Error())
		return &domain.ArtifactResult{Error: &domain.ArtifactError{
			LockFile: lockFile,
			Stderr:   toolStderr(err),
		}}, nil
	}

	current, err := m.tree.ReadFile(lockFile)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return &domain.ArtifactResult{Error: &domain.ArtifactError{
			LockFile: lockFile,
			Stderr:   "lock tool did not write " + filepath.Base(lockFile),
		}}, nil
	}

	digest := m.hasher.Digest(current)
	if previous != nil && m.hasher.Digest(previous) == digest {
		m.logger.Debug("lock document unchanged", "file", lockFile)
		return nil, nil
	}

	return &domain.ArtifactResult{File: &domain.ArtifactFile{
		Path:     lockFile,
		Contents: current,
		Digest:   digest,
	}}, nil
}

// toolStderr returns the stderr captured by the lock generator, or the error text.
func toolStderr(err error) string {
	if zErr, ok := err.(*zerr.Error); ok {
		if stderr, ok := zErr.Metadata()["stderr"].(string); ok && stderr != "" {
			return stderr
		}
	}
	return err.Error()
}
