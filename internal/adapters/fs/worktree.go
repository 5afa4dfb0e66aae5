package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/zerr"
)

// WorkTree implements ports.WorkTree on the local file system.
type WorkTree struct {
	walker  *Walker
	ignores []string
}

// NewWorkTree creates a WorkTree. Names matching any ignore glob are not discovered.
func NewWorkTree(walker *Walker, ignores ...string) *WorkTree {
	return &WorkTree{walker: walker, ignores: ignores}
}

// ReadFile returns the contents of path, or nil, nil if it does not exist.
func (t *WorkTree) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from package file discovery
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return data, nil
}

// WriteFile replaces path atomically by renaming a temp file written in the same directory.
// The existing file mode is kept; new files get domain.FilePerm.
func (t *WorkTree) WriteFile(path string, data []byte) error {
	mode := iofs.FileMode(domain.FilePerm)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	return nil
}

// FindPackageFiles returns every apko.yaml or apko.yml below root in lexical order.
func (t *WorkTree) FindPackageFiles(root string) ([]string, error) {
	var files []string
	for path, err := range t.walker.WalkFiles(root, t.ignores) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrWalkFailed.Error()), "root", root)
		}
		if domain.IsPackageFileName(filepath.Base(path)) {
			files = append(files, path)
		}
	}
	slices.Sort(files)
	return files, nil
}
