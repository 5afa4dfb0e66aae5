// Package fs provides file system adapters for discovering, reading and hashing package files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/apkpin/internal/core/domain"
)

// skippedDirs are never descended into.
var skippedDirs = map[string]struct{}{
	".git":              {},
	".jj":               {},
	domain.StateDirName: {},
	"node_modules":      {},
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root, skipping VCS, state and ignored directories.
// Paths include root. A walk error is yielded once and ends the iteration.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if w.shouldSkip(path != root, d, ignores) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// shouldSkip reports whether an entry is excluded from the walk.
// The root itself is never excluded by the built-in directory list.
func (w *Walker) shouldSkip(nested bool, d fs.DirEntry, ignores []string) bool {
	name := d.Name()

	if d.IsDir() && nested {
		if _, ok := skippedDirs[name]; ok {
			return true
		}
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
