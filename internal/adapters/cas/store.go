// Package cas implements a content addressable blob store for downloaded registry indexes.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	manifestFileName = "manifest.json"
	blobDirName      = "blobs"

	// DefaultMaxAge is how long a cached blob is served before it is treated as missing.
	DefaultMaxAge = time.Hour
)

// entry records which blob a key points to.
type entry struct {
	Digest   string    `json:"digest"`
	StoredAt time.Time `json:"stored_at"`
}

// Store implements ports.BlobStore. Blobs are stored once per content digest;
// a JSON manifest maps keys to digests.
type Store struct {
	dir    string
	maxAge time.Duration
	now    func() time.Time

	mu       sync.RWMutex
	manifest map[string]entry
}

// Option configures a Store.
type Option func(*Store)

// WithMaxAge overrides DefaultMaxAge. A zero or negative age disables expiry.
func WithMaxAge(d time.Duration) Option {
	return func(s *Store) { s.maxAge = d }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store rooted at dir, loading an existing manifest if present.
func NewStore(dir string, opts ...Option) (*Store, error) {
	s := &Store{
		dir:      filepath.Clean(dir),
		maxAge:   DefaultMaxAge,
		now:      time.Now,
		manifest: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Relocate points the store at dir and loads the manifest found there.
func (s *Store) Relocate(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dir = filepath.Clean(dir)
	s.manifest = make(map[string]entry)
	return s.loadLocked()
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// loadLocked reads the manifest. The caller must hold s.mu.
func (s *Store) loadLocked() error {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(filepath.Join(s.dir, manifestFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.manifest); err != nil {
		// Corrupt manifests are discarded; blobs are fetched again.
		s.manifest = make(map[string]entry)
	}
	return nil
}

// saveLocked writes the manifest. The caller must hold s.mu.
func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.manifest, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return writeFile(filepath.Join(s.dir, manifestFileName), data)
}

// Get returns the blob stored under key, or nil, nil when it is absent, expired or corrupt.
func (s *Store) Get(key string) ([]byte, error) {
	s.mu.RLock()
	e, ok := s.manifest[key]
	dir := s.dir
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if s.maxAge > 0 && s.now().Sub(e.StoredAt) > s.maxAge {
		return nil, nil
	}

	//nolint:gosec // Path is derived from a hex digest
	data, err := os.ReadFile(blobPath(dir, e.Digest))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
	}
	if digest(data) != e.Digest {
		return nil, nil
	}
	return data, nil
}

// Put stores data under key.
func (s *Store) Put(key string, data []byte) error {
	sum := digest(data)
	s.mu.RLock()
	dir := s.dir
	s.mu.RUnlock()
	if err := writeFile(blobPath(dir, sum), data); err != nil {
		return zerr.With(err, "key", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifest[key] = entry{Digest: sum, StoredAt: s.now().UTC()}
	return s.saveLocked()
}

func blobPath(dir, sum string) string {
	return filepath.Join(dir, blobDirName, sum[:2], sum)
}

func digest(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", path)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	tmp := tmpFile.Name()
	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmp, domain.FilePerm); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}
