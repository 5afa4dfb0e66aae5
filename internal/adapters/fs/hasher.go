package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hasher computes XXHash digests of file contents.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Digest returns the 16-digit hex XXHash of data.
func (h *Hasher) Digest(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
