package ports

// BlobStore defines a content cache keyed by arbitrary strings.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BlobStore interface {
	// Get retrieves the blob stored under key.
	// Returns nil, nil if not found.
	Get(key string) ([]byte, error)

	// Put stores data under key, replacing any previous blob.
	Put(key string, data []byte) error
}

// IndexCache is a BlobStore kept below a work-tree root.
type IndexCache interface {
	BlobStore

	// Relocate moves the store to dir. Entries loaded from the previous
	// directory are dropped.
	Relocate(dir string) error
}
