package ports

// Hasher defines the interface for computing content digests.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// Digest returns a stable hex digest of data.
	Digest(data []byte) string
}
