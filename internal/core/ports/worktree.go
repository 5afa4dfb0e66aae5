package ports

// WorkTree provides access to the files of the repository being updated.
//
//go:generate mockgen -source=worktree.go -destination=mocks/mock_worktree.go -package=mocks
type WorkTree interface {
	// ReadFile returns the contents of path.
	// Returns nil, nil if the file does not exist.
	ReadFile(path string) ([]byte, error)

	// WriteFile atomically replaces the contents of path.
	WriteFile(path string, data []byte) error

	// FindPackageFiles returns every apko package file below root, sorted.
	FindPackageFiles(root string) ([]string, error)
}
