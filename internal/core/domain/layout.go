package domain

import "path/filepath"

const (
	// StateDirName is the name of the per-work-tree apkpin directory.
	StateDirName = ".apkpin"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// IndexDirName is the name of the APKINDEX blob cache directory.
	IndexDirName = "apkindex"

	// PackageFileName is the canonical apko configuration file name.
	PackageFileName = "apko.yaml"

	// PackageFileAltName is the alternative apko configuration file name.
	PackageFileAltName = "apko.yml"

	// LockFileName is the name of the resolved lock document written next to a package file.
	LockFileName = "apko.lock.json"

	// LockToolName is the executable that regenerates lock documents.
	LockToolName = "apko"

	// DefaultArch is the architecture used for registry lookups when none is given.
	DefaultArch = "x86_64"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultRegistryURLs returns the repositories queried when a package file declares none.
func DefaultRegistryURLs() []string {
	return []string{
		"https://dl-cdn.alpinelinux.org/alpine/v3.19/main",
		"https://dl-cdn.alpinelinux.org/alpine/v3.19/community",
	}
}

// IndexCachePath returns the directory of cached APKINDEX archives below root.
// It joins root, .apkpin, cache, and apkindex.
func IndexCachePath(root string) string {
	return filepath.Join(root, StateDirName, CacheDirName, IndexDirName)
}

// IsPackageFileName reports whether base is an apko configuration file name.
func IsPackageFileName(base string) bool {
	return base == PackageFileName || base == PackageFileAltName
}

// SiblingFileName returns the path of name in the same directory as file.
func SiblingFileName(file, name string) string {
	return filepath.Join(filepath.Dir(file), name)
}
