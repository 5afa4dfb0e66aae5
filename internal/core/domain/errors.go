package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidVersion is returned when a version string does not start with a numeric release.
	ErrInvalidVersion = zerr.New("invalid apk version")

	// ErrMissingVersionSegment is returned when a major, minor or patch segment is requested but absent.
	ErrMissingVersionSegment = zerr.New("version segment not present")

	// ErrIncompleteUpgrade is returned when an upgrade instruction lacks a name, current or new value.
	ErrIncompleteUpgrade = zerr.New("upgrade instruction is incomplete")

	// ErrRewriteTargetNotFound is returned when no declaration of the package can be located in the document.
	ErrRewriteTargetNotFound = zerr.New("package declaration not found")
)

var (
	// ErrConfigReadFailed is returned when a package file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read package file")

	// ErrConfigParseFailed is returned when a package file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse package file")

	// ErrLockParseFailed is returned when a lock document cannot be decoded.
	ErrLockParseFailed = zerr.New("failed to parse lock document")

	// ErrLockGenerationFailed is returned when the external lock tool exits unsuccessfully.
	ErrLockGenerationFailed = zerr.New("failed to regenerate lock document")

	// ErrLockToolNotFound is returned when the apko binary is not on PATH.
	ErrLockToolNotFound = zerr.New("apko binary not found")
)

var (
	// ErrPackageNotFound is returned when no configured repository lists the package.
	ErrPackageNotFound = zerr.New("package not found in any repository")

	// ErrRegistryRequestFailed is returned when an APKINDEX cannot be downloaded.
	ErrRegistryRequestFailed = zerr.New("registry request failed")

	// ErrRegistryParseFailed is returned when an APKINDEX archive is malformed.
	ErrRegistryParseFailed = zerr.New("failed to parse APKINDEX")

	// ErrNoRegistries is returned when a lookup is attempted without any repository URL.
	ErrNoRegistries = zerr.New("no registry urls configured")
)

var (
	// ErrStoreCreateFailed is returned when the cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create store directory")

	// ErrStoreReadFailed is returned when a cached blob cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read from store")

	// ErrStoreWriteFailed is returned when a blob cannot be written to the cache.
	ErrStoreWriteFailed = zerr.New("failed to write to store")

	// ErrFileReadFailed is returned when a work tree file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileWriteFailed is returned when a work tree file cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrWalkFailed is returned when package file discovery fails.
	ErrWalkFailed = zerr.New("failed to walk work tree")
)

var (
	// ErrInvalidOutputFormat is returned when the requested output format is unknown.
	ErrInvalidOutputFormat = zerr.New("invalid output format")

	// ErrNotPackageFile is returned when a path does not name an apko.yaml or apko.yml file.
	ErrNotPackageFile = zerr.New("not an apko package file")

	// ErrUpdateFailed is returned when at least one package file could not be updated.
	ErrUpdateFailed = zerr.New("one or more package files failed to update")
)
