package domain

// PackageFile is a parsed apko image configuration.
type PackageFile struct {
	Contents PackageFileContents
	Archs    []string
}

// PackageFileContents is the contents section of an apko configuration.
type PackageFileContents struct {
	Repositories []string
	Packages     []string
}

// RegistryURLs returns the declared repositories. When none are declared it
// returns fallback, or the built-in defaults when fallback is empty too.
func (p *PackageFile) RegistryURLs(fallback []string) []string {
	switch {
	case len(p.Contents.Repositories) > 0:
		return p.Contents.Repositories
	case len(fallback) > 0:
		return fallback
	default:
		return DefaultRegistryURLs()
	}
}

// PackageFileContent is the extraction result for one package file.
type PackageFileContent struct {
	PackageFile string             `json:"package_file" yaml:"package_file"`
	Deps        []DependencyRecord `json:"deps" yaml:"deps"`
	// LockFiles lists the lock documents used to enrich Deps. Nil when none was used.
	LockFiles []string `json:"lock_files,omitempty" yaml:"lock_files,omitempty"`
}

// Release is one published version of a package in a repository.
type Release struct {
	Version    string
	Repository string
	Arch       string
}

// Upgrade is an instruction to move a declared package to a new version.
type Upgrade struct {
	PackageFile  string `json:"package_file" yaml:"package_file"`
	DepName      string `json:"dep_name" yaml:"dep_name"`
	CurrentValue string `json:"current_value" yaml:"current_value"`
	NewValue     string `json:"new_value" yaml:"new_value"`
}

// ArtifactFile is a regenerated file and its content digest.
type ArtifactFile struct {
	Path     string `json:"path" yaml:"path"`
	Contents []byte `json:"-" yaml:"-"`
	Digest   string `json:"digest" yaml:"digest"`
}

// ArtifactError describes a failed regeneration of a lock document.
type ArtifactError struct {
	LockFile string `json:"lock_file" yaml:"lock_file"`
	Stderr   string `json:"stderr" yaml:"stderr"`
}

// ArtifactResult holds exactly one of File and Error.
type ArtifactResult struct {
	File  *ArtifactFile  `json:"file,omitempty" yaml:"file,omitempty"`
	Error *ArtifactError `json:"error,omitempty" yaml:"error,omitempty"`
}
