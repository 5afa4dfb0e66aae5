package manager

import (
	"slices"

	"go.trai.ch/apkpin/internal/core/domain"
)

// basePackages are meta packages every image pulls in. Unversioned, they carry no update signal.
var basePackages = []string{
	"alpine-base",
	"alpine-baselayout",
	"base",
	"chainguard-baselayout",
	"wolfi-base",
}

// ExtractPackageFile extracts the dependencies declared by one package file
// and enriches them with its sibling lock document.
//
// It returns nil when the file is empty, unparsable, or declares only base
// packages. A malformed lock document is ignored.
func (m *Manager) ExtractPackageFile(content []byte, packageFile string) (*domain.PackageFileContent, error) {
	cfg, err := m.loader.Load(content)
	if err != nil {
		m.logger.Debug("skipping unparsable package file", "file", packageFile, "error", err.Error())
		return nil, nil
	}

	registryURLs := cfg.RegistryURLs(m.registryURLs)
	deps := domain.ExtractDependencies(cfg.Contents.Packages, registryURLs)
	if !slices.ContainsFunc(deps, func(rec domain.DependencyRecord) bool { return !isBasePackage(rec) }) {
		return nil, nil
	}

	lockFile := domain.SiblingFileName(packageFile, domain.LockFileName)
	lockData, err := m.tree.ReadFile(lockFile)
	if err != nil {
		return nil, err
	}

	// Base packages take part in reconciliation so a locked base package is
	// not reported as transitive.
	result := domain.Reconcile(deps, lockFile, lockData)
	if result.LockErr != nil {
		m.logger.Debug("ignoring unreadable lock document", "file", lockFile, "error", result.LockErr.Error())
	}
	result.Records = slices.DeleteFunc(result.Records, isBasePackage)

	for i := range result.Records {
		if result.Records[i].RegistryURLs == nil {
			result.Records[i].RegistryURLs = slices.Clone(registryURLs)
		}
	}

	return &domain.PackageFileContent{
		PackageFile: packageFile,
		Deps:        result.Records,
		LockFiles:   result.LockSources,
	}, nil
}

func isBasePackage(rec domain.DependencyRecord) bool {
	return rec.IsSkipped() && slices.Contains(basePackages, rec.DepName)
}
