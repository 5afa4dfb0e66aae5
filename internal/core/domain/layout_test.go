package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/apkpin/internal/core/domain"
)

func TestIsPackageFileName(t *testing.T) {
	assert.True(t, domain.IsPackageFileName("apko.yaml"))
	assert.True(t, domain.IsPackageFileName("apko.yml"))
	assert.False(t, domain.IsPackageFileName("apko.lock.json"))
	assert.False(t, domain.IsPackageFileName("my-apko.yaml"))
}

func TestSiblingFileName(t *testing.T) {
	assert.Equal(t, filepath.Join("images", "base", "apko.lock.json"),
		domain.SiblingFileName(filepath.Join("images", "base", "apko.yaml"), domain.LockFileName))
	assert.Equal(t, "apko.lock.json", domain.SiblingFileName("apko.yaml", domain.LockFileName))
}

func TestPackageFile_RegistryURLs(t *testing.T) {
	mirror := []string{"https://mirror.example.com/main"}

	var pf domain.PackageFile
	assert.Equal(t, domain.DefaultRegistryURLs(), pf.RegistryURLs(nil))
	assert.Equal(t, mirror, pf.RegistryURLs(mirror))

	pf.Contents.Repositories = []string{"https://packages.wolfi.dev/os"}
	assert.Equal(t, []string{"https://packages.wolfi.dev/os"}, pf.RegistryURLs(mirror))
}

func TestIndexCachePath(t *testing.T) {
	assert.Equal(t, filepath.Join(".apkpin", "cache", "apkindex"), domain.IndexCachePath("."))
	assert.Equal(t, filepath.Join("other", "repo", ".apkpin", "cache", "apkindex"),
		domain.IndexCachePath(filepath.Join("other", "repo")))
}
