// Package config parses apko image configuration files.
package config

import (
	"bytes"
	"strings"

	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/apkpin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for apko.yaml documents.
type Loader struct {
	Logger ports.Logger
}

// New creates a new Loader.
func New(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load parses the raw contents of an apko.yaml file.
func (l *Loader) Load(content []byte) (*domain.PackageFile, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return &domain.PackageFile{}, nil
	}

	var file Apkofile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	pf := &domain.PackageFile{
		Contents: domain.PackageFileContents{
			Repositories: repositoryURLs(file.Contents.Repositories),
			Packages:     packageTokens(file.Contents.Packages),
		},
		Archs: file.Archs,
	}

	if l.Logger != nil {
		l.Logger.Debug("parsed package file",
			"packages", len(pf.Contents.Packages),
			"repositories", len(pf.Contents.Repositories))
	}
	return pf, nil
}

// repositoryURLs strips apk repository tags ("@edge https://...") and blank entries.
func repositoryURLs(repos []string) []string {
	var urls []string
	for _, repo := range repos {
		repo = strings.TrimSpace(repo)
		if strings.HasPrefix(repo, "@") {
			_, repo, _ = strings.Cut(repo, " ")
			repo = strings.TrimSpace(repo)
		}
		if repo != "" {
			urls = append(urls, repo)
		}
	}
	return urls
}

// packageTokens trims whitespace and drops empty entries. Order and duplicates are kept.
func packageTokens(pkgs []string) []string {
	var tokens []string
	for _, p := range pkgs {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
