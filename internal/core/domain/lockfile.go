package domain

import (
	"bytes"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// LockDocument is the resolved package snapshot written by `apko lock`.
type LockDocument struct {
	// SchemaVersion is the lock format version.
	SchemaVersion int `yaml:"schema_version"`

	// Archs holds the per-architecture package lists in document order.
	Archs LockArchs `yaml:"archs"`
}

// LockArch is the resolved package list of one architecture.
type LockArch struct {
	Name     string
	Packages []LockedPackage
}

// LockedPackage is a single resolved package.
// Origin and Arch repeat across hundreds of entries and are interned.
type LockedPackage struct {
	Name     string         `yaml:"name"`
	Version  string         `yaml:"version"`
	Origin   InternedString `yaml:"origin"`
	Arch     InternedString `yaml:"arch"`
	Size     int64          `yaml:"size"`
	Checksum string         `yaml:"checksum"`
}

// LockArchs is the archs mapping decoded as an ordered list.
type LockArchs []LockArch

// UnmarshalYAML walks the archs mapping in document order.
func (a *LockArchs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return zerr.With(ErrLockParseFailed, "archs_line", node.Line)
	}

	archs := make(LockArchs, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var bucket struct {
			Packages []LockedPackage `yaml:"packages"`
		}
		if err := node.Content[i+1].Decode(&bucket); err != nil {
			return err
		}
		archs = append(archs, LockArch{Name: node.Content[i].Value, Packages: bucket.Packages})
	}
	*a = archs
	return nil
}

// ParseLockDocument decodes a lock document. JSON is accepted as a YAML subset.
func ParseLockDocument(data []byte) (*LockDocument, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, zerr.With(ErrLockParseFailed, "reason", "empty document")
	}

	var doc LockDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, ErrLockParseFailed.Error())
	}
	return &doc, nil
}

// Versions maps every locked package name to its version.
//
// Architectures are visited in document order and a later architecture
// overwrites an earlier one for the same name. Packages locked at different
// versions per architecture are therefore reported with the last version only.
func (l *LockDocument) Versions() map[string]string {
	versions := make(map[string]string)
	for _, arch := range l.Archs {
		for _, pkg := range arch.Packages {
			versions[pkg.Name] = pkg.Version
		}
	}
	return versions
}
