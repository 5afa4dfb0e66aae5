package manager

import (
	"go.trai.ch/apkpin/internal/core/domain"
)

// FindingReason explains why a declared package was not considered for an upgrade.
type FindingReason string

const (
	// ReasonUnsupportedConstraint marks a range constraint. Constraints are recognized, never rewritten.
	ReasonUnsupportedConstraint FindingReason = "unsupported-constraint"
	// ReasonHyphenatedPin marks a name-version pin, which has no name=version declaration to rewrite.
	ReasonHyphenatedPin FindingReason = "hyphenated-pin"
	// ReasonNoReleases marks a package no repository lists.
	ReasonNoReleases FindingReason = "no-releases"
	// ReasonInvalidCurrentVersion marks a pin whose version cannot be ordered.
	ReasonInvalidCurrentVersion FindingReason = "invalid-current-version"
)

// Finding is a declared package that was left alone, and why.
type Finding struct {
	DepName      string        `json:"dep_name" yaml:"dep_name"`
	CurrentValue string        `json:"current_value,omitempty" yaml:"current_value,omitempty"`
	Reason       FindingReason `json:"reason" yaml:"reason"`
}

// UpdateOptions controls an update run.
type UpdateOptions struct {
	// Arch selects the APKINDEX architecture. Empty uses the package file's first arch, then the default.
	Arch string
	// DryRun computes upgrades without writing anything.
	DryRun bool
	// LockMaintenance regenerates lock documents even when no package was upgraded.
	LockMaintenance bool
}

// FileReport is the outcome of updating one package file.
type FileReport struct {
	PackageFile string                 `json:"package_file" yaml:"package_file"`
	Status      domain.UpdateStatus    `json:"status" yaml:"status"`
	Upgrades    []domain.Upgrade       `json:"upgrades,omitempty" yaml:"upgrades,omitempty"`
	Findings    []Finding              `json:"findings,omitempty" yaml:"findings,omitempty"`
	Artifact    *domain.ArtifactResult `json:"artifact,omitempty" yaml:"artifact,omitempty"`
	Error       string                 `json:"error,omitempty" yaml:"error,omitempty"`

	err error
}

// Err returns the error that failed the file, if any.
func (r *FileReport) Err() error {
	return r.err
}

func (r *FileReport) fail(err error) {
	r.Status = domain.UpdateStatusFailed
	r.err = err
	r.Error = err.Error()
}
