package domain

import "slices"

const (
	// DatasourceAPK identifies the APK repository datasource.
	DatasourceAPK = "apk"

	// VersioningAPK identifies the APK version ordering.
	VersioningAPK = "apk"
)

// SkipReason explains why a dependency record carries no comparable version.
type SkipReason string

// SkipReasonNotAVersion marks a package token without a recognizable version.
const SkipReasonNotAVersion SkipReason = "not-a-version"

// DependencyRecord is one package declaration normalized for lookup and update.
// After extraction exactly one of CurrentValue and SkipReason is set.
type DependencyRecord struct {
	Datasource    string     `json:"datasource" yaml:"datasource"`
	DepName       string     `json:"dep_name" yaml:"dep_name"`
	CurrentValue  string     `json:"current_value,omitempty" yaml:"current_value,omitempty"`
	LockedVersion string     `json:"locked_version,omitempty" yaml:"locked_version,omitempty"`
	SkipReason    SkipReason `json:"skip_reason,omitempty" yaml:"skip_reason,omitempty"`
	RegistryURLs  []string   `json:"registry_urls,omitempty" yaml:"registry_urls,omitempty"`
	Versioning    string     `json:"versioning" yaml:"versioning"`
}

// IsSkipped reports whether the record has no comparable version.
func (d DependencyRecord) IsSkipped() bool {
	return d.SkipReason != ""
}

// Clone returns a copy that shares no slices with d.
func (d DependencyRecord) Clone() DependencyRecord {
	d.RegistryURLs = slices.Clone(d.RegistryURLs)
	return d
}

// ExtractDependencies converts package tokens into dependency records, one per token and in order.
// Tokens without a recognizable version become skipped records; nothing is dropped.
func ExtractDependencies(tokens, registryURLs []string) []DependencyRecord {
	if len(tokens) == 0 {
		return nil
	}

	records := make([]DependencyRecord, 0, len(tokens))
	for _, token := range tokens {
		records = append(records, ParseSpecifier(token).Record(registryURLs))
	}
	return records
}

func cloneRecords(records []DependencyRecord) []DependencyRecord {
	if records == nil {
		return nil
	}
	out := make([]DependencyRecord, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
