package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/apkpin/internal/core/domain"
)

func TestParseSpecifier(t *testing.T) {
	tests := []struct {
		raw      string
		kind     domain.SpecifierKind
		name     string
		operator string
		version  string
		value    string
	}{
		{"git=2.39.0-r0", domain.SpecifierPinned, "git", "=", "2.39.0-r0", "2.39.0-r0"},
		{"busybox=1.36.1", domain.SpecifierPinned, "busybox", "=", "1.36.1", "1.36.1"},
		{"nginx-1.24.0", domain.SpecifierPinned, "nginx", "-", "1.24.0", "1.24.0"},
		{"nginx-1.24.0-r0", domain.SpecifierPinned, "nginx", "-", "1.24.0-r0", "1.24.0-r0"},
		{"python-pip-23.0.0", domain.SpecifierPinned, "python-pip", "-", "23.0.0", "23.0.0"},
		{"nodejs-20.10.0", domain.SpecifierPinned, "nodejs", "-", "20.10.0", "20.10.0"},
		{"git>=2.40", domain.SpecifierRange, "git", ">=", "2.40", ">=2.40"},
		{"git>=2.40.0", domain.SpecifierRange, "git", ">=", "2.40.0", ">=2.40.0"},
		{"curl<8.5", domain.SpecifierRange, "curl", "<", "8.5", "<8.5"},
		{"curl<=8.5.0-r0", domain.SpecifierRange, "curl", "<=", "8.5.0-r0", "<=8.5.0-r0"},
		{"py3-pip~23.0", domain.SpecifierRange, "py3-pip", "~", "23.0", "~23.0"},
		{"openssl^3.1", domain.SpecifierRange, "openssl", "^", "3.1", "^3.1"},
		{"nginx", domain.SpecifierUnversioned, "nginx", "", "", ""},
		{"ca-certificates-bundle", domain.SpecifierUnversioned, "ca-certificates-bundle", "", "", ""},
		{"git=2.40", domain.SpecifierUnversioned, "git=2.40", "", "", ""},
		{"git=latest", domain.SpecifierUnversioned, "git=latest", "", "", ""},
		{"foo~bar", domain.SpecifierUnversioned, "foo~bar", "", "", ""},
		{"=1.2.3", domain.SpecifierUnversioned, "=1.2.3", "", "", ""},
		{"", domain.SpecifierUnversioned, "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			spec := domain.ParseSpecifier(tt.raw)
			assert.Equal(t, tt.kind, spec.Kind, "kind")
			assert.Equal(t, tt.raw, spec.Raw)
			assert.Equal(t, tt.name, spec.Name)
			assert.Equal(t, tt.operator, spec.Operator)
			assert.Equal(t, tt.version, spec.Version)
			assert.Equal(t, tt.value, spec.Value())
		})
	}
}

func TestSpecifierKind_String(t *testing.T) {
	assert.Equal(t, "pinned", domain.SpecifierPinned.String())
	assert.Equal(t, "range", domain.SpecifierRange.String())
	assert.Equal(t, "unversioned", domain.SpecifierUnversioned.String())
}

func TestExtractDependencies(t *testing.T) {
	registries := []string{"https://example.com/main"}

	t.Run("one record per token in order", func(t *testing.T) {
		tokens := []string{"nginx-1.24.0", "nodejs-20.10.0", "curl", "git>=2.40", "nginx-1.24.0"}
		records := domain.ExtractDependencies(tokens, registries)
		require.Len(t, records, len(tokens))

		assert.Equal(t, domain.DependencyRecord{
			Datasource:   domain.DatasourceAPK,
			DepName:      "nginx",
			CurrentValue: "1.24.0",
			RegistryURLs: registries,
			Versioning:   domain.VersioningAPK,
		}, records[0])
		assert.Equal(t, "nodejs", records[1].DepName)
		assert.Equal(t, "20.10.0", records[1].CurrentValue)

		assert.Equal(t, "curl", records[2].DepName)
		assert.Empty(t, records[2].CurrentValue)
		assert.Equal(t, domain.SkipReasonNotAVersion, records[2].SkipReason)
		assert.True(t, records[2].IsSkipped())

		assert.Equal(t, ">=2.40", records[3].CurrentValue)
		assert.Equal(t, records[0], records[4], "duplicates are kept")
	})

	t.Run("exactly one of current value and skip reason", func(t *testing.T) {
		tokens := []string{"a=1.2.3", "b", "c-1.2.3", "d>1.2", "e=x", "f g"}
		for _, rec := range domain.ExtractDependencies(tokens, nil) {
			assert.NotEqual(t, rec.CurrentValue == "", rec.SkipReason == "", rec.DepName)
			assert.Equal(t, domain.DatasourceAPK, rec.Datasource)
			assert.Equal(t, domain.VersioningAPK, rec.Versioning)
			assert.Nil(t, rec.RegistryURLs)
		}
	})

	t.Run("records do not share registry slices", func(t *testing.T) {
		urls := []string{"https://example.com/main"}
		records := domain.ExtractDependencies([]string{"a=1.2.3", "b=1.2.3"}, urls)
		records[0].RegistryURLs[0] = "changed"
		assert.Equal(t, "https://example.com/main", records[1].RegistryURLs[0])
		assert.Equal(t, "https://example.com/main", urls[0])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, domain.ExtractDependencies(nil, registries))
		assert.Empty(t, domain.ExtractDependencies([]string{}, registries))
	})
}
