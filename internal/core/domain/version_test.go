package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/apkpin/internal/core/domain"
)

func TestParseVersion(t *testing.T) {
	t.Run("splits at first hyphen", func(t *testing.T) {
		v, err := domain.ParseVersion("2.39.0_rc1-r0-extra")
		require.NoError(t, err)
		assert.Equal(t, "2.39.0_rc1", v.Release)
		assert.Equal(t, "r0-extra", v.RevisionSuffix)
		assert.Equal(t, []int{2, 39, 0, 1, 0}, v.NumericSegments)
	})

	t.Run("no revision", func(t *testing.T) {
		v, err := domain.ParseVersion("1.36.1")
		require.NoError(t, err)
		assert.Equal(t, "1.36.1", v.Release)
		assert.Empty(t, v.RevisionSuffix)
	})

	t.Run("digit runs saturate", func(t *testing.T) {
		v, err := domain.ParseVersion("1.99999999999999999999999999")
		require.NoError(t, err)
		assert.Equal(t, []int{1, math.MaxInt}, v.NumericSegments)
	})

	invalid := []string{"", "v1.0.0", "-r0", "abc", "~1.0"}
	for _, raw := range invalid {
		t.Run("invalid "+raw, func(t *testing.T) {
			_, err := domain.ParseVersion(raw)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrInvalidVersion.Error())
			assert.False(t, domain.IsValidVersion(raw))
		})
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.1", "1.0.0", 1},
		{"1.0", "1.0.1", -1},
		{"1.10.0", "1.9.0", 1},
		{"2.39.0-r0", "2.39.0", 1},
		{"2.39.0-r1", "2.39.0-r0", 1},
		{"2.39.0-r10", "2.39.0-r9", 1},
		{"2.39.0~beta", "2.39.0", -1},
		{"1.0~rc1", "1.0", -1},
		{"1.0~rc1", "1.0~rc2", -1},
		{"1.0~", "1.0a", -1},
		{"1.0a", "1.0", 1},
		{"1.0a", "1.01", -1},
		{"1.0b", "1.0a", 1},
		{"1.007", "1.7", 0},
		{"1.123456789012345678901234567890", "1.123456789012345678901234567889", 1},
		{"3.3.0_p1-r0", "3.3.0-r0", 1},
		{"2.39.0_rc1", "2.39.0", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CompareVersions(tt.a, tt.b))
			assert.Equal(t, -tt.want, domain.CompareVersions(tt.b, tt.a), "antisymmetry")
		})
	}
}

func TestCompareVersions_Reflexive(t *testing.T) {
	for _, v := range []string{"1.0.0", "2.39.0-r0", "1.0~rc1", "6.5_p20250503-r0", "not-a-version"} {
		assert.Equal(t, 0, domain.CompareVersions(v, v), v)
	}
}

func TestCompareVersions_InvalidFallback(t *testing.T) {
	assert.Equal(t, 1, domain.CompareVersions("latest", "1.0.0"))
	assert.Equal(t, 1, domain.CompareVersions("1.0.0", "latest"))
}

func TestIsStableVersion(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"2.39.0-r0", true},
		{"2.39.0_rc1-r0", false},
		{"2.39.0-r0_rc2", false},
		{"2.39.0_rc-r0", true},
		{"1.0~beta", true},
		{"invalid", true},
		{"abc_rc1", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsStableVersion(tt.raw))
		})
	}
}

func TestVersionSegments(t *testing.T) {
	major, err := domain.VersionMajor("6.5_p20250503-r0")
	require.NoError(t, err)
	assert.Equal(t, 6, major)

	minor, err := domain.VersionMinor("6.5_p20250503-r0")
	require.NoError(t, err)
	assert.Equal(t, 5, minor)

	patch, err := domain.VersionPatch("6.5_p20250503-r0")
	require.NoError(t, err)
	assert.Equal(t, 20250503, patch)

	_, err = domain.VersionPatch("1.2")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingVersionSegment.Error())

	_, err = domain.VersionMajor("latest")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidVersion.Error())
}

func TestVersionEqualsAndGreaterThan(t *testing.T) {
	assert.True(t, domain.VersionEquals("1.07", "1.7"))
	assert.False(t, domain.VersionEquals("1.7", "1.8"))
	assert.True(t, domain.VersionGreaterThan("1.8", "1.7"))
	assert.False(t, domain.VersionGreaterThan("1.7", "1.8"))
	assert.False(t, domain.VersionGreaterThan("latest", "1.0"))
}

func TestSortVersions(t *testing.T) {
	versions := []string{"2.40.0-r0", "bogus", "2.39.0~beta", "2.39.0-r1", "2.39.0", "2.39.0-r0"}
	domain.SortVersions(versions)
	assert.Equal(t, []string{"2.39.0~beta", "2.39.0", "2.39.0-r0", "2.39.0-r1", "2.40.0-r0", "bogus"}, versions)
}

func TestLatestStableVersion(t *testing.T) {
	candidates := []string{"2.38.0-r0", "2.39.0-r0", "2.40.0-r0", "2.41.0_rc1-r0", "broken"}

	t.Run("picks newest stable above current", func(t *testing.T) {
		got, ok := domain.LatestStableVersion(candidates, "2.39.0-r0")
		require.True(t, ok)
		assert.Equal(t, "2.40.0-r0", got)
	})

	t.Run("nothing newer", func(t *testing.T) {
		_, ok := domain.LatestStableVersion(candidates, "2.40.0-r0")
		assert.False(t, ok)
	})

	t.Run("release candidate current allows candidates", func(t *testing.T) {
		got, ok := domain.LatestStableVersion(candidates, "2.41.0_rc0-r0")
		require.True(t, ok)
		assert.Equal(t, "2.41.0_rc1-r0", got)
	})

	t.Run("invalid current", func(t *testing.T) {
		_, ok := domain.LatestStableVersion(candidates, "latest")
		assert.False(t, ok)
	})
}
