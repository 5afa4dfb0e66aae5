package domain

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

var (
	versionTokenPattern = regexp.MustCompile(`[a-zA-Z]+|[0-9]+|~`)
	digitRunPattern     = regexp.MustCompile(`[0-9]+`)
	releaseCandidate    = regexp.MustCompile(`_rc[0-9]+`)
)

// ParsedVersion is an APK version split at its first hyphen.
// Values are immutable once returned by ParseVersion.
type ParsedVersion struct {
	// Release is the upstream part, e.g. "2.39.0_rc1".
	Release string
	// RevisionSuffix is everything after the first hyphen, e.g. "r0".
	RevisionSuffix string
	// NumericSegments holds every digit run of the raw string in order.
	NumericSegments []int
}

// ParseVersion splits raw into release and revision parts.
// The release must start with an ASCII digit.
func ParseVersion(raw string) (ParsedVersion, error) {
	release, revision, _ := strings.Cut(raw, "-")
	if release == "" || !isDigit(release[0]) {
		return ParsedVersion{}, zerr.With(ErrInvalidVersion, "version", raw)
	}

	runs := digitRunPattern.FindAllString(raw, -1)
	segments := make([]int, len(runs))
	for i, run := range runs {
		segments[i] = saturatingAtoi(run)
	}

	return ParsedVersion{
		Release:         release,
		RevisionSuffix:  revision,
		NumericSegments: segments,
	}, nil
}

// IsValidVersion reports whether raw parses as an APK version.
func IsValidVersion(raw string) bool {
	_, err := ParseVersion(raw)
	return err == nil
}

// IsStableVersion reports whether raw carries no release candidate marker.
// Input that does not parse is judged on the raw string.
func IsStableVersion(raw string) bool {
	v, err := ParseVersion(raw)
	if err != nil {
		return !releaseCandidate.MatchString(raw)
	}
	return !releaseCandidate.MatchString(v.Release) && !releaseCandidate.MatchString(v.RevisionSuffix)
}

// CompareVersions returns -1, 0 or 1 depending on whether a sorts before, equal to, or after b.
// If either side is not a valid version the result is 1; callers that need a
// strict order must validate first.
func CompareVersions(a, b string) int {
	if a == b {
		return 0
	}

	va, errA := ParseVersion(a)
	vb, errB := ParseVersion(b)
	if errA != nil || errB != nil {
		return 1
	}

	if c := compareSegment(va.Release, vb.Release); c != 0 {
		return c
	}
	return compareSegment(va.RevisionSuffix, vb.RevisionSuffix)
}

// VersionEquals reports whether a and b compare equal.
func VersionEquals(a, b string) bool {
	return CompareVersions(a, b) == 0
}

// VersionGreaterThan reports whether a sorts strictly after b.
// Both versions must be valid.
func VersionGreaterThan(a, b string) bool {
	return IsValidVersion(a) && IsValidVersion(b) && CompareVersions(a, b) > 0
}

// SortVersions sorts versions in ascending order in place.
// Invalid entries are moved to the end, keeping their relative order.
func SortVersions(versions []string) {
	slices.SortStableFunc(versions, func(a, b string) int {
		validA, validB := IsValidVersion(a), IsValidVersion(b)
		switch {
		case validA && validB:
			return CompareVersions(a, b)
		case validA:
			return -1
		case validB:
			return 1
		default:
			return 0
		}
	})
}

// LatestStableVersion returns the highest stable candidate that is greater than current.
// When current itself is a release candidate, release candidates are also considered.
func LatestStableVersion(candidates []string, current string) (string, bool) {
	if !IsValidVersion(current) {
		return "", false
	}
	allowUnstable := !IsStableVersion(current)

	best := ""
	for _, candidate := range candidates {
		if !IsValidVersion(candidate) {
			continue
		}
		if !allowUnstable && !IsStableVersion(candidate) {
			continue
		}
		if CompareVersions(candidate, current) <= 0 {
			continue
		}
		if best == "" || CompareVersions(candidate, best) > 0 {
			best = candidate
		}
	}
	return best, best != ""
}

// VersionMajor returns the first numeric segment of raw.
func VersionMajor(raw string) (int, error) {
	return numericSegment(raw, 0, "major")
}

// VersionMinor returns the second numeric segment of raw.
func VersionMinor(raw string) (int, error) {
	return numericSegment(raw, 1, "minor")
}

// VersionPatch returns the third numeric segment of raw.
func VersionPatch(raw string) (int, error) {
	return numericSegment(raw, 2, "patch")
}

func numericSegment(raw string, index int, name string) (int, error) {
	v, err := ParseVersion(raw)
	if err != nil {
		return 0, err
	}
	if index >= len(v.NumericSegments) {
		segErr := zerr.With(ErrMissingVersionSegment, "version", raw)
		segErr = zerr.With(segErr, "segment", name)
		return 0, segErr
	}
	return v.NumericSegments[index], nil
}

// compareSegment orders two release or revision strings token by token.
func compareSegment(a, b string) int {
	if a == b {
		return 0
	}

	ta := versionTokenPattern.FindAllString(a, -1)
	tb := versionTokenPattern.FindAllString(b, -1)

	n := min(len(ta), len(tb))
	for i := range n {
		if c := compareToken(ta[i], tb[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(ta) == len(tb):
		return 0
	case len(ta) > n && ta[n] == "~":
		return -1
	case len(tb) > n && tb[n] == "~":
		return 1
	case len(ta) > len(tb):
		return 1
	default:
		return -1
	}
}

func compareToken(a, b string) int {
	tildeA, tildeB := a == "~", b == "~"
	if tildeA != tildeB {
		if tildeA {
			return -1
		}
		return 1
	}

	numA, numB := isDigit(a[0]), isDigit(b[0])
	switch {
	case numA && numB:
		return compareNumeric(a, b)
	case numA:
		return 1
	case numB:
		return -1
	default:
		return strings.Compare(a, b)
	}
}

// compareNumeric compares two digit strings of any length as integers.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func saturatingAtoi(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
