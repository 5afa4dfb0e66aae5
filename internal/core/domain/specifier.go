package domain

import (
	"regexp"
	"slices"
	"strings"
)

// SpecifierKind tags the shape of a package token.
type SpecifierKind int

const (
	// SpecifierUnversioned is a bare package name or an unrecognized token.
	SpecifierUnversioned SpecifierKind = iota
	// SpecifierPinned is an exact pin written as name=version or name-version.
	SpecifierPinned
	// SpecifierRange is a constraint such as name>=version. It is recognized, never resolved.
	SpecifierRange
)

// String returns the string representation of the SpecifierKind.
func (k SpecifierKind) String() string {
	switch k {
	case SpecifierPinned:
		return "pinned"
	case SpecifierRange:
		return "range"
	default:
		return "unversioned"
	}
}

// Specifier is a parsed package token.
type Specifier struct {
	Kind SpecifierKind
	// Raw is the token as written.
	Raw string
	// Name is the package name. For unversioned tokens it is Raw.
	Name string
	// Operator is "=" or "-" for pins and the constraint operator for ranges.
	Operator string
	// Version is the version text following the operator.
	Version string
}

// Value returns the declared value: the version for pins, operator plus version for ranges.
func (s Specifier) Value() string {
	switch s.Kind {
	case SpecifierPinned:
		return s.Version
	case SpecifierRange:
		return s.Operator + s.Version
	default:
		return ""
	}
}

// Record converts the specifier into a dependency record.
func (s Specifier) Record(registryURLs []string) DependencyRecord {
	rec := DependencyRecord{
		Datasource:   DatasourceAPK,
		DepName:      s.Name,
		RegistryURLs: slices.Clone(registryURLs),
		Versioning:   VersioningAPK,
	}
	if s.Kind == SpecifierUnversioned {
		rec.SkipReason = SkipReasonNotAVersion
	} else {
		rec.CurrentValue = s.Value()
	}
	return rec
}

type specifierMatcher func(raw string) (Specifier, bool)

// specifierMatchers are evaluated in order; the first match wins.
var specifierMatchers = []specifierMatcher{
	matchPinned,
	matchHyphenated,
	matchConstraint,
}

var (
	exactVersionPrefix = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+`)
	rangeVersionPrefix = regexp.MustCompile(`^[0-9]+\.[0-9]+`)
)

const constraintOperatorChars = "<>=~^"

// constraintOperators are tried longest first.
var constraintOperators = []string{"<=", ">=", "<", ">", "~", "^"}

// ParseSpecifier classifies a package token. It never fails: anything that is
// not a recognizable pin or constraint is returned as unversioned.
func ParseSpecifier(raw string) Specifier {
	for _, match := range specifierMatchers {
		if spec, ok := match(raw); ok {
			return spec
		}
	}
	return Specifier{Kind: SpecifierUnversioned, Raw: raw, Name: raw}
}

func matchPinned(raw string) (Specifier, bool) {
	i := lastSeparatorBefore(raw, '=', exactVersionPrefix)
	if i <= 0 || strings.ContainsAny(raw[:i], constraintOperatorChars) {
		return Specifier{}, false
	}
	return Specifier{Kind: SpecifierPinned, Raw: raw, Name: raw[:i], Operator: "=", Version: raw[i+1:]}, true
}

func matchHyphenated(raw string) (Specifier, bool) {
	i := lastSeparatorBefore(raw, '-', exactVersionPrefix)
	if i <= 0 || strings.ContainsAny(raw[:i], constraintOperatorChars) {
		return Specifier{}, false
	}
	return Specifier{Kind: SpecifierPinned, Raw: raw, Name: raw[:i], Operator: "-", Version: raw[i+1:]}, true
}

func matchConstraint(raw string) (Specifier, bool) {
	i := strings.IndexAny(raw, constraintOperatorChars)
	if i <= 0 {
		return Specifier{}, false
	}
	rest := raw[i:]
	for _, op := range constraintOperators {
		version, ok := strings.CutPrefix(rest, op)
		if !ok {
			continue
		}
		if !rangeVersionPrefix.MatchString(version) {
			return Specifier{}, false
		}
		return Specifier{Kind: SpecifierRange, Raw: raw, Name: raw[:i], Operator: op, Version: version}, true
	}
	return Specifier{}, false
}

// lastSeparatorBefore returns the index of the last sep in raw that is
// followed by text matching prefix, or -1.
func lastSeparatorBefore(raw string, sep byte, prefix *regexp.Regexp) int {
	for i := len(raw) - 1; i >= 0; i-- {
		if raw[i] == sep && prefix.MatchString(raw[i+1:]) {
			return i
		}
	}
	return -1
}
