package filter

import (
	"strings"

	errs "github.com/matzehuels/galleryfind/pkg/errors"
)

// Wildcard is the marker recognised in name patterns.
const Wildcard = "*"

// PatternKind classifies the shape of a wildcard name pattern.
type PatternKind int

const (
	// Unsupported is any shape the catalog cannot express.
	Unsupported PatternKind = iota
	// Contains is "*text*".
	Contains
	// Prefix is "text*".
	Prefix
	// Suffix is "*text".
	Suffix
	// PrefixAndSuffix is "pre*suf".
	PrefixAndSuffix
)

var patternKindNames = [...]string{"Unsupported", "Contains", "Prefix", "Suffix", "PrefixAndSuffix"}

func (k PatternKind) String() string {
	if int(k) < len(patternKindNames) {
		return patternKindNames[k]
	}
	return "Unsupported"
}

// Pattern is a classified name pattern.
type Pattern struct {
	Raw      string
	Kind     PatternKind
	Segments []string // non-empty text between wildcard markers
}

// unsupportedPatternMsg enumerates the shapes [NameClause] accepts.
const unsupportedPatternMsg = "name pattern %q is not supported; wildcards are only supported in forms like " +
	"PowerShell* (prefix), *ShellGet (suffix), *Shell* (contains) and Power*Get (prefix and suffix)"

// HasWildcard reports whether name contains the wildcard marker.
func HasWildcard(name string) bool { return strings.Contains(name, Wildcard) }

// ClassifyPattern splits pattern on the wildcard marker and determines its shape.
// A pattern without any marker is Unsupported; exact names are looked up by
// identifier instead.
func ClassifyPattern(pattern string) Pattern {
	p := Pattern{Raw: pattern, Kind: Unsupported}
	if !HasWildcard(pattern) {
		return p
	}

	for _, s := range strings.Split(pattern, Wildcard) {
		if s != "" {
			p.Segments = append(p.Segments, s)
		}
	}

	leading := strings.HasPrefix(pattern, Wildcard)
	trailing := strings.HasSuffix(pattern, Wildcard)

	switch len(p.Segments) {
	case 1:
		switch {
		case leading && trailing:
			p.Kind = Contains
		case trailing:
			p.Kind = Prefix
		default:
			p.Kind = Suffix
		}
	case 2:
		if !leading && !trailing {
			p.Kind = PrefixAndSuffix
		}
	}
	return p
}

// Clause renders the predicate for a classified pattern against the Id field.
// It returns an UNSUPPORTED_PATTERN error for [Unsupported] patterns and never
// returns both a clause and an error.
func (p Pattern) Clause() (Clause, error) {
	switch p.Kind {
	case Contains:
		return SubstringOf(p.Segments[0], FieldID), nil
	case Prefix:
		return StartsWith(FieldID, p.Segments[0]), nil
	case Suffix:
		return EndsWith(FieldID, p.Segments[0]), nil
	case PrefixAndSuffix:
		return And(StartsWith(FieldID, p.Segments[0]), EndsWith(FieldID, p.Segments[1])), nil
	default:
		return "", errs.New(errs.ErrCodeUnsupportedPattern, unsupportedPatternMsg, p.Raw)
	}
}

// NameClause classifies pattern and renders its Id predicate.
func NameClause(pattern string) (Clause, error) {
	return ClassifyPattern(pattern).Clause()
}
