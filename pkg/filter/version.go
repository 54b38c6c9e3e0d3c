package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	errs "github.com/matzehuels/galleryfind/pkg/errors"
)

// Bound is one end of a version interval. Version is always held in
// normalized form.
type Bound struct {
	Version   string
	Inclusive bool
}

// VersionRange is an interval with optional lower and upper bounds. The zero
// value places no constraint on the version.
type VersionRange struct {
	Min *Bound
	Max *Bound
}

// IsEmpty reports whether the range has neither bound.
func (r VersionRange) IsEmpty() bool { return r.Min == nil && r.Max == nil }

// IsExact reports whether the range pins a single version, as in "[1.0]".
func (r VersionRange) IsExact() bool {
	return r.Min != nil && r.Max != nil &&
		r.Min.Inclusive && r.Max.Inclusive &&
		r.Min.Version == r.Max.Version
}

// String renders the range in NuGet interval notation.
func (r VersionRange) String() string {
	if r.IsEmpty() {
		return "*"
	}
	if r.IsExact() {
		return "[" + r.Min.Version + "]"
	}
	var b strings.Builder
	if r.Min != nil && r.Min.Inclusive {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	if r.Min != nil {
		b.WriteString(r.Min.Version)
	}
	b.WriteByte(',')
	if r.Max != nil {
		b.WriteString(r.Max.Version)
	}
	if r.Max != nil && r.Max.Inclusive {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}

// NewBound normalizes v and returns a bound for it.
func NewBound(v string, inclusive bool) (*Bound, error) {
	n, err := NormalizeVersion(v)
	if err != nil {
		return nil, err
	}
	return &Bound{Version: n, Inclusive: inclusive}, nil
}

// VersionClause translates r into NormalizedVersion comparators joined by
// "and", lower bound first. An empty range yields the empty clause.
func VersionClause(r VersionRange) Clause {
	var lower, upper Clause
	if r.Min != nil {
		op := OpGt
		if r.Min.Inclusive {
			op = OpGe
		}
		lower = Compare(FieldNormalizedVersion, op, r.Min.Version)
	}
	if r.Max != nil {
		op := OpLt
		if r.Max.Inclusive {
			op = OpLe
		}
		upper = Compare(FieldNormalizedVersion, op, r.Max.Version)
	}
	return And(lower, upper)
}

// ExactVersionClause returns "NormalizedVersion eq 'v'" for an already
// normalized version.
func ExactVersionClause(v string) Clause {
	return Compare(FieldNormalizedVersion, OpEq, v)
}

// ParseVersionRange parses NuGet interval notation. The empty string and "*"
// mean any version. A bare version is a minimum inclusive bound.
func ParseVersionRange(s string) (VersionRange, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return VersionRange{}, nil
	}

	opening, closing := s[0], s[len(s)-1]
	if opening != '[' && opening != '(' {
		lower, err := NewBound(s, true)
		if err != nil {
			return VersionRange{}, err
		}
		return VersionRange{Min: lower}, nil
	}
	if len(s) < 2 || (closing != ']' && closing != ')') {
		return VersionRange{}, errs.New(errs.ErrCodeInvalidVersion, "malformed version range %q", s)
	}

	body := strings.TrimSpace(s[1 : len(s)-1])
	parts := strings.Split(body, ",")
	switch len(parts) {
	case 1:
		if opening != '[' || closing != ']' || body == "" {
			return VersionRange{}, errs.New(errs.ErrCodeInvalidVersion, "exact version range %q must use inclusive brackets", s)
		}
		b, err := NewBound(body, true)
		if err != nil {
			return VersionRange{}, err
		}
		return VersionRange{Min: b, Max: &Bound{Version: b.Version, Inclusive: true}}, nil
	case 2:
	default:
		return VersionRange{}, errs.New(errs.ErrCodeInvalidVersion, "malformed version range %q", s)
	}

	var r VersionRange
	if lo := strings.TrimSpace(parts[0]); lo != "" {
		b, err := NewBound(lo, opening == '[')
		if err != nil {
			return VersionRange{}, err
		}
		r.Min = b
	}
	if hi := strings.TrimSpace(parts[1]); hi != "" {
		b, err := NewBound(hi, closing == ']')
		if err != nil {
			return VersionRange{}, err
		}
		r.Max = b
	}
	if r.IsEmpty() {
		return VersionRange{}, errs.New(errs.ErrCodeInvalidVersion, "version range %q has no bounds", s)
	}
	if r.Min != nil && r.Max != nil {
		c := compareNormalized(r.Min.Version, r.Max.Version)
		if c > 0 || (c == 0 && !(r.Min.Inclusive && r.Max.Inclusive)) {
			return VersionRange{}, errs.New(errs.ErrCodeInvalidVersion, "version range %q matches no version", s)
		}
	}
	return r, nil
}

// compareNormalized orders two versions produced by [NormalizeVersion].
// The numeric core is compared component by component, with a missing
// fourth component counting as zero. Prerelease labels follow semver
// precedence and sort before the release.
func compareNormalized(a, b string) int {
	coreA, preA, _ := strings.Cut(a, "-")
	coreB, preB, _ := strings.Cut(b, "-")
	if c := compareCore(coreA, coreB); c != 0 {
		return c
	}
	switch {
	case preA == preB:
		return 0
	case preA == "":
		return 1
	case preB == "":
		return -1
	}
	va, errA := semver.NewVersion("0.0.0-" + preA)
	vb, errB := semver.NewVersion("0.0.0-" + preB)
	if errA != nil || errB != nil {
		return strings.Compare(preA, preB)
	}
	return va.Compare(vb)
}

func compareCore(a, b string) int {
	pa, pb := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < 4; i++ {
		na, nb := coreComponent(pa, i), coreComponent(pb, i)
		if na != nb {
			if na < nb {
				return -1
			}
			return 1
		}
	}
	return 0
}

func coreComponent(parts []string, i int) uint64 {
	if i >= len(parts) {
		return 0
	}
	n, _ := strconv.ParseUint(parts[i], 10, 64)
	return n
}

// NormalizeVersion returns the normalized form of a package version:
// major.minor.patch, plus a fourth component only when it is non-zero, plus
// the prerelease label. Build metadata is dropped. "1.0" becomes "1.0.0" and
// "1.0.0.0" becomes "1.0.0".
func NormalizeVersion(v string) (string, error) {
	raw := strings.TrimSpace(v)
	if raw == "" {
		return "", errs.New(errs.ErrCodeInvalidVersion, "version cannot be empty")
	}

	if sv, err := semver.NewVersion(raw); err == nil {
		out := fmt.Sprintf("%d.%d.%d", sv.Major(), sv.Minor(), sv.Patch())
		if pre := sv.Prerelease(); pre != "" {
			out += "-" + pre
		}
		return out, nil
	}
	return normalizeFourPart(raw)
}

// normalizeFourPart handles the legacy major.minor.build.revision shape that
// semver rejects.
func normalizeFourPart(raw string) (string, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(raw, "v"), "V")
	if i := strings.IndexByte(s, '+'); i >= 0 {
		s = s[:i]
	}
	var pre string
	if i := strings.IndexByte(s, '-'); i >= 0 {
		s, pre = s[:i], s[i+1:]
		if pre == "" {
			return "", errs.New(errs.ErrCodeInvalidVersion, "invalid version %q", raw)
		}
	}

	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return "", errs.New(errs.ErrCodeInvalidVersion, "invalid version %q", raw)
	}
	nums := make([]uint64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return "", errs.Wrap(errs.ErrCodeInvalidVersion, err, "invalid version %q", raw)
		}
		nums[i] = n
	}

	out := fmt.Sprintf("%d.%d.%d", nums[0], nums[1], nums[2])
	if nums[3] != 0 {
		out += fmt.Sprintf(".%d", nums[3])
	}
	if pre != "" {
		out += "-" + pre
	}
	return out, nil
}
