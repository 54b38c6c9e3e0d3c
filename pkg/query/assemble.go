package query

import (
	"net/url"
	"strconv"
	"strings"

	errs "github.com/matzehuels/galleryfind/pkg/errors"
	"github.com/matzehuels/galleryfind/pkg/filter"
)

// SelectFields lists the package metadata requested from the catalog.
var SelectFields = []string{
	"Id", "Version", "Authors", "Copyright", "Dependencies", "Description",
	"IconUrl", "IsPrerelease", "Published", "ProjectUrl", "ReleaseNotes",
	"Tags", "LicenseUrl", "CompanyName",
}

// PageSize bounds a single pattern search response.
const PageSize = 6000

const (
	latestStable filter.Clause = "IsLatestVersion"
	latestAny    filter.Clause = "IsAbsoluteLatestVersion"
	stableOnly   filter.Clause = filter.FieldIsPrerelease + " eq false"
)

const (
	commandTag      = "PSCommand_"
	dscResourceTag  = "PSDscResource_"
	searchTermTag   = "tag:"
	orderByIDDesc   = filter.FieldID + " desc"
	orderByVersion  = filter.FieldNormalizedVersion + " desc"
	inlineCountAll  = "allpages"
	includePrerelOn = "true"
)

var selectParam = Param{Key: ParamSelect, Value: strings.Join(SelectFields, ",")}

// latest returns the top-level predicate choosing the newest stable or the
// newest version overall, with the parameter the catalog needs to consider
// prerelease versions at all.
func latest(prerelease bool) (filter.Clause, []Param) {
	if prerelease {
		return latestAny, []Param{{Key: ParamIncludePrerelease, Value: includePrerelOn}}
	}
	return latestStable, nil
}

func typeClause(t ResourceType) filter.Clause {
	if t == None {
		return ""
	}
	return filter.HasTag(t.Tag())
}

func idParam(name string) Param {
	return Param{Key: ParamID, Value: filter.Literal(name)}
}

func validateName(name string) error {
	if err := errs.ValidatePackageName(name); err != nil {
		return err
	}
	if filter.HasWildcard(name) {
		return errs.New(errs.ErrCodeInvalidPackage, "package name %q contains a wildcard; use a pattern search", name)
	}
	return nil
}

// ListAll lists the latest version of every package.
func ListAll(prerelease bool) Query {
	pred, params := latest(prerelease)
	return Query{
		Path:   PathSearch,
		Filter: pred,
		Params: append(params, selectParam),
	}
}

// ListByTag lists packages carrying every tag in tags. With an unspecified
// resource type two queries are returned, script items first; the caller
// must issue both. Script queries only the script endpoint and every other
// type only the general endpoint.
//
// At least one non-blank tag is required. A tag naming a resource type
// (e.g. "PSModule") is rejected: it would render exactly like the type
// predicate, so the type must be given as t.
func ListByTag(tags []string, t ResourceType, prerelease bool) ([]Query, error) {
	pred, params := latest(prerelease)
	clauses := []filter.Clause{pred, typeClause(t)}
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag == "" {
			continue
		}
		if rt, ok := typeForTag(tag); ok {
			return nil, errs.New(errs.ErrCodeInvalidInput, "tag %q is the %s resource type tag; filter by resource type instead", tag, rt)
		}
		clauses = append(clauses, filter.HasTag(tag))
	}
	if len(clauses) == 2 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "at least one tag is required")
	}
	f := filter.And(clauses...)
	params = append(params, selectParam)

	var paths []string
	switch t {
	case None:
		paths = []string{PathScriptSearch, PathSearch}
	case Script:
		paths = []string{PathScriptSearch}
	default:
		paths = []string{PathSearch}
	}

	queries := make([]Query, len(paths))
	for i, p := range paths {
		queries[i] = Query{Path: p, Filter: f, Params: append([]Param(nil), params...)}
	}
	return queries, nil
}

// typeForTag reports the resource type whose catalog tag equals tag. The
// catalog matches tags case-insensitively.
func typeForTag(tag string) (ResourceType, bool) {
	for _, t := range []ResourceType{Module, Script, Command, DSCResource} {
		if strings.EqualFold(tag, t.Tag()) {
			return t, true
		}
	}
	return None, false
}

// ListByCommandOrDSCResource lists packages exporting the named command or
// DSC resource. t must be [Command] or [DSCResource].
func ListByCommandOrDSCResource(name string, t ResourceType, prerelease bool) (Query, error) {
	var prefix string
	switch t {
	case Command:
		prefix = commandTag
	case DSCResource:
		prefix = dscResourceTag
	default:
		return Query{}, errs.New(errs.ErrCodeInvalidType, "resource type %s cannot be searched by exported name; want Command or DscResource", t)
	}
	if err := validateName(name); err != nil {
		return Query{}, err
	}

	pred, params := latest(prerelease)
	return Query{
		Path:   PathSearch,
		Filter: filter.And(pred, filter.HasTag(prefix+name)),
		Params: append(params, selectParam),
	}, nil
}

// ListByTypeAndName lists packages of type t whose identifier contains name.
// At least one of name and t is required.
//
// The query always includes prerelease versions and takes no stable-only
// option; existing callers depend on that.
func ListByTypeAndName(name string, t ResourceType) (Query, error) {
	name = strings.TrimSpace(name)
	if name == "" && t == None {
		return Query{}, errs.New(errs.ErrCodeInvalidInput, "a name or a resource type is required")
	}

	var nameClause filter.Clause
	if name != "" {
		nameClause = filter.SubstringOf(name, filter.FieldID)
	}
	pred, params := latest(true)
	return Query{
		Path:   PathSearch,
		Filter: filter.And(pred, typeClause(t), nameClause),
		Params: append(params, selectParam),
	}, nil
}

// ListByCommandNames lists packages exporting any of the named commands.
// The names become unquoted "tag:PSCommand_<name>" tokens in one searchTerm,
// which the catalog evaluates as OR.
func ListByCommandNames(names []string, prerelease bool) (Query, error) {
	tokens := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n == "" {
			continue
		}
		if err := validateName(n); err != nil {
			return Query{}, err
		}
		tokens = append(tokens, searchTermTag+commandTag+n)
	}
	if len(tokens) == 0 {
		return Query{}, errs.New(errs.ErrCodeInvalidInput, "at least one command name is required")
	}

	pred, params := latest(prerelease)
	params = append([]Param{{Key: ParamSearchTerm, Value: filter.Literal(strings.Join(tokens, " "))}}, params...)
	return Query{
		Path:   PathSearch,
		Filter: pred,
		Params: append(params, selectParam),
	}, nil
}

// FindName looks up the latest version of an exact package name. Without a
// resource type the filter pins the identifier; with one it requires the
// type tag instead.
func FindName(name string, t ResourceType, prerelease bool) (Query, error) {
	if err := validateName(name); err != nil {
		return Query{}, err
	}

	pred, params := latest(prerelease)
	second := typeClause(t)
	if t == None {
		second = filter.Eq(filter.FieldID, name)
	}
	params = append([]Param{idParam(name)}, params...)
	return Query{
		Path:   PathFindByID,
		Filter: filter.And(pred, second),
		Params: append(params, selectParam),
	}, nil
}

// FindNamePattern searches for names matching a wildcard pattern. Results are
// ordered by identifier and bounded to one page of [PageSize] entries.
func FindNamePattern(pattern string, prerelease bool) (Query, error) {
	if err := errs.ValidatePackageName(pattern); err != nil {
		return Query{}, err
	}
	nameClause, err := filter.NameClause(pattern)
	if err != nil {
		return Query{}, err
	}

	pred, params := latest(prerelease)
	params = append(params,
		Param{Key: ParamOrderBy, Value: orderByIDDesc},
		Param{Key: ParamInlineCount, Value: inlineCountAll},
		Param{Key: ParamSkip, Value: "0"},
		Param{Key: ParamTop, Value: strconv.Itoa(PageSize)},
		selectParam,
	)
	return Query{
		Path:   PathSearch,
		Filter: filter.And(pred, nameClause),
		Params: params,
	}, nil
}

// FindVersionRange lists the versions of name within r, newest first. When
// prerelease versions are unwanted a single "IsPrerelease eq false" predicate
// is added rather than adjusting the bounds.
func FindVersionRange(name string, r filter.VersionRange, t ResourceType, prerelease bool) (Query, error) {
	if err := validateName(name); err != nil {
		return Query{}, err
	}

	var pre filter.Clause
	if !prerelease {
		pre = stableOnly
	}
	return Query{
		Path:   PathFindByID,
		Filter: filter.And(pre, filter.VersionClause(r), typeClause(t)),
		Params: []Param{
			idParam(name),
			{Key: ParamOrderBy, Value: orderByVersion},
			selectParam,
		},
	}, nil
}

// FindVersion looks up one exact version of name.
func FindVersion(name, version string, t ResourceType) (Query, error) {
	if err := validateName(name); err != nil {
		return Query{}, err
	}
	v, err := filter.NormalizeVersion(version)
	if err != nil {
		return Query{}, err
	}

	return Query{
		Path:   PathFindByID,
		Filter: filter.And(filter.ExactVersionClause(v), typeClause(t), filter.Eq(filter.FieldID, name)),
		Params: []Param{idParam(name), selectParam},
	}, nil
}

// InstallName addresses the package content of the latest version of name.
// The query carries no parameters.
func InstallName(name string) (Query, error) {
	if err := validateName(name); err != nil {
		return Query{}, err
	}
	return Query{Path: PathPackage + "/" + url.PathEscape(name)}, nil
}

// InstallVersion addresses the package content of one version of name.
func InstallVersion(name, version string) (Query, error) {
	if err := validateName(name); err != nil {
		return Query{}, err
	}
	v, err := filter.NormalizeVersion(version)
	if err != nil {
		return Query{}, err
	}
	return Query{Path: PathPackage + "/" + url.PathEscape(name) + "/" + url.PathEscape(v)}, nil
}
