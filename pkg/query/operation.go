package query

import (
	errs "github.com/matzehuels/galleryfind/pkg/errors"
	"github.com/matzehuels/galleryfind/pkg/filter"
)

// Operation identifies one of the supported catalog operations.
type Operation int

const (
	OpListAll Operation = iota
	OpListByTag
	OpListByCommandOrDSCResource
	OpListByTypeAndName
	OpListByCommandNames
	OpFindName
	OpFindNamePattern
	OpFindVersionRange
	OpFindVersion
	OpInstall
)

var operationNames = [...]string{
	"list-all",
	"list-by-tag",
	"list-by-command-or-dsc-resource",
	"list-by-type-and-name",
	"list-by-command-names",
	"find-name",
	"find-name-pattern",
	"find-version-range",
	"find-version",
	"install",
}

func (o Operation) String() string {
	if o >= 0 && int(o) < len(operationNames) {
		return operationNames[o]
	}
	return "unknown"
}

// Resolve picks the operation a general search for c maps to: command names,
// then tags, then the shape of the name and version constraint.
func Resolve(c Criteria) Operation {
	switch {
	case len(c.Commands) > 0:
		return OpListByCommandNames
	case len(c.Tags) > 0:
		return OpListByTag
	case c.Name == "" || c.Name == filter.Wildcard:
		return OpListAll
	case filter.HasWildcard(c.Name):
		return OpFindNamePattern
	case c.Versions.IsExact():
		return OpFindVersion
	case !c.Versions.IsEmpty():
		return OpFindVersionRange
	default:
		return OpFindName
	}
}

// Assemble builds the queries for op from c. Only [OpListByTag] can return
// more than one query; every returned query must be issued.
func Assemble(op Operation, c Criteria) ([]Query, error) {
	one := func(q Query, err error) ([]Query, error) {
		if err != nil {
			return nil, err
		}
		return []Query{q}, nil
	}

	switch op {
	case OpListAll:
		return []Query{ListAll(c.Prerelease)}, nil
	case OpListByTag:
		return ListByTag(c.Tags, c.Type, c.Prerelease)
	case OpListByCommandOrDSCResource:
		return one(ListByCommandOrDSCResource(c.Name, c.Type, c.Prerelease))
	case OpListByTypeAndName:
		return one(ListByTypeAndName(c.Name, c.Type))
	case OpListByCommandNames:
		return one(ListByCommandNames(c.Commands, c.Prerelease))
	case OpFindName:
		return one(FindName(c.Name, c.Type, c.Prerelease))
	case OpFindNamePattern:
		return one(FindNamePattern(c.Name, c.Prerelease))
	case OpFindVersionRange:
		return one(FindVersionRange(c.Name, c.Versions, c.Type, c.Prerelease))
	case OpFindVersion:
		if !c.Versions.IsExact() {
			return nil, errs.New(errs.ErrCodeInvalidVersion, "%s requires an exact version, got %s", op, c.Versions)
		}
		return one(FindVersion(c.Name, c.Versions.Min.Version, c.Type))
	case OpInstall:
		switch {
		case c.Versions.IsEmpty():
			return one(InstallName(c.Name))
		case c.Versions.IsExact():
			return one(InstallVersion(c.Name, c.Versions.Min.Version))
		}
		return nil, errs.New(errs.ErrCodeInvalidVersion, "%s requires an exact version or none, got %s", op, c.Versions)
	}
	return nil, errs.New(errs.ErrCodeInternal, "unknown operation %d", int(op))
}
