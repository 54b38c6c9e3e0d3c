package query

import (
	"strings"

	errs "github.com/matzehuels/galleryfind/pkg/errors"
	"github.com/matzehuels/galleryfind/pkg/filter"
)

// ResourceType classifies a package artifact.
type ResourceType int

const (
	// None means the type is unspecified.
	None ResourceType = iota
	Module
	Script
	Command
	DSCResource
)

var resourceTypeNames = [...]string{"None", "Module", "Script", "Command", "DscResource"}

// String returns the canonical name used in catalog tags ("DscResource" for
// [DSCResource]).
func (t ResourceType) String() string {
	if t >= None && int(t) < len(resourceTypeNames) {
		return resourceTypeNames[t]
	}
	return "None"
}

// Tag returns the catalog tag marking packages of this type, e.g. "PSModule".
// It returns "" for [None].
func (t ResourceType) Tag() string {
	if t == None {
		return ""
	}
	return "PS" + t.String()
}

// ParseResourceType parses a resource type name case-insensitively.
// The empty string parses as [None].
func ParseResourceType(s string) (ResourceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "module":
		return Module, nil
	case "script":
		return Script, nil
	case "command":
		return Command, nil
	case "dscresource", "dsc":
		return DSCResource, nil
	}
	return None, errs.New(errs.ErrCodeInvalidType, "unknown resource type %q (want Module, Script, Command or DscResource)", s)
}

// Criteria describes one search request. It is built per call and never
// shared or mutated afterwards.
type Criteria struct {
	Name       string              // literal or wildcard name
	Type       ResourceType        // resource type filter
	Versions   filter.VersionRange // version interval; zero value means any
	Prerelease bool                // include prerelease versions
	Tags       []string            // tags that must all be present
	Commands   []string            // command names, any of which may match
}

// Endpoint is the base address of a catalog service. It is immutable once
// parsed.
type Endpoint struct {
	base string
}

// ParseEndpoint validates raw as an absolute http(s) URI and returns it as an
// Endpoint. A trailing slash is dropped.
func ParseEndpoint(raw string) (Endpoint, error) {
	raw = strings.TrimSpace(raw)
	if err := errs.ValidateEndpoint(raw); err != nil {
		return Endpoint{}, err
	}
	return Endpoint{base: strings.TrimRight(raw, "/")}, nil
}

// MustParseEndpoint is like [ParseEndpoint] but panics on error.
func MustParseEndpoint(raw string) Endpoint {
	e, err := ParseEndpoint(raw)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns the base address without a trailing slash.
func (e Endpoint) String() string { return e.base }

// IsZero reports whether e was never parsed.
func (e Endpoint) IsZero() bool { return e.base == "" }
