package query

import (
	"net/url"
	"strings"

	"github.com/matzehuels/galleryfind/pkg/filter"
)

// Endpoint paths relative to the repository base address.
const (
	PathSearch       = "/Search()"
	PathScriptSearch = "/items/psscript/Search()"
	PathFindByID     = "/FindPackagesById()"
	PathPackage      = "/package"
)

// Query parameter names.
const (
	ParamFilter            = "$filter"
	ParamSelect            = "$select"
	ParamOrderBy           = "$orderby"
	ParamSkip              = "$skip"
	ParamTop               = "$top"
	ParamInlineCount       = "$inlinecount"
	ParamID                = "id"
	ParamSearchTerm        = "searchTerm"
	ParamIncludePrerelease = "includePrerelease"
)

// Param is one query parameter.
type Param struct {
	Key   string
	Value string
}

// Query is an assembled catalog request relative to an [Endpoint].
type Query struct {
	Path   string
	Filter filter.Clause
	Params []Param
}

// Get returns the value of the named parameter. ParamFilter returns the filter.
func (q Query) Get(key string) (string, bool) {
	if key == ParamFilter {
		return string(q.Filter), !q.Filter.IsEmpty()
	}
	for _, p := range q.Params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Encode renders the query string with $filter first and the remaining
// parameters in assembly order. Spaces are encoded as %20.
func (q Query) Encode() string {
	return q.render(escape)
}

// String renders the path and query without escaping, for display.
func (q Query) String() string {
	if s := q.render(func(s string) string { return s }); s != "" {
		return q.Path + "?" + s
	}
	return q.Path
}

// URL returns the absolute request address for q against e.
func (q Query) URL(e Endpoint) string {
	u := e.String() + q.Path
	if s := q.Encode(); s != "" {
		u += "?" + s
	}
	return u
}

func (q Query) render(esc func(string) string) string {
	parts := make([]string, 0, len(q.Params)+1)
	if !q.Filter.IsEmpty() {
		parts = append(parts, ParamFilter+"="+esc(string(q.Filter)))
	}
	for _, p := range q.Params {
		parts = append(parts, p.Key+"="+esc(p.Value))
	}
	return strings.Join(parts, "&")
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
