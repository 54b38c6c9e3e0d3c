// Package query assembles catalog requests for every supported search and
// install operation.
//
// # Overview
//
// Each operation has one assembler function returning a [Query]: an endpoint
// path, a $filter [filter.Clause] and the remaining parameters in a fixed
// order. Assemblers are pure; the same inputs always produce the same query,
// and no two distinct criteria produce the same one.
//
//	q := query.FindVersionRange("PSReadLine", r, query.Module, false)
//	url := q.URL(endpoint)
//
// # Endpoints
//
//	/Search()                  list and pattern search
//	/items/psscript/Search()   list by tag for scripts
//	/FindPackagesById()        exact name, version range, exact version
//	/package/<id>[/<version>]  install (no filter at all)
//
// # Clause Order
//
// Within a $filter the top-level prerelease predicate comes first, then
// version bounds, then the resource type, then tags, then the name.
//
// # Tag Conventions
//
// Tags are matched two ways. Quoted substringof clauses joined by "and"
// require every tag ([ListByTag]). The searchTerm form used by
// [ListByCommandNames] concatenates unquoted "tag:" tokens separated by
// spaces, which the catalog treats as OR. Both conventions live only in this
// package.
package query
