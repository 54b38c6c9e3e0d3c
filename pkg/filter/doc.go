// Package filter translates package-search criteria into OData $filter
// clauses understood by NuGet v2 style catalog services.
//
// # Overview
//
// The package holds the two leaf translators of the query core:
//
//   - [NameClause]: wildcard name patterns to startswith/endswith/substringof predicates
//   - [VersionClause]: version intervals to NormalizedVersion comparators
//
// Both produce a [Clause], a plain predicate fragment that composes with [And].
// Nothing here talks to the network; the query package assembles complete
// requests out of these fragments.
//
// # Name Patterns
//
// A pattern is split on '*' into non-empty segments and classified once by
// [ClassifyPattern]:
//
//	*Get*       Contains        substringof('Get', Id)
//	PowerShell* Prefix          startswith(Id, 'PowerShell')
//	*Get        Suffix          endswith(Id, 'Get')
//	Power*Get   PrefixAndSuffix startswith(Id, 'Power') and endswith(Id, 'Get')
//
// Every other shape is [Unsupported] and yields an UNSUPPORTED_PATTERN error
// listing the shapes above.
//
// # Versions
//
// Versions are compared by the remote service on their normalized form (see
// [NormalizeVersion]). [ParseVersionRange] accepts NuGet interval notation:
//
//	1.0          >= 1.0.0
//	[1.0]        == 1.0.0
//	[1.0,2.0)    >= 1.0.0 and < 2.0.0
//	(,2.0]       <= 2.0.0
//	*            no constraint
package filter
