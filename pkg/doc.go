// Package pkg provides the core libraries for galleryfind, a client for
// PowerShell package galleries that speak the NuGet v2 OData protocol.
//
// # Overview
//
// A search flows through four packages:
//
//	query.Criteria (name, type, versions, tags, commands)
//	         ↓
//	    [filter] package (name patterns and version ranges → $filter clauses)
//	         ↓
//	    [query] package (one Query per request: path, $filter, parameters)
//	         ↓
//	    [catalog] package (HTTP GET per query, body or NETWORK_ERROR)
//
// Supporting packages:
//
//   - [errors]: coded errors and identifier validation
//   - [config]: TOML configuration (repositories, timeout, user agent)
//   - [observability]: hooks for query assembly and HTTP requests
//   - [buildinfo]: ldflags version information
//
// # Quick Start
//
//	exec := catalog.NewExecutor(nil, nil, nil)
//	defer exec.Close()
//	client := catalog.NewClient(query.MustParseEndpoint(config.DefaultRepositoryURI), exec)
//
//	body, err := client.FindNamePattern(ctx, "PowerShell*", false)
//	if errors.Is(err, errors.ErrCodeUnsupportedPattern) {
//	    // nothing was sent
//	}
//
// Assembly is pure: [query.Assemble] and the per-operation functions can be
// used without a network to inspect the exact requests an operation issues.
//
// [filter]: https://pkg.go.dev/github.com/matzehuels/galleryfind/pkg/filter
// [query]: https://pkg.go.dev/github.com/matzehuels/galleryfind/pkg/query
// [query.Assemble]: https://pkg.go.dev/github.com/matzehuels/galleryfind/pkg/query#Assemble
// [catalog]: https://pkg.go.dev/github.com/matzehuels/galleryfind/pkg/catalog
// [errors]: https://pkg.go.dev/github.com/matzehuels/galleryfind/pkg/errors
// [config]: https://pkg.go.dev/github.com/matzehuels/galleryfind/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/galleryfind/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/galleryfind/pkg/buildinfo
package pkg
