// Package catalog issues assembled queries against a NuGet v2 style package
// catalog such as the PowerShell Gallery.
//
// # Overview
//
// [Executor] performs exactly one GET per call on an injected *http.Client and
// hands back the raw response body. It does not retry or cache, and it ignores
// the status code: any response that completes the transport is a success,
// including 4xx and 5xx. Only a transport failure (refused
// connection, timeout, DNS failure, unreadable body) is an error, and then the
// body is always empty.
//
// [Client] pairs an executor with a repository [query.Endpoint] and exposes
// one method per catalog operation:
//
//	exec := catalog.NewExecutor(nil, logger, nil)
//	defer exec.Close()
//
//	client := catalog.NewClient(query.MustParseEndpoint(config.DefaultRepositoryURI), exec)
//	body, err := client.FindNamePattern(ctx, "PowerShell*", false)
//
// Feed bodies are returned unparsed.
//
// # Concurrency
//
// Executor and Client are safe for concurrent use. The only shared state is
// the pooled *http.Client.
package catalog
