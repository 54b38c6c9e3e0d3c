package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	errs "github.com/matzehuels/galleryfind/pkg/errors"
	"github.com/matzehuels/galleryfind/pkg/filter"
	"github.com/matzehuels/galleryfind/pkg/observability"
	"github.com/matzehuels/galleryfind/pkg/query"
)

// Result is the outcome of one request: either Body or Err is meaningful,
// never both.
type Result struct {
	URL  string
	Body string
	Err  error
}

// OK reports whether the request completed at the transport level.
func (r Result) OK() bool { return r.Err == nil }

// Client runs catalog operations against one repository.
type Client struct {
	endpoint query.Endpoint
	exec     *Executor
}

// NewClient creates a Client for endpoint that issues requests through exec.
// A zero endpoint is accepted here but every call on the client then fails
// with INVALID_ENDPOINT before anything is sent.
func NewClient(endpoint query.Endpoint, exec *Executor) *Client {
	return &Client{endpoint: endpoint, exec: exec}
}

// Endpoint returns the repository base address.
func (c *Client) Endpoint() query.Endpoint { return c.endpoint }

// Run assembles op from crit and issues every resulting request. An
// assembly or endpoint error means nothing was sent. Otherwise there is one Result per
// query, in assembly order; independent requests run concurrently and a
// failure in one does not affect the others.
func (c *Client) Run(ctx context.Context, op query.Operation, crit query.Criteria) ([]Result, error) {
	queries, err := query.Assemble(op, crit)
	observability.Query().OnAssemble(ctx, op.String(), len(queries), err)
	if err != nil {
		return nil, err
	}
	if err := c.checkEndpoint(); err != nil {
		return nil, err
	}

	results := make([]Result, len(queries))
	var g errgroup.Group
	for i, q := range queries {
		g.Go(func() error {
			u := q.URL(c.endpoint)
			body, err := c.exec.Execute(ctx, u)
			results[i] = Result{URL: u, Body: body, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results, nil
}

// Search resolves crit to an operation with [query.Resolve] and runs it.
func (c *Client) Search(ctx context.Context, crit query.Criteria) ([]Result, error) {
	return c.Run(ctx, query.Resolve(crit), crit)
}

func (c *Client) checkEndpoint() error {
	if c.endpoint.IsZero() {
		return errs.New(errs.ErrCodeInvalidEndpoint, "client has no repository endpoint")
	}
	return nil
}

func (c *Client) do(ctx context.Context, q query.Query, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if err := c.checkEndpoint(); err != nil {
		return "", err
	}
	return c.exec.Execute(ctx, q.URL(c.endpoint))
}

// ListAll fetches the latest version of every package.
func (c *Client) ListAll(ctx context.Context, prerelease bool) (string, error) {
	return c.do(ctx, query.ListAll(prerelease), nil)
}

// ListByTag fetches packages carrying all tags. With type [query.None] both
// the script and the general endpoint are queried and two results are
// returned. A missing tag or a tag naming a resource type fails before any
// request is made.
func (c *Client) ListByTag(ctx context.Context, tags []string, t query.ResourceType, prerelease bool) ([]Result, error) {
	return c.Run(ctx, query.OpListByTag, query.Criteria{Tags: tags, Type: t, Prerelease: prerelease})
}

// ListByCommandOrDSCResource fetches packages exporting the named command or
// DSC resource.
func (c *Client) ListByCommandOrDSCResource(ctx context.Context, name string, t query.ResourceType, prerelease bool) (string, error) {
	q, err := query.ListByCommandOrDSCResource(name, t, prerelease)
	return c.do(ctx, q, err)
}

// ListByTypeAndName fetches packages of type t whose name contains name,
// prerelease versions included. At least one of name and t is required.
func (c *Client) ListByTypeAndName(ctx context.Context, name string, t query.ResourceType) (string, error) {
	q, err := query.ListByTypeAndName(name, t)
	return c.do(ctx, q, err)
}

// ListByCommandNames fetches packages exporting any of the named commands.
func (c *Client) ListByCommandNames(ctx context.Context, names []string, prerelease bool) (string, error) {
	q, err := query.ListByCommandNames(names, prerelease)
	return c.do(ctx, q, err)
}

// FindName fetches the latest version of an exact package name.
func (c *Client) FindName(ctx context.Context, name string, t query.ResourceType, prerelease bool) (string, error) {
	q, err := query.FindName(name, t, prerelease)
	return c.do(ctx, q, err)
}

// FindNamePattern fetches packages whose names match a wildcard pattern.
// Unsupported patterns fail before any request is made.
func (c *Client) FindNamePattern(ctx context.Context, pattern string, prerelease bool) (string, error) {
	q, err := query.FindNamePattern(pattern, prerelease)
	return c.do(ctx, q, err)
}

// FindVersionRange fetches the versions of name within r, newest first.
func (c *Client) FindVersionRange(ctx context.Context, name string, r filter.VersionRange, t query.ResourceType, prerelease bool) (string, error) {
	q, err := query.FindVersionRange(name, r, t, prerelease)
	return c.do(ctx, q, err)
}

// FindVersion fetches one exact version of name.
func (c *Client) FindVersion(ctx context.Context, name, version string, t query.ResourceType) (string, error) {
	q, err := query.FindVersion(name, version, t)
	return c.do(ctx, q, err)
}

// InstallName fetches the package content of the latest version of name.
func (c *Client) InstallName(ctx context.Context, name string) (string, error) {
	q, err := query.InstallName(name)
	return c.do(ctx, q, err)
}

// InstallVersion fetches the package content of one version of name.
func (c *Client) InstallVersion(ctx context.Context, name, version string) (string, error) {
	q, err := query.InstallVersion(name, version)
	return c.do(ctx, q, err)
}
