package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/galleryfind/pkg/catalog"
	errs "github.com/matzehuels/galleryfind/pkg/errors"
	"github.com/matzehuels/galleryfind/pkg/filter"
	"github.com/matzehuels/galleryfind/pkg/query"
)

// searchOpts holds the flags shared by the search commands.
type searchOpts struct {
	resourceType string // resource type name, empty for any
	version      string // exact version or NuGet version range
	prerelease   bool   // include prerelease versions
	dryRun       bool   // print the assembled requests instead of sending them
}

// register adds the shared flags to cmd. The version flag is only added for
// commands that accept a version constraint.
func (o *searchOpts) register(cmd *cobra.Command, withType, withVersion bool) {
	if withType {
		cmd.Flags().StringVarP(&o.resourceType, "type", "t", "", "resource type: Module, Script, Command or DscResource")
	}
	if withVersion {
		cmd.Flags().StringVar(&o.version, "version", "", "exact version or range, e.g. 1.2.0, [1.0,2.0), (,3.0]")
	}
	cmd.Flags().BoolVar(&o.prerelease, "prerelease", false, "include prerelease versions")
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "print the request URLs without sending them")
}

// criteria converts the flags into search criteria.
func (o *searchOpts) criteria() (query.Criteria, error) {
	t, err := query.ParseResourceType(o.resourceType)
	if err != nil {
		return query.Criteria{}, err
	}
	r, err := versionFlag(o.version)
	if err != nil {
		return query.Criteria{}, err
	}
	return query.Criteria{Type: t, Versions: r, Prerelease: o.prerelease}, nil
}

// versionFlag parses the --version value. A bare version pins that one
// version; interval notation and "*" are parsed as a NuGet range.
func versionFlag(v string) (filter.VersionRange, error) {
	v = strings.TrimSpace(v)
	if v == "" || v == "*" || strings.HasPrefix(v, "[") || strings.HasPrefix(v, "(") {
		return filter.ParseVersionRange(v)
	}
	b, err := filter.NewBound(v, true)
	if err != nil {
		return filter.VersionRange{}, err
	}
	return filter.VersionRange{Min: b, Max: &filter.Bound{Version: b.Version, Inclusive: true}}, nil
}

// runOperation assembles op for crit and either prints the requests or
// sends them and writes each response body to stdout.
func (c *CLI) runOperation(cmd *cobra.Command, op query.Operation, crit query.Criteria, dryRun bool) error {
	client, err := c.newClient()
	if err != nil {
		return err
	}

	if dryRun {
		queries, err := query.Assemble(op, crit)
		if err != nil {
			return err
		}
		printQueries(cmd.OutOrStdout(), op, client.Endpoint(), queries)
		return nil
	}

	ctx := cmd.Context()
	c.Logger.Debug("running", "operation", op, "name", crit.Name, "type", crit.Type)
	prog := newProgress(c.Logger)
	spin := newSpinner(ctx, cmd.ErrOrStderr(), "Querying "+client.Endpoint().String())
	spin.Start()
	results, err := client.Run(ctx, op, crit)
	spin.Stop()
	if spin.Cancelled() {
		return ctx.Err()
	}
	if err != nil {
		return err
	}
	return c.writeResults(cmd, results, prog)
}

func (c *CLI) writeResults(cmd *cobra.Command, results []catalog.Result, prog *progress) error {
	var failed int
	for _, r := range results {
		if !r.OK() {
			failed++
			printError(cmd.ErrOrStderr(), "%s", errs.UserMessage(r.Err))
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.Body)
	}
	prog.done(fmt.Sprintf("%d of %d requests completed", len(results)-failed, len(results)))

	if failed > 0 {
		return errs.New(errs.ErrCodeNetwork, "%d of %d requests failed", failed, len(results))
	}
	return nil
}
