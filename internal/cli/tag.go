package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/galleryfind/pkg/query"
)

// tagCommand creates the tag command. Every tag must be present on a match.
func (c *CLI) tagCommand() *cobra.Command {
	var opts searchOpts

	cmd := &cobra.Command{
		Use:   "tag <tag>...",
		Short: "List packages carrying all of the given tags",
		Long: `List packages carrying all of the given tags.

Without --type both scripts and other packages are searched, which takes two
requests.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			crit, err := opts.criteria()
			if err != nil {
				return err
			}
			crit.Tags = args
			return c.runOperation(cmd, query.OpListByTag, crit, opts.dryRun)
		},
	}

	opts.register(cmd, true, false)
	return cmd
}
