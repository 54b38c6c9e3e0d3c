package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/galleryfind/pkg/query"
)

// findCommand creates the find command. The operation is chosen from the
// shape of the name and the version constraint.
func (c *CLI) findCommand() *cobra.Command {
	var (
		opts     searchOpts
		contains bool
	)

	cmd := &cobra.Command{
		Use:   "find [name]",
		Short: "Find packages by name, pattern or version",
		Long: `Find packages by exact name, wildcard pattern, version or version range.

Supported patterns are a prefix, a suffix, a substring, or a prefix and a
suffix around one wildcard.

Examples:
  galleryfind find                                  # latest version of every package
  galleryfind find PowerShellGet                    # latest version of one package
  galleryfind find 'Power*Get'                      # wildcard pattern
  galleryfind find Pester --version '[5.0,6.0)'     # versions in a range
  galleryfind find Pester --version 5.3.1           # one exact version
  galleryfind find Azure --contains --type Module   # modules whose name contains Azure`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			crit, err := opts.criteria()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				crit.Name = args[0]
			}

			op := query.Resolve(crit)
			if contains {
				op = query.OpListByTypeAndName
			}
			return c.runOperation(cmd, op, crit, opts.dryRun)
		},
	}

	opts.register(cmd, true, true)
	cmd.Flags().BoolVar(&contains, "contains", false, "match names containing the argument (always includes prerelease versions)")

	return cmd
}
