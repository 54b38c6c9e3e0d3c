package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/galleryfind/pkg/query"
)

// commandCommand creates the command command for finding packages by the
// commands they export.
func (c *CLI) commandCommand() *cobra.Command {
	var opts searchOpts

	cmd := &cobra.Command{
		Use:   "command <name>...",
		Short: "List packages exporting any of the given commands",
		Long: `List packages exporting any of the given commands.

With one name and --exact the package must export exactly that command;
otherwise any of the names may match.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			crit, err := opts.criteria()
			if err != nil {
				return err
			}
			exact, _ := cmd.Flags().GetBool("exact")
			if exact {
				if len(args) != 1 {
					return cobra.ExactArgs(1)(cmd, args)
				}
				crit.Name, crit.Type = args[0], query.Command
				return c.runOperation(cmd, query.OpListByCommandOrDSCResource, crit, opts.dryRun)
			}
			crit.Commands = args
			return c.runOperation(cmd, query.OpListByCommandNames, crit, opts.dryRun)
		},
	}

	opts.register(cmd, false, false)
	cmd.Flags().Bool("exact", false, "require the single named command")
	return cmd
}

// dscCommand creates the dsc command for finding packages by an exported
// DSC resource.
func (c *CLI) dscCommand() *cobra.Command {
	var opts searchOpts

	cmd := &cobra.Command{
		Use:   "dsc <resource>",
		Short: "List packages exporting a DSC resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			crit, err := opts.criteria()
			if err != nil {
				return err
			}
			crit.Name, crit.Type = args[0], query.DSCResource
			return c.runOperation(cmd, query.OpListByCommandOrDSCResource, crit, opts.dryRun)
		},
	}

	opts.register(cmd, false, false)
	return cmd
}
