package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/galleryfind/pkg/filter"
	"github.com/matzehuels/galleryfind/pkg/query"
)

// installURLCommand creates the install-url command, which prints the
// package content address without downloading it.
func (c *CLI) installURLCommand() *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "install-url <name>",
		Short: "Print the package content URL",
		Long: `Print the address of a package's content. Without --version the
address of the latest version is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			crit := query.Criteria{Name: args[0]}
			if version != "" {
				b, err := filter.NewBound(version, true)
				if err != nil {
					return err
				}
				crit.Versions = filter.VersionRange{Min: b, Max: b}
			}

			queries, err := query.Assemble(query.OpInstall, crit)
			if err != nil {
				return err
			}
			cfg, _, err := c.loadConfig()
			if err != nil {
				return err
			}
			endpoint, err := c.endpoint(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), queries[0].URL(endpoint))
			return nil
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "exact version")
	return cmd
}
