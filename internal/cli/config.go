package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the galleryfind configuration",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, path, err := c.loadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := c.loadConfig()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if _, statErr := os.Stat(path); statErr != nil {
				printWarning(w, "No config file at %s, using defaults", path)
			} else {
				printSuccess(w, "Loaded %s", path)
			}
			printKeyValue(w, "Default", cfg.Default)
			printKeyValue(w, "Timeout", orDefault(cfg.Timeout, "default"))
			printKeyValue(w, "User agent", cfg.UserAgent)
			for _, r := range cfg.Repositories {
				printKeyValue(w, r.Name, StyleLink.Render(r.URI))
			}
			return nil
		},
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
