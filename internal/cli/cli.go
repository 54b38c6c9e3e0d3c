// Package cli implements the galleryfind command-line interface.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/galleryfind/pkg/buildinfo"
	"github.com/matzehuels/galleryfind/pkg/catalog"
	"github.com/matzehuels/galleryfind/pkg/config"
	"github.com/matzehuels/galleryfind/pkg/query"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "galleryfind"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	repository string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Galleryfind searches PowerShell package galleries",
		Long: `Galleryfind translates package searches into NuGet v2 OData queries and
runs them against a PowerShell gallery such as the PowerShell Gallery.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/galleryfind/config.toml)")
	root.PersistentFlags().StringVarP(&c.repository, "repository", "r", envOr("GALLERYFIND_REPOSITORY", ""), "repository name from the config, or a feed URI")

	root.AddCommand(c.findCommand())
	root.AddCommand(c.tagCommand())
	root.AddCommand(c.commandCommand())
	root.AddCommand(c.dscCommand())
	root.AddCommand(c.installURLCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Client Factory
// =============================================================================

// loadConfig reads the config file named by --config, or the default one.
func (c *CLI) loadConfig() (*config.Config, string, error) {
	path := c.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), "", nil
		}
		path = p
	}
	cfg, err := config.Load(path)
	return cfg, path, err
}

// endpoint resolves --repository against the config. A value containing a
// scheme is taken as a feed URI.
func (c *CLI) endpoint(cfg *config.Config) (query.Endpoint, error) {
	if strings.Contains(c.repository, "://") {
		return query.ParseEndpoint(c.repository)
	}
	repo, err := cfg.Repository(c.repository)
	if err != nil {
		return query.Endpoint{}, err
	}
	return repo.Endpoint()
}

// newClient creates a catalog client for the selected repository.
func (c *CLI) newClient() (*catalog.Client, error) {
	cfg, _, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	endpoint, err := c.endpoint(cfg)
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.ParseTimeout()
	if err != nil {
		return nil, err
	}

	headers := map[string]string{"User-Agent": cfg.UserAgent}
	exec := catalog.NewExecutor(catalog.NewHTTPClient(timeout), c.Logger, headers)
	c.Logger.Debug("using repository", "endpoint", endpoint)
	return catalog.NewClient(endpoint, exec), nil
}

// envOr returns the value of the environment variable key, or fallback.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
