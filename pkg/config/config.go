// Package config loads galleryfind's TOML configuration.
//
// The file lives at $XDG_CONFIG_HOME/galleryfind/config.toml (falling back to
// ~/.config/galleryfind/config.toml) and names the repositories the CLI can
// query:
//
//	default = "PSGallery"
//	timeout = "30s"
//	user_agent = "galleryfind/v1.0.0"
//
//	[[repository]]
//	name = "PSGallery"
//	uri  = "https://www.powershellgallery.com/api/v2"
//
// A missing file is not an error; [Default] is used instead.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/galleryfind/pkg/buildinfo"
	errs "github.com/matzehuels/galleryfind/pkg/errors"
	"github.com/matzehuels/galleryfind/pkg/query"
)

const (
	appName  = "galleryfind"
	fileName = "config.toml"

	// DefaultRepositoryName names the built-in repository.
	DefaultRepositoryName = "PSGallery"

	// DefaultRepositoryURI is the PowerShell Gallery v2 feed.
	DefaultRepositoryURI = "https://www.powershellgallery.com/api/v2"
)

// Repository is a named catalog feed.
type Repository struct {
	Name string `toml:"name"`
	URI  string `toml:"uri"`
}

// Validate checks that the repository has a name and an absolute http(s) URI.
func (r Repository) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errs.New(errs.ErrCodeInvalidConfig, "repository name cannot be empty")
	}
	if err := errs.ValidateEndpoint(r.URI); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "repository %s", r.Name)
	}
	return nil
}

// Endpoint parses the repository URI.
func (r Repository) Endpoint() (query.Endpoint, error) {
	return query.ParseEndpoint(r.URI)
}

// Config is the decoded configuration file.
type Config struct {
	Default      string       `toml:"default"`
	Timeout      string       `toml:"timeout"`
	UserAgent    string       `toml:"user_agent"`
	Repositories []Repository `toml:"repository"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Default:   DefaultRepositoryName,
		UserAgent: buildinfo.UserAgent(appName),
		Repositories: []Repository{
			{Name: DefaultRepositoryName, URI: DefaultRepositoryURI},
		},
	}
}

// DefaultPath returns the configuration file location using the XDG
// convention (~/.config/galleryfind/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads and validates the file at path. A missing file yields [Default].
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(string(data))
}

// Parse decodes TOML text, fills unset fields from [Default] and validates
// the result.
func Parse(data string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Repositories) == 0 {
		c.Repositories = Default().Repositories
	}
	if c.Default == "" {
		c.Default = c.Repositories[0].Name
	}
	if c.UserAgent == "" {
		c.UserAgent = buildinfo.UserAgent(appName)
	}
}

// Validate checks every repository, rejects duplicate names, and requires the
// default repository and timeout to be usable.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Repositories))
	for _, r := range c.Repositories {
		if err := r.Validate(); err != nil {
			return err
		}
		key := strings.ToLower(r.Name)
		if seen[key] {
			return errs.New(errs.ErrCodeInvalidConfig, "duplicate repository %q", r.Name)
		}
		seen[key] = true
	}
	if _, err := c.Repository(c.Default); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "default repository")
	}
	if _, err := c.ParseTimeout(); err != nil {
		return err
	}
	return nil
}

// Repository looks up a repository by name, case-insensitively. An empty name
// selects the default repository.
func (c *Config) Repository(name string) (Repository, error) {
	if name == "" {
		name = c.Default
	}
	for _, r := range c.Repositories {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return Repository{}, errs.New(errs.ErrCodeInvalidConfig, "unknown repository %q", name)
}

// ParseTimeout returns the configured request timeout, or zero when unset.
func (c *Config) ParseTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, errs.Wrap(errs.ErrCodeInvalidConfig, err, "timeout %q", c.Timeout)
	}
	if d < 0 {
		return 0, errs.New(errs.ErrCodeInvalidConfig, "timeout %q is negative", c.Timeout)
	}
	return d, nil
}
