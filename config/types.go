package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/grovetools/statusline/pkg/paths"
)

const (
	// DefaultProjectsDir is the projects root, relative to $HOME, used when
	// the config does not name one.
	DefaultProjectsDir = "Projects"

	// DefaultContextLimit is the token budget the context percentage is
	// computed against.
	DefaultContextLimit = 160000

	// DefaultGitTTL is how long cached git facts stay valid for a session.
	DefaultGitTTL = 5 * time.Second
)

// Config is the statusline configuration file.
type Config struct {
	// ProjectsRoot is the single parent directory of "standard" project
	// checkouts. In --short mode the path segment is hidden when the current
	// directory equals <ProjectsRoot>/<repo name>.
	ProjectsRoot string `yaml:"projects_root,omitempty" json:"projects_root,omitempty" jsonschema:"minLength=1,description=Parent directory of standard project checkouts (default: ~/Projects)"`

	// Color toggles ANSI escape sequences in the output.
	Color *bool `yaml:"color,omitempty" json:"color,omitempty" jsonschema:"description=Emit ANSI colors (default: true; NO_COLOR also disables)"`

	// ContextLimit is the token count that corresponds to 100% context usage.
	ContextLimit int `yaml:"context_limit,omitempty" json:"context_limit,omitempty" jsonschema:"minimum=1,description=Tokens that count as a full context window (default: 160000)"`

	Cache CacheConfig `yaml:"cache,omitempty" json:"cache,omitempty" jsonschema:"description=Per-session cache of git facts"`

	// Extensions holds every other top-level section (e.g. "logging"); it is
	// decoded on demand with UnmarshalExtension.
	Extensions map[string]interface{} `yaml:",inline" json:"-" jsonschema:"-"`
}

// CacheConfig configures the per-session git cache.
type CacheConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty" json:"enabled,omitempty" jsonschema:"description=Cache git facts per session (default: true)"`
	GitTTL  string `yaml:"git_ttl,omitempty" json:"git_ttl,omitempty" jsonschema:"pattern=^([0-9]+(\\.[0-9]+)?(ns|us|ms|s|m|h))+$,description=Validity of cached git facts (default: 5s)"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.ProjectsRoot == "" {
		c.ProjectsRoot = filepath.Join("~", DefaultProjectsDir)
	}
	if c.ContextLimit <= 0 {
		c.ContextLimit = DefaultContextLimit
	}
	if c.Color == nil {
		enabled := true
		c.Color = &enabled
	}
	if c.Cache.Enabled == nil {
		enabled := true
		c.Cache.Enabled = &enabled
	}
	if c.Cache.GitTTL == "" {
		c.Cache.GitTTL = DefaultGitTTL.String()
	}
}

// ProjectsRootPath returns ProjectsRoot with a leading "~" expanded.
func (c *Config) ProjectsRootPath() string {
	return ExpandHome(c.ProjectsRoot)
}

// ColorEnabled reports whether colors are enabled.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// CacheEnabled reports whether the session cache is enabled.
func (c *Config) CacheEnabled() bool {
	return c.Cache.Enabled == nil || *c.Cache.Enabled
}

// GitCacheTTL returns the parsed cache TTL, or DefaultGitTTL when unset or invalid.
func (c *Config) GitCacheTTL() time.Duration {
	if c.Cache.GitTTL == "" {
		return DefaultGitTTL
	}
	ttl, err := time.ParseDuration(c.Cache.GitTTL)
	if err != nil || ttl < 0 {
		return DefaultGitTTL
	}
	return ttl
}

// UnmarshalExtension decodes a top-level section that is not part of Config
// into target, which must be a pointer. A missing section leaves target
// untouched.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

// ExpandHome expands a leading "~" to the user's home directory.
func ExpandHome(path string) string {
	if path == "~" {
		return paths.HomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(paths.HomeDir(), path[2:])
	}
	return path
}
