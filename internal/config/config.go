// Package config provides reading and writing of domainguard configuration.
// Supports both global (~/.domainguard/config.yaml) and local
// (.domainguard/config.yaml, found by walking up from the working directory).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
//
// Besides plain settings the file carries the profile field records and the
// message overrides, standing in for the records a CMS would keep.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/jpl-au/domainguard/internal/message"
	"github.com/jpl-au/domainguard/internal/profile"
	"github.com/jpl-au/domainguard/internal/repo"
	"github.com/jpl-au/domainguard/internal/validate"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
	// ErrFieldNotFound is returned when a named profile field does not exist.
	ErrFieldNotFound = errors.New("field not found")
	// ErrFieldExists is returned when adding a field whose name is taken.
	ErrFieldExists = errors.New("field already exists")
)

// Dir is the directory name used for both scopes.
const Dir = repo.Dir

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.domainguard/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .domainguard/config.yaml
	ScopeLocal
)

// Author represents the author recorded in the audit log.
type Author struct {
	Name string `yaml:"name,omitempty"`
}

// Check holds defaults for the check command and MCP tool.
type Check struct {
	Field    string `yaml:"field,omitempty"`
	ShowList *bool  `yaml:"show_list,omitempty"`
}

// Config contains configuration for domainguard.
type Config struct {
	Author   Author            `yaml:"author,omitempty"`
	Check    Check             `yaml:"check,omitempty"`
	Messages map[string]string `yaml:"messages,omitempty"`
	Fields   []profile.Field   `yaml:"fields,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Clone returns a deep copy that shares nothing with c.
func (c *Config) Clone() *Config {
	out := *c
	out.Check.ShowList = nil
	if c.Check.ShowList != nil {
		b := *c.Check.ShowList
		out.Check.ShowList = &b
	}
	out.Messages = maps.Clone(c.Messages)
	out.Fields = slices.Clone(c.Fields)
	return &out
}

// Validate checks message keys, field names and stored patterns.
// Returns nil if everything is valid or unset.
func (c *Config) Validate() error {
	for k := range c.Messages {
		if !message.IsKey(k) {
			return fmt.Errorf("%w: messages.%s is not a message key", ErrInvalidValue, k)
		}
	}
	seen := make(map[string]bool, len(c.Fields))
	for _, f := range c.Fields {
		if err := validate.FieldName(f.Name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %q", ErrFieldExists, f.Name)
		}
		seen[f.Name] = true
		if err := validate.Patterns(f.Allowed()); err != nil {
			return fmt.Errorf("%w: field %s allowed_domains: %w", ErrInvalidValue, f.Name, err)
		}
		if err := validate.Patterns(f.Disallowed()); err != nil {
			return fmt.Errorf("%w: field %s disallowed_domains: %w", ErrInvalidValue, f.Name, err)
		}
	}
	return nil
}

// ShowList returns whether check lists patterns on failure (defaults to false).
func (c *Config) ShowList() bool {
	if c.Check.ShowList == nil {
		return false
	}
	return *c.Check.ShowList
}

// Catalog builds the message catalog from the overrides.
func (c *Config) Catalog() (*message.Catalog, error) {
	return message.New(c.Messages)
}

// Field returns the named profile field.
func (c *Config) Field(name string) (*profile.Field, error) {
	if f := profile.Find(c.Fields, name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, name)
}

// EmailField returns the configured Email field, or nil.
func (c *Config) EmailField() *profile.Field {
	return profile.FindEmail(c.Fields)
}

// AddField appends f. Names must be unique.
func (c *Config) AddField(f profile.Field) error {
	if err := validate.FieldName(f.Name); err != nil {
		return err
	}
	if profile.Find(c.Fields, f.Name) != nil {
		return fmt.Errorf("%w: %s", ErrFieldExists, f.Name)
	}
	c.Fields = append(c.Fields, f)
	return nil
}

// RemoveField deletes the named field.
func (c *Config) RemoveField(name string) error {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			c.Fields = append(c.Fields[:i], c.Fields[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrFieldNotFound, name)
}

// LocalPath returns the path to the local (project) config file: the nearest
// one above the working directory, else .domainguard/config.yaml here.
func LocalPath() string {
	if p, err := repo.Discover("."); err == nil {
		return p
	}
	return filepath.Join(Dir, repo.ConfigFile)
}

// GlobalPath returns the path to the global (user) config file: ~/.domainguard/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, repo.ConfigFile)
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	return loadPath(pathForScope(scope), scope)
}

func loadPath(path string, scope Scope) (*Config, error) {
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Path returns the file this config was loaded from, or "" for an unsaved one.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
