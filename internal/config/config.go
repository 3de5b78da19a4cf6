// Package config provides reading and writing of docrec configuration.
// Supports both global (~/.docrec/config.yaml) and local (.docrec/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jpl-au/docrec/document"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.docrec/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .docrec/config.yaml
	ScopeLocal
)

// ID generator names accepted by id.generator.
const (
	GeneratorTime = "time"
	GeneratorUUID = "uuid"
)

// Format holds output formatting defaults.
type Format struct {
	Date        string `yaml:"date,omitempty"`
	IncludeID   *bool  `yaml:"include_id,omitempty"`
	IncludeTags *bool  `yaml:"include_tags,omitempty"`
	Timezone    string `yaml:"timezone,omitempty"`
	Locale      string `yaml:"locale,omitempty"`
}

// ID holds identifier generation settings.
type ID struct {
	Generator string `yaml:"generator,omitempty"`
}

// Limits holds size limit configuration options.
type Limits struct {
	MaxContent *int64 `yaml:"max_content,omitempty"`
}

// Default limits applied when not configured.
const (
	DefaultMaxContent = 10 * 1024 * 1024 // 10 MB
)

// Validation bounds for configuration values.
const (
	MinMaxContent = 1
	MaxMaxContent = 1024 * 1024 * 1024 // 1 GB
)

// Config contains configuration for docrec.
type Config struct {
	Format Format `yaml:"format,omitempty"`
	ID     ID     `yaml:"id,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if _, err := document.ParseDateFormat(c.Format.Date); err != nil {
		return fmt.Errorf("%w: format.date: %w", ErrInvalidValue, err)
	}
	if c.Format.Timezone != "" {
		if _, err := time.LoadLocation(c.Format.Timezone); err != nil {
			return fmt.Errorf("%w: format.timezone: %w", ErrInvalidValue, err)
		}
	}
	if c.Format.Locale != "" {
		if _, err := language.Parse(c.Format.Locale); err != nil {
			return fmt.Errorf("%w: format.locale: %w", ErrInvalidValue, err)
		}
	}
	switch c.ID.Generator {
	case "", GeneratorTime, GeneratorUUID:
	default:
		return fmt.Errorf("%w: id.generator must be %q or %q, got %q",
			ErrInvalidValue, GeneratorTime, GeneratorUUID, c.ID.Generator)
	}
	if c.Limits.MaxContent != nil {
		v := *c.Limits.MaxContent
		if v < MinMaxContent || v > MaxMaxContent {
			return fmt.Errorf("%w: max_content must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxContent, MaxMaxContent, v)
		}
	}
	return nil
}

// DateFormat returns the default date format (defaults to ISO).
func (c *Config) DateFormat() document.DateFormat {
	f, err := document.ParseDateFormat(c.Format.Date)
	if err != nil {
		return document.DateISO
	}
	return f
}

// IncludeID returns whether ids are printed (defaults to false).
func (c *Config) IncludeID() bool {
	if c.Format.IncludeID == nil {
		return false
	}
	return *c.Format.IncludeID
}

// IncludeTags returns whether tags are printed (defaults to true).
func (c *Config) IncludeTags() bool {
	if c.Format.IncludeTags == nil {
		return true
	}
	return *c.Format.IncludeTags
}

// FormatOptions returns the configured document format options.
func (c *Config) FormatOptions() document.FormatOptions {
	return document.NewFormatOptions().
		WithID(c.IncludeID()).
		WithTags(c.IncludeTags()).
		WithDateFormat(c.DateFormat())
}

// Location returns the zone for local dates (defaults to time.Local).
func (c *Config) Location() *time.Location {
	if c.Format.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Format.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Locale returns the locale for local dates. language.Und means the
// process environment decides.
func (c *Config) Locale() language.Tag {
	if c.Format.Locale == "" {
		return language.Und
	}
	tag, err := language.Parse(c.Format.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// DateFormatter returns a document.DateFormatter using the configured zone
// and locale.
func (c *Config) DateFormatter() document.DateFormatter {
	return document.DateFormatter{Location: c.Location(), Locale: c.Locale()}
}

// Generator returns the configured identifier strategy (defaults to time).
func (c *Config) Generator() document.IDGenerator {
	if c.ID.Generator == GeneratorUUID {
		return document.UUIDGenerator{}
	}
	return document.TimeRandomID{}
}

// MaxContent returns the maximum input size in bytes (defaults to 10 MB).
func (c *Config) MaxContent() int64 {
	if c.Limits.MaxContent == nil {
		return DefaultMaxContent
	}
	return *c.Limits.MaxContent
}

// LocalPath returns the path to the local config file.
func LocalPath() string {
	return filepath.Join(".docrec", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.docrec/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".docrec", "config.yaml")
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
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}
	return loadFile(path, scope)
}

func loadFile(path string, scope Scope) (*Config, error) {
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
