// Package config holds runtime configuration for the toolkit's CLI and
// embedding hosts: log verbosity, default exclusion names for walks, and
// strictness of listing failures.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avendal/filekit/internal/util"
	"github.com/avendal/filekit/search"
)

// Default configuration values. See [Config] for field descriptions.
const (
	// DefaultVerbosity is the CLI verbosity between 1 (error) and 5 (trace)
	DefaultVerbosity = 3

	// DefaultStrictErrors keeps walks lenient: unreadable listings degrade
	// to empty results
	DefaultStrictErrors = false
)

// Config contains resolved runtime configuration values.
type Config struct {
	LogLvl       util.LogLevel // Resolved log level (Default info)
	ExcludeNames []string      // Entry names excluded from every walk (Default none)
	StrictErrors bool          // Surface listing failures instead of empty results (Default false)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. See [Config] for field
// descriptions. Verbose carries the CLI verbosity (1-5) rather than the
// internal log level.
type ConfigOverride struct {
	Verbose      *int     `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	ExcludeNames []string `yaml:"exclude_names,omitempty" json:"exclude_names,omitempty"`
	StrictErrors *bool    `yaml:"strict_errors,omitempty" json:"strict_errors,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:       util.LevelFromVerbosity(DefaultVerbosity),
		ExcludeNames: nil,
		StrictErrors: DefaultStrictErrors,
	}
}

// NewConfig creates a Config from defaults with the override applied on
// top. A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
func (c *Config) Merge(override *ConfigOverride) {
	if override.Verbose != nil {
		c.LogLvl = util.LevelFromVerbosity(*override.Verbose)
	}
	if override.ExcludeNames != nil {
		c.ExcludeNames = override.ExcludeNames
	}
	if override.StrictErrors != nil {
		c.StrictErrors = *override.StrictErrors
	}
}

// Options builds walk options seeded with the configured exclusions and
// strictness.
func (c *Config) Options() search.Options {
	opts := search.Options{StrictErrors: c.StrictErrors}
	for _, name := range c.ExcludeNames {
		opts.Exclude = append(opts.Exclude, search.MatchName(name))
	}
	return opts
}

// LoadConfigOverrideFile loads configuration overrides from a file without
// merging. Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with
// defaults.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}
