// Package config provides configuration loading and management for the
// lv2meta command line tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Config represents the complete lv2meta CLI configuration.
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Bundle     BundleConfig     `yaml:"bundle"`
	Extensions ExtensionsConfig `yaml:"extensions"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// BundleConfig configures how bundle directories are read.
type BundleConfig struct {
	// Dir is the default bundle directory when no argument is given.
	Dir string `yaml:"dir"`

	// Pattern matches the satellite documents inside a bundle directory,
	// relative to it. The manifest is always read.
	Pattern string `yaml:"pattern"`
}

// ExtensionsConfig points at a user-supplied extension vocabulary table.
type ExtensionsConfig struct {
	// Path is a YAML file extending the default vocabulary registry.
	Path string `yaml:"path"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Bundle: BundleConfig{
			Dir:     "", // Taken from the command line
			Pattern: "**/*.ttl",
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	if c.Bundle.Pattern == "" {
		return fmt.Errorf("bundle.pattern is required")
	}
	if !doublestar.ValidatePattern(c.Bundle.Pattern) {
		return fmt.Errorf("bundle.pattern %q is not a valid glob pattern", c.Bundle.Pattern)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file, layered over the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Bundle.Dir != "" {
		c.Bundle.Dir = other.Bundle.Dir
	}
	if other.Bundle.Pattern != "" {
		c.Bundle.Pattern = other.Bundle.Pattern
	}
	if other.Extensions.Path != "" {
		c.Extensions.Path = other.Extensions.Path
	}
}
