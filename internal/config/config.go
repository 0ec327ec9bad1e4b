// Package config loads winctl's optional YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/winctl/internal/x11"
)

// Config holds the user-adjustable settings. All keys are optional; the
// zero file is equivalent to DefaultConfig.
type Config struct {
	// Display overrides $DISPLAY when set (e.g. ":1").
	Display string `yaml:"display,omitempty"`
	// Traversal selects how much of the window tree is enumerated:
	// "tree" (every descendant of the root) or "children" (direct
	// children only).
	Traversal string `yaml:"traversal,omitempty"`
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Traversal: string(x11.TraverseTree),
		LogLevel:  zerolog.InfoLevel.String(),
	}
}

// DefaultConfigPath returns ~/.config/winctl/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "winctl", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing
// file yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates the configuration at path. Absent keys
// keep their defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	switch x11.Traversal(c.Traversal) {
	case x11.TraverseTree, x11.TraverseChildren:
	default:
		return fmt.Errorf("traversal must be %q or %q, got %q",
			x11.TraverseTree, x11.TraverseChildren, c.Traversal)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Mode returns the configured traversal mode.
func (c *Config) Mode() x11.Traversal {
	return x11.Traversal(c.Traversal)
}

// Level returns the configured zerolog level.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
