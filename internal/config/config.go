// Package config handles configuration loading and validation for limpio.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Mr-Dark-debug/limpio/internal/cleaner"
	"github.com/Mr-Dark-debug/limpio/internal/session"
	"github.com/Mr-Dark-debug/limpio/internal/theme"
)

// Config holds the application configuration.
type Config struct {
	Cleaner CleanerConfig `yaml:"cleaner"`
	History HistoryConfig `yaml:"history"`
	Export  ExportConfig  `yaml:"export"`
	TUI     TUIConfig     `yaml:"tui"`
}

// CleanerConfig holds the initial toggle state of the cleaner.
type CleanerConfig struct {
	TrimLines        bool `yaml:"trim_lines"`
	RemoveEmptyLines bool `yaml:"remove_empty_lines"`
	RemoveDuplicates bool `yaml:"remove_duplicates"`
	UseRegex         bool `yaml:"use_regex"`
	ExampleLines     int  `yaml:"example_lines"`
}

// Options returns the configured ApplyOptions toggles.
func (c CleanerConfig) Options() cleaner.TransformOptions {
	return cleaner.TransformOptions{
		TrimLines:        c.TrimLines,
		RemoveEmptyLines: c.RemoveEmptyLines,
		RemoveDuplicates: c.RemoveDuplicates,
	}
}

// HistoryConfig bounds the undo history. Zero disables undo.
type HistoryConfig struct {
	MaxUndo int `yaml:"max_undo"`
}

// ExportConfig holds export settings.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme      string            `yaml:"theme"`
	Colors     map[string]string `yaml:"colors"` // semantic name -> "#rrggbb"
	Animations bool              `yaml:"animations"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Cleaner: CleanerConfig{
			TrimLines:    true,
			ExampleLines: cleaner.DefaultExampleLines,
		},
		History: HistoryConfig{
			MaxUndo: session.DefaultMaxUndo,
		},
		Export: ExportConfig{
			Dir: ".",
		},
		TUI: TUIConfig{
			Theme:      theme.Light,
			Colors:     map[string]string{},
			Animations: true,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Cleaner.ExampleLines == 0 {
		c.Cleaner.ExampleLines = defaults.Cleaner.ExampleLines
	}
	if c.Export.Dir == "" {
		c.Export.Dir = defaults.Export.Dir
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.Colors == nil {
		c.TUI.Colors = map[string]string{}
	}
}

// Palette resolves the configured theme with the color overrides applied.
func (c *Config) Palette() (theme.Palette, error) {
	base, ok := theme.Get(c.TUI.Theme)
	if !ok {
		return theme.Palette{}, fmt.Errorf("unknown theme %q", c.TUI.Theme)
	}
	return base.WithOverrides(c.TUI.Colors)
}
