package config

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/Mr-Dark-debug/limpio/internal/theme"
)

// Validate checks that the configuration is valid. All problems are
// reported together as criterio field errors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		c.validateLimits(),
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
		c.validateColors(),
	)
}

func (c *Config) validateLimits() error {
	var errs criterio.FieldErrorsBuilder
	if c.Cleaner.ExampleLines < 1 {
		errs = errs.Append("cleaner.example_lines", fmt.Errorf("must be at least 1, got %d", c.Cleaner.ExampleLines))
	}
	if c.History.MaxUndo < 0 {
		errs = errs.Append("history.max_undo", fmt.Errorf("cannot be negative, got %d", c.History.MaxUndo))
	}
	return errs.ToError()
}

func knownTheme(name string) error {
	if !slices.Contains(theme.Available(), name) {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(theme.Available(), ", "))
	}
	return nil
}

func (c *Config) validateColors() error {
	if len(c.TUI.Colors) == 0 {
		return nil
	}

	names := theme.LightPalette().Names()

	keys := make([]string, 0, len(c.TUI.Colors))
	for k := range c.TUI.Colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs criterio.FieldErrorsBuilder
	for _, k := range keys {
		field := fmt.Sprintf("tui.colors[%q]", k)
		if !slices.Contains(names, k) {
			errs = errs.Append(field, fmt.Errorf("unknown color name"))
			continue
		}
		if err := theme.ValidateColor(c.TUI.Colors[k]); err != nil {
			errs = errs.Append(field, err)
		}
	}
	return errs.ToError()
}
