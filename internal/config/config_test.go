package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/limpio/internal/cleaner"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), *cfg)
	assert.True(t, cfg.Cleaner.TrimLines)
	assert.False(t, cfg.Cleaner.RemoveEmptyLines)
	assert.Equal(t, 120, cfg.Cleaner.ExampleLines)
	assert.Equal(t, 50, cfg.History.MaxUndo)
	assert.Equal(t, "light", cfg.TUI.Theme)
	assert.True(t, cfg.TUI.Animations)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
cleaner:
  trim_lines: false
  remove_duplicates: true
  use_regex: true
  example_lines: 30
history:
  max_undo: 0
export:
  dir: /tmp/limpio
tui:
  theme: dark
  animations: false
  colors:
    primary: "#FF0000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cleaner.TransformOptions{RemoveDuplicates: true}, cfg.Cleaner.Options())
	assert.True(t, cfg.Cleaner.UseRegex)
	assert.Equal(t, 30, cfg.Cleaner.ExampleLines)
	assert.Equal(t, 0, cfg.History.MaxUndo)
	assert.Equal(t, "/tmp/limpio", cfg.Export.Dir)
	assert.Equal(t, "dark", cfg.TUI.Theme)
	assert.False(t, cfg.TUI.Animations)

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, "dark", p.Name)
	assert.Equal(t, lipgloss.Color("#FF0000"), p.Primary)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "tui:\n  theme: dark\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Cleaner.TrimLines)
	assert.Equal(t, 50, cfg.History.MaxUndo)
	assert.Equal(t, ".", cfg.Export.Dir)
	assert.NotNil(t, cfg.TUI.Colors)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "cleaner: [not, a, map")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, "tui:\n  theme: neon\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "neon")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cleaner.ExampleLines = -5
	cfg.History.MaxUndo = -1
	cfg.TUI.Theme = "neon"
	cfg.TUI.Colors = map[string]string{
		"accent":  "#000000",
		"primary": "blue",
	}

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 5)

	fields := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		fields[i] = fe.Field
	}
	assert.Contains(t, fields, "cleaner.example_lines")
	assert.Contains(t, fields, "history.max_undo")
	assert.Contains(t, fields, "tui.theme")
	assert.Contains(t, fields, `tui.colors["accent"]`)
	assert.Contains(t, fields, `tui.colors["primary"]`)
}

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestPalette_UnknownTheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TUI.Theme = "neon"

	_, err := cfg.Palette()
	assert.Error(t, err)
}
