// Package theme defines the semantic color palettes of the terminal shell.
//
// Colors are addressed by dotted names ("primary", "tabBar.activeIcon") so
// that user configuration can override individual entries.
package theme

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Built-in palette names.
const (
	Light = "light"
	Dark  = "dark"
)

// TabBarColors are the colors of the bottom navigation bar.
type TabBarColors struct {
	Background    lipgloss.Color
	Border        lipgloss.Color
	ActiveIcon    lipgloss.Color
	InactiveIcon  lipgloss.Color
	ActiveText    lipgloss.Color
	InactiveText  lipgloss.Color
	FabBackground lipgloss.Color
	FabIcon       lipgloss.Color
	Indicator     lipgloss.Color
}

// Palette is a complete set of semantic colors.
type Palette struct {
	Name string

	Primary      lipgloss.Color
	PrimaryLight lipgloss.Color
	PrimaryDark  lipgloss.Color

	Background      lipgloss.Color
	Surface         lipgloss.Color
	SurfaceElevated lipgloss.Color

	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color

	TabBar TabBarColors

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// LightPalette is the default palette: indigo accents on white and slate.
func LightPalette() Palette {
	return Palette{
		Name:            Light,
		Primary:         "#6366F1",
		PrimaryLight:    "#818CF8",
		PrimaryDark:     "#4F46E5",
		Background:      "#FFFFFF",
		Surface:         "#F8FAFC",
		SurfaceElevated: "#FFFFFF",
		TextPrimary:     "#0F172A",
		TextSecondary:   "#64748B",
		TextMuted:       "#94A3B8",
		TabBar: TabBarColors{
			Background:    "#FFFFFF",
			Border:        "#E2E8F0",
			ActiveIcon:    "#6366F1",
			InactiveIcon:  "#94A3B8",
			ActiveText:    "#6366F1",
			InactiveText:  "#64748B",
			FabBackground: "#6366F1",
			FabIcon:       "#FFFFFF",
			Indicator:     "#6366F1",
		},
		Success: "#10B981",
		Warning: "#F59E0B",
		Error:   "#EF4444",
		Info:    "#3B82F6",
	}
}

// DarkPalette keeps the indigo accents over slate backgrounds.
func DarkPalette() Palette {
	return Palette{
		Name:            Dark,
		Primary:         "#818CF8",
		PrimaryLight:    "#A5B4FC",
		PrimaryDark:     "#6366F1",
		Background:      "#0F172A",
		Surface:         "#1E293B",
		SurfaceElevated: "#334155",
		TextPrimary:     "#F1F5F9",
		TextSecondary:   "#94A3B8",
		TextMuted:       "#64748B",
		TabBar: TabBarColors{
			Background:    "#0F172A",
			Border:        "#334155",
			ActiveIcon:    "#818CF8",
			InactiveIcon:  "#64748B",
			ActiveText:    "#818CF8",
			InactiveText:  "#94A3B8",
			FabBackground: "#6366F1",
			FabIcon:       "#FFFFFF",
			Indicator:     "#818CF8",
		},
		Success: "#34D399",
		Warning: "#FBBF24",
		Error:   "#F87171",
		Info:    "#60A5FA",
	}
}

// Get returns the built-in palette called name.
func Get(name string) (Palette, bool) {
	switch name {
	case Light:
		return LightPalette(), true
	case Dark:
		return DarkPalette(), true
	default:
		return Palette{}, false
	}
}

// Available lists the built-in palette names.
func Available() []string {
	return []string{Light, Dark}
}

type namedColor struct {
	name  string
	color *lipgloss.Color
}

func (p *Palette) entries() []namedColor {
	return []namedColor{
		{"primary", &p.Primary},
		{"primaryLight", &p.PrimaryLight},
		{"primaryDark", &p.PrimaryDark},
		{"background", &p.Background},
		{"surface", &p.Surface},
		{"surfaceElevated", &p.SurfaceElevated},
		{"textPrimary", &p.TextPrimary},
		{"textSecondary", &p.TextSecondary},
		{"textMuted", &p.TextMuted},
		{"tabBar.background", &p.TabBar.Background},
		{"tabBar.border", &p.TabBar.Border},
		{"tabBar.activeIcon", &p.TabBar.ActiveIcon},
		{"tabBar.inactiveIcon", &p.TabBar.InactiveIcon},
		{"tabBar.activeText", &p.TabBar.ActiveText},
		{"tabBar.inactiveText", &p.TabBar.InactiveText},
		{"tabBar.fabBackground", &p.TabBar.FabBackground},
		{"tabBar.fabIcon", &p.TabBar.FabIcon},
		{"tabBar.indicator", &p.TabBar.Indicator},
		{"success", &p.Success},
		{"warning", &p.Warning},
		{"error", &p.Error},
		{"info", &p.Info},
	}
}

// Lookup returns the color for a dotted semantic name.
func (p Palette) Lookup(name string) (lipgloss.Color, bool) {
	for _, e := range p.entries() {
		if e.name == name {
			return *e.color, true
		}
	}
	return "", false
}

// Names lists every semantic color name, sorted.
func (p Palette) Names() []string {
	entries := p.entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	sort.Strings(names)
	return names
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor checks a user supplied "#rgb" or "#rrggbb" value.
func ValidateColor(value string) error {
	if !hexColor.MatchString(value) {
		return fmt.Errorf("invalid color %q: expected #rgb or #rrggbb", value)
	}
	return nil
}

// WithOverrides returns a copy of p with the named colors replaced. Unknown
// names and malformed values are rejected; p is never modified.
func (p Palette) WithOverrides(overrides map[string]string) (Palette, error) {
	out := p

	byName := make(map[string]*lipgloss.Color)
	for _, e := range out.entries() {
		byName[e.name] = e.color
	}

	// Sorted for a stable first error.
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, name := range keys {
		dst, ok := byName[name]
		if !ok {
			return p, fmt.Errorf("unknown color %q", name)
		}
		value := overrides[name]
		if err := ValidateColor(value); err != nil {
			return p, fmt.Errorf("color %q: %w", name, err)
		}
		*dst = lipgloss.Color(value)
	}

	return out, nil
}
