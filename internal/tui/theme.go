package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/limpio/internal/theme"
)

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────
//
// Every style is derived from the active palette. No ad-hoc color
// literals anywhere else in the package.

type styles struct {
	palette theme.Palette

	// Header bar
	headerBar   lipgloss.Style
	headerBrand lipgloss.Style
	headerSep   lipgloss.Style
	headerMeta  lipgloss.Style

	// Screens
	screenIcon     lipgloss.Style
	screenTitle    lipgloss.Style
	screenSubtitle lipgloss.Style

	// Cleaner
	panelTitle  lipgloss.Style
	editor      lipgloss.Style
	editorFocus lipgloss.Style
	label       lipgloss.Style
	toggleOn    lipgloss.Style
	toggleOff   lipgloss.Style
	statsLabel  lipgloss.Style
	statsValue  lipgloss.Style
	selection   lipgloss.Style

	// Tab bar
	tabBar          lipgloss.Style
	tabBorder       lipgloss.Style
	tabIconActive   lipgloss.Style
	tabIconInactive lipgloss.Style
	tabIconPressed  lipgloss.Style
	tabTextActive   lipgloss.Style
	tabTextInactive lipgloss.Style
	tabIndicator    lipgloss.Style
	fabTop          lipgloss.Style
	fabBody         lipgloss.Style

	// Footer / status bar
	status      lipgloss.Style
	statusError lipgloss.Style
	statusOK    lipgloss.Style
	hintKey     lipgloss.Style
	hintDesc    lipgloss.Style
	footerBar   lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		palette: p,

		headerBar: lipgloss.NewStyle().
			Background(p.Surface).
			Foreground(p.TextPrimary).
			Padding(0, 1),
		headerBrand: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		headerSep: lipgloss.NewStyle().
			Foreground(p.TextMuted),
		headerMeta: lipgloss.NewStyle().
			Foreground(p.TextSecondary),

		screenIcon: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.PrimaryLight),
		screenTitle: lipgloss.NewStyle().
			Foreground(p.TextPrimary).
			Bold(true).
			MarginTop(1),
		screenSubtitle: lipgloss.NewStyle().
			Foreground(p.TextSecondary),

		panelTitle: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		editor: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.TabBar.Border),
		editorFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary),
		label: lipgloss.NewStyle().
			Foreground(p.TextSecondary),
		toggleOn: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		toggleOff: lipgloss.NewStyle().
			Foreground(p.TextMuted),
		statsLabel: lipgloss.NewStyle().
			Foreground(p.TextMuted),
		statsValue: lipgloss.NewStyle().
			Foreground(p.TextPrimary).
			Bold(true),
		selection: lipgloss.NewStyle().
			Foreground(p.Warning),

		tabBar: lipgloss.NewStyle().
			Background(p.TabBar.Background),
		tabBorder: lipgloss.NewStyle().
			Foreground(p.TabBar.Border),
		tabIconActive: lipgloss.NewStyle().
			Foreground(p.TabBar.ActiveIcon).
			Bold(true),
		tabIconInactive: lipgloss.NewStyle().
			Foreground(p.TabBar.InactiveIcon),
		tabIconPressed: lipgloss.NewStyle().
			Foreground(p.TabBar.InactiveIcon).
			Faint(true),
		tabTextActive: lipgloss.NewStyle().
			Foreground(p.TabBar.ActiveText).
			Bold(true),
		tabTextInactive: lipgloss.NewStyle().
			Foreground(p.TabBar.InactiveText),
		tabIndicator: lipgloss.NewStyle().
			Foreground(p.TabBar.Indicator),
		fabTop: lipgloss.NewStyle().
			Foreground(p.TabBar.FabBackground),
		fabBody: lipgloss.NewStyle().
			Background(p.TabBar.FabBackground).
			Foreground(p.TabBar.FabIcon).
			Bold(true),

		status: lipgloss.NewStyle().
			Foreground(p.TextPrimary).
			Padding(0, 1),
		statusError: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true).
			Padding(0, 1),
		statusOK: lipgloss.NewStyle().
			Foreground(p.Success).
			Padding(0, 1),
		hintKey: lipgloss.NewStyle().
			Foreground(p.TextPrimary).
			Bold(true),
		hintDesc: lipgloss.NewStyle().
			Foreground(p.TextMuted),
		footerBar: lipgloss.NewStyle().
			Background(p.Surface),
	}
}
