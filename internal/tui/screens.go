package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/limpio/internal/navigation"
)

// subtitles are shown under the title of each placeholder screen.
var subtitles = map[string]string{
	"index":   "Bienvenido a tu dashboard",
	"wallet":  "Tu billetera",
	"mas":     "Acciones rápidas y más opciones",
	"chat":    "Tus conversaciones",
	"profile": "Tu perfil y configuración",
}

// renderScreen draws a placeholder screen: a centred icon, the tab title
// and its subtitle.
func renderScreen(m *Model, tab navigation.TabConfig, width, height int) string {
	st := m.st

	content := lipgloss.JoinVertical(lipgloss.Center,
		st.screenIcon.Render(tab.Icon),
		st.screenTitle.Render(tab.Title),
		st.screenSubtitle.Render(subtitles[tab.Name]),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
