package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	LIMPIO  |  Más  |  123 líneas · 110 no vacías
func renderHeader(m *Model) string {
	st := m.st
	brand := st.headerBrand.Render("LIMPIO")
	sep := st.headerSep.Render(" │ ")

	tab := m.tabs.FocusedTab()

	parts := []string{brand, sep, st.headerMeta.Render(tab.Title)}

	if m.onCleaner() {
		stats := m.cleaner.sess.Stats()
		parts = append(parts, sep, st.headerMeta.Render(
			fmt.Sprintf("%d líneas · %d no vacías", stats.Lines, stats.NonEmpty)))
		if m.cleaner.sess.CanUndo() {
			parts = append(parts, sep, st.headerMeta.Render(
				fmt.Sprintf("%d en historial", len(m.cleaner.sess.History()))))
		}
	}

	content := truncate(strings.Join(parts, ""), max(m.width-2, 0))

	return st.headerBar.Width(m.width).Render(content)
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	st := m.st

	var left string
	msg, isErr := m.statusMsg, false
	if m.onCleaner() {
		msg, isErr = m.cleaner.status, m.cleaner.statusErr
	}
	if msg != "" {
		if isErr {
			left = st.statusError.Render(msg)
		} else {
			left = st.statusOK.Render(msg)
		}
	}

	right := renderHints(st, m.keyMap().ShortHelp())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		// Narrow terminal: the status wins over the hints.
		right = ""
		gap = max(m.width-lipgloss.Width(left), 0)
	}

	bar := left + strings.Repeat(" ", gap) + right
	return st.footerBar.
		Width(m.width).
		MaxHeight(1).
		Render(bar)
}

func renderHints(st styles, bindings []key.Binding) string {
	var parts []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts,
			st.hintKey.Render(h.Key)+" "+st.hintDesc.Render(h.Desc))
	}
	return strings.Join(parts, st.hintDesc.Render("  "))
}
