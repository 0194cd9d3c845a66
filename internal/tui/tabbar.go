package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/limpio/internal/navigation"
)

// pressedThreshold is the scale below which a regular tab renders pressed.
const pressedThreshold = 0.97

// renderTabBar draws the bottom navigation. Rows, top to bottom:
//
//	border (the FAB rises through it)
//	lift row (focused icons move up here)
//	icon row
//	label row
func renderTabBar(m *Model) string {
	tabs := m.tabs.Tabs()
	cfg := m.tabs.Config()
	rows := cfg.TotalHeight()

	n := len(tabs)
	cell := m.width / n
	extra := m.width - cell*n

	lines := make([]string, rows)
	for i, tab := range tabs {
		w := cell
		if i == n-1 {
			w += extra
		}

		var col []string
		if tab.IsFab {
			col = renderFabCell(m, i, tab, w, rows)
		} else {
			col = renderTabCell(m, i, tab, w, rows)
		}
		for r := range lines {
			lines[r] += col[r]
		}
	}

	return m.st.tabBar.Width(m.width).Render(strings.Join(lines, "\n"))
}

func renderTabCell(m *Model, i int, tab navigation.TabConfig, width, rows int) []string {
	st := m.st
	focused := m.tabs.IsFocused(i)

	iconStyle := st.tabIconInactive
	textStyle := st.tabTextInactive
	if focused {
		iconStyle = st.tabIconActive
		textStyle = st.tabTextActive
	}
	if m.tabs.Scale(i) < pressedThreshold {
		iconStyle = st.tabIconPressed
	}

	col := make([]string, rows)
	col[0] = st.tabBorder.Render(strings.Repeat("─", width))

	iconRow := rows - 2 + m.tabs.IconOffset(i)
	for r := 1; r < rows; r++ {
		var content string
		switch {
		case r == iconRow:
			content = iconStyle.Render(tab.Icon)
		case focused && r == iconRow+1 && r < rows-1:
			content = st.tabIndicator.Render("•")
		case r == rows-1:
			content = textStyle.Render(truncate(tab.Title, width))
		}
		col[r] = lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
	}
	return col
}

// renderFabCell draws the floating action button. Its width follows the
// press spring so a press visibly shrinks it.
func renderFabCell(m *Model, i int, tab navigation.TabConfig, width, rows int) []string {
	st := m.st
	cfg := m.tabs.Config()

	fw := int(math.Round(float64(cfg.FabWidth) * m.tabs.Scale(i)))
	fw = clamp(fw, 3, max(width-2, 3))

	side := max(width-fw, 0)
	left := side / 2
	right := side - left

	textStyle := st.tabTextInactive
	if m.tabs.IsFocused(i) {
		textStyle = st.tabTextActive
	}

	body := func(content string) string {
		return strings.Repeat(" ", left) +
			st.fabBody.Render(lipgloss.PlaceHorizontal(fw, lipgloss.Center, content)) +
			strings.Repeat(" ", right)
	}

	col := make([]string, rows)
	for r := 0; r < rows; r++ {
		switch {
		case r < cfg.FabElevation:
			col[r] = st.tabBorder.Render(strings.Repeat("─", left)) +
				st.fabTop.Render(strings.Repeat("▄", fw)) +
				st.tabBorder.Render(strings.Repeat("─", right))
		case r == rows-2:
			col[r] = body(tab.Icon)
		case r == rows-1:
			col[r] = lipgloss.PlaceHorizontal(width, lipgloss.Center, textStyle.Render(truncate(tab.Title, width)))
		default:
			col[r] = body("")
		}
	}
	return col
}
