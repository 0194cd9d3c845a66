// Package tui implements the Limpio terminal user interface.
//
// A five-tab shell built with Charmbracelet's BubbleTea, Lipgloss and
// Bubbles. The central floating tab hosts the text cleaner; the other tabs
// are placeholder screens.
//
// Component architecture:
//
//	model.go   root model, message routing, Init/Update/View
//	theme.go   styles derived from the active palette
//	keys.go    key bindings and the help key map
//	header.go  top bar, status line and keyboard hints
//	tabbar.go  animated bottom navigation
//	screens.go placeholder screens
//	cleaner.go editor, pattern field, toggles and statistics
//	helpers.go width-aware truncation
package tui
