package tui

import "github.com/charmbracelet/bubbles/key"

// globalKeys work on every screen.
type globalKeys struct {
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Help    key.Binding
}

// screenKeys only apply while no text field has focus.
type screenKeys struct {
	QuitShort key.Binding
	Jump      key.Binding
	LongPress key.Binding
}

// cleanerKeys drive the text cleaner.
type cleanerKeys struct {
	Example       key.Binding
	Clear         key.Binding
	Mark          key.Binding
	Cut           key.Binding
	Apply         key.Binding
	Remove        key.Binding
	FocusPattern  key.Binding
	ToggleTrim    key.Binding
	ToggleEmpty   key.Binding
	ToggleDedupe  key.Binding
	ToggleRegex   key.Binding
	Undo          key.Binding
	Redo          key.Binding
	Export        key.Binding
	PatternSubmit key.Binding
	PatternCancel key.Binding
}

var defaultGlobalKeys = globalKeys{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "salir"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "pestaña"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "anterior"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "ayuda"),
	),
}

var defaultScreenKeys = screenKeys{
	QuitShort: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "salir"),
	),
	Jump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5"),
		key.WithHelp("1-5", "ir a"),
	),
	LongPress: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "mantener"),
	),
}

var defaultCleanerKeys = cleanerKeys{
	Example: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "ejemplo"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "limpiar"),
	),
	Mark: key.NewBinding(
		key.WithKeys("ctrl+@", "alt+m"),
		key.WithHelp("alt+m", "marcar"),
	),
	Cut: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "borrar selección"),
	),
	Apply: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "aplicar opciones"),
	),
	Remove: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "eliminar coincidencias"),
	),
	FocusPattern: key.NewBinding(
		key.WithKeys("alt+p"),
		key.WithHelp("alt+p", "patrón"),
	),
	ToggleTrim: key.NewBinding(
		key.WithKeys("alt+t"),
		key.WithHelp("alt+t", "recortar"),
	),
	ToggleEmpty: key.NewBinding(
		key.WithKeys("alt+e"),
		key.WithHelp("alt+e", "vacías"),
	),
	ToggleDedupe: key.NewBinding(
		key.WithKeys("alt+d"),
		key.WithHelp("alt+d", "duplicados"),
	),
	ToggleRegex: key.NewBinding(
		key.WithKeys("alt+r"),
		key.WithHelp("alt+r", "regex"),
	),
	Undo: key.NewBinding(
		key.WithKeys("ctrl+z"),
		key.WithHelp("ctrl+z", "deshacer"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "rehacer"),
	),
	Export: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "exportar"),
	),
	PatternSubmit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "eliminar"),
	),
	PatternCancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "volver"),
	),
}

// ────────────────────────────────────────────────────────────
// help.KeyMap
// ────────────────────────────────────────────────────────────

// keyMap adapts the bindings of the active screen to bubbles/help.
type keyMap struct {
	cleaner bool
	pattern bool
}

func (k keyMap) ShortHelp() []key.Binding {
	g, c := defaultGlobalKeys, defaultCleanerKeys
	switch {
	case k.pattern:
		return []key.Binding{c.PatternSubmit, c.PatternCancel, g.Help}
	case k.cleaner:
		return []key.Binding{c.Example, c.Apply, c.Remove, c.Undo, c.Export, g.NextTab, g.Help}
	default:
		s := defaultScreenKeys
		return []key.Binding{s.Jump, g.NextTab, g.Help, s.QuitShort}
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	g, c, s := defaultGlobalKeys, defaultCleanerKeys, defaultScreenKeys
	if !k.cleaner {
		return [][]key.Binding{
			{s.Jump, s.LongPress, g.NextTab, g.PrevTab},
			{g.Help, s.QuitShort, g.Quit},
		}
	}
	return [][]key.Binding{
		{c.Example, c.Clear, c.Mark, c.Cut},
		{c.Apply, c.ToggleTrim, c.ToggleEmpty, c.ToggleDedupe},
		{c.Remove, c.FocusPattern, c.ToggleRegex},
		{c.Undo, c.Redo, c.Export},
		{g.NextTab, g.PrevTab, g.Help, g.Quit},
	}
}
