package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/limpio/internal/cleaner"
	"github.com/Mr-Dark-debug/limpio/internal/config"
	"github.com/Mr-Dark-debug/limpio/internal/export"
	"github.com/Mr-Dark-debug/limpio/internal/session"
	"github.com/Mr-Dark-debug/limpio/pkg/timeutil"
)

// ────────────────────────────────────────────────────────────
// Cleaner screen
// ────────────────────────────────────────────────────────────

type cleanerFocus int

const (
	focusEditor cleanerFocus = iota
	focusPattern
)

// noMark is the mark value when no selection anchor is set.
const noMark = -1

// chrome is the number of rows around the editor: title, toggles,
// pattern, stats and the editor border.
const cleanerChrome = 6

var commandLabels = map[string]string{
	"clear":             "Limpiar",
	"remove-matching":   "Eliminar coincidencias",
	"remove-duplicates": "Quitar duplicados",
	"apply-options":     "Aplicar opciones",
	"remove-selection":  "Borrar selección",
	"load-example":      "Cargar ejemplo",
	"set-text":          "Edición",
}

type exportedMsg struct {
	path string
	at   time.Time
	err  error
}

// cleanerModel is the text cleaner hosted by the FAB screen. The session is
// the source of truth; the editor mirrors it.
type cleanerModel struct {
	st   styles
	keys cleanerKeys

	sess    *session.Session
	editor  textarea.Model
	pattern textinput.Model
	focus   cleanerFocus
	active  bool

	opts         cleaner.TransformOptions
	useRegex     bool
	exampleLines int
	exportDir    string

	mark int

	status    string
	statusErr bool
}

func newCleanerModel(cfg *config.Config, st styles, text string) cleanerModel {
	ed := textarea.New()
	ed.Placeholder = "Pega o escribe tu texto aquí..."
	ed.ShowLineNumbers = true
	ed.CharLimit = 0
	ed.MaxHeight = 0
	ed.MaxWidth = 0
	ed.Prompt = ""
	ed.SetValue(text)

	pat := textinput.New()
	pat.Placeholder = "patrón a eliminar"
	pat.Prompt = ""
	pat.CharLimit = 256

	return cleanerModel{
		st:   st,
		keys: defaultCleanerKeys,
		// The editor normalizes line endings and tabs on input; the session
		// starts from that representation so offsets agree.
		sess:         session.New(ed.Value(), cfg.History.MaxUndo),
		editor:       ed,
		pattern:      pat,
		opts:         cfg.Cleaner.Options(),
		useRegex:     cfg.Cleaner.UseRegex,
		exampleLines: cfg.Cleaner.ExampleLines,
		exportDir:    cfg.Export.Dir,
		mark:         noMark,
	}
}

// activate gives keyboard focus to the cleaner.
func (c *cleanerModel) activate() tea.Cmd {
	c.active = true
	if c.focus == focusPattern {
		return c.pattern.Focus()
	}
	return c.editor.Focus()
}

// deactivate releases keyboard focus when another tab is shown.
func (c *cleanerModel) deactivate() {
	c.active = false
	c.editor.Blur()
	c.pattern.Blur()
}

func (c *cleanerModel) setSize(width, height int) {
	c.editor.SetWidth(max(width-2, 10))
	c.editor.SetHeight(max(height-cleanerChrome, 1))
	c.pattern.Width = max(width-30, 10)
}

func (c *cleanerModel) setStatus(msg string, isErr bool) {
	c.status = msg
	c.statusErr = isErr
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (c cleanerModel) Update(msg tea.Msg) (cleanerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case exportedMsg:
		if msg.err != nil {
			c.setStatus(fmt.Sprintf("Error al exportar: %v", msg.err), true)
		} else {
			c.setStatus(fmt.Sprintf("Exportado a %s (%s)", msg.path, timeutil.FormatClock(msg.at)), false)
		}
		return c, nil

	case tea.KeyMsg:
		if c.focus == focusPattern {
			return c.handlePatternKey(msg)
		}
		return c.handleEditorKey(msg)
	}

	// Cursor blink and other component messages
	var cmds []tea.Cmd
	var cmd tea.Cmd
	c.editor, cmd = c.editor.Update(msg)
	cmds = append(cmds, cmd)
	c.pattern, cmd = c.pattern.Update(msg)
	cmds = append(cmds, cmd)
	return c, tea.Batch(cmds...)
}

// handleShared runs the actions available from both fields. ok is false
// when msg is not one of them.
func (c *cleanerModel) handleShared(msg tea.KeyMsg) (cmd tea.Cmd, ok bool) {
	switch {
	case key.Matches(msg, c.keys.Example):
		c.do(session.LoadExampleCmd{Lines: c.exampleLines})
	case key.Matches(msg, c.keys.Clear):
		c.do(session.ClearCmd{})
	case key.Matches(msg, c.keys.Apply):
		if !c.opts.Any() {
			c.setStatus("No hay opciones activas", false)
			return nil, true
		}
		c.do(session.ApplyOptionsCmd{Options: c.opts})
	case key.Matches(msg, c.keys.Remove):
		c.removeMatching()
	case key.Matches(msg, c.keys.ToggleTrim):
		c.opts.TrimLines = !c.opts.TrimLines
		c.setStatus(toggleStatus("Recortar líneas", c.opts.TrimLines), false)
	case key.Matches(msg, c.keys.ToggleEmpty):
		c.opts.RemoveEmptyLines = !c.opts.RemoveEmptyLines
		c.setStatus(toggleStatus("Eliminar líneas vacías", c.opts.RemoveEmptyLines), false)
	case key.Matches(msg, c.keys.ToggleDedupe):
		c.opts.RemoveDuplicates = !c.opts.RemoveDuplicates
		c.setStatus(toggleStatus("Eliminar duplicados", c.opts.RemoveDuplicates), false)
	case key.Matches(msg, c.keys.ToggleRegex):
		c.useRegex = !c.useRegex
		c.setStatus(toggleStatus("Usar regex", c.useRegex), false)
	case key.Matches(msg, c.keys.Undo):
		if name, ok := c.sess.Undo(); ok {
			c.syncEditor()
			c.setStatus("Deshecho: "+label(name), false)
		} else {
			c.setStatus("Nada que deshacer", false)
		}
	case key.Matches(msg, c.keys.Redo):
		if name, ok := c.sess.Redo(); ok {
			c.syncEditor()
			c.setStatus("Rehecho: "+label(name), false)
		} else {
			c.setStatus("Nada que rehacer", false)
		}
	case key.Matches(msg, c.keys.Export):
		return exportCmd(c.exportDir, c.sess.Text()), true
	default:
		return nil, false
	}
	return nil, true
}

func (c cleanerModel) handleEditorKey(msg tea.KeyMsg) (cleanerModel, tea.Cmd) {
	if cmd, ok := c.handleShared(msg); ok {
		return c, cmd
	}

	switch {
	case key.Matches(msg, c.keys.Mark):
		c.mark = c.cursorOffset()
		c.setStatus(fmt.Sprintf("Marca en %d", c.mark), false)
		return c, nil

	case key.Matches(msg, c.keys.Cut):
		c.removeSelection()
		return c, nil

	case key.Matches(msg, c.keys.FocusPattern):
		c.focus = focusPattern
		c.editor.Blur()
		return c, c.pattern.Focus()
	}

	before := c.editor.Value()
	var cmd tea.Cmd
	c.editor, cmd = c.editor.Update(msg)

	if after := c.editor.Value(); after != before {
		c.sess.Do(session.SetTextCmd{Text: after})
		c.status = ""
	}
	return c, cmd
}

func (c cleanerModel) handlePatternKey(msg tea.KeyMsg) (cleanerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, c.keys.PatternSubmit):
		c.removeMatching()
		return c, nil
	case key.Matches(msg, c.keys.PatternCancel), key.Matches(msg, c.keys.FocusPattern):
		c.focus = focusEditor
		c.pattern.Blur()
		return c, c.editor.Focus()
	}

	if cmd, ok := c.handleShared(msg); ok {
		return c, cmd
	}

	var cmd tea.Cmd
	c.pattern, cmd = c.pattern.Update(msg)
	return c, cmd
}

// ────────────────────────────────────────────────────────────
// Actions
// ────────────────────────────────────────────────────────────

// do runs cmd through the session and mirrors the result in the editor.
func (c *cleanerModel) do(cmd session.Command) session.Result {
	res := c.sess.Do(cmd)
	c.mark = noMark
	if !res.Changed {
		c.setStatus(label(res.Command)+": sin cambios", false)
		return res
	}

	c.syncEditor()
	c.setStatus(fmt.Sprintf("%s: %d → %d líneas (%s)",
		label(res.Command), res.Before.Lines, res.After.Lines,
		timeutil.FormatDuration(res.Elapsed)), false)
	return res
}

func (c *cleanerModel) removeMatching() {
	spec := cleaner.MatchSpec{Pattern: c.pattern.Value(), UseRegex: c.useRegex}
	if spec.IsEmpty() {
		c.setStatus("Escribe un patrón para eliminar líneas", true)
		return
	}

	m := spec.Matcher()
	c.do(session.RemoveMatchingCmd{Spec: spec})
	if c.useRegex && m.Mode == cleaner.MatchLiteral {
		c.setStatus(c.status+" · regex inválida, búsqueda literal", false)
	}
}

func (c *cleanerModel) removeSelection() {
	if c.mark == noMark {
		c.setStatus("Marca el inicio de la selección primero ("+c.keys.Mark.Help().Key+")", true)
		return
	}

	start, end := c.mark, c.cursorOffset()
	if start > end {
		start, end = end, start
	}
	if start == end {
		c.mark = noMark
		c.setStatus("Selección vacía", false)
		return
	}

	res := c.do(session.RemoveSelectionCmd{Start: start, End: end})
	if res.Changed {
		moveCursorTo(&c.editor, c.sess.Text(), start)
	}
}

func (c *cleanerModel) syncEditor() {
	c.editor.SetValue(c.sess.Text())
}

func exportCmd(dir, text string) tea.Cmd {
	return func() tea.Msg {
		path, err := export.Save(dir, text)
		return exportedMsg{path: path, at: time.Now(), err: err}
	}
}

// ────────────────────────────────────────────────────────────
// Cursor offsets
// ────────────────────────────────────────────────────────────

// cursorOffset is the code point offset of the editor cursor in the flat
// text, line separators included.
func (c *cleanerModel) cursorOffset() int {
	rows := strings.Split(c.editor.Value(), "\n")
	row := c.editor.Line()

	off := 0
	for i := 0; i < row && i < len(rows); i++ {
		off += utf8.RuneCountInString(rows[i]) + 1
	}

	li := c.editor.LineInfo()
	return off + li.StartColumn + li.ColumnOffset
}

// moveCursorTo places the cursor of ed, whose value is text, at offset.
func moveCursorTo(ed *textarea.Model, text string, offset int) {
	row, col := 0, 0
	for i, r := range []rune(text) {
		if i == offset {
			break
		}
		if r == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}

	// SetValue leaves the cursor on the last row; walk up from there.
	for guard := 0; ed.Line() > row && guard < 100_000; guard++ {
		ed.CursorUp()
	}
	ed.SetCursor(col)
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (c cleanerModel) View(width int) string {
	st := c.st

	title := st.panelTitle.Render("Limpiador de Texto") +
		st.label.Render("  Acciones rápidas y más opciones")

	toggles := strings.Join([]string{
		c.renderToggle("Recortar", c.opts.TrimLines, c.keys.ToggleTrim),
		c.renderToggle("Sin vacías", c.opts.RemoveEmptyLines, c.keys.ToggleEmpty),
		c.renderToggle("Sin duplicados", c.opts.RemoveDuplicates, c.keys.ToggleDedupe),
	}, "   ")

	patternLine := st.label.Render("Patrón ") + c.pattern.View() + "  " +
		c.renderToggle("Regex", c.useRegex, c.keys.ToggleRegex)

	box := st.editor
	if c.active && c.focus == focusEditor {
		box = st.editorFocus
	}
	editor := box.Width(max(width-2, 10)).Render(c.editor.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		truncate(title, width),
		truncate(toggles, width),
		truncate(patternLine, width),
		editor,
		truncate(c.renderStats(), width),
	)
}

func (c cleanerModel) renderToggle(name string, on bool, b key.Binding) string {
	if on {
		return c.st.toggleOn.Render("[x] "+name) + c.st.statsLabel.Render(" "+b.Help().Key)
	}
	return c.st.toggleOff.Render("[ ] "+name) + c.st.statsLabel.Render(" "+b.Help().Key)
}

// renderStats is the live statistics line under the editor.
func (c cleanerModel) renderStats() string {
	st := c.st
	stats := c.sess.Stats()

	parts := []string{
		st.statsLabel.Render("Líneas ") + st.statsValue.Render(fmt.Sprint(stats.Lines)),
		st.statsLabel.Render("No vacías ") + st.statsValue.Render(fmt.Sprint(stats.NonEmpty)),
		st.statsLabel.Render("Caracteres ") + st.statsValue.Render(fmt.Sprint(stats.Chars)),
	}

	if c.mark != noMark {
		cur := c.cursorOffset()
		lo, hi := min(c.mark, cur), max(c.mark, cur)
		parts = append(parts, st.selection.Render(fmt.Sprintf("Selección %d–%d (%d)", lo, hi, hi-lo)))
	}

	return strings.Join(parts, st.statsLabel.Render("  ·  "))
}

func label(command string) string {
	if l, ok := commandLabels[command]; ok {
		return l
	}
	return command
}

func toggleStatus(name string, on bool) string {
	if on {
		return name + ": activado"
	}
	return name + ": desactivado"
}
