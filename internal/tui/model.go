package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/limpio/internal/config"
	"github.com/Mr-Dark-debug/limpio/internal/logging"
	"github.com/Mr-Dark-debug/limpio/internal/navigation"
	"github.com/Mr-Dark-debug/limpio/internal/theme"
)

// cleanerRoute is the tab that hosts the text cleaner.
const cleanerRoute = "mas"

// frameRate drives the tab bar animation.
const frameRate = time.Second / 60

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Options configures a new Model.
type Options struct {
	Config  *config.Config
	Palette theme.Palette
	// Text is the initial document of the cleaner.
	Text string
}

// tabLog records the last event the tab bar emitted. It is shared by
// pointer because the listener outlives each copy of the Model.
type tabLog struct {
	last     navigation.TabEvent
	reFocus  bool
	received int
}

// Model is the root BubbleTea model of the shell. Rendering is delegated
// to component functions in separate files.
type Model struct {
	st      styles
	tabs    *navigation.TabBar
	events  *tabLog
	cleaner cleanerModel
	help    help.Model

	animations bool
	ticking    bool

	width  int
	height int

	statusMsg string
}

// New creates the shell model.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}

	tabs, err := navigation.NewTabBar(navigation.DefaultTabs, navigation.DefaultTabBarConfig())
	if err != nil {
		return Model{}, fmt.Errorf("create tab bar: %w", err)
	}
	tabs.SetAnimations(cfg.TUI.Animations)

	events := &tabLog{}
	tabs.SetListener(func(e *navigation.TabEvent) {
		events.last = *e
		events.received++
		// Pressing the cleaner tab again returns focus to the editor.
		events.reFocus = e.Type == navigation.TabPress &&
			e.Route == cleanerRoute && tabs.IsFocused(e.Index)
	})

	st := newStyles(opts.Palette)

	return Model{
		st:         st,
		tabs:       tabs,
		events:     events,
		cleaner:    newCleanerModel(cfg, st, opts.Text),
		help:       help.New(),
		animations: cfg.TUI.Animations,
	}, nil
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type frameMsg time.Time

func animate() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.cleaner.setSize(m.width, m.bodyHeight())
		return m, nil

	case frameMsg:
		if m.tabs.Tick() {
			return m, animate()
		}
		m.ticking = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.onCleaner() {
		var cmd tea.Cmd
		m.cleaner, cmd = m.cleaner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey routes keyboard input based on the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := defaultGlobalKeys

	// ── Global ──

	switch {
	case key.Matches(msg, g.Quit):
		return m, tea.Quit

	case key.Matches(msg, g.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, g.NextTab):
		m.tabs.Next()
		return m.afterPress()

	case key.Matches(msg, g.PrevTab):
		m.tabs.Prev()
		return m.afterPress()
	}

	// ── Cleaner ──

	if m.onCleaner() {
		var cmd tea.Cmd
		m.cleaner, cmd = m.cleaner.Update(msg)
		return m, cmd
	}

	// ── Placeholder screens ──

	s := defaultScreenKeys
	switch {
	case key.Matches(msg, s.QuitShort):
		return m, tea.Quit

	case key.Matches(msg, s.Jump):
		i := int(msg.String()[0] - '1')
		m.tabs.Press(i)
		return m.afterPress()

	case key.Matches(msg, s.LongPress):
		m.tabs.LongPress(m.tabs.Focused())
		m.statusMsg = fmt.Sprintf("%s: %s", m.events.last.Type, m.tabs.FocusedTab().Title)
		return m, m.startAnimation()
	}

	return m, nil
}

// afterPress syncs screen focus with the tab bar and starts the press
// animation.
func (m Model) afterPress() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	tab := m.tabs.FocusedTab()
	m.statusMsg = ""

	logging.Component("tui").Debug().
		Str("tab", tab.Name).
		Str("event", m.events.last.Type.String()).
		Msg("tab pressed")

	if m.onCleaner() {
		if m.events.reFocus {
			m.cleaner.focus = focusEditor
			m.cleaner.pattern.Blur()
		}
		cmds = append(cmds, m.cleaner.activate())
	} else {
		m.cleaner.deactivate()
	}

	cmds = append(cmds, m.startAnimation())
	return m, tea.Batch(cmds...)
}

func (m *Model) startAnimation() tea.Cmd {
	if !m.animations || m.ticking || !m.tabs.Animating() {
		return nil
	}
	m.ticking = true
	return animate()
}

func (m Model) onCleaner() bool {
	return m.tabs.FocusedTab().Name == cleanerRoute
}

// bodyHeight is the space left for the active screen.
func (m Model) bodyHeight() int {
	return max(m.height-2-m.tabs.Config().TotalHeight(), 1) // header + footer
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)
	bar := renderTabBar(&m)

	bodyHeight := m.bodyHeight()

	var body string
	switch {
	case m.help.ShowAll:
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			m.help.View(m.keyMap()))
	case m.onCleaner():
		body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).
			Render(m.cleaner.View(m.width))
	default:
		body = renderScreen(&m, m.tabs.FocusedTab(), m.width, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, bar, footer)
}

func (m Model) keyMap() keyMap {
	return keyMap{
		cleaner: m.onCleaner(),
		pattern: m.onCleaner() && m.cleaner.focus == focusPattern,
	}
}
