package navigation

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/Mr-Dark-debug/limpio/internal/logging"
)

// EventType identifies a tab bar event.
type EventType int

const (
	TabPress EventType = iota
	TabLongPress
)

func (t EventType) String() string {
	switch t {
	case TabPress:
		return "tabPress"
	case TabLongPress:
		return "tabLongPress"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// TabEvent is delivered to the listener before the bar acts on a press.
type TabEvent struct {
	Type  EventType
	Route string
	Index int

	prevented bool
}

// PreventDefault stops a press from moving focus. It has no effect on long
// presses, which never move focus.
func (e *TabEvent) PreventDefault() {
	if e.Type == TabPress {
		e.prevented = true
	}
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *TabEvent) DefaultPrevented() bool {
	return e.prevented
}

// Listener receives tab bar events synchronously.
type Listener func(*TabEvent)

// Press animation. The spring is underdamped so the icon
// overshoots slightly when it is released.
const (
	RestScale    = 1.0
	PressedScale = 0.9

	springStiffness = 400.0
	springDamping   = 15.0
	springMass      = 1.0

	// pressFrames is how long a press is held before release (100ms).
	pressFrames = 6

	settleEpsilon = 0.001
)

type pressSpring struct {
	pos, vel, target float64
	hold             int
}

func (s *pressSpring) settled() bool {
	return s.hold == 0 &&
		s.target == RestScale &&
		math.Abs(s.pos-s.target) < settleEpsilon &&
		math.Abs(s.vel) < settleEpsilon
}

// TabBar tracks the focused tab. Exactly one tab is focused at all times.
type TabBar struct {
	tabs    []TabConfig
	cfg     TabBarConfig
	focused int

	listener Listener

	animate bool
	spring  harmonica.Spring
	springs []pressSpring
}

// NewTabBar builds a bar over tabs with the first tab focused.
func NewTabBar(tabs []TabConfig, cfg TabBarConfig) (*TabBar, error) {
	if len(tabs) == 0 {
		return nil, errors.New("tab bar needs at least one tab")
	}

	seen := make(map[string]bool, len(tabs))
	for _, t := range tabs {
		if t.Name == "" {
			return nil, errors.New("tab name cannot be empty")
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate tab %q", t.Name)
		}
		seen[t.Name] = true
	}

	b := &TabBar{
		tabs:    append([]TabConfig(nil), tabs...),
		cfg:     cfg,
		animate: true,
		springs: make([]pressSpring, len(tabs)),
	}

	angularFreq := math.Sqrt(springStiffness / springMass)
	dampingRatio := springDamping / (2 * math.Sqrt(springStiffness*springMass))
	b.spring = harmonica.NewSpring(harmonica.FPS(60), angularFreq, dampingRatio)

	for i := range b.springs {
		b.springs[i] = pressSpring{pos: RestScale, target: RestScale}
	}

	return b, nil
}

// Config returns the bar dimensions.
func (b *TabBar) Config() TabBarConfig { return b.cfg }

// Tabs returns the routes in display order.
func (b *TabBar) Tabs() []TabConfig { return b.tabs }

// Len is the number of tabs.
func (b *TabBar) Len() int { return len(b.tabs) }

// Focused returns the index of the focused tab.
func (b *TabBar) Focused() int { return b.focused }

// FocusedTab returns the focused route.
func (b *TabBar) FocusedTab() TabConfig { return b.tabs[b.focused] }

// IsFocused reports whether tab i is focused.
func (b *TabBar) IsFocused(i int) bool { return i == b.focused }

// Index returns the position of the named tab, or -1.
func (b *TabBar) Index(name string) int {
	for i, t := range b.tabs {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// SetListener registers the event listener, replacing any previous one.
func (b *TabBar) SetListener(l Listener) { b.listener = l }

// SetAnimations turns the press animation on or off. Turning it off snaps
// every tab back to rest.
func (b *TabBar) SetAnimations(on bool) {
	b.animate = on
	if !on {
		for i := range b.springs {
			b.springs[i] = pressSpring{pos: RestScale, target: RestScale}
		}
	}
}

func (b *TabBar) emit(t EventType, i int) *TabEvent {
	ev := &TabEvent{Type: t, Route: b.tabs[i].Name, Index: i}
	if b.listener != nil {
		b.listener(ev)
	}
	return ev
}

// Press emits a TabPress for tab i and focuses it unless it is already
// focused or the listener prevented the default. It reports whether focus
// changed. Out of range indexes are ignored.
func (b *TabBar) Press(i int) bool {
	if i < 0 || i >= len(b.tabs) {
		return false
	}

	b.startPress(i)

	ev := b.emit(TabPress, i)
	if b.IsFocused(i) || ev.DefaultPrevented() {
		return false
	}

	logging.Component("navigation").Debug().
		Str("from", b.tabs[b.focused].Name).
		Str("to", b.tabs[i].Name).
		Msg("tab focused")

	b.focused = i
	return true
}

// LongPress emits a TabLongPress for tab i. Focus never changes.
func (b *TabBar) LongPress(i int) {
	if i < 0 || i >= len(b.tabs) {
		return
	}
	b.startPress(i)
	b.emit(TabLongPress, i)
}

// Next presses the tab after the focused one, wrapping around.
func (b *TabBar) Next() bool {
	return b.Press((b.focused + 1) % len(b.tabs))
}

// Prev presses the tab before the focused one, wrapping around.
func (b *TabBar) Prev() bool {
	return b.Press((b.focused - 1 + len(b.tabs)) % len(b.tabs))
}

// FocusName presses the named tab. Unknown names are ignored.
func (b *TabBar) FocusName(name string) bool {
	i := b.Index(name)
	if i < 0 {
		return false
	}
	return b.Press(i)
}

// ────────────────────────────────────────────────────────────
// Animation
// ────────────────────────────────────────────────────────────

func (b *TabBar) startPress(i int) {
	if !b.animate {
		return
	}
	b.springs[i].target = PressedScale
	b.springs[i].hold = pressFrames
}

// Tick advances every spring by one frame and reports whether any tab is
// still moving.
func (b *TabBar) Tick() bool {
	moving := false
	for i := range b.springs {
		s := &b.springs[i]
		if s.settled() {
			s.pos, s.vel = RestScale, 0
			continue
		}

		if s.hold > 0 {
			s.hold--
			if s.hold == 0 {
				s.target = RestScale
			}
		}

		s.pos, s.vel = b.spring.Update(s.pos, s.vel, s.target)
		moving = true
	}
	return moving
}

// Animating reports whether any spring is away from rest.
func (b *TabBar) Animating() bool {
	for i := range b.springs {
		if !b.springs[i].settled() {
			return true
		}
	}
	return false
}

// Scale returns the current press scale of tab i, 1 at rest.
func (b *TabBar) Scale(i int) float64 {
	if i < 0 || i >= len(b.springs) {
		return RestScale
	}
	return b.springs[i].pos
}

// IconOffset is the vertical icon shift of tab i in rows: the focused icon
// is lifted by one row.
func (b *TabBar) IconOffset(i int) int {
	if b.IsFocused(i) && !b.tabs[i].IsFab {
		return -1
	}
	return 0
}
