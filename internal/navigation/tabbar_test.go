package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBar(t *testing.T) *TabBar {
	t.Helper()
	b, err := NewTabBar(DefaultTabs, DefaultTabBarConfig())
	require.NoError(t, err)
	return b
}

func TestDefaultTabs(t *testing.T) {
	names := make([]string, len(DefaultTabs))
	fabs := 0
	for i, tab := range DefaultTabs {
		names[i] = tab.Name
		if tab.IsFab {
			fabs++
			assert.Equal(t, "mas", tab.Name)
		}
	}

	assert.Equal(t, []string{"index", "wallet", "mas", "chat", "profile"}, names)
	assert.Equal(t, 1, fabs)
}

func TestNewTabBar_Errors(t *testing.T) {
	_, err := NewTabBar(nil, DefaultTabBarConfig())
	require.Error(t, err)

	_, err = NewTabBar([]TabConfig{{Name: "a"}, {Name: "a"}}, DefaultTabBarConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate tab")

	_, err = NewTabBar([]TabConfig{{Title: "no name"}}, DefaultTabBarConfig())
	require.Error(t, err)
}

func TestPress_FocusesFab(t *testing.T) {
	b := newBar(t)
	require.Equal(t, 0, b.Focused())

	var events []TabEvent
	b.SetListener(func(e *TabEvent) { events = append(events, *e) })

	changed := b.Press(2)

	assert.True(t, changed)
	assert.Equal(t, "mas", b.FocusedTab().Name)
	require.Len(t, events, 1)
	assert.Equal(t, TabPress, events[0].Type)
	assert.Equal(t, "mas", events[0].Route)
}

func TestPress_Prevented(t *testing.T) {
	b := newBar(t)
	b.SetListener(func(e *TabEvent) {
		if e.Route == "profile" {
			e.PreventDefault()
		}
	})

	assert.False(t, b.Press(4))
	assert.Equal(t, 0, b.Focused())

	assert.True(t, b.Press(3))
	assert.Equal(t, "chat", b.FocusedTab().Name)
}

func TestPress_FocusedTabStillEmits(t *testing.T) {
	b := newBar(t)
	count := 0
	b.SetListener(func(*TabEvent) { count++ })

	assert.False(t, b.Press(0))
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, b.Focused())
}

func TestPress_OutOfRange(t *testing.T) {
	b := newBar(t)
	assert.False(t, b.Press(-1))
	assert.False(t, b.Press(5))
	assert.Equal(t, 0, b.Focused())
}

func TestLongPress_NeverChangesFocus(t *testing.T) {
	b := newBar(t)
	var got []EventType
	b.SetListener(func(e *TabEvent) {
		got = append(got, e.Type)
		e.PreventDefault()
		assert.False(t, e.DefaultPrevented())
	})

	b.LongPress(3)

	assert.Equal(t, []EventType{TabLongPress}, got)
	assert.Equal(t, 0, b.Focused())
	assert.Equal(t, "tabLongPress", TabLongPress.String())
}

func TestNextPrevWrap(t *testing.T) {
	b := newBar(t)

	b.Prev()
	assert.Equal(t, "profile", b.FocusedTab().Name)
	b.Next()
	assert.Equal(t, "index", b.FocusedTab().Name)
	b.Next()
	assert.Equal(t, "wallet", b.FocusedTab().Name)
}

func TestFocusName(t *testing.T) {
	b := newBar(t)

	assert.True(t, b.FocusName("chat"))
	assert.Equal(t, 3, b.Focused())
	assert.False(t, b.FocusName("settings"))
	assert.Equal(t, 3, b.Focused())
}

func TestExactlyOneFocused(t *testing.T) {
	b := newBar(t)
	b.SetListener(func(e *TabEvent) {
		if e.Index == 1 {
			e.PreventDefault()
		}
	})

	for _, i := range []int{3, 1, 2, 2, 7, 0, 4, -3, 1} {
		b.Press(i)
		b.LongPress(i)

		focused := 0
		for j := 0; j < b.Len(); j++ {
			if b.IsFocused(j) {
				focused++
			}
		}
		require.Equal(t, 1, focused)
	}
}

func TestPressAnimationSettles(t *testing.T) {
	b := newBar(t)
	assert.False(t, b.Animating())

	b.Press(1)
	require.True(t, b.Animating())

	minScale := b.Scale(1)
	frames := 0
	for b.Tick() {
		frames++
		if s := b.Scale(1); s < minScale {
			minScale = s
		}
		require.Less(t, frames, 600, "spring never settled")
	}

	assert.Less(t, minScale, 0.95)
	assert.Greater(t, minScale, 0.85)
	assert.InDelta(t, RestScale, b.Scale(1), 0.001)
	assert.Equal(t, RestScale, b.Scale(0))
	assert.False(t, b.Animating())
}

func TestAnimationsDisabled(t *testing.T) {
	b := newBar(t)
	b.SetAnimations(false)

	b.Press(3)

	assert.False(t, b.Animating())
	assert.False(t, b.Tick())
	assert.Equal(t, RestScale, b.Scale(3))
}

func TestIconOffset(t *testing.T) {
	b := newBar(t)

	assert.Equal(t, -1, b.IconOffset(0))
	assert.Equal(t, 0, b.IconOffset(1))

	b.Press(2)
	// the FAB is elevated instead
	assert.Equal(t, 0, b.IconOffset(2))
	assert.Equal(t, 0, b.IconOffset(0))
}

func TestTotalHeight(t *testing.T) {
	assert.Equal(t, 4, DefaultTabBarConfig().TotalHeight())
}
