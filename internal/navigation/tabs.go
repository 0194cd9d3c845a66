// Package navigation models the bottom tab bar of the shell: the ordered
// tab routes, which one is focused, the press/long-press events emitted to
// listeners and the spring animation played when a tab is pressed.
package navigation

// TabConfig describes one tab route. Order in a slice is display order.
type TabConfig struct {
	Name  string
	Title string
	Icon  string
	// IsFab marks the central floating action tab.
	IsFab bool
}

// DefaultTabs are the five routes of the shell, with the FAB in the middle.
var DefaultTabs = []TabConfig{
	{Name: "index", Title: "Home", Icon: "⌂"},
	{Name: "wallet", Title: "Wallet", Icon: "$"},
	{Name: "mas", Title: "Más", Icon: "+", IsFab: true},
	{Name: "chat", Title: "Chat", Icon: "✉"},
	{Name: "profile", Title: "Profile", Icon: "☺"},
}

// TabBarConfig holds the bar dimensions in terminal cells.
type TabBarConfig struct {
	// Height is the number of rows of the bar itself.
	Height int
	// FabWidth is the width of the floating action button.
	FabWidth int
	// FabElevation is how many rows the FAB rises above the bar.
	FabElevation int
	// PaddingBottom is the number of blank rows below the bar.
	PaddingBottom int
}

// DefaultTabBarConfig returns the standard bar layout.
func DefaultTabBarConfig() TabBarConfig {
	return TabBarConfig{
		Height:        3,
		FabWidth:      7,
		FabElevation:  1,
		PaddingBottom: 0,
	}
}

// TotalHeight is the number of rows the bar occupies, FAB included.
func (c TabBarConfig) TotalHeight() int {
	return c.Height + c.FabElevation + c.PaddingBottom
}
