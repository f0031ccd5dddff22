package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal-mode bindings. Goto and search modes read raw keys.
type KeyMap struct {
	Earlier     key.Binding
	Later       key.Binding
	Up          key.Binding
	Down        key.Binding
	HalfUp      key.Binding
	HalfDown    key.Binding
	Day         key.Binding
	Week        key.Binding
	Month       key.Binding
	CycleZoom   key.Binding
	Today       key.Binding
	Reveal      key.Binding
	Goto        key.Binding
	Search      key.Binding
	Sort        key.Binding
	Reverse     key.Binding
	PhaseOrder  key.Binding
	Unscheduled key.Binding
	Clear       key.Binding
	Reload      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the vim-style bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Earlier:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "earlier")),
		Later:       key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "later")),
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		HalfUp:      key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("C-u", "half page up")),
		HalfDown:    key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("C-d", "half page down")),
		Day:         key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "day zoom")),
		Week:        key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "week zoom")),
		Month:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "month zoom")),
		CycleZoom:   key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "cycle zoom")),
		Today:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Reveal:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show selected")),
		Goto:        key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "goto…")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort field")),
		Reverse:     key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "reverse sort")),
		PhaseOrder:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "phase order")),
		Unscheduled: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hide unscheduled")),
		Clear:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Earlier, k.Later, k.CycleZoom, k.Today, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Earlier, k.Later, k.Today, k.Reveal},
		{k.Up, k.Down, k.HalfUp, k.HalfDown},
		{k.Day, k.Week, k.Month, k.CycleZoom},
		{k.Goto, k.Search, k.Clear, k.Unscheduled},
		{k.Sort, k.Reverse, k.PhaseOrder},
		{k.Reload, k.Help, k.Quit},
	}
}
