package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	Filter    key.Binding
	Sort      key.Binding
	Limit     key.Binding
	Favorite  key.Binding
	FavsOnly  key.Binding
	Detail    key.Binding
	Reset     key.Binding
	Retry     key.Binding
	Login     key.Binding
	Logout    key.Binding
	Help      key.Binding
	Quit      key.Binding
	Escape    key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PrevPage: key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
	NextPage: key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
	Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle sort")),
	Limit:    key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "page size")),
	Favorite: key.NewBinding(key.WithKeys(" ", "f"), key.WithHelp("space/f", "toggle favorite")),
	FavsOnly: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "favorites only")),
	Detail:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Reset:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset search")),
	Retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry fetch")),
	Login:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "login")),
	Logout:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "logout")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back/cancel")),
}
