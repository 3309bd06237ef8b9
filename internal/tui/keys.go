package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	sessions key.Binding
	stats    key.Binding
	settings key.Binding
	newChat  key.Binding
	attach   key.Binding
	copy     key.Binding
	delete   key.Binding
	clear    key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	sessions: key.NewBinding(key.WithKeys("ctrl+l")),
	stats:    key.NewBinding(key.WithKeys("ctrl+t")),
	settings: key.NewBinding(key.WithKeys("ctrl+o")),
	newChat:  key.NewBinding(key.WithKeys("ctrl+n")),
	attach:   key.NewBinding(key.WithKeys("ctrl+a")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y")),
	delete:   key.NewBinding(key.WithKeys("ctrl+d", "d")),
	clear:    key.NewBinding(key.WithKeys("c")),
}
