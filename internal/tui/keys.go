package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	switchMode key.Binding
	submit     key.Binding
	logout     key.Binding
	newTweet   key.Binding
	refresh    key.Binding
	search     key.Binding
	edit       key.Binding
	delete     key.Binding
	copy       key.Binding
	theme      key.Binding
	buildInfo  key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q")),
	switchMode: key.NewBinding(key.WithKeys("ctrl+t")),
	submit:     key.NewBinding(key.WithKeys("ctrl+s")),
	logout:     key.NewBinding(key.WithKeys("l")),
	newTweet:   key.NewBinding(key.WithKeys("n")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	search:     key.NewBinding(key.WithKeys("/")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	theme:      key.NewBinding(key.WithKeys("t")),
	buildInfo:  key.NewBinding(key.WithKeys("v")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
}
