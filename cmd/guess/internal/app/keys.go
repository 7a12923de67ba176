package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit key.Binding
	Menu   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Menu, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeys = keyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit guess")),
	Menu:   key.NewBinding(key.WithKeys("ctrl+o", "f10"), key.WithHelp("ctrl+o", "options")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
}
