package tui

import "github.com/charmbracelet/bubbles/key"

type accountsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Expand  key.Binding
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Logout  key.Binding
	Palette key.Binding
}

func newAccountsKeyMap() accountsKeyMap {
	return accountsKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Expand:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "history")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add account")),
		Edit:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "update month")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Logout:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "commands")),
	}
}
