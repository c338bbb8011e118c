package board

import (
	"charm.land/bubbles/v2/key"
)

type keyMap struct {
	Digit    key.Binding
	Prev     key.Binding
	Next     key.Binding
	Confirm  key.Binding
	History  key.Binding
	NewGame  key.Binding
	Help     key.Binding
	terminal bool
}

func newKeyMap() keyMap {
	return keyMap{
		Digit: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-9,0", "press digit"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("←/p", "older guess"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "n"),
			key.WithHelp("→/n", "newer guess"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", "confirm"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter", "new game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	if k.terminal {
		return []key.Binding{k.NewGame, k.History}
	}
	return []key.Binding{k.Digit, k.Confirm, k.Prev, k.Next, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	if k.terminal {
		return [][]key.Binding{k.ShortHelp()}
	}
	return [][]key.Binding{
		{k.Digit, k.Confirm},
		{k.Prev, k.Next},
		{k.History, k.Help},
	}
}

// digitButton maps a digit key to its zero-based button. "0" is the tenth
// button.
func digitButton(s string) (int, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	if s[0] == '0' {
		return 9, true
	}
	return int(s[0] - '1'), true
}
