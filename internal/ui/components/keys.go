package components

import "charm.land/bubbles/v2/key"

// MenuKeys are the bindings a Menu responds to.
type MenuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// DefaultMenuKeys returns arrow/vim navigation with enter to select.
func DefaultMenuKeys() MenuKeys {
	return MenuKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", "select"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k MenuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select}
}

// FullHelp implements help.KeyMap.
func (k MenuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
