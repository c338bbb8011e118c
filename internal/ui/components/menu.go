package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mastermind/internal/ui/theme"
)

// MenuItem is a single entry in a Menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions with one selected entry.
type Menu struct {
	Items    []MenuItem
	Selected int
	Keys     MenuKeys
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
		Keys:     DefaultMenuKeys(),
	}
}

// Update moves the selection or runs the selected action.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.Keys.Up):
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, m.Keys.Down):
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, m.Keys.Select):
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// Labels returns the item labels in order.
func (m Menu) Labels() []string {
	out := make([]string, len(m.Items))
	for i, item := range m.Items {
		out[i] = item.Label
	}
	return out
}

// View renders the menu as plain lines.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+item.Label) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render("  ▸ "+item.Label) + "\n"
		default:
			s += theme.Unselected.Render("    "+item.Label) + "\n"
		}
	}
	return s
}
