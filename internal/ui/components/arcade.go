package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mastermind/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every section inside a
// cabinet frame.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// CabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded card cw columns wide.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ArcadeButton renders one menu button. Disabled buttons are dimmed and
// never shown as selected.
func ArcadeButton(label string, selected, disabled bool, width int) string {
	if disabled {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Render(label)
	}
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.ArcadeYellow).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}

// ArcadeMenu stacks the menu's items as buttons, centred in cw columns.
func ArcadeMenu(m Menu, buttonWidth, cw int) string {
	buttons := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		buttons = append(buttons, ArcadeButton(item.Label, i == m.Selected, item.Disabled, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, buttons...))
}
