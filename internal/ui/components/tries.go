package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mastermind/internal/ui/theme"
)

// TriesMeter shows one cell per allowed guess, used cells first.
type TriesMeter struct {
	Used  int
	Max   int
	Width int
}

// cellWidth is the width of a single cell including its gap.
const cellWidth = 3

// View renders "Tries" followed by the cells and the remaining count.
// When the cells do not fit in Width they collapse into a proportional
// bar.
func (m TriesMeter) View() string {
	used := min(max(m.Used, 0), m.Max)
	label := lipgloss.NewStyle().Foreground(theme.Text).Render("Tries") + "  "
	left := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d left", m.Max-used))

	room := m.Width - lipgloss.Width(label) - lipgloss.Width(left)
	if m.Max <= 0 || room <= 0 {
		return label + left
	}

	var bar string
	if m.Max*cellWidth <= room {
		cells := make([]string, 0, m.Max)
		for i := range m.Max {
			style := theme.ProgressEmpty
			if i < used {
				style = theme.ProgressFilled
			}
			cells = append(cells, style.Render("  "))
		}
		bar = strings.Join(cells, " ")
	} else {
		filled := room * used / m.Max
		bar = theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
			theme.ProgressEmpty.Render(strings.Repeat(" ", room-filled))
	}
	return label + bar + left
}
