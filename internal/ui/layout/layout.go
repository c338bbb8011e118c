package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mastermind/internal/ui/theme"
)

// Smallest terminal the board fits in.
const (
	MinWidth  = 64
	MinHeight = 24
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Status is the game summary shown on the right of the header. The zero
// value shows nothing.
type Status struct {
	Turn     int
	MaxTries int
	Length   int
	Scoring  string
}

// Empty reports whether there is no game to summarise.
func (s Status) Empty() bool {
	return s.MaxTries == 0
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the player to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("The cabinet needs %d x %d.\n\nThis terminal is %d x %d.",
			MinWidth, MinHeight, width, height))
}

// RenderHeader renders the application name, the screen title centred
// and the game status on the right.
func RenderHeader(title string, status Status, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Mastermind")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	var right string
	if !status.Empty() {
		right = lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("● %d/%d", status.Turn, status.MaxTries)) +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("   %d digits · %s", status.Length, status.Scoring))
	}
	return bar(width).Render(spread(width-4, left, center, right))
}

// RenderFooter renders the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// spread places center in the middle of width columns with left and right
// at the edges, keeping at least one space between neighbours.
func spread(width int, left, center, right string) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	leftGap := max((width-cw)/2-lw, 1)
	rightGap := max(width-lw-leftGap-cw-rw, 1)
	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}
