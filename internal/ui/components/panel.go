package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mastermind/internal/game"
	"github.com/abhisek/mastermind/internal/panel"
	"github.com/abhisek/mastermind/internal/ui/theme"
)

// LCDView draws the display rows inside a bezel.
func LCDView(lines []string) string {
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = theme.LCD.Render(l)
	}
	return theme.LCDBezel.Render(strings.Join(rows, "\n"))
}

// LEDView draws the indicator bar, one lamp per position.
func LEDView(pattern []panel.Colour) string {
	lamps := make([]string, len(pattern))
	for i, c := range pattern {
		lamps[i] = lipgloss.NewStyle().Foreground(ledColor(c)).Render("●")
	}
	return strings.Join(lamps, " ")
}

func ledColor(c panel.Colour) color.Color {
	switch c {
	case panel.Red:
		return theme.LEDRed
	case panel.Blue:
		return theme.LEDBlue
	default:
		return theme.LEDOff
	}
}

// KeypadView draws the digit buttons and the confirm button. Latched
// buttons are highlighted until the next tick samples them.
func KeypadView(held game.Lines) string {
	up := lipgloss.NewStyle().
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	down := up.
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		BorderForeground(theme.ArcadeYellow).
		Bold(true)

	keys := make([]string, 0, len(held.Digits)+1)
	for i, on := range held.Digits {
		style := up
		if on {
			style = down
		}
		keys = append(keys, style.Render(fmt.Sprintf("%d", i+1)))
	}
	ok := up
	if held.Confirm {
		ok = down
	}
	keys = append(keys, ok.Render("OK"))
	return lipgloss.JoinHorizontal(lipgloss.Center, keys...)
}
