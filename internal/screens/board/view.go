package board

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mastermind/internal/game"
	"github.com/abhisek/mastermind/internal/ui/components"
	"github.com/abhisek/mastermind/internal/ui/theme"
)

func (b *BoardScreen) View(width, height int) string {
	if b.err != nil {
		return renderError(width, height, b.err)
	}

	cw := components.ContentWidth(width)
	var sections []string

	sections = append(sections, components.LCDView(b.lcd.Lines()))
	sections = append(sections, components.LEDView(b.leds.Pattern()))
	sections = append(sections, components.KeypadView(b.latch.Peek()))

	tries := components.TriesMeter{
		Used:  b.session.Turns(),
		Max:   b.session.MaxTries(),
		Width: cw - 4,
	}
	sections = append(sections, tries.View())

	if line := b.statusLine(); line != "" {
		sections = append(sections, line)
	}

	b.help.SetWidth(cw)
	sections = append(sections, b.help.View(b.keys))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return components.CabinetFrame(content, width, height)
}

// statusLine describes what the last tick did, or the outcome once the
// game is over.
func (b *BoardScreen) statusLine() string {
	switch b.session.State() {
	case game.StateWon:
		return theme.Won.Render(fmt.Sprintf("Solved in %d!", b.session.Turns()))
	case game.StateLost:
		return theme.Lost.Render("Out of tries. The secret was " + b.session.Secret().String())
	case game.StateReviewing:
		return theme.Hint.Render(fmt.Sprintf("Reviewing guess %d of %d, enter to resume",
			b.session.History().Cursor()+1, b.session.History().Len()))
	}
	switch b.last.Kind {
	case game.EventIncrement:
		return theme.Hint.Render(fmt.Sprintf("digit %d turned", b.last.Digit+1))
	case game.EventConfirm:
		if res, ok := b.session.LastScore(); ok {
			return theme.Hint.Render("last score " + res.String())
		}
	}
	return ""
}

func renderError(width, height int, err error) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("Cannot play: %v\n\nPress Esc to go back.", err))
}
