package history

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mastermind/internal/game"
	"github.com/abhisek/mastermind/internal/history"
	"github.com/abhisek/mastermind/internal/panel"
	"github.com/abhisek/mastermind/internal/router"
	"github.com/abhisek/mastermind/internal/screen"
	"github.com/abhisek/mastermind/internal/ui/components"
	"github.com/abhisek/mastermind/internal/ui/layout"
	"github.com/abhisek/mastermind/internal/ui/theme"
)

// HistoryScreen lists every guess of the current game with its score.
type HistoryScreen struct {
	entries  []history.Entry
	maxTries int
	length   int
	selected int
	keys     components.MenuKeys
	back     key.Binding
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen over a snapshot of the log. The newest entry
// starts selected.
func New(entries []history.Entry, maxTries, length int) *HistoryScreen {
	return &HistoryScreen{
		entries:  entries,
		maxTries: maxTries,
		length:   length,
		selected: max(len(entries)-1, 0),
		keys:     components.DefaultMenuKeys(),
		back:     key.NewBinding(key.WithKeys("esc", "q", "h")),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

// Selected returns the index of the highlighted entry.
func (s *HistoryScreen) Selected() int {
	return s.selected
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, s.back):
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case key.Matches(kmsg, s.keys.Up):
		if s.selected > 0 {
			s.selected--
		}
	case key.Matches(kmsg, s.keys.Down):
		if s.selected < len(s.entries)-1 {
			s.selected++
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).Italic(true).
			Render("No guesses yet. Press Enter on the board to submit one.")
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d of %d tries used", len(s.entries), s.maxTries)))
	b.WriteString("\n\n")

	leds := panel.NewLEDBar(panel.DefaultLEDs)
	for i, e := range s.entries {
		leds.SetPegs(e.Score.Exact, e.Score.Partial)

		prefix := "  "
		style := theme.Unselected
		if i == s.selected {
			prefix = "▸ "
			style = theme.Selected
		}
		if e.Score.Solved(s.length) {
			style = theme.Won
		}

		line := style.Render(prefix+game.FormatEntry(i, e)) + "  " + components.LEDView(leds.Pattern())
		b.WriteString(line)
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
