package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mastermind/internal/panel"
	"github.com/abhisek/mastermind/internal/router"
	"github.com/abhisek/mastermind/internal/screen"
	"github.com/abhisek/mastermind/internal/ui/components"
	"github.com/abhisek/mastermind/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

const boardArt = `  ╭─────────────────╮
  │  ○  ○  ○  ○  ·· │
  │  ●  ○  ●  ○  •◦ │
  │  ●  ●  ○  ●  ••◦│
  │  ●  ●  ●  ●  •••│
  ├─────────────────┤
  │  ?  ?  ?  ?     │
  ╰─────────────────╯`

type tickMsg time.Time

// WelcomeScreen plays a short splash animation and hands over to the home
// screen on the first key press.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Render(boardArt))

	// Phase 2+: the indicator lamps chase each other under the board
	if w.elapsed >= phase1End {
		sections = append(sections, "", components.LEDView(chase(w.tickCount)))
	}

	// Phase 3+: banner, tagline and hint
	if w.elapsed >= phase2End {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Can you crack the secret code?")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// chase lights one red lamp walking along the bar with blue lamps behind.
func chase(tick int) []panel.Colour {
	leds := make([]panel.Colour, panel.DefaultLEDs)
	head := tick % panel.DefaultLEDs
	for i := range leds {
		switch {
		case i == head:
			leds[i] = panel.Red
		case i < head:
			leds[i] = panel.Blue
		}
	}
	return leds
}
