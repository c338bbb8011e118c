package rules

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mastermind/internal/config"
	"github.com/abhisek/mastermind/internal/score"
	"github.com/abhisek/mastermind/internal/screen"
	"github.com/abhisek/mastermind/internal/ui/components"
	"github.com/abhisek/mastermind/internal/ui/theme"
)

// RulesScreen explains the game for the active configuration.
type RulesScreen struct {
	cfg config.Config
}

var _ screen.Screen = (*RulesScreen)(nil)

// New creates a RulesScreen describing cfg.
func New(cfg config.Config) *RulesScreen {
	return &RulesScreen{cfg: cfg}
}

func (r *RulesScreen) Init() tea.Cmd {
	return nil
}

func (r *RulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return r, nil
}

func (r *RulesScreen) Title() string {
	return "How to Play"
}

// Text returns the rules as plain lines.
func (r *RulesScreen) Text() []string {
	repeats := "all different"
	if r.cfg.AllowRepeats {
		repeats = "possibly repeated"
	}
	lines := []string{
		fmt.Sprintf("I think of a %d-digit number, digits %s.", r.cfg.Length, repeats),
		fmt.Sprintf("You have %d tries to find it.", r.cfg.MaxTries),
		"",
		"Digit keys turn one digit of your guess up by one (9 wraps to 0).",
		"Enter submits the guess.",
		"",
		"A red light is a right digit in the right place.",
		"A blue light is a right digit in the wrong place.",
		"",
		"← or p shows an older guess, → or n a newer one.",
		"Enter leaves the review and returns to your guess.",
	}
	if r.cfg.Scoring == score.ModeReference {
		lines = append(lines, "",
			"Blue lights count every matching copy in your guess,",
			"so repeated digits can light more than one.")
	}
	return lines
}

func (r *RulesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(strings.Join(r.Text(), "\n"))
	card := components.ArcadeCard(body, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
