package home

import (
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/mastermind/internal/config"
	"github.com/abhisek/mastermind/internal/router"
	"github.com/abhisek/mastermind/internal/screen"
	"github.com/abhisek/mastermind/internal/screens/board"
	"github.com/abhisek/mastermind/internal/screens/rules"
	"github.com/abhisek/mastermind/internal/ui/components"
)

// Menu labels.
const (
	LabelNewGame = "NEW GAME"
	LabelRules   = "HOW TO PLAY"
	LabelExit    = "EXIT GAME"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	cfg           config.Config
	menu          components.Menu
	latestVersion string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Games started from it share rng.
func New(cfg config.Config, rng *rand.Rand, logger zerolog.Logger) *HomeScreen {
	items := []components.MenuItem{
		{Label: LabelNewGame, Action: func() tea.Cmd {
			b := board.New(cfg, rng, logger)
			return func() tea.Msg { return router.PushScreenMsg{Screen: b} }
		}},
		{Label: LabelRules, Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: rules.New(cfg)} }
		}},
		{Label: LabelExit, Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		cfg:  cfg,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// SetLatestVersion shows an update note for version v.
func (h *HomeScreen) SetLatestVersion(v string) {
	h.latestVersion = v
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		variant := MascotIdle
		if h.latestVersion != "" {
			variant = MascotAlert
		}
		sections = append(sections, renderMascotBox(variant, cw))
	}

	sections = append(sections, renderRulesBar(h.cfg, cw, compact))
	sections = append(sections, components.ArcadeMenu(h.menu, buttonWidth, cw))

	if h.latestVersion != "" {
		sections = append(sections, renderUpdateNote(h.latestVersion, cw))
	}

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
