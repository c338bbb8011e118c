package board

import (
	"math/rand/v2"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/mastermind/internal/config"
	"github.com/abhisek/mastermind/internal/game"
	"github.com/abhisek/mastermind/internal/panel"
	"github.com/abhisek/mastermind/internal/router"
	"github.com/abhisek/mastermind/internal/screen"
	"github.com/abhisek/mastermind/internal/screens/history"
	"github.com/abhisek/mastermind/internal/ui/layout"
)

// BoardScreen runs one game on the virtual panel. Key presses latch panel
// lines; a tick samples the latch and feeds the session, exactly like the
// hardware loop.
type BoardScreen struct {
	cfg    config.Config
	rng    *rand.Rand
	logger zerolog.Logger

	session  *game.Session
	lcd      *panel.LCD
	leds     *panel.LEDBar
	latch    *panel.Latch
	renderer *game.Renderer

	keys keyMap
	help help.Model
	gen  int
	last game.Event
	err  error
}

var _ screen.Screen = (*BoardScreen)(nil)
var _ screen.KeyHintProvider = (*BoardScreen)(nil)
var _ screen.StatusProvider = (*BoardScreen)(nil)
var _ screen.Resumer = (*BoardScreen)(nil)

// New creates a board with a fresh session. rng is shared across games so
// a seeded run replays the same sequence of secrets.
func New(cfg config.Config, rng *rand.Rand, logger zerolog.Logger) *BoardScreen {
	s, err := game.NewSession(cfg, rng, logger)
	return newBoard(cfg, rng, logger, s, err)
}

// NewWithSession creates a board around an existing session.
func NewWithSession(s *game.Session, rng *rand.Rand, logger zerolog.Logger) *BoardScreen {
	return newBoard(s.Config(), rng, logger, s, nil)
}

func newBoard(cfg config.Config, rng *rand.Rand, logger zerolog.Logger, s *game.Session, err error) *BoardScreen {
	b := &BoardScreen{
		cfg:     cfg,
		rng:     rng,
		logger:  logger,
		session: s,
		keys:    newKeyMap(),
		help:    help.New(),
		err:     err,
	}
	if err != nil {
		logger.Error().Err(err).Msg("cannot start game")
		return b
	}
	b.lcd = panel.NewLCD(cfg.DisplayRows, cfg.DisplayWidth(), logger)
	b.leds = panel.NewLEDBar(panel.DefaultLEDs)
	b.latch = panel.NewLatch(cfg.DigitButtons())
	b.renderer = game.NewRenderer(b.lcd, b.leds, b.lcd.Cols())
	b.renderer.Render(s)
	return b
}

func (b *BoardScreen) Init() tea.Cmd {
	if b.err != nil {
		return nil
	}
	return b.schedule()
}

// Resume restarts the tick chain after a screen above the board is popped.
// Ticks scheduled before the push are dropped.
func (b *BoardScreen) Resume() tea.Cmd {
	if b.err != nil {
		return nil
	}
	b.gen++
	return b.schedule()
}

func (b *BoardScreen) Title() string {
	return "Board"
}

// Session returns the game being played, or nil if it failed to start.
func (b *BoardScreen) Session() *game.Session {
	return b.session
}

// Status implements screen.StatusProvider.
func (b *BoardScreen) Status() layout.Status {
	if b.session == nil {
		return layout.Status{}
	}
	return layout.Status{
		Turn:     b.session.Turns(),
		MaxTries: b.session.MaxTries(),
		Length:   b.session.Length(),
		Scoring:  string(b.cfg.Scoring),
	}
}

func (b *BoardScreen) KeyHints() []layout.KeyHint {
	if b.session == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	switch b.session.State() {
	case game.StateAwaitingStart:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case game.StateWon, game.StateLost:
		return []layout.KeyHint{
			{Key: "Enter", Description: "New game"},
			{Key: "H", Description: "History"},
			{Key: "Esc", Description: "Menu"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-" + lastDigitKey(b.latch.Buttons()), Description: "Digit"},
		{Key: "Enter", Description: "Submit"},
		{Key: "←→", Description: "Review"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (b *BoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if b.err != nil {
		return b, nil
	}

	switch msg := msg.(type) {
	case tickMsg:
		return b, b.handleTick(msg)

	case tea.KeyPressMsg:
		return b.handleKey(msg)
	}
	return b, nil
}

// schedule arms the next tick. While waiting for the start confirm the
// panel is polled faster.
func (b *BoardScreen) schedule() tea.Cmd {
	if b.session.Done() {
		return nil
	}
	interval := b.cfg.TickInterval
	if b.session.State() == game.StateAwaitingStart {
		interval = b.cfg.StartPollInterval
	}
	gen := b.gen
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (b *BoardScreen) handleTick(msg tickMsg) tea.Cmd {
	if msg.gen != b.gen {
		return nil
	}

	lines, _ := b.latch.Sample()
	var (
		ev      game.Event
		changed bool
		err     error
	)
	if b.session.State() == game.StateAwaitingStart {
		if lines.Confirm {
			ev = game.Confirm()
			changed, err = b.session.Apply(ev)
		}
	} else {
		ev, changed, err = b.session.Handle(lines)
	}
	if err != nil {
		b.err = err
		b.logger.Error().Err(err).Str("session", b.session.ID()).Msg("session failed")
		return nil
	}

	b.last = ev
	if changed {
		b.renderer.Render(b.session)
	}
	b.keys.terminal = b.session.Done()
	return b.schedule()
}

func (b *BoardScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if b.session.Done() {
		switch {
		case key.Matches(msg, b.keys.NewGame):
			next := New(b.cfg, b.rng, b.logger)
			return b, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case key.Matches(msg, b.keys.History):
			return b, b.openHistory()
		}
		return b, nil
	}

	switch {
	case key.Matches(msg, b.keys.Digit):
		if i, ok := digitButton(msg.String()); ok {
			b.latch.Press(i)
		}
	case key.Matches(msg, b.keys.Prev):
		b.latch.Set(game.ReviewPrevLines(b.latch.Buttons()))
	case key.Matches(msg, b.keys.Next):
		b.latch.Set(game.ReviewNextLines(b.latch.Buttons()))
	case key.Matches(msg, b.keys.Confirm):
		b.latch.Confirm()
	case key.Matches(msg, b.keys.History):
		return b, b.openHistory()
	case key.Matches(msg, b.keys.Help):
		b.help.ShowAll = !b.help.ShowAll
	}
	return b, nil
}

func (b *BoardScreen) openHistory() tea.Cmd {
	h := history.New(b.session.History().Entries(), b.session.MaxTries(), b.session.Length())
	return func() tea.Msg { return router.PushScreenMsg{Screen: h} }
}

func lastDigitKey(buttons int) string {
	if buttons >= 10 {
		return "0"
	}
	return string(rune('0' + buttons))
}
