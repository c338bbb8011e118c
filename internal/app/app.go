package app

import (
	"context"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/mastermind/internal/code"
	"github.com/abhisek/mastermind/internal/config"
	"github.com/abhisek/mastermind/internal/router"
	"github.com/abhisek/mastermind/internal/screen"
	"github.com/abhisek/mastermind/internal/screens/board"
	"github.com/abhisek/mastermind/internal/screens/home"
	"github.com/abhisek/mastermind/internal/screens/welcome"
	"github.com/abhisek/mastermind/internal/ui/layout"
)

// updateCheckTimeout bounds the background release lookup.
const updateCheckTimeout = 5 * time.Second

// Options configures the terminal front-end.
type Options struct {
	Config config.Config
	Logger zerolog.Logger

	// SkipIntro opens a board directly instead of the welcome and home
	// screens.
	SkipIntro bool

	// CheckUpdate, when set, runs once in the background and returns the
	// newer release version or "".
	CheckUpdate func(ctx context.Context) (string, error)
}

// updateCheckedMsg carries the result of the background release lookup.
type updateCheckedMsg struct {
	version string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router        *router.Router
	logger        zerolog.Logger
	checkUpdate   func(ctx context.Context) (string, error)
	latestVersion string
	width         int
	height        int
}

// newAppModel builds the screen stack for opts.
func newAppModel(opts Options) AppModel {
	rng := code.NewRand(opts.Config.Seed)
	return AppModel{
		router:      router.New(initialScreen(opts, rng)),
		logger:      opts.Logger,
		checkUpdate: opts.CheckUpdate,
	}
}

func initialScreen(opts Options, rng *rand.Rand) screen.Screen {
	if opts.SkipIntro {
		return board.New(opts.Config, rng, opts.Logger)
	}
	return welcome.New(func() screen.Screen {
		return home.New(opts.Config, rng, opts.Logger)
	})
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.checkUpdate != nil {
		check := m.checkUpdate
		logger := m.logger
		cmds = append(cmds, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), updateCheckTimeout)
			defer cancel()
			v, err := check(ctx)
			if err != nil {
				logger.Debug().Err(err).Msg("update check failed")
				return nil
			}
			return updateCheckedMsg{version: v}
		})
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case updateCheckedMsg:
		m.latestVersion = msg.version
		m.notifyHome()
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	m.notifyHome()
	return m, cmd
}

// notifyHome passes a known newer release to the home screen whenever it
// is on top.
func (m AppModel) notifyHome() {
	if m.latestVersion == "" {
		return
	}
	if h, ok := m.router.Active().(*home.HomeScreen); ok {
		h.SetLatestVersion(m.latestVersion)
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	var status layout.Status
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		if hints := kp.KeyHints(); len(hints) > 0 {
			if m.router.Depth() == 1 {
				hints = withoutKey(hints, "Esc")
			}
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		opts.Logger.Error().Err(err).Msg("program failed")
		return err
	}
	return nil
}

// withoutKey drops the hints bound to key. Esc does nothing on the root
// screen, so its hints are hidden there.
func withoutKey(hints []layout.KeyHint, key string) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(hints))
	for _, h := range hints {
		if h.Key != key {
			out = append(out, h)
		}
	}
	return out
}
