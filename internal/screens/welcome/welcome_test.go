package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mastermind/internal/panel"
	"github.com/abhisek/mastermind/internal/router"
	"github.com/abhisek/mastermind/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	factory := func() screen.Screen {
		calls++
		return &stubScreen{}
	}
	return New(factory), &calls
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func showsTagline(view string) bool {
	return strings.Contains(view, "crack the secret code")
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcome()

	if showsTagline(w.View(100, 30)) {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 5)
	if w.elapsed != phase1End {
		t.Errorf("expected elapsed %v, got %v", phase1End, w.elapsed)
	}

	sendTicks(w, 10)
	if w.elapsed != phase2End {
		t.Errorf("expected elapsed %v, got %v", phase2End, w.elapsed)
	}
	if !showsTagline(w.View(100, 30)) {
		t.Error("tagline should be visible after the banner phase starts")
	}
}

func TestKeypressSkipsAnimation(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress during animation should trigger transition")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replacement screen should not be nil")
	}
	if *calls != 1 {
		t.Errorf("factory should be called once, got %d", *calls)
	}
}

func TestNoAutoTransition(t *testing.T) {
	w, calls := newTestWelcome()

	sendTicks(w, 60)
	if *calls != 0 {
		t.Errorf("factory should not be called without keypress, got %d", *calls)
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, calls := newTestWelcome()

	w.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *calls != 1 {
		t.Errorf("factory should be called exactly once, got %d", *calls)
	}
}

func TestChaseLightsOneRedLamp(t *testing.T) {
	for tick := 0; tick < 8; tick++ {
		leds := chase(tick)
		red := 0
		for i, c := range leds {
			if c == panel.Red {
				red++
				if i != tick%panel.DefaultLEDs {
					t.Errorf("tick %d: red lamp at %d", tick, i)
				}
			}
		}
		if red != 1 {
			t.Errorf("tick %d: expected one red lamp, got %d", tick, red)
		}
	}
}

func TestCompactBannerOnNarrowTerminal(t *testing.T) {
	if !strings.Contains(RenderBanner(60), bannerCompact) {
		t.Error("expected compact banner below the minimum width")
	}
	if strings.Contains(RenderBanner(120), bannerCompact) {
		t.Error("expected block banner on wide terminals")
	}
}
