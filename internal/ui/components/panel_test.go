package components

import (
	"strings"
	"testing"

	"github.com/abhisek/mastermind/internal/game"
	"github.com/abhisek/mastermind/internal/panel"
)

func TestLCDViewKeepsText(t *testing.T) {
	view := LCDView([]string{"Secret: 1234    ", "Well done! You w"})
	for _, want := range []string{"Secret: 1234", "Well done! You w"} {
		if !strings.Contains(view, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestLEDViewOneLampPerPosition(t *testing.T) {
	view := LEDView([]panel.Colour{panel.Red, panel.Blue, panel.Off, panel.Off})
	if n := strings.Count(view, "●"); n != 4 {
		t.Errorf("expected 4 lamps, got %d", n)
	}
}

func TestKeypadViewLabels(t *testing.T) {
	view := KeypadView(game.DigitLines(5, 2))
	for _, want := range []string{"1", "5", "OK"} {
		if !strings.Contains(view, want) {
			t.Errorf("missing %q", want)
		}
	}
}
