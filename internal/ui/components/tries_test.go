package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestTriesMeterShowsRemaining(t *testing.T) {
	view := TriesMeter{Used: 7, Max: 10, Width: 60}.View()
	if !strings.Contains(view, "Tries") || !strings.Contains(view, "3 left") {
		t.Errorf("unexpected view %q", view)
	}
}

func TestTriesMeterClampsUsed(t *testing.T) {
	view := TriesMeter{Used: 12, Max: 10, Width: 60}.View()
	if !strings.Contains(view, "0 left") {
		t.Errorf("expected 0 left, got %q", view)
	}
}

func TestTriesMeterFitsWidth(t *testing.T) {
	for _, width := range []int{20, 30, 60} {
		view := TriesMeter{Used: 4, Max: 10, Width: width}.View()
		if w := lipgloss.Width(view); w > width {
			t.Errorf("width %d: rendered %d columns", width, w)
		}
	}
}
