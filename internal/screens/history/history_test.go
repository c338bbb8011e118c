package history

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mastermind/internal/code"
	"github.com/abhisek/mastermind/internal/history"
	"github.com/abhisek/mastermind/internal/router"
	"github.com/abhisek/mastermind/internal/score"
)

func testEntries() []history.Entry {
	return []history.Entry{
		{Guess: code.MustNew(0, 1, 2, 3), Score: score.Result{Partial: 3}},
		{Guess: code.MustNew(1, 1, 2, 3), Score: score.Result{Exact: 1, Partial: 2}},
		{Guess: code.MustNew(1, 2, 3, 4), Score: score.Result{Exact: 4}},
	}
}

func TestNewestEntryStartsSelected(t *testing.T) {
	s := New(testEntries(), 10, 4)
	if s.Selected() != 2 {
		t.Errorf("expected newest entry selected, got %d", s.Selected())
	}
}

func TestNavigationStopsAtEnds(t *testing.T) {
	s := New(testEntries(), 10, 4)
	up := tea.KeyPressMsg{Code: tea.KeyUp}
	down := tea.KeyPressMsg{Code: tea.KeyDown}

	for i := 0; i < 5; i++ {
		s.Update(up)
	}
	if s.Selected() != 0 {
		t.Errorf("expected 0, got %d", s.Selected())
	}
	for i := 0; i < 5; i++ {
		s.Update(down)
	}
	if s.Selected() != 2 {
		t.Errorf("expected 2, got %d", s.Selected())
	}
}

func TestBackPops(t *testing.T) {
	s := New(testEntries(), 10, 4)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestViewListsEntries(t *testing.T) {
	view := New(testEntries(), 10, 4).View(80, 20)
	for _, want := range []string{"3 of 10 tries used", "0123  0A3B", "1123  1A2B", "1234  4A0B"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEmptyHistory(t *testing.T) {
	s := New(nil, 10, 4)
	if s.Selected() != 0 {
		t.Errorf("expected 0, got %d", s.Selected())
	}
	if !strings.Contains(s.View(80, 20), "No guesses yet") {
		t.Error("expected the empty message")
	}
}
