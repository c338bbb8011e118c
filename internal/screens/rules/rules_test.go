package rules

import (
	"strings"
	"testing"

	"github.com/abhisek/mastermind/internal/config"
	"github.com/abhisek/mastermind/internal/score"
)

func TestTextFollowsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Length = 5
	cfg.MaxTries = 8
	text := strings.Join(New(cfg).Text(), "\n")

	if !strings.Contains(text, "5-digit number, digits all different") {
		t.Errorf("missing length line in %q", text)
	}
	if !strings.Contains(text, "8 tries") {
		t.Errorf("missing tries line in %q", text)
	}
	if !strings.Contains(text, "every matching copy") {
		t.Error("reference scoring should explain repeated matches")
	}
}

func TestClassicScoringOmitsNote(t *testing.T) {
	cfg := config.Default()
	cfg.AllowRepeats = true
	cfg.Scoring = score.ModeClassic
	text := strings.Join(New(cfg).Text(), "\n")

	if strings.Contains(text, "every matching copy") {
		t.Error("classic scoring should not carry the reference note")
	}
	if !strings.Contains(text, "possibly repeated") {
		t.Error("expected the repeats wording")
	}
}
