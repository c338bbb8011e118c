package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mastermind/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle  MascotVariant = iota // thinking of a secret
	MascotAlert                      // a newer release is available
)

const mascotIdle = `┌─────────┐
│  ◉   ◉  │
│    ▽    │
│ ? ? ? ? │
└─────────┘`

const mascotAlert = `┌─────────┐
│  ◉   ◉  │ !
│    ○    │
│ ? ? ? ? │
└─────────┘`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary
	if variant == MascotAlert {
		art = mascotAlert
		fg = theme.Accent
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
