package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Panel hardware
var (
	LCDBackground = lipgloss.Color("#9BBC0F") // backlit green
	LCDInk        = lipgloss.Color("#0F380F")
	LEDRed        = lipgloss.Color("#EF4444")
	LEDBlue       = lipgloss.Color("#3B82F6")
	LEDOff        = lipgloss.Color("#475569")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Won = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Lost = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	LCD = lipgloss.NewStyle().
		Background(LCDBackground).
		Foreground(LCDInk).
		Bold(true).
		Padding(0, 1)

	LCDBezel = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
