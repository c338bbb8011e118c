package panel

import "strings"

// DefaultLEDs is the number of indicator positions on the reference panel.
const DefaultLEDs = 4

// Colour is the state of one dual-colour LED.
type Colour int

const (
	Off Colour = iota
	Red
	Blue
)

func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "off"
	}
}

// Rune is the single-character form used by console output.
func (c Colour) Rune() rune {
	switch c {
	case Red:
		return 'R'
	case Blue:
		return 'B'
	default:
		return '.'
	}
}

// LEDBar is a row of dual-colour LEDs. Red marks an exact match and blue a
// partial one.
type LEDBar struct {
	leds []Colour
}

// NewLEDBar returns a bar of n LEDs, all off.
func NewLEDBar(n int) *LEDBar {
	return &LEDBar{leds: make([]Colour, n)}
}

// Len returns the number of positions.
func (b *LEDBar) Len() int { return len(b.leds) }

// SetPegs turns every LED off, then lights exact red positions from the
// left followed by partial blue ones. Counts beyond the bar are dropped.
func (b *LEDBar) SetPegs(exact, partial int) {
	for i := range b.leds {
		b.leds[i] = Off
	}
	i := 0
	for ; i < len(b.leds) && i < exact; i++ {
		b.leds[i] = Red
	}
	for n := 0; i < len(b.leds) && n < partial; n++ {
		b.leds[i] = Blue
		i++
	}
}

// At returns the colour at position i, or Off out of range.
func (b *LEDBar) At(i int) Colour {
	if i < 0 || i >= len(b.leds) {
		return Off
	}
	return b.leds[i]
}

// Pattern returns a copy of the LED colours.
func (b *LEDBar) Pattern() []Colour {
	out := make([]Colour, len(b.leds))
	copy(out, b.leds)
	return out
}

// String renders the bar as e.g. "RRB.".
func (b *LEDBar) String() string {
	var sb strings.Builder
	for _, c := range b.leds {
		sb.WriteRune(c.Rune())
	}
	return sb.String()
}
