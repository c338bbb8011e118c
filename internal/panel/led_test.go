package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLEDBarSetPegs(t *testing.T) {
	tests := []struct {
		name           string
		exact, partial int
		want           string
	}{
		{"none", 0, 0, "...."},
		{"exact only", 2, 0, "RR.."},
		{"partial only", 0, 3, "BBB."},
		{"mixed", 1, 2, "RBB."},
		{"solved", 4, 0, "RRRR"},
		{"overflow is dropped", 2, 5, "RRBB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewLEDBar(DefaultLEDs)
			bar.SetPegs(tt.exact, tt.partial)
			assert.Equal(t, tt.want, bar.String())
		})
	}
}

func TestLEDBarClearsBeforeLighting(t *testing.T) {
	bar := NewLEDBar(DefaultLEDs)
	bar.SetPegs(0, 4)
	bar.SetPegs(1, 0)

	assert.Equal(t, []Colour{Red, Off, Off, Off}, bar.Pattern())
	assert.Equal(t, Red, bar.At(0))
	assert.Equal(t, Off, bar.At(9))
	assert.Equal(t, "blue", Blue.String())
}
