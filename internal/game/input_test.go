package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	d := NewDecoder(4, 4)

	tests := []struct {
		name  string
		lines Lines
		want  Event
	}{
		{"idle", DigitLines(4), Event{Kind: EventNone}},
		{"button 1", DigitLines(4, 0), Increment(0)},
		{"button 4", DigitLines(4, 3), Increment(3)},
		{"two buttons", DigitLines(4, 1, 2), Event{Kind: EventNone}},
		{"review prev chord", DigitLines(4, 0, 1, 2), ReviewPrev()},
		{"review next chord", DigitLines(4, 0, 1, 3), ReviewNext()},
		{"all four", DigitLines(4, 0, 1, 2, 3), Event{Kind: EventNone}},
		{"other triple", DigitLines(4, 1, 2, 3), Event{Kind: EventNone}},
		{"confirm", ConfirmLines(4), Confirm()},
		{"confirm wins over digit", Lines{Digits: []bool{true, false, false, false}, Confirm: true}, Confirm()},
		{"short sample", Lines{Digits: []bool{false, true}}, Increment(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Decode(tt.lines))
		})
	}
}

func TestDecodeShortCode(t *testing.T) {
	// A two-digit code still has four buttons so the chords work.
	d := NewDecoder(2, 4)

	assert.Equal(t, Increment(1), d.Decode(DigitLines(4, 1)))
	assert.Equal(t, Event{Kind: EventNone}, d.Decode(DigitLines(4, 2)))
	assert.Equal(t, ReviewPrev(), d.Decode(ReviewPrevLines(4)))
	assert.Equal(t, ReviewNext(), d.Decode(ReviewNextLines(4)))
}

func TestDecodeIgnoresExtraLines(t *testing.T) {
	d := NewDecoder(4, 4)
	l := Lines{Digits: []bool{false, false, false, false, true}}
	assert.Equal(t, Event{Kind: EventNone}, d.Decode(l))
}

func TestLinesIdle(t *testing.T) {
	assert.True(t, DigitLines(4).Idle())
	assert.False(t, DigitLines(4, 2).Idle())
	assert.False(t, ConfirmLines(4).Idle())
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "review-prev", EventReviewPrev.String())
	assert.Equal(t, "confirm", EventConfirm.String())
}
