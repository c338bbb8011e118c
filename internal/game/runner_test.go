package game

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mastermind/internal/config"
)

// scriptInput replays samples and then reports io.EOF.
type scriptInput struct {
	samples []Lines
	reads   int
}

func (s *scriptInput) Sample() (Lines, error) {
	if s.reads >= len(s.samples) {
		return Lines{}, io.EOF
	}
	l := s.samples[s.reads]
	s.reads++
	return l, nil
}

type sleepRecorder struct {
	sleeps []time.Duration
}

func (r *sleepRecorder) Sleep(d time.Duration) {
	r.sleeps = append(r.sleeps, d)
}

func TestRunnerWinsGame(t *testing.T) {
	s := newTestSession(t, "1234")
	in := &scriptInput{samples: []Lines{
		DigitLines(4),    // still on the welcome screen
		DigitLines(4, 0), // ignored before start
		ConfirmLines(4),  // start
		ConfirmLines(4),  // submit 0123
		DigitLines(4, 0),
		DigitLines(4, 1),
		DigitLines(4, 2),
		DigitLines(4, 3),
		ReviewPrevLines(4),
		ConfirmLines(4), // back to guessing
		ConfirmLines(4), // submit 1234
	}}
	sl := &sleepRecorder{}
	r, d, _ := newTestRenderer()

	var events []EventKind
	runner := NewRunner(s, in, r, sl)
	runner.OnTick = func(ev Event, changed bool) {
		events = append(events, ev.Kind)
	}

	outcome, err := runner.Run()
	require.NoError(t, err)
	assert.Equal(t, OutcomeWon, outcome)
	assert.Equal(t, 2, s.Turns())
	assert.Equal(t, 11, in.reads)
	assert.Equal(t, "Well done! You w", string(d.rows[1]))

	// Three start polls, then one tick delay between the eight play
	// samples but none after the winning one.
	require.Len(t, sl.sleeps, 3+7)
	for _, d := range sl.sleeps[:3] {
		assert.Equal(t, config.DefaultStartPollInterval, d)
	}
	for _, d := range sl.sleeps[3:] {
		assert.Equal(t, config.DefaultTickInterval, d)
	}

	assert.Equal(t, EventConfirm, events[0])
	assert.Equal(t, EventReviewPrev, events[6])
}

func TestRunnerStopsOnInputError(t *testing.T) {
	s := newTestSession(t, "1234")
	in := &scriptInput{samples: []Lines{ConfirmLines(4), ConfirmLines(4)}}
	r, _, _ := newTestRenderer()

	outcome, err := NewRunner(s, in, r, &sleepRecorder{}).Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.EOF))
	assert.Equal(t, OutcomePending, outcome)
	assert.Equal(t, 1, s.Turns())
}

func TestRunnerStopsWhileWaitingForStart(t *testing.T) {
	s := newTestSession(t, "1234")
	r, d, _ := newTestRenderer()

	_, err := NewRunner(s, &scriptInput{}, r, &sleepRecorder{}).Run()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, StateAwaitingStart, s.State())
	assert.Contains(t, d.Row(0), "Welcome")
}

func TestRunnerLosesGame(t *testing.T) {
	s := newTestSession(t, "1234")
	samples := []Lines{ConfirmLines(4)}
	for i := 0; i < 10; i++ {
		samples = append(samples, ConfirmLines(4))
	}
	in := &scriptInput{samples: samples}
	r, d, _ := newTestRenderer()

	outcome, err := NewRunner(s, in, r, &sleepRecorder{}).Run()
	require.NoError(t, err)
	assert.Equal(t, OutcomeLost, outcome)
	assert.Equal(t, "You lose! Try ag", string(d.rows[1]))
}
