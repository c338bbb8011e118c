package game

import (
	"fmt"
	"time"
)

// Input supplies one panel sample per call. An error ends the run; it is
// the only way to stop a runner from outside.
type Input interface {
	Sample() (Lines, error)
}

// Sleeper pauses the loop between samples.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleepFunc adapts a function to Sleeper.
type SleepFunc func(time.Duration)

// Sleep calls f(d).
func (f SleepFunc) Sleep(d time.Duration) { f(d) }

// WallClock sleeps for real.
var WallClock Sleeper = SleepFunc(time.Sleep)

// Runner drives a session with a single polling loop: sample, apply,
// render, delay.
type Runner struct {
	session  *Session
	input    Input
	renderer *Renderer
	sleeper  Sleeper

	// OnTick, when set, is called after every applied sample, once the
	// display is up to date, with the decoded event and whether the
	// session changed.
	OnTick func(ev Event, changed bool)
}

// NewRunner wires a session to its input, renderer and sleeper.
func NewRunner(s *Session, in Input, r *Renderer, sl Sleeper) *Runner {
	if sl == nil {
		sl = WallClock
	}
	return &Runner{
		session:  s,
		input:    in,
		renderer: r,
		sleeper:  sl,
	}
}

// Run plays the session to the end and returns its outcome.
//
// While waiting for the start confirm the panel is polled every
// StartPollInterval. After that each tick samples all lines at once,
// applies at most one event, re-renders on change and then waits
// TickInterval.
func (r *Runner) Run() (Outcome, error) {
	cfg := r.session.Config()
	r.renderer.Render(r.session)

	for r.session.State() == StateAwaitingStart {
		r.sleeper.Sleep(cfg.StartPollInterval)
		lines, err := r.input.Sample()
		if err != nil {
			return r.session.Outcome(), fmt.Errorf("wait for start: %w", err)
		}
		if !lines.Confirm {
			continue
		}
		changed, err := r.session.Apply(Confirm())
		if err != nil {
			return r.session.Outcome(), err
		}
		r.renderer.Render(r.session)
		r.tick(Confirm(), changed)
	}

	for !r.session.Done() {
		lines, err := r.input.Sample()
		if err != nil {
			return r.session.Outcome(), fmt.Errorf("sample input: %w", err)
		}
		ev, changed, err := r.session.Handle(lines)
		if err != nil {
			return r.session.Outcome(), err
		}
		if changed {
			r.renderer.Render(r.session)
		}
		r.tick(ev, changed)
		if r.session.Done() {
			break
		}
		r.sleeper.Sleep(cfg.TickInterval)
	}

	return r.session.Outcome(), nil
}

func (r *Runner) tick(ev Event, changed bool) {
	if r.OnTick != nil {
		r.OnTick(ev, changed)
	}
}
