// Package game implements the session state machine, input decoding,
// rendering onto display sinks, and the polling loop that ties them
// together.
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/mastermind/internal/code"
	"github.com/abhisek/mastermind/internal/config"
	"github.com/abhisek/mastermind/internal/history"
	"github.com/abhisek/mastermind/internal/score"
)

// ErrInvalidSecret is returned when an injected secret does not fit the
// configuration.
var ErrInvalidSecret = errors.New("secret does not match configuration")

// HistoryView is the read-only side of the session's history log.
type HistoryView interface {
	Len() int
	Cap() int
	Empty() bool
	Get(i int) (history.Entry, error)
	Last() (history.Entry, error)
	Cursor() int
	Current() (history.Entry, error)
	Entries() []history.Entry
}

// Session owns one game: the secret, the guess being edited, the history
// of submissions and the turn counter. It is not safe for concurrent use;
// a single loop drives it.
type Session struct {
	id      string
	cfg     config.Config
	decoder Decoder
	secret  code.Code
	guess   code.Code
	log     *history.Log
	turns   int
	state   State
	outcome Outcome
	logger  zerolog.Logger
}

// NewSession validates cfg and draws a secret from rng.
func NewSession(cfg config.Config, rng *rand.Rand, logger zerolog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	secret, err := code.Generate(rng, cfg.Length, cfg.AllowRepeats)
	if err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}
	return newSession(cfg, secret, logger)
}

// NewSessionWithSecret validates cfg and uses a known secret.
func NewSessionWithSecret(cfg config.Config, secret code.Code, logger zerolog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if secret.Len() != cfg.Length {
		return nil, fmt.Errorf("%w: %d digits, want %d", ErrInvalidSecret, secret.Len(), cfg.Length)
	}
	if !cfg.AllowRepeats && !secret.Distinct() {
		return nil, fmt.Errorf("%w: repeated digits in %s", ErrInvalidSecret, secret)
	}
	return newSession(cfg, secret.Clone(), logger)
}

func newSession(cfg config.Config, secret code.Code, logger zerolog.Logger) (*Session, error) {
	guess, err := code.Starting(cfg.Length)
	if err != nil {
		return nil, err
	}
	id := uuid.New().String()
	s := &Session{
		id:      id,
		cfg:     cfg,
		decoder: NewDecoder(cfg.Length, cfg.DigitButtons()),
		secret:  secret,
		guess:   guess,
		log:     history.New(cfg.MaxTries),
		state:   StateAwaitingStart,
		logger:  logger.With().Str("session", id).Logger(),
	}
	s.logger.Info().
		Int("length", cfg.Length).
		Bool("repeats", cfg.AllowRepeats).
		Int("max_tries", cfg.MaxTries).
		Str("scoring", string(cfg.Scoring)).
		Msg("session created")
	return s, nil
}

// Handle decodes one input sample and applies the resulting event.
func (s *Session) Handle(l Lines) (Event, bool, error) {
	ev := s.decoder.Decode(l)
	changed, err := s.Apply(ev)
	return ev, changed, err
}

// Apply performs at most one transition for ev and reports whether the
// session changed. Events that make no sense in the current state are
// ignored.
func (s *Session) Apply(ev Event) (bool, error) {
	if ev.Kind == EventNone {
		return false, nil
	}

	before := s.state
	var changed bool
	var err error
	switch s.state {
	case StateAwaitingStart:
		changed, err = s.applyAwaitingStart(ev)
	case StateGuessing:
		changed, err = s.applyGuessing(ev)
	case StateReviewing:
		changed, err = s.applyReviewing(ev)
	default:
		return false, nil
	}

	if err != nil {
		s.logger.Error().Err(err).Stringer("state", s.state).Stringer("event", ev.Kind).Msg("apply event")
		return false, err
	}
	if before != s.state {
		s.logger.Debug().
			Stringer("from", before).
			Stringer("to", s.state).
			Stringer("event", ev.Kind).
			Int("turn", s.turns).
			Msg("state changed")
	}
	return changed, nil
}

func (s *Session) applyAwaitingStart(ev Event) (bool, error) {
	if ev.Kind != EventConfirm {
		return false, nil
	}
	guess, err := code.Starting(s.cfg.Length)
	if err != nil {
		return false, err
	}
	s.guess = guess
	s.state = StateGuessing
	return true, nil
}

func (s *Session) applyGuessing(ev Event) (bool, error) {
	switch ev.Kind {
	case EventIncrement:
		if err := s.guess.Increment(ev.Digit); err != nil {
			return false, fmt.Errorf("increment guess: %w", err)
		}
		return true, nil

	case EventReviewPrev:
		if s.log.Empty() {
			return false, nil
		}
		s.log.MoveBack()
		s.state = StateReviewing
		return true, nil

	case EventReviewNext:
		if !s.log.CanMoveForward() {
			return false, nil
		}
		s.log.MoveForward()
		s.state = StateReviewing
		return true, nil

	case EventConfirm:
		return true, s.submit()
	}
	return false, nil
}

func (s *Session) applyReviewing(ev Event) (bool, error) {
	switch ev.Kind {
	case EventReviewPrev:
		return s.log.MoveBack(), nil

	case EventReviewNext:
		return s.log.MoveForward(), nil

	case EventConfirm:
		switch s.outcome {
		case OutcomeWon:
			s.state = StateWon
		case OutcomeLost:
			s.state = StateLost
		default:
			s.state = StateGuessing
		}
		return true, nil
	}
	return false, nil
}

// submit scores the current guess, records it and checks for the end of
// the game. The capacity check comes first so the log never overflows.
func (s *Session) submit() error {
	if s.log.Full() {
		return fmt.Errorf("submit guess: %w", history.ErrCapacityExceeded)
	}

	result, err := score.Score(s.cfg.Scoring, s.secret, s.guess)
	if err != nil {
		return fmt.Errorf("score guess: %w", err)
	}
	if err := s.log.Append(history.Entry{Guess: s.guess, Score: result}); err != nil {
		return fmt.Errorf("record guess: %w", err)
	}
	s.turns++

	s.logger.Debug().
		Int("turn", s.turns).
		Stringer("guess", s.guess).
		Int("exact", result.Exact).
		Int("partial", result.Partial).
		Msg("guess scored")

	switch {
	case result.Solved(s.cfg.Length):
		s.outcome = OutcomeWon
		s.state = StateWon
		s.logger.Info().Int("turns", s.turns).Msg("secret found")
	case s.turns >= s.cfg.MaxTries:
		s.outcome = OutcomeLost
		s.state = StateLost
		s.logger.Info().Int("turns", s.turns).Stringer("secret", s.secret).Msg("tries exhausted")
	}
	return nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.Config { return s.cfg }

// Decoder returns the input decoder matching this session's panel.
func (s *Session) Decoder() Decoder { return s.decoder }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Outcome returns how the game ended, or OutcomePending.
func (s *Session) Outcome() Outcome { return s.outcome }

// Done reports whether the game has ended.
func (s *Session) Done() bool { return s.state.Terminal() }

// Length returns the code length.
func (s *Session) Length() int { return s.cfg.Length }

// Secret returns a copy of the secret.
func (s *Session) Secret() code.Code { return s.secret.Clone() }

// Guess returns a copy of the guess being edited.
func (s *Session) Guess() code.Code { return s.guess.Clone() }

// Turns returns the number of submitted guesses.
func (s *Session) Turns() int { return s.turns }

// MaxTries returns the number of guesses allowed.
func (s *Session) MaxTries() int { return s.cfg.MaxTries }

// TriesLeft returns how many guesses remain.
func (s *Session) TriesLeft() int { return s.cfg.MaxTries - s.turns }

// History returns a read-only view of the submitted guesses.
func (s *Session) History() HistoryView { return s.log }

// LastScore returns the score of the most recent submission.
func (s *Session) LastScore() (score.Result, bool) {
	e, err := s.log.Last()
	if err != nil {
		return score.Result{}, false
	}
	return e.Score, true
}
