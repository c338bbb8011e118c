// Package config holds the game's tunable settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/mastermind/internal/code"
	"github.com/abhisek/mastermind/internal/score"
)

// Defaults match a 16x2 display with four digit buttons.
const (
	DefaultLength            = 4
	DefaultMaxTries          = 10
	DefaultTickInterval      = 1000 * time.Millisecond
	DefaultStartPollInterval = 100 * time.Millisecond
	DefaultDisplayRows       = 2
	DefaultDisplayCols       = 16

	// MinDisplayCols fits the "Your guess:" label plus a separator.
	MinDisplayCols = 12
)

// Environment variable names.
const (
	EnvLength      = "MASTERMIND_LENGTH"
	EnvRepeats     = "MASTERMIND_REPEATS"
	EnvMaxTries    = "MASTERMIND_MAX_TRIES"
	EnvScoring     = "MASTERMIND_SCORING"
	EnvTick        = "MASTERMIND_TICK"
	EnvStartPoll   = "MASTERMIND_START_POLL"
	EnvSeed        = "MASTERMIND_SEED"
	EnvDisplayCols = "MASTERMIND_DISPLAY_COLS"
	EnvLogFile     = "MASTERMIND_LOG_FILE"
	EnvLogLevel    = "MASTERMIND_LOG_LEVEL"
)

// ErrInvalidConfig is wrapped by every validation failure that is not a
// code length problem.
var ErrInvalidConfig = errors.New("invalid configuration")

// FieldError reports a bad value for a single setting.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Config controls a game session and the loop that drives it.
type Config struct {
	// Length is the number of digits in the secret.
	Length int

	// AllowRepeats lets the secret contain the same digit more than once.
	AllowRepeats bool

	// MaxTries is the number of guesses before the game is lost.
	MaxTries int

	// Scoring selects the partial-match rule.
	Scoring score.Mode

	// TickInterval is the delay between input samples during play. It is
	// the only debounce and bounds input latency.
	TickInterval time.Duration

	// StartPollInterval is the sampling delay while waiting for the
	// start confirm.
	StartPollInterval time.Duration

	// DisplayRows and DisplayCols size the character display. Zero
	// columns picks the narrowest width that fits Length, never below 16.
	DisplayRows int
	DisplayCols int

	// Seed fixes the secret generator. Zero seeds from the clock.
	Seed uint64

	// LogFile receives structured logs. Empty selects the command's default.
	LogFile string

	// LogLevel is a zerolog level name.
	LogLevel string
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Length:            DefaultLength,
		AllowRepeats:      false,
		MaxTries:          DefaultMaxTries,
		Scoring:           score.ModeReference,
		TickInterval:      DefaultTickInterval,
		StartPollInterval: DefaultStartPollInterval,
		DisplayRows:       DefaultDisplayRows,
		LogLevel:          "info",
	}
}

// Load reads an optional .env file and applies MASTERMIND_* overrides on
// top of Default. An empty envFile loads ".env" from the working
// directory when present; a named file must exist.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv applies environment overrides using lookup, typically os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLength); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, &FieldError{Field: EnvLength, Value: v, Err: err}
		}
		cfg.Length = n
	}
	if v, ok := lookup(EnvRepeats); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, &FieldError{Field: EnvRepeats, Value: v, Err: err}
		}
		cfg.AllowRepeats = b
	}
	if v, ok := lookup(EnvMaxTries); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, &FieldError{Field: EnvMaxTries, Value: v, Err: err}
		}
		cfg.MaxTries = n
	}
	if v, ok := lookup(EnvScoring); ok {
		m, err := score.ParseMode(v)
		if err != nil {
			return Config{}, &FieldError{Field: EnvScoring, Value: v, Err: err}
		}
		cfg.Scoring = m
	}
	if v, ok := lookup(EnvTick); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return Config{}, &FieldError{Field: EnvTick, Value: v, Err: err}
		}
		cfg.TickInterval = d
	}
	if v, ok := lookup(EnvStartPoll); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return Config{}, &FieldError{Field: EnvStartPoll, Value: v, Err: err}
		}
		cfg.StartPollInterval = d
	}
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return Config{}, &FieldError{Field: EnvSeed, Value: v, Err: err}
		}
		cfg.Seed = n
	}
	if v, ok := lookup(EnvDisplayCols); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, &FieldError{Field: EnvDisplayCols, Value: v, Err: err}
		}
		cfg.DisplayCols = n
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// Validate checks every setting. Length problems wrap code.ErrInvalidLength;
// everything else wraps ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Length < 1 || c.Length > code.MaxLength {
		return &FieldError{
			Field: "length",
			Value: strconv.Itoa(c.Length),
			Err:   fmt.Errorf("%w: must be between 1 and %d", code.ErrInvalidLength, code.MaxLength),
		}
	}
	if c.MaxTries < 1 {
		return &FieldError{
			Field: "max-tries",
			Value: strconv.Itoa(c.MaxTries),
			Err:   fmt.Errorf("%w: must be at least 1", ErrInvalidConfig),
		}
	}
	m, err := score.ParseMode(string(c.Scoring))
	if err != nil {
		return &FieldError{Field: "scoring", Value: string(c.Scoring), Err: fmt.Errorf("%w: %v", ErrInvalidConfig, err)}
	}
	if c.Scoring != "" && m != c.Scoring {
		return &FieldError{
			Field: "scoring",
			Value: string(c.Scoring),
			Err:   fmt.Errorf("%w: use %q", ErrInvalidConfig, m),
		}
	}
	if c.TickInterval <= 0 {
		return &FieldError{
			Field: "tick",
			Value: c.TickInterval.String(),
			Err:   fmt.Errorf("%w: must be positive", ErrInvalidConfig),
		}
	}
	if c.StartPollInterval <= 0 {
		return &FieldError{
			Field: "start-poll",
			Value: c.StartPollInterval.String(),
			Err:   fmt.Errorf("%w: must be positive", ErrInvalidConfig),
		}
	}
	if c.DisplayRows < DefaultDisplayRows {
		return &FieldError{
			Field: "display-rows",
			Value: strconv.Itoa(c.DisplayRows),
			Err:   fmt.Errorf("%w: need at least %d rows", ErrInvalidConfig, DefaultDisplayRows),
		}
	}
	if c.DisplayCols != 0 && c.DisplayCols < MinDisplayCols+c.Length {
		return &FieldError{
			Field: "display-cols",
			Value: strconv.Itoa(c.DisplayCols),
			Err:   fmt.Errorf("%w: need at least %d columns for a %d-digit code", ErrInvalidConfig, MinDisplayCols+c.Length, c.Length),
		}
	}
	return nil
}

// DisplayWidth returns the display column count, resolving zero to the
// automatic width.
func (c Config) DisplayWidth() int {
	if c.DisplayCols == 0 {
		return max(DefaultDisplayCols, MinDisplayCols+c.Length)
	}
	return c.DisplayCols
}

// DigitButtons returns how many digit lines the input panel has. The
// review combinations need four lines, so shorter codes keep four buttons.
func (c Config) DigitButtons() int {
	return max(c.Length, 4)
}
