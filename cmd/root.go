package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/mastermind/internal/config"
	"github.com/abhisek/mastermind/internal/logging"
	"github.com/abhisek/mastermind/internal/score"
)

var rootCmd = &cobra.Command{
	Use:   "mastermind",
	Short: "Guess the secret number",
	Long: `Mastermind is a code-breaking game played on a virtual panel of digit
buttons, a two-line display and four indicator lights. Red lights mark
right digits in the right place, blue lights right digits elsewhere.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	d := config.Default()
	f := rootCmd.PersistentFlags()
	f.Int("length", d.Length, "Number of digits in the secret (overrides "+config.EnvLength+")")
	f.Bool("repeats", d.AllowRepeats, "Allow repeated digits in the secret (overrides "+config.EnvRepeats+")")
	f.Int("max-tries", d.MaxTries, "Guesses allowed per game (overrides "+config.EnvMaxTries+")")
	f.String("scoring", string(d.Scoring), fmt.Sprintf("Scoring rule: %v (overrides %s)", score.AllModes(), config.EnvScoring))
	f.Duration("tick", d.TickInterval, "Delay between panel samples (overrides "+config.EnvTick+")")
	f.Duration("start-poll", d.StartPollInterval, "Panel poll interval on the welcome screen (overrides "+config.EnvStartPoll+")")
	f.Uint64("seed", d.Seed, "Seed for the secret generator, 0 for random (overrides "+config.EnvSeed+")")
	f.String("log-file", "", "Write logs to this file (overrides "+config.EnvLogFile+")")
	f.String("log-level", d.LogLevel, "Log level: trace, debug, info, warn, error (overrides "+config.EnvLogLevel+")")
	f.String("env-file", "", "Load environment overrides from this file (default: .env when present)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveConfig builds the game configuration: flags first, then the
// MASTERMIND_* environment (including the env file), then defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.Length, _ = flags.GetInt("length")
	}
	if flags.Changed("repeats") {
		cfg.AllowRepeats, _ = flags.GetBool("repeats")
	}
	if flags.Changed("max-tries") {
		cfg.MaxTries, _ = flags.GetInt("max-tries")
	}
	if flags.Changed("scoring") {
		s, _ := flags.GetString("scoring")
		m, err := score.ParseMode(s)
		if err != nil {
			return config.Config{}, &config.FieldError{Field: "scoring", Value: s, Err: err}
		}
		cfg.Scoring = m
	}
	if flags.Changed("tick") {
		cfg.TickInterval, _ = flags.GetDuration("tick")
	}
	if flags.Changed("start-poll") {
		cfg.StartPollInterval, _ = flags.GetDuration("start-poll")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openLogger opens the configured log file. Without one, logs go to
// console as human-readable lines, or nowhere if console is nil.
func openLogger(cfg config.Config, console io.Writer) (zerolog.Logger, io.Closer, error) {
	if console == nil {
		return logging.Open(cfg.LogFile, cfg.LogLevel)
	}
	return logging.OpenOrConsole(cfg.LogFile, cfg.LogLevel, console)
}
