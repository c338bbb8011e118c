package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/mastermind/internal/code"
	"github.com/abhisek/mastermind/internal/config"
	"github.com/abhisek/mastermind/internal/game"
	"github.com/abhisek/mastermind/internal/panel"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play on stdin and stdout, one panel sample per line",
	Long: `Reads one panel sample per input line and prints the display and
indicator lights whenever they change.

Tokens on a line are combined into one sample:
  1..N           press a digit button
  p, prev        review the previous guess
  n, next        review the next guess
  c, ok, enter   confirm
  lines:1101c    raw button lines, c for confirm
An empty line is an idle tick and # starts a comment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		logger, closer, err := openLogger(cfg, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer closer.Close()

		secret, _ := cmd.Flags().GetString("secret")
		realtime, _ := cmd.Flags().GetBool("realtime")

		opts := consoleOptions{Secret: secret}
		if realtime {
			opts.Sleeper = game.WallClock
		}
		outcome, err := playConsole(cfg, opts, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(cmd.OutOrStdout(), "(input closed)")
			return nil
		}
		if err != nil {
			return err
		}
		logger.Info().Stringer("outcome", outcome).Msg("game over")
		return nil
	},
}

func init() {
	consoleCmd.Flags().String("secret", "", "Play against this secret instead of a random one")
	consoleCmd.Flags().Bool("realtime", false, "Wait the tick intervals between samples")
}

type consoleOptions struct {
	Secret  string
	Sleeper game.Sleeper
}

var noDelay = game.SleepFunc(func(d time.Duration) {})

// playConsole runs one game fed by in, printing the panel to out after
// every tick that changed it.
func playConsole(cfg config.Config, opts consoleOptions, in io.Reader, out io.Writer, logger zerolog.Logger) (game.Outcome, error) {
	var (
		session *game.Session
		err     error
	)
	if opts.Secret != "" {
		secret, perr := code.Parse(opts.Secret)
		if perr != nil {
			return game.OutcomePending, fmt.Errorf("--secret: %w", perr)
		}
		session, err = game.NewSessionWithSecret(cfg, secret, logger)
	} else {
		session, err = game.NewSession(cfg, code.NewRand(cfg.Seed), logger)
	}
	if err != nil {
		return game.OutcomePending, err
	}

	sleeper := opts.Sleeper
	if sleeper == nil {
		sleeper = noDelay
	}

	lcd := panel.NewLCD(cfg.DisplayRows, cfg.DisplayWidth(), logger)
	leds := panel.NewLEDBar(panel.DefaultLEDs)
	renderer := game.NewRenderer(lcd, leds, lcd.Cols())
	script := panel.NewScript(in, cfg.DigitButtons(), logger)

	var last string
	show := func() {
		frame := drawPanel(lcd, leds)
		if frame == last {
			return
		}
		last = frame
		fmt.Fprint(out, frame)
	}

	renderer.Render(session)
	show()

	runner := game.NewRunner(session, script, renderer, sleeper)
	runner.OnTick = func(ev game.Event, changed bool) {
		if changed {
			show()
		}
	}
	return runner.Run()
}

// drawPanel frames the display rows and appends the indicator bar.
func drawPanel(lcd *panel.LCD, leds *panel.LEDBar) string {
	border := "+" + strings.Repeat("-", lcd.Cols()) + "+\n"

	var sb strings.Builder
	sb.WriteString(border)
	for _, line := range lcd.Lines() {
		sb.WriteString("|" + line + "|\n")
	}
	sb.WriteString(border)
	sb.WriteString("[" + leds.String() + "]\n\n")
	return sb.String()
}
