package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mastermind/internal/app"
	"github.com/abhisek/mastermind/internal/selfupdate"
)

// runApp resolves configuration and launches the TUI.
func runApp(cmd *cobra.Command, skipIntro bool) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// The terminal belongs to bubbletea, so logs only go to a file.
	logger, closer, err := openLogger(cfg, nil)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	opts := app.Options{
		Config:    cfg,
		Logger:    logger,
		SkipIntro: skipIntro,
	}
	if version != selfupdate.DevVersion {
		checker := selfupdate.NewChecker(selfupdate.WithLogger(logger))
		opts.CheckUpdate = func(ctx context.Context) (string, error) {
			res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
			if err != nil {
				return "", err
			}
			if !res.UpdateAvailable {
				return "", nil
			}
			return res.LatestVersion, nil
		}
	}

	logger.Info().
		Int("length", cfg.Length).
		Int("max_tries", cfg.MaxTries).
		Str("scoring", string(cfg.Scoring)).
		Bool("skip_intro", skipIntro).
		Msg("starting")
	return app.Run(opts)
}
