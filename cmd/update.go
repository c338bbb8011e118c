package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mastermind/internal/selfupdate"
)

const updateTimeout = 2 * time.Minute

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update mastermind to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		logger, closer, err := openLogger(cfg, nil)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer closer.Close()

		out := cmd.OutOrStdout()
		checker := selfupdate.NewChecker(
			selfupdate.WithTimeout(updateTimeout),
			selfupdate.WithLogger(logger),
		)

		ctx, cancel := context.WithTimeout(cmd.Context(), updateTimeout)
		defer cancel()

		err = checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: version,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Fprintln(out, p.Message)
		})
		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Fprintln(out, "Cannot update a development build. Install a release build first.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Fprintln(out, "Already running the latest version.")
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nTry running: sudo mastermind update", err)
		}
		return err
	},
}
