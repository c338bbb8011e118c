package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mastermind/internal/config"
	"github.com/abhisek/mastermind/internal/game"
	"github.com/abhisek/mastermind/internal/score"
)

func TestPlayConsoleWin(t *testing.T) {
	in := strings.NewReader("c\nc\n1\n2\n3\n4\nc\n")
	var out bytes.Buffer

	outcome, err := playConsole(config.Default(), consoleOptions{Secret: "1234"}, in, &out, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, game.OutcomeWon, outcome)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "+----------------+\n|Welcome to Maste|\n"))
	assert.Contains(t, text, "|Your guess: 1234|")
	assert.Contains(t, text, "|Well done! You w|")
	assert.True(t, strings.HasSuffix(text, "[RRRR]\n\n"))
}

func TestPlayConsolePrintsOnlyChanges(t *testing.T) {
	in := strings.NewReader("\n\n\nc\n\n\n")
	var out bytes.Buffer

	_, err := playConsole(config.Default(), consoleOptions{Secret: "1234"}, in, &out, zerolog.Nop())
	require.Error(t, err)
	assert.Equal(t, 2, strings.Count(out.String(), "[....]"))
}

func TestPlayConsoleBadSecret(t *testing.T) {
	var out bytes.Buffer
	_, err := playConsole(config.Default(), consoleOptions{Secret: "12x4"}, strings.NewReader(""), &out, zerolog.Nop())
	assert.ErrorContains(t, err, "--secret")
	assert.Empty(t, out.String())
}

func TestConsoleCommandEndsOnClosedInput(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader("c\n1\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"console", "--secret", "1234", "--log-level", "error"})
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "|Your guess: 1123|")
	assert.True(t, strings.HasSuffix(out.String(), "(input closed)\n"))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())
	assert.Equal(t, "mastermind (devel)\n", out.String())
}

func TestConsoleCommandNormalizesScoringFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader("c\nc\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"console", "--scoring", "Classic", "--secret", "1234", "--log-level", "error"})
	t.Cleanup(func() {
		_ = rootCmd.PersistentFlags().Set("scoring", "reference")
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "|1 : 0123  0A3B  |")
	assert.True(t, strings.HasSuffix(out.String(), "(input closed)\n"))
}

func TestConsoleCommandRejectsUnknownScoring(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader("c\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"console", "--scoring", "strict", "--secret", "1234"})
	t.Cleanup(func() {
		_ = rootCmd.PersistentFlags().Set("scoring", "reference")
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute()
	var fe *config.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "scoring", fe.Field)
	assert.ErrorIs(t, err, score.ErrUnknownMode)
	assert.Empty(t, out.String())
}
