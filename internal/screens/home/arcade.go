package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mastermind/internal/config"
	"github.com/abhisek/mastermind/internal/ui/theme"
)

const arcadeTitleFull = `╔╦╗╔═╗╔═╗╔╦╗╔═╗╦═╗╔╦╗╦╔╗╔╔╦╗
║║║╠═╣╚═╗ ║ ║╣ ╠╦╝║║║║║║║ ║║
╩ ╩╩ ╩╚═╝ ╩ ╚═╝╩╚═╩ ╩╩╝╚╝═╩╝`

const arcadeTitleCompact = "M A S T E R M I N D"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	art := arcadeTitleFull
	if compact {
		art = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderRulesBar summarises the game settings in a double-bordered box.
func renderRulesBar(cfg config.Config, cw int, compact bool) string {
	digits := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	tries := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	mode := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	repeats := "UNIQUE"
	if cfg.AllowRepeats {
		repeats = "REPEATS"
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			digits.Render(fmt.Sprintf("#%d", cfg.Length)),
			tries.Render(fmt.Sprintf("×%d", cfg.MaxTries)),
			mode.Render(string(cfg.Scoring)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			digits.Render(fmt.Sprintf("# %d DIGITS %s", cfg.Length, repeats)),
			tries.Render(fmt.Sprintf("× %d TRIES", cfg.MaxTries)),
			mode.Render(fmt.Sprintf("≡ %s", cfg.Scoring)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	text := fmt.Sprintf("New version %s available, run mastermind update", latestVersion)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}
