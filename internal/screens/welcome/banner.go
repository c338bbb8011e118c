package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mastermind/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗ █████╗ ███████╗████████╗███████╗██████╗ ███╗   ███╗██╗███╗   ██╗██████╗
 ████╗ ████║██╔══██╗██╔════╝╚══██╔══╝██╔════╝██╔══██╗████╗ ████║██║████╗  ██║██╔══██╗
 ██╔████╔██║███████║███████╗   ██║   █████╗  ██████╔╝██╔████╔██║██║██╔██╗ ██║██║  ██║
 ██║╚██╔╝██║██╔══██║╚════██║   ██║   ██╔══╝  ██╔══██╗██║╚██╔╝██║██║██║╚██╗██║██║  ██║
 ██║ ╚═╝ ██║██║  ██║███████║   ██║   ███████╗██║  ██║██║ ╚═╝ ██║██║██║ ╚████║██████╔╝
 ╚═╝     ╚═╝╚═╝  ╚═╝╚══════╝   ╚═╝   ╚══════╝╚═╝  ╚═╝╚═╝     ╚═╝╚═╝╚═╝  ╚═══╝╚═════╝`

const bannerCompact = "M A S T E R M I N D"

// bannerMinWidth is the narrowest terminal that fits the block letters.
const bannerMinWidth = 88

// RenderBanner returns the MASTERMIND banner styled in the primary color,
// or a compact line on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
