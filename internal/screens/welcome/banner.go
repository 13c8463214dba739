package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/molemath/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗ ██████╗ ██╗     ███████╗███╗   ███╗ █████╗ ████████╗██╗  ██╗
 ████╗ ████║██╔═══██╗██║     ██╔════╝████╗ ████║██╔══██╗╚══██╔══╝██║  ██║
 ██╔████╔██║██║   ██║██║     █████╗  ██╔████╔██║███████║   ██║   ███████║
 ██║╚██╔╝██║██║   ██║██║     ██╔══╝  ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║
 ██║ ╚═╝ ██║╚██████╔╝███████╗███████╗██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║
 ╚═╝     ╚═╝ ╚═════╝ ╚══════╝╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝`

const bannerCompact = "M O L E M A T H"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 76

// RenderBanner returns the MOLEMATH banner in the marquee color, or a
// compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
