package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtools/internal/ui/theme"
)

const bannerArt = `
 ┌┬┐┌─┐┌┬┐┬ ┬┌─┐  ┌┬┐┌─┐┌─┐┬  ┌─┐
 │││├─┤ │ ├─┤└─┐   │ │ ││ ││  └─┐
 ┴ ┴┴ ┴ ┴ ┴ ┴└─┘   ┴ └─┘└─┘┴─┘└─┘`

const bannerCompact = "MATHS TOOLS"

// RenderBanner returns the app banner in the title colour, or a one-line
// version for terminals narrower than 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
