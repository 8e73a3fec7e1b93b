package home

import (
	"charm.land/lipgloss/v2"

	"github.com/campusterm/campus/internal/ui/theme"
)

const bannerArt = `
  ██████╗ █████╗ ███╗   ███╗██████╗ ██╗   ██╗███████╗
 ██╔════╝██╔══██╗████╗ ████║██╔══██╗██║   ██║██╔════╝
 ██║     ███████║██╔████╔██║██████╔╝██║   ██║███████╗
 ██║     ██╔══██║██║╚██╔╝██║██╔═══╝ ██║   ██║╚════██║
 ╚██████╗██║  ██║██║ ╚═╝ ██║██║     ╚██████╔╝███████║
  ╚═════╝╚═╝  ╚═╝╚═╝     ╚═╝╚═╝      ╚═════╝ ╚══════╝`

const bannerCompact = "C A M P U S"

var statsStyle = lipgloss.NewStyle().
	Foreground(theme.TextDim).
	Align(lipgloss.Center)

// banner returns the CAMPUS banner styled in the primary color, with a
// compact fallback for narrow terminals.
func banner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 56 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
