package home

import (
	"charm.land/lipgloss/v2"

	"github.com/hogword/hogword-cli/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗ ██████╗  ██████╗ ██╗    ██╗ ██████╗ ██████╗ ██████╗
 ██║  ██║██╔═══██╗██╔════╝ ██║    ██║██╔═══██╗██╔══██╗██╔══██╗
 ███████║██║   ██║██║  ███╗██║ █╗ ██║██║   ██║██████╔╝██║  ██║
 ██╔══██║██║   ██║██║   ██║██║███╗██║██║   ██║██╔══██╗██║  ██║
 ██║  ██║╚██████╔╝╚██████╔╝╚███╔███╔╝╚██████╔╝██║  ██║██████╔╝
 ╚═╝  ╚═╝ ╚═════╝  ╚═════╝  ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═════╝`

const bannerCompact = "H O G W O R D"

// RenderBanner returns the HOGWORD banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 64 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 64 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
