package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hogword/hogword-cli/internal/ui/theme"
)

// Stars renders a score on the 0-10 scale as a five-star gauge.
// Each star covers two points; a half point or more fills a half star.
func Stars(score float64) string {
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}

	halves := int(score + 0.5) // score in half-star units out of 10
	full := halves / 2
	half := halves % 2

	var b strings.Builder
	b.WriteString(strings.Repeat("★", full))
	if half == 1 {
		b.WriteString("⯨")
	}
	empty := 5 - full - half
	if empty > 0 {
		b.WriteString(strings.Repeat("☆", empty))
	}

	return lipgloss.NewStyle().Foreground(theme.Accent).Render(b.String())
}
