package challenge

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hogword/hogword-cli/internal/ui/components"
	"github.com/hogword/hogword-cli/internal/ui/theme"
)

func (s *ChallengeScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	if s.state.OverlayVisible {
		return renderScoringOverlay(width)
	}
	if s.state.ReportVisible && s.state.Report != nil {
		return s.renderReport(width)
	}
	if s.state.Word == nil {
		if s.state.Loading {
			return renderLoading(width)
		}
		return s.renderNoWord(width)
	}
	return s.renderChallengeView(width, height)
}

// renderChallengeView renders the word card, the sentence input, and
// today's attempts.
func (s *ChallengeScreen) renderChallengeView(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.renderWordCard(width))
	b.WriteString("\n\n")

	inputLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Sentence: " + s.input.View())
	b.WriteString(inputLine)
	b.WriteString("\n")

	if s.state.ErrNotice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.state.ErrNotice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.renderHistory(width))

	return b.String()
}

// renderWordCard renders the current word with its difficulty badge.
func (s *ChallengeScreen) renderWordCard(width int) string {
	w := s.state.Word

	wordLine := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(w.Word)

	badge := renderDifficultyBadge(w.Difficulty)

	status := ""
	if s.state.Loading {
		status = lipgloss.NewStyle().Foreground(theme.TextDim).Render("fetching next word...")
	} else if s.state.HasPlayed {
		status = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ played")
	}

	card := theme.Card.Render(wordLine + "  " + badge + "\n" + status)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func renderDifficultyBadge(d string) string {
	label := strings.ToLower(d)
	color, ok := theme.DifficultyColors[label]
	if !ok {
		color = theme.TextDim
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render("[" + label + "]")
}

// renderHistory renders today's attempts, newest first.
func (s *ChallengeScreen) renderHistory(width int) string {
	entries := s.state.History
	if len(entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No attempts yet today.")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Today"))
	b.WriteString("\n")

	shown := entries
	if len(shown) > 8 {
		shown = shown[:8]
	}
	for _, e := range shown {
		line := fmt.Sprintf("  %s  %-14s %s %4.1f  %s",
			e.Datetime.Local().Format("15:04"),
			truncate(e.Word, 14),
			components.Stars(e.Score),
			e.Score,
			truncate(e.UserSentence, width-40),
		)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}
	if len(entries) > len(shown) {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  ... and %d more", len(entries)-len(shown))))
		b.WriteString("\n")
	}

	return b.String()
}

// renderReport renders the verdict for the last submission.
func (s *ChallengeScreen) renderReport(width int) string {
	r := s.state.Report

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("Score: %.1f / 10  %s", r.Score, components.Stars(r.Score))))
	b.WriteString("\n\n")

	feedback := lipgloss.NewStyle().
		Width(minInt(width-8, 70)).
		Foreground(theme.Text).
		Render(r.Feedback)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, feedback))
	b.WriteString("\n\n")

	if r.CorrectedSentence != "" {
		corrected := lipgloss.NewStyle().
			Width(minInt(width-8, 70)).
			Foreground(theme.Success).
			Render("Corrected: " + r.CorrectedSentence)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, corrected))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Enter for the next word, Esc to try this word again."))

	return b.String()
}

func renderScoringOverlay(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Scoring your sentence...")
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave the challenge?"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, back to menu"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Getting your word...")
}

func (s *ChallengeScreen) renderNoWord(width int) string {
	msg := "No word loaded."
	if s.state.ErrNotice != "" {
		msg = s.state.ErrNotice
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("\n\n\n  " + msg)
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
