package journal

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/hogword/hogword-cli/internal/router"
	"github.com/hogword/hogword-cli/internal/screen"
	"github.com/hogword/hogword-cli/internal/store"
	"github.com/hogword/hogword-cli/internal/ui/components"
	"github.com/hogword/hogword-cli/internal/ui/layout"
	"github.com/hogword/hogword-cli/internal/ui/theme"
)

type journalLoadedMsg struct {
	Attempts []store.AttemptRecord
	Stats    *store.AttemptStats
	Err      error
}

// JournalScreen displays the local practice journal: every scored
// attempt on this machine, independent of the server's daily log.
type JournalScreen struct {
	repo     store.JournalRepo
	attempts []store.AttemptRecord
	stats    *store.AttemptStats
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*JournalScreen)(nil)
var _ screen.KeyHintProvider = (*JournalScreen)(nil)

// New creates a new JournalScreen.
func New(repo store.JournalRepo) *JournalScreen {
	return &JournalScreen{
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *JournalScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		attempts, err := s.repo.QueryAttempts(ctx, store.QueryOpts{Limit: 100})
		if err != nil {
			return journalLoadedMsg{Err: err}
		}

		stats, err := s.repo.AttemptStats(ctx, store.QueryOpts{})
		if err != nil {
			return journalLoadedMsg{Attempts: attempts}
		}

		return journalLoadedMsg{Attempts: attempts, Stats: stats}
	}
}

func (s *JournalScreen) Title() string {
	return "Journal"
}

func (s *JournalScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *JournalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case journalLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *JournalScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading journal...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take a challenge!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.stats != nil && s.stats.Count > 0 {
		statsLine := fmt.Sprintf("%d attempts  avg %.1f", s.stats.Count, s.stats.AvgScore)
		for _, level := range []string{"easy", "medium", "hard"} {
			if ds, ok := s.stats.ByDifficulty[level]; ok && ds.Count > 0 {
				statsLine += fmt.Sprintf("  %s %.1f", level, ds.AvgScore)
			}
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(statsLine)))
		b.WriteString("\n\n")
	}

	for i, a := range s.attempts {
		dateStr := a.Timestamp.Local().Format("Jan 02 15:04")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-14s %s %4.1f",
			prefix, dateStr, truncate(a.Word, 14), components.Stars(a.Score), a.Score)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := []string{
				"    " + a.Sentence,
			}
			if a.Suggestion != "" {
				detail = append(detail, "    ↳ "+a.Suggestion)
			}
			if a.CorrectedSentence != "" && a.CorrectedSentence != a.Sentence {
				detail = append(detail, "    ✓ "+a.CorrectedSentence)
			}
			if a.ScoredBy == "local" {
				detail = append(detail, "    (scored offline)")
			}
			for _, d := range detail {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(truncate(d, width-8))))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
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
