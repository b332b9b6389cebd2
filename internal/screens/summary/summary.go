package summary

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hogword/hogword-cli/internal/api"
	"github.com/hogword/hogword-cli/internal/router"
	"github.com/hogword/hogword-cli/internal/screen"
	"github.com/hogword/hogword-cli/internal/ui/components"
	"github.com/hogword/hogword-cli/internal/ui/layout"
	"github.com/hogword/hogword-cli/internal/ui/theme"
)

const recentDays = 7

// summaryMsg is sent when the summary fetch completes.
type summaryMsg struct {
	Summary *api.Summary
	Err     error
}

// SummaryScreen displays the progress dashboard.
type SummaryScreen struct {
	client  *api.Client
	summary *api.Summary
	errMsg  string
	loading bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(client *api.Client) *SummaryScreen {
	return &SummaryScreen{client: client, loading: true}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sum, err := s.client.Summary(context.Background())
		return summaryMsg{Summary: sum, Err: err}
	}
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryMsg:
		s.loading = false
		if api.IsAuth(msg.Err) {
			return s, func() tea.Msg { return router.SignOutMsg{} }
		}
		if msg.Err != nil {
			s.errMsg = "Could not load the summary. Press R to retry."
			return s, nil
		}
		s.errMsg = ""
		s.summary = msg.Summary
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			s.loading = true
			return s, s.Init()
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.loading && s.summary == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading your summary...")
	}
	if s.errMsg != "" && s.summary == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n\n  " + s.errMsg)
	}

	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	// Headline stats.
	statsLine := fmt.Sprintf("Today avg: %.1f        Overall avg: %.1f        Skips today: %d",
		sum.AvgScoreToday, sum.AvgScoreAll, sum.TodaySkip)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(statsLine))
	b.WriteString("\n\n")

	barWidth := minInt(width-20, 50)

	// Score per day.
	if len(sum.ScorePerDay) > 0 {
		b.WriteString(s.renderSection(width, "Score per day"))
		days := sum.ScorePerDay
		if len(days) > recentDays {
			days = days[len(days)-recentDays:]
		}
		for _, d := range days {
			bar := components.NewProgressBar(d.Date, d.Value/10, false, barWidth)
			line := fmt.Sprintf("%s  %.1f", bar.View(), d.Value)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Words per day.
	if len(sum.WordPerDay) > 0 {
		b.WriteString(s.renderSection(width, "Words per day"))
		dates := make([]string, 0, len(sum.WordPerDay))
		maxCount := 1
		for date, count := range sum.WordPerDay {
			dates = append(dates, date)
			if count > maxCount {
				maxCount = count
			}
		}
		sort.Strings(dates)
		if len(dates) > recentDays {
			dates = dates[len(dates)-recentDays:]
		}
		for _, date := range dates {
			count := sum.WordPerDay[date]
			bar := components.NewProgressBar(date, float64(count)/float64(maxCount), false, barWidth)
			line := fmt.Sprintf("%s  %d", bar.View(), count)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Average score per difficulty.
	if len(sum.AvgScoreLevel) > 0 {
		b.WriteString(s.renderSection(width, "By difficulty"))
		for _, l := range sum.AvgScoreLevel {
			line := fmt.Sprintf("  %-8s %s %.1f",
				strings.ToLower(l.Level), components.Stars(l.Score), l.Score)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *SummaryScreen) renderSection(width int, title string) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", minInt(width-8, 60)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(title)) +
		"\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) +
		"\n\n"
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
