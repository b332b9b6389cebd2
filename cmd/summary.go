package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hogword/hogword-cli/internal/api"
	"github.com/hogword/hogword-cli/internal/auth"
	"github.com/hogword/hogword-cli/internal/config"
	"github.com/hogword/hogword-cli/internal/logger"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print your progress summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		log, closeLog, err := logger.Setup(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return fmt.Errorf("set up logging: %w", err)
		}
		defer closeLog()

		creds, err := auth.Open()
		if err != nil {
			return fmt.Errorf("open credentials: %w", err)
		}
		if _, ok := creds.Current(); !ok {
			return fmt.Errorf("not signed in; run: hogword login")
		}

		client := api.New(api.Config{
			BaseURL: cfg.APIBaseURL,
			Timeout: cfg.HTTPTimeout,
		}, creds, log)

		sum, err := client.Summary(cmd.Context())
		if err != nil {
			if api.IsAuth(err) {
				_ = creds.Invalidate()
				return fmt.Errorf("session expired; run: hogword login")
			}
			return fmt.Errorf("fetch summary: %w", err)
		}

		fmt.Printf("Today avg:    %.1f\n", sum.AvgScoreToday)
		fmt.Printf("Overall avg:  %.1f\n", sum.AvgScoreAll)
		fmt.Printf("Skips today:  %d\n", sum.TodaySkip)

		if len(sum.AvgScoreLevel) > 0 {
			fmt.Println("\nBy difficulty:")
			for _, l := range sum.AvgScoreLevel {
				fmt.Printf("  %-8s %.1f\n", strings.ToLower(l.Level), l.Score)
			}
		}

		if len(sum.WordPerDay) > 0 {
			dates := make([]string, 0, len(sum.WordPerDay))
			for d := range sum.WordPerDay {
				dates = append(dates, d)
			}
			sort.Strings(dates)
			if len(dates) > 7 {
				dates = dates[len(dates)-7:]
			}
			fmt.Println("\nWords per day:")
			for _, d := range dates {
				fmt.Printf("  %s  %d\n", d, sum.WordPerDay[d])
			}
		}

		return nil
	},
}
