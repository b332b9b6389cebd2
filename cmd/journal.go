package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hogword/hogword-cli/internal/store"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Print recent attempts from the local journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve journal path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer st.Close()

		repo, err := st.JournalRepo()
		if err != nil {
			return fmt.Errorf("init journal: %w", err)
		}
		attempts, err := repo.QueryAttempts(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query journal: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		stats, err := repo.AttemptStats(cmd.Context(), store.QueryOpts{})
		if err == nil && stats.Count > 0 {
			fmt.Printf("%d attempts, avg %.1f\n\n", stats.Count, stats.AvgScore)
		}

		for _, a := range attempts {
			fmt.Printf("%s  %-14s %4.1f  %s\n",
				a.Timestamp.Local().Format("Jan 02 15:04"), a.Word, a.Score, a.Sentence)
		}
		return nil
	},
}

func init() {
	journalCmd.Flags().Int("limit", 20, "Maximum attempts to print")
}
