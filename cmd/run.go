package cmd

import (
	"fmt"
	"os"

	"github.com/hogword/hogword-cli/internal/api"
	"github.com/hogword/hogword-cli/internal/app"
	"github.com/hogword/hogword-cli/internal/auth"
	"github.com/hogword/hogword-cli/internal/config"
	"github.com/hogword/hogword-cli/internal/logger"
	"github.com/hogword/hogword-cli/internal/scoring"
	challengescreen "github.com/hogword/hogword-cli/internal/screens/challenge"
	"github.com/hogword/hogword-cli/internal/store"
	"github.com/spf13/cobra"
)

// runApp wires configuration, logging, credentials, the API client, the
// validator, and the local journal, then launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	client := api.New(api.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.HTTPTimeout,
	}, creds, log)

	var validator challengescreen.Validator = &challengescreen.RemoteValidator{Client: client}
	if cfg.Offline {
		scorer, err := scoring.FromEnv()
		if err != nil {
			return fmt.Errorf("set up offline scorer: %w", err)
		}
		log.Info().Str("model", scorer.ModelID()).Msg("offline scoring enabled")
		validator = &challengescreen.LocalValidator{Scorer: scorer}
	}

	opts := app.Options{
		Client:    client,
		Validator: validator,
		Creds:     creds,
		Log:       log,
	}

	// The journal is best effort: the app runs without it.
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Local journal unavailable:", err)
	} else {
		st, err := store.Open(dbPath)
		if err != nil {
			log.Warn().Err(err).Str("path", dbPath).Msg("open journal failed")
			fmt.Fprintln(os.Stderr, "Local journal unavailable:", err)
		} else {
			defer st.Close()
			repo, err := st.JournalRepo()
			if err != nil {
				log.Warn().Err(err).Msg("init journal repo failed")
				fmt.Fprintln(os.Stderr, "Local journal unavailable:", err)
			} else {
				opts.Journal = repo
			}
		}
	}

	return app.Run(opts)
}
