package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hogword/hogword-cli/internal/api"
	"github.com/hogword/hogword-cli/internal/auth"
	"github.com/hogword/hogword-cli/internal/config"
	"github.com/hogword/hogword-cli/internal/logger"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in (or sign up) without starting the TUI",
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

		reader := bufio.NewReader(os.Stdin)
		fmt.Print("Email: ")
		email, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read email: %w", err)
		}
		email = strings.TrimSpace(email)
		if email == "" || !strings.Contains(email, "@") {
			return fmt.Errorf("enter a valid email address")
		}

		fmt.Print("Password: ")
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		if len(pw) == 0 {
			return fmt.Errorf("enter a password")
		}

		client := api.New(api.Config{
			BaseURL: cfg.APIBaseURL,
			Timeout: cfg.HTTPTimeout,
		}, creds, log)

		resp, err := client.SignIn(cmd.Context(), email, string(pw))
		if err != nil {
			if api.IsAuth(err) {
				return fmt.Errorf("email or password not accepted")
			}
			return fmt.Errorf("sign in: %w", err)
		}

		if err := creds.Save(auth.Credentials{
			AccessToken: resp.AccessToken,
			Email:       email,
		}); err != nil {
			return fmt.Errorf("save credentials: %w", err)
		}

		fmt.Println("Signed in as", email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := auth.Open()
		if err != nil {
			return fmt.Errorf("open credentials: %w", err)
		}
		if _, ok := creds.Current(); !ok {
			fmt.Println("Not signed in.")
			return nil
		}
		if err := creds.Invalidate(); err != nil {
			return fmt.Errorf("remove credentials: %w", err)
		}
		fmt.Println("Signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := auth.Open()
		if err != nil {
			return fmt.Errorf("open credentials: %w", err)
		}

		c, ok := creds.Current()
		if !ok {
			fmt.Println("Not signed in. Run: hogword login")
			return nil
		}

		fmt.Println("Email:", c.Email)
		if sub := creds.Subject(); sub != "" {
			fmt.Println("User ID:", sub)
		}
		if exp, ok := creds.TokenExpiry(); ok {
			fmt.Println("Token expires:", exp.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}
