package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all client configuration.
type Config struct {
	// APIBaseURL is the root of the Hogword HTTPS API.
	APIBaseURL string

	// HTTPTimeout bounds a single API request.
	HTTPTimeout time.Duration

	LogLevel  string
	LogFormat string

	// Offline enables the local scorer instead of the remote
	// validation service.
	Offline bool
}

// Load reads configuration from environment variables with defaults.
// A .env file in the working directory is loaded if present.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		APIBaseURL:  getEnv("HOGWORD_API_BASE_URL", "https://api.hogword.site"),
		HTTPTimeout: time.Duration(getEnvInt("HOGWORD_HTTP_TIMEOUT_SECS", 30)) * time.Second,
		LogLevel:    getEnv("HOGWORD_LOG_LEVEL", "info"),
		LogFormat:   getEnv("HOGWORD_LOG_FORMAT", "json"),
		Offline:     os.Getenv("HOGWORD_OFFLINE") == "1",
	}
}

// ConfigDir resolves the directory for persisted client state
// (credentials), honoring XDG_CONFIG_HOME.
func ConfigDir() (string, error) {
	if d := os.Getenv("HOGWORD_CONFIG_DIR"); d != "" {
		return d, os.MkdirAll(d, 0o700)
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	d := filepath.Join(base, "hogword")
	return d, os.MkdirAll(d, 0o700)
}

// StateDir resolves the directory for logs and other re-creatable state,
// honoring XDG_STATE_HOME.
func StateDir() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "state")
	}
	d := filepath.Join(base, "hogword")
	return d, os.MkdirAll(d, 0o755)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
