package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/hogword/hogword-cli/internal/config"
)

// Setup initializes the global zerolog logger.
//   - level: log level string (trace, debug, info, warn, error)
//   - format: "json" or "pretty"
//
// The TUI owns the terminal, so log output goes to a file under the
// state directory. Returns the configured logger and a close func.
func Setup(level, format string) (zerolog.Logger, func(), error) {
	dir, err := config.StateDir()
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	f, err := os.OpenFile(filepath.Join(dir, "hogword.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	var writer io.Writer = f
	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log := zerolog.New(writer).
		With().
		Timestamp().
		Logger()

	return log, func() { _ = f.Close() }, nil
}
