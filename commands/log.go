package commands

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: "2006-01-02 15:04:05",
}).With().Timestamp().Logger().Level(zerolog.InfoLevel)

// SetDebug lowers the log level so that the per-command diagnostics are
// emitted.
func SetDebug(enabled bool) {
	if enabled {
		logger = logger.Level(zerolog.DebugLevel)
	}
}

// Fatalf logs at fatal level and exits.
func Fatalf(format string, args ...any) {
	logger.Fatal().Msgf(format, args...)
}

func debugf(format string, args ...any) {
	logger.Debug().Msgf(format, args...)
}

func infof(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

func warnf(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}
