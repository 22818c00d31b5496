package common

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger points the global logger at out. ASSIST_LOG_FORMAT=JSON switches to
// JSON lines and ASSIST_DEBUG=YES enables debug output such as per-tick events.
func SetupLogger(out io.Writer) {
	if os.Getenv("ASSIST_LOG_FORMAT") == "JSON" {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}

	if os.Getenv("ASSIST_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}
