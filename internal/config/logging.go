package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger points the global logger at a human-readable writer on w and
// applies the configured level. An invalid level falls back to info.
func SetupLogger(w io.Writer, c Config) {
	lvl, err := c.LogLevel()
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	if err != nil {
		log.Warn().Err(err).Msg("using info level")
	}
}
