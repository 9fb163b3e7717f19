// Package logging configures the process-wide zerolog logger.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the global logger. Production keeps the default JSON
// output at Info level; everything else gets a console writer at Debug.
func Setup(production bool) {
	if production {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}
	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}
