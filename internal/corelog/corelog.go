// Package corelog configures the process-wide zerolog logger the
// ratiocycle demo command and its ambient layers (config, metrics) use.
// The algorithmic core (negcycle, ratio, graphx) never imports this
// package: those packages stay synchronous and side-effect free, and log
// nothing themselves.
package corelog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ratiocycle/internal/config"
)

// Setup points the global zerolog logger at stdout, honoring the
// configured level and format ("json" or "console").
func Setup(cfg config.LoggingConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}
