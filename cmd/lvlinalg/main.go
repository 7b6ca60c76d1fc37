// Command lvlinalg exercises the lvlinalg decompositions on a set of
// fixed demonstration matrices. It is a showcase and smoke-test harness,
// not a general-purpose calculator: the library API is the product.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logging with sane defaults; subcommands raise the level
	// to Debug when --verbose is set.
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
