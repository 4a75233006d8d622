package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger writes human-readable structured logs to stderr, leaving
// stdout for board output.
var logger = newLogger()

func newLogger() zerolog.Logger {
	noColor := os.Getenv("NO_COLOR") != ""
	if fi, err := os.Stderr.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		noColor = true
	}
	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	return zerolog.New(out).With().Timestamp().Logger()
}
