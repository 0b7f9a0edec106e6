package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var zlog zerolog.Logger

// Init sets up the global zerolog logger. Development gets pretty
// console output, anything else gets machine-readable JSON.
func Init(env string) {
	var w io.Writer

	if env == "development" || env == "dev" || env == "" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else {
		w = os.Stdout
	}

	zlog = zerolog.New(w).With().
		Timestamp().
		Str("service", "emoticon-backend").
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339
}

// Get returns the global logger.
func Get() *zerolog.Logger {
	return &zlog
}
