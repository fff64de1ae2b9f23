package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/sizebots/sizebot-go/config"
)

// NewLogger builds the root logger from config. Unknown levels fall back to
// info rather than failing startup.
func NewLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
