package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type logFormat uint8

const (
	logConsole logFormat = iota
	logJSON
)

func parseLogFormat(text string) (logFormat, error) {
	switch strings.ToLower(text) {
	case "", "console":
		return logConsole, nil
	case "json":
		return logJSON, nil
	default:
		return 0, fmt.Errorf("invalid log format: %q", text)
	}
}

// newLogger builds the process logger writing to out.
func newLogger(cfg LogSettings, out io.Writer) (zerolog.Logger, error) {
	format, err := parseLogFormat(cfg.Format)
	if err != nil {
		return zerolog.Nop(), err
	}
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		level, err = zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}
	if out == nil {
		out = os.Stderr
	}
	if format == logConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
