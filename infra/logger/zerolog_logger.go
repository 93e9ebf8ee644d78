package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats understood by NewWithOptions.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options configures a ZerologLogger.
type Options struct {
	// Level is a zerolog level name; empty means debug.
	Level string
	// Format is FormatConsole or FormatJSON; empty means FormatJSON.
	Format string
	// Out defaults to os.Stdout.
	Out io.Writer
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewWithOptions creates a ZerologLogger writing to opts.Out.
func NewWithOptions(component string, opts Options) (*ZerologLogger, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	level := zerolog.DebugLevel
	if opts.Level != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = lvl
	}
	switch strings.ToLower(opts.Format) {
	case FormatConsole:
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	case FormatJSON, "":
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
	z := zerolog.New(out).Level(level).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{log: z}, nil
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	ev := l.log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
