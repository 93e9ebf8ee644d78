package logger

import (
	"io"

	corelogger "github.com/kilianp07/vehicles/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns a JSON Logger for the given component writing to out, or to
// os.Stdout when out is nil. It logs at info level and above.
func New(component string, out io.Writer) Logger {
	l, _ := NewWithOptions(component, Options{Level: "info", Format: FormatJSON, Out: out})
	return l
}
