package vehicle

import (
	"fmt"

	"github.com/kilianp07/vehicles/core/logger"
)

// writeDiag writes one diagnostic line "[tag] message" at debug level.
func writeDiag(l logger.Logger, tag, format string, args ...any) {
	l.Debugf("[%s] %s", tag, fmt.Sprintf(format, args...))
}

func (b *base) logf(format string, args ...any) {
	writeDiag(b.log, b.tag, format, args...)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
