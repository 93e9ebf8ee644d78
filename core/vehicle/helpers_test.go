package vehicle

import (
	"fmt"
	"testing"
)

type captureLogger struct {
	lines []string
}

func (c *captureLogger) Debugf(format string, args ...any) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}
func (c *captureLogger) Debugw(string, map[string]any) {}
func (c *captureLogger) Infof(string, ...any)          {}
func (c *captureLogger) Warnf(string, ...any)          {}
func (c *captureLogger) Errorf(string, ...any)         {}

func (c *captureLogger) last() string {
	if len(c.lines) == 0 {
		return ""
	}
	return c.lines[len(c.lines)-1]
}

type captureRecorder struct {
	events []Event
}

func (c *captureRecorder) RecordVehicleEvent(ev Event) { c.events = append(c.events, ev) }

func (c *captureRecorder) last() Event {
	if len(c.events) == 0 {
		return Event{}
	}
	return c.events[len(c.events)-1]
}

// plain exercises the base lifecycle without variant overrides.
type plain struct{ base }

func (p *plain) Type() string { return "Plain" }

func newPlain(t *testing.T) (*plain, *captureLogger, *captureRecorder) {
	t.Helper()
	l := &captureLogger{}
	r := &captureRecorder{}
	return &plain{base: newBase("Plain", "Lada", "Niva", []Option{WithLogger(l), WithRecorder(r)})}, l, r
}
