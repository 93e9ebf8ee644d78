// Package vehicle models a small fleet of road vehicles sharing a common
// engine lifecycle. Every operation reports its outcome through a diagnostic
// log line and an Event; none of them return errors.
package vehicle

import (
	"github.com/google/uuid"

	"github.com/kilianp07/vehicles/core/logger"
)

// Vehicle is the capability set shared by every variant.
type Vehicle interface {
	StartEngine()
	StopEngine()
	Drive()
	Honk()
	// Type returns a human readable label of the variant.
	Type() string
	// Info returns "{brand} {model}".
	Info() string
	ID() string
	Brand() string
	Model() string
	IsRunning() bool
}

// Option configures a vehicle at construction.
type Option func(*base)

// WithLogger routes diagnostics to l.
func WithLogger(l logger.Logger) Option {
	return func(b *base) {
		if l != nil {
			b.log = l
		}
	}
}

// WithRecorder reports operation outcomes to r.
func WithRecorder(r Recorder) Option {
	return func(b *base) {
		if r != nil {
			b.rec = r
		}
	}
}

// WithID overrides the generated identifier.
func WithID(id string) Option {
	return func(b *base) {
		if id != "" {
			b.id = id
		}
	}
}

// base holds identity and engine state. Variants embed it and get the generic
// engine lifecycle unless they override it.
type base struct {
	id      string
	brand   string
	model   string
	running bool

	tag string
	log logger.Logger
	rec Recorder
}

func newBase(tag, brand, model string, opts []Option) base {
	b := base{
		id:    uuid.NewString(),
		brand: brand,
		model: model,
		tag:   tag,
		log:   nopLogger{},
		rec:   NopRecorder{},
	}
	for _, opt := range opts {
		opt(&b)
	}
	b.logf("created %s %s", brand, model)
	return b
}

func (b *base) ID() string      { return b.id }
func (b *base) Brand() string   { return b.brand }
func (b *base) Model() string   { return b.model }
func (b *base) IsRunning() bool { return b.running }

func (b *base) Info() string { return b.brand + " " + b.model }

func (b *base) StartEngine() {
	if b.running {
		b.logf("engine already running")
		b.record(OpStartEngine, OutcomeNoop)
		return
	}
	b.running = true
	b.logf("engine started")
	b.record(OpStartEngine, OutcomeOK)
}

func (b *base) StopEngine() {
	if !b.running {
		b.logf("engine already stopped")
		b.record(OpStopEngine, OutcomeNoop)
		return
	}
	b.running = false
	b.logf("engine stopped")
	b.record(OpStopEngine, OutcomeOK)
}

func (b *base) Drive() {
	b.drive("driving", "start the engine first")
}

func (b *base) Honk() {
	b.honk("honk!")
}

// startEngine is the simplified lifecycle used by the variants: it only
// handles the stopped case and stays silent when the engine already runs.
func (b *base) startEngine(msg string) {
	if b.running {
		b.record(OpStartEngine, OutcomeNoop)
		return
	}
	b.running = true
	b.logf("%s", msg)
	b.record(OpStartEngine, OutcomeOK)
}

func (b *base) drive(moving, stopped string) {
	if !b.running {
		b.logf("%s", stopped)
		b.record(OpDrive, OutcomeRejected)
		return
	}
	b.logf("%s", moving)
	b.record(OpDrive, OutcomeOK)
}

func (b *base) honk(sound string) {
	b.logf("%s", sound)
	b.record(OpHonk, OutcomeOK)
}

func (b *base) record(op Operation, out Outcome) {
	b.rec.RecordVehicleEvent(Event{
		VehicleID: b.id,
		Type:      b.tag,
		Operation: op,
		Outcome:   out,
	})
}
