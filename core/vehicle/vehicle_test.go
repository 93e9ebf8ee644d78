package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseEngineLifecycle(t *testing.T) {
	p, l, r := newPlain(t)
	assert.Equal(t, "[Plain] created Lada Niva", l.last())
	assert.False(t, p.IsRunning())

	p.StartEngine()
	assert.True(t, p.IsRunning())
	assert.Equal(t, "[Plain] engine started", l.last())
	assert.Equal(t, OutcomeOK, r.last().Outcome)

	p.StartEngine()
	assert.True(t, p.IsRunning())
	assert.Equal(t, "[Plain] engine already running", l.last())
	assert.Equal(t, OutcomeNoop, r.last().Outcome)

	p.StopEngine()
	assert.False(t, p.IsRunning())
	assert.Equal(t, "[Plain] engine stopped", l.last())

	p.StopEngine()
	assert.False(t, p.IsRunning())
	assert.Equal(t, "[Plain] engine already stopped", l.last())
	assert.Equal(t, Event{VehicleID: p.ID(), Type: "Plain", Operation: OpStopEngine, Outcome: OutcomeNoop}, r.last())
}

func TestBaseDriveAndHonk(t *testing.T) {
	p, l, r := newPlain(t)
	p.Drive()
	assert.Equal(t, "[Plain] start the engine first", l.last())
	assert.Equal(t, OutcomeRejected, r.last().Outcome)

	p.StartEngine()
	p.Drive()
	assert.Equal(t, "[Plain] driving", l.last())

	p.StopEngine()
	p.Honk()
	assert.Equal(t, "[Plain] honk!", l.last())
	assert.Equal(t, OpHonk, r.last().Operation)
}

func TestVariantsEngine(t *testing.T) {
	cases := []struct {
		name    string
		build   func(...Option) Vehicle
		typ     string
		started string
		moving  string
		sound   string
	}{
		{"truck", func(o ...Option) Vehicle { return NewTruck("Volvo", "FH16", 20000, o...) }, "Truck", "diesel truck engine started", "truck is moving slowly", "LOUD truck horn!"},
		{"car", func(o ...Option) Vehicle { return NewCar("Toyota", "Camry", 4, o...) }, "Car", "car engine started", "car is driving fast", "car horn"},
		{"bus", func(o ...Option) Vehicle { return NewBus("Mercedes", "Sprinter", 20, o...) }, "Bus", "bus engine started", "bus is driving its route", "bus horn"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := &captureLogger{}
			v := tc.build(WithLogger(l))
			tag := "[" + tc.typ + "] "
			assert.Equal(t, tc.typ, v.Type())
			assert.False(t, v.IsRunning())

			v.Drive()
			assert.Equal(t, tag+"start the engine", l.last())

			v.Honk()
			assert.Equal(t, tag+tc.sound, l.last())

			v.StartEngine()
			require.True(t, v.IsRunning())
			assert.Equal(t, tag+tc.started, l.last())

			n := len(l.lines)
			v.StartEngine()
			assert.True(t, v.IsRunning())
			assert.Len(t, l.lines, n, "override stays silent when already running")

			v.Drive()
			assert.Equal(t, tag+tc.moving, l.last())

			v.StopEngine()
			assert.False(t, v.IsRunning())
			assert.Equal(t, tag+"engine stopped", l.last())
			v.StopEngine()
			assert.Equal(t, tag+"engine already stopped", l.last())
		})
	}
}

func TestInfoAndIdentity(t *testing.T) {
	tr := NewTruck("Volvo", "FH16", 100, WithID("truck-1"))
	assert.Equal(t, "Volvo FH16", tr.Info())
	assert.Equal(t, "Volvo", tr.Brand())
	assert.Equal(t, "FH16", tr.Model())
	assert.Equal(t, "truck-1", tr.ID())

	c := NewCar("Toyota", "Camry", 4)
	assert.Equal(t, "Toyota Camry", c.Info())
	assert.NotEmpty(t, c.ID())
	assert.NotEqual(t, c.ID(), NewCar("Toyota", "Camry", 4).ID())
}

func TestNilOptionsKeepDefaults(t *testing.T) {
	b := NewBus("MAN", "Lion", 2, WithLogger(nil), WithRecorder(nil), WithID(""))
	assert.NotEmpty(t, b.ID())
	b.BoardPassenger()
	assert.Equal(t, 1, b.Passengers())
}

func TestMultiRecorder(t *testing.T) {
	a, b := &captureRecorder{}, &captureRecorder{}
	c := NewCar("Fiat", "500", 2, WithRecorder(MultiRecorder{a, b}))
	c.Honk()
	assert.Len(t, a.events, 1)
	assert.Equal(t, a.events, b.events)
}
