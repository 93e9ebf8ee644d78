package vehicle

// Bus carries up to Capacity passengers.
type Bus struct {
	base
	capacity   int
	passengers int
}

var _ Vehicle = (*Bus)(nil)

// NewBus returns a stopped, empty bus.
func NewBus(brand, model string, capacity int, opts ...Option) *Bus {
	return &Bus{
		base:     newBase("Bus", brand, model, opts),
		capacity: capacity,
	}
}

// Type returns "Bus".
func (b *Bus) Type() string { return "Bus" }

// Capacity returns the maximum number of passengers.
func (b *Bus) Capacity() int { return b.capacity }

// Passengers returns the number of passengers on board.
func (b *Bus) Passengers() int { return b.passengers }

// StartEngine starts a stopped engine and is silent when it already runs.
func (b *Bus) StartEngine() { b.startEngine("bus engine started") }

// Drive reports the bus on its route, or asks for the engine to be started.
func (b *Bus) Drive() { b.drive("bus is driving its route", "start the engine") }

// Honk sounds the horn regardless of engine state.
func (b *Bus) Honk() { b.honk("bus horn") }

// BoardPassenger lets one passenger in unless the bus is at Capacity.
func (b *Bus) BoardPassenger() {
	if b.passengers >= b.capacity {
		b.logf("bus is full")
		b.record(OpBoardPassenger, OutcomeRejected)
		return
	}
	b.passengers++
	b.logf("passenger boarded")
	b.record(OpBoardPassenger, OutcomeOK)
}

// ExitPassenger lets one passenger out and does nothing on an empty bus.
func (b *Bus) ExitPassenger() {
	if b.passengers == 0 {
		b.record(OpExitPassenger, OutcomeNoop)
		return
	}
	b.passengers--
	b.logf("passenger left")
	b.record(OpExitPassenger, OutcomeOK)
}
