package vehicle

// Truck carries cargo up to a fixed maximum load in kilograms.
type Truck struct {
	base
	maxLoad     int
	currentLoad int
}

var _ Vehicle = (*Truck)(nil)

// NewTruck returns a stopped, empty truck.
func NewTruck(brand, model string, maxLoad int, opts ...Option) *Truck {
	return &Truck{
		base:    newBase("Truck", brand, model, opts),
		maxLoad: maxLoad,
	}
}

// Type returns "Truck".
func (t *Truck) Type() string { return "Truck" }

// MaxLoad returns the maximum cargo weight in kilograms.
func (t *Truck) MaxLoad() int { return t.maxLoad }

// CurrentLoad returns the loaded cargo weight in kilograms.
func (t *Truck) CurrentLoad() int { return t.currentLoad }

// StartEngine starts a stopped engine and is silent when it already runs.
func (t *Truck) StartEngine() { t.startEngine("diesel truck engine started") }

// Drive reports the truck moving, or asks for the engine to be started.
func (t *Truck) Drive() { t.drive("truck is moving slowly", "start the engine") }

// Honk sounds the horn regardless of engine state.
func (t *Truck) Honk() { t.honk("LOUD truck horn!") }

// LoadCargo adds weight kilograms unless the result would exceed MaxLoad.
func (t *Truck) LoadCargo(weight int) {
	if weight < 0 {
		t.logf("invalid cargo weight %d kg", weight)
		t.record(OpLoadCargo, OutcomeRejected)
		return
	}
	if weight > t.maxLoad-t.currentLoad {
		t.logf("overload!")
		t.record(OpLoadCargo, OutcomeRejected)
		return
	}
	t.currentLoad += weight
	t.logf("loaded %d kg", weight)
	t.record(OpLoadCargo, OutcomeOK)
}

// Unload empties the truck, even when it is already empty.
func (t *Truck) Unload() {
	t.logf("unloaded %d kg", t.currentLoad)
	t.currentLoad = 0
	t.record(OpUnload, OutcomeOK)
}
