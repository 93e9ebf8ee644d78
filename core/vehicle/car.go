package vehicle

// MaxCarPassengers is the number of passenger seats in a car.
const MaxCarPassengers = 4

// Car is a passenger car with at most MaxCarPassengers passengers.
type Car struct {
	base
	doors      int
	passengers int
}

var _ Vehicle = (*Car)(nil)

// NewCar returns a stopped car without passengers.
func NewCar(brand, model string, doors int, opts ...Option) *Car {
	return &Car{
		base:  newBase("Car", brand, model, opts),
		doors: doors,
	}
}

// Type returns "Car".
func (c *Car) Type() string { return "Car" }

// Doors returns the number of doors.
func (c *Car) Doors() int { return c.doors }

// Passengers returns the number of seated passengers.
func (c *Car) Passengers() int { return c.passengers }

// StartEngine starts a stopped engine and is silent when it already runs.
func (c *Car) StartEngine() { c.startEngine("car engine started") }

// Drive reports the car moving, or asks for the engine to be started.
func (c *Car) Drive() { c.drive("car is driving fast", "start the engine") }

// Honk sounds the horn regardless of engine state.
func (c *Car) Honk() { c.honk("car horn") }

// AddPassenger seats one passenger unless all MaxCarPassengers seats are taken.
func (c *Car) AddPassenger() {
	if c.passengers >= MaxCarPassengers {
		c.logf("no seats")
		c.record(OpAddPassenger, OutcomeRejected)
		return
	}
	c.passengers++
	c.logf("passenger added")
	c.record(OpAddPassenger, OutcomeOK)
}

// RemovePassenger does nothing on an empty car.
func (c *Car) RemovePassenger() {
	if c.passengers == 0 {
		c.record(OpRemovePassenger, OutcomeNoop)
		return
	}
	c.passengers--
	c.logf("passenger left")
	c.record(OpRemovePassenger, OutcomeOK)
}
