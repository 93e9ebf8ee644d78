package app

import (
	"fmt"
	"io"

	"github.com/kilianp07/vehicles/core/vehicle"
)

// Demo walks every vehicle through the fixed demonstration script.
type Demo struct {
	Out io.Writer
	// Cargo is the weight loaded into trucks.
	Cargo int
}

// Run prints type and info of each vehicle, cycles its engine and calls the
// variant specific pair of operations.
func (d Demo) Run(vehicles []vehicle.Vehicle) error {
	if _, err := fmt.Fprintln(d.Out, "=== VEHICLE DEMO ==="); err != nil {
		return err
	}
	for _, v := range vehicles {
		if _, err := fmt.Fprintf(d.Out, "\n--- %s ---\n%s\n", v.Type(), v.Info()); err != nil {
			return err
		}
		v.StartEngine()
		v.Drive()
		v.Honk()
		v.StopEngine()

		switch x := v.(type) {
		case *vehicle.Truck:
			x.LoadCargo(d.Cargo)
			x.Unload()
		case *vehicle.Car:
			x.AddPassenger()
			x.RemovePassenger()
		case *vehicle.Bus:
			x.BoardPassenger()
			x.ExitPassenger()
		}
	}
	return nil
}
