package app

import (
	"github.com/kilianp07/vehicles/config"
	"github.com/kilianp07/vehicles/core/logger"
	"github.com/kilianp07/vehicles/core/vehicle"
)

// Fleet holds one vehicle of each variant.
type Fleet struct {
	Truck *vehicle.Truck
	Car   *vehicle.Car
	Bus   *vehicle.Bus
}

// BuildFleet constructs the demo vehicles from cfg.
func BuildFleet(cfg config.Config, log logger.Logger, rec vehicle.Recorder) Fleet {
	opts := []vehicle.Option{vehicle.WithLogger(log), vehicle.WithRecorder(rec)}
	return Fleet{
		Truck: vehicle.NewTruck(cfg.Truck.Brand, cfg.Truck.Model, cfg.Truck.MaxLoad, opts...),
		Car:   vehicle.NewCar(cfg.Car.Brand, cfg.Car.Model, cfg.Car.Doors, opts...),
		Bus:   vehicle.NewBus(cfg.Bus.Brand, cfg.Bus.Model, cfg.Bus.Capacity, opts...),
	}
}

// Vehicles returns the fleet in demo order.
func (f Fleet) Vehicles() []vehicle.Vehicle {
	return []vehicle.Vehicle{f.Truck, f.Car, f.Bus}
}
