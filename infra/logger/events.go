package logger

import "github.com/kilianp07/vehicles/core/vehicle"

// EventRecorder writes every vehicle event as a structured debug record.
type EventRecorder struct {
	Log Logger
}

var _ vehicle.Recorder = EventRecorder{}

func (r EventRecorder) RecordVehicleEvent(ev vehicle.Event) {
	r.Log.Debugw("vehicle event", map[string]any{
		"vehicle_id":   ev.VehicleID,
		"vehicle_type": ev.Type,
		"operation":    string(ev.Operation),
		"outcome":      string(ev.Outcome),
	})
}
