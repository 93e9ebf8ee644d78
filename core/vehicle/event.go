package vehicle

// Operation names a vehicle operation.
type Operation string

const (
	OpStartEngine     Operation = "start_engine"
	OpStopEngine      Operation = "stop_engine"
	OpDrive           Operation = "drive"
	OpHonk            Operation = "honk"
	OpLoadCargo       Operation = "load_cargo"
	OpUnload          Operation = "unload"
	OpAddPassenger    Operation = "add_passenger"
	OpRemovePassenger Operation = "remove_passenger"
	OpBoardPassenger  Operation = "board_passenger"
	OpExitPassenger   Operation = "exit_passenger"
)

// Outcome tells whether an operation changed state.
type Outcome string

const (
	// OutcomeOK means the operation was applied.
	OutcomeOK Outcome = "ok"
	// OutcomeRejected means a bound or precondition refused the operation.
	OutcomeRejected Outcome = "rejected"
	// OutcomeNoop means the vehicle was already in the requested state.
	OutcomeNoop Outcome = "noop"
)

// Event is emitted once per vehicle operation.
type Event struct {
	VehicleID string
	Type      string
	Operation Operation
	Outcome   Outcome
}

// Recorder receives vehicle events. Implementations must not block.
type Recorder interface {
	RecordVehicleEvent(ev Event)
}

// NopRecorder discards events.
type NopRecorder struct{}

func (NopRecorder) RecordVehicleEvent(Event) {}

// MultiRecorder fans events out to several recorders.
type MultiRecorder []Recorder

func (m MultiRecorder) RecordVehicleEvent(ev Event) {
	for _, r := range m {
		r.RecordVehicleEvent(ev)
	}
}
