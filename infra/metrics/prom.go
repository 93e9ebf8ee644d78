package metrics

import (
	"errors"
	"sort"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/vehicles/core/vehicle"
)

const eventsMetric = "vehicle_events_total"

// PromRecorder counts vehicle events in Prometheus.
type PromRecorder struct {
	events *prometheus.CounterVec
}

var _ vehicle.Recorder = (*PromRecorder)(nil)

// NewPromRecorder registers the event counter on reg.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: eventsMetric,
		Help: "Total number of vehicle operations by outcome",
	}, []string{"vehicle_type", "operation", "outcome"})

	if err := reg.Register(events); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		events = are.ExistingCollector.(*prometheus.CounterVec)
	}
	return &PromRecorder{events: events}, nil
}

// RecordVehicleEvent increments the counter matching ev.
func (r *PromRecorder) RecordVehicleEvent(ev vehicle.Event) {
	r.events.WithLabelValues(ev.Type, string(ev.Operation), string(ev.Outcome)).Inc()
}

// Sample is one counter value of vehicle_events_total.
type Sample struct {
	VehicleType string
	Operation   string
	Outcome     string
	Value       float64
}

// Summarize collects vehicle_events_total from g, sorted by labels.
func Summarize(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	var out []Sample
	for _, mf := range families {
		if mf.GetName() != eventsMetric {
			continue
		}
		for _, m := range mf.GetMetric() {
			s := Sample{Value: m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "vehicle_type":
					s.VehicleType = lp.GetValue()
				case "operation":
					s.Operation = lp.GetValue()
				case "outcome":
					s.Outcome = lp.GetValue()
				}
			}
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.VehicleType != b.VehicleType {
			return a.VehicleType < b.VehicleType
		}
		if a.Operation != b.Operation {
			return a.Operation < b.Operation
		}
		return a.Outcome < b.Outcome
	})
	return out, nil
}
